package web

import (
	"strings"

	"github.com/louisbranch/toolbox/internal/platform/i18n"
	webi18n "github.com/louisbranch/toolbox/internal/services/web/platform/i18n"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
)

// MatchKind is the outcome of resolving a path.
type MatchKind int

const (
	MatchNotFound MatchKind = iota
	MatchPage
	MatchRedirect
)

// Page names a page or preference action.
type Page int

const (
	PageNone Page = iota
	PageHome
	PageTools
	PageAbout
	PageCategory
	PageTool
	ActionTheme
	ActionFavorite
	ActionClearSearches
)

// Match is a resolved request path.
type Match struct {
	Kind MatchKind
	Page Page
	// Segment is the raw locale prefix. Empty for unprefixed paths.
	Segment string
	// Locale is the prefix locale when it is supported.
	Locale    i18n.Locale
	Supported bool
	// Path is the unprefixed page path.
	Path       string
	CategoryID string
	ToolID     string
	// Location is the redirect target without query string.
	Location string
}

// Prefixed reports whether the path carried a language segment.
func (m Match) Prefixed() bool {
	return m.Segment != ""
}

// Resolve maps a request path to a page. Unprefixed page paths redirect to
// the same path under current; a language-shaped first segment selects the
// page locale; everything else is not found. Resolve performs no I/O.
func Resolve(path string, current i18n.Locale) Match {
	if path == "" {
		path = routepath.Root
	}
	if page, categoryID, toolID, ok := matchPage(path); ok && isLegacy(page) {
		return Match{
			Kind:       MatchRedirect,
			Page:       page,
			Path:       path,
			CategoryID: categoryID,
			ToolID:     toolID,
			Location:   routepath.Localized(current.String(), path),
		}
	}

	rest, segment := routepath.StripLocale(path)
	if !i18n.LooksLikeLanguage(segment) {
		return Match{Kind: MatchNotFound, Path: path}
	}
	match := Match{Kind: MatchNotFound, Segment: segment, Path: rest}
	if locale, ok := webi18n.SegmentLocale(segment); ok {
		match.Locale = locale
		match.Supported = true
	}
	page, categoryID, toolID, ok := matchPage(rest)
	if !ok {
		return match
	}
	match.Kind = MatchPage
	match.Page = page
	match.CategoryID = categoryID
	match.ToolID = toolID
	return match
}

func isLegacy(page Page) bool {
	switch page {
	case PageHome, PageTools, PageAbout, PageCategory, PageTool:
		return true
	default:
		return false
	}
}

func matchPage(path string) (Page, string, string, bool) {
	switch path {
	case routepath.Root:
		return PageHome, "", "", true
	case routepath.Tools:
		return PageTools, "", "", true
	case routepath.About:
		return PageAbout, "", "", true
	case routepath.PrefsTheme:
		return ActionTheme, "", "", true
	case routepath.PrefsSearches:
		return ActionClearSearches, "", "", true
	}
	if rest, ok := strings.CutPrefix(path, routepath.CategoryPrefix); ok {
		if id, single := segment(rest); single {
			return PageCategory, id, "", true
		}
		return PageNone, "", "", false
	}
	if rest, ok := strings.CutPrefix(path, routepath.PrefsFavorites); ok {
		if id, single := segment(rest); single {
			return ActionFavorite, "", id, true
		}
		return PageNone, "", "", false
	}
	if rest, ok := strings.CutPrefix(path, routepath.ToolsPrefix); ok {
		categoryID, toolID, found := strings.Cut(rest, "/")
		if !found {
			return PageNone, "", "", false
		}
		category, okCategory := segment(categoryID)
		tool, okTool := segment(toolID)
		if okCategory && okTool {
			return PageTool, category, tool, true
		}
	}
	return PageNone, "", "", false
}

// segment accepts one non-empty path segment.
func segment(value string) (string, bool) {
	if value == "" || strings.Contains(value, "/") {
		return "", false
	}
	return value, true
}
