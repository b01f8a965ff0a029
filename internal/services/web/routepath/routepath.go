// Package routepath stores canonical HTTP paths for the toolbox web service.
//
// Page paths exist in two forms: the unprefixed legacy form ("/tools") and
// the locale-prefixed form ("/zh/tools"). Builders here return the prefixed
// form unless their name says otherwise.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	Tools          = "/tools"
	ToolsPrefix    = "/tools/"
	About          = "/about"
	CategoryPrefix = "/category/"
	Health         = "/up"
	StaticPrefix   = "/static/"
	Manifest       = "/manifest.webmanifest"
	ServiceWorker  = "/sw.js"
	PrefsPrefix    = "/prefs/"
	PrefsTheme     = "/prefs/theme"
	PrefsFavorites = "/prefs/favorites/"
	PrefsSearches  = "/prefs/searches/clear"
)

// Localized prefixes an unprefixed path with lang. The root path maps to
// "/{lang}" without a trailing slash.
func Localized(lang string, path string) string {
	lang = strings.TrimSpace(lang)
	path = strings.TrimSpace(path)
	if path == "" || path == Root {
		return "/" + lang
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + lang + path
}

// Home returns the localized home route.
func Home(lang string) string {
	return Localized(lang, Root)
}

// ToolsList returns the localized tools listing route.
func ToolsList(lang string) string {
	return Localized(lang, Tools)
}

// ToolsSearch returns the localized tools listing filtered by query.
func ToolsSearch(lang string, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ToolsList(lang)
	}
	return ToolsList(lang) + "?q=" + url.QueryEscape(query)
}

// AboutPage returns the localized about route.
func AboutPage(lang string) string {
	return Localized(lang, About)
}

// CategoryPath returns the unprefixed category route.
func CategoryPath(categoryID string) string {
	return CategoryPrefix + escapeSegment(categoryID)
}

// Category returns the localized category route.
func Category(lang string, categoryID string) string {
	return Localized(lang, CategoryPath(categoryID))
}

// ToolPath returns the unprefixed tool route.
func ToolPath(categoryID string, toolID string) string {
	return ToolsPrefix + escapeSegment(categoryID) + "/" + escapeSegment(toolID)
}

// Tool returns the localized tool route.
func Tool(lang string, categoryID string, toolID string) string {
	return Localized(lang, ToolPath(categoryID, toolID))
}

// Theme returns the localized theme-toggle action route.
func Theme(lang string) string {
	return Localized(lang, PrefsTheme)
}

// Favorite returns the localized favorite-toggle action route.
func Favorite(lang string, toolID string) string {
	return Localized(lang, PrefsFavorites+escapeSegment(toolID))
}

// ClearSearches returns the localized recent-search reset route.
func ClearSearches(lang string) string {
	return Localized(lang, PrefsSearches)
}

// StaticAsset returns the route of an embedded static file.
func StaticAsset(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

// StripLocale removes a leading "/{lang}" segment from path. It returns the
// unprefixed remainder and the removed segment.
func StripLocale(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return Root, ""
	}
	segment, rest, found := strings.Cut(trimmed, "/")
	if !found {
		return Root, segment
	}
	return "/" + rest, segment
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
