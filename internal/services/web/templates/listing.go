package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/platform/icons"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
)

// ListingView holds a tool list page: the full listing, a search result or
// one category.
type ListingView struct {
	Heading     string
	Description string
	Icon        icons.ID
	Query       string
	Searchable  bool
	Recent      []string
	Tools       []ToolCard
	// Empty replaces the default empty-result text.
	Empty string
}

// ListingPage renders a tool list page body.
func ListingPage(page PageContext, view ListingView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		lang := page.Locale.String()
		b := newBuilder(ctx, w)
		b.raw(`<header class="page-head">`)
		if view.Icon != icons.Unspecified {
			b.render(icons.Icon(view.Icon, "page-icon"))
		}
		b.raw("<h1>")
		b.text(view.Heading)
		b.raw("</h1>")
		if view.Description != "" {
			b.raw(`<p class="lead">`)
			b.text(view.Description)
			b.raw("</p>")
		}
		b.raw("</header>")

		if view.Searchable {
			b.raw(`<form class="search-wide" method="get"`)
			b.attr("action", routepath.ToolsList(lang))
			b.raw(`><input type="search" name="q" class="input"`)
			b.attr("value", view.Query)
			b.attr("placeholder", T(loc, "nav.search_placeholder"))
			b.raw(`><button type="submit" class="btn btn-primary">`)
			b.text(T(loc, "nav.search"))
			b.raw("</button></form>")
			if len(view.Recent) > 0 {
				b.raw(`<div class="recent-searches"><span class="field-label">`)
				b.text(T(loc, "tools.recent_searches"))
				b.raw("</span>")
				for _, query := range view.Recent {
					b.raw(`<a class="chip"`)
					b.attr("href", routepath.ToolsSearch(lang, query))
					b.raw(">")
					b.text(query)
					b.raw("</a>")
				}
				b.raw(`<form method="post" class="inline"`)
				b.attr("action", routepath.ClearSearches(lang))
				b.raw(`><input type="hidden" name="return"`)
				b.attr("value", page.ReturnTo())
				b.raw(`><button type="submit" class="btn btn-small">`)
				b.text(T(loc, "tools.clear_searches"))
				b.raw("</button></form></div>")
			}
		}

		b.raw(`<p class="muted result-count">`)
		if view.Query != "" {
			b.text(T(loc, "tools.search_results", view.Query, len(view.Tools)))
		} else {
			b.text(T(loc, "tools.count", len(view.Tools)))
		}
		b.raw("</p>")
		if len(view.Tools) == 0 {
			empty := view.Empty
			if empty == "" {
				empty = T(loc, "tools.empty")
			}
			b.raw(`<p class="empty">`)
			b.text(empty)
			b.raw("</p>")
			return b.err
		}
		b.render(ToolGrid(view.Tools))
		return b.err
	})
}
