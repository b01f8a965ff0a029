package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/platform/icons"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
)

// ToolView holds one tool page.
type ToolView struct {
	ID          string
	Name        string
	Description string
	Icon        icons.ID
	Favorite    bool
	// Panel is the tool body. A nil panel renders nothing below the header.
	Panel templ.Component
}

// ToolPage renders the tool header, favorite toggle and panel.
func ToolPage(page PageContext, view ToolView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		b := newBuilder(ctx, w)
		b.raw(`<article class="tool"`)
		b.attr("data-tool", view.ID)
		b.raw(`><header class="page-head">`)
		b.render(icons.Icon(view.Icon, "page-icon"))
		b.raw("<div><h1>")
		b.text(view.Name)
		b.raw(`</h1><p class="lead">`)
		b.text(view.Description)
		b.raw(`</p></div><form method="post" class="favorite-toggle"`)
		b.attr("action", routepath.Favorite(page.Locale.String(), view.ID))
		b.raw(`><input type="hidden" name="return"`)
		b.attr("value", page.ReturnTo())
		b.raw(`><button type="submit"`)
		label := T(loc, "tool.favorite_add")
		class := "btn"
		if view.Favorite {
			label = T(loc, "tool.favorite_remove")
			class = "btn btn-active"
		}
		b.attr("class", class)
		b.attr("aria-pressed", boolString(view.Favorite))
		b.raw(">")
		b.render(icons.Icon(icons.Star, ""))
		b.raw("<span>")
		b.text(label)
		b.raw("</span></button></form></header>")
		b.render(view.Panel)
		b.raw("</article>")
		return b.err
	})
}

// LoadFailurePanel is shown in place of a tool panel that could not be built.
// The rest of the page stays intact.
func LoadFailurePanel(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		b := newBuilder(ctx, w)
		b.raw(`<section class="card load-failure" role="alert">`)
		b.render(Alert(AlertError, T(loc, "error.load_failed.title"), T(loc, "error.load_failed.body")))
		b.raw(`<a class="btn"`)
		b.attr("href", page.ReturnTo())
		b.raw(">")
		b.text(T(loc, "error.retry"))
		b.raw("</a></section>")
		return b.err
	})
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
