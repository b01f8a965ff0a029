package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/platform/icons"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
)

// NotFoundPage renders the localized not-found body.
func NotFoundPage(page PageContext) templ.Component {
	return errorBody(page, "404", "error.not_found.title", "error.not_found.body")
}

// ErrorPage renders a generic failure body for the given localization keys.
func ErrorPage(page PageContext, titleKey string, bodyKey string) templ.Component {
	return errorBody(page, "", titleKey, bodyKey)
}

func errorBody(page PageContext, code string, titleKey string, bodyKey string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		b := newBuilder(ctx, w)
		b.raw(`<section class="error-page">`)
		b.render(icons.Icon(icons.AlertTriangle, "page-icon"))
		if code != "" {
			b.raw(`<p class="error-code">`)
			b.text(code)
			b.raw("</p>")
		}
		b.raw("<h1>")
		b.text(T(loc, titleKey))
		b.raw(`</h1><p class="lead">`)
		b.text(T(loc, bodyKey))
		b.raw(`</p><a class="btn btn-primary"`)
		b.attr("href", routepath.Home(page.Locale.String()))
		b.raw(">")
		b.text(T(loc, "error.back_home"))
		b.raw("</a></section>")
		return b.err
	})
}
