package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

var aboutFeatureKeys = []string{
	"about.feature.free",
	"about.feature.private",
	"about.feature.responsive",
	"about.feature.dark_mode",
	"about.feature.languages",
	"about.feature.installable",
}

// AboutPage renders the about page body.
func AboutPage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		b := newBuilder(ctx, w)
		b.raw(`<article class="prose"><h1>`)
		b.text(T(loc, "site.about"))
		b.raw("</h1><h2>")
		b.text(T(loc, "about.title"))
		b.raw("</h2><p>")
		b.text(T(loc, "about.intro", T(loc, "site.name")))
		b.raw("</p><p>")
		b.text(T(loc, "about.privacy"))
		b.raw("</p><h2>")
		b.text(T(loc, "about.features"))
		b.raw("</h2><ul>")
		for _, key := range aboutFeatureKeys {
			b.raw("<li>")
			b.text(T(loc, key))
			b.raw("</li>")
		}
		b.raw("</ul><h2>")
		b.text(T(loc, "about.contact"))
		b.raw("</h2><p>")
		b.text(T(loc, "about.contact_body"))
		b.raw("</p></article>")
		return b.err
	})
}
