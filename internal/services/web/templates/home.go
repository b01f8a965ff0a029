package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
)

// HomeView holds the home page sections.
type HomeView struct {
	Featured   []ToolCard
	Favorites  []ToolCard
	Recent     []ToolCard
	Categories []CategoryLink
}

var homeFeatures = []struct {
	title       string
	description string
}{
	{title: "home.feature.secure.title", description: "home.feature.secure.description"},
	{title: "home.feature.free.title", description: "home.feature.free.description"},
	{title: "home.feature.fast.title", description: "home.feature.fast.description"},
}

// HomePage renders the landing page body.
func HomePage(page PageContext, view HomeView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		lang := page.Locale.String()
		b := newBuilder(ctx, w)
		b.raw(`<section class="hero"><h1>`)
		b.text(T(loc, "site.name"))
		b.raw(`</h1><p class="lead">`)
		b.text(T(loc, "home.hero_subtitle"))
		b.raw(`</p><a class="btn btn-primary"`)
		b.attr("href", routepath.ToolsList(lang))
		b.raw(">")
		b.text(T(loc, "home.browse_all"))
		b.raw(`</a></section><section class="features">`)
		for _, feature := range homeFeatures {
			b.raw(`<div class="feature"><h3>`)
			b.text(T(loc, feature.title))
			b.raw("</h3><p>")
			b.text(T(loc, feature.description))
			b.raw("</p></div>")
		}
		b.raw("</section>")
		if len(view.Favorites) > 0 {
			section(b, T(loc, "home.favorites"), ToolGrid(view.Favorites))
		}
		if len(view.Recent) > 0 {
			section(b, T(loc, "home.recent_tools"), ToolGrid(view.Recent))
		}
		if len(view.Featured) > 0 {
			section(b, T(loc, "site.featured_tools"), ToolGrid(view.Featured))
		}
		section(b, T(loc, "site.tool_categories"), CategoryGrid(loc, view.Categories))
		return b.err
	})
}
