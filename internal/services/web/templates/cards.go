package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/platform/icons"
)

// ToolCard is the summary of one tool in lists.
type ToolCard struct {
	ID          string
	Name        string
	Description string
	URL         string
	Icon        icons.ID
	Favorite    bool
}

// ToolGrid renders tool cards in a responsive grid.
func ToolGrid(cards []ToolCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<div class="grid">`)
		for _, card := range cards {
			b.raw(`<a class="tool-card"`)
			b.attr("href", card.URL)
			b.attr("data-tool", card.ID)
			b.raw(">")
			b.render(icons.Icon(card.Icon, "card-icon"))
			b.raw(`<div class="card-body"><h3>`)
			b.text(card.Name)
			if card.Favorite {
				b.render(icons.Icon(icons.Star, "favorite-mark"))
			}
			b.raw("</h3><p>")
			b.text(card.Description)
			b.raw("</p></div>")
			b.render(icons.Icon(icons.ArrowRight, "card-arrow"))
			b.raw("</a>")
		}
		b.raw("</div>")
		return b.err
	})
}

// CategoryGrid renders category cards.
func CategoryGrid(loc Localizer, categories []CategoryLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<div class="grid grid-compact">`)
		for _, category := range categories {
			b.raw(`<a class="category-card"`)
			b.attr("href", category.URL)
			b.raw(">")
			b.render(icons.Icon(category.Icon, "card-icon"))
			b.raw("<h3>")
			b.text(category.Name)
			b.raw(`</h3><p class="muted">`)
			b.text(T(loc, "tools.count", category.Count))
			b.raw("</p></a>")
		}
		b.raw("</div>")
		return b.err
	})
}

func section(b *builder, title string, body templ.Component) {
	b.raw(`<section class="section"><h2>`)
	b.text(title)
	b.raw("</h2>")
	b.render(body)
	b.raw("</section>")
}
