package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination for this breadcrumb entry.
	URL string
}

// Breadcrumbs renders a trail. The last item is the current page and is
// never linked.
func Breadcrumbs(items []BreadcrumbItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(items) == 0 {
			return nil
		}
		b := newBuilder(ctx, w)
		b.raw(`<nav class="breadcrumbs" aria-label="breadcrumb"><ol>`)
		for i, item := range items {
			last := i == len(items)-1
			b.raw("<li>")
			if item.URL != "" && !last {
				b.raw("<a")
				b.attr("href", item.URL)
				b.raw(">")
				b.text(item.Label)
				b.raw("</a>")
			} else if last {
				b.raw(`<span aria-current="page">`)
				b.text(item.Label)
				b.raw("</span>")
			} else {
				b.raw("<span>")
				b.text(item.Label)
				b.raw("</span>")
			}
			b.raw("</li>")
		}
		b.raw("</ol></nav>")
		return b.err
	})
}
