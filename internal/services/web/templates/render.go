// Package templates renders the toolbox HTML shell, pages and form widgets as
// templ components.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// builder writes markup and keeps the first write error.
type builder struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newBuilder(ctx context.Context, w io.Writer) *builder {
	return &builder{ctx: ctx, w: w}
}

func (b *builder) raw(parts ...string) {
	for _, part := range parts {
		if b.err != nil {
			return
		}
		_, b.err = io.WriteString(b.w, part)
	}
}

func (b *builder) text(value string) {
	b.raw(templ.EscapeString(value))
}

// attr writes ` name="value"` with value escaped.
func (b *builder) attr(name string, value string) {
	b.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (b *builder) render(component templ.Component) {
	if b.err != nil || component == nil {
		return
	}
	b.err = component.Render(b.ctx, b.w)
}

// Text renders escaped text.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

// Group renders components in order, skipping nil entries.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		for _, component := range components {
			b.render(component)
		}
		return b.err
	})
}

// RenderString renders component to a string.
func RenderString(ctx context.Context, component templ.Component) (string, error) {
	if component == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := component.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
