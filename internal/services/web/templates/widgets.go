package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/platform/icons"
)

// Option is one entry of a select box.
type Option struct {
	Value string
	Label string
}

// Button is a submit button. Name and Value are posted with the form.
type Button struct {
	Name    string
	Value   string
	Label   string
	Primary bool
}

// AlertKind selects the alert styling.
type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
	AlertSuccess AlertKind = "success"
)

// Form posts its fields back to action.
func Form(action string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<form class="tool-form" method="post"`)
		b.attr("action", action)
		b.raw(">")
		for _, child := range children {
			b.render(child)
		}
		b.raw("</form>")
		return b.err
	})
}

// Columns lays children out side by side on wide screens.
func Columns(children ...templ.Component) templ.Component {
	return wrap(`<div class="columns">`, "</div>", children)
}

// Card renders a titled panel section.
func Card(title string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<section class="card">`)
		if title != "" {
			b.raw(`<h2 class="card-title">`)
			b.text(title)
			b.raw("</h2>")
		}
		for _, child := range children {
			b.render(child)
		}
		b.raw("</section>")
		return b.err
	})
}

// TextArea renders a labeled multi-line input.
func TextArea(name string, label string, value string, placeholder string, rows int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<label class="field">`)
		if label != "" {
			b.raw(`<span class="field-label">`)
			b.text(label)
			b.raw("</span>")
		}
		b.raw(`<textarea class="input mono"`)
		b.attr("name", name)
		b.attr("rows", strconv.Itoa(max(rows, 1)))
		if placeholder != "" {
			b.attr("placeholder", placeholder)
		}
		b.raw(">")
		b.text(value)
		b.raw("</textarea></label>")
		return b.err
	})
}

// Input renders a labeled single-line input of the given type.
func Input(name string, label string, inputType string, value string, placeholder string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<label class="field">`)
		if label != "" {
			b.raw(`<span class="field-label">`)
			b.text(label)
			b.raw("</span>")
		}
		if inputType == "" {
			inputType = "text"
		}
		b.raw(`<input class="input"`)
		b.attr("type", inputType)
		b.attr("name", name)
		b.attr("value", value)
		if placeholder != "" {
			b.attr("placeholder", placeholder)
		}
		b.raw("></label>")
		return b.err
	})
}

// Range renders a labeled slider showing its current value.
func Range(name string, label string, value int, minValue int, maxValue int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<label class="field"><span class="field-label">`)
		b.text(label)
		b.raw(`: <output data-range-output>`, strconv.Itoa(value), `</output></span><input class="range" type="range" data-range`)
		b.attr("name", name)
		b.attr("min", strconv.Itoa(minValue))
		b.attr("max", strconv.Itoa(maxValue))
		b.attr("value", strconv.Itoa(value))
		b.raw("></label>")
		return b.err
	})
}

// Select renders a labeled select box.
func Select(name string, label string, options []Option, selected string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<label class="field field-inline"><span class="field-label">`)
		b.text(label)
		b.raw(`</span><select class="input"`)
		b.attr("name", name)
		b.raw(">")
		for _, option := range options {
			b.raw("<option")
			b.attr("value", option.Value)
			if option.Value == selected {
				b.raw(" selected")
			}
			b.raw(">")
			b.text(option.Label)
			b.raw("</option>")
		}
		b.raw("</select></label>")
		return b.err
	})
}

// Checkbox renders a labeled checkbox posting "on" when checked.
func Checkbox(name string, label string, checked bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<label class="check"><input type="checkbox" value="on"`)
		b.attr("name", name)
		if checked {
			b.raw(" checked")
		}
		b.raw("><span>")
		b.text(label)
		b.raw("</span></label>")
		return b.err
	})
}

// Buttons renders a row of submit buttons.
func Buttons(buttons ...Button) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<div class="actions">`)
		for _, button := range buttons {
			class := "btn"
			if button.Primary {
				class = "btn btn-primary"
			}
			b.raw(`<button type="submit"`)
			b.attr("class", class)
			if button.Name != "" {
				b.attr("name", button.Name)
				b.attr("value", button.Value)
			}
			b.raw(">")
			b.text(button.Label)
			b.raw("</button>")
		}
		b.raw("</div>")
		return b.err
	})
}

// Output renders a read-only result with a copy button. An empty value shows
// the placeholder instead.
func Output(label string, value string, placeholder string, copyLabel string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<div class="output">`)
		if label != "" || value != "" {
			b.raw(`<div class="output-head"><span class="field-label">`)
			b.text(label)
			b.raw("</span>")
			if value != "" && copyLabel != "" {
				b.raw(`<button type="button" class="btn btn-small" data-copy>`)
				b.text(copyLabel)
				b.raw("</button>")
			}
			b.raw("</div>")
		}
		if value == "" {
			b.raw(`<p class="muted">`)
			b.text(placeholder)
			b.raw("</p>")
		} else {
			b.raw(`<pre class="output-value mono" data-copy-source>`)
			b.text(value)
			b.raw("</pre>")
		}
		b.raw("</div>")
		return b.err
	})
}

// Alert renders a status message.
func Alert(kind AlertKind, title string, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<div role="status"`)
		b.attr("class", "alert alert-"+string(kind))
		b.raw(">")
		if kind == AlertError || kind == AlertWarning {
			b.render(icons.Icon(icons.AlertTriangle, "icon"))
		}
		if title != "" {
			b.raw("<strong>")
			b.text(title)
			b.raw("</strong> ")
		}
		b.text(message)
		b.raw("</div>")
		return b.err
	})
}

// Tips renders a titled bullet list.
func Tips(kind AlertKind, title string, items ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<aside`)
		b.attr("class", "tips alert-"+string(kind))
		b.raw("><h3>")
		b.text(title)
		b.raw("</h3><ul>")
		for _, item := range items {
			b.raw("<li>")
			b.text(item)
			b.raw("</li>")
		}
		b.raw("</ul></aside>")
		return b.err
	})
}

// Figure renders an image with an optional download link.
func Figure(src string, alt string, size int, downloadName string, downloadLabel string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<figure class="figure"><img`)
		b.attr("src", src)
		b.attr("alt", alt)
		b.attr("width", strconv.Itoa(size))
		b.attr("height", strconv.Itoa(size))
		b.raw(">")
		if downloadName != "" {
			b.raw(`<a class="btn"`)
			b.attr("href", src)
			b.attr("download", downloadName)
			b.raw(">")
			b.text(downloadLabel)
			b.raw("</a>")
		}
		b.raw("</figure>")
		return b.err
	})
}

// Swatch renders a color preview block.
func Swatch(hex string, caption string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<div class="swatch"`)
		b.attr("style", "background-color: "+hex)
		b.raw(`></div><p class="swatch-caption mono">`)
		b.text(caption)
		b.raw("</p>")
		return b.err
	})
}

// List renders values one per line with a copy button.
func List(label string, values []string, copyLabel string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(`<div class="output"><div class="output-head"><span class="field-label">`)
		b.text(label)
		b.raw(`</span><button type="button" class="btn btn-small" data-copy>`)
		b.text(copyLabel)
		b.raw(`</button></div><ol class="output-list mono" data-copy-source>`)
		for _, value := range values {
			b.raw("<li>")
			b.text(value)
			b.raw("</li>")
		}
		b.raw("</ol></div>")
		return b.err
	})
}

func wrap(open string, end string, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newBuilder(ctx, w)
		b.raw(open)
		for _, child := range children {
			b.render(child)
		}
		b.raw(end)
		return b.err
	})
}
