package components

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/services/web/templates"
	"github.com/louisbranch/toolbox/internal/tools/colorconv"
	"github.com/louisbranch/toolbox/internal/tools/jsonfmt"
)

func jsonPanel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		text := in.RawValue("input")
		indent := jsonfmt.ParseIndent(in.Value("indent"))
		var output string
		var status templ.Component
		if in.Submitted() {
			var err error
			switch in.Value("action") {
			case "compress":
				output, err = jsonfmt.Compress(text)
				if err == nil {
					status = templates.Alert(templates.AlertSuccess, "", in.T("json.compress_ok"))
				}
			case "validate":
				err = jsonfmt.Validate(text)
				if err == nil {
					status = templates.Alert(templates.AlertSuccess, "", in.T("json.valid"))
				}
			case actionClear:
				text = ""
			default:
				output, err = jsonfmt.Format(text, indent)
				if err == nil {
					status = templates.Alert(templates.AlertSuccess, "", in.T("json.format_ok"))
				}
			}
			if err != nil {
				status = templates.Alert(templates.AlertError, in.T("json.invalid"), err.Error())
			}
		}
		options := make([]templates.Option, 0, len(jsonfmt.Indents()))
		for _, candidate := range jsonfmt.Indents() {
			options = append(options, templates.Option{Value: string(candidate), Label: in.T("json.indent_" + string(candidate))})
		}
		return templates.Form(in.Action,
			templates.Columns(
				templates.Card(in.T("json.input_title"),
					templates.TextArea("input", "", text, "{\"key\": \"value\"}", 16),
					templates.Select("indent", in.T("json.indent"), options, string(indent)),
					templates.Buttons(
						templates.Button{Name: "action", Value: "format", Label: in.T("json.format"), Primary: true},
						templates.Button{Name: "action", Value: "compress", Label: in.T("json.compress")},
						templates.Button{Name: "action", Value: "validate", Label: in.T("json.validate")},
						templates.Button{Name: "action", Value: actionClear, Label: in.T("common.clear")},
					),
				),
				templates.Card(in.T("common.output"),
					status,
					templates.Output("", output, in.T("common.result_placeholder"), in.T("common.copy")),
				),
			),
		)
	})
}

func colorPanel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		color := colorconv.Default()
		var status templ.Component
		if in.Submitted() {
			var (
				next colorconv.Color
				err  error
			)
			switch in.Value("action") {
			case "rgb":
				next, err = colorconv.FromRGB(formInt(in, "r"), formInt(in, "g"), formInt(in, "b"))
			case "hsl":
				next, err = colorconv.FromHSL(formInt(in, "h"), formInt(in, "s"), formInt(in, "l"))
			default:
				next, err = colorconv.ParseHex(in.Value("hex"))
			}
			if err != nil {
				status = templates.Alert(templates.AlertError, in.T("color.invalid"), err.Error())
			} else {
				color = next
			}
		}
		return templates.Form(in.Action,
			templates.Columns(
				templates.Card(in.T("color.input_title"),
					status,
					templates.Input("hex", "HEX", "text", color.Hex, "#3b82f6"),
					templates.Buttons(templates.Button{Name: "action", Value: "hex", Label: in.T("color.from_hex"), Primary: true}),
					templates.Input("r", "R (0-255)", "number", strconv.Itoa(color.RGB.R), ""),
					templates.Input("g", "G (0-255)", "number", strconv.Itoa(color.RGB.G), ""),
					templates.Input("b", "B (0-255)", "number", strconv.Itoa(color.RGB.B), ""),
					templates.Buttons(templates.Button{Name: "action", Value: "rgb", Label: in.T("color.from_rgb")}),
					templates.Input("h", "H (0-360)", "number", strconv.Itoa(color.HSL.H), ""),
					templates.Input("s", "S (0-100)", "number", strconv.Itoa(color.HSL.S), ""),
					templates.Input("l", "L (0-100)", "number", strconv.Itoa(color.HSL.L), ""),
					templates.Buttons(templates.Button{Name: "action", Value: "hsl", Label: in.T("color.from_hsl")}),
				),
				templates.Card(in.T("color.preview"),
					templates.Swatch(color.Hex, color.Hex),
					templates.Output("HEX", color.Hex, "", in.T("common.copy")),
					templates.Output("RGB", color.RGB.String(), "", in.T("common.copy")),
					templates.Output("HSL", color.HSL.String(), "", in.T("common.copy")),
				),
			),
		)
	})
}

// formInt returns -1 for a missing or malformed number so range checks
// reject it.
func formInt(in Input, name string) int {
	n, err := strconv.Atoi(in.Value(name))
	if err != nil {
		return -1
	}
	return n
}
