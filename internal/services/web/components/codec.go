package components

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/services/web/templates"
	"github.com/louisbranch/toolbox/internal/tools/base64codec"
	"github.com/louisbranch/toolbox/internal/tools/md5sum"
	"github.com/louisbranch/toolbox/internal/tools/urlcodec"
)

const (
	actionEncode = "encode"
	actionDecode = "decode"
	actionClear  = "clear"
)

// codec describes a two-way text transform panel.
type codec struct {
	encode            func(string) string
	decode            func(string) (string, error)
	encodePlaceholder string
	decodePlaceholder string
}

func (c codec) render(in Input) templ.Component {
	text := in.RawValue("input")
	mode := in.Value("action")
	var output string
	var status templ.Component
	if in.Submitted() {
		switch mode {
		case actionDecode:
			decoded, err := c.decode(text)
			if err != nil {
				status = templates.Alert(templates.AlertError, "", in.T("codec.decode_failed"))
			} else {
				output = decoded
				status = templates.Alert(templates.AlertSuccess, "", in.T("codec.decode_ok"))
			}
		case actionClear:
			text = ""
			mode = actionEncode
		default:
			mode = actionEncode
			output = c.encode(text)
			status = templates.Alert(templates.AlertSuccess, "", in.T("codec.encode_ok"))
		}
	}
	placeholder := in.T(c.encodePlaceholder)
	if mode == actionDecode {
		placeholder = in.T(c.decodePlaceholder)
	}
	return templates.Form(in.Action,
		templates.Columns(
			templates.Card(in.T("common.input"),
				templates.TextArea("input", "", text, placeholder, 10),
				templates.Buttons(
					templates.Button{Name: "action", Value: actionEncode, Label: in.T("codec.encode"), Primary: mode != actionDecode},
					templates.Button{Name: "action", Value: actionDecode, Label: in.T("codec.decode"), Primary: mode == actionDecode},
					templates.Button{Name: "action", Value: actionClear, Label: in.T("common.clear")},
				),
			),
			templates.Card(in.T("common.output"),
				status,
				templates.Output("", output, in.T("common.result_placeholder"), in.T("common.copy")),
			),
		),
	)
}

func base64Panel() Panel {
	c := codec{
		encode:            base64codec.Encode,
		decode:            base64codec.Decode,
		encodePlaceholder: "base64.placeholder_encode",
		decodePlaceholder: "base64.placeholder_decode",
	}
	return PanelFunc(c.render)
}

func urlPanel() Panel {
	c := codec{
		encode:            urlcodec.Encode,
		decode:            urlcodec.Decode,
		encodePlaceholder: "url.placeholder_encode",
		decodePlaceholder: "url.placeholder_decode",
	}
	return PanelFunc(c.render)
}

func md5Panel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		text := in.RawValue("input")
		var lower, upper string
		if in.Submitted() {
			if in.Value("action") == actionClear {
				text = ""
			} else {
				lower = md5sum.Sum(text)
				upper = md5sum.SumUpper(text)
			}
		}
		return templates.Group(
			templates.Form(in.Action,
				templates.Columns(
					templates.Card(in.T("md5.input_title"),
						templates.TextArea("input", "", text, in.T("md5.placeholder"), 8),
						templates.Buttons(
							templates.Button{Name: "action", Value: "generate", Label: in.T("md5.generate"), Primary: true},
							templates.Button{Name: "action", Value: actionClear, Label: in.T("common.clear")},
						),
					),
					templates.Card(in.T("md5.result"),
						templates.Output(in.T("md5.lowercase"), lower, in.T("common.result_placeholder"), in.T("common.copy")),
						templates.Output(in.T("md5.uppercase"), upper, in.T("common.result_placeholder"), in.T("common.copy")),
					),
				),
			),
			templates.Tips(templates.AlertWarning, in.T("common.security"), in.T("md5.warning")),
		)
	})
}
