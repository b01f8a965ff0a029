package components

import (
	"errors"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/services/web/templates"
	"github.com/louisbranch/toolbox/internal/tools/passgen"
	"github.com/louisbranch/toolbox/internal/tools/qrcode"
	"github.com/louisbranch/toolbox/internal/tools/uuidgen"
)

func uuidPanel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		count := uuidgen.ParseCount(in.Value("count"))
		upper := in.Checked("uppercase")
		var ids []string
		var status templ.Component
		if in.Submitted() {
			generated, err := uuidgen.Generate(count, in.Random)
			if err != nil {
				status = templates.Alert(templates.AlertError, "", in.T("common.generate_failed"))
			} else {
				ids = generated
				if upper {
					ids = uuidgen.Uppercase(ids)
				}
			}
		}
		options := make([]templates.Option, 0, len(uuidgen.Counts))
		for _, n := range uuidgen.Counts {
			options = append(options, templates.Option{Value: strconv.Itoa(n), Label: strconv.Itoa(n)})
		}
		var result templ.Component = templates.Output("", "", in.T("uuid.empty"), "")
		if len(ids) > 0 {
			result = templates.List(in.T("uuid.result"), ids, in.T("common.copy"))
		}
		return templates.Group(
			templates.Form(in.Action,
				templates.Card("",
					templates.Select("count", in.T("uuid.count"), options, strconv.Itoa(count)),
					templates.Checkbox("uppercase", in.T("uuid.uppercase"), upper),
					templates.Buttons(templates.Button{Name: "action", Value: "generate", Label: in.T("uuid.generate"), Primary: true}),
				),
				templates.Card(in.T("uuid.result"), status, result),
			),
			templates.Tips(templates.AlertInfo, in.T("uuid.about_title"), in.T("uuid.about_body"), in.T("uuid.about_v4")),
		)
	})
}

func passwordPanel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		opts := passgen.DefaultOptions()
		if in.Submitted() {
			opts = passgen.Options{
				Length:  clampLength(in.Value("length")),
				Upper:   in.Checked("upper"),
				Lower:   in.Checked("lower"),
				Digits:  in.Checked("digits"),
				Symbols: in.Checked("symbols"),
			}
		}
		var password string
		var status templ.Component
		if in.Submitted() {
			generated, err := passgen.Generate(opts, in.Random)
			if err != nil {
				status = templates.Alert(templates.AlertError, "", in.T("common.generate_failed"))
			} else {
				password = generated
			}
		}
		strength := templ.Component(nil)
		if rating := passgen.Rate(password); rating != passgen.StrengthNone {
			strength = templates.Alert(strengthAlert(rating), in.T("passgen.strength"), in.T(rating.Key()))
		}
		return templates.Group(
			templates.Form(in.Action,
				templates.Columns(
					templates.Card(in.T("passgen.settings"),
						templates.Range("length", in.T("passgen.length"), opts.Length, passgen.MinLength, passgen.MaxLength),
						templates.Checkbox("upper", in.T("passgen.upper"), opts.Upper),
						templates.Checkbox("lower", in.T("passgen.lower"), opts.Lower),
						templates.Checkbox("digits", in.T("passgen.digits"), opts.Digits),
						templates.Checkbox("symbols", in.T("passgen.symbols"), opts.Symbols),
						templates.Buttons(templates.Button{Name: "action", Value: "generate", Label: in.T("passgen.generate"), Primary: true}),
					),
					templates.Card(in.T("passgen.result"),
						status,
						templates.Output("", password, in.T("common.result_placeholder"), in.T("common.copy")),
						strength,
					),
				),
			),
			templates.Tips(templates.AlertWarning, in.T("common.security"),
				in.T("passgen.tip.length"),
				in.T("passgen.tip.classes"),
				in.T("passgen.tip.reuse"),
				in.T("passgen.tip.rotate"),
			),
		)
	})
}

func clampLength(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return passgen.DefaultLength
	}
	return min(max(n, passgen.MinLength), passgen.MaxLength)
}

func strengthAlert(rating passgen.Strength) templates.AlertKind {
	switch rating {
	case passgen.StrengthWeak:
		return templates.AlertError
	case passgen.StrengthMedium:
		return templates.AlertWarning
	case passgen.StrengthStrong:
		return templates.AlertSuccess
	default:
		return templates.AlertInfo
	}
}

func qrcodePanel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		content := in.RawValue("content")
		size := qrcode.ParseSize(in.Value("size"))
		var preview templ.Component = templates.Output("", "", in.T("qrcode.empty"), "")
		var status templ.Component
		if in.Submitted() {
			image, err := qrcode.Render(content, size)
			switch {
			case err == nil:
				preview = templates.Figure(image.DataURL(), content, image.Size, "qrcode.png", in.T("common.download"))
			case errors.Is(err, qrcode.ErrEmptyContent):
				status = templates.Alert(templates.AlertWarning, "", in.T("qrcode.empty_content"))
			default:
				status = templates.Alert(templates.AlertError, "", in.T("common.generate_failed"))
			}
		}
		options := make([]templates.Option, 0, len(qrcode.Sizes()))
		for _, candidate := range qrcode.Sizes() {
			label := strconv.Itoa(candidate)
			options = append(options, templates.Option{Value: label, Label: label + " × " + label})
		}
		return templates.Group(
			templates.Form(in.Action,
				templates.Columns(
					templates.Card(in.T("qrcode.content"),
						templates.TextArea("content", "", content, in.T("qrcode.placeholder"), 6),
						templates.Select("size", in.T("qrcode.size"), options, strconv.Itoa(size)),
						templates.Buttons(templates.Button{Name: "action", Value: "generate", Label: in.T("qrcode.generate"), Primary: true}),
					),
					templates.Card(in.T("qrcode.preview"), status, preview),
				),
			),
			templates.Tips(templates.AlertInfo, in.T("common.tips"),
				in.T("qrcode.tip.content"),
				in.T("qrcode.tip.size"),
				in.T("qrcode.tip.download"),
			),
		)
	})
}
