package components

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/services/web/templates"
	"github.com/louisbranch/toolbox/internal/tools/metatags"
	"github.com/louisbranch/toolbox/internal/tools/timestamp"
)

var robotsLabels = map[string]string{
	"index, follow":     "meta.robots.index_follow",
	"noindex, follow":   "meta.robots.noindex_follow",
	"index, nofollow":   "meta.robots.index_nofollow",
	"noindex, nofollow": "meta.robots.noindex_nofollow",
}

func metaPanel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		fields := metatags.Fields{
			Title:       in.Value("title"),
			Description: in.Value("description"),
			Keywords:    in.Value("keywords"),
			Author:      in.Value("author"),
			Robots:      in.Value("robots"),
		}.Normalize()
		var output string
		var status templ.Component
		if in.Submitted() {
			built, err := metatags.Build(fields)
			if err != nil {
				status = templates.Alert(templates.AlertError, "", in.T("common.generate_failed"))
			} else {
				output = built
			}
		}
		options := make([]templates.Option, 0, len(metatags.RobotsPresets))
		for _, preset := range metatags.RobotsPresets {
			options = append(options, templates.Option{Value: preset, Label: in.T(robotsLabels[preset])})
		}
		return templates.Group(
			templates.Form(in.Action,
				templates.Columns(
					templates.Card(in.T("meta.input_title"),
						templates.Input("title", in.T("meta.title"), "text", fields.Title, in.T("meta.title_placeholder")),
						counter(in, fields.Title, metatags.MaxTitle),
						templates.TextArea("description", in.T("meta.description"), fields.Description, in.T("meta.description_placeholder"), 3),
						counter(in, fields.Description, metatags.MaxDescription),
						templates.Input("keywords", in.T("meta.keywords"), "text", fields.Keywords, in.T("meta.keywords_placeholder")),
						templates.Input("author", in.T("meta.author"), "text", fields.Author, in.T("meta.author_placeholder")),
						templates.Select("robots", in.T("meta.robots"), options, fields.Robots),
						templates.Buttons(templates.Button{Name: "action", Value: "generate", Label: in.T("meta.generate"), Primary: true}),
					),
					templates.Card(in.T("meta.result"),
						status,
						templates.Output("", output, in.T("meta.empty"), in.T("common.copy")),
					),
				),
			),
			templates.Tips(templates.AlertInfo, in.T("meta.tips_title"),
				in.T("meta.tip.title"),
				in.T("meta.tip.description"),
				in.T("meta.tip.keywords"),
				in.T("meta.tip.unique"),
			),
		)
	})
}

func counter(in Input, value string, limit int) templ.Component {
	return templates.Text(in.T("meta.char_count", len([]rune(value)), limit))
}

func timestampPanel() Panel {
	return PanelFunc(func(in Input) templ.Component {
		now := in.now()
		zone := in.Value("zone")
		if zone == "" {
			zone = timestamp.Zones[0]
		}
		loc := timestamp.LoadZone(zone)
		value := in.Value("timestamp")
		date := in.Value("date")

		var formatted string
		var instant timestamp.Instant
		var haveInstant bool
		var dateStatus, stampStatus templ.Component
		if in.Submitted() {
			switch in.Value("action") {
			case "to_date":
				out, err := timestamp.Format(value, loc)
				if err != nil {
					stampStatus = templates.Alert(templates.AlertError, "", in.T("timestamp.invalid"))
				} else {
					formatted = out
				}
			case "now":
				date = now.In(loc).Format(timestamp.InputLayout)
				instant = timestamp.FromTime(now)
				haveInstant = true
			case "to_timestamp":
				parsed, err := timestamp.ParseDate(date, loc)
				if err != nil {
					dateStatus = templates.Alert(templates.AlertError, "", in.T("timestamp.invalid_date"))
				} else {
					instant = parsed
					haveInstant = true
				}
			}
		}
		zones := make([]templates.Option, 0, len(timestamp.Zones))
		for _, name := range timestamp.Zones {
			zones = append(zones, templates.Option{Value: name, Label: name})
		}
		current := timestamp.FromTime(now)
		var seconds, millis string
		if haveInstant {
			seconds = strconv.FormatInt(instant.Seconds, 10)
			millis = strconv.FormatInt(instant.Milliseconds, 10)
		}
		return templates.Form(in.Action,
			templates.Card(in.T("timestamp.current"),
				templates.Output(in.T("timestamp.seconds"), strconv.FormatInt(current.Seconds, 10), "", in.T("common.copy")),
				templates.Output(in.T("timestamp.milliseconds"), strconv.FormatInt(current.Milliseconds, 10), "", in.T("common.copy")),
				templates.Select("zone", in.T("timestamp.zone"), zones, zone),
			),
			templates.Columns(
				templates.Card(in.T("timestamp.to_date"),
					templates.Input("timestamp", in.T("timestamp.input"), "text", value, in.T("timestamp.placeholder")),
					templates.Buttons(templates.Button{Name: "action", Value: "to_date", Label: in.T("timestamp.convert"), Primary: true}),
					stampStatus,
					templates.Output(in.T("timestamp.result"), formatted, in.T("timestamp.invalid"), in.T("common.copy")),
				),
				templates.Card(in.T("timestamp.to_timestamp"),
					templates.Input("date", in.T("timestamp.date"), "datetime-local", date, ""),
					templates.Buttons(
						templates.Button{Name: "action", Value: "to_timestamp", Label: in.T("timestamp.convert"), Primary: true},
						templates.Button{Name: "action", Value: "now", Label: in.T("timestamp.use_now")},
					),
					dateStatus,
					templates.Output(in.T("timestamp.result_seconds"), seconds, in.T("common.result_placeholder"), in.T("common.copy")),
					templates.Output(in.T("timestamp.result_millis"), millis, in.T("common.result_placeholder"), in.T("common.copy")),
				),
			),
		)
	})
}
