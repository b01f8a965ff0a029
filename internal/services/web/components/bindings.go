package components

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/toolbox/internal/tools/qrcode"
	"github.com/louisbranch/toolbox/internal/tools/timestamp"
)

// DefaultBindings returns one binding per built-in tool.
func DefaultBindings() []Binding {
	return []Binding{
		{ToolID: "meta-generator", Load: static(metaPanel), DefaultEnabled: true, Order: 1},
		{ToolID: "json-formatter", Load: static(jsonPanel), DefaultEnabled: true, Order: 2},
		{ToolID: "base64-tool", Load: static(base64Panel), DefaultEnabled: true, Order: 3},
		{ToolID: "url-tool", Load: static(urlPanel), DefaultEnabled: true, Order: 4},
		{ToolID: "md5-tool", Load: static(md5Panel), DefaultEnabled: true, Order: 5},
		{ToolID: "timestamp-converter", Load: loadTimestampPanel, DefaultEnabled: true, Order: 6},
		{ToolID: "qrcode-generator", Load: loadQRCodePanel, DefaultEnabled: true, Order: 7},
		{ToolID: "color-converter", Load: static(colorPanel), DefaultEnabled: true, Order: 8},
		{ToolID: "uuid-generator", Load: static(uuidPanel), DefaultEnabled: true, Order: 9},
		{ToolID: "password-generator", Load: static(passwordPanel), DefaultEnabled: true, Order: 10},
	}
}

func static(build func() Panel) Loader {
	return func(context.Context) (Panel, error) {
		return build(), nil
	}
}

// loadTimestampPanel checks that every selectable zone is available.
func loadTimestampPanel(ctx context.Context) (Panel, error) {
	for _, zone := range timestamp.Zones {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := time.LoadLocation(zone); err != nil {
			return nil, fmt.Errorf("load zone %s: %w", zone, err)
		}
	}
	return timestampPanel(), nil
}

// loadQRCodePanel renders one probe code so encoder failures surface on
// first use of the page.
func loadQRCodePanel(ctx context.Context) (Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := qrcode.Render("toolbox", qrcode.MinSize); err != nil {
		return nil, fmt.Errorf("probe qr encoder: %w", err)
	}
	return qrcodePanel(), nil
}
