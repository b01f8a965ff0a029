package web

import (
	"net/http"

	"github.com/louisbranch/toolbox/internal/catalog"
	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/services/web/platform/httpx"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
)

type manifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	Lang            string         `json:"lang"`
	StartURL        string         `json:"start_url"`
	Scope           string         `json:"scope"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []manifestIcon `json:"icons"`
}

func newManifest(site catalog.Site, defaultLocale i18n.Locale) webManifest {
	return webManifest{
		Name:            site.Name,
		ShortName:       site.ShortName,
		Description:     site.Description,
		Lang:            defaultLocale.Tag().String(),
		StartURL:        routepath.Home(defaultLocale.String()),
		Scope:           routepath.Root,
		Display:         "standalone",
		BackgroundColor: site.Background,
		ThemeColor:      site.PrimaryColor,
		Icons: []manifestIcon{
			{Src: routepath.StaticAsset("icon.svg"), Sizes: "any", Type: "image/svg+xml", Purpose: "any maskable"},
		},
	}
}

func manifestHandler(site catalog.Site, defaultLocale i18n.Locale) http.Handler {
	manifest := newManifest(site, defaultLocale)
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSONAs(w, "application/manifest+json", http.StatusOK, manifest)
	})
}
