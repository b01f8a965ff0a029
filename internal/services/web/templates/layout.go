package templates

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/catalog"
	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/platform/icons"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
	"github.com/louisbranch/toolbox/internal/tools/metatags"
)

// CategoryLink is one category entry in navigation and cards.
type CategoryLink struct {
	Name  string
	URL   string
	Icon  icons.ID
	Count int
}

// PageContext carries the shell state shared by every page.
type PageContext struct {
	Locale i18n.Locale
	Loc    Localizer
	Site   catalog.Site
	// Path is the unprefixed path of the current page, used by the language
	// switcher.
	Path     string
	RawQuery string
	Theme    string

	Title       string
	Description string
	Keywords    []string
	Robots      string

	Categories  []CategoryLink
	Breadcrumbs []BreadcrumbItem
	Search      string
	Year        int
}

// ReturnTo is the localized URL of the current page, used by preference
// forms to come back after posting.
func (p PageContext) ReturnTo() string {
	target := routepath.Localized(p.Locale.String(), p.Path)
	if p.RawQuery != "" {
		target += "?" + p.RawQuery
	}
	return target
}

func (p PageContext) year() int {
	if p.Year > 0 {
		return p.Year
	}
	return time.Now().Year()
}

// Layout renders the page shell around the children in ctx.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head, err := metatags.Build(metatags.Fields{
			Title:       page.Title,
			Description: page.Description,
			Keywords:    strings.Join(page.Keywords, ", "),
			Author:      page.Site.Author,
			Robots:      page.Robots,
		})
		if err != nil {
			return err
		}
		lang := page.Locale.String()
		b := newBuilder(ctx, w)
		b.raw("<!DOCTYPE html><html")
		b.attr("lang", page.Locale.Tag().String())
		if page.Theme == "dark" {
			b.raw(` class="dark"`)
		}
		b.raw("><head>", head)
		b.raw(`<meta name="theme-color"`)
		b.attr("content", page.Site.PrimaryColor)
		b.raw(">")
		for _, locale := range i18n.Supported() {
			b.raw(`<link rel="alternate"`)
			b.attr("hreflang", locale.String())
			b.attr("href", strings.TrimRight(page.Site.URL, "/")+routepath.Localized(locale.String(), page.Path))
			b.raw(">")
		}
		b.raw(`<link rel="manifest"`)
		b.attr("href", routepath.Manifest)
		b.raw(`><link rel="icon" type="image/svg+xml"`)
		b.attr("href", routepath.StaticAsset("icon.svg"))
		b.raw(`><link rel="stylesheet"`)
		b.attr("href", routepath.StaticAsset("app.css"))
		b.raw(`><script defer`)
		b.attr("src", routepath.StaticAsset("app.js"))
		b.raw("></script></head><body>")
		b.render(icons.Sprite())
		b.render(header(page, lang))
		b.raw(`<main class="container">`)
		b.render(Breadcrumbs(page.Breadcrumbs))
		b.render(templ.GetChildren(ctx))
		b.raw("</main>")
		b.render(footer(page, lang))
		b.raw("</body></html>")
		return b.err
	})
}

func header(page PageContext, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		b := newBuilder(ctx, w)
		b.raw(`<header class="site-header"><div class="container header-row"><a class="brand"`)
		b.attr("href", routepath.Home(lang))
		b.raw(">")
		b.render(icons.Icon(icons.Box, "brand-icon"))
		b.raw("<span>")
		b.text(T(loc, "site.name"))
		b.raw(`</span></a><nav class="site-nav">`)
		for _, item := range []struct {
			key  string
			path string
		}{
			{key: "site.home", path: routepath.Root},
			{key: "site.tools", path: routepath.Tools},
			{key: "site.about", path: routepath.About},
		} {
			b.raw("<a")
			b.attr("href", routepath.Localized(lang, item.path))
			if isActive(page.Path, item.path) {
				b.raw(` class="active" aria-current="page"`)
			}
			b.raw(">")
			b.text(T(loc, item.key))
			b.raw("</a>")
		}
		b.raw(`</nav><form class="search" method="get" role="search"`)
		b.attr("action", routepath.ToolsList(lang))
		b.raw(">")
		b.render(icons.Icon(icons.Search, "search-icon"))
		b.raw(`<input type="search" name="q" class="input"`)
		b.attr("value", page.Search)
		b.attr("placeholder", T(loc, "nav.search_placeholder"))
		b.attr("aria-label", T(loc, "nav.search"))
		b.raw(`></form><div class="header-tools"><nav class="lang-switch"`)
		b.attr("aria-label", T(loc, "nav.language"))
		b.raw(">")
		b.render(icons.Icon(icons.Languages, ""))
		for _, locale := range i18n.Supported() {
			target := routepath.Localized(locale.String(), page.Path)
			if page.RawQuery != "" {
				target += "?" + page.RawQuery
			}
			b.raw("<a")
			b.attr("href", target)
			b.attr("hreflang", locale.String())
			if locale == page.Locale {
				b.raw(` class="active" aria-current="true"`)
			}
			b.raw(">")
			b.text(T(loc, "lang."+locale.String()))
			b.raw("</a>")
		}
		b.raw(`</nav><form method="post" class="theme-toggle"`)
		b.attr("action", routepath.Theme(lang))
		b.raw(`><input type="hidden" name="return"`)
		b.attr("value", page.ReturnTo())
		b.raw(`><button type="submit" class="btn btn-icon"`)
		b.attr("title", T(loc, "nav.theme_toggle"))
		b.attr("aria-label", T(loc, "nav.theme_toggle"))
		b.raw(">")
		if page.Theme == "dark" {
			b.render(icons.Icon(icons.Sun, ""))
		} else {
			b.render(icons.Icon(icons.Moon, ""))
		}
		b.raw("</button></form></div></div></header>")
		return b.err
	})
}

func footer(page PageContext, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		b := newBuilder(ctx, w)
		b.raw(`<footer class="site-footer"><div class="container footer-grid"><section><h3>`)
		b.text(T(loc, "site.name"))
		b.raw("</h3><p>")
		b.text(T(loc, "site.description"))
		b.raw("</p></section><section><h3>")
		b.text(T(loc, "site.quick_links"))
		b.raw("</h3><ul>")
		for _, link := range []struct {
			key string
			url string
		}{
			{key: "site.home", url: routepath.Home(lang)},
			{key: "site.all_tools", url: routepath.ToolsList(lang)},
			{key: "site.about", url: routepath.AboutPage(lang)},
		} {
			b.raw("<li><a")
			b.attr("href", link.url)
			b.raw(">")
			b.text(T(loc, link.key))
			b.raw("</a></li>")
		}
		b.raw("</ul></section><section><h3>")
		b.text(T(loc, "site.categories"))
		b.raw("</h3><ul>")
		for _, category := range page.Categories {
			b.raw("<li><a")
			b.attr("href", category.URL)
			b.raw(">")
			b.text(category.Name)
			b.raw("</a></li>")
		}
		b.raw(`</ul></section></div><p class="copyright">`)
		b.text(T(loc, "footer.copyright", strconv.Itoa(page.year()), T(loc, "site.name")))
		b.raw("</p></footer>")
		return b.err
	})
}

func isActive(current string, target string) bool {
	if target == routepath.Root {
		return current == routepath.Root || current == ""
	}
	return current == target || strings.HasPrefix(current, target+"/")
}
