package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/catalog"
	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/platform/i18n/messages"
	"github.com/louisbranch/toolbox/internal/platform/requestctx"
	"github.com/louisbranch/toolbox/internal/registry"
	"github.com/louisbranch/toolbox/internal/services/web/components"
	weberrors "github.com/louisbranch/toolbox/internal/services/web/platform/errors"
	"github.com/louisbranch/toolbox/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/toolbox/internal/services/web/platform/i18n"
	"github.com/louisbranch/toolbox/internal/services/web/platform/prefs"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
	"github.com/louisbranch/toolbox/internal/services/web/templates"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

const (
	maxFeatured  = 6
	maxFormBytes = 1 << 20
)

// app renders pages for one configured site.
type app struct {
	site          catalog.Site
	tools         *registry.Resolver
	panels        *components.Registry
	bundles       *messages.Loader
	defaultLocale i18n.Locale
	secureCookies bool
	logger        *zap.Logger
	now           func() time.Time
}

// request is the per-request page state.
type request struct {
	w       http.ResponseWriter
	r       *http.Request
	store   prefs.Store
	locale  i18n.Locale
	printer *message.Printer
	match   Match
}

func (req *request) t(key string, args ...any) string {
	return templates.T(req.printer, key, args...)
}

func (a *app) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if httpx.RedirectTrailingSlash(w, r) {
		return
	}
	store := prefs.NewCookieStore(w, r, a.secureCookies)
	resolver := webi18n.NewResolver(a.defaultLocale, store, a.logger)
	_, segment := routepath.StripLocale(r.URL.Path)
	stored, _ := prefs.Language(store)
	resolver.Init(webi18n.Sources{
		URLSegment:     segment,
		Stored:         stored,
		AcceptLanguage: r.Header.Get("Accept-Language"),
	})

	match := Resolve(r.URL.Path, resolver.Current())
	if match.Kind == MatchRedirect {
		location := match.Location
		if r.URL.RawQuery != "" {
			location += "?" + r.URL.RawQuery
		}
		httpx.WriteRedirect(w, r, location)
		return
	}

	locale := resolver.Current()
	if match.Prefixed() && match.Kind == MatchPage {
		if match.Supported {
			resolver.Set(match.Locale)
			locale = resolver.Current()
		} else {
			locale = resolver.Default()
		}
	}

	ctx := webi18n.WithLocale(r.Context(), locale)
	bundle, err := a.bundles.Bundle(ctx, locale)
	if err != nil {
		a.logger.Error("load locale bundle", zap.String("locale", locale.String()), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	req := &request{
		w:       w,
		r:       r.WithContext(ctx),
		store:   store,
		locale:  bundle.Locale(),
		printer: bundle.Printer(),
		match:   match,
	}
	a.dispatch(req)
}

func (a *app) dispatch(req *request) {
	if req.match.Kind != MatchPage {
		a.renderNotFound(req)
		return
	}
	switch req.match.Page {
	case PageHome:
		a.serveHome(req)
	case PageTools:
		a.serveTools(req)
	case PageAbout:
		a.serveAbout(req)
	case PageCategory:
		a.serveCategory(req)
	case PageTool:
		a.serveTool(req)
	case ActionTheme:
		a.toggleTheme(req)
	case ActionFavorite:
		a.toggleFavorite(req)
	case ActionClearSearches:
		a.clearSearches(req)
	default:
		a.renderNotFound(req)
	}
}

func (a *app) serveHome(req *request) {
	favorites := prefs.Favorites(req.store)
	view := templates.HomeView{
		Featured:   a.cards(req, limit(a.tools.Featured(), maxFeatured), favorites),
		Favorites:  a.cards(req, a.lookup(favorites), favorites),
		Recent:     a.cards(req, a.lookup(prefs.RecentTools(req.store)), favorites),
		Categories: a.categoryLinks(req),
	}
	page := a.pageContext(req)
	page.Title = req.t("site.name")
	page.Description = req.t("site.description")
	a.render(req, http.StatusOK, page, templates.HomePage(page, view))
}

func (a *app) serveTools(req *request) {
	query := strings.TrimSpace(req.r.URL.Query().Get("q"))
	tools := a.tools.Enabled()
	if query != "" {
		tools = a.tools.Search(query, req.locale, func(key string) string { return req.t(key) })
		if err := prefs.AddRecentSearch(req.store, query); err != nil {
			a.logger.Warn("record recent search", zap.Error(err))
		}
	}
	page := a.pageContext(req)
	page.Title = req.t("site.tools") + " - " + req.t("site.name")
	page.Description = req.t("site.description")
	page.Search = query
	page.Breadcrumbs = []templates.BreadcrumbItem{
		{Label: req.t("site.home"), URL: routepath.Home(req.locale.String())},
		{Label: req.t("site.all_tools")},
	}
	view := templates.ListingView{
		Heading:    req.t("site.all_tools"),
		Query:      query,
		Searchable: true,
		Recent:     prefs.RecentSearches(req.store),
		Tools:      a.cards(req, tools, prefs.Favorites(req.store)),
	}
	a.render(req, http.StatusOK, page, templates.ListingPage(page, view))
}

func (a *app) serveAbout(req *request) {
	page := a.pageContext(req)
	page.Title = req.t("site.about") + " - " + req.t("site.name")
	page.Description = req.t("site.description")
	page.Breadcrumbs = []templates.BreadcrumbItem{
		{Label: req.t("site.home"), URL: routepath.Home(req.locale.String())},
		{Label: req.t("site.about")},
	}
	a.render(req, http.StatusOK, page, templates.AboutPage(page))
}

func (a *app) serveCategory(req *request) {
	category, ok := a.tools.CategoryByID(req.match.CategoryID)
	if !ok {
		a.renderNotFound(req)
		return
	}
	name := req.t(category.TranslationKey)
	page := a.pageContext(req)
	page.Title = name + " - " + req.t("site.name")
	page.Description = req.t("site.description")
	page.Breadcrumbs = []templates.BreadcrumbItem{
		{Label: req.t("site.home"), URL: routepath.Home(req.locale.String())},
		{Label: name},
	}
	view := templates.ListingView{
		Heading: name,
		Icon:    category.Icon,
		Tools:   a.cards(req, a.tools.ByCategory(category.ID), prefs.Favorites(req.store)),
		Empty:   req.t("category.empty"),
	}
	a.render(req, http.StatusOK, page, templates.ListingPage(page, view))
}

func (a *app) serveTool(req *request) {
	tool, ok := a.visibleTool(req.match.ToolID)
	if !ok || tool.CategoryID != req.match.CategoryID {
		a.renderNotFound(req)
		return
	}
	if req.r.Method != http.MethodGet && req.r.Method != http.MethodHead && req.r.Method != http.MethodPost {
		httpx.MethodNotAllowed("GET, HEAD, POST")(req.w, req.r)
		return
	}
	if req.r.Method == http.MethodPost {
		req.r.Body = http.MaxBytesReader(req.w, req.r.Body, maxFormBytes)
		if err := req.r.ParseForm(); err != nil {
			a.renderError(req, weberrors.Wrap(weberrors.KindInvalidInput, "error.invalid_input", err))
			return
		}
	}
	if err := prefs.AddRecentTool(req.store, tool.ID); err != nil {
		a.logger.Warn("record recent tool", zap.String("tool_id", tool.ID), zap.Error(err))
	}

	lang := req.locale.String()
	seo := tool.SEOFor(req.locale)
	category, _ := a.tools.CategoryByID(tool.CategoryID)
	page := a.pageContext(req)
	page.Title = seo.Title
	page.Description = seo.Description
	page.Keywords = seo.Keywords
	page.Breadcrumbs = []templates.BreadcrumbItem{
		{Label: req.t("site.home"), URL: routepath.Home(lang)},
		{Label: req.t(category.TranslationKey), URL: routepath.Category(lang, category.ID)},
		{Label: req.t(tool.NameKey())},
	}

	var body templ.Component
	panel, err := a.panels.Load(req.r.Context(), tool.ID)
	switch {
	case err == nil:
		body = panel.Render(components.Input{
			Method: req.r.Method,
			Form:   req.r.PostForm,
			Locale: req.locale,
			Loc:    req.printer,
			Action: routepath.Tool(lang, tool.CategoryID, tool.ID),
			Now:    a.now,
		})
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return
	default:
		var failure *components.DeferredLoadFailure
		if !errors.As(err, &failure) {
			a.renderError(req, weberrors.Wrap(weberrors.KindLoadFailed, "error.load_failed.body", err))
			return
		}
		body = templates.LoadFailurePanel(page)
	}
	view := templates.ToolView{
		ID:          tool.ID,
		Name:        req.t(tool.NameKey()),
		Description: req.t(tool.DescriptionKey()),
		Icon:        tool.Icon,
		Favorite:    prefs.IsFavorite(req.store, tool.ID),
		Panel:       body,
	}
	a.render(req, http.StatusOK, page, templates.ToolPage(page, view))
}

func (a *app) toggleTheme(req *request) {
	if !a.requirePost(req) {
		return
	}
	if _, err := prefs.ToggleTheme(req.store, prefs.Theme(a.site.DefaultTheme)); err != nil {
		a.logger.Warn("toggle theme", zap.Error(err))
	}
	httpx.WriteRedirect(req.w, req.r, a.returnTo(req))
}

func (a *app) toggleFavorite(req *request) {
	if !a.requirePost(req) {
		return
	}
	if _, ok := a.visibleTool(req.match.ToolID); !ok {
		a.renderNotFound(req)
		return
	}
	if _, err := prefs.ToggleFavorite(req.store, req.match.ToolID); err != nil {
		a.logger.Warn("toggle favorite", zap.String("tool_id", req.match.ToolID), zap.Error(err))
	}
	httpx.WriteRedirect(req.w, req.r, a.returnTo(req))
}

func (a *app) clearSearches(req *request) {
	if !a.requirePost(req) {
		return
	}
	if err := prefs.ClearRecentSearches(req.store); err != nil {
		a.logger.Warn("clear recent searches", zap.Error(err))
	}
	httpx.WriteRedirect(req.w, req.r, a.returnTo(req))
}

func (a *app) requirePost(req *request) bool {
	if req.r.Method == http.MethodPost {
		return true
	}
	req.w.Header().Set("Allow", http.MethodPost)
	a.renderError(req, weberrors.EK(weberrors.KindMethod, "error.method_not_allowed", "preference actions accept POST only"))
	return false
}

// returnTo reads the posted return path. Only local absolute paths are
// accepted; anything else goes to the home page.
func (a *app) returnTo(req *request) string {
	fallback := routepath.Home(req.locale.String())
	req.r.Body = http.MaxBytesReader(req.w, req.r.Body, maxFormBytes)
	if err := req.r.ParseForm(); err != nil {
		return fallback
	}
	target, ok := localPath(req.r.PostForm.Get("return"))
	if !ok {
		return fallback
	}
	return target
}

// localPath accepts a same-origin absolute path. Control characters are
// rejected because browsers strip them before resolving the URL.
func localPath(raw string) (string, bool) {
	target := strings.TrimSpace(raw)
	if strings.ContainsFunc(target, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return "", false
	}
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return "", false
	}
	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || strings.HasPrefix(parsed.Path, "//") {
		return "", false
	}
	return target, true
}

func (a *app) renderNotFound(req *request) {
	page := a.pageContext(req)
	page.Title = req.t("error.not_found.title") + " - " + req.t("site.name")
	page.Robots = "noindex, follow"
	a.render(req, http.StatusNotFound, page, templates.NotFoundPage(page))
}

func (a *app) renderError(req *request, err error) {
	status := weberrors.HTTPStatus(err)
	a.logger.Warn("request failed",
		zap.String("path", req.r.URL.Path),
		zap.String("request_id", requestctx.RequestIDFromContext(req.r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	)
	if weberrors.IsNotFound(err) {
		a.renderNotFound(req)
		return
	}
	titleKey, bodyKey := "error.internal.title", "error.internal.body"
	if status < http.StatusInternalServerError {
		titleKey = "error.request.title"
		if key := weberrors.LocalizationKey(err); key != "" {
			bodyKey = key
		}
	}
	page := a.pageContext(req)
	page.Title = req.t(titleKey) + " - " + req.t("site.name")
	page.Robots = "noindex, follow"
	a.render(req, status, page, templates.ErrorPage(page, titleKey, bodyKey))
}

func (a *app) render(req *request, status int, page templates.PageContext, body templ.Component) {
	ctx := templ.WithChildren(req.r.Context(), body)
	html, err := templates.RenderString(ctx, templates.Layout(page))
	if err != nil {
		a.logger.Error("render page", zap.String("path", req.r.URL.Path), zap.Error(err))
		http.Error(req.w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := httpx.WriteHTML(req.w, status, html); err != nil {
		a.logger.Debug("write page", zap.Error(err))
	}
}

func (a *app) pageContext(req *request) templates.PageContext {
	path := req.match.Path
	if !req.match.Prefixed() && req.match.Kind == MatchNotFound {
		path = routepath.Root
	}
	return templates.PageContext{
		Locale:     req.locale,
		Loc:        req.printer,
		Site:       a.site,
		Path:       path,
		RawQuery:   req.r.URL.RawQuery,
		Theme:      string(prefs.ThemeOr(req.store, prefs.Theme(a.site.DefaultTheme))),
		Keywords:   a.site.Keywords,
		Categories: a.categoryLinks(req),
		Year:       a.now().Year(),
	}
}

func (a *app) categoryLinks(req *request) []templates.CategoryLink {
	categories := a.tools.EnabledCategories()
	links := make([]templates.CategoryLink, 0, len(categories))
	for _, category := range categories {
		links = append(links, templates.CategoryLink{
			Name:  req.t(category.TranslationKey),
			URL:   routepath.Category(req.locale.String(), category.ID),
			Icon:  category.Icon,
			Count: len(a.tools.ByCategory(category.ID)),
		})
	}
	return links
}

// cards drops tools without a panel binding.
func (a *app) cards(req *request, tools []catalog.Tool, favorites []string) []templates.ToolCard {
	favorite := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		favorite[id] = struct{}{}
	}
	cards := make([]templates.ToolCard, 0, len(tools))
	for _, tool := range tools {
		if _, bound := a.panels.Resolve(tool.ID); !bound {
			continue
		}
		_, isFavorite := favorite[tool.ID]
		cards = append(cards, templates.ToolCard{
			ID:          tool.ID,
			Name:        req.t(tool.NameKey()),
			Description: req.t(tool.DescriptionKey()),
			URL:         routepath.Tool(req.locale.String(), tool.CategoryID, tool.ID),
			Icon:        tool.Icon,
			Favorite:    isFavorite,
		})
	}
	return cards
}

// lookup maps stored ids to visible tools, dropping unknown ones.
func (a *app) lookup(ids []string) []catalog.Tool {
	out := make([]catalog.Tool, 0, len(ids))
	for _, id := range ids {
		if tool, ok := a.visibleTool(id); ok {
			out = append(out, tool)
		}
	}
	return out
}

func (a *app) visibleTool(id string) (catalog.Tool, bool) {
	tool, ok := a.tools.ByID(id)
	if !ok || !a.tools.IsVisible(tool) {
		return catalog.Tool{}, false
	}
	if _, bound := a.panels.Resolve(id); !bound {
		return catalog.Tool{}, false
	}
	return tool, true
}

func limit(tools []catalog.Tool, n int) []catalog.Tool {
	if len(tools) > n {
		return tools[:n]
	}
	return tools
}
