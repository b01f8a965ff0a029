package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/services/web/components"
	"github.com/louisbranch/toolbox/internal/services/web/platform/prefs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = i18n.Chinese
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) (*http.Cookie, bool) {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie, true
		}
	}
	return nil, false
}

func bindingsWithout(toolID string) []components.Binding {
	var out []components.Binding
	for _, binding := range components.DefaultBindings() {
		if binding.ToolID != toolID {
			out = append(out, binding)
		}
	}
	return out
}

func TestLegacyPathRedirectsToCurrentLocale(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/category/encode?ref=nav", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "/zh/category/encode?ref=nav" {
		t.Fatalf("Location = %q, want %q", got, "/zh/category/encode?ref=nav")
	}
}

func TestRootRedirectFollowsAcceptLanguage(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	rec := serve(handler, req)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "/en" {
		t.Fatalf("Location = %q, want %q", got, "/en")
	}
}

func TestTrailingSlashRedirectsToCanonicalPath(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/tools/", nil))
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if got := rec.Header().Get("Location"); got != "/en/tools" {
		t.Fatalf("Location = %q, want %q", got, "/en/tools")
	}
}

func TestHomePageRendersShell(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{SiteURL: "https://tools.example.org"})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<html lang="en"`,
		"Webmaster Toolbox",
		`href="https://tools.example.org/zh"`,
		`href="/en/tools/encode/base64-tool"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	cookie, ok := findCookie(rec, prefs.KeyLanguage)
	if !ok {
		t.Fatalf("expected %s cookie", prefs.KeyLanguage)
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie Path = %q, want %q", cookie.Path, "/")
	}
}

func TestUnsupportedLocaleSegmentRendersDefaultLocale(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/fr/tools", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `<html lang="zh"`) {
		t.Fatalf("expected default locale document")
	}
	if _, ok := findCookie(rec, prefs.KeyLanguage); ok {
		t.Fatalf("unexpected %s cookie for unsupported locale", prefs.KeyLanguage)
	}
}

func TestUnknownToolRendersNotFound(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	for _, path := range []string{
		"/zh/tools/encode/does-not-exist",
		"/zh/tools/dev/base64-tool",
		"/zh/category/missing",
		"/zh/nowhere",
	} {
		rec := serve(handler, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d, want %d", path, rec.Code, http.StatusNotFound)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "站长工具箱") {
			t.Fatalf("%s: expected shell in not found page", path)
		}
		if !strings.Contains(body, `content="noindex, follow"`) {
			t.Fatalf("%s: expected noindex robots meta", path)
		}
	}
}

func TestToolPageRendersEmptyFormAndRecordsVisit(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/tools/encode/base64-tool", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Base64 Encoder and Decoder") {
		t.Fatalf("expected localized SEO title")
	}
	if !strings.Contains(body, `action="/en/tools/encode/base64-tool"`) {
		t.Fatalf("expected panel form posting back to the tool")
	}
	if _, ok := findCookie(rec, prefs.KeyRecentTools); !ok {
		t.Fatalf("expected %s cookie", prefs.KeyRecentTools)
	}
}

func TestToolPagePostRendersResult(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, postForm("/en/tools/encode/base64-tool", url.Values{
		"input":  {"hello"},
		"action": {"encode"},
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "aGVsbG8=") {
		t.Fatalf("expected encoded output in body")
	}
}

func TestToolLoadFailureRendersPanelInsideShell(t *testing.T) {
	t.Parallel()

	bindings := bindingsWithout("base64-tool")
	bindings = append(bindings, components.Binding{
		ToolID: "base64-tool",
		Load: func(context.Context) (components.Panel, error) {
			return nil, errors.New("chunk unavailable")
		},
		DefaultEnabled: true,
		Order:          3,
	})
	handler := newTestHandler(t, Config{Bindings: bindings})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/tools/encode/base64-tool", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Tool failed to load") {
		t.Fatalf("expected load failure panel")
	}
	if !strings.Contains(body, `class="site-header"`) {
		t.Fatalf("expected intact shell around failure panel")
	}
}

func TestMissingBindingIsLoggedAndNotServed(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	handler := newTestHandler(t, Config{
		Bindings: bindingsWithout("url-tool"),
		Logger:   zap.New(core),
	})
	entries := logs.FilterMessage("tools without panel binding will not be served").All()
	if len(entries) != 1 {
		t.Fatalf("warning count = %d, want 1", len(entries))
	}

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/tools/encode/url-tool", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	rec = serve(handler, httptest.NewRequest(http.MethodGet, "/en/category/encode", nil))
	if strings.Contains(rec.Body.String(), `data-tool="url-tool"`) {
		t.Fatalf("unbound tool listed on category page")
	}
}

func TestStartupLogsRegisteredPanelsInOrder(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	newTestHandler(t, Config{Logger: zap.New(core)})
	entries := logs.FilterMessage("tool panels registered").All()
	if len(entries) != 1 {
		t.Fatalf("entry count = %d, want 1", len(entries))
	}
	ids, ok := entries[0].ContextMap()["tool_ids"].([]interface{})
	if !ok {
		t.Fatalf("tool_ids = %#v, want list", entries[0].ContextMap()["tool_ids"])
	}
	if len(ids) != len(components.DefaultBindings()) {
		t.Fatalf("tool_ids length = %d, want %d", len(ids), len(components.DefaultBindings()))
	}
	if ids[0] != "meta-generator" || ids[len(ids)-1] != "password-generator" {
		t.Fatalf("tool_ids = %v, want binding order", ids)
	}
}

func TestThemeToggleSetsCookieAndRedirects(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, postForm("/en/prefs/theme", url.Values{"return": {"/en/tools"}}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/en/tools" {
		t.Fatalf("Location = %q, want %q", got, "/en/tools")
	}
	cookie, ok := findCookie(rec, prefs.KeyTheme)
	if !ok {
		t.Fatalf("expected %s cookie", prefs.KeyTheme)
	}

	req := httptest.NewRequest(http.MethodGet, "/en/tools", nil)
	req.AddCookie(cookie)
	rec = serve(handler, req)
	if !strings.Contains(rec.Body.String(), `<html lang="en" class="dark"`) {
		t.Fatalf("expected dark theme after toggle")
	}
}

func TestThemeToggleRejectsForeignReturn(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	for _, target := range []string{
		"//evil.example",
		"https://evil.example/",
		`/\evil.example`,
		"/\t/evil.example",
		"/\n/evil.example",
		"/\r/evil.example",
		"/\x00/evil.example",
		"evil.example",
	} {
		rec := serve(handler, postForm("/en/prefs/theme", url.Values{"return": {target}}))
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("return %q: status = %d, want %d", target, rec.Code, http.StatusSeeOther)
		}
		if got := rec.Header().Get("Location"); got != "/en" {
			t.Fatalf("return %q: Location = %q, want %q", target, got, "/en")
		}
	}
}

func TestLocalPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "/en/tools?q=json", want: "/en/tools?q=json", ok: true},
		{raw: " /zh ", want: "/zh", ok: true},
		{raw: "/\t/evil.example"},
		{raw: "/\x7f/evil.example"},
		{raw: "//evil.example"},
		{raw: "/%2F/evil.example"},
		{raw: ""},
	}
	for _, tc := range tests {
		got, ok := localPath(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("localPath(%q) = (%q, %t), want (%q, %t)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPreferenceActionsRequirePost(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/prefs/theme", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", got, http.MethodPost)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Request not accepted") || !strings.Contains(body, "only accepts form submissions") {
		t.Fatalf("expected localized method error page")
	}
	if _, ok := findCookie(rec, prefs.KeyTheme); ok {
		t.Fatalf("unexpected %s cookie on rejected action", prefs.KeyTheme)
	}
}

func TestUnmatchedPrefixedPathDoesNotPersistLocale(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/garbage", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if _, ok := findCookie(rec, prefs.KeyLanguage); ok {
		t.Fatalf("unexpected %s cookie for unmatched path", prefs.KeyLanguage)
	}
}

func TestFavoriteToggleAddsToolToHome(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, postForm("/en/prefs/favorites/md5-tool", url.Values{"return": {"/en"}}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	cookie, ok := findCookie(rec, prefs.KeyFavorites)
	if !ok {
		t.Fatalf("expected %s cookie", prefs.KeyFavorites)
	}
	store := prefs.NewMemoryStore()
	if err := store.Set(prefs.KeyFavorites, cookie.Value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !prefs.IsFavorite(store, "md5-tool") {
		t.Fatalf("expected md5-tool to be a favorite")
	}
}

func TestClearSearchesEmptiesHistory(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/tools?q=json", nil))
	recorded, ok := findCookie(rec, prefs.KeySearches)
	if !ok {
		t.Fatalf("expected %s cookie", prefs.KeySearches)
	}

	req := postForm("/en/prefs/searches/clear", url.Values{"return": {"/en/tools"}})
	req.AddCookie(recorded)
	rec = serve(handler, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	cleared, ok := findCookie(rec, prefs.KeySearches)
	if !ok {
		t.Fatalf("expected %s cookie", prefs.KeySearches)
	}
	store := prefs.NewMemoryStore()
	if err := store.Set(prefs.KeySearches, cleared.Value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := prefs.RecentSearches(store); len(got) != 0 {
		t.Fatalf("RecentSearches() = %v, want empty", got)
	}
}

func TestSearchRecordsRecentQuery(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/en/tools?q=base64", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-tool="base64-tool"`) {
		t.Fatalf("expected base64-tool in search results")
	}
	if strings.Contains(body, `data-tool="uuid-generator"`) {
		t.Fatalf("unexpected uuid-generator in search results")
	}
	if _, ok := findCookie(rec, prefs.KeySearches); !ok {
		t.Fatalf("expected %s cookie", prefs.KeySearches)
	}
}

func TestAuxiliaryRoutes(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, Config{})
	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/up", contentType: "application/json; charset=utf-8", contains: `"status":"ok"`},
		{path: "/manifest.webmanifest", contentType: "application/manifest+json", contains: `"display":"standalone"`},
		{path: "/sw.js", contentType: "text/javascript; charset=utf-8", contains: "toolbox-shell"},
		{path: "/static/app.css", contentType: "text/css; charset=utf-8", contains: ".site-header"},
	}
	for _, tc := range tests {
		rec := serve(handler, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d", tc.path, rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Content-Type"); got != tc.contentType {
			t.Fatalf("%s: Content-Type = %q, want %q", tc.path, got, tc.contentType)
		}
		if !strings.Contains(rec.Body.String(), tc.contains) {
			t.Fatalf("%s: body missing %q", tc.path, tc.contains)
		}
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}
