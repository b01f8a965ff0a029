// Package web hosts the toolbox browser-facing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/toolbox/internal/catalog"
	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/platform/i18n/messages"
	"github.com/louisbranch/toolbox/internal/platform/logging"
	"github.com/louisbranch/toolbox/internal/platform/timeouts"
	"github.com/louisbranch/toolbox/internal/registry"
	"github.com/louisbranch/toolbox/internal/services/web/components"
	"github.com/louisbranch/toolbox/internal/services/web/platform/httpx"
	"github.com/louisbranch/toolbox/internal/services/web/routepath"
	webstatic "github.com/louisbranch/toolbox/internal/services/web/static"
	"go.uber.org/zap"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr      string
	DefaultLocale i18n.Locale
	// SiteURL overrides the canonical site URL from the catalog.
	SiteURL       string
	SecureCookies bool
	Logger        *zap.Logger

	// Catalog defaults to catalog.Load.
	Catalog *catalog.Store
	// Bindings defaults to components.DefaultBindings.
	Bindings []components.Binding
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler. Catalog, bundle and binding problems
// are startup errors, except tools without a binding, which are logged and
// served as not found.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := logging.OrNop(cfg.Logger)
	store := cfg.Catalog
	if store == nil {
		loaded, err := catalog.Load()
		if err != nil {
			return nil, err
		}
		store = loaded
	}
	defaultLocale := cfg.DefaultLocale
	if defaultLocale == "" {
		defaultLocale = store.Site().DefaultLocale
	}
	if !i18n.IsSupported(defaultLocale) {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}
	bindings := cfg.Bindings
	if bindings == nil {
		bindings = components.DefaultBindings()
	}
	panels, err := components.NewRegistry(bindings, logger)
	if err != nil {
		return nil, err
	}
	bundles := messages.NewLoader(messages.Embedded(), defaultLocale, logger)
	if err := bundles.Preload(context.Background()); err != nil {
		return nil, fmt.Errorf("preload locale bundles: %w", err)
	}

	tools := registry.New(store)
	enabled := tools.Enabled()
	ids := make([]string, 0, len(enabled))
	for _, tool := range enabled {
		ids = append(ids, tool.ID)
	}
	if missing := panels.Missing(ids); len(missing) > 0 {
		logger.Warn("tools without panel binding will not be served", zap.Strings("tool_ids", missing))
	}
	bound := panels.Bindings()
	boundIDs := make([]string, 0, len(bound))
	for _, binding := range bound {
		boundIDs = append(boundIDs, binding.ToolID)
	}
	logger.Info("tool panels registered", zap.Strings("tool_ids", boundIDs))

	site := store.Site()
	if siteURL := strings.TrimSpace(cfg.SiteURL); siteURL != "" {
		site.URL = siteURL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	pages := &app{
		site:          site,
		tools:         tools,
		panels:        panels,
		bundles:       bundles,
		defaultLocale: defaultLocale,
		secureCookies: cfg.SecureCookies,
		logger:        logger,
		now:           now,
	}

	rootMux := http.NewServeMux()
	rootMux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, staticHandler()))
	rootMux.Handle("GET "+routepath.Manifest, manifestHandler(site, defaultLocale))
	rootMux.Handle("GET "+routepath.ServiceWorker, serviceWorkerHandler())
	rootMux.Handle("GET "+routepath.Health, http.HandlerFunc(health))
	rootMux.Handle("/", pages)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.Tracing(),
		httpx.RequestLogger(logger),
	), nil
}

func staticHandler() http.Handler {
	files := http.FileServer(http.FS(webstatic.FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

func serviceWorkerHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFileFS(w, r, webstatic.FS, "sw.js")
	})
}

func health(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := logging.OrNop(cfg.Logger)
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("web server listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
