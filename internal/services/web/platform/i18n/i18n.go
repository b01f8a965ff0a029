// Package i18n resolves the active locale for one web request.
package i18n

import (
	"context"
	"strings"
	"sync"

	platformi18n "github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/services/web/platform/prefs"
	"go.uber.org/zap"
)

// Sources are the inputs consulted by Init, in precedence order.
type Sources struct {
	URLSegment     string
	Stored         string
	AcceptLanguage string
}

// Resolver holds the current locale of one visitor request.
type Resolver struct {
	defaultLocale platformi18n.Locale
	store         prefs.Store
	logger        *zap.Logger

	mu      sync.RWMutex
	current platformi18n.Locale
}

// NewResolver builds a resolver starting at defaultLocale. An unsupported
// default falls back to the package default. store may be nil.
func NewResolver(defaultLocale platformi18n.Locale, store prefs.Store, logger *zap.Logger) *Resolver {
	if !platformi18n.IsSupported(defaultLocale) {
		defaultLocale = platformi18n.DefaultLocale
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		defaultLocale: defaultLocale,
		store:         store,
		logger:        logger,
		current:       defaultLocale,
	}
}

// Default returns the configured default locale.
func (r *Resolver) Default() platformi18n.Locale {
	return r.defaultLocale
}

// Init picks the starting locale: a supported URL segment, then the stored
// preference, then Accept-Language, then the default.
func (r *Resolver) Init(sources Sources) platformi18n.Locale {
	locale := r.defaultLocale
	if segment, ok := urlLocale(sources.URLSegment); ok {
		locale = segment
	} else if stored, ok := platformi18n.Parse(sources.Stored); ok {
		locale = stored
	} else if accepted, ok := platformi18n.MatchAcceptLanguage(sources.AcceptLanguage); ok {
		locale = accepted
	}
	r.mu.Lock()
	r.current = locale
	r.mu.Unlock()
	return locale
}

// Set switches to locale and persists it. Unsupported values are ignored.
// A persistence failure is logged and the in-memory switch stands.
func (r *Resolver) Set(locale platformi18n.Locale) {
	if !platformi18n.IsSupported(locale) {
		return
	}
	r.mu.Lock()
	r.current = locale
	r.mu.Unlock()

	if r.store == nil {
		return
	}
	if stored, ok := prefs.Language(r.store); ok && stored == locale.String() {
		return
	}
	if err := prefs.SetLanguage(r.store, locale.String()); err != nil {
		r.logger.Warn("persist locale preference", zap.String("locale", locale.String()), zap.Error(err))
	}
}

// Current returns the active locale.
func (r *Resolver) Current() platformi18n.Locale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SegmentLocale maps a URL segment to a supported locale. Only exact
// lowercase codes are accepted.
func SegmentLocale(segment string) (platformi18n.Locale, bool) {
	return urlLocale(segment)
}

func urlLocale(segment string) (platformi18n.Locale, bool) {
	segment = strings.TrimSpace(segment)
	if !platformi18n.LooksLikeLanguage(segment) {
		return "", false
	}
	locale := platformi18n.Locale(segment)
	if !platformi18n.IsSupported(locale) {
		return "", false
	}
	return locale, true
}

type localeKey struct{}

// WithLocale stores locale in ctx.
func WithLocale(ctx context.Context, locale platformi18n.Locale) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeKey{}, locale)
}

// FromContext returns the locale stored in ctx, or the package default.
func FromContext(ctx context.Context) platformi18n.Locale {
	if ctx != nil {
		if locale, ok := ctx.Value(localeKey{}).(platformi18n.Locale); ok && platformi18n.IsSupported(locale) {
			return locale
		}
	}
	return platformi18n.DefaultLocale
}
