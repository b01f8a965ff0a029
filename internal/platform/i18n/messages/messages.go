// Package messages loads the per-locale text bundles for the toolbox shell.
//
// Bundles are YAML files embedded in the binary. They are parsed on first use
// and memoized per locale; concurrent first requests for the same locale share
// one load.
package messages

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/message"
	textcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/louisbranch/toolbox/internal/platform/i18n"
)

//go:embed locales/*.yaml
var embeddedFS embed.FS

// Embedded returns the bundled locale files.
func Embedded() fs.FS {
	return embeddedFS
}

type bundleFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every message for one locale.
type Bundle struct {
	locale   i18n.Locale
	messages map[string]string
	builder  *textcatalog.Builder
}

// Locale returns the bundle locale.
func (b *Bundle) Locale() i18n.Locale {
	return b.locale
}

// Message returns the raw message for key.
func (b *Bundle) Message(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	value, ok := b.messages[strings.TrimSpace(key)]
	return value, ok
}

// Keys returns every message key, sorted.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, 0, len(b.messages))
	for key := range b.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Printer returns an x/text printer that resolves keys from this bundle.
func (b *Bundle) Printer() *message.Printer {
	return message.NewPrinter(b.locale.Tag(), message.Catalog(b.builder))
}

// Loader lazily loads bundles from a filesystem laid out as
// locales/<locale>.yaml.
type Loader struct {
	fsys          fs.FS
	defaultLocale i18n.Locale
	logger        *zap.Logger

	group   singleflight.Group
	mu      sync.RWMutex
	bundles map[i18n.Locale]*Bundle
}

// NewLoader builds a loader. A nil logger discards load warnings.
func NewLoader(fsys fs.FS, defaultLocale i18n.Locale, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !i18n.IsSupported(defaultLocale) {
		defaultLocale = i18n.DefaultLocale
	}
	return &Loader{
		fsys:          fsys,
		defaultLocale: defaultLocale,
		logger:        logger,
		bundles:       make(map[i18n.Locale]*Bundle),
	}
}

// Bundle returns the bundle for locale. When that bundle cannot be loaded
// the default locale's bundle is returned instead and a warning is logged.
// An error is returned only when the default bundle is unavailable too.
func (l *Loader) Bundle(ctx context.Context, locale i18n.Locale) (*Bundle, error) {
	bundle, err := l.load(ctx, locale)
	if err == nil {
		return bundle, nil
	}
	if locale == l.defaultLocale {
		return nil, err
	}
	l.logger.Warn("locale bundle unavailable, using default",
		zap.String("locale", locale.String()),
		zap.String("fallback", l.defaultLocale.String()),
		zap.Error(err),
	)
	fallback, fallbackErr := l.load(ctx, l.defaultLocale)
	if fallbackErr != nil {
		return nil, fmt.Errorf("load default bundle after %v: %w", err, fallbackErr)
	}
	return fallback, nil
}

// Preload loads every supported locale, failing on the first error.
func (l *Loader) Preload(ctx context.Context) error {
	for _, locale := range i18n.Supported() {
		if _, err := l.load(ctx, locale); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) cached(locale i18n.Locale) (*Bundle, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	bundle, ok := l.bundles[locale]
	return bundle, ok
}

func (l *Loader) load(ctx context.Context, locale i18n.Locale) (*Bundle, error) {
	if bundle, ok := l.cached(locale); ok {
		return bundle, nil
	}
	result := l.group.DoChan(locale.String(), func() (any, error) {
		if bundle, ok := l.cached(locale); ok {
			return bundle, nil
		}
		bundle, err := parseBundle(l.fsys, locale)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.bundles[locale] = bundle
		l.mu.Unlock()
		return bundle, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Bundle), nil
	}
}

func parseBundle(fsys fs.FS, locale i18n.Locale) (*Bundle, error) {
	if !i18n.IsSupported(locale) {
		return nil, fmt.Errorf("locale %q is not supported", locale)
	}
	if fsys == nil {
		return nil, fmt.Errorf("locale filesystem is required")
	}
	path := "locales/" + locale.String() + ".yaml"
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read bundle %s: %w", path, err)
	}
	var file bundleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bundle %s: %w", path, err)
	}
	if strings.TrimSpace(file.Locale) != locale.String() {
		return nil, fmt.Errorf("bundle %s: locale %q must match file locale %q", path, file.Locale, locale)
	}
	if len(file.Messages) == 0 {
		return nil, fmt.Errorf("bundle %s: messages are required", path)
	}

	tag := locale.Tag()
	builder := textcatalog.NewBuilder(textcatalog.Fallback(tag))
	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			return nil, fmt.Errorf("bundle %s: message key cannot be blank", path)
		}
		if _, exists := messages[trimmed]; exists {
			return nil, fmt.Errorf("bundle %s: duplicate key %q", path, trimmed)
		}
		if err := builder.SetString(tag, trimmed, value); err != nil {
			return nil, fmt.Errorf("bundle %s: register %q: %w", path, trimmed, err)
		}
		messages[trimmed] = value
	}
	return &Bundle{locale: locale, messages: messages, builder: builder}, nil
}
