// Package toolbox parses toolbox command configuration and starts the web
// service.
package toolbox

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	entrypoint "github.com/louisbranch/toolbox/internal/platform/cmd"
	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/platform/logging"
	"github.com/louisbranch/toolbox/internal/services/web"
)

// Config holds toolbox command configuration. Variables are read with the
// TOOLBOX_ prefix, so HTTP_ADDR is TOOLBOX_HTTP_ADDR.
type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":8080"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"zh"`
	SiteURL       string `env:"SITE_URL"`
	SecureCookies bool   `env:"SECURE_COOKIES" envDefault:"true"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	if _, ok := i18n.Parse(cfg.DefaultLocale); !ok {
		return Config{}, fmt.Errorf("default locale %q is not supported", cfg.DefaultLocale)
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DefaultLocale, "default-locale", cfg.DefaultLocale, "Locale used when no preference matches")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Canonical site URL used in alternate links")
	fs.BoolVar(&cfg.SecureCookies, "secure-cookies", cfg.SecureCookies, "Mark preference cookies Secure")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, console)")
}

// Run starts the toolbox web service and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	webCfg := cfg.webConfig(logger.Named("web"))
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceToolbox, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, webCfg)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		logger.Info("starting toolbox", zap.String("addr", cfg.HTTPAddr), zap.String("default_locale", webCfg.DefaultLocale.String()))
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func (c Config) webConfig(logger *zap.Logger) web.Config {
	return web.Config{
		HTTPAddr:      c.HTTPAddr,
		DefaultLocale: i18n.Normalize(c.DefaultLocale, i18n.DefaultLocale),
		SiteURL:       c.SiteURL,
		SecureCookies: c.SecureCookies,
		Logger:        logger,
	}
}
