package cldr

import (
	"log/slog"
	"runtime"
)

// fallbackDefaultLocale is the hardcoded last resort of the default-locale
// provider chain.
const fallbackDefaultLocale = "en"

// Config captures catalog setup. It is immutable after NewConfig returns and
// is injected into every component at construction time; there is no
// package-level configuration state.
type Config struct {
	Source            Source
	DataPath          string
	DefaultLocale     string
	Locales           []string
	Translations      TranslationProvider
	Logger            *slog.Logger
	RelaxedValidation bool
	ScanConcurrency   int
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Source == nil && cfg.DataPath != "" {
		cfg.Source = NewFileSource(cfg.DataPath)
	}
	if cfg.Source == nil {
		return nil, ErrNoSource
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ScanConcurrency <= 0 {
		cfg.ScanConcurrency = runtime.GOMAXPROCS(0)
	}

	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	return cfg, nil
}

// WithSource sets the raw document source.
func WithSource(source Source) Option {
	return func(c *Config) error {
		c.Source = source
		return nil
	}
}

// WithDataPath points the catalog at a directory of locale and auxiliary
// documents; a FileSource is built from it when no explicit source is set.
func WithDataPath(path string) Option {
	return func(c *Config) error {
		c.DataPath = path
		return nil
	}
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers the requested locale entries. Entries may contain
// wildcard syntax; they are expanded against the known locale universe when
// the catalog is built.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithTranslations wires the translation-catalog collaborator.
func WithTranslations(provider TranslationProvider) Option {
	return func(c *Config) error {
		c.Translations = provider
		return nil
	}
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRelaxedValidation downgrades missing required modules from a load
// failure to a warning. Intended for development against partial data sets.
func WithRelaxedValidation() Option {
	return func(c *Config) error {
		c.RelaxedValidation = true
		return nil
	}
}

// WithScanConcurrency bounds the similarity scan fan-out. Defaults to
// GOMAXPROCS.
func WithScanConcurrency(n int) Option {
	return func(c *Config) error {
		c.ScanConcurrency = n
		return nil
	}
}

// resolveDefaultLocale evaluates the default-locale provider chain in
// priority order, short-circuiting on the first non-absent result: explicit
// configuration, then the translation collaborator's default, then the
// hardcoded fallback.
func (cfg *Config) resolveDefaultLocale() string {
	providers := []func() string{
		func() string { return cfg.DefaultLocale },
		func() string {
			if cfg.Translations == nil {
				return ""
			}
			return normalizeLocale(cfg.Translations.DefaultLocale())
		},
		func() string { return fallbackDefaultLocale },
	}

	for _, provide := range providers {
		if locale := provide(); locale != "" {
			return locale
		}
	}
	return fallbackDefaultLocale
}
