package cldr

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// RootLocale is the universal fallback locale; it is always part of any
// configured locale set.
const RootLocale = "root"

// Catalog is the aggregate read path over normalized locale data. Records
// are loaded and normalized at most once per locale name and are immutable
// once published; the memoization map is the only shared mutable state.
type Catalog struct {
	cfg    *Config
	source Source
	logger *slog.Logger

	names   *SystemNameTable
	systems map[SystemName]NumberSystemDef
	known   []string

	supplemental *SupplementalData

	group   singleflight.Group
	mu      sync.RWMutex
	records map[string]*LocaleRecord
}

// New builds a Catalog from options. The available-locale list, number
// system definitions and auxiliary documents are loaded during construction;
// locale records load lazily on first Get.
func New(opts ...Option) (*Catalog, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewCatalog(cfg)
}

// NewCatalog builds a Catalog from an already-constructed Config.
func NewCatalog(cfg *Config) (*Catalog, error) {
	if cfg == nil || cfg.Source == nil {
		return nil, ErrNoSource
	}

	known, err := cfg.Source.AvailableLocales()
	if err != nil {
		return nil, fmt.Errorf("cldr: load available locales: %w", err)
	}
	known = normalizeLocales(known)

	systems, err := defaultNumberSystemDefs()
	if err != nil {
		return nil, err
	}
	if doc, err := cfg.Source.LoadDocument("number_systems"); err == nil {
		defs, err := parseNumberSystemDefs(doc)
		if err != nil {
			return nil, err
		}
		for name, def := range defs {
			systems[name] = def
		}
	} else if !isNotExist(err) {
		return nil, err
	}

	c := &Catalog{
		cfg:     cfg,
		source:  cfg.Source,
		logger:  cfg.Logger,
		names:   newSystemNameTable(systems),
		systems: systems,
		known:   known,
		records: make(map[string]*LocaleRecord),
	}

	supplemental, err := loadSupplementalData(cfg.Source, c.logger)
	if err != nil {
		return nil, err
	}
	c.supplemental = supplemental

	return c, nil
}

// KnownLocaleNames returns every locale name the source can serve, sorted.
func (c *Catalog) KnownLocaleNames() []string {
	if c == nil || len(c.known) == 0 {
		return nil
	}
	out := make([]string, len(c.known))
	copy(out, c.known)
	return out
}

// DefaultLocale evaluates the default-locale provider chain.
func (c *Catalog) DefaultLocale() string {
	if c == nil {
		return fallbackDefaultLocale
	}
	return c.cfg.resolveDefaultLocale()
}

// ConfiguredLocaleNames expands the requested entries (wildcards included)
// against the known locale universe. When requested is empty the configured
// locale entries and the translation collaborator's names are used instead.
// The result always includes the root locale.
func (c *Catalog) ConfiguredLocaleNames(requested []string) ([]string, error) {
	if c == nil {
		return nil, ErrNoSource
	}

	entries := requested
	if len(entries) == 0 {
		entries = append(entries, c.cfg.Locales...)
		if c.cfg.Translations != nil {
			for _, name := range c.cfg.Translations.KnownLocaleNames() {
				entries = append(entries, normalizeLocale(name))
			}
		}
	}

	names, err := ExpandLocaleNames(entries, c.known)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if name == RootLocale {
			return names, nil
		}
	}
	names = append(names, RootLocale)
	return normalizeLocales(names), nil
}

// UnknownLocaleNames returns the requested names, expanded, that the source
// cannot serve.
func (c *Catalog) UnknownLocaleNames(requested []string) ([]string, error) {
	names, err := ExpandLocaleNames(requested, c.known)
	if err != nil {
		return nil, err
	}

	knownSet := make(map[string]struct{}, len(c.known))
	for _, name := range c.known {
		knownSet[name] = struct{}{}
	}
	knownSet[RootLocale] = struct{}{}

	var unknown []string
	for _, name := range names {
		if _, ok := knownSet[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown, nil
}

// Get returns the normalized record for a locale, loading and normalizing it
// on first use. Concurrent first-time loads of the same name coalesce into a
// single normalization; all callers receive the same immutable record.
func (c *Catalog) Get(name string) (*LocaleRecord, error) {
	if c == nil {
		return nil, ErrNoSource
	}
	name = normalizeLocale(name)

	c.mu.RLock()
	record, ok := c.records[name]
	c.mu.RUnlock()
	if ok {
		return record, nil
	}

	value, err, _ := c.group.Do(name, func() (any, error) {
		c.mu.RLock()
		existing, ok := c.records[name]
		c.mu.RUnlock()
		if ok {
			return existing, nil
		}

		raw, err := c.source.LoadLocale(name)
		if err != nil {
			if isNotExist(err) {
				return nil, &NotFoundError{Locale: name}
			}
			return nil, err
		}

		record, err := normalizeLocaleDocument(raw, name, c.names, !c.cfg.RelaxedValidation, c.logger)
		if err != nil {
			return nil, err
		}

		// Publish once; a concurrent writer for the same key wins and the
		// later record is discarded, so readers never see divergent records.
		c.mu.Lock()
		if existing, ok := c.records[name]; ok {
			record = existing
		} else {
			c.records[name] = record
		}
		c.mu.Unlock()
		return record, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*LocaleRecord), nil
}

// FallbackChain returns the locale's parent chain ordered from closest
// parent to the root locale. The chain never contains the locale itself.
func (c *Catalog) FallbackChain(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" || locale == RootLocale {
		return nil
	}
	return append(localeParentChain(locale), RootLocale)
}

// ResolveNumberSystem resolves a symbolic reference against a locale's
// system-type map.
func (c *Catalog) ResolveNumberSystem(locale, reference string) (SystemName, error) {
	record, err := c.Get(locale)
	if err != nil {
		return "", err
	}
	return ResolveNumberSystem(record, reference)
}

// ResolveSystemType resolves a candidate string to a known system type.
func (c *Catalog) ResolveSystemType(candidate string) (SystemType, error) {
	if c == nil {
		return "", ErrNoSource
	}
	return c.names.ResolveSystemType(candidate)
}

// NumberSystemDefinition returns the definition for a system name.
func (c *Catalog) NumberSystemDefinition(name SystemName) (NumberSystemDef, bool) {
	def, ok := c.systems[name]
	return def, ok
}

// SystemNames returns every number system name known to the catalog, sorted.
func (c *Catalog) SystemNames() []SystemName {
	names := make([]SystemName, 0, len(c.systems))
	for name := range c.systems {
		names = append(names, name)
	}
	sortSystemNames(names)
	return names
}
