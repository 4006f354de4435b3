package cldr

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// systemFingerprint is the digit glyph set and symbol role set compared by
// the similarity scan.
type systemFingerprint struct {
	digits  string
	symbols NumberSymbols
}

// SimilarNumberSystems finds every (locale, system) pair whose digit glyphs
// and number symbols are identical to the reference pair, so format-time
// transliteration can be skipped between them. The reference is resolved
// first and resolution errors propagate. Every known locale is scanned; the
// per-locale checks are independent and read-only, so the scan fans out
// across workers bounded by the configured scan concurrency.
//
// All matching systems of a locale are retained, and the reference pair is
// always part of its own result. Results are sorted by locale then system
// for reproducibility.
func (c *Catalog) SimilarNumberSystems(locale, reference string) ([]LocaleSystem, error) {
	if c == nil {
		return nil, ErrNoSource
	}

	record, err := c.Get(locale)
	if err != nil {
		return nil, err
	}
	system, err := ResolveNumberSystem(record, reference)
	if err != nil {
		return nil, err
	}
	want, err := c.fingerprint(record, system)
	if err != nil {
		return nil, err
	}

	names := c.KnownLocaleNames()
	perLocale := make([][]LocaleSystem, len(names))

	var g errgroup.Group
	g.SetLimit(c.cfg.ScanConcurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			candidate, err := c.Get(name)
			if err != nil {
				return err
			}
			var matches []LocaleSystem
			for _, candidateSystem := range candidate.SystemNames() {
				got, err := c.fingerprint(candidate, candidateSystem)
				if err != nil {
					continue
				}
				if got == want {
					matches = append(matches, LocaleSystem{Locale: name, System: candidateSystem})
				}
			}
			perLocale[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result []LocaleSystem
	for _, matches := range perLocale {
		result = append(result, matches...)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Locale != result[j].Locale {
			return result[i].Locale < result[j].Locale
		}
		return result[i].System < result[j].System
	})
	return result, nil
}

// fingerprint fetches the digit set and symbol set for a (record, system)
// pair. Both must be present for the pair to participate in the scan.
func (c *Catalog) fingerprint(record *LocaleRecord, system SystemName) (systemFingerprint, error) {
	def, ok := c.systems[system]
	if !ok || def.Digits == "" {
		return systemFingerprint{}, fmt.Errorf("cldr: no digit data for system %q", system)
	}
	symbols, ok := record.NumberSymbols[system]
	if !ok || symbols == nil {
		return systemFingerprint{}, fmt.Errorf("cldr: locale %q has no symbol data for system %q", record.Name, system)
	}
	return systemFingerprint{digits: def.Digits, symbols: *symbols}, nil
}
