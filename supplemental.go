package cldr

import (
	"fmt"
	"log/slog"
)

// SupplementalData aggregates the auxiliary static documents: territory
// info and containment, aliases, likely subtags, week data, day periods,
// calendar eras and the currency code list. Each document is optional at the
// source; a malformed document is a load failure, never silently empty.
type SupplementalData struct {
	Territories   map[string]*TerritoryInfo
	Containment   map[string][]string
	Aliases       map[string]map[string]string
	LikelySubtags map[string]string
	WeekData      *WeekInfo
	DayPeriods    map[string]map[string]any
	CalendarEras  map[string][]Era
	CurrencyCodes []string
}

// WeekInfo carries per-territory week conventions.
type WeekInfo struct {
	MinDays  map[string]int
	FirstDay map[string]string
}

func loadSupplementalData(source Source, logger *slog.Logger) (*SupplementalData, error) {
	data := &SupplementalData{
		Territories:   map[string]*TerritoryInfo{},
		Containment:   map[string][]string{},
		Aliases:       map[string]map[string]string{},
		LikelySubtags: map[string]string{},
		DayPeriods:    map[string]map[string]any{},
		CalendarEras:  map[string][]Era{},
	}

	load := func(name string, apply func(map[string]any) error) error {
		doc, err := source.LoadDocument(name)
		if err != nil {
			if isNotExist(err) {
				logger.Debug("cldr: auxiliary document absent", "document", name)
				return nil
			}
			return err
		}
		if err := apply(doc); err != nil {
			return fmt.Errorf("cldr: document %s: %w", name, err)
		}
		return nil
	}

	steps := []struct {
		name  string
		apply func(map[string]any) error
	}{
		{"territory_info", func(doc map[string]any) error {
			territories, err := parseTerritoryInfo(doc)
			if err != nil {
				return err
			}
			data.Territories = territories
			return nil
		}},
		{"territory_containment", func(doc map[string]any) error {
			return parseStringListMap(doc, data.Containment)
		}},
		{"aliases", func(doc map[string]any) error {
			for kind, payload := range doc {
				body, ok := asMap(payload)
				if !ok {
					return fmt.Errorf("alias kind %q: unsupported payload %T", kind, payload)
				}
				mapping := make(map[string]string, len(body))
				if err := parseStringMap(body, mapping); err != nil {
					return fmt.Errorf("alias kind %q: %w", kind, err)
				}
				data.Aliases[kind] = mapping
			}
			return nil
		}},
		{"likely_subtags", func(doc map[string]any) error {
			return parseStringMap(doc, data.LikelySubtags)
		}},
		{"week_data", func(doc map[string]any) error {
			week := &WeekInfo{MinDays: map[string]int{}, FirstDay: map[string]string{}}
			if minDays, ok := asMap(doc["min_days"]); ok {
				for territory, value := range minDays {
					if n, ok := asInt(value); ok {
						week.MinDays[territory] = n
					}
				}
			}
			if firstDay, ok := asMap(doc["first_day"]); ok {
				if err := parseStringMap(firstDay, week.FirstDay); err != nil {
					return err
				}
			}
			data.WeekData = week
			return nil
		}},
		{"day_periods", func(doc map[string]any) error {
			for locale, payload := range doc {
				body, ok := asMap(payload)
				if !ok {
					return fmt.Errorf("locale %q: unsupported payload %T", locale, payload)
				}
				data.DayPeriods[normalizeLocale(locale)] = body
			}
			return nil
		}},
		{"calendar_eras", func(doc map[string]any) error {
			for calendar, payload := range doc {
				body, ok := asMap(payload)
				if !ok {
					return fmt.Errorf("calendar %q: unsupported payload %T", calendar, payload)
				}
				data.CalendarEras[calendar] = parseEras(body)
			}
			return nil
		}},
		{"currency_codes", func(doc map[string]any) error {
			raw, ok := doc["codes"].([]any)
			if !ok {
				return fmt.Errorf("missing %q list", "codes")
			}
			codes := make([]string, 0, len(raw))
			for _, entry := range raw {
				currencyCode, ok := entry.(string)
				if !ok {
					return fmt.Errorf("currency code must be a string, got %T", entry)
				}
				codes = append(codes, currencyCode)
			}
			data.CurrencyCodes = codes
			return nil
		}},
	}

	for _, step := range steps {
		if err := load(step.name, step.apply); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func parseStringMap(raw map[string]any, dst map[string]string) error {
	for key, value := range raw {
		s, ok := asString(value)
		if !ok {
			return fmt.Errorf("key %q: expected string, got %T", key, value)
		}
		dst[key] = s
	}
	return nil
}

func parseStringListMap(raw map[string]any, dst map[string][]string) error {
	for key, value := range raw {
		list, ok := value.([]any)
		if !ok {
			return fmt.Errorf("key %q: expected list, got %T", key, value)
		}
		entries := make([]string, 0, len(list))
		for _, entry := range list {
			s, ok := entry.(string)
			if !ok {
				return fmt.Errorf("key %q: expected string entry, got %T", key, entry)
			}
			entries = append(entries, s)
		}
		dst[key] = entries
	}
	return nil
}

// Territory returns the supplemental info for a territory code.
func (c *Catalog) Territory(code string) (*TerritoryInfo, bool) {
	if c == nil || c.supplemental == nil {
		return nil, false
	}
	info, ok := c.supplemental.Territories[code]
	return info, ok
}

// TerritoryContainment returns the children of a containment group.
func (c *Catalog) TerritoryContainment(group string) []string {
	if c == nil || c.supplemental == nil {
		return nil
	}
	children := c.supplemental.Containment[group]
	if len(children) == 0 {
		return nil
	}
	out := make([]string, len(children))
	copy(out, children)
	return out
}

// Aliases returns the alias mapping for a kind ("language", "script",
// "region").
func (c *Catalog) Aliases(kind string) map[string]string {
	if c == nil || c.supplemental == nil {
		return nil
	}
	aliases := c.supplemental.Aliases[kind]
	if len(aliases) == 0 {
		return nil
	}
	out := make(map[string]string, len(aliases))
	for from, to := range aliases {
		out[from] = to
	}
	return out
}

// LikelySubtag returns the likely-subtag expansion for a tag.
func (c *Catalog) LikelySubtag(tag string) (string, bool) {
	if c == nil || c.supplemental == nil {
		return "", false
	}
	expanded, ok := c.supplemental.LikelySubtags[tag]
	return expanded, ok
}

// WeekData returns the per-territory week conventions, or nil when the
// document is absent.
func (c *Catalog) WeekData() *WeekInfo {
	if c == nil || c.supplemental == nil {
		return nil
	}
	return c.supplemental.WeekData
}

// DayPeriods returns the day-period rules for a locale.
func (c *Catalog) DayPeriods(locale string) (map[string]any, bool) {
	if c == nil || c.supplemental == nil {
		return nil, false
	}
	rules, ok := c.supplemental.DayPeriods[normalizeLocale(locale)]
	return rules, ok
}

// CalendarEras returns the era list for a calendar, end bounds inferred.
func (c *Catalog) CalendarEras(calendar string) ([]Era, bool) {
	if c == nil || c.supplemental == nil {
		return nil, false
	}
	eras, ok := c.supplemental.CalendarEras[calendar]
	if !ok {
		return nil, false
	}
	out := make([]Era, len(eras))
	copy(out, eras)
	return out, true
}

// CurrencyCodes returns the known currency code list.
func (c *Catalog) CurrencyCodes() []string {
	if c == nil || c.supplemental == nil || len(c.supplemental.CurrencyCodes) == 0 {
		return nil
	}
	out := make([]string, len(c.supplemental.CurrencyCodes))
	copy(out, c.supplemental.CurrencyCodes)
	return out
}
