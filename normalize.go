package cldr

import (
	"fmt"
	"log/slog"
	"strings"
)

// requiredModuleSet is RequiredModules as a set for membership checks.
var requiredModuleSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(RequiredModules))
	for _, module := range RequiredModules {
		set[module] = struct{}{}
	}
	return set
}()

// normalizeLocaleDocument restructures a raw locale tree into the canonical
// LocaleRecord schema. Only modules in the required set are converted; any
// other top-level key passes through to Extra unconverted, which keeps
// unmodeled CLDR modules readable by forward-compatible consumers.
//
// With strict validation a missing required module fails with a
// ValidationError naming the locale and the module; in relaxed mode the
// absence is logged as a warning and the module is synthesized empty. The
// record is fully built before it is returned, so callers never observe a
// partially-normalized document.
func normalizeLocaleDocument(raw map[string]any, name string, names *SystemNameTable, strict bool, logger *slog.Logger) (*LocaleRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, module := range RequiredModules {
		if _, ok := raw[module]; ok {
			continue
		}
		if strict {
			return nil, &ValidationError{Locale: name, Module: module}
		}
		logger.Warn("cldr: locale document missing required module",
			"locale", name, "module", module)
	}

	record := &LocaleRecord{
		NumberSystems:         normalizeNumberSystems(moduleMap(raw, "number_systems"), names),
		NumberSymbols:         normalizeNumberSymbols(moduleMap(raw, "number_symbols"), names),
		NumberFormats:         moduleMap(raw, "number_formats"),
		ListFormats:           moduleMap(raw, "list_formats"),
		Currencies:            moduleMap(raw, "currencies"),
		MinimumGroupingDigits: normalizeMinimumGroupingDigits(raw["minimum_grouping_digits"]),
		Units:                 normalizeUnits(moduleMap(raw, "units")),
		DateFields:            moduleMap(raw, "date_fields"),
		Dates:                 normalizeDates(moduleMap(raw, "dates")),
		Territories:           moduleMap(raw, "territories"),
		Languages:             atomizeKeys(moduleMap(raw, "languages")),
	}

	rbnf, err := normalizeRBNF(name, moduleMap(raw, "rbnf"))
	if err != nil {
		return nil, err
	}
	record.RBNF = rbnf

	record.Extra = make(map[string]any)
	for key, value := range raw {
		if _, required := requiredModuleSet[key]; required {
			continue
		}
		record.Extra[key] = value
	}

	record.Name = name
	return record, nil
}

func moduleMap(raw map[string]any, module string) map[string]any {
	value, ok := raw[module]
	if !ok || value == nil {
		return map[string]any{}
	}
	m, ok := asMap(value)
	if !ok {
		return map[string]any{}
	}
	return m
}

// normalizeNumberSystems interns the locale's system-type mapping. Keys
// become system types, string values become interned system names;
// null-equivalent values map to absent.
func normalizeNumberSystems(raw map[string]any, names *SystemNameTable) map[SystemType]SystemName {
	systems := make(map[SystemType]SystemName, len(raw))
	for key, value := range raw {
		name, ok := names.atomize(value)
		if !ok {
			continue
		}
		systems[names.internType(strings.ToLower(key))] = name
	}
	return systems
}

func normalizeNumberSymbols(raw map[string]any, names *SystemNameTable) map[SystemName]*NumberSymbols {
	symbols := make(map[SystemName]*NumberSymbols, len(raw))
	for key, value := range raw {
		name, ok := names.atomize(key)
		if !ok {
			continue
		}
		body, ok := asMap(value)
		if !ok {
			// system declared without symbol data
			symbols[name] = nil
			continue
		}
		symbols[name] = parseNumberSymbols(body)
	}
	return symbols
}

func parseNumberSymbols(raw map[string]any) *NumberSymbols {
	symbols := &NumberSymbols{}
	read := func(role string) string {
		s, _ := asString(raw[role])
		return s
	}
	symbols.Decimal = read("decimal")
	symbols.Group = read("group")
	symbols.List = read("list")
	symbols.PercentSign = read("percent_sign")
	symbols.PlusSign = read("plus_sign")
	symbols.MinusSign = read("minus_sign")
	symbols.Exponential = read("exponential")
	symbols.SuperscriptingExponent = read("superscripting_exponent")
	symbols.PerMille = read("per_mille")
	symbols.Infinity = read("infinity")
	symbols.NaN = read("nan")
	symbols.TimeSeparator = read("time_separator")
	return symbols
}

func normalizeMinimumGroupingDigits(raw any) int {
	if n, ok := asInt(raw); ok {
		return n
	}
	return 1
}

// normalizeUnits regroups flat "<group>_<key>" unit keys into a two-level
// mapping keyed by group then key, per style. A key with no
// underscore-delimited remainder is discarded.
func normalizeUnits(raw map[string]any) map[string]map[string]map[string]any {
	units := make(map[string]map[string]map[string]any, len(raw))
	for style, value := range raw {
		flat, ok := asMap(value)
		if !ok {
			continue
		}
		grouped := make(map[string]map[string]any)
		for unitKey, spec := range flat {
			idx := strings.Index(unitKey, "_")
			if idx <= 0 || idx == len(unitKey)-1 {
				continue
			}
			group, key := unitKey[:idx], unitKey[idx+1:]
			if grouped[group] == nil {
				grouped[group] = make(map[string]any)
			}
			grouped[group][key] = spec
		}
		units[style] = grouped
	}
	return units
}

// normalizeDates converts each calendar's payload: era ids and day indices
// with integer-like string keys become true integer keys, and era end bounds
// are inferred. Everything else stays in the calendar's Fields.
func normalizeDates(raw map[string]any) map[string]*Calendar {
	dates := make(map[string]*Calendar, len(raw))
	for calendarName, value := range raw {
		body, ok := asMap(value)
		if !ok {
			dates[calendarName] = &Calendar{Fields: map[string]any{}}
			continue
		}
		calendar := &Calendar{Fields: make(map[string]any, len(body))}
		for key, entry := range body {
			switch key {
			case "eras":
				if eras, ok := asMap(entry); ok {
					calendar.Eras = parseEras(eras)
					continue
				}
			case "days":
				if days, ok := asMap(entry); ok {
					calendar.Days = integerKeys(days)
					continue
				}
			}
			calendar.Fields[key] = entry
		}
		dates[calendarName] = calendar
	}
	return dates
}

func integerKeys(raw map[string]any) map[int]any {
	out := make(map[int]any, len(raw))
	for key, value := range raw {
		if id, ok := asInt(key); ok {
			out[id] = value
		}
	}
	return out
}

func normalizeRBNF(locale string, raw map[string]any) (map[string]map[string]*RuleSet, error) {
	rbnf := make(map[string]map[string]*RuleSet, len(raw))
	for groupName, value := range raw {
		body, ok := asMap(value)
		if !ok {
			return nil, fmt.Errorf("cldr: locale %q rbnf group %q: unsupported payload %T", locale, groupName, value)
		}
		canonical := normalizeRuleGroupName(groupName)
		sets, err := parseRuleGroup(locale, canonical, body)
		if err != nil {
			return nil, err
		}
		rbnf[canonical] = sets
	}
	return rbnf, nil
}

// atomizeKeys interns the key set of a submodule, dropping empty keys.
func atomizeKeys(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}
