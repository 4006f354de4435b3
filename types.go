package cldr

import "time"

// SystemName is an interned CLDR number system identifier, e.g. "latn" or "arab".
type SystemName string

// SystemType is a semantic number system role declared by a locale.
type SystemType string

const (
	SystemDefault     SystemType = "default"
	SystemNative      SystemType = "native"
	SystemTraditional SystemType = "traditional"
	SystemFinance     SystemType = "finance"
)

// RequiredModules is the fixed set of top-level modules every locale document
// must carry. A document missing any of them fails validation unless relaxed
// validation is configured.
var RequiredModules = []string{
	"number_formats",
	"list_formats",
	"currencies",
	"number_systems",
	"number_symbols",
	"minimum_grouping_digits",
	"rbnf",
	"units",
	"date_fields",
	"dates",
	"territories",
	"languages",
}

// LocaleRecord is the normalized, immutable document for one locale. Every
// required module is present after normalization, even if empty. Records are
// owned by the Catalog; callers must not mutate them.
type LocaleRecord struct {
	Name string

	NumberSystems         map[SystemType]SystemName
	NumberSymbols         map[SystemName]*NumberSymbols
	NumberFormats         map[string]any
	ListFormats           map[string]any
	Currencies            map[string]any
	MinimumGroupingDigits int
	RBNF                  map[string]map[string]*RuleSet
	Units                 map[string]map[string]map[string]any
	DateFields            map[string]any
	Dates                 map[string]*Calendar
	Territories           map[string]any
	Languages             map[string]any

	// Extra carries unmodeled top-level modules through unconverted.
	Extra map[string]any
}

// SystemNames returns the distinct concrete system names the record declares,
// sorted for deterministic iteration.
func (r *LocaleRecord) SystemNames() []SystemName {
	if r == nil || len(r.NumberSystems) == 0 {
		return nil
	}
	seen := make(map[SystemName]struct{}, len(r.NumberSystems))
	names := make([]SystemName, 0, len(r.NumberSystems))
	for _, name := range r.NumberSystems {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sortSystemNames(names)
	return names
}

// NumberSymbols maps symbol roles to glyph strings for one number system.
type NumberSymbols struct {
	Decimal                string
	Group                  string
	List                   string
	PercentSign            string
	PlusSign               string
	MinusSign              string
	Exponential            string
	SuperscriptingExponent string
	PerMille               string
	Infinity               string
	NaN                    string
	TimeSeparator          string
}

// Calendar holds the normalized data for one calendar within a locale.
type Calendar struct {
	// Eras is sorted by era id with end bounds inferred from the next era's
	// start. The inference happens once at normalization time.
	Eras []Era
	// Days maps integer day indices converted from integer-like string keys.
	Days map[int]any
	// Fields carries the remaining calendar payload unconverted.
	Fields map[string]any
}

// Era is a calendar epoch. A nil Start or End means unbounded.
type Era struct {
	ID    int
	Start *int64
	End   *int64
}

// RuleSet is one RBNF rule set within a rule group.
type RuleSet struct {
	Name   string
	Access string
	Rules  []RbnfRule
}

// RbnfRule is a single rule-based number formatting rule. Range is the
// exclusive upper validity bound inferred from the next rule's threshold;
// nil means the rule applies from its threshold onward, unbounded.
type RbnfRule struct {
	Threshold  string
	Radix      int
	Definition string
	Range      *int64
}

// NumberSystemDef describes one entry of the number-system definition document.
type NumberSystemDef struct {
	Name   SystemName `json:"name"`
	Digits string     `json:"digits"`
	Type   string     `json:"type"`
	Rules  string     `json:"rules,omitempty"`
}

// TerritoryInfo aggregates per-territory supplemental data.
type TerritoryInfo struct {
	Currencies        []CurrencyPeriod
	Population        int64
	GDP               int64
	LiteracyPercent   float64
	Languages         map[string]LanguagePopulation
	MeasurementSystem string
	PaperSize         string
}

// CurrencyPeriod is one entry of a territory's currency history. A nil From
// or To means the period is open on that side.
type CurrencyPeriod struct {
	Code   string
	From   *time.Time
	To     *time.Time
	Tender bool
}

// LanguagePopulation describes one language spoken in a territory.
type LanguagePopulation struct {
	PopulationPercent float64
	OfficialStatus    string
}

// LocaleSystem is a (locale, number system) pair produced by the similarity
// scan.
type LocaleSystem struct {
	Locale string
	System SystemName
}
