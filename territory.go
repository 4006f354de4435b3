package cldr

import (
	"fmt"
	"sort"
	"time"
)

const currencyDateLayout = "2006-01-02"

// parseTerritoryInfo reads the territory-info document: per-territory
// currency history, population, GDP, literacy and language population data.
func parseTerritoryInfo(raw map[string]any) (map[string]*TerritoryInfo, error) {
	territories := make(map[string]*TerritoryInfo, len(raw))
	for code, payload := range raw {
		body, ok := asMap(payload)
		if !ok {
			return nil, fmt.Errorf("cldr: territory %q: unsupported payload %T", code, payload)
		}
		info, err := parseTerritory(code, body)
		if err != nil {
			return nil, err
		}
		territories[code] = info
	}
	return territories, nil
}

func parseTerritory(code string, raw map[string]any) (*TerritoryInfo, error) {
	info := &TerritoryInfo{}

	if population, ok := asInt64(raw["population"]); ok {
		info.Population = population
	}
	if gdp, ok := asInt64(raw["gdp"]); ok {
		info.GDP = gdp
	}
	if literacy, ok := asFloat(raw["literacy_percent"]); ok {
		info.LiteracyPercent = literacy
	}
	if system, ok := asString(raw["measurement_system"]); ok {
		info.MeasurementSystem = system
	}
	if size, ok := asString(raw["paper_size"]); ok {
		info.PaperSize = size
	}

	if rawLanguages, ok := asMap(raw["languages"]); ok {
		info.Languages = make(map[string]LanguagePopulation, len(rawLanguages))
		for tag, entry := range rawLanguages {
			body, ok := asMap(entry)
			if !ok {
				continue
			}
			population := LanguagePopulation{}
			if percent, ok := asFloat(body["population_percent"]); ok {
				population.PopulationPercent = percent
			}
			if status, ok := asString(body["official_status"]); ok {
				population.OfficialStatus = status
			}
			info.Languages[normalizeLocale(tag)] = population
		}
	}

	if rawCurrencies, ok := raw["currencies"].([]any); ok {
		currencies := make([]CurrencyPeriod, 0, len(rawCurrencies))
		for i, entry := range rawCurrencies {
			body, ok := asMap(entry)
			if !ok {
				return nil, fmt.Errorf("cldr: territory %q currency %d: unsupported payload %T", code, i, entry)
			}
			period, err := parseCurrencyPeriod(body)
			if err != nil {
				return nil, fmt.Errorf("cldr: territory %q currency %d: %w", code, i, err)
			}
			currencies = append(currencies, period)
		}
		sortCurrencyHistory(currencies)
		info.Currencies = currencies
	}

	return info, nil
}

func parseCurrencyPeriod(raw map[string]any) (CurrencyPeriod, error) {
	period := CurrencyPeriod{Tender: true}

	currencyCode, ok := asString(raw["code"])
	if !ok || currencyCode == "" {
		return CurrencyPeriod{}, fmt.Errorf("missing currency code")
	}
	period.Code = currencyCode

	for _, bound := range []struct {
		key    string
		target **time.Time
	}{
		{"from", &period.From},
		{"to", &period.To},
	} {
		value, ok := asString(raw[bound.key])
		if !ok || value == "" {
			continue
		}
		date, err := time.Parse(currencyDateLayout, value)
		if err != nil {
			return CurrencyPeriod{}, fmt.Errorf("parse %s date %q: %w", bound.key, value, err)
		}
		*bound.target = &date
	}

	// tender defaults to true unless explicitly "false"
	switch tender := raw["tender"].(type) {
	case bool:
		period.Tender = tender
	case string:
		period.Tender = tender != "false"
	}

	return period, nil
}

// sortCurrencyHistory orders a territory's currency periods by start date,
// open-start periods first, then by code for determinism.
func sortCurrencyHistory(currencies []CurrencyPeriod) {
	sort.SliceStable(currencies, func(i, j int) bool {
		a, b := currencies[i].From, currencies[j].From
		switch {
		case a == nil && b == nil:
			return currencies[i].Code < currencies[j].Code
		case a == nil:
			return true
		case b == nil:
			return false
		case !a.Equal(*b):
			return a.Before(*b)
		default:
			return currencies[i].Code < currencies[j].Code
		}
	})
}
