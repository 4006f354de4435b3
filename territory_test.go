package cldr

import (
	"testing"
	"time"
)

func TestParseCurrencyPeriod(t *testing.T) {
	period, err := parseCurrencyPeriod(map[string]any{
		"code": "DEM",
		"from": "1948-06-20",
		"to":   "2002-02-28",
	})
	if err != nil {
		t.Fatalf("parseCurrencyPeriod: %v", err)
	}

	if period.Code != "DEM" {
		t.Fatalf("code = %q, want DEM", period.Code)
	}
	if period.From == nil || !period.From.Equal(time.Date(1948, 6, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", period.From)
	}
	if period.To == nil || !period.To.Equal(time.Date(2002, 2, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("to = %v", period.To)
	}
	if !period.Tender {
		t.Fatal("tender should default to true")
	}
}

func TestParseCurrencyPeriodTenderFalse(t *testing.T) {
	period, err := parseCurrencyPeriod(map[string]any{
		"code":   "DEM",
		"tender": "false",
	})
	if err != nil {
		t.Fatalf("parseCurrencyPeriod: %v", err)
	}
	if period.Tender {
		t.Fatal("explicit \"false\" should disable tender")
	}

	period, err = parseCurrencyPeriod(map[string]any{
		"code":   "XAG",
		"tender": false,
	})
	if err != nil {
		t.Fatalf("parseCurrencyPeriod: %v", err)
	}
	if period.Tender {
		t.Fatal("boolean false should disable tender")
	}
}

func TestParseCurrencyPeriodBadDate(t *testing.T) {
	_, err := parseCurrencyPeriod(map[string]any{
		"code": "EUR",
		"from": "not-a-date",
	})
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestParseCurrencyPeriodMissingCode(t *testing.T) {
	_, err := parseCurrencyPeriod(map[string]any{"from": "1999-01-01"})
	if err == nil {
		t.Fatal("expected error for missing code")
	}
}

func TestParseTerritoryInfo(t *testing.T) {
	territories, err := parseTerritoryInfo(map[string]any{
		"DE": map[string]any{
			"population":         float64(84270600),
			"literacy_percent":   float64(99),
			"measurement_system": "metric",
			"paper_size":         "A4",
			"languages": map[string]any{
				"de": map[string]any{"population_percent": float64(91), "official_status": "official"},
			},
			"currencies": []any{
				map[string]any{"code": "EUR", "from": "1999-01-01"},
				map[string]any{"code": "DEM", "from": "1948-06-20", "to": "2002-02-28"},
			},
		},
	})
	if err != nil {
		t.Fatalf("parseTerritoryInfo: %v", err)
	}

	de := territories["DE"]
	if de == nil {
		t.Fatal("expected DE territory")
	}
	if de.Population != 84270600 {
		t.Fatalf("population = %d", de.Population)
	}
	if de.Languages["de"].OfficialStatus != "official" {
		t.Fatalf("languages = %+v", de.Languages)
	}

	// currency history ordered by start date
	if len(de.Currencies) != 2 || de.Currencies[0].Code != "DEM" || de.Currencies[1].Code != "EUR" {
		t.Fatalf("currency order = %+v", de.Currencies)
	}
}
