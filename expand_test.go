package cldr

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandLocaleNamesWildcard(t *testing.T) {
	universe := []string{"en", "en-AG", "en-AI", "en-AS", "en-AT", "en-AU", "fr-BE"}

	got, err := ExpandLocaleNames([]string{"en-A+"}, universe)
	if err != nil {
		t.Fatalf("ExpandLocaleNames: %v", err)
	}

	// "en" is present because each matched name carries a region subtag and
	// contributes its base language.
	want := []string{"en", "en-AG", "en-AI", "en-AS", "en-AT", "en-AU"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandLocaleNamesLiteralPassThrough(t *testing.T) {
	got, err := ExpandLocaleNames([]string{"fr-CA", "de"}, []string{"en"})
	if err != nil {
		t.Fatalf("ExpandLocaleNames: %v", err)
	}

	want := []string{"de", "fr", "fr-CA"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandLocaleNamesDeduplicates(t *testing.T) {
	universe := []string{"en", "en-AU"}

	got, err := ExpandLocaleNames([]string{"en.*", "en-AU", "en"}, universe)
	if err != nil {
		t.Fatalf("ExpandLocaleNames: %v", err)
	}

	want := []string{"en", "en-AU"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandLocaleNamesMalformedPattern(t *testing.T) {
	_, err := ExpandLocaleNames([]string{"en-["}, []string{"en"})
	if err == nil {
		t.Fatal("expected configuration error for malformed pattern")
	}

	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("error type = %T, want *ConfigurationError", err)
	}
	if confErr.Pattern != "en-[" {
		t.Fatalf("pattern = %q, want en-[", confErr.Pattern)
	}
}

func TestExpandLocaleNamesEmpty(t *testing.T) {
	got, err := ExpandLocaleNames(nil, []string{"en"})
	if err != nil {
		t.Fatalf("ExpandLocaleNames: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty expansion, got %v", got)
	}
}
