package cldr

import (
	"errors"
	"testing"
)

func testNameTable(t *testing.T) *SystemNameTable {
	t.Helper()
	defs, err := defaultNumberSystemDefs()
	if err != nil {
		t.Fatalf("defaultNumberSystemDefs: %v", err)
	}
	return newSystemNameTable(defs)
}

func TestResolveNumberSystemTypeMatch(t *testing.T) {
	record := &LocaleRecord{
		Name: "en",
		NumberSystems: map[SystemType]SystemName{
			SystemDefault: "latn",
			SystemNative:  "latn",
		},
	}

	name, err := ResolveNumberSystem(record, "default")
	if err != nil {
		t.Fatalf("ResolveNumberSystem: %v", err)
	}
	if name != "latn" {
		t.Fatalf("resolved = %q, want latn", name)
	}
}

func TestResolveNumberSystemNameMatch(t *testing.T) {
	record := &LocaleRecord{
		Name: "ar",
		NumberSystems: map[SystemType]SystemName{
			SystemDefault: "arab",
			SystemNative:  "arab",
		},
	}

	name, err := ResolveNumberSystem(record, "arab")
	if err != nil {
		t.Fatalf("ResolveNumberSystem: %v", err)
	}
	if name != "arab" {
		t.Fatalf("resolved = %q, want arab", name)
	}
}

func TestResolveNumberSystemUnknown(t *testing.T) {
	record := &LocaleRecord{
		Name:          "en",
		NumberSystems: map[SystemType]SystemName{SystemDefault: "latn"},
	}

	_, err := ResolveNumberSystem(record, "bogus")
	if err == nil {
		t.Fatal("expected error for unknown reference")
	}

	var unknownErr *UnknownNumberSystemError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownNumberSystemError", err)
	}
	if unknownErr.Reference != "bogus" {
		t.Fatalf("reference = %q, want bogus", unknownErr.Reference)
	}
}

// A type and a name may collide; a direct type match wins.
func TestResolveNumberSystemTypeBeatsName(t *testing.T) {
	record := &LocaleRecord{
		Name: "zz",
		NumberSystems: map[SystemType]SystemName{
			SystemDefault:             "latn",
			SystemType("traditional"): "arab",
		},
	}

	name, err := ResolveNumberSystem(record, "traditional")
	if err != nil {
		t.Fatalf("ResolveNumberSystem: %v", err)
	}
	if name != "arab" {
		t.Fatalf("resolved = %q, want arab (type mapping, not verbatim name)", name)
	}
}

func TestResolveSystemType(t *testing.T) {
	table := testNameTable(t)

	typ, err := table.ResolveSystemType("Default")
	if err != nil {
		t.Fatalf("ResolveSystemType: %v", err)
	}
	if typ != SystemDefault {
		t.Fatalf("type = %q, want default", typ)
	}
}

func TestResolveSystemTypeUnknownDoesNotMint(t *testing.T) {
	table := testNameTable(t)

	_, err := table.ResolveSystemType("made-up")
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	var typeErr *UnknownNumberSystemTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error type = %T, want *UnknownNumberSystemTypeError", err)
	}
	if typeErr.Value != "made-up" {
		t.Fatalf("value = %q, want made-up", typeErr.Value)
	}

	// rejection must not grow the table
	if _, ok := table.LookupType("made-up"); ok {
		t.Fatal("unknown type was minted into the table")
	}
}

func TestAtomize(t *testing.T) {
	table := testNameTable(t)

	if name, ok := table.atomize("latn"); !ok || name != "latn" {
		t.Fatalf("atomize(latn) = %q,%v", name, ok)
	}
	if _, ok := table.atomize(nil); ok {
		t.Fatal("atomize(nil) should be absent")
	}
	if _, ok := table.atomize("null"); ok {
		t.Fatal("atomize(null) should be absent")
	}
	if _, ok := table.atomize(""); ok {
		t.Fatal("atomize empty string should be absent")
	}
}

func TestSystemNamesDeduplicated(t *testing.T) {
	record := &LocaleRecord{
		NumberSystems: map[SystemType]SystemName{
			SystemDefault: "latn",
			SystemNative:  "latn",
			SystemFinance: "arab",
		},
	}

	names := record.SystemNames()
	if len(names) != 2 || names[0] != "arab" || names[1] != "latn" {
		t.Fatalf("SystemNames = %v, want [arab latn]", names)
	}
}
