package cldr

import "testing"

func TestInferRuleRangesNumeric(t *testing.T) {
	rules := inferRuleRanges([]RbnfRule{
		{Threshold: "0"},
		{Threshold: "10"},
		{Threshold: "100"},
	})

	if rules[0].Range == nil || *rules[0].Range != 10 {
		t.Fatalf("rule 0 range = %v, want 10", rules[0].Range)
	}
	if rules[1].Range == nil || *rules[1].Range != 100 {
		t.Fatalf("rule 1 range = %v, want 100", rules[1].Range)
	}
	if rules[2].Range != nil {
		t.Fatalf("last rule range = %d, want unbounded", *rules[2].Range)
	}
}

func TestInferRuleRangesSymbolicThresholds(t *testing.T) {
	rules := inferRuleRanges([]RbnfRule{
		{Threshold: "-x"},
		{Threshold: "x.x"},
		{Threshold: "0"},
		{Threshold: "20"},
	})

	if rules[0].Range != nil {
		t.Fatalf("symbolic rule 0 range = %d, want unbounded", *rules[0].Range)
	}
	if rules[1].Range != nil {
		t.Fatalf("symbolic rule 1 range = %d, want unbounded", *rules[1].Range)
	}
	if rules[2].Range == nil || *rules[2].Range != 20 {
		t.Fatalf("rule 2 range = %v, want 20", rules[2].Range)
	}
}

func TestInferRuleRangesRejectsNumericPrefix(t *testing.T) {
	// "100th" is numeric-prefixed, not an exact integer literal.
	rules := inferRuleRanges([]RbnfRule{
		{Threshold: "10"},
		{Threshold: "100th"},
	})

	if rules[0].Range != nil {
		t.Fatalf("rule 0 range = %d, want unbounded", *rules[0].Range)
	}
}

// Two adjacent rules sharing a threshold are a plausible data anomaly: they
// stay in the set and the earlier rule gets a zero-width slot.
func TestInferRuleRangesIdenticalThresholds(t *testing.T) {
	rules := inferRuleRanges([]RbnfRule{
		{Threshold: "100"},
		{Threshold: "100"},
		{Threshold: "1000"},
	})

	if rules[0].Range == nil || *rules[0].Range != 100 {
		t.Fatalf("rule 0 range = %v, want 100 (zero-width slot)", rules[0].Range)
	}
	if rules[1].Range == nil || *rules[1].Range != 1000 {
		t.Fatalf("rule 1 range = %v, want 1000", rules[1].Range)
	}
	if rules[2].Range != nil {
		t.Fatalf("last rule range = %d, want unbounded", *rules[2].Range)
	}
}

func TestInferRuleRangesPreservesOrder(t *testing.T) {
	rules := inferRuleRanges([]RbnfRule{
		{Threshold: "20", Definition: "twenty"},
		{Threshold: "0", Definition: "zero"},
	})

	if rules[0].Definition != "twenty" || rules[1].Definition != "zero" {
		t.Fatalf("source order not preserved: %+v", rules)
	}
	// document order is trusted, so the descending pair still gets a range
	if rules[0].Range == nil || *rules[0].Range != 0 {
		t.Fatalf("rule 0 range = %v, want 0", rules[0].Range)
	}
}

func TestNormalizeRuleGroupName(t *testing.T) {
	cases := map[string]string{
		"SpelloutRules":        "spellout",
		"OrdinalRules":         "ordinal",
		"NumberingSystemRules": "numbering_system",
		"spellout":             "spellout",
	}
	for input, want := range cases {
		if got := normalizeRuleGroupName(input); got != want {
			t.Fatalf("normalizeRuleGroupName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseRuleSet(t *testing.T) {
	set, err := parseRuleSet("spellout-cardinal", map[string]any{
		"access": "private",
		"rules": []any{
			map[string]any{"threshold": "0", "definition": "zero"},
			map[string]any{"threshold": "10", "radix": float64(10), "definition": "ten"},
		},
	})
	if err != nil {
		t.Fatalf("parseRuleSet: %v", err)
	}

	if set.Access != "private" {
		t.Fatalf("access = %q, want private", set.Access)
	}
	if len(set.Rules) != 2 {
		t.Fatalf("rule count = %d, want 2", len(set.Rules))
	}
	if set.Rules[0].Range == nil || *set.Rules[0].Range != 10 {
		t.Fatalf("rule 0 range = %v, want 10", set.Rules[0].Range)
	}
	if set.Rules[1].Radix != 10 {
		t.Fatalf("rule 1 radix = %d, want 10", set.Rules[1].Radix)
	}
}

func TestParseRuleSetBareList(t *testing.T) {
	set, err := parseRuleSet("digits-ordinal", []any{
		map[string]any{"threshold": "0", "definition": "=#,##0=$(ordinal,one{st}other{th})$"},
	})
	if err != nil {
		t.Fatalf("parseRuleSet: %v", err)
	}
	if set.Access != "public" {
		t.Fatalf("access = %q, want public default", set.Access)
	}
	if set.Rules[0].Range != nil {
		t.Fatalf("single rule range = %d, want unbounded", *set.Rules[0].Range)
	}
}

func TestParseRuleSetMissingThreshold(t *testing.T) {
	_, err := parseRuleSet("broken", []any{
		map[string]any{"definition": "zero"},
	})
	if err == nil {
		t.Fatal("expected error for rule without threshold")
	}
}
