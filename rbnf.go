package cldr

import (
	"fmt"
	"strings"
	"unicode"
)

// inferRuleRanges computes each rule's upper validity bound from the next
// rule's threshold, preserving source order. The bound is set only when both
// adjacent thresholds parse fully as base-10 integers; symbolic thresholds
// ("x.x", "-x") leave the earlier rule unranged. The final rule is always
// unranged. Adjacent rules sharing a threshold keep it as a zero-width slot.
func inferRuleRanges(rules []RbnfRule) []RbnfRule {
	if len(rules) == 0 {
		return nil
	}

	out := make([]RbnfRule, len(rules))
	copy(out, rules)

	for i := range out {
		out[i].Range = nil
		if i == len(out)-1 {
			continue
		}
		if _, ok := parseExactInt(out[i].Threshold); !ok {
			continue
		}
		next, ok := parseExactInt(out[i+1].Threshold)
		if !ok {
			continue
		}
		bound := next
		out[i].Range = &bound
	}
	return out
}

// normalizeRuleGroupName converts a CLDR rule group name such as
// "SpelloutRules" or "OrdinalRules" to its canonical snake_case form
// ("spellout", "ordinal"). Already-canonical names pass through.
func normalizeRuleGroupName(name string) string {
	name = strings.TrimSuffix(name, "Rules")
	if name == "" {
		return name
	}

	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseRuleGroup converts one raw rule group (set name -> set payload) into
// normalized rule sets with ranges inferred.
func parseRuleGroup(locale, group string, raw map[string]any) (map[string]*RuleSet, error) {
	sets := make(map[string]*RuleSet, len(raw))
	for setName, payload := range raw {
		set, err := parseRuleSet(setName, payload)
		if err != nil {
			return nil, fmt.Errorf("cldr: locale %q rbnf %s/%s: %w", locale, group, setName, err)
		}
		sets[setName] = set
	}
	return sets, nil
}

func parseRuleSet(name string, payload any) (*RuleSet, error) {
	set := &RuleSet{Name: name, Access: "public"}

	rawRules, ok := payload.([]any)
	if !ok {
		body, isMap := asMap(payload)
		if !isMap {
			return nil, fmt.Errorf("unsupported rule set payload %T", payload)
		}
		if access, ok := asString(body["access"]); ok && access != "" {
			set.Access = access
		}
		rawRules, ok = body["rules"].([]any)
		if !ok {
			return nil, fmt.Errorf("rule set has no rule list")
		}
	}

	rules := make([]RbnfRule, 0, len(rawRules))
	for i, entry := range rawRules {
		body, ok := asMap(entry)
		if !ok {
			return nil, fmt.Errorf("rule %d: unsupported payload %T", i, entry)
		}
		rule := RbnfRule{}
		if threshold, ok := asString(body["threshold"]); ok {
			rule.Threshold = threshold
		} else if threshold, ok := asInt64(body["threshold"]); ok {
			rule.Threshold = fmt.Sprintf("%d", threshold)
		} else {
			return nil, fmt.Errorf("rule %d: missing threshold", i)
		}
		if radix, ok := asInt(body["radix"]); ok {
			rule.Radix = radix
		}
		if definition, ok := asString(body["definition"]); ok {
			rule.Definition = definition
		}
		rules = append(rules, rule)
	}

	// Source document order is ascending numeric order by CLDR convention;
	// it is not re-sorted here.
	set.Rules = inferRuleRanges(rules)
	return set, nil
}
