package cldr

import (
	"regexp"
	"sort"
	"strings"
)

// wildcardIndicators marks an entry as a pattern rather than a literal name.
const wildcardIndicators = "*+.["

// ExpandLocaleNames expands locale-name configuration entries into the
// concrete set of matching names drawn from universe. Entries containing
// wildcard syntax are compiled as regular expressions and matched, unanchored,
// against every name in universe; a malformed pattern fails with a
// ConfigurationError rather than silently matching nothing. Literal entries
// pass through verbatim.
//
// Every multi-subtag name additionally contributes its base language subtag,
// keeping plural-rule and RBNF fallback to the base language reachable when
// only region or script variants were requested. The result is deduplicated
// and sorted.
func ExpandLocaleNames(entries []string, universe []string) ([]string, error) {
	var expanded []string
	for _, entry := range entries {
		if !strings.ContainsAny(entry, wildcardIndicators) {
			expanded = append(expanded, entry)
			continue
		}
		pattern, err := regexp.Compile(entry)
		if err != nil {
			return nil, &ConfigurationError{Pattern: entry, Err: err}
		}
		for _, name := range universe {
			if pattern.MatchString(name) {
				expanded = append(expanded, name)
			}
		}
	}

	seen := make(map[string]struct{}, len(expanded))
	result := make([]string, 0, len(expanded))
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	for _, name := range expanded {
		add(name)
		if base := baseLanguage(name); base != name {
			add(base)
		}
	}

	sort.Strings(result)
	return result, nil
}
