package cldr

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed testdata/number_systems.json
var defaultNumberSystemsJSON []byte

// SystemNameTable is a bounded interned-name table for number system names
// and types. It is pre-populated once from the fixed set of known CLDR
// system names; type lookups never mint new entries, which bounds table
// growth in long-lived processes. Name insertions only happen during the
// catalog build phase, when locale documents declare their systems.
type SystemNameTable struct {
	mu    sync.RWMutex
	names map[string]SystemName
	types map[string]SystemType
}

func newSystemNameTable(defs map[SystemName]NumberSystemDef) *SystemNameTable {
	t := &SystemNameTable{
		names: make(map[string]SystemName, len(defs)),
		types: map[string]SystemType{
			string(SystemDefault):     SystemDefault,
			string(SystemNative):      SystemNative,
			string(SystemTraditional): SystemTraditional,
			string(SystemFinance):     SystemFinance,
		},
	}
	for name := range defs {
		t.names[string(name)] = name
	}
	return t
}

// internName returns the interned symbol for a system name, adding it when a
// locale document declares a system absent from the definition set.
func (t *SystemNameTable) internName(s string) SystemName {
	t.mu.RLock()
	name, ok := t.names[s]
	t.mu.RUnlock()
	if ok {
		return name
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if name, ok := t.names[s]; ok {
		return name
	}
	name = SystemName(s)
	t.names[s] = name
	return name
}

// internType registers a locale-declared system type alongside the canonical
// four.
func (t *SystemNameTable) internType(s string) SystemType {
	t.mu.RLock()
	typ, ok := t.types[s]
	t.mu.RUnlock()
	if ok {
		return typ
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if typ, ok := t.types[s]; ok {
		return typ
	}
	typ = SystemType(s)
	t.types[s] = typ
	return typ
}

// LookupType returns the known type for s without minting a new entry.
func (t *SystemNameTable) LookupType(s string) (SystemType, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	typ, ok := t.types[s]
	return typ, ok
}

// LookupName returns the known system name for s without minting a new entry.
func (t *SystemNameTable) LookupName(s string) (SystemName, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.names[s]
	return name, ok
}

// atomize converts a decoded scalar to an interned system name. Nil values,
// empty strings and the literal "null" map to absent.
func (t *SystemNameTable) atomize(v any) (SystemName, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return "", false
	}
	return t.internName(s), true
}

func defaultNumberSystemDefs() (map[SystemName]NumberSystemDef, error) {
	var defs []NumberSystemDef
	if err := json.Unmarshal(defaultNumberSystemsJSON, &defs); err != nil {
		return nil, fmt.Errorf("cldr: parse default number systems: %w", err)
	}
	out := make(map[SystemName]NumberSystemDef, len(defs))
	for _, def := range defs {
		out[def.Name] = def
	}
	return out, nil
}

// parseNumberSystemDefs reads the number-system definition document
// (name -> digits + type).
func parseNumberSystemDefs(raw map[string]any) (map[SystemName]NumberSystemDef, error) {
	defs := make(map[SystemName]NumberSystemDef, len(raw))
	for name, payload := range raw {
		body, ok := asMap(payload)
		if !ok {
			return nil, fmt.Errorf("cldr: number system %q: unsupported payload %T", name, payload)
		}
		def := NumberSystemDef{Name: SystemName(name)}
		if digits, ok := asString(body["digits"]); ok {
			def.Digits = digits
		}
		if typ, ok := asString(body["type"]); ok {
			def.Type = typ
		}
		if rules, ok := asString(body["rules"]); ok {
			def.Rules = rules
		}
		defs[def.Name] = def
	}
	return defs, nil
}

// ResolveNumberSystem resolves a symbolic number system reference, either a
// semantic type such as "default" or "native" or a concrete system name, to
// the concrete system name in use by the locale. A direct type match wins
// over a name collision. The returned name is not guaranteed to carry digit
// or symbol data for the locale; callers needing usable symbols must check
// the record's NumberSymbols.
func ResolveNumberSystem(record *LocaleRecord, reference string) (SystemName, error) {
	if record != nil {
		if name, ok := record.NumberSystems[SystemType(reference)]; ok {
			return name, nil
		}
		for _, name := range record.NumberSystems {
			if string(name) == reference {
				return name, nil
			}
		}
	}
	return "", &UnknownNumberSystemError{Reference: reference}
}

// ResolveSystemType lower-cases candidate and requires it to match a type
// already known to the table; unknown strings are rejected rather than
// minting new symbols.
func (t *SystemNameTable) ResolveSystemType(candidate string) (SystemType, error) {
	lowered := strings.ToLower(strings.TrimSpace(candidate))
	if typ, ok := t.LookupType(lowered); ok {
		return typ, nil
	}
	return "", &UnknownNumberSystemTypeError{Value: candidate}
}

func sortSystemNames(names []SystemName) {
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
}
