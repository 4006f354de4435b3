package cldr

import "sort"

// inferEraBounds computes each era's end bound as one less than the next
// era's start; the last era stays open-ended. Input order does not matter,
// the result is sorted ascending by era id. Pure and total: no era list can
// fail this step.
func inferEraBounds(eras []Era) []Era {
	if len(eras) == 0 {
		return nil
	}

	out := make([]Era, len(eras))
	copy(out, eras)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	for i := range out {
		if i == len(out)-1 {
			out[i].End = nil
			continue
		}
		next := out[i+1].Start
		if next == nil {
			out[i].End = nil
			continue
		}
		end := *next - 1
		out[i].End = &end
	}
	return out
}

// parseEras builds Era values from a raw era map keyed by integer-like era
// ids. Keys that are not integer-like are skipped; a missing start leaves the
// era open on that side.
func parseEras(raw map[string]any) []Era {
	if len(raw) == 0 {
		return nil
	}

	eras := make([]Era, 0, len(raw))
	for key, value := range raw {
		id, ok := asInt(key)
		if !ok {
			continue
		}
		era := Era{ID: id}
		if body, ok := asMap(value); ok {
			if start, ok := asInt64(body["start"]); ok {
				era.Start = &start
			}
		}
		eras = append(eras, era)
	}
	return inferEraBounds(eras)
}
