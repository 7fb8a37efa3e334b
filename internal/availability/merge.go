package availability

import "availbuilder/internal/catalog"

// Seed builds the starting availability map from the catalog: every listed
// size of every style starts out in stock. A style with an empty size list
// still gets an (empty) entry so it shows up in the output.
func Seed(doc *catalog.Document) Map {
	m := make(Map, len(doc.Styles))
	for _, st := range doc.Styles {
		entry := make(map[string]bool, len(st.Sizes))
		for _, sz := range st.Sizes {
			entry[sz] = true
		}
		m[st.ID] = entry
	}
	return m
}

// Merge applies an override layer in place: base[style][size] = value for
// every pair the layer specifies. Styles missing from base are added, so an
// override can introduce styles the catalog omits. Within a layer the last
// value for a pair wins; across layers the later Merge call wins.
func Merge(base Map, extra Map) {
	for styleID, sizes := range extra {
		if _, ok := base[styleID]; !ok {
			base[styleID] = make(map[string]bool, len(sizes))
		}
		for sz, val := range sizes {
			base[styleID][sz] = val
		}
	}
}

// MergeOverrides is Merge for a raw override document, coercing each value
// to a boolean.
func MergeOverrides(base Map, extra Overrides) {
	for styleID, sizes := range extra {
		if _, ok := base[styleID]; !ok {
			base[styleID] = make(map[string]bool, len(sizes))
		}
		for sz, val := range sizes {
			base[styleID][sz] = Truthy(val)
		}
	}
}

// Truthy coerces a boolean-ish JSON value the way the override files have
// always been interpreted: false, 0, "", null, [] and {} are false,
// everything else is true.
func Truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	default:
		return true
	}
}
