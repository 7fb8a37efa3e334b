package availability

// =============================================================================
// BUILT-IN OVERRIDES
// =============================================================================

// builtinOverrides is the hand-maintained stock picture for ALL styles.
// Edit these here, or add/modify overrides.json in the data directory to
// override without touching code (that file has final say).
var builtinOverrides = Map{
	// Sapphire is out of Toddler, Small, Medium.
	"sapphire": {
		"I": true, "T": false, "S": false, "M": false, "L": true, "XL": true, "XXL": true,
	},

	// Full size run in stock
	"bliss":     {"I": true, "T": true, "S": true, "M": true, "L": true, "XL": true, "XXL": true},
	"onyx":      {"I": true, "T": true, "S": true, "M": true, "L": true, "XL": true, "XXL": true},
	"leopard":   {"I": true, "T": true, "S": true, "M": true, "L": true, "XL": true, "XXL": true},
	"tiger":     {"I": true, "T": true, "S": true, "M": true, "L": true, "XL": true, "XXL": true},
	"blueblack": {"I": true, "T": true, "S": true, "M": true, "L": true, "XL": true, "XXL": true},

	// Styles with limited size sets in the catalog
	"skyblue": {"T": true, "S": true},
	"purple":  {"M": true},

	// Party bag
	"partybag": {"ONESIZE": true},
}

// BuiltinOverrides returns a copy of the built-in override table so callers
// can never mutate the embedded constant.
func BuiltinOverrides() Map {
	out := make(Map, len(builtinOverrides))
	for styleID, sizes := range builtinOverrides {
		entry := make(map[string]bool, len(sizes))
		for sz, val := range sizes {
			entry[sz] = val
		}
		out[styleID] = entry
	}
	return out
}
