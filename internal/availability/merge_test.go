package availability

import (
	"testing"

	"availbuilder/internal/catalog"
)

func TestSeedDefaultsEverythingTrue(t *testing.T) {
	doc := &catalog.Document{
		Styles: []catalog.Style{
			{ID: "sapphire", Sizes: []string{"I", "T", "S"}},
			{ID: "purple", Sizes: []string{"M"}},
		},
	}

	m := Seed(doc)

	if len(m) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(m))
	}
	for _, sz := range []string{"I", "T", "S"} {
		val, ok := m["sapphire"][sz]
		if !ok {
			t.Errorf("sapphire missing size %s", sz)
		}
		if !val {
			t.Errorf("sapphire size %s should default to true", sz)
		}
	}
	if !m["purple"]["M"] {
		t.Error("purple M should default to true")
	}
}

func TestSeedEmptySizeListStillPresent(t *testing.T) {
	doc := &catalog.Document{
		Styles: []catalog.Style{{ID: "mystery", Sizes: nil}},
	}

	m := Seed(doc)

	entry, ok := m["mystery"]
	if !ok {
		t.Fatal("style with empty size list should still get an entry")
	}
	if len(entry) != 0 {
		t.Errorf("expected empty entry, got %v", entry)
	}
}

func TestMergeOverwritesAndAdds(t *testing.T) {
	base := Map{
		"sapphire": {"T": true, "S": true},
	}

	Merge(base, Map{
		"sapphire": {"T": false},
		"partybag": {"ONESIZE": true},
	})

	if base["sapphire"]["T"] {
		t.Error("override should have set sapphire T to false")
	}
	if !base["sapphire"]["S"] {
		t.Error("untouched sapphire S should remain true")
	}
	if !base["partybag"]["ONESIZE"] {
		t.Error("merge should add styles missing from base")
	}
}

func TestMergeLastLayerWins(t *testing.T) {
	base := Map{"onyx": {"L": true}}

	Merge(base, Map{"onyx": {"L": false}})
	Merge(base, Map{"onyx": {"L": true}})

	if !base["onyx"]["L"] {
		t.Error("the last applied layer should win")
	}
}

func TestMergeOverridesCoercesValues(t *testing.T) {
	base := Map{"tiger": {"M": true, "L": true}}

	MergeOverrides(base, Overrides{
		"tiger": {"M": float64(0), "L": "yes", "XL": float64(1)},
	})

	if base["tiger"]["M"] {
		t.Error("numeric 0 should coerce to false")
	}
	if !base["tiger"]["L"] {
		t.Error("non-empty string should coerce to true")
	}
	if !base["tiger"]["XL"] {
		t.Error("numeric 1 should coerce to true")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"true", true, true},
		{"false", false, false},
		{"nil", nil, false},
		{"zero", float64(0), false},
		{"one", float64(1), true},
		{"negative", float64(-2), true},
		{"empty string", "", false},
		{"string", "yes", true},
		{"empty array", []interface{}{}, false},
		{"array", []interface{}{"x"}, true},
		{"empty object", map[string]interface{}{}, false},
		{"object", map[string]interface{}{"k": 1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truthy(tc.in); got != tc.want {
				t.Errorf("Truthy(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuiltinOverridesReturnsCopy(t *testing.T) {
	first := BuiltinOverrides()
	first["sapphire"]["T"] = true
	delete(first, "partybag")

	second := BuiltinOverrides()
	if second["sapphire"]["T"] {
		t.Error("mutating a returned table must not touch the embedded constant")
	}
	if _, ok := second["partybag"]; !ok {
		t.Error("deleting from a returned table must not touch the embedded constant")
	}
}
