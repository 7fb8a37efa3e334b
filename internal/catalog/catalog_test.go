package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"styles": [{"id": "onyx", "sizes": ["S", "M"]}, {"id": "partybag", "sizes": ["ONESIZE"]}]}`
	if err := os.WriteFile(path, []byte(content), 0664); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(doc.Styles) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(doc.Styles))
	}
	if doc.Styles[0].ID != "onyx" {
		t.Errorf("expected first style onyx, got %s", doc.Styles[0].ID)
	}
	if len(doc.Styles[0].Sizes) != 2 {
		t.Errorf("expected 2 sizes for onyx, got %v", doc.Styles[0].Sizes)
	}
}

func TestLoadMissingSizesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{"styles": [{"id": "mystery"}]}`), 0664); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Styles[0].Sizes) != 0 {
		t.Errorf("missing sizes key should produce an empty size list, got %v", doc.Styles[0].Sizes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load should fail for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0664); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail for malformed JSON")
	}
}
