package availability

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"availbuilder/internal/catalog"
	"availbuilder/internal/logger"
)

// Builder produces the availability document from its three fixed inputs.
// Precedence, highest last:
//  1. everything true for sizes listed in the catalog
//  2. the built-in override table
//  3. the overrides file, if present and parseable (final say)
type Builder struct {
	CatalogPath   string
	OverridesPath string
	OutputPath    string

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// Timestamp layout for the updatedAt field, always UTC.
const UpdatedAtFormat = "2006-01-02T15:04:05Z"

// Build runs the whole pipeline and writes the output file. The catalog is
// the only fatal input; everything after it is best-effort.
func (b *Builder) Build() (*Document, error) {
	cat, err := catalog.Load(b.CatalogPath)
	if err != nil {
		return nil, err
	}

	styles := Seed(cat)
	Merge(styles, BuiltinOverrides())
	b.applyFileOverrides(styles)

	doc := &Document{
		UpdatedAt: b.now().UTC().Format(UpdatedAtFormat),
		Styles:    styles,
	}

	if err := Write(doc, b.OutputPath); err != nil {
		return nil, err
	}

	logger.LogInfo("Wrote %s (%d styles)", b.OutputPath, len(styles))

	return doc, nil
}

// applyFileOverrides layers the optional overrides file on top. A missing or
// malformed file is ignored on purpose: a broken optional file must never
// block output generation.
func (b *Builder) applyFileOverrides(styles Map) {
	data, err := os.ReadFile(b.OverridesPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.LogWarn("Skipping overrides file %s: %v", b.OverridesPath, err)
		}
		return
	}

	var extra Overrides
	if err := json.Unmarshal(data, &extra); err != nil {
		logger.LogWarn("Skipping malformed overrides file %s: %v", b.OverridesPath, err)
		return
	}

	MergeOverrides(styles, extra)
	logger.LogInfo("Applied overrides file %s (%d styles)", b.OverridesPath, len(extra))
}

// Write serializes the document to path with 2-space indentation, creating
// parent directories as needed and overwriting any prior content.
func Write(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal availability document: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0775); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0664); err != nil {
		return fmt.Errorf("failed to write availability file: %w", err)
	}

	return nil
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
