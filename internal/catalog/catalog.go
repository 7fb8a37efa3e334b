package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"availbuilder/internal/logger"
)

// Load reads and parses the catalog file. The catalog is the one input the
// builder cannot run without, so callers treat any error here as fatal.
func Load(path string) (*Document, error) {
	logger.LogInfo("Loading catalog from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	logger.LogInfo("Successfully loaded catalog: %d styles", len(doc.Styles))

	return &doc, nil
}
