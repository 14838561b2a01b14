// ABOUTME: Loader for JSON metadata documents used as generation inputs
// ABOUTME: Preserves raw field values so optional metadata round-trips unchanged
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
)

// Metadata is a parsed JSON document keyed by top-level field name.
// Values stay as raw JSON so copies into generated artifacts preserve
// the source bytes (objects, arrays, and explicit nulls included).
type Metadata map[string]json.RawMessage

// Load reads and parses a JSON metadata file.
// A missing file yields *MissingFileError so callers can distinguish
// absence (fatal for the plugin manifest, a fallback for extension config)
// from a corrupt document.
func Load(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &MissingFileError{Path: path}
	}
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return meta, nil
}

// StringField decodes a top-level field as a string.
// Returns ("", false) when the field is absent or not a JSON string.
func (m Metadata) StringField(key string) (string, bool) {
	raw, ok := m[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
