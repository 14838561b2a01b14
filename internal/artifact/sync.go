// ABOUTME: Deterministic rendering and file synchronization for generated artifacts
// ABOUTME: Writes only when content changed and supports a read-only check mode
package artifact

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// Artifact pairs an output path with its fully rendered content.
// Content is complete before any write begins, so a failed run never
// leaves a truncated file behind.
type Artifact struct {
	Path    string // absolute output path
	RelPath string // repo-relative path, used in diagnostics
	Content string
}

// Render produces the canonical text form of a generated document:
// two-space indented JSON, no HTML escaping, trailing newline. The same
// document always renders to the same bytes, which is what check mode
// compares against.
func Render(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write syncs one artifact to disk. Returns true when the file was
// written, false when it already had the rendered content.
func Write(a Artifact) (bool, error) {
	if upToDate(a) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(a.Path, []byte(a.Content), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// Check verifies all artifacts without writing anything. Returns
// *DriftError listing every missing or outdated path, or nil when all
// artifacts match their rendered content.
func Check(artifacts []Artifact) error {
	var outdated []string
	for _, a := range artifacts {
		if !upToDate(a) {
			outdated = append(outdated, a.RelPath)
		}
	}
	if len(outdated) > 0 {
		return &DriftError{Paths: outdated}
	}
	return nil
}

func upToDate(a Artifact) bool {
	current, err := os.ReadFile(a.Path)
	if err != nil {
		return false
	}
	return string(current) == a.Content
}
