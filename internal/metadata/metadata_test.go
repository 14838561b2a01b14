// ABOUTME: Unit tests for metadata document loading
// ABOUTME: Tests missing-file errors, parse failures, and raw field access
package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingFileError, got %T: %v", err, err)
	}
	if missing.Path != path {
		t.Errorf("expected path %s in error, got %s", path, missing.Path)
	}
}

func TestLoadValidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	content := `{"name": "hf-skills", "version": "1.0.0", "author": {"name": "HF"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	meta, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	name, ok := meta.StringField("name")
	if !ok || name != "hf-skills" {
		t.Errorf("expected name hf-skills, got %q (ok=%v)", name, ok)
	}

	// Non-string fields stay available as raw JSON
	if string(meta["author"]) != `{"name": "HF"}` {
		t.Errorf("author field not preserved verbatim: %s", meta["author"])
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var missing *MissingFileError
	if errors.As(err, &missing) {
		t.Error("parse failure should not report a missing file")
	}
}

func TestStringFieldNonString(t *testing.T) {
	meta := Metadata{
		"keywords": []byte(`["a", "b"]`),
		"empty":    []byte(`""`),
	}

	if _, ok := meta.StringField("keywords"); ok {
		t.Error("array field should not decode as string")
	}
	if _, ok := meta.StringField("absent"); ok {
		t.Error("absent field should not decode as string")
	}
	if s, ok := meta.StringField("empty"); !ok || s != "" {
		t.Errorf("empty string field should decode as present empty, got %q (ok=%v)", s, ok)
	}
}
