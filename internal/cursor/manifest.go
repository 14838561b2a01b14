// ABOUTME: Builds the Cursor plugin manifest from authoritative plugin metadata
// ABOUTME: Validates the plugin name and copies whitelisted optional fields verbatim
package cursor

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/Prerna-1328/skills/internal/config"
	"github.com/Prerna-1328/skills/internal/metadata"
)

// pluginNameRE is the Cursor plugin naming rule: lowercase alphanumeric at
// both ends, with dots and dashes allowed in between. Single characters pass.
var pluginNameRE = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9.-]*[a-z0-9])?$`)

// Manifest is the generated .cursor-plugin/plugin.json document.
// Field order here is the field order in the rendered file. Optional fields
// are raw JSON copied from the source manifest; nil means omitted.
type Manifest struct {
	Name        string          `json:"name"`
	Skills      string          `json:"skills"`
	MCPServers  string          `json:"mcpServers"`
	Description json.RawMessage `json:"description,omitempty"`
	Version     json.RawMessage `json:"version,omitempty"`
	Author      json.RawMessage `json:"author,omitempty"`
	Homepage    json.RawMessage `json:"homepage,omitempty"`
	Repository  json.RawMessage `json:"repository,omitempty"`
	License     json.RawMessage `json:"license,omitempty"`
	Keywords    json.RawMessage `json:"keywords,omitempty"`
	Logo        json.RawMessage `json:"logo,omitempty"`
}

// ValidatePluginName checks a candidate name against the naming rule
func ValidatePluginName(name string) error {
	if !pluginNameRE.MatchString(name) {
		return &NameError{Name: name, Pattern: pluginNameRE.String()}
	}
	return nil
}

// BuildManifest assembles the Cursor manifest from the authoritative
// metadata and the discovered skill list. The skill list itself is not
// embedded; the manifest references the skills directory, and the list
// only asserts that the source tree actually provides skills.
func BuildManifest(meta metadata.Metadata, skillNames []string) (*Manifest, error) {
	name, ok := meta.StringField("name")
	if !ok || name == "" {
		return nil, fmt.Errorf("%s must define a non-empty 'name'", config.ClaudePluginManifest)
	}
	if err := ValidatePluginName(name); err != nil {
		return nil, err
	}

	if len(skillNames) == 0 {
		return nil, fmt.Errorf("No skills discovered under %s/*/SKILL.md", config.SkillsDir)
	}

	manifest := &Manifest{
		Name:       name,
		Skills:     config.SkillsDir,
		MCPServers: config.CursorMCPConfig,
	}

	// Copy optional metadata fields when present
	optional := []struct {
		key string
		dst *json.RawMessage
	}{
		{"description", &manifest.Description},
		{"version", &manifest.Version},
		{"author", &manifest.Author},
		{"homepage", &manifest.Homepage},
		{"repository", &manifest.Repository},
		{"license", &manifest.License},
		{"keywords", &manifest.Keywords},
		{"logo", &manifest.Logo},
	}
	for _, field := range optional {
		if raw, ok := meta[field.key]; ok {
			*field.dst = raw
		}
	}

	return manifest, nil
}
