// ABOUTME: Builds the .mcp.json server registration document
// ABOUTME: Reuses the MCP endpoint from gemini-extension.json when available
package mcp

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Prerna-1328/skills/internal/metadata"
)

// Defaults used when gemini-extension.json is absent or unusable
const (
	DefaultServerName = "huggingface-skills"
	DefaultURL        = "https://huggingface.co/mcp?login"
)

// ServerEntry represents a single MCP server registration
type ServerEntry struct {
	URL string `json:"url"`
}

// Config is the generated .mcp.json document. It always holds exactly one
// server entry, so map iteration order cannot affect the rendered output.
type Config struct {
	MCPServers map[string]ServerEntry `json:"mcpServers"`
}

// BuildConfig produces the MCP server document. meta is the parsed
// gemini-extension.json, or nil when the file does not exist. The first
// configured server (in document order) is the source of truth; anything
// short of a well-formed entry falls back to the defaults, including the
// server name.
func BuildConfig(meta metadata.Metadata) *Config {
	name, url := extractServer(meta)
	return &Config{
		MCPServers: map[string]ServerEntry{
			name: {URL: url},
		},
	}
}

func extractServer(meta metadata.Metadata) (string, string) {
	if meta == nil {
		return DefaultServerName, DefaultURL
	}

	raw, ok := meta["mcpServers"]
	if !ok {
		return DefaultServerName, DefaultURL
	}

	name, value, ok := firstServerEntry(raw)
	if !ok {
		return DefaultServerName, DefaultURL
	}

	var server map[string]json.RawMessage
	if err := json.Unmarshal(value, &server); err != nil || server == nil {
		// Entry value is not an object; discard the discovered name too
		return DefaultServerName, DefaultURL
	}

	url := stringField(server, "url")
	if url == "" {
		url = stringField(server, "httpUrl")
	}
	if strings.TrimSpace(url) == "" {
		url = DefaultURL
	}
	return name, url
}

// firstServerEntry returns the first key/value pair of a JSON object in
// document order, which a decoded Go map would not preserve.
func firstServerEntry(raw json.RawMessage) (string, json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return "", nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", nil, false
	}
	if !dec.More() {
		return "", nil, false
	}

	keyTok, err := dec.Token()
	if err != nil {
		return "", nil, false
	}
	name, ok := keyTok.(string)
	if !ok {
		return "", nil, false
	}

	var value json.RawMessage
	if err := dec.Decode(&value); err != nil {
		return "", nil, false
	}
	return name, value, true
}

func stringField(obj map[string]json.RawMessage, key string) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
