// ABOUTME: Centralized path resolution for generated Cursor artifacts
// ABOUTME: Defines the fixed repo-relative input and output locations
package config

import (
	"os"
	"path/filepath"
)

// Repo-relative locations of the files this tool reads and writes.
// These are fixed by convention and never derived from user input.
const (
	ClaudePluginManifest = ".claude-plugin/plugin.json"
	GeminiExtension      = "gemini-extension.json"
	CursorPluginManifest = ".cursor-plugin/plugin.json"
	CursorMCPConfig      = ".mcp.json"
	SkillsDir            = "skills"
)

// ResolveRoot turns the --root flag value into an absolute repo root.
// An empty value means the current working directory.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		return os.Getwd()
	}
	return filepath.Abs(root)
}
