// ABOUTME: Custom error types for manifest validation failures
// ABOUTME: Reports plugin names that violate the Cursor naming rule
package cursor

import (
	"fmt"

	"github.com/Prerna-1328/skills/internal/config"
)

// NameError indicates the plugin name violates the naming rule
type NameError struct {
	Name    string
	Pattern string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("Invalid plugin name in %s: '%s'. Must be lowercase and match %s",
		config.ClaudePluginManifest, e.Name, e.Pattern)
}
