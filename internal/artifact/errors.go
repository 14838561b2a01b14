// ABOUTME: Custom error types for artifact synchronization
// ABOUTME: Reports generated files that have drifted from their inputs
package artifact

import (
	"fmt"
	"strings"
)

// DriftError indicates generated artifacts no longer match their inputs
type DriftError struct {
	Paths []string
}

func (e *DriftError) Error() string {
	var b strings.Builder
	b.WriteString("Generated Cursor artifacts are out of date:")
	for _, path := range e.Paths {
		fmt.Fprintf(&b, "\n  - %s", path)
	}
	b.WriteString("\nRun: cursorgen")
	return b.String()
}
