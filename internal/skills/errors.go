// ABOUTME: Custom error types for skill discovery failures
// ABOUTME: Signals an empty skill set as a broken source tree
package skills

import "fmt"

// NoSkillsError indicates no named skill descriptors were found
type NoSkillsError struct {
	Pattern string
}

func (e *NoSkillsError) Error() string {
	return fmt.Sprintf("No skills discovered under %s", e.Pattern)
}
