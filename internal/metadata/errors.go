// ABOUTME: Custom error types for metadata loading failures
// ABOUTME: Distinguishes missing input files from parse errors
package metadata

import "fmt"

// MissingFileError indicates a required input file does not exist
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("Missing required file: %s", e.Path)
}
