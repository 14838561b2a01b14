// ABOUTME: Print helper functions for consistent CLI output
// ABOUTME: Provides success, error, and muted output styles plus error formatting
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// PrintSuccess prints a success message with checkmark symbol
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render(SymbolSuccess + " " + msg))
}

// PrintMuted prints a muted/secondary message
func PrintMuted(msg string) {
	fmt.Println(mutedStyle.Render(msg))
}

// PrintError prints an error message with X symbol
func PrintError(msg string) {
	fmt.Println(errorStyle.Render(SymbolError + " " + msg))
}

// Muted returns a string styled as muted (for inline use)
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// FormatError renders an error for terminal display with the error symbol
func FormatError(err error) string {
	return errorStyle.Render(SymbolError + " " + err.Error())
}
