// ABOUTME: Shared lipgloss color palette and symbols for CLI output
// ABOUTME: Handles NO_COLOR and non-TTY environments by degrading to plain text
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette
var (
	ColorSuccess = lipgloss.Color("#22c55e") // Green
	ColorError   = lipgloss.Color("#ef4444") // Red
	ColorMuted   = lipgloss.Color("#6b7280") // Gray
)

// Symbol definitions
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolBullet  = "•"
)

func init() {
	initColorProfile()
}

func initColorProfile() {
	// Respect NO_COLOR standard (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	// Output lands in CI logs as often as terminals; keep piped output plain
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
