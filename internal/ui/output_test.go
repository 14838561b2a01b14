// ABOUTME: Tests for UI output helper functions
// ABOUTME: Verifies print helpers format messages correctly
package ui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestPrintSuccess(t *testing.T) {
	output := captureOutput(func() {
		PrintSuccess("Wrote .mcp.json")
	})

	if !strings.Contains(output, SymbolSuccess) {
		t.Errorf("Expected output to contain success symbol, got: %s", output)
	}
	if !strings.Contains(output, "Wrote .mcp.json") {
		t.Errorf("Expected output to contain message, got: %s", output)
	}
}

func TestPrintMuted(t *testing.T) {
	output := captureOutput(func() {
		PrintMuted("secondary detail")
	})

	if !strings.Contains(output, "secondary detail") {
		t.Errorf("Expected output to contain message, got: %s", output)
	}
}

func TestFormatError(t *testing.T) {
	formatted := FormatError(errors.New("something failed"))

	if !strings.Contains(formatted, SymbolError) {
		t.Errorf("Expected error symbol in %q", formatted)
	}
	if !strings.Contains(formatted, "something failed") {
		t.Errorf("Expected message in %q", formatted)
	}
}
