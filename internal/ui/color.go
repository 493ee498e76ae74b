// Package ui provides terminal output utilities for ctxaudit.
package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color function types for styled output.
var (
	// Success is used for found artifacts and passing checks (green).
	Success = color.New(color.FgGreen).SprintFunc()
	// Error is used for missing artifacts and failures (red).
	Error = color.New(color.FgRed).SprintFunc()
	// Warning is used for warnings and stale artifacts (yellow).
	Warning = color.New(color.FgYellow).SprintFunc()
	// Info is used for informational notes (cyan).
	Info = color.New(color.FgCyan).SprintFunc()
	// Bold is used for section headers and the verdict line.
	Bold = color.New(color.Bold).SprintFunc()
	// Dim is used for secondary information (faint).
	Dim = color.New(color.Faint).SprintFunc()
)

// Status symbols.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolNote    = "·"
)

// StatusSuccess returns a green checkmark with optional message.
func StatusSuccess(msg string) string {
	if msg == "" {
		return Success(SymbolSuccess)
	}
	return Success(SymbolSuccess) + " " + msg
}

// StatusError returns a red X with optional message.
func StatusError(msg string) string {
	if msg == "" {
		return Error(SymbolError)
	}
	return Error(SymbolError) + " " + msg
}

// StatusWarning returns a yellow warning with optional message.
func StatusWarning(msg string) string {
	if msg == "" {
		return Warning(SymbolWarning)
	}
	return Warning(SymbolWarning) + " " + msg
}

// StatusNote returns a dimmed note marker with optional message.
func StatusNote(msg string) string {
	if msg == "" {
		return Dim(SymbolNote)
	}
	return Dim(SymbolNote) + " " + msg
}

// AutoDetectColors disables color output when stdout is not a terminal,
// so piped report text stays plain.
func AutoDetectColors() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// DisableColors disables all color output.
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output.
func EnableColors() {
	color.NoColor = false
}

// IsColorEnabled returns whether colors are currently enabled.
func IsColorEnabled() bool {
	return !color.NoColor
}
