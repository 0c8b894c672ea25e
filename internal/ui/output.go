package ui

import "fmt"

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
)

// Successf returns a formatted success message with checkmark symbol.
func Successf(format string, args ...any) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, fmt.Sprintf(format, args...))
}

// Errorf returns a formatted error message with X symbol.
func Errorf(format string, args ...any) string {
	return fmt.Sprintf("%s %s", SymbolError, fmt.Sprintf(format, args...))
}
