// Package logger provides colored console output for dotsync.
//
// Markers follow the CLI's output convention: "→" for actions in
// progress, "✓" for success, "×" for failures.
package logger

import (
	"github.com/fatih/color"
)

// Printf-style functions for each output level.
var (
	// Info prints plain progress output.
	Info = color.New().PrintfFunc()

	// Success prints green confirmation output.
	Success = color.New(color.FgGreen).PrintfFunc()

	// Warn prints magenta warnings for non-fatal conditions.
	Warn = color.New(color.FgHiMagenta).PrintfFunc()

	// Error prints red failure output.
	Error = color.New(color.FgRed).PrintfFunc()

	// Debug prints cyan diagnostics when enabled via Init.
	Debug func(format string, a ...any)
)

func init() {
	Debug = func(format string, a ...any) {}
}

// Init configures debug output and color usage.
func Init(debug, noColor bool) {
	if noColor {
		color.NoColor = true
	}
	if debug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// Action prints a "→" progress line.
func Action(format string, a ...any) {
	Info("→ "+format+"\n", a...)
}

// OK prints a "✓" success line.
func OK(format string, a ...any) {
	Success("✓ "+format+"\n", a...)
}

// Fail prints a "×" failure line.
func Fail(format string, a ...any) {
	Error("× "+format+"\n", a...)
}
