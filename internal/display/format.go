// Package display provides the banner and output formatting helpers.
package display

import (
	"os/exec"

	"github.com/alessio/shellescape"
)

// FormatCommand renders an argument slice as a copy-pasteable shell line
// for verbose and dry-run output.
func FormatCommand(args []string) string {
	return shellescape.QuoteCommand(args)
}

// FormatExitStatus renders a downloader exit for the per-URL report line.
func FormatExitStatus(err error) string {
	if err == nil {
		return "exit status 0"
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.String()
	}
	return err.Error()
}
