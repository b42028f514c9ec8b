// Package errors gives fatal CLI failures one shape: an "Error:" line on
// stderr, a record in the log file, exit code 1.
package errors

import (
	"fmt"
	"os"

	"github.com/hkhosravani/sleepbetter/internal/logger"
)

// Format renders err with the standard "Error: " prefix. A nil error yields
// the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a format string and args.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, prints it to stderr, and exits with code 1. A nil error is
// a no-op, so callers can pass through the happy path unconditionally.
func Fatal(err error) {
	if err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal for a format string and args. Unlike Fatal it always exits.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("command failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
