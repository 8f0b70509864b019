// Package cmdutil provides shared CLI utilities for the command groups.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StdinIndicator is the conventional Unix indicator to read from stdin.
const StdinIndicator = "-"

// Printer formats counts for humans, e.g. 1,024 parameters.
var Printer = message.NewPrinter(language.English)

// IsStdin returns true if the given path indicates stdin should be used.
func IsStdin(path string) bool {
	return path == StdinIndicator
}

// StdinIsPiped returns true when stdin is connected to a pipe (not a terminal).
func StdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}

// InputFileFromArgs returns the first positional arg, or "-" if stdin should be used.
func InputFileFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return StdinIndicator
}

// StdinOrFileArgs returns a cobra arg validator that accepts up to maxArgs files,
// and zero args only when stdin is piped.
func StdinOrFileArgs(maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if StdinIsPiped() {
				return nil
			}
			return fmt.Errorf("requires a file argument, or pipe data to stdin")
		}
		if maxArgs >= 0 && len(args) > maxArgs {
			return fmt.Errorf("accepts at most %d arg(s), received %d", maxArgs, len(args))
		}
		return nil
	}
}

// OpenInput opens path for reading, or wraps stdin when path is "-".
// The returned name is suitable for display.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if IsStdin(path) {
		return io.NopCloser(stdin), "stdin", nil
	}

	cleanPath := filepath.Clean(path)
	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	return f, cleanPath, nil
}
