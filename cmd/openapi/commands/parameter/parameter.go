// Package parameter provides the CLI commands for working with OpenAPI parameters.
package parameter

import "github.com/spf13/cobra"

// Apply adds the parameter commands to rootCmd.
func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(normalizeCmd)
}
