package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	parameterCmd "github.com/speakeasy-api/oasparams/cmd/openapi/commands/parameter"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// getVersionInfo returns version information, prioritizing ldflags values over build info
func getVersionInfo() (string, string, string) {
	// If version/commit/date were set via ldflags (GoReleaser), use those
	if version != "dev" || commit != "none" || date != "unknown" {
		return version, commit, date
	}

	// Otherwise, try to get info from build info
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}

	// Use module version if available, otherwise fallback to "dev"
	moduleVersion := version
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		moduleVersion = buildInfo.Main.Version
	}

	// Extract VCS information
	vcsCommit := commit
	vcsTime := date

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 7 {
				vcsCommit = setting.Value[:7] // Short commit hash
			} else {
				vcsCommit = setting.Value
			}
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	return moduleVersion, vcsCommit, vcsTime
}

var rootCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Toolkit for validating and normalizing OpenAPI parameters",
	Long: `A toolkit for working with OpenAPI Parameter Objects.

This CLI provides tools for:
- Validating parameters against the structural rules of the OpenAPI Specification
- Normalizing parameters by dropping keys that hold their default value

Parameters can be read from a full OpenAPI document, a list of parameters or a
single parameter, in YAML or JSON.`,
	Version: version,
}

var parameterCmds = &cobra.Command{
	Use:   "parameter",
	Short: "Work with OpenAPI parameters",
	Long: `Commands for working with OpenAPI Parameter Objects.

Parameters describe a single input of an operation, passed in the query string,
a header, a templated path segment or a cookie.`,
}

func init() {
	// Get version information (prioritizes ldflags, falls back to build info)
	currentVersion, currentCommit, currentDate := getVersionInfo()

	rootCmd.Version = currentVersion

	var versionTemplate strings.Builder
	versionTemplate.WriteString(`{{printf "%s" .Version}}`)

	if currentCommit != "none" && currentCommit != "" {
		versionTemplate.WriteString("\nBuild: " + currentCommit)
	}

	if currentDate != "unknown" && currentDate != "" {
		versionTemplate.WriteString("\nBuilt: " + currentDate)
	}

	rootCmd.SetVersionTemplate(versionTemplate.String())

	parameterCmd.Apply(parameterCmds)

	rootCmd.AddCommand(parameterCmds)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
