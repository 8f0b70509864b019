package parameter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/speakeasy-api/oasparams/cmd/openapi/commands/cmdutil"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when at least one selected parameter is invalid.
var ErrValidationFailed = errors.New("parameter validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate OpenAPI parameters",
	Long: `Validate the parameters of an OpenAPI document, a list of parameters or a single parameter.

Each selected parameter is checked for:
- Required fields (name, in) and proper data types
- Path parameters being explicitly marked as required
- Exactly one of schema or content
- allowEmptyValue only being used on query parameters
- Known serialization styles and valid references
- Duplicate parameters within a list

When no --path is given and the document has a top level paths object, every
path item and operation parameter is validated.

Reads from stdin when no file is given.`,
	Args: cmdutil.StdinOrFileArgs(1),
	Run:  runValidate,
}

var (
	validatePaths          []string
	validateLegacyJSONPath bool
)

func init() {
	validateCmd.Flags().StringArrayVarP(&validatePaths, "path", "p", nil, "JSONPath expression selecting the parameters to validate, may be repeated")
	validateCmd.Flags().BoolVar(&validateLegacyJSONPath, "legacy-jsonpath", false, "evaluate --path with the legacy yamlpath dialect instead of RFC 9535")
}

func runValidate(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	start := time.Now()

	p := &Processor{
		InputFile:      cmdutil.InputFileFromArgs(args),
		Paths:          validatePaths,
		LegacyJSONPath: validateLegacyJSONPath,
	}

	err := validateParameters(ctx, p)
	reportElapsed(p.stderr(), "Validation", time.Since(start))

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateParameters(ctx context.Context, p *Processor) error {
	doc, validationErrors, err := p.load(ctx)
	if err != nil {
		return err
	}

	if len(validationErrors) == 0 {
		fmt.Fprint(p.stdout(), cmdutil.Printer.Sprintf("✅ Parameters are valid - %d parameters checked\n", len(doc.targets)))
		return nil
	}

	fmt.Fprint(p.stdout(), cmdutil.Printer.Sprintf("❌ Parameters are invalid - %d errors:\n\n", len(validationErrors)))
	fmt.Fprint(p.stdout(), formatValidationErrors(validationErrors))

	return ErrValidationFailed
}
