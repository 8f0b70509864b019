package parameter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/oasparams/cmd/openapi/commands/cmdutil"
	"github.com/speakeasy-api/oasparams/openapi"
	"github.com/speakeasy-api/oasparams/yml"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file] [output]",
	Short: "Rewrite OpenAPI parameters in their canonical form",
	Long: `Rewrite the parameters of an OpenAPI document, a list of parameters or a single parameter
in their canonical form.

Normalization:
- Drops keys holding their default value (required: false, deprecated: false,
  allowEmptyValue: false, style and explode matching the location defaults,
  allowReserved: false)
- Orders parameter keys consistently
- Drops keys other than $ref from parameter references
- Preserves extensions and everything outside of the selected parameters

The document is only written when every selected parameter is valid.
Output is written to stdout unless an output file is given, in the input format unless --format is set.`,
	Args: cmdutil.StdinOrFileArgs(2),
	Run:  runNormalize,
}

var (
	normalizePaths          []string
	normalizeLegacyJSONPath bool
	normalizeFormat         string
)

func init() {
	normalizeCmd.Flags().StringArrayVarP(&normalizePaths, "path", "p", nil, "JSONPath expression selecting the parameters to normalize, may be repeated")
	normalizeCmd.Flags().BoolVar(&normalizeLegacyJSONPath, "legacy-jsonpath", false, "evaluate --path with the legacy yamlpath dialect instead of RFC 9535")
	normalizeCmd.Flags().StringVarP(&normalizeFormat, "format", "f", "", "output format: yaml or json (defaults to the input format)")
}

func runNormalize(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	p := &Processor{
		InputFile:      cmdutil.InputFileFromArgs(args),
		Paths:          normalizePaths,
		LegacyJSONPath: normalizeLegacyJSONPath,
	}

	outputFile := ""
	if len(args) > 1 {
		outputFile = args[1]
	}

	if err := normalizeParameters(ctx, p, normalizeFormat, outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func normalizeParameters(ctx context.Context, p *Processor, format, outputFile string) error {
	var outputFormat yml.OutputFormat
	switch yml.OutputFormat(format) {
	case "":
	case yml.OutputFormatYAML, yml.OutputFormatJSON:
		outputFormat = yml.OutputFormat(format)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	doc, validationErrors, err := p.load(ctx)
	if err != nil {
		return err
	}

	if len(validationErrors) > 0 {
		fmt.Fprint(p.stderr(), cmdutil.Printer.Sprintf("❌ Parameters are invalid - %d errors:\n\n", len(validationErrors)))
		fmt.Fprint(p.stderr(), formatValidationErrors(validationErrors))
		return ErrValidationFailed
	}

	for _, t := range doc.targets {
		node, err := openapi.MarshalReferencedParameter(ctx, t.parameter)
		if err != nil {
			return fmt.Errorf("failed to normalize parameter at %q: %w", t.path, err)
		}

		*t.node = *node
	}

	cfg := *doc.config
	if outputFormat != "" {
		cfg.OutputFormat = outputFormat
	}
	ctx = yml.ContextWithConfig(ctx, &cfg)

	if outputFile == "" {
		if err := openapi.MarshalNode(ctx, doc.root, p.stdout()); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
	} else {
		cleanOutputFile := filepath.Clean(outputFile)
		f, err := os.Create(cleanOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := openapi.MarshalNode(ctx, doc.root, f); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}

		fmt.Fprintf(p.stderr(), "📄 Document written to: %s\n", cleanOutputFile)
	}

	fmt.Fprint(p.stderr(), cmdutil.Printer.Sprintf("✅ Normalized %d parameters\n", len(doc.targets)))

	return nil
}
