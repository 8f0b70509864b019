package parameter

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/speakeasy-api/oasparams/cmd/openapi/commands/cmdutil"
	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/openapi"
	"github.com/speakeasy-api/oasparams/query"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// Processor loads a document and decodes the parameters selected in it.
//
// A document with a top level `paths` key is treated as an OpenAPI document and every path item and operation
// parameter is selected, unless Paths overrides the selection. Otherwise the document must be a single parameter
// or a list of parameters.
type Processor struct {
	InputFile      string
	Paths          []string
	LegacyJSONPath bool

	// Optional overrides for testing; when nil, os.Stdin/os.Stdout/os.Stderr are used.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (p *Processor) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

func (p *Processor) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Processor) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}

// target is a decoded parameter along with the node it was decoded from.
type target struct {
	node      *yaml.Node
	path      jsonpointer.JSONPointer
	parameter openapi.ReferencedParameter
}

// document is a loaded input and the parameters selected from it.
type document struct {
	root    *yaml.Node
	config  *yml.Config
	targets []target
	// sequence is set when the document itself is a list of parameters.
	sequence bool
}

// load reads the input and decodes the selected parameters.
// Decoding failures are returned as validation errors, while errors reading or querying the input are returned as err.
func (p *Processor) load(ctx context.Context) (*document, []error, error) {
	r, name, err := cmdutil.OpenInput(p.InputFile, p.stdin())
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	fmt.Fprintf(p.stderr(), "Processing parameters from: %s\n", name)

	root, cfg, err := openapi.ReadDocument(r)
	if err != nil {
		return nil, nil, err
	}

	doc := &document{root: root, config: cfg}
	content := yml.UnwrapDocument(root)

	switch {
	case len(p.Paths) > 0 || hasPaths(content):
		validationErrs, err := p.loadSelected(ctx, doc, content)
		return doc, validationErrs, err
	case content.Kind == yaml.SequenceNode:
		doc.sequence = true

		params, validationErrs, err := openapi.UnmarshalParameters(ctx, "", content)
		if err != nil {
			return nil, nil, err
		}
		if len(validationErrs) > 0 {
			return doc, validationErrs, nil
		}

		for i, rp := range params {
			doc.targets = append(doc.targets, target{node: content.Content[i], path: jsonpointer.JSONPointer("").AppendIndex(i), parameter: rp})
		}
		return doc, nil, nil
	default:
		rp, err := openapi.UnmarshalReferencedParameter(ctx, "", content)
		if err != nil {
			return doc, []error{err}, nil
		}

		doc.targets = append(doc.targets, target{node: content, parameter: rp})
		return doc, nil, nil
	}
}

func (p *Processor) loadSelected(ctx context.Context, doc *document, content *yaml.Node) ([]error, error) {
	exprs := p.Paths
	if len(exprs) == 0 {
		exprs = query.DefaultParameterPaths
	}

	nodes, err := query.Select(doc.root, exprs, p.LegacyJSONPath)
	if err != nil {
		return nil, err
	}

	locations := indexNodes(content)
	validationErrs := []error{}

	for _, node := range nodes {
		path := locations[node]

		rp, err := openapi.UnmarshalReferencedParameter(ctx, path, node)
		if err != nil {
			validationErrs = append(validationErrs, err)
			continue
		}

		doc.targets = append(doc.targets, target{node: node, path: path, parameter: rp})
	}

	validation.SortValidationErrors(validationErrs)

	return validationErrs, nil
}

func hasPaths(node *yaml.Node) bool {
	_, _, ok := yml.GetMapElementNodes(node, "paths")
	return ok
}

// indexNodes maps every node under root to its JSON pointer.
func indexNodes(root *yaml.Node) map[*yaml.Node]jsonpointer.JSONPointer {
	locations := map[*yaml.Node]jsonpointer.JSONPointer{}

	var walk func(node *yaml.Node, path jsonpointer.JSONPointer)
	walk = func(node *yaml.Node, path jsonpointer.JSONPointer) {
		if node == nil {
			return
		}
		if _, ok := locations[node]; ok {
			return
		}
		locations[node] = path

		switch node.Kind {
		case yaml.MappingNode:
			for i := 0; i+1 < len(node.Content); i += 2 {
				walk(node.Content[i+1], path.Append(node.Content[i].Value))
			}
		case yaml.SequenceNode:
			for i, child := range node.Content {
				walk(child, path.AppendIndex(i))
			}
		}
	}
	walk(root, "")

	return locations
}

func formatValidationErrors(validationErrors []error) string {
	var sb strings.Builder
	indexWidth := len(strconv.Itoa(len(validationErrors)))

	for i, validationErr := range validationErrors {
		fmt.Fprintf(&sb, "%*d. %s\n", indexWidth, i+1, validationErr.Error())
	}

	return sb.String()
}

func reportElapsed(w io.Writer, action string, elapsed time.Duration) {
	roundedElapsed := elapsed.Round(time.Millisecond)
	if roundedElapsed < time.Millisecond {
		roundedElapsed = time.Millisecond
	}

	fmt.Fprintf(w, "%s completed in %s\n", action, roundedElapsed)
}
