package openapi

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/oasparams/errors"
	"github.com/speakeasy-api/oasparams/json"
	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when reading a document that holds no node.
const ErrEmptyDocument = errors.Error("empty document")

type Option[T any] func(o *T)

type UnmarshalOptions struct {
	basePath jsonpointer.JSONPointer
}

// WithBasePath sets the JSON pointer reported in errors for the decoded node.
// Useful when the parameter was extracted from a larger document.
func WithBasePath(path jsonpointer.JSONPointer) Option[UnmarshalOptions] {
	return func(o *UnmarshalOptions) {
		o.basePath = path
	}
}

// ReadDocument parses a YAML or JSON document and returns its root node along with a config
// that writes it back in the format and indentation it was read in.
func ReadDocument(doc io.Reader) (*yaml.Node, *yml.Config, error) {
	data, err := io.ReadAll(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}

	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyDocument
		}
		return nil, nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &root, yml.GetConfigFromData(data), nil
}

// Unmarshal will decode a single parameter from the provided io.Reader.
// The returned error is a *validation.Error when the document parsed but does not describe a valid parameter.
func Unmarshal(ctx context.Context, doc io.Reader, opts ...Option[UnmarshalOptions]) (*Parameter, error) {
	o := UnmarshalOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	root, _, err := ReadDocument(doc)
	if err != nil {
		return nil, err
	}

	return UnmarshalParameter(ctx, o.basePath, root)
}

// Marshal will encode the provided parameter to the provided io.Writer using the yml.Config carried by ctx.
func Marshal(ctx context.Context, p *Parameter, w io.Writer) error {
	node, err := MarshalParameter(ctx, p)
	if err != nil {
		return err
	}

	return MarshalNode(ctx, node, w)
}

// MarshalNode writes node as YAML or JSON depending on the yml.Config carried by ctx.
func MarshalNode(ctx context.Context, node *yaml.Node, w io.Writer) error {
	cfg := yml.GetConfigFromContext(ctx)

	switch cfg.OutputFormat {
	case yml.OutputFormatYAML:
		if cfg.OriginalFormat == yml.OutputFormatJSON {
			resetNodeStylesForYAML(node)
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(cfg.Indentation)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	case yml.OutputFormatJSON:
		return json.YAMLToJSON(node, cfg.Indentation, w)
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

// resetNodeStylesForYAML clears the flow and quoting styles picked up when parsing JSON,
// so the node is written as block YAML.
func resetNodeStylesForYAML(node *yaml.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		node.Style &^= yaml.FlowStyle
	case yaml.ScalarNode:
		node.Style &^= yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle
	}

	for _, child := range node.Content {
		resetNodeStylesForYAML(child)
	}
}
