package openapi

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/oasparams/extensions"
	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/jsonschema/oas3"
	"github.com/speakeasy-api/oasparams/sequencedmap"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// MediaType provides the schema and examples for the media type identified by its key in a Content map.
type MediaType struct {
	// Schema is the schema defining the type used for the parameter value.
	Schema *oas3.Schema
	// Example is an example of the media type's value. Mutually exclusive with Examples.
	Example *yaml.Node
	// Examples is a map of raw example objects or references to them. Mutually exclusive with Example.
	Examples *sequencedmap.Map[string, *yaml.Node]
	// Extensions provides a list of extensions to the MediaType object.
	Extensions *extensions.Extensions
}

// GetSchema returns the value of the Schema field. Returns nil if not set.
func (m *MediaType) GetSchema() *oas3.Schema {
	if m == nil {
		return nil
	}
	return m.Schema
}

// GetExample returns the value of the Example field. Returns nil if not set.
func (m *MediaType) GetExample() *yaml.Node {
	if m == nil {
		return nil
	}
	return m.Example
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (m *MediaType) GetExamples() *sequencedmap.Map[string, *yaml.Node] {
	if m == nil {
		return nil
	}
	return m.Examples
}

// GetExtensions returns the value of the Extensions field. Returns an empty extensions map if not set.
func (m *MediaType) GetExtensions() *extensions.Extensions {
	if m == nil || m.Extensions == nil {
		return extensions.New()
	}
	return m.Extensions
}

// IsEqual compares two media types structurally.
func (m *MediaType) IsEqual(other *MediaType) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.Schema.IsEqual(other.Schema) &&
		yml.EqualNodes(m.Example, other.Example) &&
		m.Examples.IsEqualFunc(other.Examples, yml.EqualNodes) &&
		m.Extensions.IsEqual(other.Extensions)
}

// Content maps media types, such as `application/json`, to their MediaType, in document order.
type Content struct {
	*sequencedmap.Map[string, *MediaType]
}

// NewContent creates a content map from the provided elements.
func NewContent(elements ...*sequencedmap.Element[string, *MediaType]) *Content {
	return &Content{
		Map: sequencedmap.New(elements...),
	}
}

// Len returns the number of media types. nil safe.
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return c.Map.Len()
}

// IsEqual compares two content maps, ignoring order.
func (c *Content) IsEqual(other *Content) bool {
	var a, b *sequencedmap.Map[string, *MediaType]
	if c != nil {
		a = c.Map
	}
	if other != nil {
		b = other.Map
	}

	return a.IsEqualFunc(b, func(x, y *MediaType) bool {
		return x.IsEqual(y)
	})
}

func unmarshalContent(ctx context.Context, path jsonpointer.JSONPointer, node *yaml.Node) (*Content, error) {
	resolved, err := requireMapping(node, path, "parameter.content")
	if err != nil {
		return nil, err
	}

	content := NewContent()

	for i := 0; i+1 < len(resolved.Content); i += 2 {
		keyNode := yml.ResolveAlias(resolved.Content[i])
		mediaTypePath := path.Append(keyNode.Value)

		if content.Has(keyNode.Value) {
			return nil, validation.NewDecodeError(validation.RuleValidationDuplicateKey, validation.NewValueValidationError("parameter.content has duplicate media type %q", keyNode.Value), keyNode, mediaTypePath)
		}

		mediaType, err := unmarshalMediaType(ctx, mediaTypePath, resolved.Content[i+1])
		if err != nil {
			return nil, err
		}

		content.Set(keyNode.Value, mediaType)
	}

	return content, nil
}

func unmarshalMediaType(ctx context.Context, path jsonpointer.JSONPointer, node *yaml.Node) (*MediaType, error) {
	resolved, err := requireMapping(node, path, "mediaType")
	if err != nil {
		return nil, err
	}

	mediaType := &MediaType{
		Extensions: extensions.Unmarshal(resolved),
	}

	if _, schemaNode, ok := yml.GetMapElementNodes(resolved, "schema"); ok {
		mediaType.Schema, err = oas3.Unmarshal(ctx, path.Append("schema"), schemaNode)
		if err != nil {
			return nil, err
		}
	}

	if _, exampleNode, ok := yml.GetMapElementNodes(resolved, "example"); ok {
		mediaType.Example = yml.CloneNode(exampleNode)
	}

	if _, examplesNode, ok := yml.GetMapElementNodes(resolved, "examples"); ok {
		examplesNode, err = requireMapping(examplesNode, path.Append("examples"), "mediaType.examples")
		if err != nil {
			return nil, err
		}

		mediaType.Examples = sequencedmap.New[string, *yaml.Node]()
		for i := 0; i+1 < len(examplesNode.Content); i += 2 {
			mediaType.Examples.Set(yml.ResolveAlias(examplesNode.Content[i]).Value, yml.CloneNode(examplesNode.Content[i+1]))
		}
	}

	return mediaType, nil
}

// validate reports media types that can't be encoded so that they decode back to an equal value.
func (c *Content) validate() error {
	for mediaType, obj := range c.All() {
		if obj == nil {
			return fmt.Errorf("media type %q is nil", mediaType)
		}
		if obj.Schema != nil && obj.Schema.GetRootNode() == nil {
			return fmt.Errorf("media type %q has an empty schema", mediaType)
		}
		if err := obj.Extensions.Validate(); err != nil {
			return fmt.Errorf("media type %q: %w", mediaType, err)
		}
	}
	return nil
}

func (c *Content) marshal(ctx context.Context) *yaml.Node {
	node := yml.CreateMapNode()

	for mediaType, obj := range c.All() {
		yml.AppendMapNodeElement(node, mediaType, obj.marshal(ctx))
	}

	return node
}

func (m *MediaType) marshal(ctx context.Context) *yaml.Node {
	node := yml.CreateMapNode()
	if m == nil {
		return node
	}

	if m.Schema != nil {
		yml.AppendMapNodeElement(node, "schema", m.Schema.Marshal(ctx))
	}
	if m.Example != nil {
		yml.AppendMapNodeElement(node, "example", yml.CloneNode(m.Example))
	}
	if m.Examples != nil {
		examples := yml.CreateMapNode()
		for name, example := range m.Examples.All() {
			yml.AppendMapNodeElement(examples, name, yml.CloneNode(example))
		}
		yml.AppendMapNodeElement(node, "examples", examples)
	}

	m.Extensions.MarshalInto(node)

	return node
}
