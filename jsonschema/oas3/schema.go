// Package oas3 holds JSON Schema bodies as used by OpenAPI 3.x.
// Schemas are carried opaquely: their keywords are preserved but not interpreted or validated.
package oas3

import (
	"context"

	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/references"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// RefKey is the key of a schema reference.
const RefKey = "$ref"

// Schema is a JSON Schema body, either an inline schema, a `$ref` to one, or a boolean schema.
type Schema struct {
	node *yaml.Node
}

// NewSchema creates a schema from a copy of node.
func NewSchema(node *yaml.Node) *Schema {
	return &Schema{node: yml.CloneNode(yml.UnwrapDocument(node))}
}

// NewTypedSchema creates a schema with only the `type` keyword set.
func NewTypedSchema(typ string) *Schema {
	return &Schema{
		node: yml.CreateMapNode(yml.CreateStringNode("type"), yml.CreateStringNode(typ)),
	}
}

// NewReference creates a schema that references another schema.
func NewReference(ref references.Reference) *Schema {
	return &Schema{
		node: yml.CreateMapNode(yml.CreateStringNode(RefKey), yml.CreateStringNode(ref.String())),
	}
}

// GetRootNode returns the node backing the schema. nil safe.
func (s *Schema) GetRootNode() *yaml.Node {
	if s == nil {
		return nil
	}
	return s.node
}

// IsReference reports whether the schema is a `$ref`.
func (s *Schema) IsReference() bool {
	return s.GetRef() != ""
}

// GetRef returns the `$ref` of the schema or an empty reference.
func (s *Schema) GetRef() references.Reference {
	_, refNode, ok := yml.GetMapElementNodes(s.GetRootNode(), RefKey)
	if !ok || refNode.Kind != yaml.ScalarNode {
		return ""
	}
	return references.Reference(refNode.Value)
}

// GetType returns the `type` keyword when it is a single string.
func (s *Schema) GetType() string {
	_, typeNode, ok := yml.GetMapElementNodes(s.GetRootNode(), "type")
	if !ok || typeNode.Kind != yaml.ScalarNode {
		return ""
	}
	return typeNode.Value
}

// IsBool reports whether this is a boolean schema (`true` or `false`).
func (s *Schema) IsBool() bool {
	node := s.GetRootNode()
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool"
}

// IsEqual compares two schemas structurally.
func (s *Schema) IsEqual(other *Schema) bool {
	return yml.EqualNodes(s.GetRootNode(), other.GetRootNode())
}

// Unmarshal decodes a schema node found at path. The node must be a mapping or a boolean, and any `$ref` must be valid.
func Unmarshal(_ context.Context, path jsonpointer.JSONPointer, node *yaml.Node) (*Schema, error) {
	resolved := yml.ResolveAlias(node)
	if resolved == nil {
		return nil, validation.NewDecodeError(validation.RuleValidationRequiredField, validation.NewMissingValueError("schema must not be empty"), node, path)
	}

	switch {
	case resolved.Kind == yaml.MappingNode:
	case resolved.Kind == yaml.ScalarNode && resolved.ShortTag() == "!!bool":
		return &Schema{node: yml.CloneNode(resolved)}, nil
	default:
		return nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError(path.String(), "schema expected object or boolean, got %s", yml.NodeKindToString(resolved.Kind)), resolved, path)
	}

	if _, refNode, ok := yml.GetMapElementNodes(resolved, RefKey); ok {
		refPath := path.Append(RefKey)
		if refNode.Kind != yaml.ScalarNode || refNode.ShortTag() != "!!str" {
			return nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError(refPath.String(), "schema.$ref expected string, got %s", yml.NodeKindToString(refNode.Kind)), refNode, refPath)
		}

		if err := references.Reference(refNode.Value).Validate(); err != nil {
			return nil, validation.NewDecodeError(validation.RuleValidationInvalidReference, err, refNode, refPath)
		}
	}

	return &Schema{node: yml.CloneNode(resolved)}, nil
}

// Marshal returns a copy of the node representing the schema.
func (s *Schema) Marshal(_ context.Context) *yaml.Node {
	if s == nil || s.node == nil {
		return yml.CreateMapNode()
	}
	return yml.CloneNode(s.node)
}
