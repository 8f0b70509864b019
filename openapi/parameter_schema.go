package openapi

import (
	"context"

	"github.com/speakeasy-api/oasparams/errors"
	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/jsonschema/oas3"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// ParameterSchema types a parameter with a schema and describes how the value is serialized for its location.
type ParameterSchema struct {
	schema        *oas3.Schema
	style         SerializationStyle
	explode       bool
	allowReserved bool
	example       *yaml.Node
}

type parameterSchemaOptions struct {
	style         *SerializationStyle
	explode       *bool
	allowReserved bool
	example       *yaml.Node
}

// SchemaOption configures a ParameterSchema.
type SchemaOption func(o *parameterSchemaOptions)

// WithStyle sets the serialization style. An empty style keeps the location default.
func WithStyle(style SerializationStyle) SchemaOption {
	return func(o *parameterSchemaOptions) {
		if style != "" {
			o.style = &style
		}
	}
}

// WithExplode sets explode, otherwise it defaults from the style.
func WithExplode(explode bool) SchemaOption {
	return func(o *parameterSchemaOptions) {
		o.explode = &explode
	}
}

// WithAllowReserved allows reserved RFC3986 characters in the value without percent-encoding.
func WithAllowReserved() SchemaOption {
	return func(o *parameterSchemaOptions) {
		o.allowReserved = true
	}
}

// WithExample sets a copy of example as the example value for the parameter.
func WithExample(example *yaml.Node) SchemaOption {
	return func(o *parameterSchemaOptions) {
		o.example = yml.CloneNode(example)
	}
}

// NewParameterSchema creates a ParameterSchema whose unspecified style and explode are resolved for location.
func NewParameterSchema(schema *oas3.Schema, location Location, opts ...SchemaOption) ParameterSchema {
	o := parameterSchemaOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	style := DefaultStyle(location)
	if o.style != nil {
		style = *o.style
	}

	explode := DefaultExplode(style)
	if o.explode != nil {
		explode = *o.explode
	}

	return ParameterSchema{
		schema:        schema,
		style:         style,
		explode:       explode,
		allowReserved: o.allowReserved,
		example:       o.example,
	}
}

// GetSchema returns the schema. nil safe.
func (s *ParameterSchema) GetSchema() *oas3.Schema {
	if s == nil {
		return nil
	}
	return s.schema
}

// GetStyle returns the resolved serialization style.
func (s *ParameterSchema) GetStyle() SerializationStyle {
	if s == nil {
		return ""
	}
	return s.style
}

// GetExplode returns the resolved explode value.
func (s *ParameterSchema) GetExplode() bool {
	if s == nil {
		return false
	}
	return s.explode
}

// GetAllowReserved returns the value of allowReserved. False by default.
func (s *ParameterSchema) GetAllowReserved() bool {
	if s == nil {
		return false
	}
	return s.allowReserved
}

// GetExample returns the example node or nil if not set.
func (s *ParameterSchema) GetExample() *yaml.Node {
	if s == nil {
		return nil
	}
	return s.example
}

// IsEqual compares two parameter schemas structurally.
func (s *ParameterSchema) IsEqual(other *ParameterSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.schema.IsEqual(other.schema) &&
		s.style == other.style &&
		s.explode == other.explode &&
		s.allowReserved == other.allowReserved &&
		yml.EqualNodes(s.example, other.example)
}

func (s *ParameterSchema) validate() error {
	if s.schema.GetRootNode() == nil {
		return errors.New("schema is nil")
	}
	return nil
}

// marshalInto appends the schema and its serialization keys to the parameter node.
// Keys equal to the defaults for location are omitted.
func (s *ParameterSchema) marshalInto(ctx context.Context, node *yaml.Node, location Location) {
	if s.style != DefaultStyle(location) {
		yml.AppendMapNodeElement(node, "style", yml.CreateStringNode(s.style.String()))
	}
	if s.explode != DefaultExplode(s.style) {
		yml.AppendMapNodeElement(node, "explode", yml.CreateBoolNode(s.explode))
	}
	if s.allowReserved {
		yml.AppendMapNodeElement(node, "allowReserved", yml.CreateBoolNode(true))
	}

	yml.AppendMapNodeElement(node, "schema", s.schema.Marshal(ctx))

	if s.example != nil {
		yml.AppendMapNodeElement(node, "example", yml.CloneNode(s.example))
	}
}

// unmarshalParameterSchema decodes the schema related keys of a parameter node, resolving defaults for location.
func unmarshalParameterSchema(ctx context.Context, path jsonpointer.JSONPointer, node *yaml.Node, location Location) (ParameterSchema, error) {
	_, schemaNode, _ := yml.GetMapElementNodes(node, "schema")

	schema, err := oas3.Unmarshal(ctx, path.Append("schema"), schemaNode)
	if err != nil {
		return ParameterSchema{}, err
	}

	opts := []SchemaOption{}

	style, styleNode, err := getString(node, path, "parameter", "style")
	if err != nil {
		return ParameterSchema{}, err
	}
	if styleNode != nil {
		if !isKnownStyle(SerializationStyle(style)) {
			return ParameterSchema{}, validation.NewDecodeError(validation.RuleValidationAllowedValues, validation.NewValueValidationError("parameter.style must be one of [%s]", serializationStyleList()), styleNode, path.Append("style"))
		}
		opts = append(opts, WithStyle(SerializationStyle(style)))
	}

	explode, explodeNode, err := getBool(node, path, "parameter", "explode")
	if err != nil {
		return ParameterSchema{}, err
	}
	if explodeNode != nil {
		opts = append(opts, WithExplode(explode))
	}

	allowReserved, _, err := getBool(node, path, "parameter", "allowReserved")
	if err != nil {
		return ParameterSchema{}, err
	}
	if allowReserved {
		opts = append(opts, WithAllowReserved())
	}

	if _, exampleNode, ok := yml.GetMapElementNodes(node, "example"); ok {
		opts = append(opts, WithExample(exampleNode))
	}

	return NewParameterSchema(schema, location, opts...), nil
}
