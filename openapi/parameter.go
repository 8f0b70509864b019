package openapi

import (
	"github.com/speakeasy-api/oasparams/extensions"
	"github.com/speakeasy-api/oasparams/jsonschema/oas3"
	"github.com/speakeasy-api/oasparams/references"
)

// Parameter represents a single parameter to be included in a request.
//
// A Parameter is immutable once created. Its location and payload are sum types so that fields only
// legal for some locations, such as allowEmptyValue for query parameters, can't be set elsewhere,
// and the requiredness of path parameters is derived rather than stored.
type Parameter struct {
	name        string
	location    Location
	payload     Payload
	description *string
	deprecated  bool
	extensions  *extensions.Extensions
}

// ParameterOption configures the optional fields of a Parameter.
type ParameterOption func(p *Parameter)

// WithDescription sets the description of the parameter. May contain CommonMark syntax.
func WithDescription(description string) ParameterOption {
	return func(p *Parameter) {
		p.description = &description
	}
}

// WithDeprecated marks the parameter as deprecated.
func WithDeprecated() ParameterOption {
	return func(p *Parameter) {
		p.deprecated = true
	}
}

// WithExtensions sets the specification extensions of the parameter.
func WithExtensions(e *extensions.Extensions) ParameterOption {
	return func(p *Parameter) {
		p.extensions = e
	}
}

// NewParameter creates a parameter from an already built payload.
func NewParameter(name string, location Location, payload Payload, opts ...ParameterOption) *Parameter {
	p := &Parameter{
		name:     name,
		location: location,
		payload:  payload,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewSchemaParameter creates a parameter typed by schema. An empty style resolves to the default for location.
func NewSchemaParameter(name string, location Location, schema *oas3.Schema, style SerializationStyle, opts ...ParameterOption) *Parameter {
	return NewParameter(name, location, NewSchemaPayload(NewParameterSchema(schema, location, WithStyle(style))), opts...)
}

// NewSchemaReferenceParameter creates a parameter typed by a reference to a schema, using the default style for location.
func NewSchemaReferenceParameter(name string, location Location, ref references.Reference, opts ...ParameterOption) *Parameter {
	return NewParameter(name, location, NewSchemaPayload(NewParameterSchema(oas3.NewReference(ref), location)), opts...)
}

// NewContentParameter creates a parameter typed by a content map.
func NewContentParameter(name string, location Location, content *Content, opts ...ParameterOption) *Parameter {
	return NewParameter(name, location, NewContentPayload(content), opts...)
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (p *Parameter) GetName() string {
	if p == nil {
		return ""
	}
	return p.name
}

// GetLocation returns the location of the parameter. Returns nil if not set.
func (p *Parameter) GetLocation() Location {
	if p == nil {
		return nil
	}
	return p.location
}

// GetIn returns the wire value of the location. Returns empty ParameterIn if not set.
func (p *Parameter) GetIn() ParameterIn {
	if p == nil || p.location == nil {
		return ""
	}
	return p.location.In()
}

// GetRequired returns whether the parameter is mandatory. Always true for path parameters.
func (p *Parameter) GetRequired() bool {
	if p == nil || p.location == nil {
		return false
	}
	return p.location.IsRequired()
}

// GetAllowEmptyValue returns the value of allowEmptyValue. Always false outside of query parameters.
func (p *Parameter) GetAllowEmptyValue() bool {
	if p == nil {
		return false
	}
	q, ok := p.location.(QueryLocation)
	return ok && q.AllowEmptyValue
}

// GetPayload returns the schema or content payload of the parameter.
func (p *Parameter) GetPayload() Payload {
	if p == nil {
		return Payload{}
	}
	return p.payload
}

// GetSchema returns the schema payload. Returns nil if the parameter is typed by content.
func (p *Parameter) GetSchema() *ParameterSchema {
	if p == nil {
		return nil
	}
	return p.payload.GetLeft()
}

// GetContent returns the content payload. Returns nil if the parameter is typed by a schema.
func (p *Parameter) GetContent() *Content {
	if p == nil {
		return nil
	}
	return p.payload.GetRight()
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (p *Parameter) GetDescription() string {
	if p == nil || p.description == nil {
		return ""
	}
	return *p.description
}

// HasDescription reports whether a description was set, including an empty one.
func (p *Parameter) HasDescription() bool {
	return p != nil && p.description != nil
}

// GetDeprecated returns the value of the Deprecated field. False by default if not set.
func (p *Parameter) GetDeprecated() bool {
	if p == nil {
		return false
	}
	return p.deprecated
}

// GetExtensions returns the value of the Extensions field. Returns an empty extensions map if not set.
func (p *Parameter) GetExtensions() *extensions.Extensions {
	if p == nil || p.extensions == nil {
		return extensions.New()
	}
	return p.extensions
}

// IsEqual compares two parameters structurally, ignoring where they were decoded from.
func (p *Parameter) IsEqual(other *Parameter) bool {
	if p == nil || other == nil {
		return p == other
	}

	if p.HasDescription() != other.HasDescription() {
		return false
	}

	return p.name == other.name &&
		p.location == other.location &&
		p.payload.IsEqual(other.payload) &&
		p.GetDescription() == other.GetDescription() &&
		p.deprecated == other.deprecated &&
		p.extensions.IsEqual(other.extensions)
}
