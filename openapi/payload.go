package openapi

import (
	"github.com/speakeasy-api/oasparams/values"
)

// Payload describes how a parameter value is typed: by a schema with a serialization style (left),
// or by a content map (right). Parameters only ever hold exactly one of the two.
type Payload = values.EitherValue[ParameterSchema, Content]

// NewSchemaPayload creates a payload typed by schema.
func NewSchemaPayload(schema ParameterSchema) Payload {
	return values.NewLeft[ParameterSchema, Content](schema)
}

// NewContentPayload creates a payload typed by a content map. A nil content yields an empty content map.
func NewContentPayload(content *Content) Payload {
	if content == nil {
		content = NewContent()
	}
	return values.NewRight[ParameterSchema](*content)
}
