package openapi

import (
	"fmt"
	"slices"
	"strings"
)

// SerializationStyle represents the serialization style of a parameter.
type SerializationStyle string

var _ fmt.Stringer = (*SerializationStyle)(nil)

func (s SerializationStyle) String() string {
	return string(s)
}

const (
	// SerializationStyleSimple represents simple serialization as defined by RFC 6570. Valid for path, header parameters.
	SerializationStyleSimple SerializationStyle = "simple"
	// SerializationStyleForm represents form serialization as defined by RFC 6570. Valid for query, cookie parameters.
	SerializationStyleForm SerializationStyle = "form"
	// SerializationStyleLabel represents label serialization as defined by RFC 6570. Valid for path parameters.
	SerializationStyleLabel SerializationStyle = "label"
	// SerializationStyleMatrix represents matrix serialization as defined by RFC 6570. Valid for path parameters.
	SerializationStyleMatrix SerializationStyle = "matrix"
	// SerializationStyleSpaceDelimited represents space-delimited serialization. Valid for query parameters.
	SerializationStyleSpaceDelimited SerializationStyle = "spaceDelimited"
	// SerializationStylePipeDelimited represents pipe-delimited serialization. Valid for query parameters.
	SerializationStylePipeDelimited SerializationStyle = "pipeDelimited"
	// SerializationStyleDeepObject represents deep object serialization for rendering nested objects using form parameters. Valid for query parameters.
	SerializationStyleDeepObject SerializationStyle = "deepObject"
)

var serializationStyles = []SerializationStyle{
	SerializationStyleSimple,
	SerializationStyleForm,
	SerializationStyleLabel,
	SerializationStyleMatrix,
	SerializationStyleSpaceDelimited,
	SerializationStylePipeDelimited,
	SerializationStyleDeepObject,
}

func isKnownStyle(style SerializationStyle) bool {
	return slices.Contains(serializationStyles, style)
}

func serializationStyleList() string {
	values := make([]string, len(serializationStyles))
	for i, v := range serializationStyles {
		values[i] = string(v)
	}
	return strings.Join(values, ", ")
}

// DefaultStyle returns the style used when a schema parameter does not specify one.
//
// Defaults:
//   - query: form
//   - header: simple
//   - path: simple
//   - cookie: form
func DefaultStyle(location Location) SerializationStyle {
	switch location.(type) {
	case QueryLocation, CookieLocation:
		return SerializationStyleForm
	case HeaderLocation, PathLocation:
		return SerializationStyleSimple
	default:
		return ""
	}
}

// DefaultExplode returns the explode value used when it is not specified: true for form, false otherwise.
func DefaultExplode(style SerializationStyle) bool {
	return style == SerializationStyleForm
}
