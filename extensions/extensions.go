// Package extensions models OpenAPI specification extensions, the `x-` prefixed keys allowed on most objects.
package extensions

import (
	"strings"

	"github.com/speakeasy-api/oasparams/errors"
	"github.com/speakeasy-api/oasparams/sequencedmap"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// Prefix is the required prefix of every extension key.
const Prefix = "x-"

// ErrInvalidExtensionKey is returned for an extension whose key does not start with Prefix.
const ErrInvalidExtensionKey = errors.Error("extension key must start with " + Prefix)

// Extension represents a single extension to an object, in its raw form.
type Extension = *yaml.Node

// Extensions represents an ordered set of extensions to an object.
type Extensions struct {
	*sequencedmap.Map[string, Extension]
}

// New will create a new extensions set.
func New(elements ...*sequencedmap.Element[string, Extension]) *Extensions {
	return &Extensions{
		Map: sequencedmap.New(elements...),
	}
}

// IsExtensionKey reports whether key is an extension key.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, Prefix)
}

// Unmarshal collects the extension keys of a mapping node in document order.
// Returns nil if the node has no extensions.
func Unmarshal(node *yaml.Node) *Extensions {
	node = yml.ResolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	var e *Extensions
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := yml.ResolveAlias(node.Content[i])
		if keyNode == nil || !IsExtensionKey(keyNode.Value) {
			continue
		}

		if e == nil {
			e = New()
		}
		e.Set(keyNode.Value, yml.CloneNode(node.Content[i+1]))
	}

	return e
}

// Validate reports the first key that is not an extension key. nil safe.
func (e *Extensions) Validate() error {
	if e == nil {
		return nil
	}

	for key := range e.Keys() {
		if !IsExtensionKey(key) {
			return ErrInvalidExtensionKey.Wrapf("got %q", key)
		}
	}

	return nil
}

// MarshalInto appends copies of the extensions to mapNode in order. Keys without the `x-` prefix are skipped. nil safe.
func (e *Extensions) MarshalInto(mapNode *yaml.Node) {
	if e == nil {
		return
	}

	for key, value := range e.All() {
		if !IsExtensionKey(key) {
			continue
		}
		yml.AppendMapNodeElement(mapNode, key, yml.CloneNode(value))
	}
}

// Len returns the number of extensions. nil safe.
func (e *Extensions) Len() int {
	if e == nil {
		return 0
	}
	return e.Map.Len()
}

// IsEqual compares two extension sets structurally. nil and empty sets are equal.
func (e *Extensions) IsEqual(other *Extensions) bool {
	var a, b *sequencedmap.Map[string, Extension]
	if e != nil {
		a = e.Map
	}
	if other != nil {
		b = other.Map
	}

	return a.IsEqualFunc(b, yml.EqualNodes)
}
