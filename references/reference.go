// Package references models the `$ref` values used to point at reusable components.
package references

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/speakeasy-api/oasparams/errors"
	"github.com/speakeasy-api/oasparams/jsonpointer"
)

// ErrInvalidReference is returned when a reference fails validation.
const ErrInvalidReference = errors.Error("invalid reference")

// Reference is a URI with an optional JSON pointer fragment, for example `#/components/parameters/limit`.
type Reference string

var _ fmt.Stringer = (*Reference)(nil)

// GetURI returns the document part of the reference. Empty for local references.
func (r Reference) GetURI() string {
	uri, _, _ := strings.Cut(string(r), "#")
	return strings.TrimSpace(uri)
}

// HasJSONPointer reports whether the reference carries a fragment.
func (r Reference) HasJSONPointer() bool {
	return strings.Contains(string(r), "#")
}

// GetJSONPointer returns the unescaped fragment of the reference.
func (r Reference) GetJSONPointer() jsonpointer.JSONPointer {
	_, pointer, found := strings.Cut(string(r), "#")
	if !found {
		return ""
	}

	pointer = strings.TrimSpace(pointer)

	if decoded, err := url.PathUnescape(pointer); err == nil {
		pointer = decoded
	}

	return jsonpointer.JSONPointer(pointer)
}

// IsLocal reports whether the reference points into the current document.
func (r Reference) IsLocal() bool {
	return r.GetURI() == "" && r.HasJSONPointer()
}

// Validate checks the reference is non-empty, has a parseable URI and a valid JSON pointer fragment.
func (r Reference) Validate() error {
	if strings.TrimSpace(string(r)) == "" {
		return ErrInvalidReference.Wrap(errors.New("reference must not be empty"))
	}

	if uri := r.GetURI(); uri != "" {
		if _, err := url.Parse(uri); err != nil {
			return ErrInvalidReference.Wrap(err)
		}
	}

	if r.HasJSONPointer() {
		if err := r.GetJSONPointer().Validate(); err != nil {
			return ErrInvalidReference.Wrap(err)
		}
	}

	return nil
}

func (r Reference) String() string {
	return string(r)
}
