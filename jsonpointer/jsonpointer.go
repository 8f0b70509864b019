// Package jsonpointer provides JSONPointer an implementation of RFC6901 https://datatracker.ietf.org/doc/html/rfc6901
package jsonpointer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/speakeasy-api/oasparams/errors"
)

// ErrValidation is returned when the jsonpointer is invalid.
const ErrValidation = errors.Error("validation error")

// JSONPointer represents a JSON Pointer value as defined by RFC6901.
// The empty pointer refers to the whole document.
type JSONPointer string

var _ fmt.Stringer = (*JSONPointer)(nil)

func (j JSONPointer) String() string {
	return string(j)
}

var tokenRegex = regexp.MustCompile(`^(?:[\x00-\x2E\x30-\x7D\x7F-\x{10FFFF}]|~[01])*$`)

// Validate will validate the JSONPointer is valid as per RFC6901. References require a non-empty pointer.
func (j JSONPointer) Validate() error {
	if len(j) == 0 {
		return ErrValidation.Wrap(errors.New("jsonpointer must not be empty"))
	}

	if j == "/" {
		return nil
	}

	if !strings.HasPrefix(string(j), "/") {
		return ErrValidation.Wrapf("jsonpointer must start with /: %s", string(j))
	}

	for _, part := range strings.Split(strings.TrimPrefix(string(j), "/"), "/") {
		if len(part) == 0 {
			return ErrValidation.Wrapf("jsonpointer part must not be empty: %s", string(j))
		}

		if !tokenRegex.MatchString(part) {
			return ErrValidation.Wrapf("jsonpointer part must be a valid token: %s", string(j))
		}
	}

	return nil
}

// Parts returns the unescaped reference tokens of the pointer.
func (j JSONPointer) Parts() []string {
	if j == "" {
		return nil
	}

	parts := strings.Split(strings.TrimPrefix(string(j), "/"), "/")
	for i, part := range parts {
		parts[i] = unescape(part)
	}

	return parts
}

// Append returns a new pointer with key appended as an escaped reference token.
func (j JSONPointer) Append(key string) JSONPointer {
	return j + "/" + JSONPointer(escape(key))
}

// AppendIndex returns a new pointer with the sequence index appended.
func (j JSONPointer) AppendIndex(index int) JSONPointer {
	return j + "/" + JSONPointer(strconv.Itoa(index))
}

// PartsToJSONPointer will convert the exploded parts of a JSONPointer to a JSONPointer.
func PartsToJSONPointer(parts []string) JSONPointer {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteByte('/')
		sb.WriteString(escape(part))
	}
	return JSONPointer(sb.String())
}

// EscapeString escapes a string for use as a reference token in a JSON pointer according to RFC6901.
func EscapeString(s string) string {
	return escape(s)
}

func escape(part string) string {
	return strings.ReplaceAll(strings.ReplaceAll(part, "~", "~0"), "/", "~1")
}

func unescape(part string) string {
	return strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
}
