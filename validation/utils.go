// Package validation provides the structured errors reported when decoding OpenAPI objects.
package validation

import (
	"errors"
	"slices"
	"strings"
)

// SortValidationErrors sorts the provided errors by line and column number lowest to highest.
// Errors that are not validation errors keep their relative order and are moved to the end.
func SortValidationErrors(allErrors []error) {
	slices.SortStableFunc(allErrors, func(a, b error) int {
		var aErr, bErr *Error
		aOk := errors.As(a, &aErr)
		bOk := errors.As(b, &bErr)

		switch {
		case aOk && bOk:
			return compareValidationErrors(aErr, bErr)
		case aOk:
			return -1
		case bOk:
			return 1
		default:
			return 0
		}
	})
}

func compareValidationErrors(a, b *Error) int {
	if a.GetLineNumber() != b.GetLineNumber() {
		return a.GetLineNumber() - b.GetLineNumber()
	}
	if a.GetColumnNumber() != b.GetColumnNumber() {
		return a.GetColumnNumber() - b.GetColumnNumber()
	}
	if a.Severity != b.Severity {
		return a.Severity.rank() - b.Severity.rank()
	}
	if c := strings.Compare(a.Rule, b.Rule); c != 0 {
		return c
	}
	return strings.Compare(string(a.Path), string(b.Path))
}
