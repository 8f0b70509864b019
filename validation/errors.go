package validation

import (
	"fmt"

	"github.com/speakeasy-api/oasparams/jsonpointer"
	"gopkg.in/yaml.v3"
)

// Severity represents how serious a validation error is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityHint    Severity = "hint"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Error represents a validation error, the node it was found on and the path of that node in the document.
type Error struct {
	UnderlyingError error
	Node            *yaml.Node
	Severity        Severity
	Rule            string
	Path            jsonpointer.JSONPointer
}

var _ error = (*Error)(nil)

// NewValidationError creates a validation error for the provided node.
func NewValidationError(severity Severity, rule string, err error, node *yaml.Node) *Error {
	return &Error{
		UnderlyingError: err,
		Node:            node,
		Severity:        severity,
		Rule:            rule,
	}
}

// NewDecodeError creates an error severity validation error for node located at path.
func NewDecodeError(rule string, err error, node *yaml.Node, path jsonpointer.JSONPointer) *Error {
	return &Error{
		UnderlyingError: err,
		Node:            node,
		Severity:        SeverityError,
		Rule:            rule,
		Path:            path,
	}
}

// AtPath returns a copy of the error located at path.
func (e *Error) AtPath(path jsonpointer.JSONPointer) *Error {
	c := *e
	c.Path = path
	return &c
}

func (e Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%d:%d] %s", e.GetLineNumber(), e.GetColumnNumber(), e.UnderlyingError.Error())
	}
	return fmt.Sprintf("[%d:%d] %s: %s", e.GetLineNumber(), e.GetColumnNumber(), e.Path, e.UnderlyingError.Error())
}

func (e Error) Unwrap() error {
	return e.UnderlyingError
}

// GetLineNumber returns the line of the node, -1 if there is no node.
func (e Error) GetLineNumber() int {
	if e.Node == nil {
		return -1
	}
	return e.Node.Line
}

// GetColumnNumber returns the column of the node, -1 if there is no node.
func (e Error) GetColumnNumber() int {
	if e.Node == nil {
		return -1
	}
	return e.Node.Column
}

// TypeMismatchError is returned when a node holds a value of the wrong type.
type TypeMismatchError struct {
	Msg        string
	ParentName string
}

var _ error = (*TypeMismatchError)(nil)

func NewTypeMismatchError(parentName, msg string, args ...any) *TypeMismatchError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	return &TypeMismatchError{
		Msg:        msg,
		ParentName: parentName,
	}
}

func (e TypeMismatchError) Error() string {
	return e.Msg
}

// MissingFieldError is returned when a mandatory key is absent.
type MissingFieldError struct {
	Msg string
}

var _ error = (*MissingFieldError)(nil)

func NewMissingFieldError(msg string, args ...any) *MissingFieldError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	return &MissingFieldError{
		Msg: msg,
	}
}

func (e MissingFieldError) Error() string {
	return e.Msg
}

// MissingValueError is returned when a key is present but holds no value.
type MissingValueError struct {
	Msg string
}

var _ error = (*MissingValueError)(nil)

func NewMissingValueError(msg string, args ...any) *MissingValueError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	return &MissingValueError{
		Msg: msg,
	}
}

func (e MissingValueError) Error() string {
	return e.Msg
}

// ValueValidationError is returned when a value is present and well typed but not allowed.
type ValueValidationError struct {
	Msg string
}

var _ error = (*ValueValidationError)(nil)

func NewValueValidationError(msg string, args ...any) *ValueValidationError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	return &ValueValidationError{
		Msg: msg,
	}
}

func (e ValueValidationError) Error() string {
	return e.Msg
}

// InconsistencyError is returned when an object's fields are individually valid but contradict each other.
type InconsistencyError struct {
	Name string
	Msg  string
}

var _ error = (*InconsistencyError)(nil)

func NewInconsistencyError(name, msg string, args ...any) *InconsistencyError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	return &InconsistencyError{
		Name: name,
		Msg:  msg,
	}
}

func (e InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent parameter %q: %s", e.Name, e.Msg)
}
