package openapi

import (
	"fmt"
	"strings"
)

// ParameterIn represents the location of a parameter that is passed in the request.
type ParameterIn string

var _ fmt.Stringer = (*ParameterIn)(nil)

func (p ParameterIn) String() string {
	return string(p)
}

const (
	// ParameterInQuery represents the location of a parameter that is passed in the query string.
	ParameterInQuery ParameterIn = "query"
	// ParameterInHeader represents the location of a parameter that is passed in the header.
	ParameterInHeader ParameterIn = "header"
	// ParameterInPath represents the location of a parameter that is passed in the path.
	ParameterInPath ParameterIn = "path"
	// ParameterInCookie represents the location of a parameter that is passed in the cookie.
	ParameterInCookie ParameterIn = "cookie"
)

var parameterInValues = []ParameterIn{ParameterInQuery, ParameterInHeader, ParameterInPath, ParameterInCookie}

func parameterInList() string {
	values := make([]string, len(parameterInValues))
	for i, v := range parameterInValues {
		values[i] = string(v)
	}
	return strings.Join(values, ", ")
}

// Location describes where a parameter travels and the flags that are legal for that location.
// It is implemented by QueryLocation, HeaderLocation, PathLocation and CookieLocation only.
type Location interface {
	// In returns the wire value of the `in` field.
	In() ParameterIn
	// IsRequired reports whether the parameter is mandatory. Always true for path parameters.
	IsRequired() bool

	isLocation()
}

// QueryLocation is a parameter appended to the URL query string.
type QueryLocation struct {
	Required bool
	// AllowEmptyValue allows sending a parameter with an empty value.
	AllowEmptyValue bool
}

// HeaderLocation is a parameter sent as a request header.
type HeaderLocation struct {
	Required bool
}

// PathLocation is a parameter substituted into a templated path segment. Path parameters are always required.
type PathLocation struct{}

// CookieLocation is a parameter sent as a cookie value.
type CookieLocation struct {
	Required bool
}

var (
	_ Location = QueryLocation{}
	_ Location = HeaderLocation{}
	_ Location = PathLocation{}
	_ Location = CookieLocation{}
)

func (QueryLocation) In() ParameterIn  { return ParameterInQuery }
func (HeaderLocation) In() ParameterIn { return ParameterInHeader }
func (PathLocation) In() ParameterIn   { return ParameterInPath }
func (CookieLocation) In() ParameterIn { return ParameterInCookie }

func (l QueryLocation) IsRequired() bool  { return l.Required }
func (l HeaderLocation) IsRequired() bool { return l.Required }
func (PathLocation) IsRequired() bool     { return true }
func (l CookieLocation) IsRequired() bool { return l.Required }

func (QueryLocation) isLocation()  {}
func (HeaderLocation) isLocation() {}
func (PathLocation) isLocation()   {}
func (CookieLocation) isLocation() {}
