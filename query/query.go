// Package query selects nodes from a YAML or JSON document using JSONPath expressions.
package query

import (
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"github.com/speakeasy-api/oasparams/errors"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPath is returned when an expression can't be parsed.
const ErrInvalidPath = errors.Error("invalid jsonpath")

// DefaultParameterPaths select every parameter of every path item and operation in an OpenAPI document.
var DefaultParameterPaths = []string{
	"$.paths.*.parameters[*]",
	"$.paths.*.*.parameters[*]",
}

// Queryable is an interface for querying YAML nodes using JSONPath expressions.
type Queryable interface {
	Query(root *yaml.Node) []*yaml.Node
}

type yamlPathQueryable struct {
	path *yamlpath.Path
}

func (y yamlPathQueryable) Query(root *yaml.Node) []*yaml.Node {
	if y.path == nil {
		return []*yaml.Node{}
	}
	// errors aren't actually possible from yamlpath.
	result, _ := y.path.Find(root)
	return result
}

type rfcJSONPathQueryable struct {
	path *jsonpath.JSONPath
}

func (r rfcJSONPathQueryable) Query(root *yaml.Node) []*yaml.Node {
	return r.path.Query(root)
}

// NewPath creates a queryable from expr.
// RFC 9535 JSONPath is used unless legacy is set, in which case the yamlpath dialect is used instead.
func NewPath(expr string, legacy bool) (Queryable, error) {
	if legacy {
		path, err := yamlpath.NewPath(expr)
		if err != nil {
			return nil, ErrInvalidPath.Wrap(err)
		}
		return yamlPathQueryable{path: path}, nil
	}

	path, err := jsonpath.NewPath(expr, config.WithPropertyNameExtension())
	if err != nil {
		return nil, ErrInvalidPath.Wrap(err)
	}
	return rfcJSONPathQueryable{path: path}, nil
}

// Select queries the document root with each expression in turn, unwrapping a document node first.
// Nodes matched by more than one expression are returned once, in the order first matched.
func Select(root *yaml.Node, exprs []string, legacy bool) ([]*yaml.Node, error) {
	if root != nil && root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	seen := map[*yaml.Node]struct{}{}
	nodes := []*yaml.Node{}

	for _, expr := range exprs {
		q, err := NewPath(expr, legacy)
		if err != nil {
			return nil, err
		}

		for _, node := range q.Query(root) {
			if _, ok := seen[node]; ok {
				continue
			}
			seen[node] = struct{}{}
			nodes = append(nodes, node)
		}
	}

	return nodes, nil
}
