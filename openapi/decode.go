package openapi

import (
	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// requireMapping resolves node and checks it is a mapping.
func requireMapping(node *yaml.Node, path jsonpointer.JSONPointer, objectName string) (*yaml.Node, error) {
	resolved := yml.ResolveAlias(yml.UnwrapDocument(node))
	if resolved == nil {
		return nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError(objectName, "%s expected object, got nothing", objectName), node, path)
	}

	if resolved.Kind != yaml.MappingNode {
		return nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError(objectName, "%s expected object, got %s", objectName, yml.NodeKindToString(resolved.Kind)), resolved, path)
	}

	return resolved, nil
}

// getString reads an optional scalar key. Any non-null scalar is accepted as its literal text.
func getString(node *yaml.Node, path jsonpointer.JSONPointer, objectName, key string) (string, *yaml.Node, error) {
	_, valueNode, ok := yml.GetMapElementNodes(node, key)
	if !ok {
		return "", nil, nil
	}

	if valueNode.Kind != yaml.ScalarNode || valueNode.ShortTag() == "!!null" {
		return "", nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError(objectName, "%s.%s expected string, got %s", objectName, key, describeNode(valueNode)), valueNode, path.Append(key))
	}

	return valueNode.Value, valueNode, nil
}

// getBool reads an optional boolean key.
func getBool(node *yaml.Node, path jsonpointer.JSONPointer, objectName, key string) (bool, *yaml.Node, error) {
	_, valueNode, ok := yml.GetMapElementNodes(node, key)
	if !ok {
		return false, nil, nil
	}

	if valueNode.Kind != yaml.ScalarNode || valueNode.ShortTag() != "!!bool" {
		return false, nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError(objectName, "%s.%s expected bool, got %s", objectName, key, describeNode(valueNode)), valueNode, path.Append(key))
	}

	var v bool
	if err := valueNode.Decode(&v); err != nil {
		return false, nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError(objectName, "%s.%s expected bool: %s", objectName, key, err.Error()), valueNode, path.Append(key))
	}

	return v, valueNode, nil
}

// hasKey reports whether key is present in node without decoding its value.
func hasKey(node *yaml.Node, key string) bool {
	_, _, ok := yml.GetMapElementNodes(node, key)
	return ok
}

func describeNode(node *yaml.Node) string {
	if node.Kind != yaml.ScalarNode {
		return yml.NodeKindToString(node.Kind)
	}

	switch node.ShortTag() {
	case "!!str":
		return "string"
	case "!!bool":
		return "bool"
	case "!!int":
		return "integer"
	case "!!float":
		return "number"
	case "!!null":
		return "null"
	default:
		return "scalar"
	}
}
