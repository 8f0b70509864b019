// Package yml provides helpers for building, reading and comparing yaml.v3 nodes.
package yml

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

func CreateStringNode(value string) *yaml.Node {
	return &yaml.Node{
		Value: value,
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
	}
}

func CreateBoolNode(value bool) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatBool(value),
		Kind:  yaml.ScalarNode,
		Tag:   "!!bool",
	}
}

func CreateMapNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: content,
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
	}
}

func CreateSliceNode(elements ...*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: elements,
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
	}
}

// AppendMapNodeElement appends a key/value pair to mapNode. Duplicate keys are not checked.
func AppendMapNodeElement(mapNode *yaml.Node, key string, valueNode *yaml.Node) {
	mapNode.Content = append(mapNode.Content, CreateStringNode(key), valueNode)
}

// GetMapElementNodes returns the key and value nodes for key in mapNode.
func GetMapElementNodes(mapNode *yaml.Node, key string) (*yaml.Node, *yaml.Node, bool) {
	resolvedMapNode := ResolveAlias(mapNode)
	if resolvedMapNode == nil || resolvedMapNode.Kind != yaml.MappingNode {
		return nil, nil, false
	}

	for i := 0; i+1 < len(resolvedMapNode.Content); i += 2 {
		keyNode := resolvedMapNode.Content[i]
		if keyNode.Value == key {
			return keyNode, ResolveAlias(resolvedMapNode.Content[i+1]), true
		}
		if resolvedKeyNode := ResolveAlias(keyNode); resolvedKeyNode != nil && resolvedKeyNode.Value == key {
			return keyNode, ResolveAlias(resolvedMapNode.Content[i+1]), true
		}
	}

	return nil, nil, false
}

// ResolveAlias follows alias nodes to their target.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.AliasNode:
		return ResolveAlias(node.Alias)
	default:
		return node
	}
}

// UnwrapDocument returns the root content node of a document node, or node itself otherwise.
func UnwrapDocument(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return node.Content[0]
	}
	return node
}

// NodeKindToString returns a human-readable name for a yaml.Kind, used in error messages.
func NodeKindToString(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// EqualNodes compares two nodes structurally, ignoring source positions, styles and comments.
// Mapping nodes are compared key by key in order.
func EqualNodes(a, b *yaml.Node) bool {
	a = ResolveAlias(UnwrapDocument(a))
	b = ResolveAlias(UnwrapDocument(b))

	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind || len(a.Content) != len(b.Content) {
		return false
	}

	if a.Kind == yaml.ScalarNode {
		return a.Value == b.Value && a.ShortTag() == b.ShortTag()
	}

	for i := range a.Content {
		if !EqualNodes(a.Content[i], b.Content[i]) {
			return false
		}
	}

	return true
}

// CloneNode returns a deep copy of node. Aliases are replaced by copies of their targets and anchors are
// dropped, so the copy shares nothing with the source tree.
func CloneNode(node *yaml.Node) *yaml.Node {
	node = ResolveAlias(node)
	if node == nil {
		return nil
	}

	newNode := &yaml.Node{
		Kind:        node.Kind,
		Style:       node.Style,
		Tag:         node.Tag,
		Value:       node.Value,
		HeadComment: node.HeadComment,
		LineComment: node.LineComment,
		FootComment: node.FootComment,
		Line:        node.Line,
		Column:      node.Column,
	}
	if node.Content != nil {
		newNode.Content = make([]*yaml.Node, len(node.Content))
		for i, child := range node.Content {
			newNode.Content[i] = CloneNode(child)
		}
	}
	return newNode
}
