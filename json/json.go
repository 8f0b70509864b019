// Package json provides utilities for working with JSON.
package json

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// YAMLToJSON will convert the provided YAML node to JSON in a stable way not reordering keys.
// An indentation of 0 produces compact output.
func YAMLToJSON(node *yaml.Node, indentation int, w io.Writer) error {
	var compact bytes.Buffer
	if err := writeNode(&compact, node); err != nil {
		return err
	}

	out := &compact
	if indentation > 0 {
		var indented bytes.Buffer
		if err := gojson.Indent(&indented, compact.Bytes(), "", strings.Repeat(" ", indentation)); err != nil {
			return fmt.Errorf("failed to indent json: %w", err)
		}
		out = &indented
	}

	out.WriteByte('\n')

	_, err := out.WriteTo(w)
	return err
}

func writeNode(buf *bytes.Buffer, node *yaml.Node) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNode(buf, node.Content[0])
	case yaml.AliasNode:
		return writeNode(buf, node.Alias)
	case yaml.MappingNode:
		return writeMappingNode(buf, node)
	case yaml.SequenceNode:
		return writeSequenceNode(buf, node)
	case yaml.ScalarNode:
		return writeScalarNode(buf, node)
	default:
		return fmt.Errorf("unknown node kind: %s", yml.NodeKindToString(node.Kind))
	}
}

func writeMappingNode(buf *bytes.Buffer, node *yaml.Node) error {
	buf.WriteByte('{')

	for i := 0; i+1 < len(node.Content); i += 2 {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyNode := yml.ResolveAlias(node.Content[i])
		if keyNode == nil || keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be scalars", node.Content[i].Line)
		}

		key, err := gojson.Marshal(keyNode.Value)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')

		if err := writeNode(buf, node.Content[i+1]); err != nil {
			return err
		}
	}

	buf.WriteByte('}')
	return nil
}

func writeSequenceNode(buf *bytes.Buffer, node *yaml.Node) error {
	buf.WriteByte('[')

	for i, n := range node.Content {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeNode(buf, n); err != nil {
			return err
		}
	}

	buf.WriteByte(']')
	return nil
}

func writeScalarNode(buf *bytes.Buffer, node *yaml.Node) error {
	var v any

	switch node.ShortTag() {
	case "!!str", "!!binary", "!!timestamp":
		v = node.Value
	default:
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
	}

	data, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Errorf("line %d: value %q is not representable in json: %w", node.Line, node.Value, err)
	}

	buf.Write(data)
	return nil
}
