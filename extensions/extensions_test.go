package extensions_test

import (
	"slices"
	"testing"

	"github.com/speakeasy-api/oasparams/extensions"
	"github.com/speakeasy-api/oasparams/sequencedmap"
	"github.com/speakeasy-api/oasparams/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnmarshal_Success(t *testing.T) {
	t.Parallel()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`
name: limit
x-speakeasy-name-override: pageSize
in: query
x-internal: true
`), &doc))

	e := extensions.Unmarshal(yml.UnwrapDocument(&doc))
	require.NotNil(t, e)
	assert.Equal(t, []string{"x-speakeasy-name-override", "x-internal"}, slices.Collect(e.Keys()))
	assert.Equal(t, "pageSize", e.GetOrZero("x-speakeasy-name-override").Value)
}

func TestUnmarshal_NoExtensions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, extensions.Unmarshal(yml.CreateMapNode(yml.CreateStringNode("name"), yml.CreateStringNode("id"))))
	assert.Nil(t, extensions.Unmarshal(yml.CreateStringNode("scalar")))
	assert.Nil(t, extensions.Unmarshal(nil))
}

func TestExtensions_MarshalInto_Success(t *testing.T) {
	t.Parallel()

	e := extensions.New(
		sequencedmap.NewElem("x-b", yml.CreateStringNode("b")),
		sequencedmap.NewElem("x-a", yml.CreateBoolNode(true)),
	)

	node := yml.CreateMapNode(yml.CreateStringNode("name"), yml.CreateStringNode("id"))
	e.MarshalInto(node)

	out, err := yaml.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t, "name: id\nx-b: b\nx-a: true\n", string(out))

	var nilExtensions *extensions.Extensions
	nilExtensions.MarshalInto(node)
	assert.Len(t, node.Content, 6)
}

func TestExtensions_IsEqual_Success(t *testing.T) {
	t.Parallel()

	a := extensions.New(sequencedmap.NewElem("x-a", yml.CreateStringNode("1")))
	b := extensions.New(sequencedmap.NewElem("x-a", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "1", Line: 7, Column: 3}))
	c := extensions.New(sequencedmap.NewElem("x-a", yml.CreateStringNode("2")))

	var nilExtensions *extensions.Extensions

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.True(t, nilExtensions.IsEqual(extensions.New()))
	assert.False(t, nilExtensions.IsEqual(a))
	assert.Equal(t, 0, nilExtensions.Len())
}

func TestExtensions_Validate_Error(t *testing.T) {
	t.Parallel()

	var nilExtensions *extensions.Extensions
	require.NoError(t, nilExtensions.Validate())
	require.NoError(t, extensions.New(sequencedmap.NewElem("x-a", yml.CreateStringNode("a"))).Validate())

	err := extensions.New(
		sequencedmap.NewElem("x-a", yml.CreateStringNode("a")),
		sequencedmap.NewElem("schema", yml.CreateStringNode("b")),
	).Validate()
	require.ErrorIs(t, err, extensions.ErrInvalidExtensionKey)
	assert.Contains(t, err.Error(), `"schema"`)
}

func TestExtensions_MarshalInto_SkipsNonExtensionKeys_Success(t *testing.T) {
	t.Parallel()

	e := extensions.New(
		sequencedmap.NewElem("name", yml.CreateStringNode("other")),
		sequencedmap.NewElem("x-a", yml.CreateStringNode("a")),
	)

	node := yml.CreateMapNode(yml.CreateStringNode("name"), yml.CreateStringNode("id"))
	e.MarshalInto(node)

	out, err := yaml.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t, "name: id\nx-a: a\n", string(out))
}

func TestExtensions_DoesNotShareNodes_Success(t *testing.T) {
	t.Parallel()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("x-limits:\n  max: 10\n"), &doc))
	input := yml.UnwrapDocument(&doc)

	e := extensions.Unmarshal(input)
	require.NotNil(t, e)

	input.Content[1].Content[1].Value = "20"
	assert.Equal(t, "10", e.GetOrZero("x-limits").Content[1].Value)

	out := yml.CreateMapNode()
	e.MarshalInto(out)
	out.Content[1].Content[1].Value = "30"
	assert.Equal(t, "10", e.GetOrZero("x-limits").Content[1].Value)
}
