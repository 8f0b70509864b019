package openapi_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/speakeasy-api/oasparams/jsonschema/oas3"
	"github.com/speakeasy-api/oasparams/openapi"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalParameters_Success(t *testing.T) {
	t.Parallel()

	params, validationErrs, err := openapi.UnmarshalParameters(context.Background(), "/paths/~1users~1{id}/get/parameters", parseNode(t, `
- name: id
  in: path
  required: true
  schema:
    type: string
- $ref: '#/components/parameters/limit'
- name: id
  in: query
  schema:
    type: string
- name: X-Trace
  in: header
  content:
    text/plain:
      schema:
        type: string
`))
	require.NoError(t, err)
	assert.Empty(t, validationErrs)
	require.Len(t, params, 4)

	assert.Equal(t, "id", params[0].GetRight().GetName())
	assert.True(t, params[1].IsLeft())
	assert.Equal(t, openapi.ParameterInQuery, params[2].GetRight().GetIn())
	assert.NotNil(t, params[3].GetRight().GetContent())

	assert.Equal(t, openapi.ParameterInPath, params.Find("id", openapi.ParameterInPath).GetIn())
	assert.Equal(t, openapi.ParameterInQuery, params.Find("id", openapi.ParameterInQuery).GetIn())
	assert.Nil(t, params.Find("id", openapi.ParameterInCookie))
	assert.Nil(t, params.Find("limit", openapi.ParameterInQuery))
}

func TestUnmarshalParameters_CollectsErrors(t *testing.T) {
	t.Parallel()

	params, validationErrs, err := openapi.UnmarshalParameters(context.Background(), "/parameters", parseNode(t, `
- name: id
  in: path
  schema:
    type: string
- name: limit
  in: query
  schema:
    type: integer
- in: query
  schema:
    type: integer
- name: limit
  in: query
  schema:
    type: string
- name: filter
  in: query
`))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "limit", params[0].GetRight().GetName())

	require.Len(t, validationErrs, 4)

	expected := []struct {
		rule string
		path string
		line int
	}{
		{rule: validation.RuleValidationRequiredField, path: "/parameters/0/required", line: 3},
		{rule: validation.RuleValidationRequiredField, path: "/parameters/2", line: 10},
		{rule: validation.RuleValidationOperationParameters, path: "/parameters/3", line: 13},
		{rule: validation.RuleValidationMutuallyExclusiveFields, path: "/parameters/4", line: 17},
	}

	for i, e := range expected {
		var validationErr *validation.Error
		require.ErrorAs(t, validationErrs[i], &validationErr, "error %d", i)
		assert.Equal(t, e.rule, validationErr.Rule, "error %d", i)
		assert.Equal(t, e.path, validationErr.Path.String(), "error %d", i)
		assert.Equal(t, e.line, validationErr.GetLineNumber(), "error %d", i)
	}
}

func TestUnmarshalParameters_Error(t *testing.T) {
	t.Parallel()

	_, _, err := openapi.UnmarshalParameters(context.Background(), "/parameters", parseNode(t, "name: limit\n"))
	require.Error(t, err)

	var typeErr *validation.TypeMismatchError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "parameters expected array, got object", typeErr.Error())
}

func TestUnmarshalParameters_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := openapi.UnmarshalParameters(ctx, "/parameters", parseNode(t, "- name: limit\n  in: query\n  schema: {}\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestUnmarshalParameters_Large_Success(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := range 200 {
		fmt.Fprintf(&sb, "- name: p%d\n  in: query\n  schema:\n    type: string\n", i)
	}

	params, validationErrs, err := openapi.UnmarshalParameters(context.Background(), "/parameters", parseNode(t, sb.String()))
	require.NoError(t, err)
	assert.Empty(t, validationErrs)
	require.Len(t, params, 200)

	for i, rp := range params {
		assert.Equal(t, fmt.Sprintf("p%d", i), rp.GetRight().GetName())
	}
}

func TestMarshalParameters_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	params := openapi.Parameters{
		openapi.NewInlineParameter(openapi.NewSchemaParameter("id", openapi.PathLocation{}, oas3.NewTypedSchema("string"), "")),
		openapi.NewParameterReference("#/components/parameters/limit"),
	}

	node, err := openapi.MarshalParameters(ctx, params)
	require.NoError(t, err)
	require.Len(t, node.Content, 2)
	assert.Equal(t, []string{"name", "in", "required", "schema"}, mapKeys(node.Content[0]))
	assert.Equal(t, []string{"$ref"}, mapKeys(node.Content[1]))

	decoded, validationErrs, err := openapi.UnmarshalParameters(ctx, "/parameters", node)
	require.NoError(t, err)
	assert.Empty(t, validationErrs)
	require.Len(t, decoded, 2)
	for i := range params {
		assert.True(t, params[i].IsEqual(decoded[i]), "parameter %d", i)
	}
}

func TestMarshalParameters_Error(t *testing.T) {
	t.Parallel()

	_, err := openapi.MarshalParameters(context.Background(), openapi.Parameters{
		openapi.NewInlineParameter(openapi.NewSchemaParameter("id", openapi.PathLocation{}, oas3.NewTypedSchema("string"), "")),
		{},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, openapi.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "parameters[1]")
}
