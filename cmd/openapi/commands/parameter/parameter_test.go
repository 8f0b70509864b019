package parameter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openAPIDocument = `openapi: 3.1.0
info:
  title: Users
  version: 1.0.0
paths:
  /users/{id}:
    parameters:
      - name: id
        in: path
        required: true
        style: simple
        schema:
          type: string
    get:
      parameters:
        - name: expand
          in: query
          required: false
          explode: true
          schema:
            type: boolean
          x-internal: true
        - $ref: '#/components/parameters/limit'
`

const invalidOpenAPIDocument = `openapi: 3.1.0
paths:
  /users/{id}:
    parameters:
      - name: id
        in: path
        schema:
          type: string
    get:
      parameters:
        - name: trace
          in: header
          allowEmptyValue: true
          schema:
            type: string
`

func newProcessor(input string, paths ...string) (*Processor, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &Processor{
		InputFile: "-",
		Paths:     paths,
		Stdin:     strings.NewReader(input),
		Stdout:    stdout,
		Stderr:    stderr,
	}, stdout, stderr
}

func TestValidateParameters_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		paths    []string
		expected string
	}{
		{
			name:     "openapi document",
			input:    openAPIDocument,
			expected: "✅ Parameters are valid - 3 parameters checked\n",
		},
		{
			name:     "selected by path",
			input:    openAPIDocument,
			paths:    []string{"$.paths['/users/{id}'].get.parameters[0]"},
			expected: "✅ Parameters are valid - 1 parameters checked\n",
		},
		{
			name:     "single parameter",
			input:    "name: limit\nin: query\nschema:\n  type: integer\n",
			expected: "✅ Parameters are valid - 1 parameters checked\n",
		},
		{
			name:     "parameter list",
			input:    `[{"name":"limit","in":"query","schema":{"type":"integer"}},{"$ref":"#/components/parameters/offset"}]`,
			expected: "✅ Parameters are valid - 2 parameters checked\n",
		},
		{
			name:     "invalid parameters outside of the selection are ignored",
			input:    invalidOpenAPIDocument,
			paths:    []string{"$.components.parameters[*]"},
			expected: "✅ Parameters are valid - 0 parameters checked\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, stdout, stderr := newProcessor(tt.input, tt.paths...)
			require.NoError(t, validateParameters(context.Background(), p))
			assert.Equal(t, tt.expected, stdout.String())
			assert.Contains(t, stderr.String(), "Processing parameters from: stdin")
		})
	}
}

func TestValidateParameters_Error(t *testing.T) {
	t.Parallel()

	p, stdout, _ := newProcessor(invalidOpenAPIDocument)
	err := validateParameters(context.Background(), p)
	require.ErrorIs(t, err, ErrValidationFailed)

	assert.Equal(t, "❌ Parameters are invalid - 2 errors:\n\n"+
		"1. [6:13] /paths/~1users~1{id}/parameters/0/required: inconsistent parameter \"id\": positional `in=path` parameters must be explicitly marked `required: true`\n"+
		"2. [13:28] /paths/~1users~1{id}/get/parameters/0/allowEmptyValue: inconsistent parameter \"trace\": `allowEmptyValue` is only valid for `in=query`, got `in=header`\n",
		stdout.String())
}

func TestValidateParameters_DuplicateInList_Error(t *testing.T) {
	t.Parallel()

	p, stdout, _ := newProcessor("- name: limit\n  in: query\n  schema: {}\n- name: limit\n  in: query\n  schema: {}\n")
	err := validateParameters(context.Background(), p)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, stdout.String(), "1 errors")
	assert.Contains(t, stdout.String(), "/1: parameter \"limit\" in \"query\" is a duplicate of parameter 0")
}

func TestValidateParameters_InvalidPath_Error(t *testing.T) {
	t.Parallel()

	p, _, _ := newProcessor(openAPIDocument, "$.paths[")
	err := validateParameters(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jsonpath")
}

func TestNormalizeParameters_Success(t *testing.T) {
	t.Parallel()

	p, stdout, stderr := newProcessor(openAPIDocument)
	require.NoError(t, normalizeParameters(context.Background(), p, "", ""))

	assert.Equal(t, `openapi: 3.1.0
info:
  title: Users
  version: 1.0.0
paths:
  /users/{id}:
    parameters:
      - name: id
        in: path
        required: true
        schema:
          type: string
    get:
      parameters:
        - name: expand
          in: query
          schema:
            type: boolean
          x-internal: true
        - $ref: '#/components/parameters/limit'
`, stdout.String())
	assert.Contains(t, stderr.String(), "✅ Normalized 3 parameters")
}

func TestNormalizeParameters_JSON_Success(t *testing.T) {
	t.Parallel()

	p, stdout, _ := newProcessor("name: limit\nin: query\nstyle: form\nrequired: false\nschema:\n  type: integer\n")
	require.NoError(t, normalizeParameters(context.Background(), p, "json", ""))

	assert.Equal(t, `{
  "name": "limit",
  "in": "query",
  "schema": {
    "type": "integer"
  }
}
`, stdout.String())
}

func TestNormalizeParameters_OutputFile_Success(t *testing.T) {
	t.Parallel()

	outputFile := filepath.Join(t.TempDir(), "out.yaml")

	p, stdout, stderr := newProcessor(`[{"name": "id", "in": "path", "required": true, "explode": false, "schema": {"type": "string"}}]`)
	require.NoError(t, normalizeParameters(context.Background(), p, "yaml", outputFile))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Document written to: "+outputFile)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, `- name: id
  in: path
  required: true
  schema:
    type: string
`, string(data))
}

func TestNormalizeParameters_Error(t *testing.T) {
	t.Parallel()

	p, stdout, stderr := newProcessor(invalidOpenAPIDocument)
	err := normalizeParameters(context.Background(), p, "", "")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "2 errors")

	p, _, _ = newProcessor(openAPIDocument)
	err = normalizeParameters(context.Background(), p, "toml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: toml")
}

func TestFormatValidationErrors_Success(t *testing.T) {
	t.Parallel()

	validationErrors := []error{}
	for range 10 {
		validationErrors = append(validationErrors, errors.New("err"))
	}

	formatted := formatValidationErrors(validationErrors)
	assert.True(t, strings.HasPrefix(formatted, " 1. err\n"))
	assert.True(t, strings.HasSuffix(formatted, "10. err\n"))
}
