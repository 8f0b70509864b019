package query_test

import (
	"testing"

	"github.com/speakeasy-api/oasparams/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const document = `openapi: 3.1.0
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
        - $ref: '#/components/parameters/limit'
    delete:
      summary: no parameters
  /health:
    get:
      summary: health check
`

func parseDocument(t *testing.T) *yaml.Node {
	t.Helper()

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(document), &node))
	return &node
}

func TestSelect_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exprs    []string
		legacy   bool
		expected []string
	}{
		{
			name:     "default parameter paths",
			exprs:    query.DefaultParameterPaths,
			expected: []string{"id", "expand", ""},
		},
		{
			name:     "default parameter paths legacy",
			exprs:    query.DefaultParameterPaths,
			legacy:   true,
			expected: []string{"id", "expand", ""},
		},
		{
			name:     "single operation",
			exprs:    []string{"$.paths['/users/{id}'].get.parameters[0]"},
			expected: []string{"expand"},
		},
		{
			name:     "overlapping expressions",
			exprs:    []string{"$.paths.*.parameters[*]", "$.paths['/users/{id}'].parameters[0]"},
			expected: []string{"id"},
		},
		{
			name:     "no matches",
			exprs:    []string{"$.paths['/health'].get.parameters[*]"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nodes, err := query.Select(parseDocument(t), tt.exprs, tt.legacy)
			require.NoError(t, err)

			names := []string{}
			for _, node := range nodes {
				require.Equal(t, yaml.MappingNode, node.Kind)
				name := ""
				for i := 0; i+1 < len(node.Content); i += 2 {
					if node.Content[i].Value == "name" {
						name = node.Content[i+1].Value
					}
				}
				names = append(names, name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestNewPath_Error(t *testing.T) {
	t.Parallel()

	_, err := query.NewPath("$.paths[", false)
	require.ErrorIs(t, err, query.ErrInvalidPath)

	_, err = query.Select(parseDocument(t), []string{"$.paths.*", "$[?("}, false)
	require.ErrorIs(t, err, query.ErrInvalidPath)
}
