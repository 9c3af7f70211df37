package schemautil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oaspath/parser"
)

func TestGetSchemaTypes(t *testing.T) {
	tests := []struct {
		name     string
		schema   *parser.Schema
		expected []string
	}{
		{
			name:     "nil schema",
			schema:   nil,
			expected: nil,
		},
		{
			name:     "empty type",
			schema:   &parser.Schema{Type: ""},
			expected: nil,
		},
		{
			name:     "string type",
			schema:   &parser.Schema{Type: "string"},
			expected: []string{"string"},
		},
		{
			name:     "array of any (OAS 3.1 style)",
			schema:   &parser.Schema{Type: []any{"string", "null"}},
			expected: []string{"string", "null"},
		},
		{
			name:     "array of strings",
			schema:   &parser.Schema{Type: []string{"integer", "null"}},
			expected: []string{"integer", "null"},
		},
		{
			name:     "array with non-string values filtered",
			schema:   &parser.Schema{Type: []any{"string", 123, "null"}},
			expected: []string{"string", "null"},
		},
		{
			name:     "unsupported type value",
			schema:   &parser.Schema{Type: 42},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSchemaTypes(tt.schema))
		})
	}
}

func TestGetPrimaryType(t *testing.T) {
	tests := []struct {
		name     string
		schema   *parser.Schema
		expected string
	}{
		{"nil schema", nil, ""},
		{"no type", &parser.Schema{}, ""},
		{"single type", &parser.Schema{Type: "integer"}, "integer"},
		{"null first", &parser.Schema{Type: []any{"null", "number"}}, "number"},
		{"only null", &parser.Schema{Type: []any{"null"}}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPrimaryType(tt.schema))
		})
	}
}

func TestParameterSchema(t *testing.T) {
	t.Run("nil parameter", func(t *testing.T) {
		assert.Nil(t, ParameterSchema(nil))
	})

	t.Run("oas3 schema", func(t *testing.T) {
		s := &parser.Schema{Type: "integer", Format: "int32"}
		assert.Same(t, s, ParameterSchema(&parser.Parameter{Name: "limit", Schema: s}))
	})

	t.Run("oas2 inline type", func(t *testing.T) {
		got := ParameterSchema(&parser.Parameter{Name: "since", Type: "string", Format: "date"})
		assert.Equal(t, &parser.Schema{Type: "string", Format: "date"}, got)
	})

	t.Run("nothing declared", func(t *testing.T) {
		assert.Nil(t, ParameterSchema(&parser.Parameter{Name: "q"}))
	})
}
