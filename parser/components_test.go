package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParameter(t *testing.T) {
	limit := &Parameter{Name: "limit", In: ParamInQuery}
	doc := &OAS3Document{
		Components: &Components{
			Parameters: map[string]*Parameter{
				"Limit":    limit,
				"Alias":    {Ref: "#/components/parameters/Limit"},
				"Dangling": {Ref: "#/components/parameters/Nope"},
				"Loop":     {Ref: "#/components/parameters/Loop"},
			},
		},
	}

	tests := []struct {
		name   string
		ref    string
		want   *Parameter
		wantOK bool
	}{
		{"direct", "#/components/parameters/Limit", limit, true},
		{"chained", "#/components/parameters/Alias", limit, true},
		{"missing", "#/components/parameters/Offset", nil, false},
		{"dangling chain", "#/components/parameters/Dangling", nil, false},
		{"self loop", "#/components/parameters/Loop", nil, false},
		{"external", "other.yaml#/components/parameters/Limit", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := doc.ResolveParameter(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Same(t, tt.want, got)
		})
	}

	t.Run("no components", func(t *testing.T) {
		_, ok := (&OAS3Document{}).ResolveParameter("#/components/parameters/Limit")
		assert.False(t, ok)
	})
}

func TestResolveSchema(t *testing.T) {
	date := &Schema{Type: "string", Format: "date"}
	doc := &OAS3Document{
		Components: &Components{
			Schemas: map[string]*Schema{
				"Date":  date,
				"Alias": {Ref: "#/components/schemas/Date"},
			},
		},
	}

	assert.Same(t, date, doc.ResolveSchema(&Schema{Ref: "#/components/schemas/Alias"}))

	inline := &Schema{Type: "integer"}
	assert.Same(t, inline, doc.ResolveSchema(inline))
	assert.Nil(t, doc.ResolveSchema(nil))

	dangling := &Schema{Ref: "#/components/schemas/Missing"}
	assert.Same(t, dangling, doc.ResolveSchema(dangling))
}

func TestResolveParameterFromFile(t *testing.T) {
	result, err := ParseWithOptions(WithFilePath("../testdata/petstore-3.0.yaml"))
	require.NoError(t, err)
	doc, ok := result.OAS3Document()
	require.True(t, ok)

	p, ok := doc.ResolveParameter("#/components/parameters/Alias")
	require.True(t, ok)
	assert.Equal(t, "owner", p.Name)
	assert.Equal(t, "email", p.Schema.Format)
}
