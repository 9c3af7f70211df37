package serializer

import (
	"math"
	"net/url"
	"reflect"
	"strings"

	"github.com/erraggy/oaspath/formatter"
	"github.com/erraggy/oaspath/internal/schemautil"
	"github.com/erraggy/oaspath/parser"
)

// SerializeQuery builds the query string for the operation at
// (path, method) from the declared query parameters.
//
// Parameters are visited in QueryParameters order; keys of params that are
// not declared are ignored and nil values are skipped. A value whose schema
// names a format known to the formatter registry is rendered by that
// formatter. Otherwise strings always pass, integers pass for "integer" and
// "number" schemas, floats for "number" (and "integer" when whole) and
// booleans for "boolean". Array schemas accept slices whose elements pass
// the items schema; they are emitted as repeated pairs unless the parameter
// sets explode: false, in which case the elements are comma-joined.
//
// Every violation in one call is returned in a single
// *oaserrors.WrongDataTypeError. The result has no leading '?' and is empty
// when nothing was supplied.
func (s *Serializer) SerializeQuery(method, path string, params map[string]any) (string, error) {
	declared := s.QueryParameters(path, method)
	found := newProblems(path)
	var pairs []string

	for _, p := range declared {
		value, ok := params[p.Name]
		if !ok || isAbsent(value) {
			continue
		}
		texts, err := s.queryValues(p, value, path)
		if err != nil {
			if err := found.absorb(err); err != nil {
				return "", err
			}
			continue
		}
		name := url.QueryEscape(p.Name)
		if !explode(p) && len(texts) > 1 {
			for i := range texts {
				texts[i] = url.QueryEscape(texts[i])
			}
			pairs = append(pairs, name+"="+strings.Join(texts, ","))
			continue
		}
		for _, text := range texts {
			pairs = append(pairs, name+"="+url.QueryEscape(text))
		}
	}

	if err := found.err(); err != nil {
		return "", err
	}
	return strings.Join(pairs, "&"), nil
}

// queryValues renders one parameter value. Scalars produce one string,
// arrays one string per element.
func (s *Serializer) queryValues(p *parser.Parameter, value any, path string) ([]string, error) {
	schema := s.doc.ResolveSchema(schemautil.ParameterSchema(p))
	ctx := formatter.Context{Name: p.Name, Path: path}

	if schemautil.GetPrimaryType(schema) == "array" {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, formatter.WrongType("array", value, ctx)
		}
		items := s.doc.ResolveSchema(schema.Items)
		texts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			text, err := s.scalarValue(items, rv.Index(i).Interface(), ctx)
			if err != nil {
				return nil, err
			}
			texts = append(texts, text)
		}
		return texts, nil
	}

	text, err := s.scalarValue(schema, value, ctx)
	if err != nil {
		return nil, err
	}
	return []string{text}, nil
}

// scalarValue checks value against schema and renders it.
func (s *Serializer) scalarValue(schema *parser.Schema, value any, ctx formatter.Context) (string, error) {
	if schema != nil && schema.Format != "" {
		if f, ok := s.formatters.Lookup(schema.Format); ok {
			return f.Format(value, ctx)
		}
	}

	expected := schemautil.GetPrimaryType(schema)
	if expected == "" {
		expected = expectedPathValue
	}

	switch classify(value) {
	case kindString:
		return stringify(value), nil
	case kindInteger:
		if expected == "integer" || expected == "number" {
			return stringify(value), nil
		}
	case kindNumber:
		f := reflect.ValueOf(value).Float()
		if expected == "number" || (expected == "integer" && f == math.Trunc(f) && !math.IsInf(f, 0)) {
			return stringify(value), nil
		}
	case kindBoolean:
		if expected == "boolean" {
			return stringify(value), nil
		}
	}
	return "", formatter.WrongType(expected, value, ctx)
}

// explode reports the effective explode flag. Query parameters default to
// style form, for which explode defaults to true.
func explode(p *parser.Parameter) bool {
	if p.Explode != nil {
		return *p.Explode
	}
	return p.Style == "" || p.Style == "form"
}
