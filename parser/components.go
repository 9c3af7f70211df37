package parser

import "github.com/erraggy/oaspath/internal/pathutil"

// ResolveParameter follows a local "#/components/parameters/<name>" reference.
// Chains of references are followed up to a small fixed depth. It returns
// false for external, malformed or dangling references.
func (d *OAS3Document) ResolveParameter(ref string) (*Parameter, bool) {
	const maxDepth = 8
	if d == nil || d.Components == nil {
		return nil, false
	}
	for range maxDepth {
		name, ok := pathutil.ParameterRefName(ref)
		if !ok {
			return nil, false
		}
		p, ok := d.Components.Parameters[name]
		if !ok || p == nil {
			return nil, false
		}
		if !p.IsRef() {
			return p, true
		}
		ref = p.Ref
	}
	return nil, false
}

// ResolveSchema follows a local "#/components/schemas/<name>" reference.
// A schema without a Ref is returned unchanged.
func (d *OAS3Document) ResolveSchema(s *Schema) *Schema {
	const maxDepth = 8
	for range maxDepth {
		if s == nil || s.Ref == "" {
			return s
		}
		name, ok := pathutil.SchemaRefName(s.Ref)
		if !ok || d == nil || d.Components == nil {
			return s
		}
		next, ok := d.Components.Schemas[name]
		if !ok || next == nil {
			return s
		}
		s = next
	}
	return s
}
