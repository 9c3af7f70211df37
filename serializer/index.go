package serializer

import (
	"github.com/erraggy/oaspath/internal/httputil"
	"github.com/erraggy/oaspath/parser"
)

// indexKey identifies one cached parameter list.
type indexKey struct {
	path   string
	method string
}

// QueryParameters returns the query parameters declared for the operation
// at (path, method), in declaration order. The method is matched
// case-insensitively.
//
// Operation-level parameters come first; path-level parameters that the
// operation does not override (same name and location) follow. Reference
// entries are skipped unless WithResolveRefs is enabled, and references
// that cannot be resolved are always skipped. An unknown path or method
// yields nil.
//
// The result is computed once per (path, method) and shared between calls;
// callers must not modify it.
func (s *Serializer) QueryParameters(path, method string) []*parser.Parameter {
	key := indexKey{path: path, method: httputil.NormalizeMethod(method)}

	s.mu.Lock()
	defer s.mu.Unlock()

	if params, ok := s.index[key]; ok {
		return params
	}
	params := s.buildQueryIndex(key)
	s.index[key] = params
	s.logger.Debug("indexed query parameters",
		"path", key.path,
		"method", key.method,
		"count", len(params),
	)
	return params
}

// buildQueryIndex collects the query parameters for key.
func (s *Serializer) buildQueryIndex(key indexKey) []*parser.Parameter {
	item, op := s.doc.FindOperation(key.path, key.method)
	if op == nil {
		return nil
	}

	var params []*parser.Parameter
	declared := make(map[string]bool)
	for _, p := range op.Parameters {
		if p = s.inline(p); p == nil {
			continue
		}
		declared[p.In+":"+p.Name] = true
		if p.In == parser.ParamInQuery {
			params = append(params, p)
		}
	}
	for _, p := range item.Parameters {
		if p = s.inline(p); p == nil || declared[p.In+":"+p.Name] {
			continue
		}
		if p.In == parser.ParamInQuery {
			params = append(params, p)
		}
	}
	return params
}

// inline returns the parameter definition for p, following a reference
// when enabled. It returns nil for entries that must be skipped.
func (s *Serializer) inline(p *parser.Parameter) *parser.Parameter {
	if p == nil {
		return nil
	}
	if !p.IsRef() {
		return p
	}
	if !s.resolveRefs {
		return nil
	}
	resolved, ok := s.doc.ResolveParameter(p.Ref)
	if !ok {
		s.logger.Debug("skipping unresolvable parameter reference", "ref", p.Ref)
		return nil
	}
	return resolved
}
