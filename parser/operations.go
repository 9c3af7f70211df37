package parser

import "github.com/erraggy/oaspath/internal/httputil"

// GetOperation returns the operation declared for method on pathItem.
// The method is matched case-insensitively. Returns nil if pathItem is nil
// or declares no such operation.
func GetOperation(pathItem *PathItem, method string) *Operation {
	if pathItem == nil {
		return nil
	}
	switch httputil.NormalizeMethod(method) {
	case httputil.MethodGet:
		return pathItem.Get
	case httputil.MethodPut:
		return pathItem.Put
	case httputil.MethodPost:
		return pathItem.Post
	case httputil.MethodDelete:
		return pathItem.Delete
	case httputil.MethodOptions:
		return pathItem.Options
	case httputil.MethodHead:
		return pathItem.Head
	case httputil.MethodPatch:
		return pathItem.Patch
	case httputil.MethodTrace:
		return pathItem.Trace
	case httputil.MethodQuery:
		return pathItem.Query
	}
	return nil
}

// FindOperation looks up the path item for path and its operation for method.
// Either return value is nil when absent.
func (d *OAS3Document) FindOperation(path, method string) (*PathItem, *Operation) {
	if d == nil || d.Paths == nil {
		return nil, nil
	}
	item := d.Paths[path]
	return item, GetOperation(item, method)
}
