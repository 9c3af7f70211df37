package parser

// Parameter describes a single operation parameter.
// A Parameter with a non-empty Ref is a reference entry; its other fields
// are empty and the definition lives in the referenced component.
type Parameter struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// OAS 3.0+ fields
	Style   string  `yaml:"style,omitempty" json:"style,omitempty"`
	Explode *bool   `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// OAS 2.0 fields
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Extra captures specification extensions and undecoded fields
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Parameter locations
const (
	// ParamInQuery is a parameter appended to the URL query string
	ParamInQuery = "query"
	// ParamInPath is a parameter substituted into the path template
	ParamInPath = "path"
	// ParamInHeader is a parameter sent as a request header
	ParamInHeader = "header"
	// ParamInCookie is a parameter sent as a cookie (OAS 3.0+)
	ParamInCookie = "cookie"
)

// IsRef returns true if the parameter is a reference entry.
func (p *Parameter) IsRef() bool {
	return p != nil && p.Ref != ""
}
