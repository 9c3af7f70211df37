package parser

// Schema is the subset of a JSON Schema that oaspath reads when checking a
// value against a declared parameter.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Type is a string in OAS 2.0/3.0 and may be a list in OAS 3.1+
	Type    any     `yaml:"type,omitempty" json:"type,omitempty"`
	Format  string  `yaml:"format,omitempty" json:"format,omitempty"`
	Items   *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	Enum    []any   `yaml:"enum,omitempty" json:"enum,omitempty"`
	Pattern string  `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	// Extra captures specification extensions and undecoded fields
	Extra map[string]any `yaml:",inline" json:"-"`
}
