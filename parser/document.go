package parser

// OAS3Document represents an OpenAPI Specification 3.x document.
// Only the fields needed to locate operations, parameters and servers are
// decoded; everything else is captured in Extra.
type OAS3Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"` // Required: "3.0.x", "3.1.x", or "3.2.x"
	Info       *Info       `yaml:"info" json:"info"`       // Required
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"` // Required in 3.0, optional in 3.1+
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
	OASVersion OASVersion  `yaml:"-" json:"-"`
	// Extra captures specification extensions and undecoded fields
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS (OAS 3.0+)
type Components struct {
	Schemas    map[string]*Schema    `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Parameters map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions and undecoded fields
	Extra map[string]any `yaml:",inline" json:"-"`
}

// OAS2Document represents an OpenAPI Specification 2.0 (Swagger) document.
// It is decoded so that callers can report the version; oaspath does not
// serialize against it.
type OAS2Document struct {
	Swagger    string                `yaml:"swagger" json:"swagger"` // Required: "2.0"
	Info       *Info                 `yaml:"info" json:"info"`       // Required
	Host       string                `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath   string                `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Paths      Paths                 `yaml:"paths" json:"paths"` // Required
	Parameters map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	OASVersion OASVersion            `yaml:"-" json:"-"`
	// Extra captures specification extensions and undecoded fields
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
	// Extra captures specification extensions and undecoded fields
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a Server object (OAS 3.0+)
type Server struct {
	URL         string                    `yaml:"url" json:"url"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// ServerVariable represents a Server Variable object (OAS 3.0+)
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}
