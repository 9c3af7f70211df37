package serializer

import (
	"github.com/erraggy/oaspath/formatter"
	"github.com/erraggy/oaspath/internal/options"
	"github.com/erraggy/oaspath/oaserrors"
	"github.com/erraggy/oaspath/parser"
)

// Option is a functional option for configuring a Serializer.
type Option func(*config) error

// config holds the configuration for a Serializer.
type config struct {
	// Spec source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	logger      parser.Logger
	resolveRefs bool
	formatters  *formatter.Registry
	basePath    *string
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		logger:     parser.NopLogger{},
		formatters: formatter.Default(),
	}
}

// applyOptions applies option functions and validates the configuration.
func applyOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("serializer",
		options.InputSource{Name: "WithFilePath", Set: cfg.filePath != nil},
		options.InputSource{Name: "WithParsed", Set: cfg.parsed != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath sets the path or URL of the OpenAPI document.
// The document will be parsed automatically.
func WithFilePath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "WithFilePath", Message: "path cannot be empty"}
		}
		c.filePath = &path
		return nil
	}
}

// WithParsed uses a pre-parsed OpenAPI document.
func WithParsed(result *parser.ParseResult) Option {
	return func(c *config) error {
		if result == nil {
			return &oaserrors.ConfigError{Option: "WithParsed", Message: "parsed result cannot be nil"}
		}
		c.parsed = result
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
// By default, no logging is performed.
func WithLogger(l parser.Logger) Option {
	return func(c *config) error {
		if l == nil {
			l = parser.NopLogger{}
		}
		c.logger = l
		return nil
	}
}

// WithResolveRefs makes the parameter index follow local
// "#/components/parameters/<name>" references. By default reference
// entries are skipped. Unresolvable references are always skipped.
func WithResolveRefs(enabled bool) Option {
	return func(c *config) error {
		c.resolveRefs = enabled
		return nil
	}
}

// WithFormatters replaces the formatter registry used by SerializeQuery.
// Default: formatter.Default().
func WithFormatters(r *formatter.Registry) Option {
	return func(c *config) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithFormatters", Message: "registry cannot be nil"}
		}
		c.formatters = r
		return nil
	}
}

// WithBasePath overrides the prefix derived from the document's servers.
// A trailing '/' is removed. Pass "" to emit relative paths only.
func WithBasePath(basePath string) Option {
	return func(c *config) error {
		c.basePath = &basePath
		return nil
	}
}
