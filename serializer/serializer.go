package serializer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/erraggy/oaspath/formatter"
	"github.com/erraggy/oaspath/oaserrors"
	"github.com/erraggy/oaspath/parser"
)

// Serializer resolves path templates and query strings against one OpenAPI
// 3.x document. It is safe for concurrent use.
type Serializer struct {
	doc         *parser.OAS3Document
	version     string
	basePath    string
	logger      parser.Logger
	formatters  *formatter.Registry
	resolveRefs bool

	mu    sync.Mutex
	index map[indexKey][]*parser.Parameter
}

// New creates a Serializer bound to parsed. Any document that is not
// OpenAPI 3.x is rejected with a *oaserrors.UnsupportedVersionError.
//
// Example:
//
//	parsed, _ := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	s, err := serializer.New(parsed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := s.SerializePath("GET", "/pets/{petId}", map[string]any{"petId": "123"})
func New(parsed *parser.ParseResult, opts ...Option) (*Serializer, error) {
	if err := CheckVersion(parsed); err != nil {
		return nil, err
	}
	return NewWithOptions(append([]Option{WithParsed(parsed)}, opts...)...)
}

// NewWithOptions creates a Serializer using functional options. Exactly one
// of WithFilePath or WithParsed must be given.
//
// Example:
//
//	s, err := serializer.NewWithOptions(
//	    serializer.WithFilePath("openapi.yaml"),
//	    serializer.WithResolveRefs(true),
//	)
func NewWithOptions(opts ...Option) (*Serializer, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("serializer: invalid options: %w", err)
	}

	parsed := cfg.parsed
	if cfg.filePath != nil {
		parsed, err = parser.ParseWithOptions(
			parser.WithFilePath(*cfg.filePath),
			parser.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, err
		}
	}

	if err := CheckVersion(parsed); err != nil {
		return nil, err
	}
	doc, _ := parsed.OAS3Document()

	basePath := BasePath(doc)
	if cfg.basePath != nil {
		basePath = strings.TrimSuffix(*cfg.basePath, "/")
	}

	s := &Serializer{
		doc:         doc,
		version:     parsed.Version,
		basePath:    basePath,
		logger:      cfg.logger,
		formatters:  cfg.formatters,
		resolveRefs: cfg.resolveRefs,
		index:       make(map[indexKey][]*parser.Parameter),
	}
	s.logger.Debug("serializer created",
		"version", s.version,
		"basePath", s.basePath,
		"paths", len(doc.Paths),
		"resolveRefs", s.resolveRefs,
	)
	return s, nil
}

// CheckVersion returns nil when parsed holds an OpenAPI 3.x document and a
// *oaserrors.UnsupportedVersionError otherwise.
func CheckVersion(parsed *parser.ParseResult) error {
	supported := parser.OAS3Series()
	if parsed == nil {
		return &oaserrors.UnsupportedVersionError{Supported: supported}
	}
	if doc, ok := parsed.OAS3Document(); !ok || doc == nil || !parsed.OASVersion.Is3x() {
		return &oaserrors.UnsupportedVersionError{Version: parsed.Version, Supported: supported}
	}
	return nil
}

// BasePath returns the prefix prepended to every serialized path.
func (s *Serializer) BasePath() string {
	return s.basePath
}

// Version returns the OpenAPI version declared by the bound document.
func (s *Serializer) Version() string {
	return s.version
}

// Formatters returns the formatter registry used by SerializeQuery.
func (s *Serializer) Formatters() *formatter.Registry {
	return s.formatters
}
