package formatter

import "github.com/erraggy/oaspath/oaserrors"

// Context identifies the value being formatted. It is used only for
// diagnostics.
type Context struct {
	// Name is the parameter or field name
	Name string
	// Path is the path template (or field path) the value belongs to
	Path string
}

// Formatter validates a raw value and renders it as a wire-safe string.
//
// Implementations must be pure: they never mutate the value, keep no state
// between calls, and on failure return exactly one violation as a
// *oaserrors.WrongDataTypeError.
type Formatter interface {
	Format(value any, ctx Context) (string, error)
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc func(value any, ctx Context) (string, error)

// Format calls f(value, ctx).
func (f FormatterFunc) Format(value any, ctx Context) (string, error) {
	return f(value, ctx)
}

// Built-in formatter tags. They match the OpenAPI "format" keyword.
const (
	TagEmail    = "email"
	TagDate     = "date"
	TagDateTime = "date-time"
	TagUUID     = "uuid"
)

// ExpectedLabel returns the expected-type label reported for tag,
// e.g. "string:email".
func ExpectedLabel(tag string) string {
	return "string:" + tag
}

// WrongType builds the single-violation error returned by formatters.
func WrongType(expected string, value any, ctx Context) error {
	problem := oaserrors.DataTypeProblem{
		Expected: expected,
		Name:     ctx.Name,
		Value:    value,
	}
	return &oaserrors.WrongDataTypeError{
		Path:     ctx.Path,
		Problems: []oaserrors.DataTypeProblem{problem},
		Cause:    problem,
	}
}
