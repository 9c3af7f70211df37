// Package oaserrors provides structured error types for the oaspath library.
//
// Import path: github.com/erraggy/oaspath/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and
// build human-readable messages from structured fields without re-deriving context.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures and structural issues
//   - [ConfigError]: Invalid configuration or input options
//   - [UnsupportedVersionError]: Document version outside the supported set
//   - [WrongDataTypeError]: Every type/format violation found in one pass
//   - [MissingPathParamError]: Unresolved placeholders in a path template
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrUnsupportedVersion]: Matches any [UnsupportedVersionError]
//   - [ErrWrongDataType]: Matches any [WrongDataTypeError]
//   - [ErrMissingPathParam]: Matches any [MissingPathParamError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	_, err := s.SerializePath("get", "/pets/{petId}", params)
//	if errors.Is(err, oaserrors.ErrMissingPathParam) {
//	    // Ask the caller for the remaining values
//	}
//
// Extract every violation with errors.As():
//
//	var wrongType *oaserrors.WrongDataTypeError
//	if errors.As(err, &wrongType) {
//	    for _, p := range wrongType.Problems {
//	        fmt.Printf("%s: expected %s\n", p.Name, p.Expected)
//	    }
//	}
//
// # Error Chaining
//
// Error types with a Cause field support chaining via Unwrap(). The Cause of a
// [WrongDataTypeError] aggregates its problems, so each [DataTypeProblem] can
// also be reached through the standard error chain.
package oaserrors
