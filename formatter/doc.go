// Package formatter validates individual values and renders them as
// wire-safe strings before they are placed into a request.
//
// Each [Formatter] handles one semantic type, named by the OpenAPI "format"
// keyword it serves. Built-ins:
//
//   - [Email] ("email"): syntactically valid addresses, returned verbatim
//   - [Date] ("date"): time.Time or an RFC 3339 full-date string
//   - [DateTime] ("date-time"): time.Time in UTC with milliseconds, or an RFC 3339 string
//   - [UUID] ("uuid"): uuid.UUID or a parseable UUID string
//
// A failing formatter returns a *oaserrors.WrongDataTypeError holding one
// problem whose expected label is "string:<tag>".
//
// Formatters are grouped in a [Registry] built at construction time; there
// is no global mutable registry:
//
//	reg := formatter.Default().With("phone", formatter.FormatterFunc(formatPhone))
//	s, err := reg.Format("email", "a@example.com", formatter.Context{Name: "owner", Path: "/pets"})
package formatter
