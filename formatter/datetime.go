package formatter

import "time"

const (
	// DateLayout is the RFC 3339 full-date layout.
	DateLayout = "2006-01-02"
	// DateTimeLayout renders UTC timestamps with millisecond precision,
	// e.g. "2022-03-20T16:54:00.331Z".
	DateTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Date renders time.Time values as a full-date (2006-01-02) in the value's
// own location. Strings are accepted verbatim when they already are a valid
// full-date.
var Date Formatter = FormatterFunc(formatDate)

// DateTime renders time.Time values in UTC with millisecond precision.
// Strings are accepted verbatim when they parse as RFC 3339.
var DateTime Formatter = FormatterFunc(formatDateTime)

func formatDate(value any, ctx Context) (string, error) {
	switch v := value.(type) {
	case time.Time:
		if !v.IsZero() {
			return v.Format(DateLayout), nil
		}
	case *time.Time:
		if v != nil && !v.IsZero() {
			return v.Format(DateLayout), nil
		}
	case string:
		if _, err := time.Parse(DateLayout, v); err == nil {
			return v, nil
		}
	}
	return "", WrongType(ExpectedLabel(TagDate), value, ctx)
}

func formatDateTime(value any, ctx Context) (string, error) {
	switch v := value.(type) {
	case time.Time:
		if !v.IsZero() {
			return v.UTC().Format(DateTimeLayout), nil
		}
	case *time.Time:
		if v != nil && !v.IsZero() {
			return v.UTC().Format(DateTimeLayout), nil
		}
	case string:
		if _, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return v, nil
		}
	}
	return "", WrongType(ExpectedLabel(TagDateTime), value, ctx)
}
