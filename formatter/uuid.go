package formatter

import "github.com/google/uuid"

// UUID accepts uuid.UUID values, rendered in canonical lower-case form, and
// strings that parse as a UUID, returned verbatim.
var UUID Formatter = FormatterFunc(formatUUID)

func formatUUID(value any, ctx Context) (string, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v.String(), nil
	case string:
		if _, err := uuid.Parse(v); err == nil {
			return v, nil
		}
	}
	return "", WrongType(ExpectedLabel(TagUUID), value, ctx)
}
