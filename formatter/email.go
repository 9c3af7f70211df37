package formatter

import "github.com/erraggy/oaspath/internal/stringutil"

// Email accepts strings that are syntactically valid email addresses and
// returns them verbatim. Non-string values are checked as the empty string
// and therefore always fail.
var Email Formatter = FormatterFunc(formatEmail)

func formatEmail(value any, ctx Context) (string, error) {
	s, _ := value.(string)
	if stringutil.IsValidEmail(s) {
		return s, nil
	}
	return "", WrongType(ExpectedLabel(TagEmail), value, ctx)
}
