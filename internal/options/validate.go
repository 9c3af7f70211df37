// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/oaspath/oaserrors"

// InputSource names one way of supplying a document, e.g. "WithFilePath".
type InputSource struct {
	Name string
	Set  bool
}

// ValidateSingleInputSource ensures exactly one input source is specified.
// pkg prefixes the message (e.g. "parser"). The returned error is a
// *oaserrors.ConfigError naming every candidate source.
func ValidateSingleInputSource(pkg string, sources ...InputSource) error {
	names := make([]string, 0, len(sources))
	var set []string
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{
			Option:  "input source",
			Message: pkg + ": must specify an input source (use " + joinOr(names) + ")",
		}
	default:
		return &oaserrors.ConfigError{
			Option:  "input source",
			Value:   set,
			Message: pkg + ": must specify exactly one input source",
		}
	}
}

// joinOr joins names as "a, b, or c".
func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	out := ""
	for i, n := range names {
		switch {
		case i == len(names)-1:
			out += ", or " + n
		case i > 0:
			out += ", " + n
		default:
			out = n
		}
	}
	return out
}
