package formatter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/erraggy/oaspath/oaserrors"
)

// Registry maps format tags to formatters. A Registry is immutable once
// built and safe for concurrent use.
//
// Tags are compared after Unicode case folding, so "Date-Time" and
// "date-time" select the same formatter.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry builds a registry from the given tag to formatter map.
// Nil formatters are skipped. When two tags fold to the same key, the one
// that sorts last wins.
func NewRegistry(formatters map[string]Formatter) *Registry {
	r := &Registry{formatters: make(map[string]Formatter, len(formatters))}
	tags := make([]string, 0, len(formatters))
	for tag := range formatters {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	for _, tag := range tags {
		if f := formatters[tag]; f != nil {
			r.formatters[foldTag(tag)] = f
		}
	}
	return r
}

// Default returns a registry holding every built-in formatter.
func Default() *Registry {
	return NewRegistry(map[string]Formatter{
		TagEmail:    Email,
		TagDate:     Date,
		TagDateTime: DateTime,
		TagUUID:     UUID,
	})
}

// With returns a copy of r with f registered under tag, replacing any
// existing formatter for that tag.
func (r *Registry) With(tag string, f Formatter) *Registry {
	out := &Registry{formatters: make(map[string]Formatter, len(r.formatters)+1)}
	for k, v := range r.formatters {
		out.formatters[k] = v
	}
	if f != nil {
		out.formatters[foldTag(tag)] = f
	}
	return out
}

// Lookup returns the formatter registered for tag.
func (r *Registry) Lookup(tag string) (Formatter, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.formatters[foldTag(tag)]
	return f, ok
}

// Format formats value with the formatter registered for tag. An unknown
// tag yields a *oaserrors.ConfigError.
func (r *Registry) Format(tag string, value any, ctx Context) (string, error) {
	f, ok := r.Lookup(tag)
	if !ok {
		return "", &oaserrors.ConfigError{
			Option:  "format",
			Value:   tag,
			Message: "no formatter registered (known: " + strings.Join(r.Tags(), ", ") + ")",
		}
	}
	return f.Format(value, ctx)
}

// Tags returns the registered (folded) tags in sorted order.
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	tags := make([]string, 0, len(r.formatters))
	for tag := range r.formatters {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// foldTag normalizes a tag for comparison. A Caser is stateful, so one is
// created per call.
func foldTag(tag string) string {
	return cases.Fold().String(strings.TrimSpace(tag))
}
