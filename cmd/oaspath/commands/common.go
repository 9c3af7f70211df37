// Package commands provides CLI command handlers for oaspath.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/oaspath/internal/cliutil"
	"github.com/erraggy/oaspath/internal/httputil"
	"github.com/erraggy/oaspath/parser"
	"github.com/erraggy/oaspath/serializer"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = cliutil.EncodingJSON
	FormatYAML = cliutil.EncodingYAML
)

// Stdout receives command results. Diagnostics go to os.Stderr.
var Stdout io.Writer = os.Stdout

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to Stdout in the specified format (json or yaml).
func OutputStructured(data any, format string) error {
	return cliutil.WriteStructured(Stdout, data, format)
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// paramKind selects how a -p/-i/-n flag value is converted.
type paramKind int

const (
	paramString paramKind = iota
	paramInteger
	paramNumber
)

// paramFlag is a repeatable name=value flag. Several paramFlags can share
// one values map so that -p, -i and -n fill the same parameter set.
type paramFlag struct {
	values map[string]any
	kind   paramKind
}

// String implements flag.Value.
func (p *paramFlag) String() string {
	if p == nil || len(p.values) == 0 {
		return ""
	}
	return fmt.Sprint(p.values)
}

// Set implements flag.Value.
func (p *paramFlag) Set(s string) error {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	switch p.kind {
	case paramInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parameter %s: invalid integer %q", name, raw)
		}
		p.values[name] = n
	case paramNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("parameter %s: invalid number %q", name, raw)
		}
		p.values[name] = f
	default:
		p.values[name] = raw
	}
	return nil
}

// SerializeFlags contains the flags shared by the path and query commands.
type SerializeFlags struct {
	Method      string
	Params      map[string]any
	ResolveRefs bool
	BasePath    string
	Format      string
	Verbose     bool

	basePathSet bool
}

// newSerializeFlagSet creates the FlagSet for the path and query commands.
func newSerializeFlagSet(name string) (*flag.FlagSet, *SerializeFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &SerializeFlags{Params: make(map[string]any)}

	fs.StringVar(&flags.Method, "m", "get", "HTTP method of the operation")
	fs.Var(&paramFlag{values: flags.Params, kind: paramString}, "p", "string parameter as name=value (repeatable)")
	fs.Var(&paramFlag{values: flags.Params, kind: paramInteger}, "i", "integer parameter as name=123 (repeatable)")
	fs.Var(&paramFlag{values: flags.Params, kind: paramNumber}, "n", "number parameter as name=0.5 (repeatable)")
	fs.BoolVar(&flags.ResolveRefs, "resolve-refs", false, "follow #/components/parameters references")
	fs.StringVar(&flags.BasePath, "base-path", "", "override the base path derived from the document's servers")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")

	return fs, flags
}

// parse parses args into f. It returns flag.ErrHelp unchanged.
func (f *SerializeFlags) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "base-path" {
			f.basePathSet = true
		}
	})
	if !httputil.IsKnownMethod(f.Method) {
		return fmt.Errorf("unknown HTTP method '%s'", f.Method)
	}
	return ValidateOutputFormat(f.Format)
}

// newSerializer builds a Serializer for specPath from the parsed flags.
func (f *SerializeFlags) newSerializer(specPath string) (*serializer.Serializer, error) {
	opts := []serializer.Option{
		serializer.WithFilePath(specPath),
		serializer.WithResolveRefs(f.ResolveRefs),
	}
	if f.basePathSet {
		opts = append(opts, serializer.WithBasePath(f.BasePath))
	}
	if f.Verbose {
		opts = append(opts, serializer.WithLogger(parser.NewSlogAdapter(newStderrLogger())))
	}
	return serializer.NewWithOptions(opts...)
}

// newStderrLogger returns a debug-level text logger writing to stderr.
func newStderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
