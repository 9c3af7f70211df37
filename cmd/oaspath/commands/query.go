package commands

import (
	"errors"
	"flag"
	"fmt"
)

// QueryResult is the structured output of the query command.
type QueryResult struct {
	Method   string `json:"method" yaml:"method"`
	Template string `json:"template" yaml:"template"`
	Query    string `json:"query" yaml:"query"`
}

// SetupQueryFlags creates and configures a FlagSet for the query command.
// Returns the FlagSet and a SerializeFlags struct with bound flag variables.
func SetupQueryFlags() (*flag.FlagSet, *SerializeFlags) {
	fs, flags := newSerializeFlagSet("query")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaspath query [flags] <file|url> <template>\n\n")
		Writef(output, "Build the query string for an operation from its declared query parameters.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oaspath query -i limit=20 -p tag=dogs openapi.yaml /pets\n")
		Writef(output, "  oaspath query -resolve-refs -p owner=jane@example.com openapi.yaml /pets\n")
		Writef(output, "\nUndeclared parameters are ignored. Values are checked against the\n")
		Writef(output, "parameter schema; email, date, date-time and uuid formats are validated.\n")
	}

	return fs, flags
}

// HandleQuery executes the query command
func HandleQuery(args []string) error {
	fs, flags := SetupQueryFlags()

	if err := flags.parse(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("query command requires a file path or URL and a path template")
	}

	s, err := flags.newSerializer(fs.Arg(0))
	if err != nil {
		return err
	}

	template := fs.Arg(1)
	query, err := s.SerializeQuery(flags.Method, template, flags.Params)
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		Writef(Stdout, "%s\n", query)
		return nil
	}
	return OutputStructured(QueryResult{
		Method:   flags.Method,
		Template: template,
		Query:    query,
	}, flags.Format)
}
