package commands

import (
	"errors"
	"flag"
	"fmt"
)

// PathResult is the structured output of the path command.
type PathResult struct {
	Method   string `json:"method" yaml:"method"`
	Template string `json:"template" yaml:"template"`
	Path     string `json:"path" yaml:"path"`
	BasePath string `json:"basePath,omitempty" yaml:"basePath,omitempty"`
}

// SetupPathFlags creates and configures a FlagSet for the path command.
// Returns the FlagSet and a SerializeFlags struct with bound flag variables.
func SetupPathFlags() (*flag.FlagSet, *SerializeFlags) {
	fs, flags := newSerializeFlagSet("path")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaspath path [flags] <file|url> <template>\n\n")
		Writef(output, "Resolve a path template against an OpenAPI 3.x document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oaspath path -p petId=123 openapi.yaml /pets/{petId}\n")
		Writef(output, "  oaspath path -m delete -p ownerId=7 -p petId=42 openapi.yaml /owners/{ownerId}/pets/{petId}\n")
		Writef(output, "  oaspath path -base-path '' -format json openapi.yaml /pets\n")
		Writef(output, "\nPath values must be strings. Values given with -i or -n are reported as\n")
		Writef(output, "wrong data types, which is useful to check how a client would fail.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Path resolved\n")
		Writef(output, "  1    Wrong data types, missing path parameters, or an unsupported document\n")
	}

	return fs, flags
}

// HandlePath executes the path command
func HandlePath(args []string) error {
	fs, flags := SetupPathFlags()

	if err := flags.parse(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("path command requires a file path or URL and a path template")
	}

	s, err := flags.newSerializer(fs.Arg(0))
	if err != nil {
		return err
	}

	template := fs.Arg(1)
	path, err := s.SerializePath(flags.Method, template, flags.Params)
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		Writef(Stdout, "%s\n", path)
		return nil
	}
	return OutputStructured(PathResult{
		Method:   flags.Method,
		Template: template,
		Path:     path,
		BasePath: s.BasePath(),
	}, flags.Format)
}
