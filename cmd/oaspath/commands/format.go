package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/oaspath/formatter"
)

// FormatFlags contains flags for the format command
type FormatFlags struct {
	Name string
	List bool
}

// SetupFormatFlags creates and configures a FlagSet for the format command.
// Returns the FlagSet and a FormatFlags struct with bound flag variables.
func SetupFormatFlags() (*flag.FlagSet, *FormatFlags) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	flags := &FormatFlags{}

	fs.StringVar(&flags.Name, "name", "value", "field name used in error messages")
	fs.BoolVar(&flags.List, "list", false, "list the registered formats and exit")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oaspath format [flags] <format> <value>\n\n")
		Writef(output, "Validate a value with a semantic formatter and print its wire form.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nFormats: %s\n", strings.Join(formatter.Default().Tags(), ", "))
		Writef(output, "\nExamples:\n")
		Writef(output, "  oaspath format email jane@example.com\n")
		Writef(output, "  oaspath format date-time 2022-03-20T16:54:00.331Z\n")
	}

	return fs, flags
}

// HandleFormat executes the format command
func HandleFormat(args []string) error {
	fs, flags := SetupFormatFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	reg := formatter.Default()
	if flags.List {
		for _, tag := range reg.Tags() {
			Writef(Stdout, "%s\n", tag)
		}
		return nil
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("format command requires a format and a value")
	}

	out, err := reg.Format(fs.Arg(0), fs.Arg(1), formatter.Context{Name: flags.Name})
	if err != nil {
		return err
	}
	Writef(Stdout, "%s\n", out)
	return nil
}
