package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaspath"
	"github.com/erraggy/oaspath/cmd/oaspath/commands"
	"github.com/erraggy/oaspath/internal/mcpserver"
)

// commandNames lists every top-level command, for typo suggestions.
var commandNames = []string{"path", "query", "format", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaspath v%s\n", oaspath.Version())
		if len(os.Args) > 2 && os.Args[2] == "-verbose" {
			fmt.Println(oaspath.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "path":
		err = commands.HandlePath(os.Args[2:])
	case "query":
		err = commands.HandleQuery(os.Args[2:])
	case "format":
		err = commands.HandleFormat(os.Args[2:])
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = mcpserver.Run(ctx)
		stop()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "" when none is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oaspath - OpenAPI path and query serializer

Usage:
  oaspath <command> [options]

Commands:
  path        Resolve a path template against an OpenAPI 3.x document
  query       Build the query string for an operation
  format      Validate a value with a semantic formatter (email, date, date-time, uuid)
  mcp         Serve the oaspath tools over MCP (stdio)
  version     Show version information
  help        Show this help message

Examples:
  oaspath path -p petId=123 openapi.yaml /pets/{petId}
  oaspath query -i limit=20 openapi.yaml /pets
  oaspath format email jane@example.com

Run 'oaspath <command> --help' for more information on a command.`)
}
