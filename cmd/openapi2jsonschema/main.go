// Command openapi2jsonschema converts an OpenAPI specification into a set
// of JSON Schema files, one per declared type.
package main

import (
	"context"
	"fmt"
	"os"

	openapi2jsonschema "github.com/erraggy/openapi2jsonschema"
	"github.com/erraggy/openapi2jsonschema/cmd/openapi2jsonschema/commands"
	"github.com/erraggy/openapi2jsonschema/internal/cliutil"
	"github.com/erraggy/openapi2jsonschema/internal/mcpserver"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "version", "-v", "--version":
		fmt.Printf("openapi2jsonschema v%s\n", openapi2jsonschema.Version())
	case "help", "-h", "--help":
		printUsage()
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := commands.HandleGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	out := os.Stdout
	cliutil.Writef(out, "openapi2jsonschema - convert OpenAPI specifications to JSON Schema files\n\n")
	cliutil.Writef(out, "Usage:\n")
	cliutil.Writef(out, "  openapi2jsonschema [flags] SCHEMA_URL   Convert a specification\n")
	cliutil.Writef(out, "  openapi2jsonschema mcp                  Run as an MCP server over stdio\n")
	cliutil.Writef(out, "  openapi2jsonschema version              Print the version\n")
	cliutil.Writef(out, "  openapi2jsonschema help                 Show this help\n\n")
	cliutil.Writef(out, "SCHEMA_URL may be a local file path, an http(s) URL, or '-' for stdin.\n\n")
	cliutil.Writef(out, "Flags:\n")
	cliutil.Writef(out, "  -o, --output PATH    output directory (default: schemas)\n")
	cliutil.Writef(out, "  -p, --prefix STRING  prefix for $ref targets (default: _definitions.json)\n")
	cliutil.Writef(out, "      --stand-alone    fully de-reference each schema\n")
	cliutil.Writef(out, "      --kubernetes     enable Kubernetes specific processors\n")
	cliutil.Writef(out, "      --strict         prohibit properties not in the schema\n")
	cliutil.Writef(out, "      --no-color       disable colored status output\n")
	cliutil.Writef(out, "      --insecure       skip TLS certificate verification for URL fetches\n\n")
	cliutil.Writef(out, "Examples:\n")
	cliutil.Writef(out, "  openapi2jsonschema swagger.json\n")
	cliutil.Writef(out, "  openapi2jsonschema --kubernetes --strict https://example.com/swagger.json\n")
	cliutil.Writef(out, "  openapi2jsonschema --stand-alone -o build/schemas openapi.yaml\n")
}
