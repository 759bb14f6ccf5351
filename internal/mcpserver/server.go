// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schema generation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	openapi2jsonschema "github.com/erraggy/openapi2jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `openapi2jsonschema MCP server — converts OpenAPI specifications into per-type JSON Schema files.

Tools:
- inspect_spec: load a spec and report its version and declared type names without writing anything.
- generate_schemas: run the full conversion, writing one JSON Schema file per declared type plus _definitions.json (Swagger 2.0 sources) and all.json into output_dir.

Configuration: defaults are configurable via OPENAPI2JSONSCHEMA_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OPENAPI2JSONSCHEMA_MAX_INLINE_SIZE (default: 5242880) — max bytes for inline content input
- OPENAPI2JSONSCHEMA_MAX_SPEC_SIZE (default: loader default) — max bytes for file/URL specs
- OPENAPI2JSONSCHEMA_ALLOW_PRIVATE_IPS (default: false) — allow URL inputs that resolve to private/loopback IPs`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "openapi2jsonschema", Version: openapi2jsonschema.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_spec",
		Description: "Load an OpenAPI Specification document and report its version and the type names declared in definitions (Swagger 2.0) or components.schemas (OpenAPI 3.x). Use this to preview what generate_schemas would emit.",
	}, handleInspectSpec)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_schemas",
		Description: "Convert an OpenAPI Specification document into JSON Schema files, one per declared type, written to output_dir. Swagger 2.0 sources also get a shared _definitions.json; every run gets an all.json union schema. Options: stand_alone fully dereferences each schema, kubernetes enables Kubernetes-specific processors, strict injects additionalProperties: false. Per-type failures are reported in the result and do not abort the run.",
	}, handleGenerateSchemas)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
