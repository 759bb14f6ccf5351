package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to inspect"`
}

type inspectOutput struct {
	Source    string   `json:"source"`
	Format    string   `json:"format"`
	Version   string   `json:"version"`
	Swagger2  bool     `json:"swagger2"`
	TypeCount int      `json:"type_count"`
	Types     []string `json:"types,omitempty"`
}

func handleInspectSpec(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	components, err := doc.Definitions()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	titles := components.Keys()
	output := inspectOutput{
		Source:    doc.SourcePath,
		Format:    string(doc.SourceFormat),
		Version:   doc.Version,
		Swagger2:  doc.PreOAS3(),
		TypeCount: len(titles),
	}
	output.Types = makeSlice[string](len(titles))
	output.Types = append(output.Types, titles...)

	return nil, output, nil
}
