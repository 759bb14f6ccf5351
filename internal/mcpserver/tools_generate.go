package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/openapi2jsonschema/emitter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OpenAPI document to convert"`
	OutputDir  string    `json:"output_dir"            jsonschema:"Directory to write schema files to"`
	Prefix     string    `json:"prefix,omitempty"      jsonschema:"Prefix for $ref targets in Swagger 2.0 sources (default: _definitions.json)"`
	StandAlone bool      `json:"stand_alone,omitempty" jsonschema:"Fully de-reference each schema instead of emitting pointer stubs"`
	Kubernetes bool      `json:"kubernetes,omitempty"  jsonschema:"Enable Kubernetes specific processors"`
	Strict     bool      `json:"strict,omitempty"      jsonschema:"Prohibit properties not in the schema (additionalProperties: false)"`
}

type typeFailureInfo struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type generateOutput struct {
	OutputDir          string            `json:"output_dir"`
	Version            string            `json:"version"`
	Files              []string          `json:"files,omitempty"`
	SkippedTypes       []string          `json:"skipped_types,omitempty"`
	Failures           []typeFailureInfo `json:"failures,omitempty"`
	DefinitionsWritten bool              `json:"definitions_written"`
	DurationMS         int64             `json:"duration_ms"`
}

func handleGenerateSchemas(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	e := emitter.New()
	e.OutputDir = input.OutputDir
	if input.Prefix != "" {
		e.Prefix = input.Prefix
	}
	e.StandAlone = input.StandAlone
	e.Kubernetes = input.Kubernetes
	e.Strict = input.Strict

	result, err := e.Emit(doc)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		OutputDir:          result.OutputDir,
		Version:            doc.Version,
		DefinitionsWritten: result.DefinitionsWritten,
		DurationMS:         result.Duration.Milliseconds(),
	}

	output.Files = makeSlice[string](len(result.Written))
	for _, w := range result.Written {
		output.Files = append(output.Files, w.Filename)
	}
	output.SkippedTypes = makeSlice[string](len(result.Skipped))
	output.SkippedTypes = append(output.SkippedTypes, result.Skipped...)
	output.Failures = makeSlice[typeFailureInfo](len(result.Failed))
	for _, f := range result.Failed {
		output.Failures = append(output.Failures, typeFailureInfo{
			Type:  f.Name.Title,
			Error: sanitizeError(f.Err),
		})
	}

	return nil, output, nil
}
