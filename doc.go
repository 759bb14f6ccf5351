// Package openapi2jsonschema converts OpenAPI specifications into sets of
// standalone JSON Schema files.
//
// An OpenAPI document (Swagger 2.0 or OpenAPI 3.x) carries a map of named
// schema definitions whose $ref syntax and semantics differ from plain JSON
// Schema. This module rewrites those definitions into one JSON Schema file
// per declared type, plus a shared _definitions.json and an all.json union
// schema, suitable for validation, code generation, and editor tooling
// (notably for Kubernetes-style API consumers).
//
// # Overview
//
// The library consists of four primary packages:
//
//   - schematree: a generic, order-preserving document tree that every
//     transformation operates on
//   - loader: fetch and parse a source document from a file, URL, or reader,
//     and detect its specification version
//   - transform: pure tree-rewriting passes ($ref rewriting, strict
//     additionalProperties injection, Kubernetes int-or-string and nullable
//     handling) and a file-backed reference dereferencer
//   - emitter: per-type orchestration that applies the passes and writes the
//     output files
//
// # Quick Start
//
// Convert a Swagger 2.0 document into a schemas/ directory:
//
//	import (
//		"github.com/erraggy/openapi2jsonschema/emitter"
//		"github.com/erraggy/openapi2jsonschema/loader"
//	)
//
//	doc, err := loader.New().Load("swagger.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	e := emitter.New()
//	e.OutputDir = "schemas"
//	result, err := e.Emit(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("wrote %d schemas\n", len(result.Written))
//
// The cmd/openapi2jsonschema binary exposes the same pipeline as a CLI and
// as an MCP server over stdio.
package openapi2jsonschema
