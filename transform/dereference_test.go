package transform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/openapi2jsonschema/oaserrors"
	"github.com/erraggy/openapi2jsonschema/schematree"
)

func writeSchemaFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestDereferenceFileRef(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "_definitions.json", `{
		"definitions": {
			"PodSpec": {"type": "object", "description": "pod spec"}
		}
	}`)

	schema := schematree.NewMapping()
	ref := schematree.NewMapping()
	ref.Set("$ref", schematree.String("_definitions.json#/definitions/PodSpec"))
	props := schematree.NewMapping()
	props.Set("spec", ref)
	schema.Set("properties", props)

	d := NewDereferencer(dir)
	out, err := d.Dereference(schema)
	if err != nil {
		t.Fatalf("Dereference() error: %v", err)
	}

	outProps, _ := out.Get("properties")
	spec, _ := outProps.Get("spec")
	if spec.Has("$ref") {
		t.Error("$ref still present after dereference")
	}
	if desc, _ := spec.GetString("description"); desc != "pod spec" {
		t.Errorf("inlined description = %q", desc)
	}
}

func TestDereferenceChainedRefs(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "_definitions.json", `{
		"definitions": {
			"A": {"$ref": "#/definitions/B"},
			"B": {"type": "string"}
		}
	}`)

	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("_definitions.json#/definitions/A"))

	out, err := NewDereferencer(dir).Dereference(schema)
	if err != nil {
		t.Fatalf("Dereference() error: %v", err)
	}
	if v, _ := out.GetString("type"); v != "string" {
		t.Errorf("chained ref resolved to %q, want string", v)
	}
}

func TestDereferenceLocalRef(t *testing.T) {
	// Bare "#/..." pointers resolve against the tree being dereferenced.
	schema := schematree.NewMapping()
	target := schematree.NewMapping()
	target.Set("type", schematree.String("integer"))
	defs := schematree.NewMapping()
	defs.Set("Count", target)
	schema.Set("definitions", defs)
	ref := schematree.NewMapping()
	ref.Set("$ref", schematree.String("#/definitions/Count"))
	schema.Set("count", ref)

	out, err := NewDereferencer(t.TempDir()).Dereference(schema)
	if err != nil {
		t.Fatalf("Dereference() error: %v", err)
	}
	count, _ := out.Get("count")
	if v, _ := count.GetString("type"); v != "integer" {
		t.Errorf("local ref resolved to %q", v)
	}
}

func TestDereferenceCircular(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "_definitions.json", `{
		"definitions": {
			"A": {"$ref": "#/definitions/B"},
			"B": {"$ref": "#/definitions/A"}
		}
	}`)

	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("_definitions.json#/definitions/A"))

	_, err := NewDereferencer(dir).Dereference(schema)
	var refErr *oaserrors.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Dereference() error = %v, want *ReferenceError", err)
	}
	if !refErr.IsCircular {
		t.Error("ReferenceError.IsCircular = false, want true")
	}
	if !errors.Is(err, oaserrors.ErrCircularReference) {
		t.Error("error does not match ErrCircularReference")
	}
}

func TestDereferencePathTraversal(t *testing.T) {
	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("../outside.json#/definitions/A"))

	_, err := NewDereferencer(t.TempDir()).Dereference(schema)
	var refErr *oaserrors.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Dereference() error = %v, want *ReferenceError", err)
	}
	if !refErr.IsPathTraversal {
		t.Error("ReferenceError.IsPathTraversal = false, want true")
	}
}

func TestDereferenceAbsolutePath(t *testing.T) {
	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("/etc/passwd#/x"))

	_, err := NewDereferencer(t.TempDir()).Dereference(schema)
	var refErr *oaserrors.ReferenceError
	if !errors.As(err, &refErr) || !refErr.IsPathTraversal {
		t.Errorf("Dereference() error = %v, want path traversal ReferenceError", err)
	}
}

func TestDereferenceMissingPointer(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "_definitions.json", `{"definitions": {}}`)

	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("_definitions.json#/definitions/Missing"))

	_, err := NewDereferencer(dir).Dereference(schema)
	if !errors.Is(err, oaserrors.ErrReference) {
		t.Errorf("Dereference() error = %v, want ErrReference", err)
	}
}

func TestDereferenceMissingFile(t *testing.T) {
	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("nope.json#/definitions/A"))

	_, err := NewDereferencer(t.TempDir()).Dereference(schema)
	if !errors.Is(err, oaserrors.ErrReference) {
		t.Errorf("Dereference() error = %v, want ErrReference", err)
	}
}

func TestDereferenceEscapedPointerTokens(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "defs.json", `{"paths": {"/pods": {"type": "object"}, "a~b": {"type": "string"}}}`)

	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("defs.json#/paths/~1pods"))
	out, err := NewDereferencer(dir).Dereference(schema)
	if err != nil {
		t.Fatalf("Dereference() error: %v", err)
	}
	if v, _ := out.GetString("type"); v != "object" {
		t.Errorf("~1 token resolved to %q", v)
	}

	schema.Set("$ref", schematree.String("defs.json#/paths/a~0b"))
	out, err = NewDereferencer(dir).Dereference(schema)
	if err != nil {
		t.Fatalf("Dereference() error: %v", err)
	}
	if v, _ := out.GetString("type"); v != "string" {
		t.Errorf("~0 token resolved to %q", v)
	}
}

func TestDereferenceSiblingKeysAfterRefSurvive(t *testing.T) {
	// A mapping holding both a $ref and siblings collapses to the referenced
	// content, matching JSON Reference semantics.
	dir := t.TempDir()
	writeSchemaFile(t, dir, "defs.json", `{"definitions": {"A": {"type": "object"}}}`)

	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("defs.json#/definitions/A"))
	schema.Set("description", schematree.String("ignored"))

	out, err := NewDereferencer(dir).Dereference(schema)
	if err != nil {
		t.Fatalf("Dereference() error: %v", err)
	}
	if out.Has("description") {
		t.Error("sibling keys of $ref were kept")
	}
}

func TestDereferenceDepthLimit(t *testing.T) {
	dir := t.TempDir()
	writeSchemaFile(t, dir, "defs.json", `{"definitions": {"A": {"type": "object"}}}`)

	d := NewDereferencer(dir)
	d.maxDepth = 0

	schema := schematree.NewMapping()
	schema.Set("$ref", schematree.String("defs.json#/definitions/A"))

	_, err := d.Dereference(schema)
	if !errors.Is(err, oaserrors.ErrResourceLimit) {
		t.Errorf("Dereference() error = %v, want ErrResourceLimit", err)
	}
}
