// Package emitter orchestrates the per-type transformation pipeline and
// writes the output schema files.
//
// For each declared type in the source document's definitions map, the
// emitter parses the dotted title, applies the transform passes, and writes
// one JSON Schema file. It also writes the shared _definitions.json
// (swagger-style sources only) and the aggregate all.json union schema.
//
// Per-type failures are recorded and reported but never abort the run; a
// bad type simply produces no file. Only process-level failures (unwritable
// output directory, missing definitions map) return an error from Emit.
package emitter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/openapi2jsonschema/internal/fileutil"
	"github.com/erraggy/openapi2jsonschema/loader"
	"github.com/erraggy/openapi2jsonschema/oaserrors"
	"github.com/erraggy/openapi2jsonschema/schematree"
	"github.com/erraggy/openapi2jsonschema/transform"
)

const (
	// SchemaURL is the $schema value stamped on every emitted schema.
	SchemaURL = "http://json-schema.org/schema#"

	// DefaultOutputDir is the default output directory.
	DefaultOutputDir = "schemas"

	// DefaultPrefix is the default prefix prepended to $ref targets for
	// swagger-style sources.
	DefaultPrefix = "_definitions.json"

	// DefinitionsFile is the shared definitions file name. Pointer stubs
	// always reference this literal name, independent of the configured
	// prefix.
	DefinitionsFile = "_definitions.json"

	// AllFile is the aggregate union schema file name.
	AllFile = "all.json"

	// excludedTypePrefix marks Kubernetes internal-package types that never
	// produce output files.
	excludedTypePrefix = "io.k8s.kubernetes.pkg.apis"

	// excludedGroup is the group sentinel whose types never produce output
	// files.
	excludedGroup = "api"
)

// Built-in Kubernetes primitive definitions injected with the kubernetes
// option. Both accept either a string or an integer.
const (
	intOrStringTitle = "io.k8s.apimachinery.pkg.util.intstr.IntOrString"
	quantityTitle    = "io.k8s.apimachinery.pkg.api.resource.Quantity"
)

// disallowedStandAloneKinds are Kubernetes kinds that embed raw JSON Schema
// and cannot be dereferenced into stand-alone schemas. Lookup is by
// lowercased kind.
var disallowedStandAloneKinds = map[string]bool{
	"jsonschemaprops":                 true,
	"jsonschemapropsorarray":          true,
	"customresourcevalidation":        true,
	"customresourcedefinition":        true,
	"customresourcedefinitionspec":    true,
	"customresourcedefinitionlist":    true,
	"customresourcedefinitionversion": true,
	"jsonschemapropsorstringarray":    true,
	"jsonschemapropsorbool":           true,
}

// Emitter converts a loaded OpenAPI document into JSON Schema files.
type Emitter struct {
	// OutputDir is the directory schema files are written to, created if
	// absent. Defaults to "schemas".
	OutputDir string
	// Prefix is prepended to $ref targets for swagger-style sources.
	// Defaults to "_definitions.json".
	Prefix string
	// StandAlone fully dereferences each schema instead of emitting pointer
	// stubs, and removes the shared-definitions scaffold afterward.
	StandAlone bool
	// Kubernetes enables the Kubernetes-specific passes: int-or-string
	// normalization, nullable-field expansion, the built-in IntOrString and
	// Quantity definitions, and the disallowed-kinds check.
	Kubernetes bool
	// Strict injects additionalProperties: false wherever a schema declares
	// properties.
	Strict bool
	// Logger is the structured logger for progress output
	// If nil, logging is disabled (default)
	Logger loader.Logger
}

// New creates a new Emitter with default settings.
func New() *Emitter {
	return &Emitter{
		OutputDir: DefaultOutputDir,
		Prefix:    DefaultPrefix,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (e *Emitter) log() loader.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return loader.NopLogger{}
}

// Emit runs the full emission pipeline for a loaded document.
func (e *Emitter) Emit(doc *loader.Document) (*Result, error) {
	start := time.Now()

	if e.OutputDir == "" {
		return nil, &oaserrors.ConfigError{Option: "OutputDir", Message: "output directory cannot be empty"}
	}
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("emitter: creating output directory: %w", err)
	}

	components, err := doc.Definitions()
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: e.OutputDir}
	preOAS3 := doc.PreOAS3()

	// Swagger-style sources get a shared definitions document up front.
	// In stand-alone mode it is scaffolding: dereferencing resolves
	// "_definitions.json#/..." file references against it on disk, and it
	// is removed again once all types are emitted.
	if preOAS3 {
		e.log().Info("generating shared definitions")
		if e.Kubernetes {
			components = components.Clone()
			components.Set(intOrStringTitle, transform.IntOrStringSchema())
			components.Set(quantityTitle, transform.IntOrStringSchema())
		}
		shared := components
		if e.Strict {
			shared = transform.InjectAdditionalProperties(components)
		}
		payload := schematree.NewMapping()
		payload.Set("definitions", shared)
		if err := e.writeJSON(DefinitionsFile, payload); err != nil {
			return nil, err
		}
		result.DefinitionsWritten = true
	}

	var deref *transform.Dereferencer
	if e.StandAlone {
		deref = transform.NewDereferencer(e.OutputDir)
	}

	e.log().Info("generating individual schemas")
	oneOf := schematree.NewSequence()
	for _, title := range components.Keys() {
		if strings.HasPrefix(title, excludedTypePrefix) {
			result.Skipped = append(result.Skipped, title)
			continue
		}
		name, ok := ParseTypeName(title)
		if !ok || strings.EqualFold(name.Group, excludedGroup) {
			result.Skipped = append(result.Skipped, title)
			continue
		}

		node, _ := components.Get(title)
		schema, err := e.processType(name, node, doc.Version, deref)
		if err == nil {
			err = e.writeJSON(name.Filename(), schema)
		}
		if err != nil {
			e.log().Error("error processing type", "kind", name.Kind, "error", err)
			result.Failed = append(result.Failed, TypeFailure{Name: name, Err: err})
			continue
		}

		e.log().Debug("generated schema file", "file", name.Filename())
		result.Written = append(result.Written, WrittenType{Name: name, Filename: name.Filename()})
		oneOf.Append(e.unionEntry(name, preOAS3))
	}

	e.log().Info("generating schema for all types")
	all := schematree.NewMapping()
	all.Set("oneOf", oneOf)
	if err := e.writeJSON(AllFile, all); err != nil {
		return nil, err
	}

	if e.StandAlone && result.DefinitionsWritten {
		if err := os.Remove(filepath.Join(e.OutputDir, DefinitionsFile)); err != nil {
			return nil, fmt.Errorf("emitter: removing definitions scaffold: %w", err)
		}
		result.DefinitionsWritten = false
	}

	result.Duration = time.Since(start)
	return result, nil
}

// processType runs the transformation pipeline for a single declared type
// and returns the tree to write. Any error here is a per-type failure.
func (e *Emitter) processType(name TypeName, node *schematree.Node, version string, deref *transform.Dereferencer) (*schematree.Node, error) {
	if !node.IsMapping() {
		return nil, &oaserrors.ParseError{
			Message: fmt.Sprintf("definition for %s is not a mapping, got %s", name.Title, node.Kind()),
		}
	}

	e.log().Debug("processing type", "kind", name.Kind, "version", name.Version)

	schema := node.Clone()
	schema.Set("$schema", schematree.String(SchemaURL))
	if !schema.Has("type") {
		schema.Set("type", schematree.String("object"))
	}

	schema = transform.RewriteRefs(schema, e.Prefix, version)

	if e.Kubernetes && e.StandAlone && disallowedStandAloneKinds[strings.ToLower(name.Kind)] {
		return nil, &oaserrors.UnsupportedKindError{Kind: name.Kind}
	}

	if !e.StandAlone {
		return e.pointerStub(name, schema), nil
	}

	resolved, err := deref.Dereference(schema)
	if err != nil {
		return nil, err
	}
	schema = resolved

	// A dereferenced additionalProperties subtree may still carry source
	// document references; point them at the output layout too.
	if ap, ok := schema.Get("additionalProperties"); ok && isTruthy(ap) {
		schema.Set("additionalProperties", transform.RewriteRefs(ap, e.Prefix, version))
	}

	if props, ok := schema.Get("properties"); ok {
		if e.Strict {
			props = transform.InjectAdditionalProperties(props)
		}
		if e.Kubernetes {
			props = transform.NormalizeIntOrString(props)
			props = transform.ExpandNullable(props)
		}
		schema.Set("properties", props)
	}

	return schema, nil
}

// pointerStub builds the minimal schema document that points into the
// shared definitions file instead of embedding content.
func (e *Emitter) pointerStub(name TypeName, schema *schematree.Node) *schematree.Node {
	stub := schematree.NewMapping()

	schemaURL, _ := schema.Get("$schema")
	stub.Set("$schema", schemaURL)
	stub.Set("$ref", schematree.String(DefinitionsFile+"#/definitions/"+name.Title))

	description, ok := schema.Get("description")
	if !ok {
		description = schematree.Null()
	}
	stub.Set("description", description)

	typeVal, _ := schema.Get("type")
	stub.Set("type", typeVal)
	return stub
}

// unionEntry builds the all.json oneOf entry for an emitted type.
func (e *Emitter) unionEntry(name TypeName, preOAS3 bool) *schematree.Node {
	var ref string
	switch {
	case preOAS3 && e.StandAlone:
		// The per-type file replaces the definitions-file portion of the
		// prefix, keeping any custom surrounding path intact.
		ref = strings.ReplaceAll(e.Prefix, DefinitionsFile, name.Filename()) + "#/" + name.Title
	case preOAS3:
		ref = e.Prefix + "#/definitions/" + name.Title
	default:
		ref = strings.TrimPrefix(name.Title, "#/components/schemas/") + ".json"
	}

	entry := schematree.NewMapping()
	entry.Set("$ref", schematree.String(ref))
	return entry
}

// writeJSON writes a tree as pretty-printed JSON under the output directory.
func (e *Emitter) writeJSON(filename string, node *schematree.Node) error {
	data, err := node.MarshalIndent("  ")
	if err != nil {
		return fmt.Errorf("emitter: encoding %s: %w", filename, err)
	}
	data = append(data, '\n')

	path := filepath.Join(e.OutputDir, filename)
	if err := os.WriteFile(path, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("emitter: writing %s: %w", filename, err)
	}
	return nil
}

// isTruthy mirrors the truthiness the additionalProperties rewrite keys
// off: false, null, zero, the empty string, and empty containers are all
// falsy.
func isTruthy(n *schematree.Node) bool {
	switch n.Kind() {
	case schematree.KindNull:
		return false
	case schematree.KindBool:
		b, _ := n.BoolVal()
		return b
	case schematree.KindInt:
		i, _ := n.IntVal()
		return i != 0
	case schematree.KindFloat:
		f, _ := n.FloatVal()
		return f != 0
	case schematree.KindString:
		s, _ := n.StringVal()
		return s != ""
	case schematree.KindSequence, schematree.KindMapping:
		return n.Len() > 0
	default:
		return false
	}
}
