package transform

import (
	"strings"

	"github.com/erraggy/openapi2jsonschema/loader"
	"github.com/erraggy/openapi2jsonschema/schematree"
)

// oas3SchemaRefPrefix is the reference prefix OpenAPI 3.x uses for schemas
// in the components section.
const oas3SchemaRefPrefix = "#/components/schemas/"

// RewriteRefs returns a copy of the tree with every $ref string value
// rewritten for JSON Schema output.
//
// For swagger-style documents (version before "3"), references are pointed
// into the shared definitions document by prepending prefix, turning
// "#/definitions/Pod" into "_definitions.json#/definitions/Pod". For
// OpenAPI 3.x documents, the "#/components/schemas/" prefix is stripped and
// ".json" appended, turning the reference into a same-directory file
// reference.
//
// Only string values under a "$ref" key are touched; every other key and
// value is carried through unchanged. This pass runs before any pass that
// introspects structure, since later passes key off structural markers
// rather than $ref shape.
func RewriteRefs(n *schematree.Node, prefix, version string) *schematree.Node {
	switch n.Kind() {
	case schematree.KindMapping:
		out := schematree.NewMapping()
		for _, key := range n.Keys() {
			value, _ := n.Get(key)
			if ref, ok := value.StringVal(); ok && key == "$ref" {
				out.Set(key, schematree.String(rewriteRef(ref, prefix, version)))
				continue
			}
			out.Set(key, RewriteRefs(value, prefix, version))
		}
		return out

	case schematree.KindSequence:
		out := schematree.NewSequence()
		for _, item := range n.Items() {
			out.Append(RewriteRefs(item, prefix, version))
		}
		return out

	default:
		return n
	}
}

// rewriteRef rewrites a single reference string.
func rewriteRef(ref, prefix, version string) string {
	if loader.VersionBeforeOAS3(version) {
		return prefix + ref
	}
	return strings.TrimPrefix(ref, oas3SchemaRefPrefix) + ".json"
}
