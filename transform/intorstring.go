package transform

import (
	"github.com/erraggy/openapi2jsonschema/schematree"
)

// NormalizeIntOrString returns a copy of the tree where every mapping
// declaring format: int-or-string is replaced by a oneOf union accepting
// either a string or an integer. This is the Kubernetes convention for
// quantity and IntOrString fields.
//
// The replacement node is final: the pass does not descend into it, and any
// other keys of the replaced mapping are dropped.
func NormalizeIntOrString(n *schematree.Node) *schematree.Node {
	switch n.Kind() {
	case schematree.KindMapping:
		if format, ok := n.GetString("format"); ok && format == "int-or-string" {
			return IntOrStringSchema()
		}
		out := schematree.NewMapping()
		for _, key := range n.Keys() {
			value, _ := n.Get(key)
			out.Set(key, NormalizeIntOrString(value))
		}
		return out

	case schematree.KindSequence:
		out := schematree.NewSequence()
		for _, item := range n.Items() {
			out.Append(NormalizeIntOrString(item))
		}
		return out

	default:
		return n
	}
}

// IntOrStringSchema returns the JSON Schema union for a value that may be
// either a string or an integer:
//
//	{"oneOf": [{"type": "string"}, {"type": "integer"}]}
//
// It is also the schema injected for the built-in Kubernetes IntOrString
// and Quantity definitions.
func IntOrStringSchema() *schematree.Node {
	stringType := schematree.NewMapping()
	stringType.Set("type", schematree.String("string"))
	integerType := schematree.NewMapping()
	integerType.Set("type", schematree.String("integer"))

	schema := schematree.NewMapping()
	schema.Set("oneOf", schematree.NewSequence(stringType, integerType))
	return schema
}
