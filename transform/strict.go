package transform

import (
	"github.com/erraggy/openapi2jsonschema/schematree"
)

// InjectAdditionalProperties returns a copy of the tree where every mapping
// that declares a properties map, and does not already declare
// additionalProperties, gains additionalProperties: false. This prohibits
// object fields not listed in the schema, recreating the strict validation
// behavior kubectl applies to manifests.
//
// The pass recurses into every value regardless of whether an injection
// happened, and is idempotent: a second application returns an equal tree.
func InjectAdditionalProperties(n *schematree.Node) *schematree.Node {
	switch n.Kind() {
	case schematree.KindMapping:
		out := schematree.NewMapping()
		for _, key := range n.Keys() {
			value, _ := n.Get(key)
			out.Set(key, InjectAdditionalProperties(value))
		}
		if props, ok := n.Get("properties"); ok && props.IsMapping() && !n.Has("additionalProperties") {
			out.Set("additionalProperties", schematree.Bool(false))
		}
		return out

	case schematree.KindSequence:
		out := schematree.NewSequence()
		for _, item := range n.Items() {
			out.Append(InjectAdditionalProperties(item))
		}
		return out

	default:
		return n
	}
}
