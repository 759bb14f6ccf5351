package transform

import (
	"github.com/erraggy/openapi2jsonschema/schematree"
)

// ExpandNullable returns a copy of the tree where optional array and string
// fields also accept null. A leaf declaration type: "array" or
// type: "string" becomes the two-element union ["array", "null"] or
// ["string", "null"] unless the enclosing field is listed in the required
// array two levels up.
//
// The required check needs two generations of ancestor context: the field
// name under consideration is the key the current schema sits under in its
// parent (typically a properties map), and the required list lives on the
// grandparent schema (the object schema owning that properties map). The
// pass is applied to a type's properties map, so top-level fields have no
// grandparent in view and are always expanded.
func ExpandNullable(n *schematree.Node) *schematree.Node {
	return expandNullable(n, nil, nil, "")
}

// expandNullable rebuilds node n. parent and grandparent are the two
// enclosing nodes, and key is the key n sits under in its parent. Children
// of n are processed with n as their parent and n's parent as their
// grandparent.
func expandNullable(n, parent, grandparent *schematree.Node, key string) *schematree.Node {
	switch n.Kind() {
	case schematree.KindMapping:
		out := schematree.NewMapping()
		for _, k := range n.Keys() {
			value, _ := n.Get(k)
			switch value.Kind() {
			case schematree.KindMapping, schematree.KindSequence:
				out.Set(k, expandNullable(value, n, parent, k))
			case schematree.KindString:
				out.Set(k, expandNullableLeaf(k, value, grandparent, key))
			default:
				out.Set(k, value)
			}
		}
		return out

	case schematree.KindSequence:
		out := schematree.NewSequence()
		for _, item := range n.Items() {
			out.Append(expandNullable(item, n, grandparent, key))
		}
		return out

	default:
		return n
	}
}

// expandNullableLeaf rewrites a single string leaf sitting under leafKey in
// its schema. fieldName is the property name that schema belongs to, looked
// up in the grandparent's required list.
func expandNullableLeaf(leafKey string, value, grandparent *schematree.Node, fieldName string) *schematree.Node {
	typeName, _ := value.StringVal()
	if leafKey != "type" || (typeName != "array" && typeName != "string") {
		return value
	}
	if required, ok := grandparent.Get("required"); ok && required.ContainsString(fieldName) {
		return value
	}
	return schematree.NewSequence(
		schematree.String(typeName),
		schematree.String("null"),
	)
}
