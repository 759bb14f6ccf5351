// Package schematree provides the generic document tree that all schema
// transformations operate on.
//
// A [Node] is an explicit tagged union over the shapes found in a parsed
// YAML or JSON document: null, boolean, integer, float, string, sequence,
// and mapping. Mappings preserve insertion order so that emitted JSON keeps
// the key ordering of the source document.
//
// Nodes are built from YAML input via [FromYAML] or assembled directly with
// the constructor functions. Transformation passes treat nodes as immutable
// and rebuild the parts of the tree they change; [Node.Clone] produces a
// deep copy when an owned tree is needed.
//
// Example:
//
//	n, err := schematree.FromYAML([]byte("type: object\nproperties:\n  name:\n    type: string\n"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := json.MarshalIndent(n, "", "  ")
//	fmt.Println(string(data)) // keys emitted in source order
package schematree
