// Package transform implements the tree-rewriting passes that turn OpenAPI
// schema fragments into JSON Schema.
//
// Every pass is a pure function over *schematree.Node: it rebuilds the parts
// of the tree it changes and never mutates its input, so passes compose
// freely. Each pass carries its own recursion with explicit kind dispatch,
// and tolerates nodes whose shape does not match what it expects by
// returning them unchanged — the same pass is applied uniformly to
// heterogeneous schema fragments.
//
// The passes:
//
//   - [RewriteRefs]: version-aware $ref rewriting between swagger-style
//     shared-definitions pointers and OpenAPI-3-style per-file references
//   - [InjectAdditionalProperties]: strict-mode additionalProperties: false
//     injection wherever a schema declares properties
//   - [NormalizeIntOrString]: Kubernetes int-or-string format expansion into
//     a oneOf[string, integer] union
//   - [ExpandNullable]: Kubernetes nullable handling for optional array and
//     string fields, using parent and grandparent context to honor required
//     lists
//
// [Dereferencer] fully inlines the remaining $ref pointers for stand-alone
// output, resolving file references against a base directory with cycle
// detection.
package transform
