package transform

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/erraggy/openapi2jsonschema/oaserrors"
	"github.com/erraggy/openapi2jsonschema/schematree"
)

const (
	// MaxRefDepth is the maximum number of nested $ref hops followed while
	// dereferencing. This bounds deeply nested (but non-circular) chains.
	MaxRefDepth = 100

	// MaxRefFileSize is the maximum size (in bytes) allowed for a referenced
	// schema file loaded from disk.
	MaxRefFileSize = 10 * 1024 * 1024 // 10MB
)

// Dereferencer fully inlines $ref pointers in a schema tree, producing a
// stand-alone tree with no remaining indirection.
//
// References of the form "<file>.json#/pointer" (or bare "<file>.json") are
// loaded from the base directory, which is where the emitter has already
// written the shared definitions scaffold. Bare "#/pointer" references
// resolve against the document they appear in. Loaded files are cached
// across calls, so one Dereferencer can serve a whole emission run.
//
// A Dereferencer is not safe for concurrent use.
type Dereferencer struct {
	// baseDir is the directory referenced schema files are loaded from
	baseDir string
	// maxDepth bounds nested $ref hops (0 means MaxRefDepth)
	maxDepth int
	// resolving tracks refs currently being inlined, for cycle detection
	resolving map[string]bool
	// documents caches loaded external documents by cleaned filename
	documents map[string]*schematree.Node
}

// NewDereferencer creates a dereferencer that resolves file references
// relative to baseDir.
func NewDereferencer(baseDir string) *Dereferencer {
	return &Dereferencer{
		baseDir:   baseDir,
		maxDepth:  MaxRefDepth,
		resolving: make(map[string]bool),
		documents: make(map[string]*schematree.Node),
	}
}

// document pairs a tree with the cache key bare pointers resolve against.
type document struct {
	key  string
	root *schematree.Node
}

// Dereference returns a copy of the tree with every $ref pointer replaced
// by the referenced content. A cyclic reference graph cannot be fully
// inlined and fails with a ReferenceError marked IsCircular.
func (d *Dereferencer) Dereference(n *schematree.Node) (*schematree.Node, error) {
	clear(d.resolving)
	return d.resolve(n, document{key: "", root: n}, 0)
}

func (d *Dereferencer) resolve(n *schematree.Node, doc document, depth int) (*schematree.Node, error) {
	switch n.Kind() {
	case schematree.KindMapping:
		if ref, ok := n.GetString("$ref"); ok {
			return d.inline(ref, doc, depth)
		}
		out := schematree.NewMapping()
		for _, key := range n.Keys() {
			value, _ := n.Get(key)
			resolved, err := d.resolve(value, doc, depth)
			if err != nil {
				return nil, err
			}
			out.Set(key, resolved)
		}
		return out, nil

	case schematree.KindSequence:
		out := schematree.NewSequence()
		for _, item := range n.Items() {
			resolved, err := d.resolve(item, doc, depth)
			if err != nil {
				return nil, err
			}
			out.Append(resolved)
		}
		return out, nil

	default:
		return n, nil
	}
}

// inline replaces a single $ref with the fully resolved referenced content.
func (d *Dereferencer) inline(ref string, doc document, depth int) (*schematree.Node, error) {
	if depth >= d.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(d.maxDepth),
			Message:      ref,
		}
	}

	file, pointer := splitRef(ref)
	target := doc
	if file != "" {
		root, key, err := d.loadDocument(file, ref)
		if err != nil {
			return nil, err
		}
		target = document{key: key, root: root}
	}

	cycleKey := target.key + "#" + pointer
	if d.resolving[cycleKey] {
		return nil, &oaserrors.ReferenceError{
			Ref:        ref,
			RefType:    refType(file),
			IsCircular: true,
		}
	}
	d.resolving[cycleKey] = true
	defer delete(d.resolving, cycleKey)

	node, err := lookupPointer(target.root, pointer)
	if err != nil {
		return nil, &oaserrors.ReferenceError{
			Ref:     ref,
			RefType: refType(file),
			Cause:   err,
		}
	}

	return d.resolve(node, target, depth+1)
}

// loadDocument reads and parses a referenced schema file from the base
// directory, caching the result. File references must stay inside the base
// directory.
func (d *Dereferencer) loadDocument(file, ref string) (*schematree.Node, string, error) {
	cleaned := filepath.Clean(file)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return nil, "", &oaserrors.ReferenceError{
			Ref:             ref,
			RefType:         "file",
			IsPathTraversal: true,
			Message:         fmt.Sprintf("reference escapes base directory %s", d.baseDir),
		}
	}

	if cached, ok := d.documents[cleaned]; ok {
		return cached, cleaned, nil
	}

	path := filepath.Join(d.baseDir, cleaned)
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", &oaserrors.ReferenceError{
			Ref:     ref,
			RefType: "file",
			Cause:   err,
		}
	}
	if info.Size() > MaxRefFileSize {
		return nil, "", &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        MaxRefFileSize,
			Actual:       info.Size(),
			Message:      path,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &oaserrors.ReferenceError{
			Ref:     ref,
			RefType: "file",
			Cause:   err,
		}
	}
	root, err := schematree.FromYAML(data)
	if err != nil {
		return nil, "", &oaserrors.ReferenceError{
			Ref:     ref,
			RefType: "file",
			Message: "referenced file is not a valid document",
			Cause:   err,
		}
	}

	d.documents[cleaned] = root
	return root, cleaned, nil
}

// splitRef splits a reference into its file part and JSON Pointer part.
// "x.json#/definitions/A" -> ("x.json", "/definitions/A"); "#/a" -> ("", "/a");
// "x.json" -> ("x.json", "").
func splitRef(ref string) (file, pointer string) {
	if i := strings.Index(ref, "#"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// refType classifies a reference for error reporting.
func refType(file string) string {
	if file == "" {
		return "local"
	}
	return "file"
}

// lookupPointer walks a JSON Pointer (RFC 6901) through the tree.
func lookupPointer(root *schematree.Node, pointer string) (*schematree.Node, error) {
	if pointer == "" || pointer == "/" {
		return root, nil
	}

	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	current := root
	for i, part := range parts {
		part = unescapeJSONPointer(part)

		switch current.Kind() {
		case schematree.KindMapping:
			next, ok := current.Get(part)
			if !ok {
				return nil, fmt.Errorf("reference not found: #/%s (missing key: %s)", strings.Join(parts[:i+1], "/"), part)
			}
			current = next

		case schematree.KindSequence:
			index, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid array index '%s' in reference: #/%s (must be a non-negative integer)", part, strings.Join(parts[:i+1], "/"))
			}
			items := current.Items()
			if index < 0 || index >= len(items) {
				return nil, fmt.Errorf("array index %d out of bounds (length %d) in reference: #/%s", index, len(items), strings.Join(parts[:i+1], "/"))
			}
			current = items[index]

		default:
			return nil, fmt.Errorf("cannot traverse into %s node at #/%s", current.Kind(), strings.Join(parts[:i], "/"))
		}
	}

	return current, nil
}

// unescapeJSONPointer decodes the RFC 6901 escape sequences ~1 and ~0.
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
