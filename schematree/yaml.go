package schematree

import (
	"fmt"
	"math"

	"go.yaml.in/yaml/v4"
)

// FromYAML parses YAML (or JSON, which is valid YAML) into a Node tree,
// preserving mapping key order from the source document.
func FromYAML(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("schematree: parsing document: %w", err)
	}
	// An empty input leaves the root node unset.
	if root.Kind == 0 {
		return Null(), nil
	}
	return FromYAMLNode(&root)
}

// FromYAMLNode converts a decoded yaml.Node into a Node tree. Anchors and
// aliases are expanded; a self-referencing alias is an error since the
// resulting tree must be finite.
func FromYAMLNode(node *yaml.Node) (*Node, error) {
	return convertYAMLNode(node, make(map[*yaml.Node]bool))
}

func convertYAMLNode(node *yaml.Node, expanding map[*yaml.Node]bool) (*Node, error) {
	if node == nil {
		return Null(), nil
	}
	if expanding[node] {
		return nil, fmt.Errorf("schematree: cyclic alias at line %d", node.Line)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return convertYAMLNode(node.Content[0], expanding)

	case yaml.AliasNode:
		expanding[node] = true
		defer delete(expanding, node)
		return convertYAMLNode(node.Alias, expanding)

	case yaml.MappingNode:
		expanding[node] = true
		defer delete(expanding, node)
		m := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return nil, fmt.Errorf("schematree: mapping key at line %d is not a string: %w", keyNode.Line, err)
			}
			value, err := convertYAMLNode(node.Content[i+1], expanding)
			if err != nil {
				return nil, err
			}
			m.Set(key, value)
		}
		return m, nil

	case yaml.SequenceNode:
		expanding[node] = true
		defer delete(expanding, node)
		seq := NewSequence()
		for _, item := range node.Content {
			child, err := convertYAMLNode(item, expanding)
			if err != nil {
				return nil, err
			}
			seq.Append(child)
		}
		return seq, nil

	case yaml.ScalarNode:
		return convertYAMLScalar(node)

	default:
		return nil, fmt.Errorf("schematree: unsupported YAML node kind %d at line %d", node.Kind, node.Line)
	}
}

func convertYAMLScalar(node *yaml.Node) (*Node, error) {
	switch node.Tag {
	case "!!null", "":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("schematree: invalid bool at line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			// Values outside int64 range decode as floats.
			var f float64
			if ferr := node.Decode(&f); ferr == nil {
				return Float(f), nil
			}
			return nil, fmt.Errorf("schematree: invalid integer at line %d: %w", node.Line, err)
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("schematree: invalid float at line %d: %w", node.Line, err)
		}
		// JSON cannot carry NaN or infinities; YAML can.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("schematree: non-finite float at line %d has no JSON representation", node.Line)
		}
		return Float(f), nil
	default:
		// Strings, timestamps, and unknown custom tags all carry their
		// scalar text through unchanged.
		return String(node.Value), nil
	}
}
