package schematree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the tree as compact JSON with mapping keys in
// insertion order. encoding/json re-indents the result, so
// json.MarshalIndent over a *Node produces pretty output with the same
// ordering.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.boolVal))
	case KindInt:
		buf.WriteString(strconv.FormatInt(n.intVal, 10))
	case KindFloat:
		// json.Marshal handles the shortest round-trip representation and
		// rejects NaN/Inf, which have no JSON encoding.
		data, err := json.Marshal(n.floatVal)
		if err != nil {
			return fmt.Errorf("schematree: encoding float: %w", err)
		}
		buf.Write(data)
	case KindString:
		data, err := json.Marshal(n.strVal)
		if err != nil {
			return fmt.Errorf("schematree: encoding string: %w", err)
		}
		buf.Write(data)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, e := range n.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.key)
			if err != nil {
				return fmt.Errorf("schematree: encoding key %q: %w", e.key, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := e.value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("schematree: cannot encode node of kind %s", n.kind)
	}
	return nil
}

// MarshalIndent encodes the tree as pretty-printed JSON using the given
// indent string, preserving mapping key order.
func (n *Node) MarshalIndent(indent string) ([]byte, error) {
	return json.MarshalIndent(n, "", indent)
}
