package schematree

// Kind identifies the shape of a Node.
type Kind uint8

const (
	// KindNull represents a YAML/JSON null value.
	KindNull Kind = iota
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a floating-point value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindSequence represents an ordered list of nodes.
	KindSequence
	// KindMapping represents an ordered map of string keys to nodes.
	KindMapping
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// entry is a single key/value pair in a mapping node.
type entry struct {
	key   string
	value *Node
}

// Node is a tagged-union document tree node. The zero value is a null node.
//
// Mapping nodes keep their entries in insertion order; Set on an existing
// key replaces the value in place without changing its position.
type Node struct {
	kind     Kind
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	items    []*Node
	entries  []entry
	index    map[string]int
}

// Null returns a null node.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Bool returns a boolean node.
func Bool(v bool) *Node {
	return &Node{kind: KindBool, boolVal: v}
}

// Int returns an integer node.
func Int(v int64) *Node {
	return &Node{kind: KindInt, intVal: v}
}

// Float returns a floating-point node.
func Float(v float64) *Node {
	return &Node{kind: KindFloat, floatVal: v}
}

// String returns a string node.
func String(v string) *Node {
	return &Node{kind: KindString, strVal: v}
}

// NewSequence returns a sequence node containing the given items.
func NewSequence(items ...*Node) *Node {
	n := &Node{kind: KindSequence}
	n.items = append(n.items, items...)
	return n
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{kind: KindMapping, index: make(map[string]int)}
}

// Kind returns the node's kind. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsMapping reports whether the node is a mapping.
func (n *Node) IsMapping() bool { return n.Kind() == KindMapping }

// IsSequence reports whether the node is a sequence.
func (n *Node) IsSequence() bool { return n.Kind() == KindSequence }

// IsString reports whether the node is a string.
func (n *Node) IsString() bool { return n.Kind() == KindString }

// IsNull reports whether the node is null (nil nodes count as null).
func (n *Node) IsNull() bool { return n.Kind() == KindNull }

// StringVal returns the string value and true if the node is a string.
func (n *Node) StringVal() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.strVal, true
}

// BoolVal returns the boolean value and true if the node is a boolean.
func (n *Node) BoolVal() (bool, bool) {
	if n == nil || n.kind != KindBool {
		return false, false
	}
	return n.boolVal, true
}

// IntVal returns the integer value and true if the node is an integer.
func (n *Node) IntVal() (int64, bool) {
	if n == nil || n.kind != KindInt {
		return 0, false
	}
	return n.intVal, true
}

// FloatVal returns the float value and true if the node is a float.
func (n *Node) FloatVal() (float64, bool) {
	if n == nil || n.kind != KindFloat {
		return 0, false
	}
	return n.floatVal, true
}

// Len returns the number of entries in a mapping, the number of items in a
// sequence, and 0 for any other kind.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindMapping:
		return len(n.entries)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

// Get returns the value for key and true if the node is a mapping containing
// the key. For any other kind it returns (nil, false).
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.kind != KindMapping {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[i].value, true
}

// Has reports whether the node is a mapping containing the key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// GetString returns the string value at key and true if the node is a
// mapping whose value for key is a string.
func (n *Node) GetString(key string) (string, bool) {
	v, ok := n.Get(key)
	if !ok {
		return "", false
	}
	return v.StringVal()
}

// Set stores value under key. New keys append at the end; existing keys keep
// their position. Set on a non-mapping node is a no-op, mirroring the
// tolerance rule that passes applied to unexpected shapes leave them alone.
func (n *Node) Set(key string, value *Node) {
	if n == nil || n.kind != KindMapping {
		return
	}
	if value == nil {
		value = Null()
	}
	if i, ok := n.index[key]; ok {
		n.entries[i].value = value
		return
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, entry{key: key, value: value})
}

// Delete removes key from a mapping, preserving the order of the remaining
// entries. It reports whether the key was present.
func (n *Node) Delete(key string) bool {
	if n == nil || n.kind != KindMapping {
		return false
	}
	i, ok := n.index[key]
	if !ok {
		return false
	}
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	delete(n.index, key)
	for j := i; j < len(n.entries); j++ {
		n.index[n.entries[j].key] = j
	}
	return true
}

// Keys returns the mapping's keys in insertion order. The slice is a copy.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindMapping {
		return nil
	}
	keys := make([]string, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.key
	}
	return keys
}

// Items returns the sequence's items. Callers must not modify the returned
// slice; use Append or rebuild the sequence instead.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindSequence {
		return nil
	}
	return n.items
}

// Append adds an item to a sequence node. Append on any other kind is a
// no-op.
func (n *Node) Append(item *Node) {
	if n == nil || n.kind != KindSequence {
		return
	}
	if item == nil {
		item = Null()
	}
	n.items = append(n.items, item)
}

// Clone returns a deep copy of the node. Clone of nil returns nil.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		kind:     n.kind,
		boolVal:  n.boolVal,
		intVal:   n.intVal,
		floatVal: n.floatVal,
		strVal:   n.strVal,
	}
	switch n.kind {
	case KindSequence:
		c.items = make([]*Node, len(n.items))
		for i, item := range n.items {
			c.items[i] = item.Clone()
		}
	case KindMapping:
		c.index = make(map[string]int, len(n.entries))
		c.entries = make([]entry, len(n.entries))
		for i, e := range n.entries {
			c.entries[i] = entry{key: e.key, value: e.value.Clone()}
			c.index[e.key] = i
		}
	}
	return c
}

// Equal reports whether two trees hold the same values. Mapping entries are
// compared by key, ignoring insertion order; sequences compare element by
// element. Integer and float nodes of equal numeric value are distinct.
func (n *Node) Equal(other *Node) bool {
	if n.Kind() != other.Kind() {
		return false
	}
	switch n.Kind() {
	case KindNull:
		return true
	case KindBool:
		return n.boolVal == other.boolVal
	case KindInt:
		return n.intVal == other.intVal
	case KindFloat:
		return n.floatVal == other.floatVal
	case KindString:
		return n.strVal == other.strVal
	case KindSequence:
		if len(n.items) != len(other.items) {
			return false
		}
		for i, item := range n.items {
			if !item.Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(n.entries) != len(other.entries) {
			return false
		}
		for _, e := range n.entries {
			ov, ok := other.Get(e.key)
			if !ok || !e.value.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ContainsString reports whether the node is a sequence containing a string
// item equal to s.
func (n *Node) ContainsString(s string) bool {
	if n == nil || n.kind != KindSequence {
		return false
	}
	for _, item := range n.items {
		if v, ok := item.StringVal(); ok && v == s {
			return true
		}
	}
	return false
}
