package schematree

import (
	"strings"
	"testing"
)

func TestFromYAMLPreservesKeyOrder(t *testing.T) {
	src := []byte("swagger: \"2.0\"\ndefinitions:\n  zebra: {}\n  alpha: {}\n  mike: {}\n")
	root, err := FromYAML(src)
	if err != nil {
		t.Fatalf("FromYAML() error: %v", err)
	}

	defs, ok := root.Get("definitions")
	if !ok {
		t.Fatal("definitions key missing")
	}
	want := []string{"zebra", "alpha", "mike"}
	got := defs.Keys()
	for i, k := range want {
		if got[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], k)
		}
	}
}

func TestFromYAMLScalarTypes(t *testing.T) {
	src := []byte(`
str: hello
quoted: "2.0"
num: 42
neg: -7
pi: 3.14
yes: true
nothing: null
`)
	root, err := FromYAML(src)
	if err != nil {
		t.Fatalf("FromYAML() error: %v", err)
	}

	if v, ok := root.GetString("str"); !ok || v != "hello" {
		t.Errorf("str = %q, %v", v, ok)
	}
	if v, ok := root.GetString("quoted"); !ok || v != "2.0" {
		t.Errorf("quoted = %q, %v; want string \"2.0\"", v, ok)
	}
	n, _ := root.Get("num")
	if i, ok := n.IntVal(); !ok || i != 42 {
		t.Errorf("num = %d, %v", i, ok)
	}
	n, _ = root.Get("neg")
	if i, ok := n.IntVal(); !ok || i != -7 {
		t.Errorf("neg = %d, %v", i, ok)
	}
	n, _ = root.Get("pi")
	if f, ok := n.FloatVal(); !ok || f != 3.14 {
		t.Errorf("pi = %v, %v", f, ok)
	}
	n, _ = root.Get("yes")
	if b, ok := n.BoolVal(); !ok || !b {
		t.Errorf("yes = %v, %v", b, ok)
	}
	n, _ = root.Get("nothing")
	if !n.IsNull() {
		t.Errorf("nothing kind = %v, want null", n.Kind())
	}
}

func TestFromYAMLAcceptsJSON(t *testing.T) {
	src := []byte(`{"openapi": "3.0.0", "components": {"schemas": {"Widget": {"type": "object"}}}}`)
	root, err := FromYAML(src)
	if err != nil {
		t.Fatalf("FromYAML() on JSON error: %v", err)
	}
	if v, _ := root.GetString("openapi"); v != "3.0.0" {
		t.Errorf("openapi = %q, want 3.0.0", v)
	}
}

func TestFromYAMLExpandsAnchors(t *testing.T) {
	src := []byte(`
base: &base
  type: object
copy: *base
`)
	root, err := FromYAML(src)
	if err != nil {
		t.Fatalf("FromYAML() error: %v", err)
	}
	cp, ok := root.Get("copy")
	if !ok {
		t.Fatal("copy key missing")
	}
	if v, _ := cp.GetString("type"); v != "object" {
		t.Errorf("copy.type = %q, want object", v)
	}
}

func TestFromYAMLSequences(t *testing.T) {
	src := []byte("required:\n  - name\n  - kind\n")
	root, err := FromYAML(src)
	if err != nil {
		t.Fatalf("FromYAML() error: %v", err)
	}
	req, _ := root.Get("required")
	if !req.IsSequence() || req.Len() != 2 {
		t.Fatalf("required kind=%v len=%d", req.Kind(), req.Len())
	}
	if !req.ContainsString("kind") {
		t.Error("required does not contain kind")
	}
}

func TestFromYAMLRejectsNonFiniteFloats(t *testing.T) {
	for _, src := range []string{"x: .nan\n", "x: .inf\n", "x: -.inf\n"} {
		if _, err := FromYAML([]byte(src)); err == nil {
			t.Errorf("FromYAML(%q) succeeded, want error", src)
		} else if !strings.Contains(err.Error(), "JSON") {
			t.Errorf("FromYAML(%q) error = %v, want mention of JSON", src, err)
		}
	}
}

func TestFromYAMLInvalidDocument(t *testing.T) {
	if _, err := FromYAML([]byte("key: [unclosed")); err == nil {
		t.Error("FromYAML() on malformed input succeeded, want error")
	}
}

func TestFromYAMLEmptyDocument(t *testing.T) {
	root, err := FromYAML([]byte(""))
	if err != nil {
		t.Fatalf("FromYAML(empty) error: %v", err)
	}
	if !root.IsNull() {
		t.Errorf("empty document kind = %v, want null", root.Kind())
	}
}
