package transform

import (
	"testing"

	"github.com/erraggy/openapi2jsonschema/schematree"
)

func objectWithProperties(fields ...string) *schematree.Node {
	props := schematree.NewMapping()
	for _, f := range fields {
		fs := schematree.NewMapping()
		fs.Set("type", schematree.String("string"))
		props.Set(f, fs)
	}
	obj := schematree.NewMapping()
	obj.Set("type", schematree.String("object"))
	obj.Set("properties", props)
	return obj
}

func TestInjectAdditionalProperties(t *testing.T) {
	out := InjectAdditionalProperties(objectWithProperties("name"))

	ap, ok := out.Get("additionalProperties")
	if !ok {
		t.Fatal("additionalProperties not injected")
	}
	if b, _ := ap.BoolVal(); b {
		t.Error("additionalProperties = true, want false")
	}
}

func TestInjectAdditionalPropertiesNested(t *testing.T) {
	inner := objectWithProperties("leaf")
	props := schematree.NewMapping()
	props.Set("spec", inner)
	obj := schematree.NewMapping()
	obj.Set("properties", props)

	out := InjectAdditionalProperties(obj)

	outProps, _ := out.Get("properties")
	outSpec, _ := outProps.Get("spec")
	if !outSpec.Has("additionalProperties") {
		t.Error("nested object schema did not gain additionalProperties")
	}
	if !out.Has("additionalProperties") {
		t.Error("outer object schema did not gain additionalProperties")
	}
}

func TestInjectAdditionalPropertiesRespectsExisting(t *testing.T) {
	obj := objectWithProperties("name")
	existing := schematree.NewMapping()
	existing.Set("type", schematree.String("string"))
	obj.Set("additionalProperties", existing)

	out := InjectAdditionalProperties(obj)
	ap, _ := out.Get("additionalProperties")
	if !ap.IsMapping() {
		t.Errorf("existing additionalProperties replaced, kind = %v", ap.Kind())
	}
}

func TestInjectAdditionalPropertiesSkipsBareSchemas(t *testing.T) {
	obj := schematree.NewMapping()
	obj.Set("type", schematree.String("object"))

	out := InjectAdditionalProperties(obj)
	if out.Has("additionalProperties") {
		t.Error("schema without properties gained additionalProperties")
	}
}

func TestInjectAdditionalPropertiesIdempotent(t *testing.T) {
	once := InjectAdditionalProperties(objectWithProperties("a", "b"))
	twice := InjectAdditionalProperties(once)
	if !once.Equal(twice) {
		t.Error("second application changed the tree")
	}
}

func TestInjectAdditionalPropertiesDoesNotMutateInput(t *testing.T) {
	obj := objectWithProperties("name")
	_ = InjectAdditionalProperties(obj)
	if obj.Has("additionalProperties") {
		t.Error("input tree was mutated")
	}
}
