package emitter

import (
	"fmt"
	"strings"
)

// TypeName is the parsed form of a declared type's dotted title, such as
// "io.k8s.api.apps.v1.Deployment". Group, Version, and Kind are the last
// three dot-separated segments with their original case preserved.
type TypeName struct {
	// Title is the full dotted title from the definitions map
	Title string
	// Group is the third-to-last segment (e.g., "apps")
	Group string
	// Version is the second-to-last segment (e.g., "v1")
	Version string
	// Kind is the final segment (e.g., "Deployment")
	Kind string
}

// ParseTypeName splits a dotted title into group, version, and kind.
// Titles with fewer than three segments cannot name a type and report
// ok=false; the emitter skips them without error.
func ParseTypeName(title string) (TypeName, bool) {
	segments := strings.Split(title, ".")
	if len(segments) < 3 {
		return TypeName{}, false
	}
	last := segments[len(segments)-3:]
	return TypeName{
		Title:   title,
		Group:   last[0],
		Version: last[1],
		Kind:    last[2],
	}, true
}

// Filename returns the output file name for the type: kind-version.json for
// the core group, kind-group-version.json otherwise.
func (t TypeName) Filename() string {
	if strings.EqualFold(t.Group, "core") {
		return fmt.Sprintf("%s-%s.json", t.Kind, t.Version)
	}
	return fmt.Sprintf("%s-%s-%s.json", t.Kind, t.Group, t.Version)
}

// String returns the full dotted title.
func (t TypeName) String() string {
	return t.Title
}
