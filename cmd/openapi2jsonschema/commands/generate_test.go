package commands

import (
	"os"
	"path/filepath"
	"testing"
)

const testSwagger = `{
  "swagger": "2.0",
  "definitions": {
    "io.k8s.api.core.v1.Pod": {
      "description": "a pod",
      "properties": {"metadata": {"type": "object"}}
    }
  }
}`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swagger.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing spec: %v", err)
	}
	return path
}

func TestSetupGenerateFlagsDefaults(t *testing.T) {
	fs, flags := SetupGenerateFlags()
	if err := fs.Parse([]string{"swagger.json"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if flags.Output != "schemas" {
		t.Errorf("Output = %q, want schemas", flags.Output)
	}
	if flags.Prefix != "_definitions.json" {
		t.Errorf("Prefix = %q, want _definitions.json", flags.Prefix)
	}
	if flags.StandAlone || flags.Kubernetes || flags.Strict || flags.NoColor || flags.Insecure {
		t.Errorf("boolean flags not false by default: %+v", flags)
	}
	if fs.NArg() != 1 || fs.Arg(0) != "swagger.json" {
		t.Errorf("positional args = %v", fs.Args())
	}
}

func TestSetupGenerateFlagsLongAndShort(t *testing.T) {
	fs, flags := SetupGenerateFlags()
	err := fs.Parse([]string{
		"-o", "out",
		"--prefix", "defs.json",
		"--stand-alone",
		"--kubernetes",
		"--strict",
		"--no-color",
		"--insecure",
		"spec.yaml",
	})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if flags.Output != "out" || flags.Prefix != "defs.json" {
		t.Errorf("flags = %+v", flags)
	}
	if !flags.StandAlone || !flags.Kubernetes || !flags.Strict || !flags.NoColor || !flags.Insecure {
		t.Errorf("boolean flags not set: %+v", flags)
	}
}

func TestHandleGenerate(t *testing.T) {
	spec := writeSpec(t, testSwagger)
	out := filepath.Join(t.TempDir(), "schemas")

	if err := HandleGenerate([]string{"-o", out, "--no-color", spec}); err != nil {
		t.Fatalf("HandleGenerate() error: %v", err)
	}

	for _, name := range []string{"Pod-v1.json", "_definitions.json", "all.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}
}

func TestHandleGenerateNoArgs(t *testing.T) {
	if err := HandleGenerate([]string{"--no-color"}); err == nil {
		t.Error("HandleGenerate() with no positional arg succeeded, want error")
	}
}

func TestHandleGenerateMissingFile(t *testing.T) {
	out := t.TempDir()
	err := HandleGenerate([]string{"-o", out, "--no-color", filepath.Join(out, "absent.json")})
	if err == nil {
		t.Error("HandleGenerate() on missing file succeeded, want error")
	}
}

func TestHandleGenerateHelp(t *testing.T) {
	// -h prints usage and exits cleanly.
	if err := HandleGenerate([]string{"-h"}); err != nil {
		t.Errorf("HandleGenerate(-h) error: %v", err)
	}
}
