package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/openapi2jsonschema/emitter"
	"github.com/erraggy/openapi2jsonschema/internal/cliutil"
	"github.com/erraggy/openapi2jsonschema/loader"
)

// GenerateFlags contains flags for the default generate invocation
type GenerateFlags struct {
	Output     string
	Prefix     string
	StandAlone bool
	Kubernetes bool
	Strict     bool
	NoColor    bool
	Insecure   bool
}

// SetupGenerateFlags creates and configures a FlagSet for schema generation.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("openapi2jsonschema", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", emitter.DefaultOutputDir, "directory to store schema files")
	fs.StringVar(&flags.Output, "output", emitter.DefaultOutputDir, "directory to store schema files")
	fs.StringVar(&flags.Prefix, "p", emitter.DefaultPrefix, "prefix for JSON references (only for OpenAPI versions before 3.0)")
	fs.StringVar(&flags.Prefix, "prefix", emitter.DefaultPrefix, "prefix for JSON references (only for OpenAPI versions before 3.0)")
	fs.BoolVar(&flags.StandAlone, "stand-alone", false, "whether or not to de-reference JSON schemas")
	fs.BoolVar(&flags.Kubernetes, "kubernetes", false, "enable Kubernetes specific processors")
	fs.BoolVar(&flags.Strict, "strict", false, "prohibit properties not in the schema (additionalProperties: false)")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored status output")
	fs.BoolVar(&flags.Insecure, "insecure", false, "skip TLS certificate verification when fetching URLs")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: openapi2jsonschema [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Convert a valid OpenAPI specification into a set of JSON Schema files.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Files:\n")
		cliutil.Writef(fs.Output(), "  - <kind>-<version>.json or <kind>-<group>-<version>.json per declared type\n")
		cliutil.Writef(fs.Output(), "  - _definitions.json with the shared definitions (Swagger 2.0 sources)\n")
		cliutil.Writef(fs.Output(), "  - all.json with a oneOf union over every emitted type\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  openapi2jsonschema swagger.json\n")
		cliutil.Writef(fs.Output(), "  openapi2jsonschema -o k8s --kubernetes --strict https://example.com/swagger.json\n")
		cliutil.Writef(fs.Output(), "  openapi2jsonschema --stand-alone openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  cat swagger.yaml | openapi2jsonschema -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Per-type failures are reported and skipped; the run still succeeds\n")
		cliutil.Writef(fs.Output(), "  - Fetch, parse, and output directory failures abort the whole run\n")
	}

	return fs, flags
}

// HandleGenerate executes the default schema generation command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("exactly one file path, URL, or '-' for stdin is required")
	}
	specPath := fs.Arg(0)

	var status *cliutil.StatusPrinter
	if flags.NoColor {
		status = cliutil.NewPlainStatusPrinter(os.Stderr)
	} else {
		status = cliutil.NewStatusPrinter(os.Stderr)
	}
	logger := NewStatusLogger(status)

	l := loader.New()
	l.InsecureSkipVerify = flags.Insecure
	l.Logger = logger

	var doc *loader.Document
	var err error
	if specPath == StdinFilePath {
		status.Infof("Reading schema from stdin")
		doc, err = l.LoadReader(os.Stdin, "<stdin>")
	} else {
		status.Infof("Downloading schema %s", specPath)
		doc, err = l.Load(specPath)
	}
	if err != nil {
		return err
	}
	status.Infof("Parsed schema version %s", doc.Version)

	e := emitter.New()
	e.OutputDir = flags.Output
	e.Prefix = flags.Prefix
	e.StandAlone = flags.StandAlone
	e.Kubernetes = flags.Kubernetes
	e.Strict = flags.Strict
	e.Logger = logger

	result, err := e.Emit(doc)
	if err != nil {
		return err
	}

	status.Infof("Wrote %d schemas to %s in %v", len(result.Written), result.OutputDir, result.Duration.Round(time.Millisecond))
	if len(result.Failed) > 0 {
		status.Errorf("%d types failed to process", len(result.Failed))
	}
	return nil
}
