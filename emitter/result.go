package emitter

import "time"

// WrittenType records one declared type that produced an output file.
type WrittenType struct {
	// Name is the parsed type name
	Name TypeName
	// Filename is the file written under the output directory
	Filename string
}

// TypeFailure records one declared type whose processing failed. Failures
// are per-type: the run continues with the next type and the failed type
// simply has no output file.
type TypeFailure struct {
	// Name is the parsed type name
	Name TypeName
	// Err is the error that aborted this type
	Err error
}

// Result summarizes a single emission run.
type Result struct {
	// OutputDir is the directory the files were written to
	OutputDir string
	// Written lists the types that produced schema files, in declaration order
	Written []WrittenType
	// Skipped lists titles that produced no file by design: malformed
	// titles, the excluded group, and excluded internal packages
	Skipped []string
	// Failed lists types whose processing failed
	Failed []TypeFailure
	// DefinitionsWritten reports whether _definitions.json exists after the
	// run. It is false for OpenAPI 3.x sources and after stand-alone runs,
	// where the scaffold file is deleted once dereferencing is done.
	DefinitionsWritten bool
	// Duration is the total emission time
	Duration time.Duration
}
