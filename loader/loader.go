// Package loader fetches and parses OpenAPI documents into a generic
// schematree for the transformation pipeline.
//
// A document may come from a local file, an http(s) URL, or any io.Reader
// (used by the CLI for stdin). JSON is valid YAML, so a single YAML decode
// path handles both formats while preserving mapping key order.
//
// Loading detects the specification version from the top-level swagger or
// openapi field; exactly one of the two must be present. The detected
// version string drives the swagger-style vs OpenAPI-3-style code paths via
// [VersionBeforeOAS3].
package loader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/erraggy/openapi2jsonschema/oaserrors"
	"github.com/erraggy/openapi2jsonschema/schematree"
)

// MaxFileSize is the default maximum size (in bytes) allowed for a source
// document. This prevents resource exhaustion from arbitrarily large inputs.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// Loader fetches and parses OpenAPI source documents.
type Loader struct {
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "openapi2jsonschema" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	// When set, InsecureSkipVerify is ignored (configure TLS on your client's transport).
	HTTPClient *http.Client
	// InsecureSkipVerify disables TLS certificate verification for URL fetches
	// Use with caution - only enable for testing or internal servers with self-signed certs
	InsecureSkipVerify bool
	// MaxFileSize is the maximum source size in bytes (0 means use default)
	MaxFileSize int64
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Loader instance with default settings
func New() *Loader {
	return &Loader{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// Document is a loaded and parsed OpenAPI source document.
type Document struct {
	// SourcePath is the file path, URL, or reader name the document was loaded from
	SourcePath string
	// SourceFormat is the detected format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the value of the top-level swagger or openapi field
	Version string
	// Root is the full document tree
	Root *schematree.Node
	// LoadTime is the time taken to fetch the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// PreOAS3 reports whether the document uses the swagger-style layout.
func (d *Document) PreOAS3() bool {
	return VersionBeforeOAS3(d.Version)
}

// Definitions returns the document's declared-type map: the top-level
// definitions mapping for swagger-style documents, or components.schemas
// for OpenAPI 3.x documents.
func (d *Document) Definitions() (*schematree.Node, error) {
	if d.PreOAS3() {
		defs, ok := d.Root.Get("definitions")
		if !ok || !defs.IsMapping() {
			return nil, &oaserrors.ParseError{
				Path:    d.SourcePath,
				Message: "document has no definitions map",
			}
		}
		return defs, nil
	}

	components, ok := d.Root.Get("components")
	if !ok || !components.IsMapping() {
		return nil, &oaserrors.ParseError{
			Path:    d.SourcePath,
			Message: "document has no components map",
		}
	}
	schemas, ok := components.Get("schemas")
	if !ok || !schemas.IsMapping() {
		return nil, &oaserrors.ParseError{
			Path:    d.SourcePath,
			Message: "document has no components.schemas map",
		}
	}
	return schemas, nil
}

// Load fetches and parses an OpenAPI document from a file path or URL.
// For URLs (http:// or https://), the content is fetched over the network;
// for anything else, the path is read from the local filesystem.
func (l *Loader) Load(specPath string) (*Document, error) {
	var (
		data   []byte
		format SourceFormat
		err    error
	)

	loadStart := time.Now()
	if isURL(specPath) {
		var contentType string
		data, contentType, err = l.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, fmt.Errorf("loader: failed to read file: %w", err)
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	doc, err := l.parseBytes(data, specPath, format)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	return doc, nil
}

// LoadReader parses an OpenAPI document from a reader. The sourceName is
// used in error messages and defaults to "<reader>" when empty.
func (l *Loader) LoadReader(r io.Reader, sourceName string) (*Document, error) {
	if sourceName == "" {
		sourceName = "<reader>"
	}

	loadStart := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read input: %w", err)
	}
	loadTime := time.Since(loadStart)

	doc, err := l.parseBytes(data, sourceName, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	return doc, nil
}

// parseBytes parses raw document bytes and detects the spec version.
func (l *Loader) parseBytes(data []byte, sourcePath string, format SourceFormat) (*Document, error) {
	maxSize := l.MaxFileSize
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}
	if int64(len(data)) > maxSize {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        maxSize,
			Actual:       int64(len(data)),
			Message:      sourcePath,
		}
	}

	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	root, err := schematree.FromYAML(data)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Message: "invalid YAML/JSON document",
			Cause:   err,
		}
	}
	if !root.IsMapping() {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Message: fmt.Sprintf("document root must be a mapping, got %s", root.Kind()),
		}
	}

	version, err := detectVersion(root, sourcePath)
	if err != nil {
		return nil, err
	}

	l.log().Debug("parsed document",
		"source", sourcePath,
		"format", string(format),
		"version", version,
		"size", len(data))

	return &Document{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      version,
		Root:         root,
		SourceSize:   int64(len(data)),
	}, nil
}

// detectVersion extracts the spec version from the top-level swagger or
// openapi field. Exactly one of the two must be present.
func detectVersion(root *schematree.Node, sourcePath string) (string, error) {
	swaggerVal, hasSwagger := root.Get("swagger")
	openapiVal, hasOpenAPI := root.Get("openapi")

	switch {
	case hasSwagger && hasOpenAPI:
		return "", &oaserrors.ParseError{
			Path:    sourcePath,
			Message: "document declares both swagger and openapi version fields",
		}
	case hasSwagger:
		v, ok := swaggerVal.StringVal()
		if !ok {
			return "", &oaserrors.ParseError{
				Path:    sourcePath,
				Message: "swagger version field must be a string",
			}
		}
		return v, nil
	case hasOpenAPI:
		v, ok := openapiVal.StringVal()
		if !ok {
			return "", &oaserrors.ParseError{
				Path:    sourcePath,
				Message: "openapi version field must be a string",
			}
		}
		return v, nil
	default:
		return "", &oaserrors.ParseError{
			Path:    sourcePath,
			Message: "document declares neither a swagger nor an openapi version field",
		}
	}
}
