package loader

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/openapi2jsonschema/internal/options"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader

	// Configuration options
	userAgent          string
	httpClient         *http.Client
	insecureSkipVerify bool
	maxFileSize        int64
	logger             Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// LoadWithOptions loads an OpenAPI document using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	doc, err := loader.LoadWithOptions(
//	    loader.WithFilePath("swagger.yaml"),
//	    loader.WithUserAgent("my-tool/1.0"),
//	)
func LoadWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}

	l := &Loader{
		UserAgent:          cfg.userAgent,
		HTTPClient:         cfg.httpClient,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		MaxFileSize:        cfg.maxFileSize,
		Logger:             cfg.logger,
	}

	var doc *Document
	switch {
	case cfg.filePath != nil:
		doc, err = l.Load(*cfg.filePath)
	case cfg.reader != nil:
		name := ""
		if cfg.sourceName != nil {
			name = *cfg.sourceName
		}
		doc, err = l.LoadReader(cfg.reader, name)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("loader: no input source specified")
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		doc.SourcePath = *cfg.sourceName
	}
	return doc, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"loader: must specify an input source (use WithFilePath or WithReader)",
		"loader: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithUserAgent sets the User-Agent string used when fetching URLs
func WithUserAgent(ua string) Option {
	return func(cfg *loadConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for URL fetches
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *loadConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification for URL fetches
func WithInsecureSkipVerify(enabled bool) Option {
	return func(cfg *loadConfig) error {
		cfg.insecureSkipVerify = enabled
		return nil
	}
}

// WithMaxFileSize sets the maximum source document size in bytes
func WithMaxFileSize(size int64) Option {
	return func(cfg *loadConfig) error {
		if size < 0 {
			return fmt.Errorf("max file size cannot be negative: %d", size)
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides the SourcePath recorded on the loaded document.
// Useful when loading from a reader.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
