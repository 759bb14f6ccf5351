package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/openapi2jsonschema/loader"
)

// specInput represents the three ways an OpenAPI document can be provided
// to a tool. Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve loads the spec from whichever input was provided. Additional
// loader options can be passed to customize loading behavior.
func (s specInput) resolve(extraOpts ...loader.Option) (*loader.Document, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.URL != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	// Enforce inline content size limit.
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OPENAPI2JSONSCHEMA_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var opts []loader.Option
	switch {
	case s.File != "":
		opts = append(opts, loader.WithFilePath(s.File))
	case s.URL != "":
		opts = append(opts, loader.WithFilePath(s.URL))
		// Inject SSRF-safe HTTP client for URL fetches unless private IPs
		// are allowed.
		if !cfg.AllowPrivateIPs {
			opts = append(opts, loader.WithHTTPClient(newSafeHTTPClient()))
		}
	case s.Content != "":
		opts = append(opts, loader.WithReader(strings.NewReader(s.Content)), loader.WithSourceName("<inline>"))
	}
	if cfg.MaxSpecSize > 0 {
		opts = append(opts, loader.WithMaxFileSize(cfg.MaxSpecSize))
	}
	opts = append(opts, extraOpts...)

	return loader.LoadWithOptions(opts...)
}
