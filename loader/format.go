package loader

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	openapi2jsonschema "github.com/erraggy/openapi2jsonschema"
)

// SourceFormat represents the format of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON typically starts with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL detects the format from the URL path, falling back to
// the response Content-Type header.
func detectFormatFromURL(urlStr, contentType string) SourceFormat {
	if format := detectFormatFromPath(urlStr); format != SourceFormatUnknown {
		return format
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return SourceFormatUnknown
	}
	switch {
	case strings.Contains(mediaType, "json"):
		return SourceFormatJSON
	case strings.Contains(mediaType, "yaml"), strings.Contains(mediaType, "yml"):
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchURL fetches content from a URL and returns the bytes and Content-Type header
func (l *Loader) fetchURL(urlStr string) ([]byte, string, error) {
	// Use custom client if provided, otherwise create default with timeout
	var client *http.Client
	switch {
	case l.HTTPClient != nil:
		client = l.HTTPClient
		if l.InsecureSkipVerify {
			l.log().Warn("InsecureSkipVerify ignored when HTTPClient provided; configure TLS on your client's transport")
		}
	case l.InsecureSkipVerify:
		transport := &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // User explicitly requested insecure mode
				MinVersion:         tls.VersionTLS12,
			},
		}
		client = &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		}
	default:
		client = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to create request: %w", err)
	}

	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = openapi2jsonschema.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("loader: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to read response body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
