// Package fetch retrieves vocabulary representations over HTTP using content
// negotiation. It performs network I/O only; nothing persists between runs.
package fetch

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/c360studio/vocval/vocabulary"
)

// Format names one negotiable representation of a vocabulary.
type Format string

const (
	// FormatTurtle requests the Turtle serialization.
	FormatTurtle Format = "text/turtle"

	// FormatRDFXML requests the RDF/XML serialization.
	FormatRDFXML Format = "application/rdf+xml"

	// FormatDesise requests the desise JSON digest of the vocabulary.
	FormatDesise Format = "application/x-desise+json"
)

// acceptable lists content types a server may answer with for a requested
// format. Some servers answer Turtle requests with the generic n3 type.
var acceptable = map[Format][]string{
	FormatTurtle: {"text/turtle", "text/n3", "application/x-turtle"},
	FormatRDFXML: {"application/rdf+xml", "application/xml", "text/xml"},
	FormatDesise: {"application/x-desise+json", "application/json"},
}

// Fetcher retrieves vocabulary representations with content negotiation.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithUserAgent sets the User-Agent header on all requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// NewFetcher creates a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves one representation of a vocabulary. It returns a FetchError
// when the remote is unreachable or answers with a non-success status, and an
// UnsupportedFormatError when the answer does not carry a content type
// acceptable for the requested format.
func (f *Fetcher) Fetch(ctx context.Context, ref vocabulary.Reference, format Format) ([]byte, error) {
	uri := ref.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, NewFetchError(uri, err)
	}
	req.Header.Set("Accept", string(format))
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	f.logger.Debug("Fetching vocabulary representation",
		slog.String("uri", uri),
		slog.String("format", string(format)))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, NewFetchError(uri, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewHTTPError(uri, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !negotiated(format, contentType) {
		return nil, &UnsupportedFormatError{URI: uri, Format: format, GotType: contentType}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewFetchError(uri, err)
	}
	return body, nil
}

// negotiated reports whether contentType satisfies the requested format. An
// empty content type is accepted; the parser will complain soon enough if the
// body is not what was asked for.
func negotiated(format Format, contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}
	for _, accept := range acceptable[format] {
		if mediaType == accept {
			return true
		}
	}
	return false
}

// String returns the format's MIME type.
func (f Format) String() string { return string(f) }
