// Package registry discovers vocabularies published by the federation. There
// is no proper discovery API; the authoritative listing is the vocabs.conf
// INI file maintained next to the vocabulary sources, with the repository's
// HTML index page as a fallback when the listing is unavailable.
package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"
	"gopkg.in/ini.v1"

	"github.com/c360studio/vocval/vocabulary"
)

// DefaultListingURL is where the vocabs.conf listing is published.
const DefaultListingURL = "https://raw.githubusercontent.com/ivoa-std/Vocabularies/master/vocabs.conf"

// Client queries the registry listing service.
type Client struct {
	listingURL string
	baseURI    string
	client     *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.client = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// NewClient creates a discovery client. listingURL and baseURI fall back to
// the federation defaults when empty.
func NewClient(listingURL, baseURI string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		listingURL: listingURL,
		baseURI:    baseURI,
		client:     &http.Client{Timeout: timeout},
		logger:     slog.Default(),
	}
	if c.listingURL == "" {
		c.listingURL = DefaultListingURL
	}
	if c.baseURI == "" {
		c.baseURI = vocabulary.IvoaBaseURI
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover returns the references of all vocabularies the registry lists, in
// listing order. When the conf listing cannot be fetched or parsed it falls
// back to scraping the repository index page; only when both fail does it
// return an error.
func (c *Client) Discover(ctx context.Context) ([]vocabulary.Reference, error) {
	refs, confErr := c.discoverFromListing(ctx)
	if confErr == nil {
		return refs, nil
	}
	c.logger.Warn("Registry listing unavailable, falling back to index scrape",
		slog.String("listing_url", c.listingURL),
		slog.String("error", confErr.Error()))

	refs, indexErr := c.discoverFromIndex(ctx)
	if indexErr != nil {
		return nil, fmt.Errorf("discover vocabularies: listing: %v; index: %w", confErr, indexErr)
	}
	return refs, nil
}

// discoverFromListing pulls vocabs.conf and computes one vocabulary URI per
// section. A section's "path" key overrides the section name as the path
// element below the base URI.
func (c *Client) discoverFromListing(ctx context.Context) ([]vocabulary.Reference, error) {
	data, err := c.get(ctx, c.listingURL)
	if err != nil {
		return nil, err
	}

	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	var refs []vocabulary.Reference
	for _, sect := range f.Sections() {
		if sect.Name() == ini.DefaultSection {
			continue
		}
		path := sect.Name()
		if sect.HasKey("path") {
			path = sect.Key("path").String()
		}
		refs = append(refs, vocabulary.Reference(c.baseURI+path))
	}

	c.logger.Debug("Discovered vocabularies from listing",
		slog.Int("count", len(refs)))
	return refs, nil
}

// discoverFromIndex scrapes the repository index page for vocabulary links:
// anchors whose href is a single path element (no slash, no scheme, no
// fragment) directly below the base URI.
func (c *Client) discoverFromIndex(ctx context.Context) ([]vocabulary.Reference, error) {
	data, err := c.get(ctx, c.baseURI)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if name, ok := vocabularyLink(attr.Val); ok && !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	sort.Strings(names)
	refs := make([]vocabulary.Reference, 0, len(names))
	for _, name := range names {
		refs = append(refs, vocabulary.Reference(c.baseURI+name))
	}

	c.logger.Debug("Discovered vocabularies from index page",
		slog.Int("count", len(refs)))
	return refs, nil
}

// vocabularyLink extracts a vocabulary name from an index page href.
func vocabularyLink(href string) (string, bool) {
	href = strings.TrimSuffix(href, "/")
	if href == "" || href == ".." {
		return "", false
	}
	if strings.ContainsAny(href, "/?#") || strings.Contains(href, ":") {
		return "", false
	}
	return href, true
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: HTTP %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Filter keeps the references whose URI matches the glob pattern. A pattern
// without a slash or glob metacharacter is treated as a substring match on
// the vocabulary name, which is what one usually wants on the command line.
func Filter(refs []vocabulary.Reference, pattern string) ([]vocabulary.Reference, error) {
	if pattern == "" {
		return refs, nil
	}

	if !strings.ContainsAny(pattern, "*?[{") {
		var out []vocabulary.Reference
		for _, ref := range refs {
			if strings.Contains(ref.String(), pattern) {
				out = append(out, ref)
			}
		}
		return out, nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid match pattern %q", pattern)
	}

	var out []vocabulary.Reference
	for _, ref := range refs {
		ok, err := doublestar.Match(pattern, ref.String())
		if err != nil {
			return nil, fmt.Errorf("match pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, ref)
		}
	}
	return out, nil
}
