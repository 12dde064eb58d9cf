package runner

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/vocval/config"
	"github.com/c360studio/vocval/vocabulary"
)

// vocabHandler serves one conforming SKOS vocabulary in all three
// negotiable representations.
func vocabHandler(baseURL func() string, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := baseURL() + path
		switch r.Header.Get("Accept") {
		case "text/turtle":
			w.Header().Set("Content-Type", "text/turtle")
			fmt.Fprintf(w, `@base <%[1]s>.
@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
@prefix dc: <http://purl.org/dc/terms/> .
@prefix ivoasem: <http://www.ivoa.net/rdf/ivoasem#> .

<%[1]s> dc:title "Test" ;
    dc:description "A test vocabulary." ;
    dc:created "2024-01-01" ;
    ivoasem:vocflavour "SKOS" .

<%[1]s#EM> a skos:Concept ;
    skos:prefLabel "Electromagnetic" ;
    skos:definition "Any electromagnetic radiation." .

<%[1]s#Radio> a skos:Concept ;
    skos:prefLabel "Radio" ;
    skos:definition "Radio waves." ;
    skos:broader <%[1]s#EM> .
`, uri)
		case "application/rdf+xml":
			w.Header().Set("Content-Type", "application/rdf+xml")
			fmt.Fprintf(w, `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:skos="http://www.w3.org/2004/02/skos/core#"
         xmlns:dc="http://purl.org/dc/terms/"
         xmlns:ivoasem="http://www.ivoa.net/rdf/ivoasem#">
  <rdf:Description rdf:about="%[1]s">
    <dc:title>Test</dc:title>
    <dc:description>A test vocabulary.</dc:description>
    <dc:created>2024-01-01</dc:created>
    <ivoasem:vocflavour>SKOS</ivoasem:vocflavour>
  </rdf:Description>
  <skos:Concept rdf:about="%[1]s#EM">
    <skos:prefLabel>Electromagnetic</skos:prefLabel>
    <skos:definition>Any electromagnetic radiation.</skos:definition>
  </skos:Concept>
  <skos:Concept rdf:about="%[1]s#Radio">
    <skos:prefLabel>Radio</skos:prefLabel>
    <skos:definition>Radio waves.</skos:definition>
    <skos:broader rdf:resource="%[1]s#EM"/>
  </skos:Concept>
</rdf:RDF>
`, uri)
		case "application/x-desise+json":
			w.Header().Set("Content-Type", "application/x-desise+json")
			fmt.Fprintf(w, `{
  "uri": "%s",
  "flavour": "SKOS",
  "title": "Test",
  "description": "A test vocabulary.",
  "version": "2024-01-01",
  "terms": {
    "EM": {"label": "Electromagnetic", "description": "Any electromagnetic radiation."},
    "Radio": {"label": "Radio", "description": "Radio waves.", "wider": ["EM"]}
  }
}`, uri)
		default:
			http.Error(w, "not acceptable", http.StatusNotAcceptable)
		}
	}
}

// testConfig points discovery at the test server and skips the uri-form
// rule, which would otherwise flag the httptest URLs.
func testConfig(srv *httptest.Server) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Registry.ListingURL = srv.URL + "/vocabs.conf"
	cfg.Registry.BaseURI = srv.URL + "/rdf/"
	cfg.HTTP.Timeout = 5 * time.Second
	cfg.Rules.Skip = []string{"uri-form"}
	return cfg
}

func newTestServer(t *testing.T) (*httptest.Server, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, mux
}

func TestRunExplicitURIPasses(t *testing.T) {
	srv, mux := newTestServer(t)
	mux.HandleFunc("/rdf/messenger", vocabHandler(func() string { return srv.URL }, "/rdf/messenger"))

	r := New(testConfig(srv))
	rep, err := r.Run(context.Background(), []string{srv.URL + "/rdf/messenger"})
	require.NoError(t, err)

	require.Len(t, rep.Entries, 1)
	assert.True(t, rep.Entries[0].Passed(),
		"unexpected violations: %v", rep.Entries[0].Violations)
	assert.False(t, rep.Failed())
}

func TestRun404RecordsOneViolationAndContinues(t *testing.T) {
	srv, mux := newTestServer(t)
	mux.HandleFunc("/rdf/messenger", vocabHandler(func() string { return srv.URL }, "/rdf/messenger"))
	// No handler for /rdf/gone: the mux answers 404 for every Accept header.

	r := New(testConfig(srv))
	rep, err := r.Run(context.Background(), []string{
		srv.URL + "/rdf/gone",
		srv.URL + "/rdf/messenger",
	})
	require.NoError(t, err)
	require.Len(t, rep.Entries, 2)

	gone := rep.Entries[0]
	require.Len(t, gone.Violations, 1)
	assert.Equal(t, "fetch", gone.Violations[0].RuleID)
	assert.Contains(t, gone.Violations[0].Message, "404")

	assert.True(t, rep.Entries[1].Passed())
	assert.True(t, rep.Failed())
}

func TestRunDiscovery(t *testing.T) {
	srv, mux := newTestServer(t)
	mux.HandleFunc("/vocabs.conf", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[messenger]\ntimestamp: 2024-01-01\n")
	})
	mux.HandleFunc("/rdf/messenger", vocabHandler(func() string { return srv.URL }, "/rdf/messenger"))

	r := New(testConfig(srv))
	rep, err := r.Run(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, rep.Entries, 1)
	assert.Equal(t, vocabulary.Reference(srv.URL+"/rdf/messenger"), rep.Entries[0].Reference)
	assert.True(t, rep.Entries[0].Passed())
}

func TestRunDiscoveryMatchFilter(t *testing.T) {
	srv, mux := newTestServer(t)
	mux.HandleFunc("/vocabs.conf", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[messenger]\n\n[refframe]\n")
	})
	mux.HandleFunc("/rdf/messenger", vocabHandler(func() string { return srv.URL }, "/rdf/messenger"))

	r := New(testConfig(srv), WithMatch("messenger"))
	rep, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rep.Entries, 1)
}

func TestRunDiscoveryUnreachableAborts(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Registry.ListingURL = "http://127.0.0.1:1/vocabs.conf"
	cfg.Registry.BaseURI = "http://127.0.0.1:1/rdf/"
	cfg.HTTP.Timeout = 500 * time.Millisecond

	r := New(cfg)
	rep, err := r.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, rep)
}

func TestRunMissingSerializationIsReported(t *testing.T) {
	srv, mux := newTestServer(t)
	full := vocabHandler(func() string { return srv.URL }, "/rdf/messenger")
	mux.HandleFunc("/rdf/messenger", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") == "application/rdf+xml" {
			http.Error(w, "not acceptable", http.StatusNotAcceptable)
			return
		}
		full(w, r)
	})

	r := New(testConfig(srv))
	rep, err := r.Run(context.Background(), []string{srv.URL + "/rdf/messenger"})
	require.NoError(t, err)

	require.Len(t, rep.Entries, 1)
	violations := rep.Entries[0].Violations
	require.Len(t, violations, 1)
	assert.Equal(t, "serialization", violations[0].RuleID)
	assert.Contains(t, violations[0].Message, "application/rdf+xml")
}

func TestRunCrossFormatMismatch(t *testing.T) {
	srv, mux := newTestServer(t)
	full := vocabHandler(func() string { return srv.URL }, "/rdf/messenger")
	mux.HandleFunc("/rdf/messenger", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") == "application/x-desise+json" {
			w.Header().Set("Content-Type", "application/x-desise+json")
			// The digest announces a term the RDF graph does not have.
			fmt.Fprintf(w, `{"uri": "%s/rdf/messenger", "flavour": "SKOS",
  "terms": {"Radio": {"label": "Radio"}, "Ghost": {"label": "Ghost"}}}`, srv.URL)
			return
		}
		full(w, r)
	})

	r := New(testConfig(srv))
	rep, err := r.Run(context.Background(), []string{srv.URL + "/rdf/messenger"})
	require.NoError(t, err)

	require.Len(t, rep.Entries, 1)
	var crossFormat []vocabulary.Violation
	for _, v := range rep.Entries[0].Violations {
		if v.RuleID == "cross-format" {
			crossFormat = append(crossFormat, v)
		}
	}
	require.Len(t, crossFormat, 1)
	assert.Equal(t, "Ghost", crossFormat[0].Term)
}
