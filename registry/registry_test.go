package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/vocval/vocabulary"
)

const listingFixture = `[messenger]
timestamp: 2020-05-21

[datalink/core]
path: datalink/core
timestamp: 2019-11-01

[refframe]
timestamp: 2022-02-22
`

func TestDiscoverFromListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "http://www.ivoa.net/rdf/", 5*time.Second)
	refs, err := c.Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []vocabulary.Reference{
		"http://www.ivoa.net/rdf/messenger",
		"http://www.ivoa.net/rdf/datalink/core",
		"http://www.ivoa.net/rdf/refframe",
	}, refs)
}

func TestDiscoverIndexFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/vocabs.conf", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	mux.HandleFunc("/rdf/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
<a href="../">parent</a>
<a href="messenger">messenger</a>
<a href="refframe/">refframe</a>
<a href="http://example.org/elsewhere">off-site</a>
<a href="messenger">messenger again</a>
</body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL+"/vocabs.conf", srv.URL+"/rdf/", 5*time.Second)
	refs, err := c.Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []vocabulary.Reference{
		vocabulary.Reference(srv.URL + "/rdf/messenger"),
		vocabulary.Reference(srv.URL + "/rdf/refframe"),
	}, refs)
}

func TestDiscoverBothUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/vocabs.conf", "http://127.0.0.1:1/rdf/",
		500*time.Millisecond)
	_, err := c.Discover(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discover vocabularies")
}

func TestFilter(t *testing.T) {
	refs := []vocabulary.Reference{
		"http://www.ivoa.net/rdf/messenger",
		"http://www.ivoa.net/rdf/datalink/core",
		"http://www.ivoa.net/rdf/refframe",
	}

	t.Run("empty pattern keeps all", func(t *testing.T) {
		got, err := Filter(refs, "")
		require.NoError(t, err)
		assert.Equal(t, refs, got)
	})

	t.Run("substring", func(t *testing.T) {
		got, err := Filter(refs, "ref")
		require.NoError(t, err)
		assert.Equal(t, []vocabulary.Reference{"http://www.ivoa.net/rdf/refframe"}, got)
	})

	t.Run("doublestar glob", func(t *testing.T) {
		got, err := Filter(refs, "**/rdf/datalink/*")
		require.NoError(t, err)
		assert.Equal(t, []vocabulary.Reference{"http://www.ivoa.net/rdf/datalink/core"}, got)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := Filter(refs, "[")
		assert.Error(t, err)
	})
}
