package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/vocval/vocabulary"
)

func TestReportFailed(t *testing.T) {
	r := New()
	require.NotEmpty(t, r.RunID)
	assert.False(t, r.Failed())

	r.Add("http://www.ivoa.net/rdf/messenger", nil)
	assert.False(t, r.Failed())
	assert.Equal(t, 0, r.FailureCount())

	r.Add("http://www.ivoa.net/rdf/refframe", []vocabulary.Violation{
		vocabulary.Violationf("term-label", "FK4", "term has no label"),
	})
	assert.True(t, r.Failed())
	assert.Equal(t, 1, r.FailureCount())
}

func TestFormat(t *testing.T) {
	r := New()
	r.Add("http://www.ivoa.net/rdf/messenger", nil)
	r.Add("http://www.ivoa.net/rdf/refframe", []vocabulary.Violation{
		vocabulary.Violationf("term-label", "FK4", "term has no label"),
		vocabulary.Violationf("vocab-meta", "", "no title declared"),
	})

	var sb strings.Builder
	require.NoError(t, Format(&sb, r))
	out := sb.String()

	assert.Contains(t, out, "ok   http://www.ivoa.net/rdf/messenger\n")
	assert.Contains(t, out, "FAIL http://www.ivoa.net/rdf/refframe\n")
	assert.Contains(t, out, "    [term-label] FK4: term has no label\n")
	assert.Contains(t, out, "    [vocab-meta] no title declared\n")
	assert.Contains(t, out, "1 of 2 vocabularies failed validation")
}

func TestFormatAllPassed(t *testing.T) {
	r := New()
	r.Add("http://www.ivoa.net/rdf/messenger", nil)

	var sb strings.Builder
	require.NoError(t, Format(&sb, r))
	assert.Contains(t, sb.String(), "all 1 vocabularies passed validation")
}
