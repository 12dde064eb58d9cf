package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/vocval/export"
	"github.com/c360studio/vocval/vocabulary"
)

func testGraph() *vocabulary.TermGraph {
	g := vocabulary.NewTermGraph("http://www.ivoa.net/rdf/messenger")
	g.Flavour = vocabulary.FlavourSKOS
	g.FlavourDeclarations = 1
	g.Meta = vocabulary.Meta{
		Title:       "Messengers",
		Description: "Types of radiation.",
		Version:     "2020-05-21",
	}

	em := g.Term("EM")
	em.Labels = []string{"Electromagnetic"}
	em.Description = "Any electromagnetic radiation."

	radio := g.Term("Radio")
	radio.Labels = []string{"Radio"}
	radio.Description = "Radio waves."
	radio.Wider = []string{"EM"}
	return g
}

func TestExportTurtle(t *testing.T) {
	output, err := export.Export(testGraph(), export.FormatTurtle)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "@base <http://www.ivoa.net/rdf/messenger>.\n"))
	assert.Contains(t, output, "@prefix skos:")
	assert.Contains(t, output, `dc:title "Messengers"`)
	assert.Contains(t, output, "<http://www.ivoa.net/rdf/messenger#Radio>")
	assert.Contains(t, output, `skos:prefLabel "Radio"`)
	assert.Contains(t, output, "skos:broader <http://www.ivoa.net/rdf/messenger#EM>")
}

func TestExportNTriples(t *testing.T) {
	output, err := export.Export(testGraph(), export.FormatNTriples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " ."), "line should end with ' .': %s", line)
	}
	assert.Contains(t, output,
		"<http://www.ivoa.net/rdf/messenger#Radio> <http://www.w3.org/2004/02/skos/core#broader> <http://www.ivoa.net/rdf/messenger#EM> .")
}

func TestExportJSONLD(t *testing.T) {
	output, err := export.Export(testGraph(), export.FormatJSONLD)
	require.NoError(t, err)

	assert.Contains(t, output, `"@graph"`)
	assert.Contains(t, output, `"@id": "http://www.ivoa.net/rdf/messenger#EM"`)
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := export.Export(testGraph(), export.Format("rdfa"))
	assert.Error(t, err)
}

func TestExportEscapesLiterals(t *testing.T) {
	g := testGraph()
	g.Terms["EM"].Description = "line one\nwith \"quotes\""

	output, err := export.Export(g, export.FormatNTriples)
	require.NoError(t, err)
	assert.Contains(t, output, `line one\nwith \"quotes\"`)
}
