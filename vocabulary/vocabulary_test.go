package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceFragment(t *testing.T) {
	ref := Reference("http://www.ivoa.net/rdf/messenger")

	tests := []struct {
		name     string
		iri      string
		expected string
	}{
		{
			name:     "term in namespace",
			iri:      "http://www.ivoa.net/rdf/messenger#Radio",
			expected: "Radio",
		},
		{
			name:     "foreign namespace",
			iri:      "http://www.ivoa.net/rdf/datalink/core#this",
			expected: "",
		},
		{
			name:     "vocabulary URI itself",
			iri:      "http://www.ivoa.net/rdf/messenger",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ref.Fragment(tt.iri))
		})
	}
}

func TestParseFlavour(t *testing.T) {
	tests := []struct {
		input    string
		expected Flavour
	}{
		{"SKOS", FlavourSKOS},
		{"RDF Class", FlavourRDFClass},
		{"RDF Property", FlavourRDFProperty},
		{" SKOS ", FlavourSKOS},
		{"skos", FlavourUnknown},
		{"OWL", FlavourUnknown},
		{"", FlavourUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFlavour(tt.input))
		})
	}
}

func TestFlavourHierarchical(t *testing.T) {
	assert.False(t, FlavourSKOS.Hierarchical())
	assert.True(t, FlavourRDFClass.Hierarchical())
	assert.True(t, FlavourRDFProperty.Hierarchical())
	assert.False(t, FlavourUnknown.Hierarchical())
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"Radio", "x-ray", "EPN_TAP", "l2", "a"}
	for _, id := range valid {
		assert.True(t, ValidIdentifier(id), id)
	}

	invalid := []string{"", "gamma ray", "Größe", "a#b", "a/b", "café"}
	for _, id := range invalid {
		assert.False(t, ValidIdentifier(id), id)
	}
}

func TestTermGraphTermMerging(t *testing.T) {
	g := NewTermGraph("http://www.ivoa.net/rdf/messenger")

	// Properties can arrive before the typed node does.
	g.Term("Radio").Labels = append(g.Term("Radio").Labels, "Radio")
	g.Term("Radio").Wider = append(g.Term("Radio").Wider, "EM")

	require.Len(t, g.Terms, 1)
	assert.Equal(t, []string{"Radio"}, g.Terms["Radio"].Labels)
	assert.Equal(t, []string{"EM"}, g.Terms["Radio"].Wider)
}

func TestTermGraphIdentifiersSorted(t *testing.T) {
	g := NewTermGraph("http://www.ivoa.net/rdf/messenger")
	g.Term("Radio")
	g.Term("Gamma-ray")
	g.Term("Optical")

	assert.Equal(t, []string{"Gamma-ray", "Optical", "Radio"}, g.Identifiers())
}

func TestPredicatesFor(t *testing.T) {
	p, ok := PredicatesFor(FlavourSKOS)
	require.True(t, ok)
	assert.Equal(t, SkosPrefLabel, p.Label)
	assert.Equal(t, SkosBroader, p.Wider)

	p, ok = PredicatesFor(FlavourRDFProperty)
	require.True(t, ok)
	assert.Equal(t, RdfsSubPropertyOf, p.Wider)
	assert.Equal(t, RdfProperty, p.TermType)

	_, ok = PredicatesFor(FlavourUnknown)
	assert.False(t, ok)
}

func TestViolationString(t *testing.T) {
	v := Violationf("term-label", "Radio", "term has no label")
	assert.Equal(t, "[term-label] Radio: term has no label", v.String())

	v = Violationf("vocab-meta", "", "no title declared")
	assert.Equal(t, "[vocab-meta] no title declared", v.String())
}
