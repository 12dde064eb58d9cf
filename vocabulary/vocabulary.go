package vocabulary

import (
	"sort"
	"strings"
)

// Reference identifies one published vocabulary by its URI. References are
// immutable; they come either from the registry listing or from the caller.
type Reference string

// String returns the vocabulary URI.
func (r Reference) String() string { return string(r) }

// Fragment returns the local term identifier for an IRI inside this
// vocabulary's namespace, or the empty string when the IRI belongs to a
// different namespace.
func (r Reference) Fragment(iri string) string {
	prefix := string(r) + "#"
	if strings.HasPrefix(iri, prefix) {
		return iri[len(prefix):]
	}
	return ""
}

// Flavour is the structural style a vocabulary declares via
// ivoasem:vocflavour.
type Flavour string

const (
	// FlavourSKOS marks informal word-list vocabularies built from
	// skos:Concept terms with skos:broader hierarchy edges.
	FlavourSKOS Flavour = "SKOS"

	// FlavourRDFClass marks strict class hierarchies built from rdfs:Class
	// terms with rdfs:subClassOf edges.
	FlavourRDFClass Flavour = "RDF Class"

	// FlavourRDFProperty marks strict property hierarchies built from
	// rdf:Property terms with rdfs:subPropertyOf edges.
	FlavourRDFProperty Flavour = "RDF Property"

	// FlavourUnknown is used when a vocabulary declares no flavour, or one
	// outside the recommendation. Flavour-specific rules are skipped for it.
	FlavourUnknown Flavour = ""
)

// Known reports whether f is one of the flavours the recommendation permits.
func (f Flavour) Known() bool {
	switch f {
	case FlavourSKOS, FlavourRDFClass, FlavourRDFProperty:
		return true
	}
	return false
}

// Hierarchical reports whether the flavour demands a strict tree-like
// hierarchy (at most one wider term, no cycles as a MUST).
func (f Flavour) Hierarchical() bool {
	return f == FlavourRDFClass || f == FlavourRDFProperty
}

// ParseFlavour maps a declared flavour string to a Flavour, returning
// FlavourUnknown for anything outside the recommendation.
func ParseFlavour(s string) Flavour {
	switch Flavour(strings.TrimSpace(s)) {
	case FlavourSKOS:
		return FlavourSKOS
	case FlavourRDFClass:
		return FlavourRDFClass
	case FlavourRDFProperty:
		return FlavourRDFProperty
	}
	return FlavourUnknown
}

// Term is one named concept within a vocabulary.
type Term struct {
	// Identifier is the local name (the part behind the #), unique within
	// one vocabulary.
	Identifier string

	// Labels holds every human-readable label attached to the term. A
	// conforming term has exactly one.
	Labels []string

	// Description is the term's definition (skos:definition or
	// rdfs:comment depending on flavour). Optional by structure, required
	// by rule.
	Description string

	// Wider lists the local identifiers this term points to with its
	// flavour's hierarchy predicate (skos:broader, rdfs:subClassOf, or
	// rdfs:subPropertyOf). Entries may dangle; that is a rule violation,
	// not a structural error.
	Wider []string

	// Deprecated marks terms carrying ivoasem:deprecated.
	Deprecated bool

	// Preliminary marks terms carrying ivoasem:preliminary.
	Preliminary bool

	// UseInstead lists replacement term identifiers for deprecated terms.
	UseInstead []string
}

// Label returns the term's first label, or the empty string when it has none.
func (t Term) Label() string {
	if len(t.Labels) == 0 {
		return ""
	}
	return t.Labels[0]
}

// Meta carries the vocabulary-level provenance the recommendation requires.
type Meta struct {
	Title       string
	Description string
	// Version is the vocabulary version or issue date (dc:created /
	// dc:modified / owl:versionInfo, whichever the publisher used).
	Version string
}

// TermGraph is the parsed, flavour-normalized representation of one
// vocabulary. It is built once per vocabulary and owned by that check run;
// nothing mutates it after construction.
type TermGraph struct {
	Reference Reference
	Flavour   Flavour
	Meta      Meta
	Terms     map[string]*Term

	// FlavourDeclarations counts ivoasem:vocflavour triples seen during
	// parsing; a conforming vocabulary has exactly one.
	FlavourDeclarations int

	// ForeignPredicates lists predicates seen in the source that the
	// declared flavour forbids (e.g. skos:broader in an RDF Class
	// vocabulary), as "subject predicate" pairs.
	ForeignPredicates []string
}

// NewTermGraph returns an empty graph for ref.
func NewTermGraph(ref Reference) *TermGraph {
	return &TermGraph{
		Reference: ref,
		Terms:     make(map[string]*Term),
	}
}

// AddTerm inserts a term, merging with any partially-built term of the same
// identifier. Identifiers are unique within a graph by construction.
func (g *TermGraph) AddTerm(t *Term) *Term {
	if existing, ok := g.Terms[t.Identifier]; ok {
		return existing
	}
	g.Terms[t.Identifier] = t
	return t
}

// Term returns the term for an identifier, creating an empty one when the
// identifier has not been seen yet. Used by the graph builders, which
// encounter a term's properties in arbitrary triple order.
func (g *TermGraph) Term(identifier string) *Term {
	if t, ok := g.Terms[identifier]; ok {
		return t
	}
	t := &Term{Identifier: identifier}
	g.Terms[identifier] = t
	return t
}

// Identifiers returns all term identifiers in lexical order. Rule output must
// be deterministic, so every rule iterates via this instead of ranging over
// the map directly.
func (g *TermGraph) Identifiers() []string {
	ids := make([]string, 0, len(g.Terms))
	for id := range g.Terms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
