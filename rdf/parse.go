// Package rdf builds vocabulary.TermGraphs from the serializations a
// vocabulary server can hand out: Turtle, RDF/XML, and the desise JSON
// digest. The builders normalize both structural flavours into the same
// graph shape; deciding which rules apply is the evaluator's business.
package rdf

import (
	"bytes"
	"fmt"
	"strings"

	knakk "github.com/knakk/rdf"

	"github.com/c360studio/vocval/vocabulary"
)

// triple is the minimal string view of an RDF statement the graph builder
// works with. objIRI is true when the object was an IRI rather than a
// literal.
type triple struct {
	subj   string
	pred   string
	obj    string
	objIRI bool
}

// ParseTurtle builds a TermGraph from a Turtle document.
func ParseTurtle(ref vocabulary.Reference, data []byte) (*vocabulary.TermGraph, error) {
	return parseSerialization(ref, data, knakk.Turtle, "turtle")
}

// ParseRDFXML builds a TermGraph from an RDF/XML document.
func ParseRDFXML(ref vocabulary.Reference, data []byte) (*vocabulary.TermGraph, error) {
	return parseSerialization(ref, data, knakk.RDFXML, "rdf/xml")
}

func parseSerialization(ref vocabulary.Reference, data []byte, format knakk.Format, name string) (*vocabulary.TermGraph, error) {
	dec := knakk.NewTripleDecoder(bytes.NewReader(data), format)
	decoded, err := dec.DecodeAll()
	if err != nil {
		return nil, NewParseError(ref.String(), name, err)
	}

	triples := make([]triple, 0, len(decoded))
	for _, t := range decoded {
		triples = append(triples, triple{
			subj:   t.Subj.String(),
			pred:   t.Pred.String(),
			obj:    t.Obj.String(),
			objIRI: t.Obj.Type() == knakk.TermIRI,
		})
	}
	return buildGraph(ref, triples), nil
}

// buildGraph normalizes raw triples into the term/edge model. Triple order is
// document order, so repeated runs over the same bytes produce identical
// graphs.
func buildGraph(ref vocabulary.Reference, triples []triple) *vocabulary.TermGraph {
	g := vocabulary.NewTermGraph(ref)

	// Pass 1: flavour declaration. Everything else depends on it.
	for _, t := range triples {
		if t.pred == vocabulary.IvoasemVocFlavour {
			g.FlavourDeclarations++
			if g.Flavour == vocabulary.FlavourUnknown {
				g.Flavour = vocabulary.ParseFlavour(t.obj)
			}
		}
	}

	preds, flavourKnown := vocabulary.PredicatesFor(g.Flavour)
	forbidden := make(map[string]bool)
	for _, p := range vocabulary.ForbiddenPredicates(g.Flavour) {
		forbidden[p] = true
	}
	forbiddenTypes := forbiddenTermTypes(g.Flavour)

	// Pass 2: terms, edges, metadata.
	vocURI := ref.String()
	for _, t := range triples {
		ident := ref.Fragment(t.subj)

		switch {
		case t.subj == vocURI:
			buildMeta(g, t)

		case ident != "":
			buildTerm(g, preds, flavourKnown, ident, t)
		}

		if forbidden[t.pred] {
			g.ForeignPredicates = append(g.ForeignPredicates,
				fmt.Sprintf("%s uses %s", subjectName(ref, t.subj), curie(t.pred)))
		}
		if t.pred == vocabulary.RdfType && forbiddenTypes[t.obj] {
			g.ForeignPredicates = append(g.ForeignPredicates,
				fmt.Sprintf("%s typed as %s", subjectName(ref, t.subj), curie(t.obj)))
		}
	}

	return g
}

// buildMeta fills vocabulary-level metadata from triples about the
// vocabulary URI itself. SKOS vocabularies use rdfs:label/rdfs:comment for
// the vocabulary as a whole, the dc terms are common to all flavours.
func buildMeta(g *vocabulary.TermGraph, t triple) {
	switch t.pred {
	case vocabulary.DcTitle, vocabulary.RdfsLabel:
		if g.Meta.Title == "" {
			g.Meta.Title = t.obj
		}
	case vocabulary.DcDescription, vocabulary.RdfsComment:
		if g.Meta.Description == "" {
			g.Meta.Description = t.obj
		}
	case vocabulary.DcCreated, vocabulary.DcModified, vocabulary.OwlVersionInfo:
		if g.Meta.Version == "" {
			g.Meta.Version = t.obj
		}
	}
}

// buildTerm folds one triple about a term IRI into the graph. When the
// flavour is unknown the builder accepts any flavour's predicates so the
// flavour-independent rules still have a graph to work on.
func buildTerm(g *vocabulary.TermGraph, preds vocabulary.TermPredicates, flavourKnown bool, ident string, t triple) {
	ref := g.Reference

	isLabel := t.pred == preds.Label
	isDescription := t.pred == preds.Description
	isWider := t.pred == preds.Wider
	isType := t.pred == vocabulary.RdfType && t.obj == preds.TermType
	if !flavourKnown {
		isLabel = t.pred == vocabulary.SkosPrefLabel || t.pred == vocabulary.RdfsLabel
		isDescription = t.pred == vocabulary.SkosDefinition || t.pred == vocabulary.RdfsComment
		isWider = t.pred == vocabulary.SkosBroader ||
			t.pred == vocabulary.RdfsSubClassOf ||
			t.pred == vocabulary.RdfsSubPropertyOf
		isType = t.pred == vocabulary.RdfType && anyTermType(t.obj)
	}

	switch {
	case isType:
		g.Term(ident)

	case isLabel:
		term := g.Term(ident)
		term.Labels = append(term.Labels, t.obj)

	case isDescription:
		term := g.Term(ident)
		if term.Description == "" {
			term.Description = t.obj
		}

	case isWider:
		target := ref.Fragment(t.obj)
		if target == "" {
			// Keep the full IRI; the edge-resolves rule reports it.
			target = t.obj
		}
		g.Term(ident).Wider = append(g.Term(ident).Wider, target)

	case t.pred == vocabulary.IvoasemDeprecated:
		g.Term(ident).Deprecated = true

	case t.pred == vocabulary.IvoasemPreliminary:
		g.Term(ident).Preliminary = true

	case t.pred == vocabulary.IvoasemUseInstead:
		target := ref.Fragment(t.obj)
		if target == "" {
			target = t.obj
		}
		g.Term(ident).UseInstead = append(g.Term(ident).UseInstead, target)
	}
}

func forbiddenTermTypes(f vocabulary.Flavour) map[string]bool {
	all := map[string]bool{
		vocabulary.SkosConcept: true,
		vocabulary.RdfsClass:   true,
		vocabulary.RdfProperty: true,
	}
	if preds, ok := vocabulary.PredicatesFor(f); ok {
		delete(all, preds.TermType)
		return all
	}
	// Unknown flavour: nothing to forbid, the flavour rule reports the
	// missing declaration instead.
	return map[string]bool{}
}

func anyTermType(iri string) bool {
	return iri == vocabulary.SkosConcept ||
		iri == vocabulary.RdfsClass ||
		iri == vocabulary.RdfProperty
}

func subjectName(ref vocabulary.Reference, subj string) string {
	if ident := ref.Fragment(subj); ident != "" {
		return ident
	}
	return subj
}

// curie shortens well-known IRIs for readable violation messages.
func curie(iri string) string {
	prefixes := []struct{ ns, prefix string }{
		{"http://www.w3.org/2004/02/skos/core#", "skos:"},
		{"http://www.w3.org/2000/01/rdf-schema#", "rdfs:"},
		{"http://www.w3.org/1999/02/22-rdf-syntax-ns#", "rdf:"},
		{"http://purl.org/dc/terms/", "dc:"},
		{"http://www.ivoa.net/rdf/ivoasem#", "ivoasem:"},
	}
	for _, p := range prefixes {
		if strings.HasPrefix(iri, p.ns) {
			return p.prefix + iri[len(p.ns):]
		}
	}
	return iri
}

// DeclaresBase reports whether a Turtle document starts with a base
// declaration for the vocabulary URI, as the recommendation requires of the
// published Turtle representation.
func DeclaresBase(ref vocabulary.Reference, data []byte) bool {
	head := strings.TrimSpace(string(data))
	want := fmt.Sprintf("@base <%s>.", ref)
	if strings.HasPrefix(head, want) {
		return true
	}
	// SPARQL-style spelling is permitted by Turtle 1.1.
	want = fmt.Sprintf("BASE <%s>", ref)
	return strings.HasPrefix(head, want)
}
