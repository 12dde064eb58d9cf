// Package export re-serializes parsed term graphs. It is mainly a debugging
// aid: after the validator has normalized a vocabulary into its common graph
// form, exporting it again shows exactly what the rules were evaluated
// against, independent of which source serialization the server handed out.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/vocval/vocabulary"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// defaultPrefixes returns the namespace prefixes used in Turtle output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
		"skos":    "http://www.w3.org/2004/02/skos/core#",
		"dc":      "http://purl.org/dc/terms/",
		"ivoasem": "http://www.ivoa.net/rdf/ivoasem#",
	}
}

// Export serializes a term graph to the specified format.
func Export(g *vocabulary.TermGraph, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return toTurtle(g), nil
	case FormatNTriples:
		return toNTriples(g), nil
	case FormatJSONLD:
		return toJSONLD(g), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// triples flattens the graph back into (subject, predicate, object) rows
// using the predicates of its flavour. Object IRIs are marked so the
// serializers can tell them from literals.
func triples(g *vocabulary.TermGraph) []row {
	preds, ok := vocabulary.PredicatesFor(g.Flavour)
	if !ok {
		// Unknown flavour: fall back to the SKOS predicates so the export
		// still renders something inspectable.
		preds, _ = vocabulary.PredicatesFor(vocabulary.FlavourSKOS)
	}

	voc := g.Reference.String()
	var rows []row
	addMeta := func(pred, obj string) {
		if obj != "" {
			rows = append(rows, row{voc, pred, obj, false})
		}
	}
	addMeta(vocabulary.DcTitle, g.Meta.Title)
	addMeta(vocabulary.DcDescription, g.Meta.Description)
	addMeta(vocabulary.DcCreated, g.Meta.Version)
	if g.Flavour.Known() {
		addMeta(vocabulary.IvoasemVocFlavour, string(g.Flavour))
	}

	for _, ident := range g.Identifiers() {
		term := g.Terms[ident]
		iri := vocabulary.TermIRI(g.Reference, ident)

		rows = append(rows, row{iri, vocabulary.RdfType, preds.TermType, true})
		for _, label := range term.Labels {
			rows = append(rows, row{iri, preds.Label, label, false})
		}
		if term.Description != "" {
			rows = append(rows, row{iri, preds.Description, term.Description, false})
		}
		for _, wider := range term.Wider {
			rows = append(rows, row{iri, preds.Wider, targetIRI(g.Reference, wider), true})
		}
		if term.Deprecated {
			rows = append(rows, row{iri, vocabulary.IvoasemDeprecated, "", false})
		}
		if term.Preliminary {
			rows = append(rows, row{iri, vocabulary.IvoasemPreliminary, "", false})
		}
		for _, instead := range term.UseInstead {
			rows = append(rows, row{iri, vocabulary.IvoasemUseInstead, targetIRI(g.Reference, instead), true})
		}
	}
	return rows
}

type row struct {
	subj   string
	pred   string
	obj    string
	objIRI bool
}

// targetIRI maps an edge target back to an IRI: local identifiers live in
// the vocabulary's namespace, anything else was already a full IRI.
func targetIRI(ref vocabulary.Reference, target string) string {
	if strings.Contains(target, "://") {
		return target
	}
	return vocabulary.TermIRI(ref, target)
}

// toTurtle serializes to Turtle format.
func toTurtle(g *vocabulary.TermGraph) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("@base <%s>.\n", g.Reference))
	prefixes := defaultPrefixes()
	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, prefixes[prefix]))
	}
	sb.WriteString("\n")

	rows := triples(g)
	var lastSubj string
	for i, r := range rows {
		if r.subj != lastSubj {
			if lastSubj != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(fmt.Sprintf("<%s>\n", r.subj))
			lastSubj = r.subj
		}
		sb.WriteString(fmt.Sprintf("    %s %s", shorten(r.pred), formatObject(r)))
		if i+1 < len(rows) && rows[i+1].subj == r.subj {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
	return sb.String()
}

// toNTriples serializes to N-Triples format.
func toNTriples(g *vocabulary.TermGraph) string {
	var sb strings.Builder
	for _, r := range triples(g) {
		if r.objIRI {
			sb.WriteString(fmt.Sprintf("<%s> <%s> <%s> .\n", r.subj, r.pred, r.obj))
		} else {
			sb.WriteString(fmt.Sprintf("<%s> <%s> \"%s\" .\n", r.subj, r.pred, escapeString(r.obj)))
		}
	}
	return sb.String()
}

// toJSONLD serializes to JSON-LD format.
func toJSONLD(g *vocabulary.TermGraph) string {
	var sb strings.Builder

	sb.WriteString("{\n  \"@graph\": [\n")
	rows := triples(g)
	for i, r := range rows {
		sb.WriteString("    {")
		sb.WriteString(fmt.Sprintf("\"@id\": \"%s\", ", r.subj))
		if r.objIRI {
			sb.WriteString(fmt.Sprintf("\"%s\": {\"@id\": \"%s\"}", r.pred, r.obj))
		} else {
			sb.WriteString(fmt.Sprintf("\"%s\": \"%s\"", r.pred, escapeString(r.obj)))
		}
		sb.WriteString("}")
		if i+1 < len(rows) {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ]\n}\n")
	return sb.String()
}

// shorten renders a predicate as a CURIE when its namespace has a declared
// prefix, falling back to the bracketed full IRI.
func shorten(iri string) string {
	for prefix, ns := range defaultPrefixes() {
		if strings.HasPrefix(iri, ns) {
			return prefix + ":" + iri[len(ns):]
		}
	}
	return "<" + iri + ">"
}

func formatObject(r row) string {
	if r.objIRI {
		return fmt.Sprintf("<%s>", r.obj)
	}
	return fmt.Sprintf("\"%s\"", escapeString(r.obj))
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
