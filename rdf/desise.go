package rdf

import (
	"encoding/json"

	"github.com/c360studio/vocval/vocabulary"
)

// Desise is the decoded form of a vocabulary's desise ("dead simple
// semantics") JSON digest.
type Desise struct {
	URI         string                `json:"uri"`
	Flavour     string                `json:"flavour"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Version     string                `json:"version"`
	Terms       map[string]DesiseTerm `json:"terms"`
}

// DesiseTerm is one term entry in a desise digest.
type DesiseTerm struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Wider       []string `json:"wider"`
	Narrower    []string `json:"narrower"`
	Deprecated  bool     `json:"deprecated"`
	Preliminary bool     `json:"preliminary"`
	UseInstead  []string `json:"useInstead"`
}

// ParseDesise decodes a desise digest.
func ParseDesise(ref vocabulary.Reference, data []byte) (*Desise, error) {
	var d Desise
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, NewParseError(ref.String(), "desise", err)
	}
	return &d, nil
}

// Graph converts the digest into the common TermGraph model so that the
// structural rules can run against it even when no RDF serialization could
// be obtained.
func (d *Desise) Graph(ref vocabulary.Reference) *vocabulary.TermGraph {
	g := vocabulary.NewTermGraph(ref)
	g.Flavour = vocabulary.ParseFlavour(d.Flavour)
	if d.Flavour != "" {
		g.FlavourDeclarations = 1
	}
	g.Meta = vocabulary.Meta{
		Title:       d.Title,
		Description: d.Description,
		Version:     d.Version,
	}

	for ident, dt := range d.Terms {
		term := g.Term(ident)
		if dt.Label != "" {
			term.Labels = append(term.Labels, dt.Label)
		}
		term.Description = dt.Description
		term.Wider = append(term.Wider, dt.Wider...)
		term.Deprecated = dt.Deprecated
		term.Preliminary = dt.Preliminary
		term.UseInstead = append(term.UseInstead, dt.UseInstead...)
	}
	return g
}
