package vocabulary

import "regexp"

// IvoaBaseURI is the canonical root under which all federation vocabularies
// are published. Note the http scheme: vocabularies are referenced with
// http:// URIs even though they can be retrieved over https.
const IvoaBaseURI = "http://www.ivoa.net/rdf/"

// Standard vocabulary IRIs used when normalizing parsed RDF into TermGraphs.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - SKOS: https://www.w3.org/TR/skos-reference/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
const (
	RdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	RdfProperty = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property"

	RdfsClass         = "http://www.w3.org/2000/01/rdf-schema#Class"
	RdfsLabel         = "http://www.w3.org/2000/01/rdf-schema#label"
	RdfsComment       = "http://www.w3.org/2000/01/rdf-schema#comment"
	RdfsSubClassOf    = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
	RdfsSubPropertyOf = "http://www.w3.org/2000/01/rdf-schema#subPropertyOf"

	SkosConcept    = "http://www.w3.org/2004/02/skos/core#Concept"
	SkosPrefLabel  = "http://www.w3.org/2004/02/skos/core#prefLabel"
	SkosDefinition = "http://www.w3.org/2004/02/skos/core#definition"
	SkosBroader    = "http://www.w3.org/2004/02/skos/core#broader"

	DcTitle       = "http://purl.org/dc/terms/title"
	DcDescription = "http://purl.org/dc/terms/description"
	DcCreated     = "http://purl.org/dc/terms/created"
	DcModified    = "http://purl.org/dc/terms/modified"

	OwlVersionInfo = "http://www.w3.org/2002/07/owl#versionInfo"
)

// IVOA semantics extension IRIs (the ivoasem vocabulary).
const (
	IvoasemVocFlavour  = "http://www.ivoa.net/rdf/ivoasem#vocflavour"
	IvoasemDeprecated  = "http://www.ivoa.net/rdf/ivoasem#deprecated"
	IvoasemPreliminary = "http://www.ivoa.net/rdf/ivoasem#preliminary"
	IvoasemUseInstead  = "http://www.ivoa.net/rdf/ivoasem#useInstead"
)

// identifierForm is the permitted shape of a term identifier: the fragment
// MUST consist of ASCII letters, digits, underscores and dashes exclusively.
var identifierForm = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidIdentifier reports whether a local term identifier conforms to the
// recommendation's fragment syntax.
func ValidIdentifier(identifier string) bool {
	return identifierForm.MatchString(identifier)
}

// TermIRI returns the full IRI of a term within a vocabulary.
func TermIRI(ref Reference, identifier string) string {
	return string(ref) + "#" + identifier
}

// TermPredicates describe which IRIs carry a flavour's labels, descriptions,
// and hierarchy edges, and which rdf:type marks its terms.
type TermPredicates struct {
	Label       string
	Description string
	Wider       string
	TermType    string
}

// PredicatesFor returns the predicate set for a flavour. The second return is
// false for FlavourUnknown, in which case callers fall back to scanning all
// three flavours' predicates.
func PredicatesFor(f Flavour) (TermPredicates, bool) {
	switch f {
	case FlavourSKOS:
		return TermPredicates{
			Label:       SkosPrefLabel,
			Description: SkosDefinition,
			Wider:       SkosBroader,
			TermType:    SkosConcept,
		}, true
	case FlavourRDFClass:
		return TermPredicates{
			Label:       RdfsLabel,
			Description: RdfsComment,
			Wider:       RdfsSubClassOf,
			TermType:    RdfsClass,
		}, true
	case FlavourRDFProperty:
		return TermPredicates{
			Label:       RdfsLabel,
			Description: RdfsComment,
			Wider:       RdfsSubPropertyOf,
			TermType:    RdfProperty,
		}, true
	}
	return TermPredicates{}, false
}

// ForbiddenPredicates returns hierarchy/label predicates that MUST NOT appear
// in a vocabulary of the given flavour. rdfs:label and rdfs:comment are not
// forbidden in SKOS vocabularies because they are used for vocabulary-level
// metadata.
func ForbiddenPredicates(f Flavour) []string {
	skosOnly := []string{SkosPrefLabel, SkosDefinition, SkosBroader}
	switch f {
	case FlavourSKOS:
		return []string{RdfsSubClassOf, RdfsSubPropertyOf}
	case FlavourRDFClass:
		return append([]string{RdfsSubPropertyOf}, skosOnly...)
	case FlavourRDFProperty:
		return append([]string{RdfsSubClassOf}, skosOnly...)
	}
	return nil
}
