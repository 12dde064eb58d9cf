package rules

import (
	"strings"

	"github.com/c360studio/vocval/vocabulary"
)

// uriFormRule: the vocabulary URI MUST point into the federation's
// vocabulary repository, with the http scheme (retrieval may use https, but
// references must not).
var uriFormRule = Rule{
	ID:          "uri-form",
	Description: "vocabulary URI must begin with " + vocabulary.IvoaBaseURI,
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		uri := g.Reference.String()
		if strings.HasPrefix(uri, vocabulary.IvoaBaseURI) {
			return nil
		}
		if strings.HasPrefix(uri, "https://www.ivoa.net/rdf/") {
			return []vocabulary.Violation{vocabulary.Violationf("uri-form", "",
				"vocabulary referenced with https URI %s; references must use the http form", uri)}
		}
		return []vocabulary.Violation{vocabulary.Violationf("uri-form", "",
			"vocabulary URI %s does not point into the IVOA vocabulary repository", uri)}
	},
}

// flavourDeclRule: exactly one ivoasem:vocflavour declaration naming a known
// flavour.
var flavourDeclRule = Rule{
	ID:          "flavour-decl",
	Description: "vocabulary must declare exactly one known ivoasem:vocflavour",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		switch {
		case g.FlavourDeclarations == 0:
			return []vocabulary.Violation{vocabulary.Violationf("flavour-decl", "",
				"no ivoasem:vocflavour declared; is this an IVOA vocabulary?")}
		case g.FlavourDeclarations > 1:
			return []vocabulary.Violation{vocabulary.Violationf("flavour-decl", "",
				"%d ivoasem:vocflavour declarations found, expected exactly one", g.FlavourDeclarations)}
		case !g.Flavour.Known():
			return []vocabulary.Violation{vocabulary.Violationf("flavour-decl", "",
				"declared flavour is not one of SKOS, RDF Class, RDF Property")}
		}
		return nil
	},
}

// flavourCleanRule: a vocabulary must only use the predicates and term types
// of its declared flavour.
var flavourCleanRule = Rule{
	ID:          "flavour-clean",
	Description: "vocabulary must not mix predicates or term types of other flavours",
	Flavours: []vocabulary.Flavour{
		vocabulary.FlavourSKOS,
		vocabulary.FlavourRDFClass,
		vocabulary.FlavourRDFProperty,
	},
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, foreign := range g.ForeignPredicates {
			out = append(out, vocabulary.Violationf("flavour-clean", "",
				"forbidden in %s vocabularies: %s", g.Flavour, foreign))
		}
		return out
	},
}

// vocabMetaRule: vocabulary-level title, description and version/date
// metadata must be present.
var vocabMetaRule = Rule{
	ID:          "vocab-meta",
	Description: "vocabulary must carry title, description, and version metadata",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		if g.Meta.Title == "" {
			out = append(out, vocabulary.Violationf("vocab-meta", "", "no title declared"))
		}
		if g.Meta.Description == "" {
			out = append(out, vocabulary.Violationf("vocab-meta", "", "no description declared"))
		}
		if g.Meta.Version == "" {
			out = append(out, vocabulary.Violationf("vocab-meta", "", "no version or issue date declared"))
		}
		return out
	},
}
