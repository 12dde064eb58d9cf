package rules

import "github.com/c360studio/vocval/vocabulary"

// identFormRule: fragment identifiers MUST consist of ASCII letters, digits,
// underscores and dashes exclusively.
var identFormRule = Rule{
	ID:          "ident-form",
	Description: "term identifiers must consist of ASCII letters, digits, underscores, and dashes",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, id := range g.Identifiers() {
			if !vocabulary.ValidIdentifier(id) {
				out = append(out, vocabulary.Violationf("ident-form", id,
					"identifier %q malformed", id))
			}
		}
		return out
	},
}
