package rules

import "github.com/c360studio/vocval/vocabulary"

// edgeResolvesRule: every relationship edge must point to a term defined in
// the same vocabulary. One violation per dangling edge.
var edgeResolvesRule = Rule{
	ID:          "edge-resolves",
	Description: "every hierarchy edge must resolve to a term of this vocabulary",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, id := range g.Identifiers() {
			for _, target := range g.Terms[id].Wider {
				if _, ok := g.Terms[target]; !ok {
					out = append(out, vocabulary.Violationf("edge-resolves", id,
						"wider edge points to unknown term %q", target))
				}
			}
		}
		return out
	},
}

// useInsteadRule: ivoasem:useInstead is only meaningful on deprecated terms,
// and its targets must exist.
var useInsteadRule = Rule{
	ID:          "use-instead",
	Description: "useInstead must appear on deprecated terms and resolve within the vocabulary",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, id := range g.Identifiers() {
			term := g.Terms[id]
			if len(term.UseInstead) > 0 && !term.Deprecated {
				out = append(out, vocabulary.Violationf("use-instead", id,
					"useInstead given for non-deprecated term"))
			}
			for _, target := range term.UseInstead {
				if _, ok := g.Terms[target]; !ok {
					out = append(out, vocabulary.Violationf("use-instead", id,
						"useInstead points to unknown term %q", target))
				}
			}
		}
		return out
	},
}
