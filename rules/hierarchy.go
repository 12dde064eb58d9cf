package rules

import (
	"strings"

	"github.com/c360studio/vocval/vocabulary"
)

// singleWiderRule: terms in strict hierarchies may have at most one wider
// term. SKOS word lists are exempt, broader is a many-to-many relation there.
var singleWiderRule = Rule{
	ID:          "single-wider",
	Description: "terms in class/property hierarchies may have at most one wider term",
	Flavours: []vocabulary.Flavour{
		vocabulary.FlavourRDFClass,
		vocabulary.FlavourRDFProperty,
	},
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, id := range g.Identifiers() {
			if wider := g.Terms[id].Wider; len(wider) > 1 {
				out = append(out, vocabulary.Violationf("single-wider", id,
					"term has %d wider terms (%s), expected at most one",
					len(wider), strings.Join(wider, ", ")))
			}
		}
		return out
	},
}

// noCyclesRule: hierarchy edges in class/property vocabularies must be
// acyclic. One violation is produced per cycle found, naming the terms on it.
var noCyclesRule = Rule{
	ID:          "no-cycles",
	Description: "class/property hierarchies must not contain cycles",
	Flavours: []vocabulary.Flavour{
		vocabulary.FlavourRDFClass,
		vocabulary.FlavourRDFProperty,
	},
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, cycle := range findCycles(g) {
			out = append(out, vocabulary.Violationf("no-cycles", cycle[0],
				"hierarchy cycle: %s", strings.Join(cycle, " -> ")))
		}
		return out
	},
}

// findCycles runs a deterministic DFS over identifiers in lexical order and
// extracts one witness path per cycle. Dangling edges are skipped here; the
// edge-resolves rule already reports those.
func findCycles(g *vocabulary.TermGraph) [][]string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int, len(g.Terms))
	parent := make(map[string]string, len(g.Terms))
	var cycles [][]string

	var dfs func(u string)
	dfs = func(u string) {
		color[u] = gray
		for _, v := range g.Terms[u].Wider {
			if _, ok := g.Terms[v]; !ok {
				continue
			}
			switch color[v] {
			case white:
				parent[v] = u
				dfs(v)
			case gray:
				// Back edge u -> v: reconstruct v -> ... -> u -> v.
				witness := []string{v}
				for cur := u; cur != v; cur = parent[cur] {
					witness = append(witness, cur)
				}
				witness = append(witness, v)
				// The parent walk yields the path reversed.
				for i, j := 0, len(witness)-1; i < j; i, j = i+1, j-1 {
					witness[i], witness[j] = witness[j], witness[i]
				}
				cycles = append(cycles, witness)
			}
		}
		color[u] = black
	}

	for _, id := range g.Identifiers() {
		if color[id] == white {
			dfs(id)
		}
	}
	return cycles
}
