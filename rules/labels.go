package rules

import (
	"sort"

	"github.com/c360studio/vocval/vocabulary"
)

// termLabelRule: every term has exactly one non-empty label.
var termLabelRule = Rule{
	ID:          "term-label",
	Description: "every term must have exactly one non-empty label",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, id := range g.Identifiers() {
			term := g.Terms[id]
			switch {
			case len(term.Labels) == 0 || term.Label() == "":
				out = append(out, vocabulary.Violationf("term-label", id,
					"term has no label"))
			case len(term.Labels) > 1:
				out = append(out, vocabulary.Violationf("term-label", id,
					"term has %d labels, expected exactly one", len(term.Labels)))
			}
		}
		return out
	},
}

// termDefinitionRule: every term has a definition.
var termDefinitionRule = Rule{
	ID:          "term-definition",
	Description: "every term must have a definition",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		var out []vocabulary.Violation
		for _, id := range g.Identifiers() {
			if g.Terms[id].Description == "" {
				out = append(out, vocabulary.Violationf("term-definition", id,
					"term has no definition"))
			}
		}
		return out
	},
}

// labelUniqueRule: no two terms within one vocabulary share a label. One
// violation is produced per duplicate pair.
var labelUniqueRule = Rule{
	ID:          "label-unique",
	Description: "no two terms may share a label",
	Check: func(g *vocabulary.TermGraph) []vocabulary.Violation {
		// A term is listed at most once per label: a term repeating its own
		// label is term-label's problem, not a cross-term clash.
		byLabel := make(map[string][]string)
		for _, id := range g.Identifiers() {
			seen := make(map[string]bool)
			for _, label := range g.Terms[id].Labels {
				if label == "" || seen[label] {
					continue
				}
				seen[label] = true
				byLabel[label] = append(byLabel[label], id)
			}
		}

		labels := make([]string, 0, len(byLabel))
		for label := range byLabel {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		var out []vocabulary.Violation
		for _, label := range labels {
			ids := byLabel[label]
			for i := 0; i < len(ids); i++ {
				for j := i + 1; j < len(ids); j++ {
					out = append(out, vocabulary.Violationf("label-unique", ids[i],
						"shares label %q with term %s", label, ids[j]))
				}
			}
		}
		return out
	},
}
