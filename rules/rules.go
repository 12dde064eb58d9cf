// Package rules holds the checklist of MUST-level structural requirements a
// published vocabulary has to satisfy. Each requirement is an independent
// rule: a pure function of the term graph producing zero or more violations.
// Rules are held in a fixed order and never short-circuit one another; rules
// that do not apply to a vocabulary's flavour are skipped, not failed.
package rules

import (
	"sync"

	"github.com/c360studio/vocval/vocabulary"
)

// CheckFunc evaluates one rule against a whole term graph.
type CheckFunc func(*vocabulary.TermGraph) []vocabulary.Violation

// Rule is one MUST-requirement from the recommendation.
type Rule struct {
	// ID tags every violation the rule produces.
	ID string

	// Description says what the rule demands, roughly in the
	// recommendation's words.
	Description string

	// Flavours restricts the rule to vocabularies of these flavours.
	// Empty means the rule applies to every vocabulary.
	Flavours []vocabulary.Flavour

	Check CheckFunc
}

// AppliesTo reports whether the rule is evaluated for a flavour.
func (r Rule) AppliesTo(f vocabulary.Flavour) bool {
	if len(r.Flavours) == 0 {
		return true
	}
	for _, want := range r.Flavours {
		if want == f {
			return true
		}
	}
	return false
}

// Rule checklist registry. Evaluation order is registration order.
var (
	registryMu sync.RWMutex
	checklist  []Rule
)

// Register appends a rule to the checklist.
func Register(r Rule) {
	registryMu.Lock()
	defer registryMu.Unlock()
	checklist = append(checklist, r)
}

// All returns the checklist in evaluation order.
func All() []Rule {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Rule, len(checklist))
	copy(out, checklist)
	return out
}

// Evaluate runs the checklist against a graph, skipping rules whose ID is in
// skip and rules inapplicable to the graph's flavour. The result is fully
// determined by the graph: running twice yields identical sequences.
func Evaluate(g *vocabulary.TermGraph, skip ...string) []vocabulary.Violation {
	skipped := make(map[string]bool, len(skip))
	for _, id := range skip {
		skipped[id] = true
	}

	var violations []vocabulary.Violation
	for _, rule := range All() {
		if skipped[rule.ID] {
			continue
		}
		if !rule.AppliesTo(g.Flavour) {
			continue
		}
		violations = append(violations, rule.Check(g)...)
	}
	return violations
}

// The checklist, in the order findings should appear in reports:
// vocabulary-level requirements first, then per-term ones, then the
// hierarchy shape checks.
func init() {
	Register(uriFormRule)
	Register(flavourDeclRule)
	Register(flavourCleanRule)
	Register(vocabMetaRule)
	Register(identFormRule)
	Register(termLabelRule)
	Register(termDefinitionRule)
	Register(labelUniqueRule)
	Register(edgeResolvesRule)
	Register(useInsteadRule)
	Register(singleWiderRule)
	Register(noCyclesRule)
}
