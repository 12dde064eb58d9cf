// Package report collects per-vocabulary validation outcomes and renders
// them as plain text. A vocabulary with an empty violation sequence passed;
// anything else, including fetch and parse failures recorded as synthetic
// violations, counts as a failure.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/vocval/vocabulary"
)

// Entry is the outcome for one vocabulary.
type Entry struct {
	Reference  vocabulary.Reference
	Violations []vocabulary.Violation
}

// Passed reports whether the vocabulary satisfied every applicable rule.
func (e Entry) Passed() bool { return len(e.Violations) == 0 }

// Report maps each checked vocabulary to its ordered violation sequence.
// Entries appear in the order vocabularies were checked.
type Report struct {
	RunID   string
	Started time.Time
	Entries []Entry
}

// New creates an empty report for one validation run.
func New() *Report {
	return &Report{
		RunID:   uuid.New().String(),
		Started: time.Now().UTC(),
	}
}

// Add records the outcome for one vocabulary. Violations are never mutated
// after this point.
func (r *Report) Add(ref vocabulary.Reference, violations []vocabulary.Violation) {
	r.Entries = append(r.Entries, Entry{Reference: ref, Violations: violations})
}

// Failed reports whether any vocabulary had violations. It decides the
// process exit status.
func (r *Report) Failed() bool {
	for _, e := range r.Entries {
		if !e.Passed() {
			return true
		}
	}
	return false
}

// FailureCount returns the number of failing vocabularies.
func (r *Report) FailureCount() int {
	n := 0
	for _, e := range r.Entries {
		if !e.Passed() {
			n++
		}
	}
	return n
}
