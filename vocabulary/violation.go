package vocabulary

import "fmt"

// Violation records one failed MUST-requirement: the rule that failed, the
// term it failed on (empty for vocabulary-level findings), and a
// human-readable message. Violations are never mutated after creation.
type Violation struct {
	RuleID  string
	Term    string
	Message string
}

// Violationf builds a Violation with a formatted message.
func Violationf(ruleID, term, format string, args ...any) Violation {
	return Violation{
		RuleID:  ruleID,
		Term:    term,
		Message: fmt.Sprintf(format, args...),
	}
}

// String renders the violation in report form.
func (v Violation) String() string {
	if v.Term == "" {
		return fmt.Sprintf("[%s] %s", v.RuleID, v.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", v.RuleID, v.Term, v.Message)
}
