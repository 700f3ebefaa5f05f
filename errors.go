package combi

import "fmt"

// GrammarError reports a structural defect in the grammar detected while a
// parse was in progress: an unresolved Reference, a Repeat with min > max,
// or a Transform function that panicked. It is fatal for the parse it
// arose in; the trampoline unwinds without calling OnChildFailure on any
// pending parent.
type GrammarError struct {
	Matcher Matcher
	Reason  string
}

func (e *GrammarError) Error() string {
	if e.Matcher != nil {
		return fmt.Sprintf("grammar error at %v: %s", e.Matcher, e.Reason)
	}
	return fmt.Sprintf("grammar error: %s", e.Reason)
}

// NewGrammarError builds a GrammarError, matching the teacher's plain
// errors.New/fmt.Errorf style rather than a wrapping error library.
func NewGrammarError(m Matcher, reason string) *GrammarError {
	return &GrammarError{Matcher: m, Reason: reason}
}
