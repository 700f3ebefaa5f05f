package matcher

import "github.com/npillmayer/combi"

// AndPredicate succeeds without consuming input iff child matches at the
// current position; its result is whenMatched, not the child's.
type AndPredicate struct {
	child      combi.Matcher
	whenMatched combi.Result
}

var _ combi.Matcher = (*AndPredicate)(nil)

// NewAndPredicate builds a positive lookahead over child.
func NewAndPredicate(child combi.Matcher, whenMatched combi.Result) *AndPredicate {
	return &AndPredicate{child: child, whenMatched: whenMatched}
}

func (a *AndPredicate) String() string { return "And" }

func (a *AndPredicate) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{
		Kind: combi.Execute, Matcher: a.child, State: nil, Pos: pos,
		Parent: combi.Frame{Matcher: a, State: pos},
	}
}

func (a *AndPredicate) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	origin := state.(combi.Position)
	return combi.Message{Kind: combi.Success, State: exhausted, Pos: origin, Result: a.whenMatched}
}

// OnChildFailure covers the child failing outright (state is the origin
// combi.Position stashed by Enter) and the reported success being
// resumed (state is the exhausted sentinel): both end in Failure, since a
// lookahead offers at most one outcome.
func (a *AndPredicate) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	return combi.Message{Kind: combi.Failure}
}

// NotPredicate succeeds without consuming input iff child fails to match
// at the current position.
type NotPredicate struct {
	child      combi.Matcher
	whenAbsent combi.Result
}

var _ combi.Matcher = (*NotPredicate)(nil)

// NewNotPredicate builds a negative lookahead over child.
func NewNotPredicate(child combi.Matcher, whenAbsent combi.Result) *NotPredicate {
	return &NotPredicate{child: child, whenAbsent: whenAbsent}
}

func (n *NotPredicate) String() string { return "Not" }

func (n *NotPredicate) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{
		Kind: combi.Execute, Matcher: n.child, State: nil, Pos: pos,
		Parent: combi.Frame{Matcher: n, State: pos},
	}
}

func (n *NotPredicate) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Failure}
}

func (n *NotPredicate) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	origin, ok := state.(combi.Position)
	if !ok {
		// The reported success (state == exhausted) is being resumed: a
		// lookahead offers only one outcome.
		return combi.Message{Kind: combi.Failure}
	}
	return combi.Message{Kind: combi.Success, State: exhausted, Pos: origin, Result: n.whenAbsent}
}
