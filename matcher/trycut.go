package matcher

import "github.com/npillmayer/combi"

// Try marks a backtracking boundary: a nested Cut commits back only as far
// as the nearest enclosing Try. On its own, Try is a transparent
// pass-through to child; its meaning is realized by policy.Restricted,
// which recognizes it through the TryBoundary marker.
type Try struct {
	child combi.Matcher
}

var _ combi.Matcher = (*Try)(nil)

// TryBoundary is implemented by matchers that mark a backtracking
// boundary a Cut can commit up to. Policies that support Try/Cut (see
// policy.Restricted) type-assert for it; policies that don't simply treat
// Try and Cut as transparent wrappers.
type TryBoundary interface {
	Boundary() bool
}

// NewTry wraps child in a backtracking boundary for nested Cut matchers.
func NewTry(child combi.Matcher) *Try { return &Try{child: child} }

func (t *Try) Boundary() bool { return true }

func (t *Try) String() string { return "Try" }

func (t *Try) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Execute, Matcher: t.child, State: nil, Pos: pos, Parent: combi.Frame{Matcher: t, State: nil}}
}

func (t *Try) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Success, State: childState, Pos: pos, Result: result}
}

func (t *Try) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	if state == nil {
		return combi.Message{Kind: combi.Failure}
	}
	return combi.Message{Kind: combi.Execute, Matcher: t.child, State: state, Pos: nil, Parent: combi.Frame{Matcher: t, State: nil}}
}

// Cut commits to every choice made since the nearest enclosing Try: once
// child succeeds through a Cut, a Restricted policy discards the
// alternatives it would otherwise have kept for backtracking. Cut is a
// transparent pass-through under policies that don't implement that
// commit behaviour.
type Cut struct {
	child combi.Matcher
}

var _ combi.Matcher = (*Cut)(nil)

// CutPoint is implemented by matchers that commit backtracking state on
// success. Policies that support it (see policy.Restricted) type-assert
// for it after a success passes through.
type CutPoint interface {
	Commits() bool
}

// NewCut wraps child as a commit point.
func NewCut(child combi.Matcher) *Cut { return &Cut{child: child} }

func (c *Cut) Commits() bool { return true }

func (c *Cut) String() string { return "Cut" }

func (c *Cut) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Execute, Matcher: c.child, State: nil, Pos: pos, Parent: combi.Frame{Matcher: c, State: nil}}
}

func (c *Cut) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Success, State: childState, Pos: pos, Result: result}
}

// OnChildFailure fails when the child failed outright (state is nil) and
// otherwise asks the child for its next alternative; pruning those
// alternatives is left to a commit-aware policy.
func (c *Cut) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	if state == nil {
		return combi.Message{Kind: combi.Failure}
	}
	return combi.Message{Kind: combi.Execute, Matcher: c.child, State: state, Pos: nil, Parent: combi.Frame{Matcher: c, State: nil}}
}
