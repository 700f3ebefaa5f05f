package matcher

import (
	"fmt"

	"github.com/npillmayer/combi"
)

// Transform wraps a child matcher, applying fn to each result the child
// produces. fn runs once per accepted result, including ones produced
// while a later stage backtracks into the child for further alternatives.
type Transform struct {
	child combi.Matcher
	fn    func(combi.Result) combi.Result
}

var _ combi.Matcher = (*Transform)(nil)

// NewTransform builds a Transform applying fn to every result child
// produces.
func NewTransform(child combi.Matcher, fn func(combi.Result) combi.Result) *Transform {
	return &Transform{child: child, fn: fn}
}

func (t *Transform) String() string { return "Transform" }

type transformState struct {
	pos        combi.Position
	childState combi.State
}

func (t *Transform) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: t.child,
		State:   nil,
		Pos:     pos,
		Parent:  combi.Frame{Matcher: t, State: &transformState{pos: pos}},
	}
}

func (t *Transform) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	st := state.(*transformState)
	transformed, err := t.apply(result)
	if err != nil {
		return combi.Message{Kind: combi.Errored, Err: err}
	}
	return combi.Message{Kind: combi.Success, State: &transformState{pos: st.pos, childState: childState}, Pos: pos, Result: transformed}
}

// apply runs fn, recovering a panic into a GrammarError instead of letting
// it unwind the trampoline as a Go panic.
func (t *Transform) apply(result combi.Result) (transformed combi.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = combi.NewGrammarError(t, fmt.Sprintf("transform panicked: %v", r))
		}
	}()
	return t.fn(result), nil
}

// OnChildFailure asks the child to resume for its next alternative. It is
// reached both when the child fails outright (childState is nil, from
// Enter's frame) and when Transform's own reported success is asked to
// resume (childState is what the child handed back on success).
func (t *Transform) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	st := state.(*transformState)
	if st.childState == nil {
		return combi.Message{Kind: combi.Failure}
	}
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: t.child,
		State:   st.childState,
		Pos:     st.pos,
		Parent:  combi.Frame{Matcher: t, State: &transformState{pos: st.pos}},
	}
}
