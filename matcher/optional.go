package matcher

import "github.com/npillmayer/combi"

// Optional matches its child if possible, otherwise succeeds with
// whenAbsent and no input consumed. It is equivalent to Repeat(child,0,1,
// greedy) but kept as its own matcher for the common case, matching a
// single value instead of a one-element result slice.
type Optional struct {
	child      combi.Matcher
	whenAbsent combi.Result
}

var _ combi.Matcher = (*Optional)(nil)

// NewOptional builds an Optional over child, with whenAbsent as the result
// produced when child does not match.
func NewOptional(child combi.Matcher, whenAbsent combi.Result) *Optional {
	return &Optional{child: child, whenAbsent: whenAbsent}
}

func (o *Optional) String() string { return "Optional" }

// optionalState mirrors repeatState's emitted convention: present marks
// that the child matched, childState is that match's continuation (nil
// once exhausted), and emitted marks a state already handed out in a
// Success, so OnChildFailure can tell "the child just failed, decide what
// to offer" apart from "a reported success is being resumed".
type optionalState struct {
	pos        combi.Position
	present    bool
	childState combi.State
	emitted    bool
}

func (o *Optional) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: o.child,
		State:   nil,
		Pos:     pos,
		Parent:  combi.Frame{Matcher: o, State: &optionalState{pos: pos}},
	}
}

func (o *Optional) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	st := state.(*optionalState)
	won := &optionalState{pos: st.pos, present: true, childState: childState}
	return combi.Message{Kind: combi.Success, State: won, Pos: pos, Result: result}
}

func (o *Optional) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	st := state.(*optionalState)
	if st.present {
		if st.childState != nil {
			return combi.Message{
				Kind:    combi.Execute,
				Matcher: o.child,
				State:   st.childState,
				Pos:     st.pos,
				Parent:  combi.Frame{Matcher: o, State: &optionalState{pos: st.pos}},
			}
		}
		if !st.emitted {
			return combi.Message{Kind: combi.Success, State: &optionalState{pos: st.pos, emitted: true}, Pos: st.pos, Result: o.whenAbsent}
		}
		return combi.Message{Kind: combi.Failure}
	}
	// Child never matched at all (fresh Enter's Execute failed).
	if !st.emitted {
		return combi.Message{Kind: combi.Success, State: &optionalState{pos: st.pos, emitted: true}, Pos: st.pos, Result: o.whenAbsent}
	}
	return combi.Message{Kind: combi.Failure}
}
