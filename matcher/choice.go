package matcher

import "github.com/npillmayer/combi"

// Choice tries its children in order at the same position, succeeding with
// the first child that succeeds. Resuming a successful Choice first asks
// the winning child for its own next alternative before moving on to try
// the next sibling, giving ordered, exhaustive backtracking over all
// combinations the children can produce.
type Choice struct {
	children []combi.Matcher
}

var _ combi.Matcher = (*Choice)(nil)

// NewChoice builds a Choice over the given alternatives, tried left to
// right.
func NewChoice(children ...combi.Matcher) *Choice {
	return &Choice{children: children}
}

func (c *Choice) String() string { return "Choice" }

// choiceState records which alternative is current, the position Choice
// was entered at (needed to retry a later sibling from scratch), and, once
// that alternative has succeeded, its continuation for resumption.
type choiceState struct {
	index      int
	pos        combi.Position
	childState combi.State
}

func (c *Choice) Enter(src combi.Source, pos combi.Position) combi.Message {
	if len(c.children) == 0 {
		return combi.Message{Kind: combi.Failure, Deepest: pos}
	}
	return c.tryAt(0, pos)
}

func (c *Choice) tryAt(index int, pos combi.Position) combi.Message {
	if index >= len(c.children) {
		return combi.Message{Kind: combi.Failure, Deepest: pos}
	}
	st := &choiceState{index: index, pos: pos}
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: c.children[index],
		State:   nil,
		Pos:     pos,
		Parent:  combi.Frame{Matcher: c, State: st},
	}
}

func (c *Choice) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	st := state.(*choiceState)
	won := &choiceState{index: st.index, pos: st.pos, childState: childState}
	return combi.Message{Kind: combi.Success, State: won, Pos: pos, Result: result}
}

func (c *Choice) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	st := state.(*choiceState)
	if st.childState != nil {
		// The winning child has more alternatives to try before Choice
		// gives up on this index.
		return combi.Message{
			Kind:    combi.Execute,
			Matcher: c.children[st.index],
			State:   st.childState,
			Pos:     st.pos,
			Parent:  combi.Frame{Matcher: c, State: &choiceState{index: st.index, pos: st.pos}},
		}
	}
	return c.tryAt(st.index+1, st.pos)
}
