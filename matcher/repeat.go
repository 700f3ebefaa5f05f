package matcher

import "github.com/npillmayer/combi"

// Repeat matches its child between min and max times (max <= 0 means
// unbounded), combining the collected results with combine. Greedy repeats
// grow to the longest match before ever reporting success, and shrink one
// repetition at a time when backtracked into; non-greedy repeats report the
// shortest match first and grow one repetition at a time on backtrack.
type Repeat struct {
	child   combi.Matcher
	min     int
	max     int // <= 0 means unbounded
	greedy  bool
	combine func(results []combi.Result) combi.Result
}

var _ combi.Matcher = (*Repeat)(nil)

// NewRepeat builds a Repeat over child. max <= 0 means unbounded.
func NewRepeat(child combi.Matcher, min, max int, greedy bool, combine func([]combi.Result) combi.Result) *Repeat {
	if combine == nil {
		combine = func(rs []combi.Result) combi.Result { return rs }
	}
	return &Repeat{child: child, min: min, max: max, greedy: greedy, combine: combine}
}

func (r *Repeat) String() string {
	if r.greedy {
		return "Repeat(greedy)"
	}
	return "Repeat(non-greedy)"
}

func (r *Repeat) unbounded() bool { return r.max <= 0 }

// repeatState is a node in the chain of repetitions accepted so far. prev
// links to the state before this repetition, and childCont is the
// continuation of the child match that produced this repetition, kept so a
// backtrack can ask that match for an alternative before giving up this
// repetition entirely. emitted marks a state that has already been handed
// out inside a Success message; OnChildFailure branches on it to tell
// "growth just failed, decide whether to report success" apart from
// "a reported success is being resumed, look for the next alternative".
type repeatState struct {
	count     int
	pos       combi.Position
	results   []combi.Result
	prev      *repeatState
	childCont combi.State
	emitted   bool
}

func (r *Repeat) success(st *repeatState) combi.Message {
	won := &repeatState{count: st.count, pos: st.pos, results: st.results, prev: st.prev, childCont: st.childCont, emitted: true}
	return combi.Message{Kind: combi.Success, State: won, Pos: st.pos, Result: r.combine(st.results)}
}

func (r *Repeat) grow(st *repeatState) combi.Message {
	base := &repeatState{count: st.count, pos: st.pos, results: st.results, prev: st.prev, childCont: st.childCont, emitted: false}
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: r.child,
		State:   nil,
		Pos:     st.pos,
		Parent:  combi.Frame{Matcher: r, State: base},
	}
}

func (r *Repeat) canGrow(st *repeatState) bool {
	return r.unbounded() || st.count < r.max
}

func (r *Repeat) Enter(src combi.Source, pos combi.Position) combi.Message {
	if !r.unbounded() && r.min > r.max {
		return combi.Message{Kind: combi.Errored, Err: combi.NewGrammarError(r, "repeat with min > max")}
	}
	st := &repeatState{count: 0, pos: pos}
	if r.greedy {
		if r.canGrow(st) {
			return r.grow(st)
		}
		return r.retreatGreedy(st)
	}
	if st.count >= r.min {
		return r.success(st)
	}
	if r.canGrow(st) {
		return r.grow(st)
	}
	return combi.Message{Kind: combi.Failure, Deepest: pos}
}

func (r *Repeat) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	base := state.(*repeatState)
	next := &repeatState{
		count:     base.count + 1,
		pos:       pos,
		results:   append(append([]combi.Result{}, base.results...), result),
		prev:      base,
		childCont: childState,
	}
	if r.greedy {
		if r.canGrow(next) {
			return r.grow(next)
		}
		return r.success(next)
	}
	// Non-greedy: report the shorter match immediately once min is
	// reached; below min, growth is mandatory and not yet an outcome.
	if next.count < r.min {
		if r.canGrow(next) {
			return r.grow(next)
		}
		return combi.Message{Kind: combi.Failure}
	}
	return r.success(next)
}

func (r *Repeat) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	st := state.(*repeatState)
	if r.greedy {
		return r.retreatGreedy(st)
	}
	return r.retreatNonGreedy(st)
}

// retreatGreedy handles both "growth from st just failed" (st.emitted ==
// false) and "the success previously reported for st is being resumed"
// (st.emitted == true). Either way the next thing to try is: report st
// itself as a success if that has not happened yet, else ask st's own last
// child match for an alternative, else shrink to the repetition before st.
func (r *Repeat) retreatGreedy(st *repeatState) combi.Message {
	if !st.emitted && st.count >= r.min {
		return r.success(st)
	}
	if st.childCont != nil {
		return combi.Message{
			Kind:    combi.Execute,
			Matcher: r.child,
			State:   st.childCont,
			Pos:     st.prev.pos,
			Parent:  combi.Frame{Matcher: r, State: st.prev},
		}
	}
	if st.prev == nil {
		return combi.Message{Kind: combi.Failure}
	}
	return r.retreatGreedy(&repeatState{
		count: st.prev.count, pos: st.prev.pos, results: st.prev.results,
		prev: st.prev.prev, childCont: st.prev.childCont, emitted: true,
	})
}

// retreatNonGreedy handles both "a reported success at st is being
// resumed" (st.emitted == true — grow one more repetition, since
// non-greedy explores shorter matches first) and "growth from st just
// failed" (st.emitted == false — that option is spent; fall back to st's
// own last child match's alternative, else give up). It does not fall
// back to re-exploring repetition counts before st once it has moved past
// them, since non-greedy already offered those as shorter matches.
func (r *Repeat) retreatNonGreedy(st *repeatState) combi.Message {
	if st.emitted && r.canGrow(st) {
		return r.grow(st)
	}
	if st.childCont != nil {
		return combi.Message{
			Kind:    combi.Execute,
			Matcher: r.child,
			State:   st.childCont,
			Pos:     st.prev.pos,
			Parent:  combi.Frame{Matcher: r, State: st.prev},
		}
	}
	return combi.Message{Kind: combi.Failure}
}
