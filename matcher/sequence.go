package matcher

import "github.com/npillmayer/combi"

// Sequence matches its children in order, threading the input position
// through each and combining their results with combine. Resuming a
// completed Sequence asks its last child for its own next alternative; if
// that child has none left, Sequence retreats to the previous child's next
// alternative, and so on down to the first — the backtracking ladder.
type Sequence struct {
	children []combi.Matcher
	combine  func(results []combi.Result) combi.Result
}

var _ combi.Matcher = (*Sequence)(nil)

// NewSequence builds a Sequence over children, combining their results with
// combine. A nil combine defaults to returning the slice of results as-is.
func NewSequence(combine func([]combi.Result) combi.Result, children ...combi.Matcher) *Sequence {
	if combine == nil {
		combine = func(rs []combi.Result) combi.Result { return rs }
	}
	return &Sequence{children: children, combine: combine}
}

func (s *Sequence) String() string { return "Sequence" }

// seqNode is one rung of the backtracking ladder: it records that
// children[index] has matched, ending at pos with the results accumulated
// so far, and remembers childCont — that child's own continuation, so a
// later retreat can ask it for its next alternative — and prev, the rung
// for children[index-1]. index == -1 is the sentinel rung before any child
// has run, standing in for "the position Sequence was entered at".
type seqNode struct {
	index     int
	pos       combi.Position
	results   []combi.Result
	childCont combi.State
	prev      *seqNode
}

// grow advances past prev by entering children[prev.index+1] fresh.
func (s *Sequence) grow(prev *seqNode) combi.Message {
	i := prev.index + 1
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: s.children[i],
		State:   nil,
		Pos:     prev.pos,
		Parent:  combi.Frame{Matcher: s, State: prev},
	}
}

func (s *Sequence) Enter(src combi.Source, pos combi.Position) combi.Message {
	if len(s.children) == 0 {
		return combi.Message{Kind: combi.Success, State: exhausted, Pos: pos, Result: s.combine(nil)}
	}
	return s.grow(&seqNode{index: -1, pos: pos})
}

func (s *Sequence) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	prev := state.(*seqNode)
	node := &seqNode{
		index:     prev.index + 1,
		pos:       pos,
		results:   append(append([]combi.Result{}, prev.results...), result),
		childCont: childState,
		prev:      prev,
	}
	if node.index == len(s.children)-1 {
		return combi.Message{Kind: combi.Success, State: node, Pos: pos, Result: s.combine(node.results)}
	}
	return s.grow(node)
}

// OnChildFailure serves two callers with the same retreat logic: a fresh
// growth attempt for children[prev.index+1] that failed outright (state is
// that prev rung), and a completed Sequence's reported Success being asked
// for its next alternative (state is the rung for the last child). Either
// way, the next thing to try is that rung's own child's next alternative;
// failing that, retreat to the rung before it — the ladder the spec
// describes: decrement the index and ask the previous child in turn.
func (s *Sequence) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	node, ok := state.(*seqNode)
	if !ok {
		// The empty-Sequence success (state == exhausted) is being resumed.
		return combi.Message{Kind: combi.Failure}
	}
	return s.retreat(node)
}

func (s *Sequence) retreat(node *seqNode) combi.Message {
	if node == nil {
		return combi.Message{Kind: combi.Failure}
	}
	if node.childCont != nil {
		return combi.Message{
			Kind:    combi.Execute,
			Matcher: s.children[node.index],
			State:   node.childCont,
			Pos:     node.prev.pos,
			Parent:  combi.Frame{Matcher: s, State: node.prev},
		}
	}
	return s.retreat(node.prev)
}
