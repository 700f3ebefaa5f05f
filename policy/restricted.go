package policy

import (
	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/matcher"
)

// Restricted layers Parsec-style cut/commit on top of a base Dispatcher:
// once a matcher.Cut inside a matcher.Try region succeeds, Restricted
// prunes backtracking into any choice made since that Try, rather than
// letting a later failure re-explore them.
//
// combi.Stack exposes only Push/Pop/Peek/Len, not indexed access, so the
// commit is tracked as a single active "floor" (the stack depth at the
// moment of commit) rather than by splicing the pruned frames out of the
// stack directly. A failure that would backtrack to a depth at or below
// the floor is turned into an unconditional Failure instead of being
// routed to that frame's matcher; reaching the enclosing Try's own frame
// clears the floor and restores ordinary backtracking above it. Nested
// Try/Cut regions are handled the same way, one commit floor at a time,
// which is sufficient for the single-region uses this policy is meant
// for and is not a general nested-commit stack.
type Restricted struct {
	base        combi.Dispatcher
	commitFloor *int
}

var _ combi.Dispatcher = (*Restricted)(nil)

// NewRestricted wraps base with cut/commit semantics.
func NewRestricted(base combi.Dispatcher) *Restricted {
	return &Restricted{base: base}
}

func (p *Restricted) OnExecute(stack combi.Stack, msg combi.Message) combi.Message {
	return p.base.OnExecute(stack, msg)
}

func (p *Restricted) OnSuccess(stack combi.Stack, msg combi.Message) combi.Message {
	if frame, ok := stack.Peek(); ok {
		if cp, isCut := frame.Matcher.(matcher.CutPoint); isCut && cp.Commits() {
			floor := stack.Len()
			p.commitFloor = &floor
			tracer().Debugf("restricted: cut commits at depth %d", floor)
		}
		if _, isTry := frame.Matcher.(matcher.TryBoundary); isTry && p.commitFloor != nil {
			p.commitFloor = nil
			tracer().Debugf("restricted: leaving Try region, commit cleared")
		}
	}
	return p.base.OnSuccess(stack, msg)
}

func (p *Restricted) OnFailure(stack combi.Stack, msg combi.Message) combi.Message {
	if p.commitFloor != nil {
		if frame, ok := stack.Peek(); ok {
			if _, isTry := frame.Matcher.(matcher.TryBoundary); isTry {
				p.commitFloor = nil
				return p.base.OnFailure(stack, msg)
			}
			if stack.Len() <= *p.commitFloor {
				stack.Pop()
				tracer().Debugf("restricted: pruning backtrack below cut commit floor")
				return combi.Message{Kind: combi.Failure}
			}
		}
	}
	return p.base.OnFailure(stack, msg)
}
