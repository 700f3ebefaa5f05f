package policy

import (
	"fmt"

	"github.com/npillmayer/combi"
)

// memoKey identifies a fresh (never-resumed) attempt to enter a matcher
// at a position. Resumption calls (state != nil) are never memoized —
// OnExecute routes them straight to base before keyFor is ever called —
// because their outcome depends on which alternative has already been
// consumed along that particular backtrack path, not just on where they
// are: two resumptions of the same matcher at the same position, holding
// different continuations, can legitimately produce different results, so
// (matcher, position) alone would be the wrong key for them.
type memoKey struct {
	matcher string
	pos     string
}

// memoEntry tracks one memoized (matcher, position) attempt. inProgress
// stays true for the whole lifetime of that attempt's subtree — from the
// fresh Execute until its Success or Failure is actually observed — not
// just until OnExecute returns, since for a composite matcher that return
// value is only a delegation to its first child, not the attempt's outcome.
type memoEntry struct {
	inProgress bool
	result     combi.Message
}

// Memoizing wraps NonMemoizing with a table keyed by matcher identity and
// input position, so a matcher is entered at most once per position.
// Re-entering an in-progress key — the signature of left recursion —
// conservatively fails rather than looping (§9's chosen left-recursion
// policy): the recursive call cannot contribute a longer match than what
// its caller already has in hand, so failing it lets the caller's other
// alternatives, or a subsequent growth of an enclosing Repeat, take over.
type Memoizing struct {
	base  *NonMemoizing
	table map[memoKey]*memoEntry
}

var _ combi.Dispatcher = (*Memoizing)(nil)

// NewMemoizing builds a Memoizing dispatcher over src.
func NewMemoizing(src combi.Source) *Memoizing {
	return &Memoizing{base: New(src), table: make(map[memoKey]*memoEntry)}
}

// keyFor builds the key for msg's (matcher, position) pair. It is only ever
// called for a fresh Execute (msg.State == nil, guarded in OnExecute), so
// the key carries no state fingerprint: there is exactly one "clean" state
// per matcher, and identifying it needs nothing beyond matcher identity.
func keyFor(msg combi.Message) memoKey {
	return memoKey{
		matcher: fmt.Sprintf("%s@%p", msg.Matcher, msg.Matcher),
		pos:     msg.Pos.String(),
	}
}

// memoCompletion is the state carried by a shadow frame (see shadowMatcher):
// it remembers which entry to finalize and the real parent frame that was
// displaced so it can still be reached once the entry is settled.
type memoCompletion struct {
	entry *memoEntry
	real  combi.Frame
}

// shadowMatcher is pushed in place of a fresh memoized Execute's real
// parent frame, so that Memoizing observes the moment this attempt's
// subtree actually resolves — at OnChildSuccess/OnChildFailure time,
// reached through the ordinary stack pop in NonMemoizing.OnSuccess and
// OnFailure — rather than at the syntactic return of OnExecute. Enter is
// never called on it: shadow frames are only ever pushed as a Parent, never
// entered fresh.
type shadowMatcher struct{}

var theShadow = &shadowMatcher{}

func (s *shadowMatcher) String() string { return "memo-shadow" }

func (s *shadowMatcher) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Errored, Err: combi.NewGrammarError(s, "memo-shadow: Enter called")}
}

func (s *shadowMatcher) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	mc := state.(*memoCompletion)
	mc.entry.result = combi.Message{Kind: combi.Success, State: childState, Pos: pos, Result: result}
	mc.entry.inProgress = false
	if mc.real.Matcher == nil {
		return mc.entry.result
	}
	return mc.real.Matcher.OnChildSuccess(src, mc.real.State, childState, result, pos)
}

func (s *shadowMatcher) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	mc := state.(*memoCompletion)
	mc.entry.result = combi.Message{Kind: combi.Failure}
	mc.entry.inProgress = false
	if mc.real.Matcher == nil {
		return mc.entry.result
	}
	return mc.real.Matcher.OnChildFailure(src, mc.real.State)
}

func (p *Memoizing) OnExecute(stack combi.Stack, msg combi.Message) combi.Message {
	if msg.State != nil {
		return p.base.OnExecute(stack, msg)
	}
	key := keyFor(msg)
	if entry, ok := p.table[key]; ok {
		if msg.Parent.Matcher != nil {
			stack.Push(msg.Parent)
		}
		if entry.inProgress {
			tracer().Debugf("memo: left-recursive re-entry at %v, conservative fail", msg.Pos)
			return combi.Message{Kind: combi.Failure, Deepest: msg.Pos}
		}
		tracer().Debugf("memo: hit for %v @ %v", msg.Matcher, msg.Pos)
		return entry.result
	}
	entry := &memoEntry{inProgress: true}
	p.table[key] = entry
	shadowed := msg
	shadowed.Parent = combi.Frame{Matcher: theShadow, State: &memoCompletion{entry: entry, real: msg.Parent}}
	return p.base.OnExecute(stack, shadowed)
}

func (p *Memoizing) OnSuccess(stack combi.Stack, msg combi.Message) combi.Message {
	return p.base.OnSuccess(stack, msg)
}

func (p *Memoizing) OnFailure(stack combi.Stack, msg combi.Message) combi.Message {
	return p.base.OnFailure(stack, msg)
}
