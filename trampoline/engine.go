package trampoline

import (
	"context"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.trampoline'.
func tracer() tracing.Trace {
	return tracing.Select("combi.trampoline")
}

// Run drives msg through dispatcher against stack until the parse
// bottoms out: a Success or Failure reaching an empty stack, or an
// Errored/Cancelled message, which unwind unconditionally without
// consulting any matcher. ctx is polled once per step; a Cancelled
// message is injected in place of the next dispatch once it is done.
//
// stack should be empty on entry unless Run is being called to resume a
// previously reported outcome (see policy.Restricted and engine's
// all-parses driver), in which case it must be in the same state it was
// left in when the prior Run call returned.
func Run(ctx context.Context, dispatcher combi.Dispatcher, observer combi.Observer, stack combi.Stack, msg combi.Message) combi.Message {
	var deepest combi.Position
	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return combi.Message{Kind: combi.Cancelled}
			default:
			}
		}
		if observer != nil {
			observer.Dispatch(msg, stack.Len(), msg.Pos)
		}
		switch msg.Kind {
		case combi.Execute:
			msg = dispatcher.OnExecute(stack, msg)
		case combi.Success:
			if stack.Len() == 0 {
				return msg
			}
			msg = dispatcher.OnSuccess(stack, msg)
		case combi.Failure:
			// Matcher.OnChildFailure signatures don't carry a Deepest
			// field through to their callers, so any Deepest a leaf
			// matcher attached is only visible on the message that
			// carries it; track the high-water mark here, at the one
			// place that sees every Failure message in the parse.
			if msg.Deepest != nil && (deepest == nil || deepest.Less(msg.Deepest)) {
				deepest = msg.Deepest
			}
			if stack.Len() == 0 {
				msg.Deepest = deepest
				return msg
			}
			msg = dispatcher.OnFailure(stack, msg)
		case combi.Errored:
			tracer().Errorf("trampoline: unwinding on grammar error: %v", msg.Err)
			return msg
		case combi.Cancelled:
			return msg
		default:
			return combi.Message{Kind: combi.Errored, Err: combi.NewGrammarError(nil, "unknown message kind")}
		}
	}
}

// Start builds the initial Execute message for entering root at pos, with
// no parent frame: whatever Run returns for this message is the parse's
// top-level outcome.
func Start(root combi.Matcher, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Execute, Matcher: root, State: nil, Pos: pos}
}

// Resume builds the Execute message that asks root, via its previously
// reported continuation state, for its next alternative parse.
func Resume(root combi.Matcher, state combi.State) combi.Message {
	return combi.Message{Kind: combi.Execute, Matcher: root, State: state}
}
