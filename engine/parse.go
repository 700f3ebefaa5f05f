package engine

import (
	"context"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/policy"
	"github.com/npillmayer/combi/trampoline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.engine'.
func tracer() tracing.Trace {
	return tracing.Select("combi.engine")
}

// OutcomeKind discriminates the four outcomes a parse can produce.
type OutcomeKind uint8

const (
	// Matched reports a successful parse.
	Matched OutcomeKind = iota
	// NoMatch reports that the grammar did not accept the input.
	NoMatch
	// Cancelled reports that ctx was done before the parse finished.
	Cancelled
	// Errored reports a GrammarError raised during the parse.
	Errored
)

func (k OutcomeKind) String() string {
	switch k {
	case Matched:
		return "Matched"
	case NoMatch:
		return "NoMatch"
	case Cancelled:
		return "Cancelled"
	case Errored:
		return "Errored"
	default:
		return "OutcomeKind(?)"
	}
}

// Outcome is the result of one attempt to parse (or one item of an
// all-parses sequence).
type Outcome struct {
	Kind    OutcomeKind
	Result  combi.Result
	End     combi.Position
	Deepest combi.Position
	Err     error
}

// Options configures a Parse or ParseAll call. The zero value is not
// ready to use; start from DefaultOptions.
type Options struct {
	// RequireFullInput requires the matched span to reach end-of-input;
	// a parse that succeeds short of that is skipped, in Parse and in
	// ParseAll alike, and the next alternative is tried. Defaults to true.
	RequireFullInput bool
	// Memoize selects the memoizing dispatcher instead of NonMemoizing.
	// Ignored if Policy is set.
	Memoize bool
	// Policy overrides the default dispatcher construction entirely,
	// for callers who want Restricted or Tracing wrapping.
	Policy combi.Dispatcher
	// Observer receives a Dispatch callback before each message is
	// interpreted, independent of Policy.
	Observer combi.Observer
}

// DefaultOptions returns the spec's default configuration:
// RequireFullInput true, non-memoizing, no observer.
func DefaultOptions() Options {
	return Options{RequireFullInput: true}
}

func dispatcherFor(src combi.Source, opts Options) combi.Dispatcher {
	if opts.Policy != nil {
		return opts.Policy
	}
	if opts.Memoize {
		return policy.NewMemoizing(src)
	}
	return policy.New(src)
}

// Parse runs grammar against src once, returning its first outcome. If
// RequireFullInput is set, successive parses are tried (as ParseAll would
// enumerate them) until one reaches end-of-input, the sequence is
// exhausted, or ctx is cancelled.
func Parse(ctx context.Context, grammar combi.Matcher, src combi.Source, opts Options) Outcome {
	next := ParseAll(ctx, grammar, src, opts)
	for {
		outcome, ok := next()
		if !ok {
			return Outcome{Kind: NoMatch}
		}
		if outcome.Kind != Matched {
			return outcome
		}
		if !opts.RequireFullInput || src.AtEnd(outcome.End) {
			return outcome
		}
		tracer().Debugf("parse: match at %v is not full input, trying next alternative", outcome.End)
	}
}

// ParseAll returns a closure-based iterator over every parse grammar can
// produce against src, in the order the trampoline's backtracking visits
// them (§8's concrete scenarios enumerate this order for Repeat and
// Choice). Calling the returned function advances the sequence; it
// returns ok == false once the sequence is exhausted, and keeps returning
// false afterwards. With RequireFullInput set, parses that end short of
// end-of-input are not returned.
//
// This realises the spec's coroutine-like "pull the next parse" contract
// as a plain Go closure rather than a goroutine-backed channel: the
// trampoline is already a resumable state machine (its own frame stack is
// the continuation), so pausing it just means returning from this
// function and resuming means calling trampoline.Run again with the same
// stack and a Resume message.
func ParseAll(ctx context.Context, grammar combi.Matcher, src combi.Source, opts Options) func() (Outcome, bool) {
	dispatcher := dispatcherFor(src, opts)
	stack := trampoline.NewFrameStack()
	msg := trampoline.Start(grammar, src.Start())
	done := false
	var lastState combi.State

	var next func() (Outcome, bool)
	next = func() (Outcome, bool) {
		if done {
			return Outcome{}, false
		}
		result := trampoline.Run(ctx, dispatcher, opts.Observer, stack, msg)
		switch result.Kind {
		case combi.Success:
			lastState = result.State
			msg = trampoline.Resume(grammar, lastState)
			if opts.RequireFullInput && !src.AtEnd(result.Pos) {
				tracer().Debugf("parse: match at %v is not full input, trying next alternative", result.Pos)
				return next()
			}
			return Outcome{Kind: Matched, Result: result.Result, End: result.Pos}, true
		case combi.Failure:
			done = true
			return Outcome{Kind: NoMatch, Deepest: result.Deepest}, true
		case combi.Cancelled:
			done = true
			return Outcome{Kind: Cancelled}, true
		case combi.Errored:
			done = true
			return Outcome{Kind: Errored, Err: result.Err}, true
		default:
			done = true
			return Outcome{Kind: Errored, Err: combi.NewGrammarError(nil, "trampoline returned an unexpected message kind")}, true
		}
	}
	return next
}
