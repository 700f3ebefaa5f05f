package matcher_test

import (
	"context"
	"testing"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/engine"
	"github.com/npillmayer/combi/input"
	"github.com/npillmayer/combi/matcher"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSequenceHelloWorld(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewSequence(nil, matcher.String("hello"), matcher.String("world"))
	src := input.String("helloworld")

	next := engine.ParseAll(context.Background(), g, src, engine.DefaultOptions())
	outcome, ok := next()
	if !ok || outcome.Kind != engine.Matched {
		t.Fatalf("expected a Matched outcome, got %v (ok=%v)", outcome.Kind, ok)
	}
	results := outcome.Result.([]combi.Result)
	if len(results) != 2 || results[0] != "hello" || results[1] != "world" {
		t.Errorf("unexpected results: %v", results)
	}

	outcome, ok = next()
	if !ok || outcome.Kind != engine.NoMatch {
		t.Fatalf("expected exactly one parse, got second outcome %v (ok=%v)", outcome.Kind, ok)
	}

	if _, ok = next(); ok {
		t.Errorf("expected the sequence to be exhausted")
	}
}

// TestSequenceBacktracksIntoEarlierChild builds Sequence(Repeat("a",0,3,
// greedy), "a") against "aa": the greedy Repeat first consumes both letters,
// leaving nothing for the following "a" to match. Sequence must retreat
// into the Repeat's own backtracking (one fewer repetition) rather than
// failing outright, so the whole thing matches with the Repeat holding one
// "a" and the trailing literal claiming the other.
func TestSequenceBacktracksIntoEarlierChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	repeated := matcher.NewRepeat(matcher.String("a"), 0, 3, true, nil)
	g := matcher.NewSequence(nil, repeated, matcher.String("a"))
	src := input.String("aa")

	outcome := engine.Parse(context.Background(), g, src, engine.DefaultOptions())
	if outcome.Kind != engine.Matched {
		t.Fatalf("expected Sequence to backtrack into Repeat and match, got %v", outcome.Kind)
	}
	results := outcome.Result.([]combi.Result)
	reps := results[0].([]combi.Result)
	if len(reps) != 1 || reps[0] != "a" || results[1] != "a" {
		t.Errorf("expected Repeat to hold back to one \"a\" and the literal to claim the other, got %v", results)
	}
}

func TestSequenceFailureDeepestPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewSequence(nil, matcher.String("a"), matcher.String("b"))
	src := input.String("ax")
	opts := engine.DefaultOptions()
	opts.RequireFullInput = false
	outcome := engine.Parse(context.Background(), g, src, opts)
	if outcome.Kind != engine.NoMatch {
		t.Fatalf("expected NoMatch, got %v", outcome.Kind)
	}
	if outcome.Deepest == nil || outcome.Deepest.String() != "#1" {
		t.Errorf("expected deepest position 1, got %v", outcome.Deepest)
	}
}
