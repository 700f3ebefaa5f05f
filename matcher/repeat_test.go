package matcher_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/engine"
	"github.com/npillmayer/combi/input"
	"github.com/npillmayer/combi/matcher"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRepeatGreedyBacktrackOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewRepeat(matcher.String("a"), 0, 3, true, nil)
	src := input.String("aaaa")
	opts := engine.DefaultOptions()
	opts.RequireFullInput = false

	next := engine.ParseAll(context.Background(), g, src, opts)
	wantLens := []int{3, 2, 1, 0}
	for i, wantLen := range wantLens {
		outcome, ok := next()
		if !ok || outcome.Kind != engine.Matched {
			t.Fatalf("parse %d: expected Matched, got %v (ok=%v)", i, outcome.Kind, ok)
		}
		got := outcome.Result.([]combi.Result)
		if len(got) != wantLen {
			t.Errorf("parse %d: expected %d reps, got %d (%v)", i, wantLen, len(got), got)
		}
		if outcome.End.String() != offsetString(wantLen) {
			t.Errorf("parse %d: expected end position %s, got %v", i, offsetString(wantLen), outcome.End)
		}
	}
	last, ok := next()
	if !ok || last.Kind != engine.NoMatch {
		t.Fatalf("expected a terminating NoMatch after 4 parses, got %v (ok=%v)", last.Kind, ok)
	}
	if _, ok := next(); ok {
		t.Errorf("expected the sequence to be exhausted after NoMatch")
	}
}

func offsetString(n int) string {
	return "#" + strconv.Itoa(n)
}

func TestRepeatNonGreedyGrowsOnBacktrack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewRepeat(matcher.String("a"), 0, 3, false, nil)
	src := input.String("aaaa")
	opts := engine.DefaultOptions()
	opts.RequireFullInput = false

	next := engine.ParseAll(context.Background(), g, src, opts)
	wantLens := []int{0, 1, 2, 3}
	for i, wantLen := range wantLens {
		outcome, ok := next()
		if !ok || outcome.Kind != engine.Matched {
			t.Fatalf("parse %d: expected Matched, got %v (ok=%v)", i, outcome.Kind, ok)
		}
		got := outcome.Result.([]combi.Result)
		if len(got) != wantLen {
			t.Errorf("parse %d: expected %d reps, got %d", i, wantLen, len(got))
		}
	}
}
