package matcher_test

import (
	"context"
	"testing"

	"github.com/npillmayer/combi/engine"
	"github.com/npillmayer/combi/input"
	"github.com/npillmayer/combi/matcher"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionalPrefersPresentThenFallsBackToAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewOptional(matcher.String("a"), "none")
	src := input.String("a")
	opts := engine.Options{RequireFullInput: false}

	next := engine.ParseAll(context.Background(), g, src, opts)

	first, ok := next()
	if !ok || first.Kind != engine.Matched || first.Result.(string) != "a" {
		t.Fatalf("expected the present alternative first, got %v (ok=%v)", first, ok)
	}
	second, ok := next()
	if !ok || second.Kind != engine.Matched || second.Result.(string) != "none" || second.End.String() != "#0" {
		t.Fatalf("expected the absent alternative to follow, at position #0, got %v (ok=%v)", second, ok)
	}
	third, ok := next()
	if !ok || third.Kind != engine.NoMatch {
		t.Fatalf("expected the sequence to terminate with NoMatch, got %v (ok=%v)", third, ok)
	}
}

func TestOptionalAbsentWhenChildNeverMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewOptional(matcher.String("a"), "none")
	src := input.String("b")
	outcome := engine.Parse(context.Background(), g, src, engine.Options{RequireFullInput: false})
	if outcome.Kind != engine.Matched || outcome.Result.(string) != "none" {
		t.Fatalf("expected Matched(none), got %v", outcome)
	}
}
