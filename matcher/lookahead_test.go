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

func TestAndPredicateConsumesNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewSequence(nil,
		matcher.NewAndPredicate(matcher.String("foo"), "lookahead-ok"),
		matcher.String("foo"),
	)
	src := input.String("foo")
	outcome := engine.Parse(context.Background(), g, src, engine.DefaultOptions())
	if outcome.Kind != engine.Matched {
		t.Fatalf("expected Matched, got %v", outcome.Kind)
	}
	got := outcome.Result.([]combi.Result)
	if got[0] != "lookahead-ok" || got[1] != "foo" {
		t.Errorf("unexpected results: %v", got)
	}
}

func TestNotPredicateRejectsMatchingLookahead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewNotPredicate(matcher.String("foo"), "absent")
	src := input.String("foo")
	outcome := engine.Parse(context.Background(), g, src, engine.Options{RequireFullInput: false})
	if outcome.Kind != engine.NoMatch {
		t.Fatalf("expected NoMatch when the lookahead matches, got %v", outcome.Kind)
	}
}

func TestNotPredicateSucceedsWhenAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewNotPredicate(matcher.String("foo"), "absent")
	src := input.String("bar")
	outcome := engine.Parse(context.Background(), g, src, engine.Options{RequireFullInput: false})
	if outcome.Kind != engine.Matched || outcome.Result.(string) != "absent" {
		t.Fatalf("expected Matched(absent), got %v", outcome)
	}
	if outcome.End.String() != "#0" {
		t.Errorf("expected no input consumed, got end position %v", outcome.End)
	}
}
