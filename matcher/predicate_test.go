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

func isDigit(t combi.Token) bool {
	b, ok := t.(byte)
	return ok && b >= '0' && b <= '9'
}

func TestPredicateMatchesOneToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewPredicate("digit", isDigit, nil)
	src := input.String("7")
	outcome := engine.Parse(context.Background(), g, src, engine.DefaultOptions())
	if outcome.Kind != engine.Matched {
		t.Fatalf("expected Matched, got %v", outcome.Kind)
	}
	if outcome.Result.(byte) != '7' {
		t.Errorf("expected token '7', got %v", outcome.Result)
	}
}

func TestPredicateFailsAtDeepestPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	g := matcher.NewPredicate("digit", isDigit, nil)
	src := input.String("x")
	outcome := engine.Parse(context.Background(), g, src, engine.DefaultOptions())
	if outcome.Kind != engine.NoMatch {
		t.Fatalf("expected NoMatch, got %v", outcome.Kind)
	}
	if outcome.Deepest.String() != "#0" {
		t.Errorf("expected deepest position #0, got %v", outcome.Deepest)
	}
}
