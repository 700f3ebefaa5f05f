package matcher_test

import (
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/engine"
	"github.com/npillmayer/combi/input"
	"github.com/npillmayer/combi/matcher"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTransformAppliesToEveryBacktrackedResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.matcher")
	defer teardown()

	upper := matcher.NewTransform(matcher.NewChoice(matcher.String("foo"), matcher.String("foobar")),
		func(r combi.Result) combi.Result { return strings.ToUpper(r.(string)) })

	src := input.String("foobar")
	next := engine.ParseAll(context.Background(), upper, src, engine.Options{RequireFullInput: false})

	first, ok := next()
	if !ok || first.Result.(string) != "FOO" {
		t.Fatalf("expected first alternative transformed to FOO, got %v (ok=%v)", first, ok)
	}
	second, ok := next()
	if !ok || second.Result.(string) != "FOOBAR" {
		t.Fatalf("expected second alternative transformed to FOOBAR, got %v (ok=%v)", second, ok)
	}
}
