package input_test

import (
	"testing"

	"github.com/npillmayer/combi/input"
)

func TestRuneSourceDecodesUTF8(t *testing.T) {
	src := input.Runes("héllo")
	p := src.Start()
	var got []rune
	for !src.AtEnd(p) {
		var tok interface{}
		tok, p = src.Next(p)
		got = append(got, tok.(rune))
	}
	if string(got) != "héllo" {
		t.Errorf("expected to recover %q, got %q", "héllo", string(got))
	}
}

func TestRuneSourceSlice(t *testing.T) {
	src := input.Runes("héllo")
	start := src.Start()
	_, p1 := src.Next(start)
	_, p2 := src.Next(p1)
	if got := src.Slice(start, p2); got != "hé" {
		t.Errorf("expected slice %q, got %q", "hé", got)
	}
}
