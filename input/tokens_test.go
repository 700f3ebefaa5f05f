package input_test

import (
	"testing"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/input"
)

type wordToken string

func TestTokenSourceWalksPreScannedTokens(t *testing.T) {
	toks := []combi.Token{wordToken("the"), wordToken("quick"), wordToken("fox")}
	src := input.Tokens(toks)
	p := src.Start()
	var got []wordToken
	for !src.AtEnd(p) {
		var tok combi.Token
		tok, p = src.Next(p)
		got = append(got, tok.(wordToken))
	}
	if len(got) != 3 || got[0] != "the" || got[2] != "fox" {
		t.Errorf("expected to recover the original token slice, got %v", got)
	}
}
