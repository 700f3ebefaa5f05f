package input

import "github.com/npillmayer/combi"

// TokenSource is a combi.Source over a pre-tokenized slice of arbitrary
// combi.Token values, for grammars that run above a separate scanner
// rather than directly over bytes or runes.
type TokenSource struct {
	toks []combi.Token
}

var _ combi.Source = (*TokenSource)(nil)

// Tokens wraps a pre-scanned token slice as a combi.Source.
func Tokens(toks []combi.Token) *TokenSource {
	return &TokenSource{toks: toks}
}

func (s *TokenSource) Start() combi.Position { return offset(0) }

func (s *TokenSource) AtEnd(p combi.Position) bool {
	return int(p.(offset)) >= len(s.toks)
}

func (s *TokenSource) Next(p combi.Position) (combi.Token, combi.Position) {
	i := int(p.(offset))
	return s.toks[i], offset(i + 1)
}
