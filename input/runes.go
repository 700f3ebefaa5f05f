package input

import "github.com/npillmayer/combi"

// RuneSource is a combi.Source over the runes of a UTF-8 string, decoded
// once up front (the core's Non-goals exclude streaming input, so eager
// decoding is the natural fit). Each Token is a rune.
type RuneSource struct {
	runes []rune
}

var _ combi.Source = (*RuneSource)(nil)

// Runes decodes s into a rune-oriented combi.Source.
func Runes(s string) *RuneSource {
	return &RuneSource{runes: []rune(s)}
}

func (s *RuneSource) Start() combi.Position { return offset(0) }

func (s *RuneSource) AtEnd(p combi.Position) bool {
	return int(p.(offset)) >= len(s.runes)
}

func (s *RuneSource) Next(p combi.Position) (combi.Token, combi.Position) {
	i := int(p.(offset))
	return s.runes[i], offset(i + 1)
}

// Slice returns the underlying runes between two positions as a string.
func (s *RuneSource) Slice(from, to combi.Position) string {
	return string(s.runes[int(from.(offset)):int(to.(offset))])
}
