package input

import (
	"fmt"

	"github.com/npillmayer/combi"
)

// offset is a Position backed by a plain integer index. It is shared by
// ByteSource, RuneSource and TokenSource, which all address a flat slice.
type offset int

var _ combi.Position = offset(0)

func (o offset) Less(other combi.Position) bool  { return o < other.(offset) }
func (o offset) Equal(other combi.Position) bool { return o == other.(offset) }
func (o offset) String() string                  { return fmt.Sprintf("#%d", int(o)) }

// ByteSource is a combi.Source over a byte slice; each Token is a byte.
type ByteSource struct {
	buf []byte
}

var _ combi.Source = (*ByteSource)(nil)

// Bytes wraps b as a combi.Source. b is not copied and must not be mutated
// while a parse is in progress.
func Bytes(b []byte) *ByteSource {
	return &ByteSource{buf: b}
}

// String wraps s as a byte-oriented combi.Source.
func String(s string) *ByteSource {
	return &ByteSource{buf: []byte(s)}
}

func (s *ByteSource) Start() combi.Position { return offset(0) }

func (s *ByteSource) AtEnd(p combi.Position) bool {
	return int(p.(offset)) >= len(s.buf)
}

func (s *ByteSource) Next(p combi.Position) (combi.Token, combi.Position) {
	i := int(p.(offset))
	return s.buf[i], offset(i + 1)
}

// Slice returns the underlying bytes between two positions, for building
// Results without re-walking the source token by token.
func (s *ByteSource) Slice(from, to combi.Position) []byte {
	return s.buf[int(from.(offset)):int(to.(offset))]
}
