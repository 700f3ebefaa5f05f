package matcher

import (
	"fmt"

	"github.com/npillmayer/combi"
)

// exhausted is the sentinel continuation state handed back by terminal
// matchers (Literal, EndOfInput, And/Not lookahead) that have exactly one
// outcome: asking them to resume always fails. It must be a non-nil
// interface value so that callers holding it (e.g. Choice) can tell "there
// is a continuation, though a trivial one" apart from combi.State(nil).
var exhausted combi.State = struct{}{}

// Literal matches an exact run of tokens, comparable with ==.
type Literal struct {
	name     string
	expected []combi.Token
	build    func(matched []combi.Token) combi.Result
}

var _ combi.Matcher = (*Literal)(nil)

// NewLiteral builds a Literal over an arbitrary token slice, with a custom
// result constructor. Tokens are compared with ==, so token types used
// with Literal must be comparable.
func NewLiteral(name string, expected []combi.Token, build func([]combi.Token) combi.Result) *Literal {
	return &Literal{name: name, expected: expected, build: build}
}

// String builds a Literal over a Go string, matched byte-by-byte, whose
// Result on success is the matched string itself. This is the common case
// exercised throughout the package's tests.
func String(s string) *Literal {
	expected := make([]combi.Token, len(s))
	for i := 0; i < len(s); i++ {
		expected[i] = s[i]
	}
	return &Literal{
		name:     s,
		expected: expected,
		build: func(matched []combi.Token) combi.Result {
			b := make([]byte, len(matched))
			for i, t := range matched {
				b[i] = t.(byte)
			}
			return string(b)
		},
	}
}

func (l *Literal) String() string { return fmt.Sprintf("Literal(%q)", l.name) }

func (l *Literal) Enter(src combi.Source, pos combi.Position) combi.Message {
	cur := pos
	matched := make([]combi.Token, 0, len(l.expected))
	for _, want := range l.expected {
		if src.AtEnd(cur) {
			return combi.Message{Kind: combi.Failure, Deepest: cur}
		}
		tok, next := src.Next(cur)
		if tok != want {
			return combi.Message{Kind: combi.Failure, Deepest: cur}
		}
		matched = append(matched, tok)
		cur = next
	}
	return combi.Message{Kind: combi.Success, State: exhausted, Pos: cur, Result: l.build(matched)}
}

// OnChildSuccess is unreachable: Literal never delegates to a child.
func (l *Literal) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Failure}
}

// OnChildFailure implements literal's contract: resumption always fails.
func (l *Literal) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	return combi.Message{Kind: combi.Failure}
}
