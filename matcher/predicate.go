package matcher

import "github.com/npillmayer/combi"

// Predicate consumes exactly one token, succeeding with that token (turned
// into a Result via build) if test accepts it.
type Predicate struct {
	name  string
	test  func(combi.Token) bool
	build func(combi.Token) combi.Result
}

var _ combi.Matcher = (*Predicate)(nil)

// NewPredicate builds a Predicate named name (used only for String), which
// accepts one token when test(token) is true.
func NewPredicate(name string, test func(combi.Token) bool, build func(combi.Token) combi.Result) *Predicate {
	if build == nil {
		build = func(t combi.Token) combi.Result { return t }
	}
	return &Predicate{name: name, test: test, build: build}
}

func (p *Predicate) String() string { return "Predicate(" + p.name + ")" }

func (p *Predicate) Enter(src combi.Source, pos combi.Position) combi.Message {
	if src.AtEnd(pos) {
		return combi.Message{Kind: combi.Failure, Deepest: pos}
	}
	tok, next := src.Next(pos)
	if !p.test(tok) {
		return combi.Message{Kind: combi.Failure, Deepest: pos}
	}
	return combi.Message{Kind: combi.Success, State: exhausted, Pos: next, Result: p.build(tok)}
}

func (p *Predicate) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Failure}
}

func (p *Predicate) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	return combi.Message{Kind: combi.Failure}
}
