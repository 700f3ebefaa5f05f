package matcher

import "github.com/npillmayer/combi"

// EndOfInput succeeds, consuming nothing, iff pos is the source's
// end-of-input position.
type EndOfInput struct{}

var _ combi.Matcher = EndOfInput{}

func (EndOfInput) String() string { return "EndOfInput" }

func (EndOfInput) Enter(src combi.Source, pos combi.Position) combi.Message {
	if src.AtEnd(pos) {
		return combi.Message{Kind: combi.Success, State: exhausted, Pos: pos, Result: nil}
	}
	return combi.Message{Kind: combi.Failure, Deepest: pos}
}

func (EndOfInput) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Failure}
}

func (EndOfInput) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	return combi.Message{Kind: combi.Failure}
}
