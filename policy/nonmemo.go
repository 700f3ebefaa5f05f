package policy

import (
	"github.com/npillmayer/combi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.policy'.
func tracer() tracing.Trace {
	return tracing.Select("combi.policy")
}

// NonMemoizing is the baseline combi.Dispatcher: every Execute pushes its
// parent frame (if any) and invokes the matcher directly, with no memo
// table and no cut/commit bookkeeping.
type NonMemoizing struct {
	Src combi.Source
}

var _ combi.Dispatcher = (*NonMemoizing)(nil)

// New builds a NonMemoizing dispatcher over src.
func New(src combi.Source) *NonMemoizing {
	return &NonMemoizing{Src: src}
}

func (p *NonMemoizing) OnExecute(stack combi.Stack, msg combi.Message) combi.Message {
	if msg.Parent.Matcher != nil {
		stack.Push(msg.Parent)
	}
	if msg.State == nil {
		return msg.Matcher.Enter(p.Src, msg.Pos)
	}
	return msg.Matcher.OnChildFailure(p.Src, msg.State)
}

func (p *NonMemoizing) OnSuccess(stack combi.Stack, msg combi.Message) combi.Message {
	frame, ok := stack.Pop()
	if !ok {
		return msg
	}
	return frame.Matcher.OnChildSuccess(p.Src, frame.State, msg.State, msg.Result, msg.Pos)
}

func (p *NonMemoizing) OnFailure(stack combi.Stack, msg combi.Message) combi.Message {
	frame, ok := stack.Pop()
	if !ok {
		return msg
	}
	return frame.Matcher.OnChildFailure(p.Src, frame.State)
}
