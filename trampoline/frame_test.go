package trampoline_test

import (
	"testing"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/trampoline"
)

type stubMatcher struct{ name string }

func (m stubMatcher) String() string { return m.name }
func (m stubMatcher) Enter(src combi.Source, pos combi.Position) combi.Message {
	return combi.Message{}
}
func (m stubMatcher) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{}
}
func (m stubMatcher) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	return combi.Message{}
}

func TestFrameStackIsLIFO(t *testing.T) {
	s := trampoline.NewFrameStack()
	if s.Len() != 0 {
		t.Fatalf("expected an empty stack, got length %d", s.Len())
	}
	s.Push(combi.Frame{Matcher: stubMatcher{"a"}})
	s.Push(combi.Frame{Matcher: stubMatcher{"b"}})
	if s.Len() != 2 {
		t.Fatalf("expected length 2, got %d", s.Len())
	}
	top, ok := s.Peek()
	if !ok || top.Matcher.String() != "b" {
		t.Fatalf("expected to peek %q on top, got %v (ok=%v)", "b", top, ok)
	}
	popped, ok := s.Pop()
	if !ok || popped.Matcher.String() != "b" {
		t.Fatalf("expected to pop %q first, got %v (ok=%v)", "b", popped, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("expected length 1 after one pop, got %d", s.Len())
	}
	popped, ok = s.Pop()
	if !ok || popped.Matcher.String() != "a" {
		t.Fatalf("expected to pop %q second, got %v (ok=%v)", "a", popped, ok)
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("expected Pop on an empty stack to report ok=false")
	}
}

func TestStartBuildsRootExecuteWithNoParentFrame(t *testing.T) {
	root := stubMatcher{"root"}
	pos := combi.Position(nil)
	msg := trampoline.Start(root, pos)
	if msg.Kind != combi.Execute {
		t.Fatalf("expected an Execute message, got %v", msg.Kind)
	}
	if msg.Matcher != combi.Matcher(root) {
		t.Fatalf("expected Start to target root")
	}
	if msg.Parent.Matcher != nil {
		t.Fatalf("expected Start's Parent to be the zero Frame, got %v", msg.Parent)
	}
	if msg.State != nil {
		t.Fatalf("expected Start's State to be nil (fresh entry)")
	}
}
