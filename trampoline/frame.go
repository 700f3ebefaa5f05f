package trampoline

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/combi"
)

// FrameStack is a combi.Stack backed by gods' arraystack, the same LIFO
// container the teacher uses for its parse stacks.
type FrameStack struct {
	stack *arraystack.Stack
}

var _ combi.Stack = (*FrameStack)(nil)

// NewFrameStack returns an empty FrameStack.
func NewFrameStack() *FrameStack {
	return &FrameStack{stack: arraystack.New()}
}

func (s *FrameStack) Push(f combi.Frame) { s.stack.Push(f) }

func (s *FrameStack) Pop() (combi.Frame, bool) {
	v, ok := s.stack.Pop()
	if !ok {
		return combi.Frame{}, false
	}
	return v.(combi.Frame), true
}

func (s *FrameStack) Peek() (combi.Frame, bool) {
	v, ok := s.stack.Peek()
	if !ok {
		return combi.Frame{}, false
	}
	return v.(combi.Frame), true
}

func (s *FrameStack) Len() int { return s.stack.Size() }
