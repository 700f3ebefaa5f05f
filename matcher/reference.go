package matcher

import "github.com/npillmayer/combi"

// Reference is a named, lazily-bound edge in the grammar DAG: recursive
// and mutually recursive rules build the cycle through a Reference whose
// target is filled in after all rules exist, via a Grammar's Define/Freeze.
type Reference struct {
	name   string
	target combi.Matcher
}

var _ combi.Matcher = (*Reference)(nil)

// NewReference builds an unbound Reference named name. Resolve it with
// Bind, or through a Grammar.
func NewReference(name string) *Reference {
	return &Reference{name: name}
}

// Bind sets the matcher this Reference stands for. Binding twice is a
// programming error in a well-formed grammar and simply overwrites the
// previous target.
func (r *Reference) Bind(target combi.Matcher) { r.target = target }

func (r *Reference) String() string { return "Reference(" + r.name + ")" }

func (r *Reference) Enter(src combi.Source, pos combi.Position) combi.Message {
	if r.target == nil {
		return combi.Message{Kind: combi.Errored, Err: combi.NewGrammarError(r, "unresolved reference "+r.name)}
	}
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: r.target,
		State:   nil,
		Pos:     pos,
		Parent:  combi.Frame{Matcher: r, State: nil},
	}
}

func (r *Reference) OnChildSuccess(src combi.Source, state, childState combi.State, result combi.Result, pos combi.Position) combi.Message {
	return combi.Message{Kind: combi.Success, State: childState, Pos: pos, Result: result}
}

func (r *Reference) OnChildFailure(src combi.Source, state combi.State) combi.Message {
	if state == nil {
		return combi.Message{Kind: combi.Failure}
	}
	return combi.Message{
		Kind:    combi.Execute,
		Matcher: r.target,
		State:   state,
		Pos:     nil,
		Parent:  combi.Frame{Matcher: r, State: nil},
	}
}
