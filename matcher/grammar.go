package matcher

import (
	"fmt"
	"sort"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.matcher'.
func tracer() tracing.Trace {
	return tracing.Select("combi.matcher")
}

// Grammar is a named collection of rules built around Reference matchers,
// letting rules refer to each other (including recursively) before every
// rule has been defined. Build the rules with Ref for forward references,
// call Define once per rule, then Freeze to catch unresolved names before
// a parse ever starts.
type Grammar struct {
	root  string
	refs  map[string]*Reference
	order []string
}

// NewGrammar creates an empty Grammar whose start rule is named root.
func NewGrammar(root string) *Grammar {
	return &Grammar{root: root, refs: make(map[string]*Reference)}
}

// Ref returns the Reference for name, creating an unbound one if this is
// the first mention. Use it to build a rule body that mentions a rule
// not yet Defined.
func (g *Grammar) Ref(name string) *Reference {
	if r, ok := g.refs[name]; ok {
		return r
	}
	r := NewReference(name)
	g.refs[name] = r
	g.order = append(g.order, name)
	return r
}

// Define binds name's Reference to m. Calling Define twice for the same
// name rebinds it; the last call wins.
func (g *Grammar) Define(name string, m combi.Matcher) {
	g.Ref(name).Bind(m)
	tracer().Debugf("grammar: defined rule %q", name)
}

// Start returns the Matcher to hand to engine.Parse: the Reference for
// the grammar's root rule.
func (g *Grammar) Start() combi.Matcher {
	return g.Ref(g.root)
}

// Freeze verifies every mentioned rule has been Defined, returning a
// *combi.GrammarError naming the first unresolved one it finds.
func (g *Grammar) Freeze() error {
	for _, name := range g.order {
		if g.refs[name].target == nil {
			return combi.NewGrammarError(g.refs[name], fmt.Sprintf("rule %q referenced but never defined", name))
		}
	}
	return nil
}

// Dump lists the grammar's rule names in a deterministic order, for
// debugging a large binding table.
func (g *Grammar) Dump() []string {
	names := make([]string, 0, len(g.refs))
	for name := range g.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
