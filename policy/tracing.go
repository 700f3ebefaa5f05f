package policy

import (
	"fmt"
	"strings"

	"github.com/npillmayer/combi"
	"github.com/pterm/pterm"
)

// Tracing wraps a base Dispatcher, printing each dispatched Message to a
// pterm-styled writer. It is meant for interactive grammar debugging (see
// cmd/combirepl), not for use in a hot parsing path.
type Tracing struct {
	base   combi.Dispatcher
	Printer *pterm.PrefixPrinter
}

var _ combi.Dispatcher = (*Tracing)(nil)
var _ combi.Observer = (*Tracing)(nil)

// NewTracing wraps base with pterm-based dispatch logging.
func NewTracing(base combi.Dispatcher) *Tracing {
	p := pterm.Debug
	return &Tracing{base: base, Printer: &p}
}

func (t *Tracing) OnExecute(stack combi.Stack, msg combi.Message) combi.Message {
	t.print(stack.Len(), msg)
	return t.base.OnExecute(stack, msg)
}

func (t *Tracing) OnSuccess(stack combi.Stack, msg combi.Message) combi.Message {
	t.print(stack.Len(), msg)
	return t.base.OnSuccess(stack, msg)
}

func (t *Tracing) OnFailure(stack combi.Stack, msg combi.Message) combi.Message {
	t.print(stack.Len(), msg)
	return t.base.OnFailure(stack, msg)
}

// Dispatch implements combi.Observer, so a Tracing value can also be
// installed via engine.Options.Observer against any Dispatcher, not just
// one it wraps.
func (t *Tracing) Dispatch(msg combi.Message, depth int, pos combi.Position) {
	t.print(depth, msg)
}

func (t *Tracing) print(depth int, msg combi.Message) {
	indent := strings.Repeat("  ", depth)
	switch msg.Kind {
	case combi.Execute:
		t.Printer.Println(fmt.Sprintf("%s%v @ %v", indent, msg.Matcher, msg.Pos))
	case combi.Success:
		t.Printer.Println(fmt.Sprintf("%s-> success: %v @ %v", indent, msg.Result, msg.Pos))
	case combi.Failure:
		t.Printer.Println(fmt.Sprintf("%s-> failure", indent))
	case combi.Errored:
		pterm.Error.Println(fmt.Sprintf("%s-> error: %v", indent, msg.Err))
	case combi.Cancelled:
		pterm.Warning.Println(fmt.Sprintf("%s-> cancelled", indent))
	}
}
