// Command combirepl is a small interactive shell that runs a fixed
// demonstration grammar, under the tracing policy, against whatever line
// the user types. It exists to give the terminal/readline dependencies a
// caller; it imports only the public combi/matcher/engine/policy surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/engine"
	"github.com/npillmayer/combi/input"
	"github.com/npillmayer/combi/matcher"
	"github.com/npillmayer/combi/policy"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{Text: "  >>", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: "  Error", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
}

// demoGrammar builds a tiny arithmetic-sum grammar:
//
//	Sum   ::= Digits ('+' Digits)*
//	Digits ::= digit+
func demoGrammar() combi.Matcher {
	digit := matcher.NewPredicate("digit", func(t combi.Token) bool {
		b, ok := t.(byte)
		return ok && b >= '0' && b <= '9'
	}, nil)
	digits := matcher.NewRepeat(digit, 1, -1, true, func(rs []combi.Result) combi.Result {
		var b strings.Builder
		for _, r := range rs {
			b.WriteByte(r.(byte))
		}
		return b.String()
	})
	plusDigits := matcher.NewSequence(func(rs []combi.Result) combi.Result {
		return rs[1]
	}, matcher.String("+"), digits)
	sum := matcher.NewSequence(func(rs []combi.Result) combi.Result {
		terms := []combi.Result{rs[0]}
		terms = append(terms, rs[1].([]combi.Result)...)
		return terms
	}, digits, matcher.NewRepeat(plusDigits, 0, -1, true, nil))
	return sum
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracing.Select("combi.trampoline").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to combirepl — try: 12+3+400")

	grammar := demoGrammar()
	repl, err := readline.New("combi> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runLine(grammar, line)
	}
	fmt.Println("Good bye!")
}

func runLine(grammar combi.Matcher, line string) {
	src := input.String(line)
	base := policy.New(src)
	tracingPolicy := policy.NewTracing(base)
	opts := engine.DefaultOptions()
	opts.Policy = tracingPolicy
	outcome := engine.Parse(context.Background(), grammar, src, opts)
	switch outcome.Kind {
	case engine.Matched:
		pterm.Info.Println(fmt.Sprintf("matched: %v (end %v)", outcome.Result, outcome.End))
	case engine.NoMatch:
		pterm.Error.Println(fmt.Sprintf("no match, deepest position: %v", outcome.Deepest))
	case engine.Cancelled:
		pterm.Warning.Println("cancelled")
	case engine.Errored:
		pterm.Error.Println(fmt.Sprintf("grammar error: %v", outcome.Err))
	}
}
