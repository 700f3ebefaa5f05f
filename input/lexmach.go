package input

import (
	"github.com/npillmayer/combi"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'combi.input'.
func tracer() tracing.Trace {
	return tracing.Select("combi.input")
}

// DrainLexmachine runs a compiled lexmachine.Lexer over data to completion
// and returns the resulting tokens as a TokenSource. The core has no
// streaming/incremental mode (§1 Non-goals), so eager draining is the only
// mode offered: build the whole token slice once, then let matchers walk
// it like any other pre-tokenized input.
//
// Lexer errors are reported to onError (nil logs them to the 'combi.input'
// tracer). After an unconsumed-input error the scan continues from the
// position lexmachine recommends, as the teacher's lr/scanner/lexmach
// adapter does; any other error ends the drain and is returned.
func DrainLexmachine(lexer *lexmachine.Lexer, data []byte, onError func(error)) (*TokenSource, error) {
	if onError == nil {
		onError = func(err error) { tracer().Errorf("lexmachine error: %v", err) }
	}
	scanner, err := lexer.Scanner(data)
	if err != nil {
		return nil, err
	}
	var toks []combi.Token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			onError(err)
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				scanner.TC = ui.FailTC
				continue
			}
			return nil, err
		}
		if eof {
			break
		}
		toks = append(toks, tok.(*lexmachine.Token))
	}
	tracer().Debugf("drained %d tokens", len(toks))
	return Tokens(toks), nil
}
