/*
Package combi is the core of a parser-combinator engine.

Grammars are built as a directed acyclic graph of matcher nodes (package
matcher). Parsing proceeds by a trampolined interpreter (package trampoline)
that drives those matchers through message-passing, under the control of a
pluggable execution policy (package policy). Package input supplies the
abstraction over the sequence being parsed, and package engine exposes the
Parse boundary that wires grammar, input, and policy together.

This root package holds only the vocabulary shared across all of those:
positions, tokens, messages, frames, and the Matcher/Dispatcher interfaces
themselves. It contains no algorithm of its own. Package structure is as
follows:

■ input: abstractions and implementations of the input sequence a parse runs over.

■ matcher: the matcher catalogue — literal, sequence, choice, repeat, optional,
transform, reference, and a handful of supplementary leaf matchers.

■ trampoline: the matcher-agnostic message loop and its frame stack.

■ policy: pluggable interpretation of messages — non-memoizing, memoizing,
restricted-backtracking, and tracing.

■ engine: the Parse entry point, gluing the above together for a caller.
*/
package combi
