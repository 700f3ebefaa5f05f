/*
Package matcher is the matcher catalogue: the grammar-DAG node types and
their per-variant enter/on-success/on-failure state machines.

Literal, Sequence, Choice, Repeat, Optional, Transform and Reference cover
the representative core set. Predicate, And/Not lookahead, EndOfInput, Try
and Cut supplement it with the leaf and policy-marker matchers a complete
grammar needs but which the core specification treats as auxiliary.

None of these types call each other directly; every delegation to a child
is expressed as a combi.Message of Kind Execute, handed back to whichever
Dispatcher is driving the parse.
*/
package matcher
