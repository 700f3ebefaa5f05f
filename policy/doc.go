/*
Package policy provides combi.Dispatcher implementations: the pluggable
execution strategies of the interpreter.

NonMemoizing is the baseline: plain push/Enter, pop/OnChildSuccess or
pop/OnChildFailure. Memoizing wraps it with a table keyed by matcher
identity and input position, so that a matcher is entered fresh at most
once per position; resumptions from a continuation state are not memoized
and always reach the matcher.
Restricted layers Try/Cut commit semantics on top of either. Tracing wraps
any Dispatcher with pterm-based diagnostic output driven by the same
combi.Observer hook engine.Parse exposes to callers.
*/
package policy
