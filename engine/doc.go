/*
Package engine is the parse boundary: the one place that wires
input sources, the matcher DAG, a trampoline.Run loop and a
combi.Dispatcher together into Parse and ParseAll.

Nothing outside this package constructs a trampoline.FrameStack or calls
trampoline.Run directly; callers hand engine a grammar, a source and
Options and get back Outcomes.
*/
package engine
