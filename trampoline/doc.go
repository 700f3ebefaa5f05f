/*
Package trampoline drives the message-passing interpreter: a LIFO frame
stack and the loop that repeatedly hands Execute/Success/Failure messages
to a combi.Dispatcher until the parse bottoms out.

Neither the stack nor the loop know anything about matcher semantics or
about memoization, cut/commit, or tracing; those live in package policy,
behind the combi.Dispatcher seam.
*/
package trampoline
