/*
Package input implements combi.Source over a few common input shapes: raw
bytes, decoded runes, and pre-tokenized item slices (optionally produced by
draining a lexmachine lexer up front).

All three satisfy the same minimal contract — Start, AtEnd, Next — so
matchers built against one work unmodified against the others, as long as
the tokens they compare against match what the chosen Source hands out.
*/
package input
