// Package search implements spec.md §4.8's BacktrackSearch: the recursive
// depth-first solver that interleaves arc-consistency propagation,
// singleton forcing, MRV cell selection, and piece-ordering, grounded on
// the teacher's negamax Searcher (push/unmake, atomic cancellation, node
// counters) but trading alpha-beta for constraint satisfaction.
package search
