// Package cellselect implements spec.md §4.7: the MRV+degree cell selector
// and the within-cell piece-ordering policies (ascending, descending,
// fixed-random) applied to a domain before the search tries its
// candidates.
package cellselect
