// Package board implements the mutable R x C grid of tile placements
// searched by the backtracking engine: Board tracks which cell holds which
// (tile, rotation), which tile ids are already used, and can score how many
// internal edges currently match.
//
// Board does not itself enforce edge consistency on Place — per spec.md
// §4.3, that is the propagator's job. Board only guards against placing the
// same tile id twice, which is always a fatal implementation bug rather
// than an expected search outcome.
package board
