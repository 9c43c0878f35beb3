// Package bitset provides a packed, word-parallel bitset over a dense
// integer address space (here, (tile-dense-index, rotation) slots, 4 slots
// per tile). It backs CellDomain and EdgeIndex's per-color buckets, the same
// way the teacher repo's board.Bitboard packs chess squares into a single
// uint64 to get set/clear/popcount/AND as single machine instructions.
package bitset
