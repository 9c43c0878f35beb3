// Package checkpoint implements spec.md §4.11's CheckpointIO: periodic
// persistence of a worker's board state to an embedded BadgerDB store, keyed
// by a digest of the tile set so a resume can refuse to apply a record
// written for a different puzzle. Records are a (tile_set_digest, R, C,
// placements, used, seed, cumulative_compute_ms, written_at) tuple,
// gob-encoded, grounded on the teacher's badger-backed Storage wrapper
// generalized from JSON preferences/stats records to gob-encoded search
// checkpoints. The store opens Badger with ZSTD value-log compression
// (github.com/dgraph-io/badger/v4/options), exercising the klauspost/compress
// dependency Badger already pulls in transitively.
package checkpoint
