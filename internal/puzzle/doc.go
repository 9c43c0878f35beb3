// Package puzzle defines the immutable tile catalog and rotation algebra for
// edge-matching puzzles: colors, tiles, placements, hints, and the TileSet
// that validates and indexes them.
//
// A Tile is a square with four colored edges, indexed N=0, E=1, S=2, W=3.
// A Placement pairs a tile with one of its four 90-degree rotations. Color 0
// is reserved for the grid border; tiles are classified as corner, edge, or
// interior by how many zero edges they carry.
package puzzle
