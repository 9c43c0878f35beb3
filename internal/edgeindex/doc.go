// Package edgeindex precomputes, once per TileSet, the mapping from edge
// colors to the (tile, rotation) placements that expose them in each
// direction. DomainStore and the propagator use it to compute or re-derive
// a cell's candidate placements from its occupied neighbors' colors,
// without ever re-scanning the whole tile catalog.
package edgeindex
