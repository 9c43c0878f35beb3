package puzzle

// Placement is a (tile_id, rotation) pair packed as tile_id<<2 | rotation,
// per the bit-packing scheme spec.md §9 calls for. This shape keeps
// CellDomain bitsets compact (4*T bits for T tiles) and makes an EdgeIndex
// lookup a single AND across precomputed bitsets — the same trick the
// teacher's board.Move packs from/to/promotion/flag into one uint16 for.
type Placement uint32

// NoPlacement is the zero value; tile id 0 at rotation 0 is a valid
// placement, so callers that need an explicit "absent" sentinel should use
// a separate bool rather than comparing against this constant for anything
// but container zero-values.
const NoPlacement Placement = 0

// NewPlacement packs a tile id and rotation into a Placement.
func NewPlacement(tileID uint32, rotation int) Placement {
	return Placement(tileID<<2) | Placement(rotation&3)
}

// TileID unpacks the tile id.
func (p Placement) TileID() uint32 {
	return uint32(p) >> 2
}

// Rotation unpacks the rotation (0..3).
func (p Placement) Rotation() int {
	return int(p) & 3
}

// Hint is an externally supplied placement applied before search starts.
// Pinned hints (from the command line or a puzzle file's fixed-piece
// block) are placed directly on the board and never revisited. Not-pinned
// hints (a resumed checkpoint's prefix, per spec.md §4.10) are instead fed
// to the search as an ordered first-choice candidate at each of their
// cells, so a dead end anywhere beneath the resumed prefix can unwind
// through it exactly like any other candidate.
type Hint struct {
	Row, Col int
	TileID   uint32
	Rotation int
	Pinned   bool
}
