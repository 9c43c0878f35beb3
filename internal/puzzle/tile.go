package puzzle

// Kind classifies a tile by how many of its edges carry BorderColor.
type Kind uint8

const (
	Interior Kind = iota // no zero edges
	Edge                 // at least one zero edge, but no two adjacent ones
	Corner               // two adjacent zero edges
)

// String renders a Kind for logging.
func (k Kind) String() string {
	switch k {
	case Corner:
		return "CORNER"
	case Edge:
		return "EDGE"
	default:
		return "INTERIOR"
	}
}

// Tile is an immutable square tile with four colored edges, indexed
// N=0, E=1, S=2, W=3. Tiles never mutate after construction; rotated views
// are precomputed once in NewTileSet.
type Tile struct {
	ID    uint32
	Edges [4]Color

	// rotations[r] is the edge tuple exposed when the tile is placed at
	// rotation r (0..3 quarter-turns clockwise). Precomputed in build().
	rotations [4][4]Color

	// canonicalRot is the smallest r producing the lexicographically
	// smallest rotated edge tuple — used for symmetry breaking.
	canonicalRot int

	kind Kind
}

// build fills in the derived, precomputed fields of a Tile from its raw
// Edges. Called once by NewTileSet.
func (t *Tile) build() {
	for r := 0; r < 4; r++ {
		for d := 0; d < 4; d++ {
			// Clockwise rotation by r: the edge now facing direction d
			// was, before rotation, facing (d - r + 4) mod 4.
			t.rotations[r][d] = t.Edges[(d-r+4)%4]
		}
	}

	t.canonicalRot = 0
	for r := 1; r < 4; r++ {
		if lessTuple(t.rotations[r], t.rotations[t.canonicalRot]) {
			t.canonicalRot = r
		}
	}

	zeros := 0
	zeroAt := [4]bool{}
	for d, c := range t.Edges {
		if c == BorderColor {
			zeros++
			zeroAt[d] = true
		}
	}
	switch {
	case zeros >= 2 && adjacentZeroPair(zeroAt):
		t.kind = Corner
	case zeros >= 1:
		t.kind = Edge
	default:
		t.kind = Interior
	}
}

func lessTuple(a, b [4]Color) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// adjacentZeroPair reports whether two of the four zero-flagged directions
// are cyclically adjacent (the shape a corner tile's border edges take).
func adjacentZeroPair(zeroAt [4]bool) bool {
	for d := 0; d < 4; d++ {
		if zeroAt[d] && zeroAt[(d+1)%4] {
			return true
		}
	}
	return false
}

// RotatedEdges returns the exposed edge colors at rotation rot in O(1).
func (t *Tile) RotatedEdges(rot int) [4]Color {
	return t.rotations[rot&3]
}

// EdgeAt returns the single exposed edge color facing direction d at
// rotation rot.
func (t *Tile) EdgeAt(rot int, d Direction) Color {
	return t.rotations[rot&3][d]
}

// CanonicalRotation returns the smallest rotation producing this tile's
// lexicographically smallest edge tuple, used to break the four-fold
// rotational symmetry of the whole board when placing the first corner.
func (t *Tile) CanonicalRotation() int {
	return t.canonicalRot
}

// Kind returns the tile's corner/edge/interior classification.
func (t *Tile) Kind() Kind {
	return t.kind
}
