package puzzle

import "testing"

func TestTileRotation(t *testing.T) {
	tile := &Tile{ID: 1, Edges: [4]Color{1, 2, 3, 4}}
	tile.build()

	t.Run("rotation zero is identity", func(t *testing.T) {
		got := tile.RotatedEdges(0)
		want := [4]Color{1, 2, 3, 4}
		if got != want {
			t.Errorf("RotatedEdges(0) = %v, want %v", got, want)
		}
	})

	t.Run("one quarter turn clockwise shifts edges", func(t *testing.T) {
		// After one clockwise turn, what was on the West edge (4) faces
		// North: edges[(0-1+4)%4] = edges[3] = 4.
		got := tile.RotatedEdges(1)
		want := [4]Color{4, 1, 2, 3}
		if got != want {
			t.Errorf("RotatedEdges(1) = %v, want %v", got, want)
		}
	})

	t.Run("four rotations return to identity", func(t *testing.T) {
		if tile.RotatedEdges(4%4) != tile.RotatedEdges(0) {
			t.Errorf("rotation did not wrap at 4")
		}
	})
}

func TestTileClassification(t *testing.T) {
	cases := []struct {
		name  string
		edges [4]Color
		want  Kind
	}{
		{"no zero edges is interior", [4]Color{1, 2, 3, 4}, Interior},
		{"one zero edge is edge tile", [4]Color{0, 2, 3, 4}, Edge},
		{"two adjacent zero edges is corner", [4]Color{0, 0, 3, 4}, Corner},
		{"two opposite zero edges is not corner", [4]Color{0, 2, 0, 4}, Edge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tile := &Tile{ID: 1, Edges: c.edges}
			tile.build()
			if tile.Kind() != c.want {
				t.Errorf("Kind() = %v, want %v", tile.Kind(), c.want)
			}
		})
	}
}

func TestTileSetRejectsBadInput(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewTileSet([]RawTile{
			{ID: 1, Edges: [4]Color{0, 0, 1, 1}},
			{ID: 1, Edges: [4]Color{0, 0, 2, 2}},
		})
		if err == nil {
			t.Fatal("expected error for duplicate tile id")
		}
	})

	t.Run("negative color", func(t *testing.T) {
		_, err := NewTileSet([]RawTile{{ID: 1, Edges: [4]Color{-1, 0, 0, 0}}})
		if err == nil {
			t.Fatal("expected error for negative color")
		}
	})
}

func TestTileSetValidateCounts(t *testing.T) {
	// A valid 2x2 board needs exactly 4 corner tiles and 0 edge tiles.
	raw := []RawTile{
		{ID: 1, Edges: [4]Color{0, 1, 2, 0}},
		{ID: 2, Edges: [4]Color{0, 0, 2, 3}},
		{ID: 3, Edges: [4]Color{1, 0, 0, 4}},
		{ID: 4, Edges: [4]Color{2, 3, 0, 0}},
	}
	ts, err := NewTileSet(raw)
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	if err := ts.ValidateCounts(2, 2); err != nil {
		t.Errorf("ValidateCounts(2,2) = %v, want nil", err)
	}
	if err := ts.ValidateCounts(3, 3); err == nil {
		t.Error("expected ValidateCounts(3,3) to fail for a 4-corner-only tileset")
	}
}
