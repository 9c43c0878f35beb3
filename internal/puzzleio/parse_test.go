package puzzleio

import (
	"strings"
	"testing"

	"github.com/hailam/eternity/internal/puzzle"
)

func TestParseHeaderTilesAndHints(t *testing.T) {
	input := `# a 2x2 test puzzle
2 2
# tiles: id north east south west
1 0 5 6 0
2 0 0 7 5
3 6 8 0 0
4 7 0 0 8
# fixed pieces
0 0 1 0
`
	p, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Rows != 2 || p.Cols != 2 {
		t.Fatalf("expected 2x2, got %dx%d", p.Rows, p.Cols)
	}
	if len(p.Tiles) != 4 {
		t.Fatalf("expected 4 tiles, got %d", len(p.Tiles))
	}
	if p.Tiles[0].ID != 1 || p.Tiles[0].Edges != [4]puzzle.Color{0, 5, 6, 0} {
		t.Errorf("unexpected first tile: %+v", p.Tiles[0])
	}
	if len(p.Hints) != 1 {
		t.Fatalf("expected 1 hint, got %d", len(p.Hints))
	}
	if p.Hints[0] != (puzzle.Hint{Row: 0, Col: 0, TileID: 1, Rotation: 0, Pinned: true}) {
		t.Errorf("unexpected hint: %+v", p.Hints[0])
	}
}

func TestParseRejectsMalformedHeader(t *testing.T) {
	if _, err := Parse(strings.NewReader("not a header\n")); err == nil {
		t.Fatalf("expected an error for a malformed header line")
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader("# only a comment\n")); err == nil {
		t.Fatalf("expected an error for a header-less file")
	}
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	input := "2 2\n1 2 3\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatalf("expected an error for a line with the wrong field count")
	}
}
