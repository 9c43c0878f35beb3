package puzzleio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hailam/eternity/internal/puzzle"
)

// Puzzle is a fully parsed puzzle file: the board extent, the tile
// catalog's raw definitions (before TileSet validates and classifies
// them), and any fixed-piece hints.
type Puzzle struct {
	Rows, Cols int
	Tiles      []puzzle.RawTile
	Hints      []puzzle.Hint
}

// Parse reads spec.md §6's puzzle text format from r. Lines starting with
// '#' (after trimming leading space) are comments and are skipped
// everywhere, including between the header and the tile block. Blank
// lines are skipped the same way.
//
// The first non-comment line is `R C`. Every later line is classified by
// its field count alone: 5 fields is an `id north east south west` tile
// line, 4 fields is a `row col tile_id rotation` fixed-piece (hint) line,
// and anything else is rejected. Tile and hint lines may appear in any
// order; the fixed-piece lines are not required to form a trailing block.
func Parse(r io.Reader) (Puzzle, error) {
	scanner := bufio.NewScanner(r)
	var p Puzzle
	headerSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if !headerSeen {
			if len(fields) != 2 {
				return Puzzle{}, fmt.Errorf("%w: header line %q: want `R C`", puzzle.ErrBadInput, line)
			}
			rows, err := strconv.Atoi(fields[0])
			if err != nil {
				return Puzzle{}, fmt.Errorf("%w: header rows %q: %v", puzzle.ErrBadInput, fields[0], err)
			}
			cols, err := strconv.Atoi(fields[1])
			if err != nil {
				return Puzzle{}, fmt.Errorf("%w: header cols %q: %v", puzzle.ErrBadInput, fields[1], err)
			}
			p.Rows, p.Cols = rows, cols
			headerSeen = true
			continue
		}

		switch len(fields) {
		case 5:
			tile, err := parseTileLine(fields)
			if err != nil {
				return Puzzle{}, err
			}
			p.Tiles = append(p.Tiles, tile)
		case 4:
			hint, err := parseHintLine(fields)
			if err != nil {
				return Puzzle{}, err
			}
			p.Hints = append(p.Hints, hint)
		default:
			return Puzzle{}, fmt.Errorf("%w: line %q has %d fields, want 5 (tile) or 4 (hint)", puzzle.ErrBadInput, line, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return Puzzle{}, fmt.Errorf("puzzleio: reading puzzle: %w", err)
	}
	if !headerSeen {
		return Puzzle{}, fmt.Errorf("%w: empty puzzle file", puzzle.ErrBadInput)
	}
	return p, nil
}

// BuildTileSet constructs and validates a TileSet from a parsed Puzzle,
// surfacing ErrBadInput / ErrUnsolvableByCounts exactly as puzzle.NewTileSet
// and TileSet.ValidateCounts do.
func (p Puzzle) BuildTileSet() (*puzzle.TileSet, error) {
	ts, err := puzzle.NewTileSet(p.Tiles)
	if err != nil {
		return nil, err
	}
	if err := ts.ValidateCounts(p.Rows, p.Cols); err != nil {
		return nil, err
	}
	return ts, nil
}

func parseTileLine(fields []string) (puzzle.RawTile, error) {
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return puzzle.RawTile{}, fmt.Errorf("%w: tile id %q: %v", puzzle.ErrBadInput, fields[0], err)
	}
	var edges [4]puzzle.Color
	for i, f := range fields[1:] {
		c, err := strconv.Atoi(f)
		if err != nil {
			return puzzle.RawTile{}, fmt.Errorf("%w: tile %s edge %q: %v", puzzle.ErrBadInput, fields[0], f, err)
		}
		edges[i] = puzzle.Color(c)
	}
	return puzzle.RawTile{ID: uint32(id), Edges: edges}, nil
}

func parseHintLine(fields []string) (puzzle.Hint, error) {
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return puzzle.Hint{}, fmt.Errorf("%w: hint row %q: %v", puzzle.ErrBadInput, fields[0], err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return puzzle.Hint{}, fmt.Errorf("%w: hint col %q: %v", puzzle.ErrBadInput, fields[1], err)
	}
	id, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return puzzle.Hint{}, fmt.Errorf("%w: hint tile id %q: %v", puzzle.ErrBadInput, fields[2], err)
	}
	rot, err := strconv.Atoi(fields[3])
	if err != nil {
		return puzzle.Hint{}, fmt.Errorf("%w: hint rotation %q: %v", puzzle.ErrBadInput, fields[3], err)
	}
	return puzzle.Hint{Row: row, Col: col, TileID: uint32(id), Rotation: rot, Pinned: true}, nil
}
