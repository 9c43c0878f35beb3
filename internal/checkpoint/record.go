package checkpoint

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/puzzle"
)

// PlacementRecord is one (row, col, tile_id, rotation) placement plus the
// order index it was placed in — spec.md §4.11's per-placement tuple.
type PlacementRecord struct {
	Row, Col int
	TileID   uint32
	Rotation int
	OrderIx  int
}

// Record is spec.md §4.11's checkpoint tuple: a tile_set digest (so a
// resume refuses to apply a record built from a different puzzle file), the
// board extent, every placement in the order it was made, the dense indices
// of used tile ids (redundant with Placements, carried anyway for direct
// round-trip against board.Board.UsedMask), the worker's seed, its
// cumulative compute time, and the wall-clock moment it was written.
type Record struct {
	TileSetDigest uint64
	Rows, Cols    int
	Placements    []PlacementRecord
	UsedDense     []int
	Seed          int64
	CumulativeMS  int64
	WrittenAt     time.Time
}

// FromBoard captures b's current placements (in row-major order — the
// board does not track insertion order itself, so a resumed search replays
// them in scan order rather than original placement order) into a Record.
func FromBoard(ts *puzzle.TileSet, b *board.Board, seed int64, cumulativeMS int64) Record {
	rec := Record{
		TileSetDigest: Digest(ts),
		Rows:          b.Rows,
		Cols:          b.Cols,
		Seed:          seed,
		CumulativeMS:  cumulativeMS,
		UsedDense:     b.UsedMask().Slice(),
	}

	order := 0
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p, ok := b.Get(row, col)
			if !ok {
				continue
			}
			rec.Placements = append(rec.Placements, PlacementRecord{
				Row:      row,
				Col:      col,
				TileID:   p.TileID(),
				Rotation: p.Rotation(),
				OrderIx:  order,
			})
			order++
		}
	}
	return rec
}

// Apply replays rec's placements onto a fresh board over ts, checking the
// digest first so a record from a different puzzle is refused rather than
// silently misapplied.
func Apply(ts *puzzle.TileSet, rec Record) (*board.Board, error) {
	if rec.TileSetDigest != Digest(ts) {
		return nil, fmt.Errorf("checkpoint: record digest %x does not match tile set digest %x", rec.TileSetDigest, Digest(ts))
	}
	b := board.New(rec.Rows, rec.Cols, ts)
	for _, pr := range rec.Placements {
		if err := b.Place(pr.Row, pr.Col, puzzle.NewPlacement(pr.TileID, pr.Rotation)); err != nil {
			return nil, fmt.Errorf("checkpoint: replaying placement at (%d,%d): %w", pr.Row, pr.Col, err)
		}
	}
	return b, nil
}

// RecordToHints converts a checkpoint record's placements into hints a
// driver run can seed a fresh board with. Per spec.md §4.10's resume
// contract these are deliberately left Pinned: false — driver.Run routes
// not-pinned hints into the Searcher as a backtrackable resume prefix
// rather than placing them on the board up front, so a dead end anywhere
// beneath the resumed prefix can unwind back through it like any other
// candidate instead of being stuck with it forever.
func RecordToHints(rec Record) []puzzle.Hint {
	hints := make([]puzzle.Hint, len(rec.Placements))
	for i, pr := range rec.Placements {
		hints[i] = puzzle.Hint{Row: pr.Row, Col: pr.Col, TileID: pr.TileID, Rotation: pr.Rotation, Pinned: false}
	}
	return hints
}

// Encode gob-serializes rec for storage.
func Encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, fmt.Errorf("checkpoint: encoding record: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode.
func Decode(data []byte) (Record, error) {
	var rec Record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("checkpoint: decoding record: %w", err)
	}
	return rec, nil
}
