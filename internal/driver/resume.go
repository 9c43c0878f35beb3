package driver

import (
	"github.com/hailam/eternity/internal/checkpoint"
	"github.com/hailam/eternity/internal/puzzle"
)

// LoadResume opens the checkpoint store under dir and looks for a "current"
// record matching ts's digest, per spec.md §4.10's resume contract. It
// reports ok=false (with no error) when dir holds no store yet, or the
// store's record was written for a different puzzle.
func LoadResume(dir string, ts *puzzle.TileSet) (hints []puzzle.Hint, cumulativeMS int64, ok bool, err error) {
	store, err := checkpoint.Open(dir)
	if err != nil {
		return nil, 0, false, err
	}
	defer store.Close()

	rec, found, err := store.LoadCurrent()
	if err != nil {
		return nil, 0, false, err
	}
	if !found {
		return nil, 0, false, nil
	}
	if rec.TileSetDigest != checkpoint.Digest(ts) {
		return nil, 0, false, nil
	}
	return checkpoint.RecordToHints(rec), rec.CumulativeMS, true, nil
}
