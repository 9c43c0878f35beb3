package checkpoint

import (
	"os"
	"testing"

	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/puzzle"
)

func twoByTwoTileSet(t *testing.T) *puzzle.TileSet {
	t.Helper()
	raw := []puzzle.RawTile{
		{ID: 1, Edges: [4]puzzle.Color{0, 5, 6, 0}},
		{ID: 2, Edges: [4]puzzle.Color{0, 0, 7, 5}},
		{ID: 3, Edges: [4]puzzle.Color{6, 8, 0, 0}},
		{ID: 4, Edges: [4]puzzle.Color{7, 0, 0, 8}},
	}
	ts, err := puzzle.NewTileSet(raw)
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	return ts
}

func TestDigestIsStableAcrossCalls(t *testing.T) {
	ts := twoByTwoTileSet(t)
	if Digest(ts) != Digest(ts) {
		t.Fatalf("Digest is not stable across repeated calls on the same tile set")
	}
}

func TestDigestDiffersOnMutatedTileSet(t *testing.T) {
	ts := twoByTwoTileSet(t)
	other := []puzzle.RawTile{
		{ID: 1, Edges: [4]puzzle.Color{0, 5, 6, 0}},
		{ID: 2, Edges: [4]puzzle.Color{0, 0, 7, 5}},
		{ID: 3, Edges: [4]puzzle.Color{6, 9, 0, 0}}, // one edge changed
		{ID: 4, Edges: [4]puzzle.Color{7, 0, 0, 8}},
	}
	ts2, err := puzzle.NewTileSet(other)
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	if Digest(ts) == Digest(ts2) {
		t.Fatalf("Digest did not change when a tile edge changed")
	}
}

func TestRecordRoundTripsThroughApply(t *testing.T) {
	ts := twoByTwoTileSet(t)
	b := board.New(2, 2, ts)
	if err := b.Place(0, 0, puzzle.NewPlacement(1, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := b.Place(0, 1, puzzle.NewPlacement(2, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}

	rec := FromBoard(ts, b, 42, 1500)

	data, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Seed != 42 || decoded.CumulativeMS != 1500 {
		t.Errorf("Decode did not round-trip seed/cumulative fields: %+v", decoded)
	}

	rebuilt, err := Apply(ts, decoded)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p, ok := rebuilt.Get(0, 0); !ok || p.TileID() != 1 {
		t.Errorf("Apply did not restore placement at (0,0): %v, %v", p, ok)
	}
	if p, ok := rebuilt.Get(0, 1); !ok || p.TileID() != 2 {
		t.Errorf("Apply did not restore placement at (0,1): %v, %v", p, ok)
	}
	if rebuilt.OccupiedCount() != 2 {
		t.Errorf("expected 2 occupied cells after Apply, got %d", rebuilt.OccupiedCount())
	}
}

func TestApplyRejectsMismatchedDigest(t *testing.T) {
	ts := twoByTwoTileSet(t)
	rec := Record{TileSetDigest: Digest(ts) ^ 0xdeadbeef, Rows: 2, Cols: 2}
	if _, err := Apply(ts, rec); err == nil {
		t.Fatalf("Apply accepted a record with a mismatched tile set digest")
	}
}

func TestStoreSaveLoadCurrentAndBest(t *testing.T) {
	dir, err := os.MkdirTemp("", "eternity-checkpoint-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ts := twoByTwoTileSet(t)
	b := board.New(2, 2, ts)
	if err := b.Place(0, 0, puzzle.NewPlacement(1, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	rec := FromBoard(ts, b, 7, 100)

	if err := store.SaveCurrent(rec); err != nil {
		t.Fatalf("SaveCurrent: %v", err)
	}
	if err := store.SaveBest(1, rec); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}

	loaded, ok, err := store.LoadCurrent()
	if err != nil || !ok {
		t.Fatalf("LoadCurrent: ok=%v err=%v", ok, err)
	}
	if loaded.Seed != 7 {
		t.Errorf("LoadCurrent returned wrong record: %+v", loaded)
	}

	best, ok, err := store.LoadBest(1)
	if err != nil || !ok {
		t.Fatalf("LoadBest: ok=%v err=%v", ok, err)
	}
	if best.Seed != 7 {
		t.Errorf("LoadBest returned wrong record: %+v", best)
	}

	if _, ok, err := store.LoadBest(99); err != nil || ok {
		t.Fatalf("LoadBest(99) should report not found, got ok=%v err=%v", ok, err)
	}
}

func TestStoreLoadDeepestBestPicksGreatestDepth(t *testing.T) {
	dir, err := os.MkdirTemp("", "eternity-checkpoint-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ts := twoByTwoTileSet(t)
	b1 := board.New(2, 2, ts)
	_ = b1.Place(0, 0, puzzle.NewPlacement(1, 0))
	rec1 := FromBoard(ts, b1, 1, 10)

	b2 := board.New(2, 2, ts)
	_ = b2.Place(0, 0, puzzle.NewPlacement(1, 0))
	_ = b2.Place(0, 1, puzzle.NewPlacement(2, 0))
	rec2 := FromBoard(ts, b2, 2, 20)

	if err := store.SaveBest(1, rec1); err != nil {
		t.Fatalf("SaveBest(1): %v", err)
	}
	if err := store.SaveBest(2, rec2); err != nil {
		t.Fatalf("SaveBest(2): %v", err)
	}

	deepest, ok, err := store.LoadDeepestBest()
	if err != nil || !ok {
		t.Fatalf("LoadDeepestBest: ok=%v err=%v", ok, err)
	}
	if deepest.Seed != 2 {
		t.Errorf("LoadDeepestBest picked the wrong record: %+v", deepest)
	}
}
