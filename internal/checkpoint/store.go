package checkpoint

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

const keyCurrent = "current"

// Store wraps a per-puzzle BadgerDB instance holding the checkpoint roles
// spec.md §4.11 names: a "current" record overwritten on every checkpoint
// tick, and one "best_<depth>" record per depth milestone reached, kept so
// a crash mid-search can resume from the deepest record ever written even
// if "current" regressed since (a worker restarting from a shallower
// config after a dead end still overwrites "current", but never deletes an
// already-recorded "best_<depth>").
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) the Badger store rooted at dir.
// Checkpoint records compress well (placement lists are long runs of
// small, repetitive integers), so value-log blocks are ZSTD-compressed
// rather than left at Badger's Snappy default.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.Compression = options.ZSTD

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: opening store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handles.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func bestKey(depth int) []byte {
	return []byte(fmt.Sprintf("best_%08d", depth))
}

// SaveCurrent overwrites the "current" record — the one LoadCurrent reads
// back on restart.
func (s *Store) SaveCurrent(rec Record) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyCurrent), data)
	})
}

// SaveBest records rec under its depth's milestone key, in addition to
// whatever SaveCurrent has written. Distinct depths never overwrite each
// other, so every milestone a search has ever reached stays recoverable.
func (s *Store) SaveBest(depth int, rec Record) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bestKey(depth), data)
	})
}

// LoadCurrent reads back the "current" record, returning (Record{}, false,
// nil) if nothing has been checkpointed yet.
func (s *Store) LoadCurrent() (Record, bool, error) {
	return s.load([]byte(keyCurrent))
}

// LoadBest reads back the record checkpointed at depth, if any.
func (s *Store) LoadBest(depth int) (Record, bool, error) {
	return s.load(bestKey(depth))
}

// LoadDeepestBest scans every "best_*" key and returns the one with the
// greatest recorded depth — the record a resume should prefer when
// "current" is missing or corrupt.
func (s *Store) LoadDeepestBest() (Record, bool, error) {
	var (
		deepest    Record
		found      bool
		deepestKey string
	)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("best_")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().KeyCopy(nil))
			if found && key <= deepestKey {
				continue
			}
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				var decErr error
				rec, decErr = Decode(val)
				return decErr
			})
			if err != nil {
				return err
			}
			deepest = rec
			deepestKey = key
			found = true
		}
		return nil
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("checkpoint: scanning best records: %w", err)
	}
	return deepest, found, nil
}

func (s *Store) load(key []byte) (Record, bool, error) {
	var rec Record
	var found bool

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			var decErr error
			rec, decErr = Decode(val)
			return decErr
		})
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("checkpoint: loading record: %w", err)
	}
	return rec, found, nil
}
