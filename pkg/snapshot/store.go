package snapshot

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/benjilabs/creditline/pkg/verify"
)

// Record is one verification run: when it ran, against which network,
// and the observed/expected balance pairs.
type Record struct {
	Time    time.Time       `json:"time"`
	Network string          `json:"network"`
	Results []verify.Result `json:"results"`
}

// Store persists verification runs in a local BadgerDB so balance
// drift across demo steps can be reviewed later.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a run record keyed by its timestamp.
func (s *Store) Save(rec Record) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(rec.Time), value)
	})
}

// List returns all stored runs in chronological order.
func (s *Store) List() ([]Record, error) {
	var records []Record

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{'r'}
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec Record
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("corrupt snapshot at key %x: %w", it.Item().Key(), err)
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// runKey builds the key for a run: 'r' prefix plus the big-endian
// nanosecond timestamp, so badger's key order is chronological.
func runKey(t time.Time) []byte {
	key := make([]byte, 9)
	key[0] = 'r'
	binary.BigEndian.PutUint64(key[1:], uint64(t.UnixNano()))
	return key
}
