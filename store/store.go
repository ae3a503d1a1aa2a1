package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/cavepaths/paths"
)

var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store: closed")

	// ErrCorruptEntry is returned when a stored value cannot be decoded.
	ErrCorruptEntry = errors.New("store: corrupt entry")
)

// keyPrefix namespaces count entries inside the database.
const keyPrefix = "c/"

// Options configures Open.
type Options struct {
	// Dir is the database directory. Empty means in-memory.
	Dir string

	// SyncWrites makes every Put durable before it returns.
	SyncWrites bool
}

// Store is a persistent map from (fingerprint, policy) to path count.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	db *badger.DB
}

// Open opens (or creates) the count store described by opts.
func Open(opts Options) (*Store, error) {
	var bo badger.Options
	if opts.Dir == "" {
		bo = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
			return nil, pkgerrors.Wrapf(err, "store: create %s", opts.Dir)
		}
		bo = badger.DefaultOptions(opts.Dir)
	}
	bo = bo.WithSyncWrites(opts.SyncWrites).
		WithNumVersionsToKeep(1).
		WithMetricsEnabled(false).
		WithLogger(badgerLogger{})

	db, err := badger.Open(bo)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "store: open badger")
	}
	klog.V(2).Infof("store: opened dir=%q inMemory=%v", opts.Dir, opts.Dir == "")

	return &Store{db: db}, nil
}

// Key builds the database key for fingerprint fp under policy p.
func Key(fp uint64, p paths.Policy) []byte {
	k := make([]byte, len(keyPrefix)+8+1)
	n := copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[n:], fp)
	k[n+8] = byte(p)

	return k
}

// Get returns the stored count for (fp, p). ok is false when no entry exists.
func (s *Store) Get(fp uint64, p paths.Policy) (count int64, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return 0, false, ErrClosed
	}

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(fp, p))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("%w: %d-byte value for %016x/%s", ErrCorruptEntry, len(val), fp, p)
			}
			count = int64(binary.BigEndian.Uint64(val))
			if count < 0 {
				return fmt.Errorf("%w: negative count for %016x/%s", ErrCorruptEntry, fp, p)
			}
			return nil
		})
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return 0, false, nil
	case err != nil:
		return 0, false, pkgerrors.Wrap(err, "store: get")
	}

	return count, true, nil
}

// Put records count for (fp, p), replacing any previous value.
func (s *Store) Put(fp uint64, p paths.Policy, count int64) error {
	if count < 0 {
		return fmt.Errorf("%w: refusing to store negative count %d", ErrCorruptEntry, count)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrClosed
	}

	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(count))
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(fp, p), val)
	})

	return pkgerrors.Wrap(err, "store: put")
}

// Len reports how many counts are stored.
func (s *Store) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return 0, ErrClosed
	}

	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, pkgerrors.Wrap(err, "store: len")
}

// Close releases the database. Further calls return ErrClosed; closing twice
// is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return pkgerrors.Wrap(err, "store: close")
}

// badgerLogger routes badger's internal logging through klog.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{})   { klog.Errorf(format, args...) }
func (badgerLogger) Warningf(format string, args ...interface{}) { klog.Warningf(format, args...) }
func (badgerLogger) Infof(format string, args ...interface{})    { klog.V(3).Infof(format, args...) }
func (badgerLogger) Debugf(format string, args ...interface{})   { klog.V(4).Infof(format, args...) }
