// Package localstore is the durable local cache: an embedded BadgerDB holding
// report records, the current-reports index, the device identity, and the
// pending sync queue. Pure storage; sync and lifecycle policy live elsewhere.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// Config holds configuration for the local store.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence). Useful for tests.
	InMemory bool

	// SyncWrites enables synchronous writes for durability. Local writes are
	// the only copy of an edit until the queue drains, so this defaults on in
	// production.
	SyncWrites bool

	// Logger receives BadgerDB's internal logging. If nil it is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns the production configuration.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests: no disk I/O, no fsync.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store wraps the badger handle with JSON get/set helpers. All values are
// JSON-encoded, one logical record per key.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// mu serializes read-modify-write cycles on list-valued keys (the pending
	// queue); badger transactions alone do not retry conflicting writers here.
	mu sync.Mutex
}

// ErrKeyNotFound is returned by getJSON when the key is absent.
var ErrKeyNotFound = errors.New("localstore: key not found")

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open creates and opens the local store. Creates the directory if needed.
// The returned store is safe for concurrent use; callers must Close it.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("localstore: path is required for persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(filepath.Clean(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("localstore: create dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
		opts = opts.WithLogger(nil)
	} else {
		opts = opts.WithLogger(&badgerLogger{logger: logger})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("localstore: open: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) setJSON(key string, v any) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: encode %q: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bs)
	})
}

func (s *Store) getJSON(key string, out any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrKeyNotFound
	}
	return err
}

func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// scanJSON decodes every value under prefix into fresh T values, in key order.
func scanJSON[T any](s *Store, prefix string) ([]T, error) {
	var out []T
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			var v T
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &v)
			})
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	return out, err
}

// deletePrefix removes every key under prefix. Used by the guarded
// cloud-refresh path after a confirmed non-empty remote fetch.
func (s *Store) deletePrefix(prefix string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()
		p := []byte(prefix)
		var keys [][]byte
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			k := it.Item().KeyCopy(nil)
			keys = append(keys, k)
		}
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
