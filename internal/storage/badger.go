package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// BadgerStore owns one BadgerDB handle shared by every badger backed repository.
type BadgerStore struct {
	db  *badger.DB
	log logrus.FieldLogger
}

// OpenBadger opens (or creates) the database at dbPath.
func OpenBadger(dbPath string, logger logrus.FieldLogger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = &badgerLogger{logger.WithField("component", "badgerdb")}

	db, err := badger.Open(opts)
	if err != nil {
		logger.WithError(err).Error("Failed to open BadgerDB")
		return nil, fmt.Errorf("%w: open badger db at %s: %w", ErrStorageUnavailable, dbPath, err)
	}
	logger.WithField("path", dbPath).Info("BadgerDB opened")

	return &BadgerStore{db: db, log: logger.WithField("component", "badger_store")}, nil
}

// Close closes the BadgerDB database.
func (s *BadgerStore) Close() error {
	s.log.Info("Closing BadgerDB...")
	if err := s.db.Close(); err != nil {
		s.log.WithError(err).Error("Error closing BadgerDB")
		return err
	}
	s.log.Info("BadgerDB closed.")
	return nil
}

// NewBadgerRepository returns a repository whose records live under prefix in
// the shared store. Records are JSON encoded.
func NewBadgerRepository[T Entity](s *BadgerStore, prefix string, logger logrus.FieldLogger) *Persistent[T] {
	return newPersistent[T](&badgerBucket[T]{db: s.db, prefix: prefix}, logger)
}

// badgerBucket keeps records under "<prefix>:<seq>" keys. The zero padded
// sequence makes badger's key order match insertion order.
type badgerBucket[T Entity] struct {
	db     *badger.DB
	prefix string
}

func (b *badgerBucket[T]) String() string { return "badger:" + b.prefix }

func (b *badgerBucket[T]) keyPrefix() []byte {
	return []byte(b.prefix + ":")
}

func (b *badgerBucket[T]) recordKey(seq int) []byte {
	return []byte(fmt.Sprintf("%s:%010d", b.prefix, seq))
}

func (b *badgerBucket[T]) load() ([]T, error) {
	var records []T
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := b.keyPrefix()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, item.Key(), err)
			}
			var rec T
			if err := json.Unmarshal(val, &rec); err != nil {
				return fmt.Errorf("%w: key %s: %w", ErrMalformedRecord, item.Key(), err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// store replaces every record under the prefix in a single transaction.
func (b *badgerBucket[T]) store(records []T) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		var stale [][]byte
		prefix := b.keyPrefix()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, k := range stale {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		for i, rec := range records {
			val, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if err := txn.SetEntry(badger.NewEntry(b.recordKey(i), val)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, b, err)
	}
	return nil
}

// badgerLogger adapts logrus.FieldLogger to Badger's logger interface.
type badgerLogger struct {
	logger logrus.FieldLogger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Errorf(f, v...)
}
func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warningf(f, v...)
}
func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Debugf(f, v...)
}
func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Debugf(f, v...)
}
