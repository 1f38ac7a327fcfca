package storage

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// blob is the on-disk shape of a binary store: the records in insertion order.
type blob[T any] struct {
	Records []T
}

type binaryFile[T Entity] struct {
	fs   afero.Fs
	path string
	log  logrus.FieldLogger
}

// NewBinaryRepository returns a repository persisted as a single gob encoded
// blob at path. A missing, empty or truncated blob reads as an empty store.
func NewBinaryRepository[T Entity](fs afero.Fs, path string, logger logrus.FieldLogger) *Persistent[T] {
	return newPersistent[T](&binaryFile[T]{fs: fs, path: path, log: logger}, logger)
}

func (f *binaryFile[T]) String() string { return "binary:" + f.path }

func (f *binaryFile[T]) load() ([]T, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, f.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var b blob[T]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			f.log.WithField("path", f.path).WithError(err).Warn("Binary store is truncated, treating it as empty")
			return nil, nil
		}
		return nil, fmt.Errorf("%w: decode %s: %w", ErrMalformedRecord, f.path, err)
	}
	return b.Records, nil
}

func (f *binaryFile[T]) store(records []T) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(blob[T]{Records: records}); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorageUnavailable, f.path, err)
	}
	if err := writeFileAtomic(f.fs, f.path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
