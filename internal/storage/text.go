package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// LineCodec maps an entity to and from one line of text.
type LineCodec[T any] interface {
	Encode(T) string
	Decode(line string) (T, error)
}

// textFile stores one record per line.
type textFile[T Entity] struct {
	fs    afero.Fs
	path  string
	codec LineCodec[T]
}

// NewTextRepository returns a repository persisted as a line oriented text
// file at path. Blank lines are ignored on read; any other line that does
// not decode fails the call with ErrMalformedRecord.
func NewTextRepository[T Entity](fs afero.Fs, path string, codec LineCodec[T], logger logrus.FieldLogger) *Persistent[T] {
	return newPersistent[T](&textFile[T]{fs: fs, path: path, codec: codec}, logger)
}

func (f *textFile[T]) String() string { return "text:" + f.path }

func (f *textFile[T]) load() ([]T, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, f.path, err)
	}

	var records []T
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := f.codec.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %w", ErrMalformedRecord, f.path, i+1, err)
		}
		records = append(records, e)
	}
	return records, nil
}

func (f *textFile[T]) store(records []T) error {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(f.codec.Encode(r))
		buf.WriteByte('\n')
	}
	if err := writeFileAtomic(f.fs, f.path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
