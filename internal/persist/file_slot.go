package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot stores each key as <dir>/<key>.json.
type FileSlot struct {
	Dir string
}

var _ Slot = (*FileSlot)(nil)

func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{Dir: dir}
}

func (f *FileSlot) Path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileSlot) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the value through a temp file and rename so readers never see
// a half-written slot.
func (f *FileSlot) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return fmt.Errorf("creating slot dir: %w", err)
	}
	tmp, err := os.CreateTemp(f.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing slot %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.Path(key)); err != nil {
		return fmt.Errorf("replacing slot %s: %w", key, err)
	}
	return nil
}
