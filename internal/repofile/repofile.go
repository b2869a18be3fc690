package repofile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".tally-list"

// Find walks up from startDir looking for a .tally-list file.
// Returns the slot key and the directory containing the file.
// Returns ("", "", nil) if not found.
func Find(startDir string) (key, dir string, err error) {
	dir = startDir
	for {
		k, err := Read(dir)
		if err != nil {
			return "", "", err
		}
		if k != "" {
			return k, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

// Write writes key to dir/.tally-list.
func Write(dir, key string) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(key+"\n"), 0644)
}

// Read reads and trims the .tally-list file in dir.
// Returns ("", nil) if the file does not exist.
func Read(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes dir/.tally-list. It reports false when there was nothing to remove.
func Remove(dir string) (bool, error) {
	err := os.Remove(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
