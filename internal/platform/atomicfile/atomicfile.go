// Package atomicfile writes files so readers never observe a partial write
// Bytes go to <path>.<uuid>.part in the target directory and are then moved into place
package atomicfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DirPerm and FilePerm keep everything the harness writes private to the user
const (
	DirPerm  fs.FileMode = 0o700
	FilePerm fs.FileMode = 0o600
)

// seams for tests
var (
	link   = os.Link
	rename = os.Rename
)

// TempName returns the per-writer partial file name for path
func TempName(path string) string {
	return fmt.Sprintf("%s.%s.part", path, uuid.NewString())
}

// WriteFile replaces path with data
func WriteFile(path string, data []byte) error {
	tmp, err := writeTemp(path, data)
	if err != nil {
		return err
	}
	if err := rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Create writes path with data unless it already exists
// It reports whether this call created the file; an existing file is left byte for byte
func Create(path string, data []byte) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	}
	tmp, err := writeTemp(path, data)
	if err != nil {
		return false, err
	}
	defer func() { _ = os.Remove(tmp) }()

	err = link(tmp, path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrExist):
		return false, nil
	}
	// filesystems without hard links
	if _, serr := os.Lstat(path); serr == nil {
		return false, nil
	}
	if err := rename(tmp, path); err != nil {
		return false, err
	}
	return true, nil
}

func writeTemp(path string, data []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return "", err
	}
	tmp := TempName(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}
