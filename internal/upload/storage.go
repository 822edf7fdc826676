package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned for names that are unsafe or not stored.
var ErrNotFound = errors.New("file not found")

const tempPattern = ".upload-*"

var (
	osMkdirAll   = os.MkdirAll
	osCreateTemp = os.CreateTemp
	osRename     = os.Rename
	ioCopy       = io.Copy
)

// Storage keeps uploaded files directly under one directory.
type Storage struct {
	dir string
}

// NewStorage 建立上傳目錄 (若不存在)
func NewStorage(dir string) (*Storage, error) {
	if err := osMkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewStorage: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// validName rejects anything that could leave the directory or reach a
// temp file still being written. Without separators a name can only
// escape as "." or "..", which the leading-dot rule covers, so dot runs
// inside a name such as "photo..png" are fine.
func validName(name string) bool {
	return name != "" &&
		!strings.ContainsAny(name, `/\`) &&
		!strings.HasPrefix(name, ".")
}

// Save 先寫入同目錄的暫存檔再 rename，寫入失敗不會留下不完整的檔案
func (s *Storage) Save(name string, r io.Reader) error {
	if !validName(name) {
		return fmt.Errorf("Save: invalid name %q", name)
	}

	tmp, err := osCreateTemp(s.dir, tempPattern)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	tmpPath := tmp.Name()
	ok := false
	defer func() {
		if !ok {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := ioCopy(tmp, r); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := osRename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	ok = true
	return nil
}

// Path 回傳已儲存檔案的路徑，不存在或非一般檔案時回傳 ErrNotFound
func (s *Storage) Path(name string) (string, error) {
	if !validName(name) {
		return "", ErrNotFound
	}
	p := filepath.Join(s.dir, name)
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("Path: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotFound
	}
	return p, nil
}
