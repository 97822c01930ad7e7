package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the durable slot the cart is written through to. It stands in
// for the single browser-profile key the storefront persists under.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
	Reset() error
}

// CorruptError reports an unreadable persisted cart. The engine recovers
// from it by resetting the slot; it is never fatal.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt cart storage at %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// FileStorage keeps the cart as a JSON array of lines in one file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage { return &FileStorage{path: path} }

func (s *FileStorage) Load() ([]Line, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(b, &lines); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	return lines, nil
}

func (s *FileStorage) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *FileStorage) Reset() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStorage holds the slot in memory, for tests and embedding without a
// writable filesystem.
type MemoryStorage struct {
	lines []Line
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (s *MemoryStorage) Load() ([]Line, error) { return cloneLines(s.lines), nil }

func (s *MemoryStorage) Save(lines []Line) error {
	s.lines = cloneLines(lines)
	return nil
}

func (s *MemoryStorage) Reset() error {
	s.lines = nil
	return nil
}
