package modelstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/artem13815/hr/screening/pkg/vectorizer"
)

// FileStore keeps the model as a JSON file on local disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultKey
	}
	return &FileStore{path: path}
}

func (s *FileStore) Name() string { return "file" }
func (s *FileStore) Key() string  { return s.path }

func (s *FileStore) Load(ctx context.Context) (vectorizer.Model, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return vectorizer.Model{}, ErrNotFound
		}
		return vectorizer.Model{}, fmt.Errorf("read model file: %w", err)
	}
	return Decode(data)
}

// Save writes to a temp file and renames it over the target so readers
// never observe a partially written model.
func (s *FileStore) Save(ctx context.Context, m vectorizer.Model) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prepare model dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".model-*.json")
	if err != nil {
		return fmt.Errorf("create temp model file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write model file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close model file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace model file: %w", err)
	}
	return nil
}

// Ping checks that the model directory exists or can be created.
func (s *FileStore) Ping(ctx context.Context) error {
	return os.MkdirAll(filepath.Dir(s.path), 0o755)
}
