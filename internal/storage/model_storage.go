package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ErrModelNotFound is returned by Load when no model file has been written.
var ErrModelNotFound = errors.New("model file not found")

// Saveable is an interface for objects that can be saved.
type Saveable interface {
	Save(w io.Writer) error
}

// Loadable is an interface for objects that can be loaded.
type Loadable interface {
	Load(r io.Reader) error
}

// ModelStore persists a trained model as a single text file.
type ModelStore struct {
	path   string
	logger *slog.Logger
}

// NewModelStore returns a store for dataDir/fileName.
func NewModelStore(dataDir, fileName string, logger *slog.Logger) *ModelStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ModelStore{
		path:   filepath.Join(dataDir, fileName),
		logger: logger,
	}
}

// OpenModelStore returns a store for an explicit file path.
func OpenModelStore(path string, logger *slog.Logger) *ModelStore {
	return NewModelStore(filepath.Dir(path), filepath.Base(path), logger)
}

// Path returns the model file location.
func (ms *ModelStore) Path() string {
	return ms.path
}

// Save writes the model to a temp file and renames it into place.
func (ms *ModelStore) Save(model Saveable) error {
	dir := filepath.Dir(ms.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(ms.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := file.Name()

	if err := model.Save(file); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to save model: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, ms.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	ms.logger.Debug("saved model to disk", "path", ms.path)
	return nil
}

// Load reads the model file into model.
func (ms *ModelStore) Load(model Loadable) error {
	file, err := os.Open(ms.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrModelNotFound, ms.path)
		}
		return fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	if err := model.Load(file); err != nil {
		return fmt.Errorf("failed to load model from %s: %w", ms.path, err)
	}

	ms.logger.Debug("loaded model from disk", "path", ms.path)
	return nil
}

// Exists returns whether a saved model exists.
func (ms *ModelStore) Exists() bool {
	_, err := os.Stat(ms.path)
	return err == nil
}

// ModelInfo describes the saved model file.
type ModelInfo struct {
	Exists    bool      `json:"exists"`
	Path      string    `json:"path"`
	Size      int64     `json:"size,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Info returns information about the saved model.
func (ms *ModelStore) Info() ModelInfo {
	info := ModelInfo{
		Path: ms.path,
	}

	stat, err := os.Stat(ms.path)
	if err != nil {
		return info
	}

	info.Exists = true
	info.Size = stat.Size()
	info.UpdatedAt = stat.ModTime()
	return info
}

// Delete removes the saved model file.
func (ms *ModelStore) Delete() error {
	if err := os.Remove(ms.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete model file: %w", err)
	}
	return nil
}
