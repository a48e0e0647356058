package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/haskel/carprice/internal/regression"
)

func TestModelStore_SaveLoad(t *testing.T) {
	ms := NewModelStore(t.TempDir(), "model.txt", nil)

	if ms.Exists() {
		t.Fatal("expected no model before save")
	}

	saved := regression.Model{Bias: 8499.599649933132, Slope: -0.0214489635917023}
	if err := ms.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	if !ms.Exists() {
		t.Fatal("expected model after save")
	}

	var loaded regression.Model
	if err := ms.Load(&loaded); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != saved {
		t.Errorf("expected %+v, got %+v", saved, loaded)
	}

	data, err := os.ReadFile(ms.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "theta0=8499.599649933132\ntheta1=-0.0214489635917023\n" {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestModelStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "models")
	ms := NewModelStore(dir, "model.txt", nil)

	if err := ms.Save(regression.Model{Bias: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "model.txt")); err != nil {
		t.Errorf("expected model file: %v", err)
	}
}

func TestModelStore_LoadMissing(t *testing.T) {
	ms := NewModelStore(t.TempDir(), "model.txt", nil)

	var m regression.Model
	err := ms.Load(&m)
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestModelStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.txt")
	if err := os.WriteFile(path, []byte("theta0=1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var m regression.Model
	err := OpenModelStore(path, nil).Load(&m)
	if !errors.Is(err, regression.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

type failingModel struct{}

func (failingModel) Save(w io.Writer) error {
	return errors.New("disk full")
}

func TestModelStore_SaveFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	ms := NewModelStore(dir, "model.txt", nil)

	if err := ms.Save(regression.Model{Bias: 1, Slope: 2}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := ms.Save(failingModel{}); err == nil {
		t.Fatal("expected save error")
	}

	var m regression.Model
	if err := ms.Load(&m); err != nil {
		t.Fatalf("load: %v", err)
	}
	if m != (regression.Model{Bias: 1, Slope: 2}) {
		t.Errorf("previous model should survive a failed save, got %+v", m)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected temp file cleanup, found %d entries", len(entries))
	}
}

func TestModelStore_InfoAndDelete(t *testing.T) {
	ms := NewModelStore(t.TempDir(), "model.txt", nil)

	if info := ms.Info(); info.Exists {
		t.Error("expected no model info before save")
	}

	if err := ms.Save(regression.Model{Bias: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}

	info := ms.Info()
	if !info.Exists || info.Size == 0 {
		t.Errorf("unexpected info %+v", info)
	}

	if err := ms.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ms.Exists() {
		t.Error("expected model removed")
	}
	if err := ms.Delete(); err != nil {
		t.Errorf("deleting a missing model should succeed: %v", err)
	}
}
