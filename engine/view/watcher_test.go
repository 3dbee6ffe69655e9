package view

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "views.yaml")
	write := func(fov string) {
		t.Helper()
		contents := []byte("\nviews:\n  shoulder:\n    base: [1.2, 1.5, -3.5]\n    look_at: [0.0, 1.5, 0.0]\n    smoothing: 0.15\n    fov: " + fov + "\n")
		if err := os.WriteFile(path, contents, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("0.9")

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	reg, err := NewRegistry(entries)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	w, err := NewWatcher(path, reg)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	write("1.2")

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if o, _ := reg.Get("shoulder"); o.Fov == 1.2 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	o, _ := reg.Get("shoulder")
	t.Fatalf("registry not reloaded, fov still %v", o.Fov)
}

func TestWatcherKeepsRegistryOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "views.yaml")
	good := []byte("\nviews:\n  shoulder:\n    base: [0, 2, -4]\n    look_at: [0, 1, 0]\n    smoothing: 0.2\n    fov: 0.9\n")
	if err := os.WriteFile(path, good, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	reg, err := NewRegistry(entries)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	w, err := NewWatcher(path, reg)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// A half-saved file must not corrupt the live configuration.
	if err := os.WriteFile(path, []byte("views: [broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(300 * time.Millisecond)

	if o, _ := reg.Get("shoulder"); o.Fov != 0.9 {
		t.Fatalf("bad reload corrupted the registry, fov = %v", o.Fov)
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "views.yaml")
	if err := os.WriteFile(path, []byte("views: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	w, err := NewWatcher(path, reg)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
