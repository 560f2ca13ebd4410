package rtwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := NewWithDebounce(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWithDebounce failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("world"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case <-w.Events():
	case err := <-w.Errors():
		t.Fatalf("watcher reported error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestNew_MissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := New(filepath.Join(dir, "missing.md"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
