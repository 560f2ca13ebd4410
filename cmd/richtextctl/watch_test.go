package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcflow-go/richtext"
)

func TestWatchCmd_RunOnceWritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	out := filepath.Join(dir, "out.json")

	if err := os.WriteFile(in, []byte("hello **world**"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	c := &WatchCmd{From: "gfm", To: "rtjson", Input: in, Output: out}
	if err := c.runOnce(richtext.Options{}); err != nil {
		t.Fatalf("runOnce failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty output")
	}
}
