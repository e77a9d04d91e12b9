package ioutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEULAContent(t *testing.T) {
	now := time.Date(2024, time.June, 14, 8, 3, 11, 0, time.UTC)
	got := EULAContent(now)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "#By changing the setting below to TRUE") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "#Fri Jun 14 10:03:11 CEST 2024" {
		t.Errorf("line 2 = %q", lines[1])
	}
	if lines[2] != "eula=true" {
		t.Errorf("line 3 = %q", lines[2])
	}
}

func TestWriteEULA(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "server")

	path, err := WriteEULA(dir, time.Now())
	if err != nil {
		t.Fatalf("WriteEULA() error = %v", err)
	}
	if path != filepath.Join(dir, EULAFileName) {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "eula=true\n") {
		t.Errorf("content = %q", data)
	}
}

func TestEnsureParentDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "server.jar")
	if err := EnsureParentDir(target); err != nil {
		t.Fatalf("EnsureParentDir() error = %v", err)
	}
	info, err := os.Stat(filepath.Dir(target))
	if err != nil || !info.IsDir() {
		t.Errorf("parent not created: %v", err)
	}
}
