package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "file.txt")

	if err := WriteFileAtomic(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want %q", data, "hello")
	}

	// No temp file left behind
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still exists after write")
	}
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")

	if err := WriteFileAtomic(path, []byte("one"), 0o644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("two"), 0o644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "two" {
		t.Errorf("content = %q, want %q", data, "two")
	}
}

func TestSaveLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	want := record{Name: "build", Count: 3}
	if err := SaveJSON(path, want); err != nil {
		t.Fatalf("SaveJSON() failed: %v", err)
	}

	var got record
	if err := LoadJSON(path, &got); err != nil {
		t.Fatalf("LoadJSON() failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadJSONMissing(t *testing.T) {
	t.Parallel()

	var dest map[string]any
	err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &dest)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadJSON(missing) = %v, want os.ErrNotExist", err)
	}
}
