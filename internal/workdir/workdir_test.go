package workdir

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Not parallel: these tests change the process working directory.

func mustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	return wd
}

func TestInRunsInDirectory(t *testing.T) {
	dir := t.TempDir()
	before := mustGetwd(t)

	var seen string
	err := In(dir, func() error {
		seen = mustGetwd(t)
		return nil
	})
	if err != nil {
		t.Fatalf("In() failed: %v", err)
	}

	// TempDir may be behind a symlink (e.g. /tmp on macOS)
	wantDir, _ := filepath.EvalSymlinks(dir)
	gotDir, _ := filepath.EvalSymlinks(seen)
	if gotDir != wantDir {
		t.Errorf("fn ran in %q, want %q", gotDir, wantDir)
	}

	if after := mustGetwd(t); after != before {
		t.Errorf("working directory after In = %q, want %q", after, before)
	}
}

func TestInRestoresOnError(t *testing.T) {
	before := mustGetwd(t)
	boom := errors.New("boom")

	err := In(t.TempDir(), func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("In() = %v, want fn error", err)
	}

	if after := mustGetwd(t); after != before {
		t.Errorf("working directory after failed In = %q, want %q", after, before)
	}
}

func TestInMissingDirectory(t *testing.T) {
	before := mustGetwd(t)

	called := false
	err := In(filepath.Join(t.TempDir(), "nope"), func() error {
		called = true
		return nil
	})
	if err == nil {
		t.Error("In(missing dir) = nil, want error")
	}
	if called {
		t.Error("fn was called despite failed directory change")
	}

	if after := mustGetwd(t); after != before {
		t.Errorf("working directory changed: %q, want %q", after, before)
	}
}

func TestInRestoresWhenGuardedDirVanishes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cannot remove the current directory on windows")
	}

	before := mustGetwd(t)
	dir := t.TempDir()

	err := In(dir, func() error {
		// Pull the directory out from under the guarded region.
		return os.Remove(dir)
	})
	if err != nil {
		t.Fatalf("In() failed: %v", err)
	}

	if after := mustGetwd(t); after != before {
		t.Errorf("working directory after In = %q, want %q", after, before)
	}
}
