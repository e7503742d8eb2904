package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/flow/internal/flow"
	"github.com/raphi011/flow/internal/log"
	"github.com/raphi011/flow/internal/registry"
	"github.com/raphi011/flow/internal/settings"
)

func testContext(buf *bytes.Buffer) context.Context {
	return log.WithLogger(context.Background(), log.New(buf, false, false))
}

func testFlowService(t *testing.T, names ...string) *flow.Service {
	t.Helper()
	svc := flow.NewService(settings.Settings{
		StorageRoot:   t.TempDir(),
		ScriptDialect: "bash",
		Initialized:   true,
	})
	workDir := t.TempDir()
	for _, name := range names {
		if _, err := svc.Create(name, workDir, "echo a"); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}
	return svc
}

// The requireSettings tests redirect HOME so settings.Path resolves
// inside the test's temp directory. t.Setenv rules out t.Parallel.

func TestRequireSettingsNotInitialized(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := settings.Path()
	if err != nil {
		t.Fatal(err)
	}
	root := t.TempDir()
	if err := settings.Save(path, settings.Settings{
		StorageRoot:   root,
		ScriptDialect: "bash",
	}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	_, ok, err := requireSettings(testContext(&buf))
	if err != nil {
		t.Fatalf("requireSettings() = %v, want nil", err)
	}
	if ok {
		t.Error("ok = true for uninitialized settings")
	}
	if !strings.Contains(buf.String(), "not initialized") {
		t.Errorf("hint not printed, output = %q", buf.String())
	}

	// The gate fires before any registry access: gated commands must
	// neither read nor create flows.json
	if _, err := os.Stat(registry.PathIn(root)); !errors.Is(err, os.ErrNotExist) {
		t.Error("registry file exists after gated command")
	}
}

func TestRequireSettingsMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	_, ok, err := requireSettings(testContext(&buf))
	if err != nil {
		t.Fatalf("requireSettings() = %v, want nil", err)
	}
	if ok {
		t.Error("ok = true without a settings file")
	}
	if !strings.Contains(buf.String(), "flow init") {
		t.Errorf("hint missing init pointer, output = %q", buf.String())
	}
}

func TestRequireSettingsMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := settings.Path()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("storage_root = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	_, ok, err := requireSettings(testContext(&buf))
	// A corrupt file is a reported error, not a first-run hint
	if err == nil || ok {
		t.Fatalf("requireSettings() = ok=%v, err=%v, want false and an error", ok, err)
	}
	if !errors.Is(err, settings.ErrUnreadable) {
		t.Errorf("err = %v, want ErrUnreadable", err)
	}
}

func TestRequireSettingsInitialized(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := settings.Path()
	if err != nil {
		t.Fatal(err)
	}
	root := t.TempDir()
	if err := settings.Save(path, settings.Settings{
		StorageRoot:   root,
		ScriptDialect: "bash",
		Initialized:   true,
	}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg, ok, err := requireSettings(testContext(&buf))
	if err != nil || !ok {
		t.Fatalf("requireSettings() = ok=%v, err=%v, want true, nil", ok, err)
	}
	if cfg.StorageRoot != root {
		t.Errorf("StorageRoot = %q, want %q", cfg.StorageRoot, root)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output for initialized settings: %q", buf.String())
	}
}

func TestSuggestIfNotFound(t *testing.T) {
	t.Parallel()

	svc := testFlowService(t, "deploy", "deploy-staging", "cleanup")

	var buf bytes.Buffer
	_, err := svc.Find("deplo")
	suggestIfNotFound(testContext(&buf), svc, "deplo", err)

	out := buf.String()
	if !strings.Contains(out, "Did you mean") {
		t.Fatalf("no suggestion printed, output = %q", out)
	}
	if !strings.Contains(out, "deploy") {
		t.Errorf("suggestion missing close match, output = %q", out)
	}
}

func TestSuggestIfNotFoundNoMatches(t *testing.T) {
	t.Parallel()

	svc := testFlowService(t, "alpha")

	var buf bytes.Buffer
	suggestIfNotFound(testContext(&buf), svc, "zzzz", flow.ErrNotFound)

	if buf.Len() != 0 {
		t.Errorf("suggestion printed for hopeless input: %q", buf.String())
	}
}

func TestSuggestIfNotFoundIgnoresOtherErrors(t *testing.T) {
	t.Parallel()

	svc := testFlowService(t, "deploy")

	var buf bytes.Buffer
	suggestIfNotFound(testContext(&buf), svc, "deploy", errors.New("disk on fire"))

	if buf.Len() != 0 {
		t.Errorf("suggestion printed for unrelated error: %q", buf.String())
	}
}
