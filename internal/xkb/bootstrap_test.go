package xkb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureConfigReadyCreatesTree(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	dir := filepath.Join(root, "xkb")
	if err := EnsureConfigReady(RealSystem{}, dir); err != nil {
		t.Fatalf("EnsureConfigReady error: %v", err)
	}

	for _, sub := range []string{"compat", "keycodes", "rules", "symbols", "types"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", sub, err)
		}
	}

	rules, err := os.ReadFile(filepath.Join(dir, "rules", "evdev"))
	if err != nil {
		t.Fatalf("expected rules/evdev: %v", err)
	}
	if !strings.Contains(string(rules), "! include %S/evdev") {
		t.Fatalf("rules stub missing include line:\n%s", rules)
	}

	registry, err := os.ReadFile(filepath.Join(dir, "rules", "evdev.xml"))
	if err != nil {
		t.Fatalf("expected rules/evdev.xml: %v", err)
	}
	if !strings.Contains(string(registry), "<layoutList/>") {
		t.Fatalf("registry skeleton missing layoutList:\n%s", registry)
	}
}

func TestEnsureConfigReadyKeepsExistingFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := EnsureConfigReady(RealSystem{}, dir); err != nil {
		t.Fatalf("first run: %v", err)
	}
	custom := []byte("// customized by the user\n! include %S/evdev\n")
	if err := os.WriteFile(filepath.Join(dir, "rules", "evdev"), custom, 0o644); err != nil {
		t.Fatalf("write custom rules: %v", err)
	}
	if err := EnsureConfigReady(RealSystem{}, dir); err != nil {
		t.Fatalf("second run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "rules", "evdev"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != string(custom) {
		t.Fatalf("existing file overwritten:\n%s", data)
	}
}
