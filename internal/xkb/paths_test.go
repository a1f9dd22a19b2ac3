package xkb

import (
	"path/filepath"
	"testing"
)

func TestUserDirHonorsConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if got, want := UserDir(), filepath.Join(home, "xkb"); got != want {
		t.Fatalf("UserDir() = %q, want %q", got, want)
	}
}

func TestSystemDirHonorsOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XKB_CONFIG_ROOT", root)
	if got := SystemDir(); got != root {
		t.Fatalf("SystemDir() = %q, want %q", got, root)
	}

	t.Setenv("XKB_CONFIG_ROOT", "")
	if got := SystemDir(); got != "/usr/share/X11/xkb" {
		t.Fatalf("SystemDir() = %q, want the stock tree", got)
	}
}

func TestWaylandSession(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	if !WaylandSession() {
		t.Fatalf("expected wayland session to be detected")
	}
	t.Setenv("XDG_SESSION_TYPE", "x11")
	if WaylandSession() {
		t.Fatalf("x11 session reported as wayland")
	}
}
