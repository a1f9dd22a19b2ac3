package xkb

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// UserDir returns the user-scope XKB configuration root, $XDG_CONFIG_HOME/xkb.
// The variable is read at call time so tests can repoint it; xdg supplies the
// platform default when it is unset.
func UserDir() string {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "xkb")
	}
	return filepath.Join(xdg.ConfigHome, "xkb")
}

// SystemDir returns the system-wide XKB configuration root, honoring the
// XKB_CONFIG_ROOT override the xkbcommon stack uses.
func SystemDir() string {
	if root := os.Getenv("XKB_CONFIG_ROOT"); root != "" {
		return root
	}
	return "/usr/share/X11/xkb"
}

// WaylandSession reports whether the current session is a Wayland one.
// X11 sessions need setxkbmap to pick up user-scope layouts; Wayland
// compositors read $XDG_CONFIG_HOME/xkb directly.
func WaylandSession() bool {
	return strings.HasPrefix(os.Getenv("XDG_SESSION_TYPE"), "wayland")
}
