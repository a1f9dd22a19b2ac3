package xkb

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/OneDeadKey/xkalamine/internal/messages"
)

// Subdirectories an XKB configuration root is expected to carry. The
// 'geometry' directory is optional and left alone.
var configSubdirs = []string{"compat", "keycodes", "rules", "symbols", "types"}

const evdevRulesStub = `
// Generated by Kalamine
// Include the system 'evdev' file
! include %S/evdev
`

const evdevRegistrySkeleton = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE xkbConfigRegistry SYSTEM "xkb.dtd">
<!-- Generated by Kalamine -->
<xkbConfigRegistry version="1.1">
    <layoutList/>
</xkbConfigRegistry>
`

// EnsureConfigReady creates a minimal valid user-scope XKB configuration
// under dir: the expected subdirectories, an evdev rules file that includes
// the system rules, and an empty layout registry. Existing files are left
// untouched, so running it before every session is safe.
func EnsureConfigReady(sys System, dir string) error {
	for _, sub := range append([]string{"."}, configSubdirs...) {
		path := filepath.Join(dir, sub)
		if err := sys.MkdirAll(path, 0o755); err != nil {
			return wrapFileError(err, messages.XKBCreateDirFmt, path)
		}
	}

	seeds := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, "rules", "evdev"), evdevRulesStub},
		{filepath.Join(dir, "rules", "evdev.xml"), evdevRegistrySkeleton},
	}
	for _, seed := range seeds {
		if _, err := sys.Stat(seed.path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return wrapFileError(err, messages.XKBReadFileFmt, seed.path)
		}
		if err := sys.WriteFileAtomic(seed.path, []byte(seed.content), 0o644); err != nil {
			return wrapFileError(err, messages.XKBWriteFileFmt, seed.path)
		}
	}
	return nil
}
