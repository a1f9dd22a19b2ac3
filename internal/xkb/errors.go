package xkb

import (
	"errors"
	"fmt"
	"os"
)

// wrapFileError converts an I/O failure into a descriptive error naming the
// offending path. Permission errors pass through unchanged so the CLI can
// suggest privilege escalation instead of printing a generic failure.
func wrapFileError(err error, format, path string) error {
	if errors.Is(err, os.ErrPermission) {
		return err
	}
	return fmt.Errorf(format, path, err)
}
