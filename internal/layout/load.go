// Package layout loads layout descriptor files: the TOML artifact a layout
// compiler leaves behind, carrying the registration metadata and the rendered
// xkb_symbols body for one keyboard layout.
package layout

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/OneDeadKey/xkalamine/internal/messages"
)

// Layout describes one installable keyboard layout.
type Layout struct {
	Locale      string `toml:"locale"`
	Variant     string `toml:"variant"`
	Description string `toml:"description"`
	Symbols     string `toml:"symbols"`
}

// Load reads and validates a layout descriptor from disk.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.LayoutMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates layout descriptor TOML data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Layout, error) {
	var l Layout
	if err := toml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf(messages.LayoutInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.LayoutUnknownKeysFmt, source, err)
	}
	if err := l.validate(source); err != nil {
		return nil, err
	}
	return &l, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection,
// catching keys that toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var l Layout
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&l)
}

func (l *Layout) validate(source string) error {
	fields := []struct {
		name  string
		value string
	}{
		{"locale", l.Locale},
		{"variant", l.Variant},
		{"description", l.Description},
		{"symbols", l.Symbols},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf(messages.LayoutMissingFieldFmt, source, field.name)
		}
	}
	// Locale and variant name files and marker names; a path separator here
	// would escape the symbols directory, and a non-lowercase name would not
	// round-trip through the uppercased markers.
	for _, field := range fields[:2] {
		if strings.ContainsAny(field.value, "/\\") {
			return fmt.Errorf(messages.LayoutBadNameFmt, source, field.name)
		}
		if field.value != strings.ToLower(field.value) {
			return fmt.Errorf(messages.LayoutUpperNameFmt, source, field.name)
		}
	}
	return nil
}
