package xkb

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/OneDeadKey/xkalamine/internal/messages"
)

const (
	// symbolsStamp seeds a symbols file created on first install.
	symbolsStamp = "// Generated by Kalamine"

	// ignoreSentinel prefixes body lines that must not reach the installed file.
	ignoreSentinel = "//#"
)

// renderSymbols rewrites a symbols file in one pass. Every marker-delimited
// block whose name keys changes is dropped, install and remove alike, which
// makes re-installing an already present variant replace it instead of
// duplicating it. Unrelated content and blocks with other names pass through
// verbatim. Trailing blank lines are then trimmed to a single newline and one
// fresh block is appended per Definition, each preceded by a blank line.
// Returns the new content and whether it differs from the input.
func renderSymbols(content string, changes map[string]*Definition) (string, bool) {
	if len(changes) == 0 {
		return content, false
	}

	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	dropped := false
	inBlock := false
	closing := ""
	for _, line := range lines {
		if inBlock {
			// Only the end marker matching the opening prefix closes the
			// block; any other line, marker lookalikes included, is block
			// content and goes away with it.
			if isEndMark(line) && line == closing {
				inBlock = false
				closing = ""
			}
			continue
		}
		if name, ok := beginMarkName(line); ok {
			if _, hit := changes[name]; hit {
				inBlock = true
				closing = closingMark(line)
				kept = trimTrailingBlank(kept)
				dropped = true
				continue
			}
		}
		kept = append(kept, line)
	}

	adds := make([]string, 0, len(changes))
	for _, name := range sortedNames(changes) {
		if changes[name] != nil {
			adds = append(adds, name)
		}
	}
	if !dropped && len(adds) == 0 {
		return content, false
	}

	text := strings.TrimRight(strings.Join(kept, "\n"), " \t\n")
	if text != "" {
		text += "\n"
	}
	for _, name := range adds {
		mark := markFor(name)
		if text != "" {
			text += "\n"
		}
		body := strings.TrimRight(stripIgnoredLines(changes[name].Symbols), " \t\n")
		text += mark.begin + "\n" + body + "\n" + mark.end + "\n"
	}
	return text, text != content
}

// updateSymbols commits one locale's change set to XKB/symbols/<locale> for
// every locale in the index, creating missing files with a generator stamp.
func updateSymbols(sys System, root string, index Index, progress io.Writer) error {
	for _, locale := range index.Locales() {
		variants := index[locale]
		if len(variants) == 0 {
			continue
		}
		path := filepath.Join(root, "symbols", locale)
		missing := false
		data, err := sys.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return wrapFileError(err, messages.XKBReadFileFmt, path)
			}
			missing = true
			data = []byte(symbolsStamp + "\n")
		}

		fmt.Fprintf(progress, messages.XKBProgressFileFmt, path)
		for _, name := range sortedNames(variants) {
			if variants[name] == nil {
				fmt.Fprintf(progress, messages.XKBProgressRemoveFmt, locale, name)
			} else {
				fmt.Fprintf(progress, messages.XKBProgressAddFmt, locale, name)
			}
		}

		text, changed := renderSymbols(string(data), variants)
		if !changed && !missing {
			continue
		}
		if err := sys.WriteFileAtomic(path, []byte(text), 0o644); err != nil {
			return wrapFileError(err, messages.XKBWriteFileFmt, path)
		}
	}
	return nil
}

// listSymbols filters a candidate index down to the variants that actually
// have a marker-delimited block in their locale's symbols file. Locales
// without a symbols file are dropped entirely.
func listSymbols(sys System, root string, candidates Index) (Index, error) {
	filtered := Index{}
	for _, locale := range candidates.Locales() {
		variants := candidates[locale]
		path := filepath.Join(root, "symbols", locale)
		installed, err := listSymbolNames(sys, path)
		if err != nil {
			return nil, err
		}
		if installed == nil {
			continue
		}
		for name, def := range variants {
			if installed[name] {
				filtered.Add(locale, name, def)
			}
		}
	}
	return filtered, nil
}

// listSymbolNames scans a symbols file for begin markers and collects the
// registered variant names.
func listSymbolNames(sys System, path string) (map[string]bool, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, wrapFileError(err, messages.XKBReadFileFmt, path)
	}
	names := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		if name, ok := beginMarkName(line); ok {
			names[name] = true
		}
	}
	return names, nil
}

// trimTrailingBlank removes trailing lines that hold only whitespace.
func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// stripIgnoredLines drops body lines starting with the ignore sentinel.
func stripIgnoredLines(body string) string {
	lines := strings.Split(body, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, ignoreSentinel) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
