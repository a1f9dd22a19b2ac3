package xkb

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/OneDeadKey/xkalamine/internal/messages"
)

// Manager registers and unregisters custom keyboard layouts against one XKB
// configuration root (user-scope ~/.config/xkb or the system-wide tree).
type Manager struct {
	sys      System
	root     string
	progress io.Writer
}

// NewManager returns a Manager operating on rootDir. Per-file progress is
// reported on progress; pass io.Discard to silence it.
func NewManager(sys System, rootDir string, progress io.Writer) *Manager {
	if progress == nil {
		progress = io.Discard
	}
	return &Manager{sys: sys, root: rootDir, progress: progress}
}

// Root returns the configuration root this manager operates on.
func (m *Manager) Root() string {
	return m.root
}

// Update commits a registration session: the registry shards first, then the
// symbols files. Registry entries are cheap to add speculatively and harmless
// to leave behind, so a failed symbols write at worst hides a definition from
// discovery instead of referencing one that does not exist. The index is
// cleared afterwards, pass or fail; build a fresh one per session.
func (m *Manager) Update(index Index) error {
	defer index.clear()
	if len(index) == 0 {
		return nil
	}
	if err := updateRules(m.sys, m.root, index, m.progress); err != nil {
		return err
	}
	return updateSymbols(m.sys, m.root, index, m.progress)
}

// FilePreview holds the before/after content of one file an Update would touch.
type FilePreview struct {
	Path string
	Old  string
	New  string
}

// Preview renders the files an Update of index would rewrite, without
// touching disk. The index stays usable for a subsequent Update.
func (m *Manager) Preview(index Index) ([]FilePreview, error) {
	var previews []FilePreview
	for _, path := range rulePaths(m.sys, m.root) {
		doc, err := parseRules(m.sys, path)
		if err != nil {
			return nil, err
		}
		old, err := renderRulesDoc(doc)
		if err != nil {
			return nil, fmt.Errorf(messages.XKBWriteFileFmt, path, err)
		}
		if err := applyIndexToRules(doc, path, index); err != nil {
			return nil, err
		}
		updated, err := renderRulesDoc(doc)
		if err != nil {
			return nil, fmt.Errorf(messages.XKBWriteFileFmt, path, err)
		}
		if string(old) != string(updated) {
			previews = append(previews, FilePreview{Path: path, Old: string(old), New: string(updated)})
		}
	}
	for _, locale := range index.Locales() {
		path := filepath.Join(m.root, "symbols", locale)
		content := symbolsStamp + "\n"
		data, err := m.sys.ReadFile(path)
		if err == nil {
			content = string(data)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, wrapFileError(err, messages.XKBReadFileFmt, path)
		}
		text, changed := renderSymbols(content, index[locale])
		if changed {
			previews = append(previews, FilePreview{Path: path, Old: content, New: text})
		}
	}
	return previews, nil
}

// List returns the layouts this tool has actually installed: variants both
// declared in a registry shard and present as a marker block in their
// locale's symbols file.
func (m *Manager) List(mask string) (Index, error) {
	candidates, err := listRules(m.sys, m.root, mask)
	if err != nil {
		return nil, err
	}
	return listSymbols(m.sys, m.root, candidates)
}

// ListAll returns every variant declared in the registry shards, whether or
// not a definition block exists. Comparing it with List exposes declared but
// never installed drift.
func (m *Manager) ListAll(mask string) (Index, error) {
	return listRules(m.sys, m.root, mask)
}

// Clean drops the obsolete variant attributes older releases wrote into the
// registry shards and returns the shards it rewrote.
func (m *Manager) Clean() ([]string, error) {
	return cleanRules(m.sys, m.root)
}

// HasCustomSymbols reports whether a usable symbols/custom file exists, that
// is one declared as a custom layout in a registry shard.
func (m *Manager) HasCustomSymbols() (bool, error) {
	custom := filepath.Join(m.root, "symbols", "custom")
	if _, err := m.sys.Stat(custom); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	for _, path := range rulePaths(m.sys, m.root) {
		doc, err := parseRules(m.sys, path)
		if err != nil {
			return false, err
		}
		if findLayout(doc, "custom") != nil {
			return true, nil
		}
	}
	return false, nil
}
