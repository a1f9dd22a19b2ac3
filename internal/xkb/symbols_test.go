package xkb

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const bepoBlock = "// KALAMINE::BEPO::BEGIN\nxkb_symbols \"bepo\" {\n};\n// KALAMINE::BEPO::END\n"

func TestRenderSymbolsAppendsWithoutTouchingContent(t *testing.T) {
	t.Parallel()
	content := "// header\nxkb_symbols \"ansi\" {\n};\n"
	changes := map[string]*Definition{
		"bepo": {Description: "French (Bépo)", Symbols: "xkb_symbols \"bepo\" {\n};"},
	}
	text, changed := renderSymbols(content, changes)
	if !changed {
		t.Fatalf("expected a change")
	}
	want := content + "\n" + bepoBlock
	if text != want {
		t.Fatalf("unexpected content:\n%q\nwant:\n%q", text, want)
	}
}

func TestRenderSymbolsIdempotent(t *testing.T) {
	t.Parallel()
	changes := map[string]*Definition{
		"bepo": {Description: "French (Bépo)", Symbols: "xkb_symbols \"bepo\" {\n};"},
	}
	once, _ := renderSymbols("// header\n", changes)
	twice, changed := renderSymbols(once, changes)
	if changed {
		t.Fatalf("second render should be a no-op")
	}
	if twice != once {
		t.Fatalf("render not idempotent:\n%q\nvs\n%q", twice, once)
	}
}

func TestRenderSymbolsReplacesWithoutDuplicating(t *testing.T) {
	t.Parallel()
	content := "// header\n\n" + bepoBlock
	changes := map[string]*Definition{
		"bepo": {Symbols: "xkb_symbols \"bepo\" { updated };"},
	}
	text, changed := renderSymbols(content, changes)
	if !changed {
		t.Fatalf("expected a change")
	}
	if got := strings.Count(text, "// KALAMINE::BEPO::BEGIN"); got != 1 {
		t.Fatalf("expected exactly one begin marker, got %d", got)
	}
	if !strings.Contains(text, "updated") {
		t.Fatalf("expected replaced body in %q", text)
	}
	if strings.Contains(text, "xkb_symbols \"bepo\" {\n};") {
		t.Fatalf("old body still present in %q", text)
	}
}

func TestRenderSymbolsTombstoneRemovesBlock(t *testing.T) {
	t.Parallel()
	content := "// header\n\n" + bepoBlock
	text, changed := renderSymbols(content, map[string]*Definition{"bepo": nil})
	if !changed {
		t.Fatalf("expected a change")
	}
	if text != "// header\n" {
		t.Fatalf("unexpected content %q", text)
	}
}

func TestRenderSymbolsForeignEndDoesNotCloseBlock(t *testing.T) {
	t.Parallel()
	content := "// header\n\n" +
		"// KALAMINE::BEPO::BEGIN\n" +
		"// LAFAYETTE::END\n" +
		"xkb_symbols \"bepo\" {\n};\n" +
		"// KALAMINE::BEPO::END\n" +
		"// trailer\n"
	text, changed := renderSymbols(content, map[string]*Definition{"bepo": nil})
	if !changed {
		t.Fatalf("expected a change")
	}
	if text != "// header\n// trailer\n" {
		t.Fatalf("block not removed as a whole: %q", text)
	}
}

func TestRenderSymbolsLegacyAndCurrentBlocksStayPaired(t *testing.T) {
	t.Parallel()
	legacy := "// LAFAYETTE::BEGIN\nxkb_symbols \"lafayette\" {\n};\n// LAFAYETTE::END\n"
	content := "// header\n\n" + legacy + "\n" + bepoBlock
	text, changed := renderSymbols(content, map[string]*Definition{"lafayette": nil})
	if !changed {
		t.Fatalf("expected a change")
	}
	if strings.Contains(text, "LAFAYETTE") {
		t.Fatalf("legacy block still present: %q", text)
	}
	if !strings.Contains(text, bepoBlock) {
		t.Fatalf("current block damaged: %q", text)
	}
}

func TestRenderSymbolsStripsIgnoredLines(t *testing.T) {
	t.Parallel()
	changes := map[string]*Definition{
		"bepo": {Symbols: "//# compiler note\nxkb_symbols \"bepo\" {\n//# another\n};"},
	}
	text, _ := renderSymbols("", changes)
	if strings.Contains(text, "//#") {
		t.Fatalf("ignore-sentinel lines not stripped: %q", text)
	}
	if !strings.Contains(text, "xkb_symbols \"bepo\"") {
		t.Fatalf("body lost: %q", text)
	}
}

func TestRenderSymbolsEmptyChanges(t *testing.T) {
	t.Parallel()
	content := "// untouched\n"
	text, changed := renderSymbols(content, nil)
	if changed || text != content {
		t.Fatalf("expected no-op, got changed=%v content=%q", changed, text)
	}
}

func TestUpdateSymbolsCreatesMissingFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "symbols"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	index := Index{}
	index.Add("fr", "bepo", &Definition{Description: "French (Bépo)", Symbols: "xkb_symbols \"bepo\" {\n};"})
	if err := updateSymbols(RealSystem{}, root, index, io.Discard); err != nil {
		t.Fatalf("updateSymbols error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "symbols", "fr"))
	if err != nil {
		t.Fatalf("expected symbols/fr: %v", err)
	}
	if !strings.HasPrefix(string(data), symbolsStamp) {
		t.Fatalf("missing generator stamp in %q", data)
	}
	if !strings.Contains(string(data), "// KALAMINE::BEPO::BEGIN") {
		t.Fatalf("missing block in %q", data)
	}
}

func TestListSymbolsDropsLocalesWithoutFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "symbols"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "symbols", "fr"), []byte(bepoBlock), 0o644); err != nil {
		t.Fatalf("write symbols/fr: %v", err)
	}

	candidates := Index{}
	candidates.Add("fr", "bepo", &Definition{Description: "French (Bépo)"})
	candidates.Add("fr", "ghost", &Definition{Description: "declared only"})
	candidates.Add("de", "neo", &Definition{Description: "no symbols file"})

	filtered, err := listSymbols(RealSystem{}, root, candidates)
	if err != nil {
		t.Fatalf("listSymbols error: %v", err)
	}
	if !filtered.Has("fr", "bepo") {
		t.Fatalf("installed variant missing from %v", filtered)
	}
	if filtered.Has("fr", "ghost") {
		t.Fatalf("declared-only variant should be filtered out")
	}
	if _, ok := filtered["de"]; ok {
		t.Fatalf("locale without symbols file should be dropped")
	}
}

func TestListSymbolNamesRecognizesLegacyBlocks(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	path := filepath.Join(root, "fr")
	content := "// LAFAYETTE::BEGIN\nxkb_symbols \"lafayette\" {\n};\n// LAFAYETTE::END\n" + bepoBlock
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	names, err := listSymbolNames(RealSystem{}, path)
	if err != nil {
		t.Fatalf("listSymbolNames error: %v", err)
	}
	if !names["lafayette"] || !names["bepo"] {
		t.Fatalf("unexpected names %v", names)
	}
}
