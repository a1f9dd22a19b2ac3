package xkb

import "strings"

// Layout definitions are installed in XKB/symbols/<locale> between marker
// comments so they can be updated or reverted later:
//
//	// KALAMINE::<NAME>::BEGIN
//	xkb_symbols "<name>" { ... }
//	// KALAMINE::<NAME>::END
//
// A first-generation installer shipped with the Lafayette project used an
// unnamed marker pair (// LAFAYETTE::BEGIN ... // LAFAYETTE::END) around all
// of its layouts; those blocks are recognized under the fixed name
// "lafayette" so they can still be replaced or removed.
const (
	kalamineMarkPrefix = "// KALAMINE::"
	lafayetteMarkBegin = "// LAFAYETTE::BEGIN"
	lafayetteName      = "lafayette"

	markBeginSuffix = "::BEGIN"
	markEndSuffix   = "::END"
)

// symbolMark is the begin/end marker pair delimiting one named block.
type symbolMark struct {
	begin string
	end   string
}

// markFor returns the current-format marker pair for a variant name.
// Names are uppercased inside markers and lowercased as lookup keys.
func markFor(name string) symbolMark {
	upper := strings.ToUpper(name)
	return symbolMark{
		begin: kalamineMarkPrefix + upper + markBeginSuffix,
		end:   kalamineMarkPrefix + upper + markEndSuffix,
	}
}

// markFormat recognizes one generation of begin markers.
type markFormat struct {
	// recognize reports the lookup name a begin line carries in this format.
	recognize func(line string) (string, bool)
}

var markFormats = []markFormat{
	// current: // KALAMINE::<NAME>::BEGIN
	{recognize: func(line string) (string, bool) {
		rest, ok := strings.CutPrefix(line, kalamineMarkPrefix)
		if !ok {
			return "", false
		}
		return strings.ToLower(strings.TrimSuffix(rest, markBeginSuffix)), true
	}},
	// legacy: // LAFAYETTE::BEGIN (no embedded name)
	{recognize: func(line string) (string, bool) {
		if !strings.HasPrefix(line, lafayetteMarkBegin) {
			return "", false
		}
		return lafayetteName, true
	}},
}

// beginMarkName reports the variant name opened by line, if line is a
// recognized begin marker in any known format.
func beginMarkName(line string) (string, bool) {
	if !strings.HasSuffix(line, markBeginSuffix) {
		return "", false
	}
	for _, format := range markFormats {
		if name, ok := format.recognize(line); ok {
			return name, true
		}
	}
	return "", false
}

// closingMark derives the end marker matching a begin line. The prefix is
// kept as-is so a legacy block is only closed by a legacy end marker and a
// current block only by its own named end marker.
func closingMark(beginLine string) string {
	return strings.TrimSuffix(beginLine, markBeginSuffix) + markEndSuffix
}

// isEndMark reports whether line looks like an end marker of any format.
func isEndMark(line string) bool {
	return strings.HasSuffix(line, markEndSuffix)
}
