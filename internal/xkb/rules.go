package xkb

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/OneDeadKey/xkalamine/internal/messages"
)

// ruleShards are the registry files a desktop environment may consult.
// Each existing shard is mutated independently; there is no cross-shard
// transaction and none is needed, re-running a session converges them.
var ruleShards = []string{"base.xml", "evdev.xml"}

// rulePaths returns the shard paths that exist under root.
func rulePaths(sys System, root string) []string {
	paths := make([]string, 0, len(ruleShards))
	for _, shard := range ruleShards {
		path := filepath.Join(root, "rules", shard)
		if _, err := sys.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}

// parseRules reads a registry shard into an element tree. The tree keeps
// comments, the doctype and any elements this tool does not know about, so
// they survive a rewrite.
func parseRules(sys System, path string) (*etree.Document, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, wrapFileError(err, messages.XKBReadFileFmt, path)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf(messages.XKBParseRulesFmt, path, err)
	}
	return doc, nil
}

// renderRulesDoc pretty-prints a registry document with an XML declaration,
// normalizing whitespace the same way every time.
func renderRulesDoc(doc *etree.Document) ([]byte, error) {
	ensureXMLDeclaration(doc)
	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// writeRules writes a registry shard back to disk.
func writeRules(sys System, path string, doc *etree.Document) error {
	data, err := renderRulesDoc(doc)
	if err != nil {
		return fmt.Errorf(messages.XKBWriteFileFmt, path, err)
	}
	if err := sys.WriteFileAtomic(path, data, 0o644); err != nil {
		return wrapFileError(err, messages.XKBWriteFileFmt, path)
	}
	return nil
}

// ensureXMLDeclaration inserts an xml processing instruction at the top of
// the document when the source file carried none.
func ensureXMLDeclaration(doc *etree.Document) {
	for _, token := range doc.Child {
		if pi, ok := token.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	doc.InsertChildAt(0, &etree.ProcInst{Target: "xml", Inst: `version="1.0" encoding="UTF-8"`})
}

// findLayout returns the layout element whose configItem/name equals locale.
func findLayout(doc *etree.Document, locale string) *etree.Element {
	for _, layout := range doc.FindElements("//layoutList/layout") {
		if layoutName(layout) == locale {
			return layout
		}
	}
	return nil
}

func layoutName(layout *etree.Element) string {
	item := layout.SelectElement("configItem")
	if item == nil {
		return ""
	}
	name := item.SelectElement("name")
	if name == nil {
		return ""
	}
	return name.Text()
}

// localeVariantList returns the variantList of the layout node for locale,
// appending a fresh layout node to layoutList when the locale is not yet
// declared. A layout carrying anything but exactly one variantList is a
// structural error for this shard.
func localeVariantList(doc *etree.Document, path, locale string) (*etree.Element, error) {
	layout := findLayout(doc, locale)
	if layout == nil {
		list := doc.FindElement("//layoutList")
		if list == nil {
			return nil, fmt.Errorf(messages.XKBNoLayoutListFmt, path)
		}
		layout = list.CreateElement("layout")
		layout.CreateElement("configItem").CreateElement("name").SetText(locale)
		layout.CreateElement("variantList")
	}
	lists := layout.SelectElements("variantList")
	if len(lists) != 1 {
		return nil, fmt.Errorf(messages.XKBRulesFormatFmt, path)
	}
	return lists[0], nil
}

// removeVariant deletes the variant node with this name; absence is not an error.
func removeVariant(variantList *etree.Element, name string) {
	for _, variant := range variantList.SelectElements("variant") {
		item := variant.SelectElement("configItem")
		if item == nil {
			continue
		}
		if n := item.SelectElement("name"); n != nil && n.Text() == name {
			variantList.RemoveChild(variant)
		}
	}
}

// addVariant appends a variant node with the given name and description.
// Upserts are remove-then-add, so a re-added variant always lands at the end
// of its locale's list.
func addVariant(variantList *etree.Element, name, description string) {
	item := variantList.CreateElement("variant").CreateElement("configItem")
	item.CreateElement("name").SetText(name)
	item.CreateElement("description").SetText(description)
}

// applyIndexToRules mutates one parsed shard with the whole change set.
func applyIndexToRules(doc *etree.Document, path string, index Index) error {
	for _, locale := range index.Locales() {
		variantList, err := localeVariantList(doc, path, locale)
		if err != nil {
			return err
		}
		for _, name := range sortedNames(index[locale]) {
			removeVariant(variantList, name)
			if def := index[locale][name]; def != nil {
				addVariant(variantList, name, def.Description)
			}
		}
	}
	return nil
}

// updateRules commits the index to every existing registry shard. A shard
// already written stays written when a later one fails; each shard is
// independently valid and re-running the session converges the rest.
func updateRules(sys System, root string, index Index, progress io.Writer) error {
	if len(index) == 0 {
		return nil
	}
	for _, path := range rulePaths(sys, root) {
		doc, err := parseRules(sys, path)
		if err != nil {
			return err
		}
		if err := applyIndexToRules(doc, path, index); err != nil {
			return err
		}
		if err := writeRules(sys, path, doc); err != nil {
			return err
		}
		fmt.Fprintf(progress, messages.XKBProgressFileFmt, path)
	}
	return nil
}

// listRules collects every variant declared in the registry shards,
// constrained by a locale[/variant] mask. Descriptions come from the
// registry; a variant declared in several shards is reported once.
func listRules(sys System, root, mask string) (Index, error) {
	localeMask, variantMask := parseMask(mask)
	index := Index{}
	for _, path := range rulePaths(sys, root) {
		doc, err := parseRules(sys, path)
		if err != nil {
			return nil, err
		}
		for _, variant := range doc.FindElements("//layout/variantList/variant") {
			layout := variant.Parent().Parent()
			locale := layoutName(layout)
			item := variant.SelectElement("configItem")
			if locale == "" || item == nil {
				continue
			}
			name := item.SelectElement("name")
			if name == nil {
				continue
			}
			description := ""
			if desc := item.SelectElement("description"); desc != nil {
				description = desc.Text()
			}
			if maskMatch(localeMask, locale) && maskMatch(variantMask, name.Text()) {
				index.Add(locale, name.Text(), &Definition{Description: description})
			}
		}
	}
	return index, nil
}

// cleanRules drops the obsolete type attribute older releases set on variant
// nodes; recent GNOME versions reject registries carrying it. It returns the
// shards it rewrote.
func cleanRules(sys System, root string) ([]string, error) {
	var cleaned []string
	for _, path := range rulePaths(sys, root) {
		doc, err := parseRules(sys, path)
		if err != nil {
			return cleaned, err
		}
		stale := false
		for _, variant := range doc.FindElements("//variant") {
			if variant.SelectAttr("type") != nil {
				variant.RemoveAttr("type")
				stale = true
			}
		}
		if !stale {
			continue
		}
		if err := writeRules(sys, path, doc); err != nil {
			return cleaned, err
		}
		cleaned = append(cleaned, path)
	}
	return cleaned, nil
}

// parseMask splits a locale[/variant] mask; "" and "*" match everything.
func parseMask(mask string) (string, string) {
	if mask == "" || mask == "*" {
		return "*", "*"
	}
	parts := strings.Split(mask, "/")
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return mask, "*"
}

func maskMatch(mask, value string) bool {
	return mask == "*" || mask == value
}
