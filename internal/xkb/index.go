package xkb

import "sort"

// Definition is the payload registered for one layout variant: the
// description shown by layout pickers and the xkb_symbols body stored in the
// symbols file. The body is expected to be ready to install; lines starting
// with the "//#" ignore sentinel are stripped on write.
type Definition struct {
	Description string
	Symbols     string
}

// Index collects the pending changes of one registration session: per
// locale, per variant name, either a Definition to install or nil to remove.
// An Index is built by the caller, passed to Manager.Update exactly once,
// and must not be reused afterwards.
type Index map[string]map[string]*Definition

// Add records that def must be installed as locale/variant, overwriting any
// earlier Add or Remove for the same pair.
func (x Index) Add(locale, variant string, def *Definition) {
	x.variants(locale)[variant] = def
}

// Remove records that locale/variant must be unregistered, overwriting any
// earlier Add for the same pair.
func (x Index) Remove(locale, variant string) {
	x.variants(locale)[variant] = nil
}

func (x Index) variants(locale string) map[string]*Definition {
	if x[locale] == nil {
		x[locale] = make(map[string]*Definition)
	}
	return x[locale]
}

// Locales returns the locales of the index in sorted order.
func (x Index) Locales() []string {
	locales := make([]string, 0, len(x))
	for locale := range x {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Variants returns the variant names of one locale in sorted order.
func (x Index) Variants(locale string) []string {
	return sortedNames(x[locale])
}

// Has reports whether locale/variant is present in the index.
func (x Index) Has(locale, variant string) bool {
	_, ok := x[locale][variant]
	return ok
}

// clear empties the index, enforcing the single-use contract after a commit.
func (x Index) clear() {
	for locale := range x {
		delete(x, locale)
	}
}

// sortedNames returns the variant names of one locale's change set in
// sorted order, for deterministic file output and progress reporting.
func sortedNames(variants map[string]*Definition) []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
