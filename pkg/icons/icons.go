package icons

import (
	"sort"
	"strings"
)

// Prefix is the class prefix shared by all bundled icon names.
const Prefix = "hero-"

// Variant is the icon style discriminator.
type Variant string

const (
	VariantOutline Variant = "outline"
	VariantSolid   Variant = "solid"
	VariantMini    Variant = "mini"
)

// Parse splits a full icon identifier (e.g. "hero-x-mark-solid") into its
// base name and style variant. ok is false when the identifier does not
// carry the "hero-" prefix or its base name is not in the bundled set.
func Parse(name string) (base string, variant Variant, ok bool) {
	rest, found := strings.CutPrefix(name, Prefix)
	if !found || rest == "" {
		return "", "", false
	}

	variant = VariantOutline
	if s, found := strings.CutSuffix(rest, "-solid"); found && inSet(s) {
		return s, VariantSolid, true
	}
	if s, found := strings.CutSuffix(rest, "-mini"); found && inSet(s) {
		return s, VariantMini, true
	}
	if !inSet(rest) {
		return "", "", false
	}
	return rest, variant, true
}

// Valid reports whether name identifies a bundled icon in any variant.
func Valid(name string) bool {
	_, _, ok := Parse(name)
	return ok
}

// Names returns the sorted base names of all bundled icons, without the
// "hero-" prefix or variant suffixes.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func inSet(base string) bool {
	_, ok := names[base]
	return ok
}
