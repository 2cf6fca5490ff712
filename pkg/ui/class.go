package ui

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// MergeClasses combines an ordered sequence of class fragments into one
// class string with Tailwind conflict resolution: within a conflict
// category (padding, text color, ...) the later fragment wins; unrelated
// classes are all retained; unrecognized classes pass through unmerged.
//
// Fragments may be strings, string slices, nested []any, nil, or false -
// nil and false mean "omit", which keeps conditional class lists cheap:
//
//	ui.MergeClasses("p-2 text-sm", ui.ClassIf(invalid, "border-rose-400"), "p-4")
//	// "text-sm border-rose-400 p-4" (when invalid)
func MergeClasses(fragments ...any) string {
	flat := flattenClass(fragments, nil)
	if len(flat) == 0 {
		return ""
	}
	return twmerge.Merge(flat...)
}

// ClassIf returns class when cond is true and nil otherwise, for
// conditional fragments in MergeClasses lists.
func ClassIf(cond bool, class string) any {
	if cond {
		return class
	}
	return nil
}

// flattenClass appends the class strings contained in v to into, in order,
// omitting empty strings, nils, and booleans.
func flattenClass(v any, into []string) []string {
	switch x := v.(type) {
	case nil:
	case bool:
		// false means "omit"; a bare true carries no class either
	case string:
		if x != "" {
			into = append(into, x)
		}
	case []string:
		for _, s := range x {
			if s != "" {
				into = append(into, s)
			}
		}
	case []any:
		for _, e := range x {
			into = flattenClass(e, into)
		}
	}
	return into
}
