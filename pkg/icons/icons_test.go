package icons_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/loomui-dev/loom/pkg/icons"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		variant icons.Variant
		ok      bool
	}{
		{"hero-x-mark", "x-mark", icons.VariantOutline, true},
		{"hero-x-mark-solid", "x-mark", icons.VariantSolid, true},
		{"hero-x-mark-mini", "x-mark", icons.VariantMini, true},
		{"hero-arrow-left-solid", "arrow-left", icons.VariantSolid, true},
		{"hero-exclamation-circle-mini", "exclamation-circle", icons.VariantMini, true},
		{"x-mark", "", "", false},
		{"hero-", "", "", false},
		{"hero-not-a-real-icon", "", "", false},
		{"fa-user", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		base, variant, ok := icons.Parse(tt.name)
		if ok != tt.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if base != tt.base || variant != tt.variant {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tt.name, base, variant, tt.base, tt.variant)
		}
	}
}

func TestValid(t *testing.T) {
	if !icons.Valid("hero-check-circle") {
		t.Error("expected hero-check-circle to be valid")
	}
	if icons.Valid("hero-bogus-glyph") {
		t.Error("expected hero-bogus-glyph to be invalid")
	}
}

func TestNamesSortedWithoutPrefix(t *testing.T) {
	names := icons.Names()
	if len(names) == 0 {
		t.Fatal("expected bundled icon names")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("expected names to be sorted")
	}
	for _, n := range names {
		if strings.HasPrefix(n, icons.Prefix) {
			t.Errorf("expected bare base name, got %q", n)
		}
	}
}
