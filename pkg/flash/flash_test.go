package flash_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/loomui-dev/loom/pkg/flash"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := flash.Envelope{
		Message: "Saved!",
		TTL:     5000,
		Close:   flash.Bool(true),
	}

	got := flash.Decode(flash.Encode(want))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeOmitsUnsetFields(t *testing.T) {
	raw := flash.Encode(flash.Envelope{Message: "hi"})

	if strings.Contains(raw, "icon_name") || strings.Contains(raw, "ttl") {
		t.Errorf("expected unset fields omitted, got %s", raw)
	}
}

func TestDecodePlainString(t *testing.T) {
	env := flash.Decode("Plain message")

	if env.Message != "Plain message" {
		t.Errorf("expected plain message, got %q", env.Message)
	}
	if env.HasMeta() {
		t.Errorf("expected no metadata, got %+v", env)
	}
}

func TestDecodeDegrades(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated json", `{"message": "oops`},
		{"json array", `["not", "an", "object"]`},
		{"json number", `42`},
		{"object without message", `{"title": "no message here"}`},
		{"null message", `{"message": null}`},
		{"non-string message", `{"message": 42}`},
		{"bad metadata type", `{"message": "hi", "ttl": "soon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := flash.Decode(tt.raw)
			if env.Message != tt.raw {
				t.Errorf("expected raw value as message, got %q", env.Message)
			}
			if env.HasMeta() {
				t.Errorf("expected no metadata, got %+v", env)
			}
		})
	}
}

func TestDecodeSkipsNullKeys(t *testing.T) {
	env := flash.Decode(`{"message": "hi", "icon_name": null, "close": null}`)

	if env.Message != "hi" {
		t.Errorf("expected message 'hi', got %q", env.Message)
	}
	if env.IconName != "" {
		t.Errorf("expected null icon_name skipped, got %q", env.IconName)
	}
	if env.Close != nil {
		t.Errorf("expected null close skipped, got %v", *env.Close)
	}
}

func TestDecodeExplicitCloseFalse(t *testing.T) {
	env := flash.Decode(`{"message": "sticky", "close": false}`)

	if env.Close == nil || *env.Close {
		t.Errorf("expected explicit close=false to survive, got %v", env.Close)
	}
}

func TestDecodeFullEnvelope(t *testing.T) {
	got := flash.Decode(`{"message": "Done", "icon_name": "hero-check-circle", "ttl": 3000, "title": "Success", "close": true, "style_for_kind": "info"}`)

	want := flash.Envelope{
		Message:      "Done",
		IconName:     "hero-check-circle",
		TTL:          3000,
		Title:        "Success",
		Close:        flash.Bool(true),
		StyleForKind: "info",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("envelope mismatch (-want +got):\n%s", diff)
	}
}
