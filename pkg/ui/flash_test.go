package ui_test

import (
	"errors"
	"testing"

	"github.com/loomui-dev/loom/pkg/flash"
	"github.com/loomui-dev/loom/pkg/ui"
	"github.com/loomui-dev/loom/pkg/uitest"
)

func TestFlashInfo(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Flash(ui.Assigns{"kind": "info", "message": "Saved!"})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}

	uitest.ExpectAttribute(t, node, "id", "flash-info")
	uitest.ExpectAttribute(t, node, "role", "alert")
	uitest.ExpectAttribute(t, node, "data-kind", "info")
	uitest.ExpectContains(t, node, "Saved!")
	uitest.ExpectContains(t, node, "bg-emerald-50")
	// The default dismiss button.
	uitest.ExpectContains(t, node, "data-dismiss=\"flash-info\"")
}

func TestFlashErrorStyling(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Flash(ui.Assigns{"kind": "error", "message": "Something went wrong"})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}

	uitest.ExpectAttribute(t, node, "id", "flash-error")
	uitest.ExpectContains(t, node, "bg-rose-50")
}

func TestFlashEmptyRendersNothing(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Flash(ui.Assigns{"kind": "info"})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}
	if node != nil {
		t.Errorf("expected no output for empty flash, got %+v", node)
	}
}

func TestFlashTitleAndIcon(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Flash(ui.Assigns{"kind": "info", "message": "Done", "title": "Success"})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}
	uitest.ExpectContains(t, node, "Success")
	uitest.ExpectContains(t, node, "hero-information-circle-mini")
}

func TestFlashTTLMarker(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Flash(ui.Assigns{"kind": "info", "message": "Done", "ttl": 5000})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}
	uitest.ExpectAttribute(t, node, "data-ttl", "5000")

	node, err = k.Flash(ui.Assigns{"kind": "info", "message": "Done"})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}
	uitest.ExpectNotContains(t, node, "data-ttl")
}

func TestFlashCloseFalse(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Flash(ui.Assigns{"kind": "info", "message": "Done", "close": false})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}
	uitest.ExpectNotContains(t, node, "data-dismiss")
}

func TestFlashInvalidKind(t *testing.T) {
	k := ui.NewKit()

	_, err := k.Flash(ui.Assigns{"kind": "debug", "message": "hm"})
	var valErr *ui.ValueError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValueError, got %v", err)
	}
}

func TestFlashStyleForKindOverride(t *testing.T) {
	// An error-styled flash under the info kind keeps the info id and
	// data-kind but picks up the error presentation.
	k := ui.NewKit()

	node, err := k.Flash(ui.Assigns{"kind": "info", "message": "Careful", "style_for_kind": "error"})
	if err != nil {
		t.Fatalf("Flash failed: %v", err)
	}
	uitest.ExpectAttribute(t, node, "id", "flash-info")
	uitest.ExpectAttribute(t, node, "data-kind", "info")
	uitest.ExpectContains(t, node, "bg-rose-50")
	uitest.ExpectContains(t, node, "hero-exclamation-circle-mini")
}

func TestFlashGroup(t *testing.T) {
	k := ui.NewKit()

	node, err := k.FlashGroup(ui.Assigns{"flashes": map[string]string{
		"info":  "All good",
		"error": "Not good",
	}})
	if err != nil {
		t.Fatalf("FlashGroup failed: %v", err)
	}

	uitest.ExpectAttribute(t, node, "id", "flash-group")
	uitest.ExpectAttribute(t, node, "aria-live", "polite")
	uitest.ExpectContains(t, node, "All good")
	uitest.ExpectContains(t, node, "Not good")
}

func TestFlashGroupFiltersKinds(t *testing.T) {
	k := ui.NewKit()

	node, err := k.FlashGroup(ui.Assigns{
		"flashes":       map[string]string{"info": "Shown", "warning": "Dropped"},
		"include_kinds": []string{"info"},
	})
	if err != nil {
		t.Fatalf("FlashGroup failed: %v", err)
	}
	uitest.ExpectContains(t, node, "Shown")
	uitest.ExpectNotContains(t, node, "Dropped")
}

func TestFlashGroupEmptyRendersNothing(t *testing.T) {
	k := ui.NewKit()

	node, err := k.FlashGroup(ui.Assigns{"flashes": map[string]string{}})
	if err != nil {
		t.Fatalf("FlashGroup failed: %v", err)
	}
	if node != nil {
		t.Errorf("expected no container for empty flashes, got %+v", node)
	}
}

func TestFlashGroupDecodesEnvelopes(t *testing.T) {
	k := ui.NewKit()

	raw := flash.Encode(flash.Envelope{
		Message: "Deploy finished",
		Title:   "Build",
		TTL:     3000,
		Close:   flash.Bool(false),
	})
	node, err := k.FlashGroup(ui.Assigns{"flashes": map[string]string{"info": raw}})
	if err != nil {
		t.Fatalf("FlashGroup failed: %v", err)
	}

	uitest.ExpectContains(t, node, "Deploy finished")
	uitest.ExpectContains(t, node, "Build")
	uitest.ExpectContains(t, node, "data-ttl=\"3000\"")
	uitest.ExpectNotContains(t, node, "data-dismiss")
	// The raw JSON must never leak into the page.
	uitest.ExpectNotContains(t, node, "ttl&quot;")
}

func TestFlashGroupPlainStringValue(t *testing.T) {
	k := ui.NewKit()

	node, err := k.FlashGroup(ui.Assigns{"flashes": map[string]string{"error": "Plain failure"}})
	if err != nil {
		t.Fatalf("FlashGroup failed: %v", err)
	}
	uitest.ExpectContains(t, node, "Plain failure")
}

func TestFlashGroupBadFlashesType(t *testing.T) {
	k := ui.NewKit()

	_, err := k.FlashGroup(ui.Assigns{"flashes": []string{"nope"}})
	var valErr *ui.ValueError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValueError, got %v", err)
	}
}

func TestFlashGroupSkipsEmptyMessages(t *testing.T) {
	k := ui.NewKit()

	node, err := k.FlashGroup(ui.Assigns{"flashes": map[string]string{"info": ""}})
	if err != nil {
		t.Fatalf("FlashGroup failed: %v", err)
	}
	if node != nil {
		t.Errorf("expected empty-message flashes dropped, got %+v", node)
	}
}
