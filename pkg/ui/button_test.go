package ui_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/loomui-dev/loom/pkg/ui"
	"github.com/loomui-dev/loom/pkg/uitest"
	"github.com/loomui-dev/loom/pkg/vdom"
)

func saveBlock() []ui.Slot {
	return []ui.Slot{ui.TextSlot("Save")}
}

func TestButtonDefault(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Button(ui.Assigns{"inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}

	if node.Tag != "button" {
		t.Errorf("expected <button>, got <%s>", node.Tag)
	}
	uitest.ExpectAttribute(t, node, "type", "button")
	uitest.ExpectContains(t, node, "Save")
	uitest.ExpectContains(t, node, "bg-zinc-900")

	html := uitest.RenderToString(t, node)
	if strings.Contains(html, "disabled") {
		t.Errorf("expected no disabled attribute, got %s", html)
	}
}

func TestButtonSubmit(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Button(ui.Assigns{"type": "submit", "inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	uitest.ExpectAttribute(t, node, "type", "submit")
}

func TestButtonDisabled(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Button(ui.Assigns{"disabled": true, "inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	uitest.ExpectContains(t, node, " disabled")
}

func TestButtonHrefRendersAnchor(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Button(ui.Assigns{"href": "/posts", "inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}

	if node.Tag != "a" {
		t.Errorf("expected <a>, got <%s>", node.Tag)
	}
	uitest.ExpectAttribute(t, node, "href", "/posts")
	uitest.ExpectNotContains(t, node, "data-link")
	// The anchor keeps the button styling.
	uitest.ExpectContains(t, node, "bg-zinc-900")
}

func TestButtonHrefNotReconfigurable(t *testing.T) {
	// Navigation targets are call-site only; a table entry for href must
	// not turn every button into an anchor.
	k := ui.NewKit(ui.WithOverride("button", "href", ui.Lit("/injected")))

	node, err := k.Button(ui.Assigns{"inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	if node.Tag != "button" {
		t.Errorf("expected <button>, got <%s>", node.Tag)
	}
	uitest.ExpectNotContains(t, node, "/injected")
}

func TestButtonPatchAndNavigateMarkers(t *testing.T) {
	k := ui.NewKit()

	patch, err := k.Button(ui.Assigns{"patch": "/posts?page=2", "inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	uitest.ExpectAttribute(t, patch, "data-link", "patch")

	nav, err := k.Button(ui.Assigns{"navigate": "/posts/1", "inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	uitest.ExpectAttribute(t, nav, "data-link", "navigate")
	uitest.ExpectAttribute(t, nav, "href", "/posts/1")
}

func TestButtonHrefWinsOverPatch(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Button(ui.Assigns{
		"href":        "/external",
		"patch":       "/internal",
		"navigate":    "/other",
		"inner_block": saveBlock(),
	})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	uitest.ExpectAttribute(t, node, "href", "/external")
	uitest.ExpectNotContains(t, node, "data-link")
}

func TestButtonInvalidType(t *testing.T) {
	k := ui.NewKit()

	_, err := k.Button(ui.Assigns{"type": "launch", "inner_block": saveBlock()})
	var valErr *ui.ValueError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValueError, got %v", err)
	}
}

func TestButtonMissingInnerBlock(t *testing.T) {
	k := ui.NewKit()

	_, err := k.Button(ui.Assigns{})
	var cfgErr *ui.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestButtonClassOverrideMerges(t *testing.T) {
	k := ui.NewKit(ui.WithOverride("button", "class", ui.Lit("rounded-full bg-indigo-600")))

	node, err := k.Button(ui.Assigns{"inner_block": saveBlock()})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}

	uitest.ExpectContains(t, node, "rounded-full")
	uitest.ExpectContains(t, node, "bg-indigo-600")
	uitest.ExpectNotContains(t, node, "rounded-lg")
	uitest.ExpectNotContains(t, node, "bg-zinc-900")
	// Unrelated default classes survive the override.
	uitest.ExpectContains(t, node, "font-semibold")
}

func TestButtonRestAttributes(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Button(ui.Assigns{
		"inner_block": saveBlock(),
		ui.RestKey:    map[string]any{"form": "post-form", "data-confirm": "Sure?"},
	})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	uitest.ExpectAttribute(t, node, "form", "post-form")
	uitest.ExpectAttribute(t, node, "data-confirm", "Sure?")
}

func TestButtonSlotChildren(t *testing.T) {
	k := ui.NewKit()

	node, err := k.Button(ui.Assigns{
		"inner_block": []ui.Slot{ui.Block(func() *vdom.VNode {
			return vdom.Span(vdom.Class("truncate"), vdom.Text("Long title"))
		})},
	})
	if err != nil {
		t.Fatalf("Button failed: %v", err)
	}
	uitest.ExpectContains(t, node, `<span class="truncate">Long title</span>`)
}
