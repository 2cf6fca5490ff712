package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var buttonSpec = ComponentSpec{
	Name: "button",
	Attrs: []AttrSpec{
		{Name: "type", Type: TypeString, Overridable: true, Default: Lit("button"),
			Values: []any{"button", "submit", "reset"}},
		{Name: "href", Type: TypeString},
		{Name: "patch", Type: TypeString},
		{Name: "navigate", Type: TypeString},
		{Name: "disabled", Type: TypeBool, Default: Lit(false)},
		{Name: "class", Type: TypeClass, Overridable: true, Default: Lit(
			"rounded-lg bg-zinc-900 px-3 py-2 text-sm font-semibold leading-6 text-white " +
				"hover:bg-zinc-700 active:text-white/80 " +
				"disabled:pointer-events-none disabled:opacity-50")},
	},
	Slots: []SlotSpec{
		{Name: "inner_block", Required: true},
	},
}

// buttonMode discriminates how a button renders. Exactly one mode applies
// per invocation, computed once from the navigation attributes instead of
// re-checking key presence in every branch.
type buttonMode uint8

const (
	buttonPlain    buttonMode = iota // <button type=...>
	buttonAnchor                     // <a href=...>
	buttonPatch                      // <a> with a same-route patch marker
	buttonNavigate                   // <a> with a full navigation marker
)

type buttonTarget struct {
	mode buttonMode
	path string
}

// buttonTargetOf picks the render mode. When several navigation attributes
// are set, href wins over patch over navigate.
func buttonTargetOf(a Assigns) buttonTarget {
	if href := a.String("href"); href != "" {
		return buttonTarget{mode: buttonAnchor, path: href}
	}
	if patch := a.String("patch"); patch != "" {
		return buttonTarget{mode: buttonPatch, path: patch}
	}
	if nav := a.String("navigate"); nav != "" {
		return buttonTarget{mode: buttonNavigate, path: nav}
	}
	return buttonTarget{mode: buttonPlain}
}

// Button renders a styled button, or an anchor when one of href, patch, or
// navigate is set. Patch and navigate anchors carry a data-link marker for
// the host framework's client.
func (k *Kit) Button(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(buttonSpec, assigns)
	if err != nil {
		return nil, err
	}

	target := buttonTargetOf(a)
	children := renderSlots(a.Slots("inner_block"))

	switch target.mode {
	case buttonAnchor, buttonPatch, buttonNavigate:
		var link vdom.Attr
		switch target.mode {
		case buttonPatch:
			link = vdom.Data("link", "patch")
		case buttonNavigate:
			link = vdom.Data("link", "navigate")
		}
		return vdom.A(
			vdom.Href(target.path),
			link,
			vdom.Class(a.String("class")),
			vdom.Attrs(a.Rest()),
			children,
		), nil
	default:
		return vdom.Button(
			vdom.Type(a.String("type")),
			vdom.Class(a.String("class")),
			vdom.AttrIf(a.Bool("disabled"), vdom.Disabled()),
			vdom.Attrs(a.Rest()),
			children,
		), nil
	}
}
