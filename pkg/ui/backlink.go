package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var backLinkSpec = ComponentSpec{
	Name: "back_link",
	Attrs: []AttrSpec{
		{Name: "navigate", Type: TypeString, Required: true},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Lit("text-sm font-semibold leading-6 text-zinc-900 hover:text-zinc-700")},
	},
	Slots: []SlotSpec{
		{Name: "inner_block", Required: true},
	},
}

// BackLink renders a "back to X" navigation link with a leading arrow.
func (k *Kit) BackLink(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(backLinkSpec, assigns)
	if err != nil {
		return nil, err
	}

	return vdom.Div(
		vdom.Class("mt-16"),
		vdom.A(
			vdom.Href(a.String("navigate")),
			vdom.Data("link", "navigate"),
			vdom.Class(a.String("class")),
			vdom.Attrs(a.Rest()),
			k.icon("hero-arrow-left-solid", "h-3 w-3"),
			renderSlots(a.Slots("inner_block")),
		),
	), nil
}
