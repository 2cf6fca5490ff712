package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var labelSpec = ComponentSpec{
	Name: "label",
	Attrs: []AttrSpec{
		{Name: "for", Type: TypeString},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Lit("block text-sm font-semibold leading-6 text-zinc-800")},
	},
	Slots: []SlotSpec{
		{Name: "inner_block", Required: true},
	},
}

// Label renders a form label.
func (k *Kit) Label(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(labelSpec, assigns)
	if err != nil {
		return nil, err
	}

	return vdom.Label(
		vdom.AttrIf(a.String("for") != "", vdom.For(a.String("for"))),
		vdom.Class(a.String("class")),
		vdom.Attrs(a.Rest()),
		renderSlots(a.Slots("inner_block")),
	), nil
}
