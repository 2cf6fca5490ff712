package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var headerSpec = ComponentSpec{
	Name: "header",
	Attrs: []AttrSpec{
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Fn(func(a Assigns) any {
				return ClassIf(len(a.Slots("actions")) > 0, "flex items-center justify-between gap-6")
			})},
	},
	Slots: []SlotSpec{
		{Name: "title", Required: true},
		{Name: "subtitle"},
		{Name: "actions"},
	},
}

// PageHeader renders a page heading with an optional subtitle and a
// trailing actions area.
func (k *Kit) PageHeader(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(headerSpec, assigns)
	if err != nil {
		return nil, err
	}

	subtitle := a.Slots("subtitle")
	actions := a.Slots("actions")

	return vdom.Header(
		vdom.Class(a.String("class")),
		vdom.Attrs(a.Rest()),
		vdom.Div(
			vdom.H1(
				vdom.Class("text-lg font-semibold leading-8 text-zinc-800"),
				renderSlots(a.Slots("title")),
			),
			vdom.If(len(subtitle) > 0,
				vdom.P(
					vdom.Class("mt-2 text-sm leading-6 text-zinc-600"),
					renderSlots(subtitle),
				),
			),
		),
		vdom.If(len(actions) > 0,
			vdom.Div(
				vdom.Class("flex-none"),
				renderSlots(actions),
			),
		),
	), nil
}
