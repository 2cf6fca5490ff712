package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var listSpec = ComponentSpec{
	Name: "list",
	Attrs: []AttrSpec{
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Lit("-my-4 divide-y divide-zinc-100")},
	},
	Slots: []SlotSpec{
		{Name: "item", Required: true},
	},
}

// DataList renders a description list of titled items. Each item slot
// carries a "title" attribute and its body becomes the description.
func (k *Kit) DataList(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(listSpec, assigns)
	if err != nil {
		return nil, err
	}

	items := a.Slots("item")
	rows := make([]*vdom.VNode, 0, len(items))
	for _, item := range items {
		rows = append(rows, vdom.Div(
			vdom.Class("flex gap-4 py-4 text-sm leading-6 sm:gap-8"),
			vdom.Dt(
				vdom.Class("w-1/4 flex-none text-zinc-500"),
				vdom.Text(item.String("title")),
			),
			vdom.Dd(
				vdom.Class("text-zinc-700"),
				item.Render(),
			),
		))
	}

	return vdom.Div(
		vdom.Class("mt-14"),
		vdom.Dl(
			vdom.Class(a.String("class")),
			vdom.Attrs(a.Rest()),
			rows,
		),
	), nil
}
