package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var modalSpec = ComponentSpec{
	Name: "modal",
	Attrs: []AttrSpec{
		{Name: "id", Type: TypeString, Required: true},
		{Name: "show", Type: TypeBool, Default: Lit(false)},
		{Name: "on_cancel", Type: TypeString},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Lit("relative rounded-2xl bg-white p-14 shadow-lg ring-1 ring-zinc-700/10 transition")},
	},
	Slots: []SlotSpec{
		{Name: "inner_block", Required: true},
	},
}

// Modal renders a dialog overlay. It starts hidden unless show is set; the
// host framework's client toggles visibility and runs the on_cancel command
// carried in the data-cancel marker.
func (k *Kit) Modal(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(modalSpec, assigns)
	if err != nil {
		return nil, err
	}

	id := a.String("id")

	return vdom.Div(
		vdom.ID(id),
		vdom.AttrIf(!a.Bool("show"), vdom.Hidden()),
		vdom.AttrIf(a.String("on_cancel") != "", vdom.Data("cancel", a.String("on_cancel"))),
		vdom.Attrs(a.Rest()),
		vdom.Div(
			vdom.ID(id+"-bg"),
			vdom.Class("fixed inset-0 bg-zinc-50/90 transition-opacity"),
			vdom.AriaHidden(true),
		),
		vdom.Div(
			vdom.Class("fixed inset-0 overflow-y-auto"),
			vdom.AriaLabel(id),
			vdom.Role("dialog"),
			vdom.AriaModal(true),
			vdom.TabIndex(0),
			vdom.Div(
				vdom.Class("flex min-h-full items-center justify-center"),
				vdom.Div(
					vdom.Class("w-full max-w-3xl p-4 sm:p-6 lg:py-8"),
					vdom.Div(
						vdom.ID(id+"-container"),
						vdom.Class(a.String("class")),
						vdom.Div(
							vdom.Class("absolute top-6 right-5"),
							vdom.Button(
								vdom.Type("button"),
								vdom.Class("-m-3 flex-none p-3 opacity-20 hover:opacity-40"),
								vdom.AriaLabel("close"),
								vdom.Data("dismiss", id),
								k.icon("hero-x-mark-solid", "h-5 w-5"),
							),
						),
						vdom.Div(
							vdom.ID(id+"-content"),
							renderSlots(a.Slots("inner_block")),
						),
					),
				),
			),
		),
	), nil
}
