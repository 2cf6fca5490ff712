package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var simpleFormSpec = ComponentSpec{
	Name: "simple_form",
	Attrs: []AttrSpec{
		{Name: "for", Type: TypeString},
		{Name: "action", Type: TypeString},
		{Name: "method", Type: TypeString, Default: Lit("post"),
			Values: []any{"get", "post"}},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Lit("mt-10 space-y-8 bg-white")},
	},
	Slots: []SlotSpec{
		{Name: "inner_block", Required: true},
		{Name: "actions"},
	},
}

// SimpleForm renders a form wrapper around field content, with an actions
// row for submit buttons. The "for" attribute names the form for the host
// framework's change tracking.
func (k *Kit) SimpleForm(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(simpleFormSpec, assigns)
	if err != nil {
		return nil, err
	}

	actions := a.Slots("actions")

	return vdom.Form(
		vdom.AttrIf(a.String("for") != "", vdom.Name(a.String("for"))),
		vdom.AttrIf(a.String("action") != "", vdom.Action(a.String("action"))),
		vdom.Method(a.String("method")),
		vdom.Attrs(a.Rest()),
		vdom.Div(
			vdom.Class(a.String("class")),
			renderSlots(a.Slots("inner_block")),
			vdom.If(len(actions) > 0,
				vdom.Div(
					vdom.Class("mt-2 flex items-center justify-between gap-6"),
					renderSlots(actions),
				),
			),
		),
	), nil
}
