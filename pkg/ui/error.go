package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var fieldErrorSpec = ComponentSpec{
	Name: "error",
	Attrs: []AttrSpec{
		{Name: "message", Type: TypeString, Required: true},
		{Name: "icon_name", Type: TypeString, Overridable: true,
			Default: Lit("hero-exclamation-circle-mini"), Check: checkIconName},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Lit("mt-3 flex gap-3 text-sm leading-6 text-rose-600")},
	},
}

// FieldError renders one validation message for a form field. The message
// passes through the Kit's translator before display.
func (k *Kit) FieldError(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(fieldErrorSpec, assigns)
	if err != nil {
		return nil, err
	}

	return vdom.P(
		vdom.Class(a.String("class")),
		k.icon(a.String("icon_name"), "mt-0.5 h-5 w-5 flex-none"),
		vdom.Text(k.translate(a.String("message"))),
	), nil
}

// fieldErrors renders a FieldError per message, for input components.
func (k *Kit) fieldErrors(messages []string) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(messages))
	for _, msg := range messages {
		node, err := k.FieldError(Assigns{"message": msg})
		if err != nil {
			continue
		}
		out = append(out, node)
	}
	return out
}
