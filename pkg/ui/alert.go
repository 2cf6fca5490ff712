package ui

import "github.com/loomui-dev/loom/pkg/vdom"

var alertSpec = ComponentSpec{
	Name: "alert",
	Attrs: []AttrSpec{
		{Name: "kind", Type: TypeString, Overridable: true, Default: Lit("info"),
			Values: []any{"info", "success", "warning", "error"}},
		{Name: "title", Type: TypeString},
		{Name: "icon_name", Type: TypeString, Overridable: true, Check: checkIconName,
			Default: Fn(func(a Assigns) any { return alertIcons[a.String("kind")] })},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Fn(func(a Assigns) any {
				return []any{"rounded-lg p-4 text-sm ring-1", alertStyles[a.String("kind")]}
			})},
	},
	Slots: []SlotSpec{
		{Name: "inner_block", Required: true},
	},
}

var alertStyles = map[string]string{
	"info":    "bg-sky-50 text-sky-800 ring-sky-200",
	"success": "bg-emerald-50 text-emerald-800 ring-emerald-200",
	"warning": "bg-amber-50 text-amber-800 ring-amber-200",
	"error":   "bg-rose-50 text-rose-800 ring-rose-200",
}

var alertIcons = map[string]string{
	"info":    "hero-information-circle-mini",
	"success": "hero-check-circle-mini",
	"warning": "hero-exclamation-triangle-mini",
	"error":   "hero-exclamation-circle-mini",
}

// Alert renders an inline callout. Unlike Flash, alerts are part of the
// page content, not host-tracked notifications.
func (k *Kit) Alert(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(alertSpec, assigns)
	if err != nil {
		return nil, err
	}

	title := a.String("title")

	return vdom.Div(
		vdom.Role("alert"),
		vdom.Class(a.String("class")),
		vdom.Attrs(a.Rest()),
		vdom.Div(
			vdom.Class("flex gap-3"),
			k.icon(a.String("icon_name"), "h-5 w-5 flex-none"),
			vdom.Div(
				vdom.If(title != "",
					vdom.P(vdom.Class("font-semibold leading-6"), vdom.Text(title)),
				),
				vdom.Div(
					vdom.Class("leading-6"),
					renderSlots(a.Slots("inner_block")),
				),
			),
		),
	), nil
}
