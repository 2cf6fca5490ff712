package ui

import (
	"github.com/loomui-dev/loom/pkg/flash"
	"github.com/loomui-dev/loom/pkg/vdom"
)

var flashSpec = ComponentSpec{
	Name: "flash",
	Attrs: []AttrSpec{
		{Name: "kind", Type: TypeString, Required: true,
			Values: []any{flash.KindInfo, flash.KindError}},
		{Name: "style_for_kind", Type: TypeString, Overridable: true,
			Default: Fn(func(a Assigns) any { return a.String("kind") })},
		{Name: "message", Type: TypeString},
		{Name: "title", Type: TypeString, Overridable: true},
		{Name: "icon_name", Type: TypeString, Overridable: true, Check: checkIconName,
			Default: Fn(func(a Assigns) any {
				if a.String("style_for_kind") == flash.KindError {
					return "hero-exclamation-circle-mini"
				}
				return "hero-information-circle-mini"
			})},
		{Name: "ttl", Type: TypeInt, Overridable: true, Default: Lit(0)},
		{Name: "close", Type: TypeBool, Overridable: true, Default: Lit(true)},
		{Name: "id", Type: TypeString,
			Default: Fn(func(a Assigns) any { return "flash-" + a.String("kind") })},
		{Name: "class", Type: TypeClass, Overridable: true,
			Default: Fn(func(a Assigns) any {
				base := "fixed top-2 right-2 mr-2 w-80 sm:w-96 z-50 rounded-lg p-3 ring-1"
				if a.String("style_for_kind") == flash.KindError {
					return []any{base, "bg-rose-50 text-rose-900 shadow-md ring-rose-500 fill-rose-900"}
				}
				return []any{base, "bg-emerald-50 text-emerald-800 ring-emerald-500 fill-cyan-900"}
			})},
	},
	Slots: []SlotSpec{
		{Name: "inner_block"},
	},
}

// Flash renders one notification. The message comes from the "message"
// attribute or the inner_block slot; when both are empty the flash renders
// nothing. A positive ttl becomes a data-ttl marker for the client-side
// auto-dismiss hook; close controls the dismiss button.
func (k *Kit) Flash(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(flashSpec, assigns)
	if err != nil {
		return nil, err
	}

	message := a.String("message")
	body, hasBody := a.Slot("inner_block")
	if message == "" && !hasBody {
		return vdom.Nothing(), nil
	}

	var content *vdom.VNode
	if hasBody {
		content = body.Render()
	} else {
		content = vdom.Text(message)
	}

	title := a.String("title")
	ttl := a.Int("ttl")

	return vdom.Div(
		vdom.ID(a.String("id")),
		vdom.Role("alert"),
		vdom.Class(a.String("class")),
		vdom.Data("kind", a.String("kind")),
		vdom.AttrIf(ttl > 0, vdom.Data("ttl", ttl)),
		vdom.Attrs(a.Rest()),
		vdom.If(title != "",
			vdom.P(
				vdom.Class("flex items-center gap-1.5 text-sm font-semibold leading-6"),
				k.icon(a.String("icon_name"), "h-4 w-4"),
				vdom.Text(title),
			),
		),
		vdom.P(vdom.Class("mt-2 text-sm leading-5"), content),
		vdom.If(a.Bool("close"),
			vdom.Button(
				vdom.Type("button"),
				vdom.Class("group absolute top-1 right-1 p-2"),
				vdom.AriaLabel("close"),
				vdom.Data("dismiss", a.String("id")),
				k.icon("hero-x-mark-solid", "h-5 w-5 opacity-40 group-hover:opacity-70"),
			),
		),
	), nil
}

var flashGroupSpec = ComponentSpec{
	Name: "flash_group",
	Attrs: []AttrSpec{
		{Name: "flashes", Type: TypeList, Required: true},
		{Name: "include_kinds", Type: TypeList, Overridable: true,
			Default: Lit([]string{flash.KindInfo, flash.KindError})},
		{Name: "id", Type: TypeString, Default: Lit("flash-group")},
	},
}

// FlashGroup decodes the host framework's flash map and renders one Flash
// per configured kind. The raw values go through the envelope codec, so a
// value carrying JSON metadata becomes title/icon/ttl/close attributes and
// a plain string stays a plain message. Kinds outside include_kinds are
// dropped; when nothing survives, no container is emitted at all.
func (k *Kit) FlashGroup(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(flashGroupSpec, assigns)
	if err != nil {
		return nil, err
	}

	flashes, ok := a["flashes"].(map[string]string)
	if !ok {
		return nil, &ValueError{Component: flashGroupSpec.Name, Attr: "flashes",
			Value: a["flashes"], Reason: "expected map[string]string of kind to raw value"}
	}

	children := make([]*vdom.VNode, 0, len(flashes))
	for _, kind := range a.Strings("include_kinds") {
		raw, ok := flashes[kind]
		if !ok {
			continue
		}
		env := flash.Decode(raw)
		node, err := k.Flash(flashAssigns(kind, env))
		if err != nil {
			return nil, err
		}
		if node != nil {
			children = append(children, node)
		}
	}

	if len(children) == 0 {
		return vdom.Nothing(), nil
	}

	return vdom.Div(
		vdom.ID(a.String("id")),
		vdom.AriaLive("polite"),
		children,
	), nil
}

// flashAssigns projects a decoded envelope onto Flash attributes, leaving
// unset metadata to the flash component's own defaults and overrides.
func flashAssigns(kind string, env flash.Envelope) Assigns {
	a := Assigns{
		"kind":    kind,
		"message": env.Message,
	}
	if env.Title != "" {
		a["title"] = env.Title
	}
	if env.IconName != "" {
		a["icon_name"] = env.IconName
	}
	if env.TTL != 0 {
		a["ttl"] = env.TTL
	}
	if env.Close != nil {
		a["close"] = *env.Close
	}
	if env.StyleForKind != "" {
		a["style_for_kind"] = env.StyleForKind
	}
	return a
}
