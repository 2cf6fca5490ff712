package ui

import (
	"fmt"

	"github.com/loomui-dev/loom/pkg/icons"
	"github.com/loomui-dev/loom/pkg/vdom"
)

var iconSpec = ComponentSpec{
	Name: "icon",
	Attrs: []AttrSpec{
		{Name: "name", Type: TypeString, Required: true, Check: checkIconName},
		{Name: "class", Type: TypeClass, Overridable: true, Default: Lit("h-5 w-5")},
	},
}

// Icon renders a heroicon as a span carrying the icon's class; the CSS
// pipeline turns the class into the actual glyph. The name must identify a
// bundled icon ("hero-x-mark", "hero-x-mark-solid", "hero-x-mark-mini").
func (k *Kit) Icon(assigns Assigns) (*vdom.VNode, error) {
	a, err := k.resolve(iconSpec, assigns)
	if err != nil {
		return nil, err
	}

	return vdom.Span(
		vdom.Class(a.String("name"), a.String("class")),
		vdom.AriaHidden(true),
		vdom.Attrs(a.Rest()),
	), nil
}

func checkIconName(v any) error {
	name, ok := v.(string)
	if !ok {
		return fmt.Errorf("icon name must be a string, got %T", v)
	}
	if !icons.Valid(name) {
		return fmt.Errorf("%q is not a bundled icon name", name)
	}
	return nil
}

// icon is the internal shortcut other components use for their own glyphs.
// Names used here are always in the bundled set, so resolution cannot fail.
func (k *Kit) icon(name, class string) *vdom.VNode {
	node, err := k.Icon(Assigns{"name": name, "class": class})
	if err != nil {
		return nil
	}
	return node
}
