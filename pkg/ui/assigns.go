package ui

import "github.com/loomui-dev/loom/pkg/vdom"

// Reserved assigns keys.
const (
	// OverridesKey carries a call-scoped AttrOverrides map. It takes
	// precedence over the Kit's global table but below explicit values.
	OverridesKey = "overrides"

	// RestKey carries a passthrough bag of arbitrary HTML attributes
	// (map[string]any) emitted verbatim on the component's root element.
	RestKey = "rest"
)

// Assigns is the per-call attribute map handed to a component: attribute
// name to value, slot name to []Slot, plus the reserved "overrides" and
// "rest" keys. It is built fresh per invocation and never mutated after
// resolution.
type Assigns map[string]any

// Has reports whether key was supplied (even as nil).
func (a Assigns) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the attribute as a string, or "" when unset.
func (a Assigns) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Bool returns the attribute as a bool, or false when unset.
func (a Assigns) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// Int returns the attribute as an int, accepting the integer widths JSON
// and YAML decoding produce.
func (a Assigns) Int(key string) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Strings returns the attribute as a string slice, accepting []string or
// []any of strings.
func (a Assigns) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Slots returns the named slot list, or nil when absent.
func (a Assigns) Slots(name string) []Slot {
	s, _ := a[name].([]Slot)
	return s
}

// Slot returns the first entry of the named slot list.
func (a Assigns) Slot(name string) (Slot, bool) {
	s := a.Slots(name)
	if len(s) == 0 {
		return Slot{}, false
	}
	return s[0], true
}

// Rest returns the passthrough attribute bag, or nil.
func (a Assigns) Rest() map[string]any {
	m, _ := a[RestKey].(map[string]any)
	return m
}

// clone copies the assigns map one level deep.
func (a Assigns) clone() Assigns {
	out := make(Assigns, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Slot is a named block of caller-supplied child content. Attrs carries
// slot-level attributes (a table column's "label", for example). Body is
// the render function: func() *vdom.VNode for plain slots, or
// func(any) *vdom.VNode for row-scoped slots that receive the current item.
type Slot struct {
	Attrs map[string]any
	Body  any
}

// String returns a slot attribute as a string, or "" when unset.
func (s Slot) String(key string) string {
	v, _ := s.Attrs[key].(string)
	return v
}

// Render invokes a plain slot body. A row-scoped body is invoked with nil.
func (s Slot) Render() *vdom.VNode {
	return s.RenderWith(nil)
}

// RenderWith invokes the slot body, passing arg to row-scoped bodies.
func (s Slot) RenderWith(arg any) *vdom.VNode {
	switch fn := s.Body.(type) {
	case func() *vdom.VNode:
		return fn()
	case func(any) *vdom.VNode:
		return fn(arg)
	default:
		return nil
	}
}

// Block builds a plain slot from a render function.
func Block(fn func() *vdom.VNode) Slot {
	return Slot{Body: fn}
}

// BlockWith builds a row-scoped slot whose body receives the current item.
func BlockWith(fn func(item any) *vdom.VNode) Slot {
	return Slot{Body: fn}
}

// TextSlot builds a slot rendering plain text.
func TextSlot(text string) Slot {
	return Slot{Body: func() *vdom.VNode { return vdom.Text(text) }}
}

// renderSlots renders each slot in order, dropping nil results.
func renderSlots(slots []Slot) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(slots))
	for _, s := range slots {
		if node := s.Render(); node != nil {
			out = append(out, node)
		}
	}
	return out
}
