package ui

import "reflect"

// resolve produces the final assign map for one component invocation.
//
// For each declared attribute not explicitly supplied by the caller, the
// value comes from the call-scoped override list, then the Kit's global
// table, then the component's static default - in that precedence. Only
// attributes marked Overridable consult the override sources; for the
// rest, table entries are ignored and the default applies. A computed
// value is invoked with the assigns accumulated so far, so attributes
// declared earlier in the spec are visible to later computed ones.
//
// Class-typed attributes do not pick a single winning source. Fragments
// from every applicable source are collected in declaration order (static
// default, global override, call-scoped override, call-site value) and merged
// through MergeClasses, so later sources win per class-conflict category
// rather than wholesale.
//
// resolve is pure: it reads the Kit's table and the caller's assigns and
// returns a fresh map.
func (k *Kit) resolve(spec ComponentSpec, caller Assigns) (Assigns, error) {
	callScoped, _ := caller[OverridesKey].(AttrOverrides)

	// Carry call-site values, slots, and the rest bag through; the
	// call-scoped override list itself does not survive into render assigns.
	out := make(Assigns, len(caller)+len(spec.Attrs))
	for key, v := range caller {
		if key == OverridesKey {
			continue
		}
		out[key] = v
	}

	for _, attr := range spec.Attrs {
		if attr.Type == TypeClass {
			k.resolveClass(spec.Name, attr, caller, callScoped, out)
		} else if !caller.Has(attr.Name) {
			if ov, ok := callScoped[attr.Name]; ok && attr.Overridable {
				out[attr.Name] = ov.resolve(out)
			} else if ov, ok := k.overrides.lookup(spec.Name, attr.Name); ok && attr.Overridable {
				out[attr.Name] = ov.resolve(out)
			} else if attr.Default != nil {
				out[attr.Name] = attr.Default.resolve(out)
			}
		}

		v, ok := out[attr.Name]
		if !ok || v == nil {
			delete(out, attr.Name)
			if attr.Required {
				return nil, &ConfigError{Component: spec.Name, Attr: attr.Name}
			}
			continue
		}
		if len(attr.Values) > 0 && !legalValue(attr.Values, v) {
			return nil, &ValueError{Component: spec.Name, Attr: attr.Name, Value: v, Allowed: attr.Values}
		}
		if attr.Check != nil {
			if err := attr.Check(v); err != nil {
				return nil, &ValueError{Component: spec.Name, Attr: attr.Name, Value: v, Reason: err.Error()}
			}
		}
	}

	for _, slot := range spec.Slots {
		if slot.Required && len(out.Slots(slot.Name)) == 0 {
			return nil, &ConfigError{Component: spec.Name, Attr: slot.Name, Slot: true}
		}
	}

	return out, nil
}

// resolveClass accumulates class fragments from all sources and stores the
// merged result. An attribute with no source at all stays unset so the
// required check can fire.
func (k *Kit) resolveClass(component string, attr AttrSpec, caller Assigns, callScoped AttrOverrides, out Assigns) {
	fragments := make([]any, 0, 4)
	found := false

	if attr.Default != nil {
		fragments = append(fragments, attr.Default.resolve(out))
		found = true
	}
	if attr.Overridable {
		if ov, ok := k.overrides.lookup(component, attr.Name); ok {
			fragments = append(fragments, ov.resolve(out))
			found = true
		}
		if ov, ok := callScoped[attr.Name]; ok {
			fragments = append(fragments, ov.resolve(out))
			found = true
		}
	}
	if caller.Has(attr.Name) {
		fragments = append(fragments, caller[attr.Name])
		found = true
	}

	if !found {
		delete(out, attr.Name)
		return
	}
	out[attr.Name] = MergeClasses(fragments...)
}

// legalValue reports whether v is in the enumerated set. DeepEqual keeps
// non-comparable values from panicking during the check.
func legalValue(allowed []any, v any) bool {
	for _, a := range allowed {
		if reflect.DeepEqual(a, v) {
			return true
		}
	}
	return false
}
