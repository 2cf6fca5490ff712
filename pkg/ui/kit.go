package ui

// Overrides is the process-wide override table: component name to attribute
// name to override value. It is assembled once at Kit construction and
// read-only afterwards; concurrent renders share it without locking.
type Overrides map[string]map[string]Value

// lookup returns the override for (component, attr), if any.
func (o Overrides) lookup(component, attr string) (Value, bool) {
	attrs, ok := o[component]
	if !ok {
		return nil, false
	}
	v, ok := attrs[attr]
	return v, ok
}

// merge copies src entries into o, later tables winning per attribute.
func (o Overrides) merge(src Overrides) {
	for component, attrs := range src {
		dst, ok := o[component]
		if !ok {
			dst = make(map[string]Value, len(attrs))
			o[component] = dst
		}
		for attr, v := range attrs {
			dst[attr] = v
		}
	}
}

// AttrOverrides is a call-scoped override list for a single component
// invocation, supplied under the reserved "overrides" assigns key. It takes
// precedence over the Kit's global table but below explicit call-site
// values.
type AttrOverrides map[string]Value

// Translator converts a raw field error message into a display string.
// The localization machinery behind it is the host application's concern.
type Translator func(msg string) string

// Kit is the component entry point. It holds the override table and is
// safe for concurrent use once constructed.
type Kit struct {
	overrides Overrides
	translate Translator
}

// KitOption configures a Kit.
type KitOption func(*Kit)

// WithOverride sets a single override for (component, attr).
//
//	ui.NewKit(ui.WithOverride("button", "class", ui.Lit("rounded-full")))
func WithOverride(component, attr string, v Value) KitOption {
	return func(k *Kit) {
		k.overrides.merge(Overrides{component: {attr: v}})
	}
}

// WithOverrides merges a whole override table, e.g. one produced by
// LoadOverridesFile. Later options win per attribute.
func WithOverrides(o Overrides) KitOption {
	return func(k *Kit) {
		k.overrides.merge(o)
	}
}

// WithTranslator sets the field error translator. The default is identity.
func WithTranslator(fn Translator) KitOption {
	return func(k *Kit) {
		if fn != nil {
			k.translate = fn
		}
	}
}

// NewKit builds a component kit. The resulting override table is immutable;
// build a new Kit to reconfigure.
func NewKit(opts ...KitOption) *Kit {
	k := &Kit{
		overrides: make(Overrides),
		translate: func(msg string) string { return msg },
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}
