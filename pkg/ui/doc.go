// Package ui provides Loom's core components: buttons, inputs, flash
// messages, modals, tables, forms, headers, lists, and icons.
//
// Every component is a pure function from an attribute map ("assigns") to
// a vdom tree. What makes the components interesting is the overridable
// attribute system: each component declares its attributes in a
// ComponentSpec, and attributes marked overridable can be reconfigured
// globally - as literal values or as functions computed from the full
// assign set - without touching call sites.
//
// # The Kit
//
// Components hang off a Kit, which holds the override table. The Kit is
// built once at application start and read-only afterwards:
//
//	kit := ui.NewKit(
//	    ui.WithOverride("button", "class", ui.Lit("rounded-full px-6")),
//	    ui.WithOverride("flash", "ttl", ui.Lit(8000)),
//	)
//
//	node, err := kit.Button(ui.Assigns{
//	    "inner_block": []ui.Slot{ui.TextSlot("Save")},
//	})
//
// # Resolution order
//
// For each declared attribute the effective value is resolved as:
// component static default, then global override table, then a call-scoped
// "overrides" entry, then the explicit call-site value - later sources win.
// Function-valued overrides receive the assigns accumulated so far.
// Class-typed attributes are special: instead of one source winning
// wholesale, fragments from every source are collected in order and merged
// conflict-aware through the Tailwind merge library, so an override of
// "p-6" replaces a default "p-4" but leaves unrelated utility classes
// intact.
//
// # Failure model
//
// A required attribute that no source supplies is a *ConfigError; a value
// outside an attribute's enumerated legal set is a *ValueError. Both are
// programmer errors surfaced at render time, intended to fail loudly in
// development rather than degrade in production.
package ui
