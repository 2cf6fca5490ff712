package ui

import (
	"fmt"
	"strings"
)

// ConfigError reports a required attribute or slot that resolved from no
// source: not supplied at the call site, not in any override table, and
// without a declared default. It names the component and attribute so the
// failure is actionable during development.
type ConfigError struct {
	Component string
	Attr      string
	Slot      bool
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	kind := "attribute"
	if e.Slot {
		kind = "slot"
	}
	return fmt.Sprintf("ui: component %q: required %s %q was not supplied and has no override or default", e.Component, kind, e.Attr)
}

// ValueError reports a resolved attribute value outside its declared legal
// set, or one rejected by the attribute's Check hook.
type ValueError struct {
	Component string
	Attr      string
	Value     any
	Allowed   []any
	Reason    string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("ui: component %q: attribute %q: invalid value %v: %s", e.Component, e.Attr, e.Value, e.Reason)
	}
	allowed := make([]string, len(e.Allowed))
	for i, v := range e.Allowed {
		allowed[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("ui: component %q: attribute %q: value %v not in [%s]", e.Component, e.Attr, e.Value, strings.Join(allowed, ", "))
}
