package ui

// AttrType is the semantic type of a declared attribute.
type AttrType uint8

const (
	TypeString AttrType = iota // string value
	TypeBool                   // boolean flag
	TypeInt                    // integer value
	TypeList                   // slice value
	TypeClass                  // CSS class value, merge-aware (see MergeClasses)
	TypeAny                    // unconstrained
	TypeFunc                   // function value (e.g. row id callbacks)
)

// String returns the string representation of the AttrType.
func (t AttrType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeList:
		return "list"
	case TypeClass:
		return "class"
	case TypeAny:
		return "any"
	case TypeFunc:
		return "func"
	default:
		return "unknown"
	}
}

// AttrSpec declares a single component attribute.
type AttrSpec struct {
	// Name is the assigns key for this attribute.
	Name string

	// Type is the attribute's semantic type. TypeClass attributes get
	// merge-aware resolution instead of highest-precedence-wins.
	Type AttrType

	// Overridable marks the attribute as reconfigurable through the
	// Kit's override table.
	Overridable bool

	// Required makes an unresolved attribute a ConfigError at render time.
	Required bool

	// Values is the enumerated legal value set; nil means unconstrained.
	Values []any

	// Default is the static or computed default, applied when no override
	// and no call-site value exists. Nil means no default.
	Default Value

	// Check is an optional validation hook run against the resolved value.
	// A non-nil return becomes a ValueError.
	Check func(v any) error
}

// SlotSpec declares a named content slot.
type SlotSpec struct {
	Name     string
	Required bool
}

// ComponentSpec is a component's full attribute and slot declaration.
// Attribute order matters: computed overrides see earlier attributes
// already resolved.
type ComponentSpec struct {
	Name  string
	Attrs []AttrSpec
	Slots []SlotSpec
}
