package ui

// Value is an override or default value: either a literal, or a function
// computed from the assigns resolved so far. The two cases are explicit
// constructors rather than "maybe it's a function" sniffing, so a literal
// that happens to be a func type is still a literal.
type Value interface {
	resolve(a Assigns) any
}

type literal struct {
	v any
}

func (l literal) resolve(Assigns) any { return l.v }

type computed struct {
	fn func(Assigns) any
}

func (c computed) resolve(a Assigns) any { return c.fn(a) }

// Lit wraps a literal override value.
func Lit(v any) Value {
	return literal{v: v}
}

// Fn wraps a computed override value. The function receives the assign map
// accumulated so far (static defaults and call-site values already merged)
// and returns the effective value.
func Fn(fn func(a Assigns) any) Value {
	return computed{fn: fn}
}
