// Package vdom provides the node tree that Loom components render into.
//
// A VNode is an in-memory representation of a fragment of HTML. Components
// build VNode trees; the render package serializes them to markup. Loom does
// not diff or patch trees - live updates are the host framework's job.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, and raw HTML. Props holds attributes. Attr is used to build
// Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be Attr, []Attr, *VNode, []*VNode, plain strings (shorthand
// for text nodes), or nil (ignored, which makes conditional attributes and
// children cheap to express).
package vdom
