// Package icons enumerates the heroicon names bundled with Loom.
//
// Icon identifiers follow the "hero-" convention: a bare name selects the
// outline style, and a "-solid" or "-mini" suffix selects the other two
// bundled variants:
//
//	hero-x-mark          outline
//	hero-x-mark-solid    solid
//	hero-x-mark-mini     mini (20px, for tight spots)
//
// The name set is fixed at build time: names.go is generated from the
// bundled icon asset directory by `loom gen icons`. Requesting a name that
// is not in the set is an attribute validation failure at render time, not
// a runtime lookup miss - the icon component rejects it before any markup
// is produced.
package icons
