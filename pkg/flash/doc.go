// Package flash encodes and decodes the flash envelope Loom uses to carry
// structured notification metadata through a host framework whose flash
// storage only supports plain strings.
//
// A flash value is either a plain message string, or a JSON object:
//
//	{"message": "Saved!", "icon_name": "hero-check-circle", "ttl": 5000,
//	 "title": "Success", "close": true, "style_for_kind": "info"}
//
// Encode produces the JSON form. Decode never fails: any value that is not
// a JSON object carrying a "message" key degrades to a plain-text envelope,
// so a flash always renders, in the worst case as unstyled text.
//
// # Server-Side Usage
//
//	raw := flash.Encode(flash.Envelope{
//	    Message: "Project deleted",
//	    TTL:     5000,
//	    Close:   flash.Bool(true),
//	})
//	// hand raw to the host framework's flash store under a kind ("info", "error", ...)
//
// At render time FlashGroup decodes each stored value back into component
// attributes.
package flash
