package flash

import "encoding/json"

// Kind names the conventional flash kinds.
const (
	KindInfo  = "info"
	KindError = "error"
)

// Envelope carries a flash message plus optional presentation metadata.
// The zero value of every optional field means "not set"; Close uses a
// pointer so an explicit false survives the round trip.
type Envelope struct {
	Message      string `json:"message"`
	IconName     string `json:"icon_name,omitempty"`
	TTL          int    `json:"ttl,omitempty"`
	Title        string `json:"title,omitempty"`
	Close        *bool  `json:"close,omitempty"`
	StyleForKind string `json:"style_for_kind,omitempty"`
}

// HasMeta reports whether the envelope carries anything beyond the message.
func (e Envelope) HasMeta() bool {
	return e.IconName != "" || e.TTL != 0 || e.Title != "" || e.Close != nil || e.StyleForKind != ""
}

// Bool returns a pointer to b, for setting Envelope.Close inline.
func Bool(b bool) *bool {
	return &b
}

// Encode serializes the envelope into the single string the host flash
// store accepts. An envelope with no metadata still encodes as JSON so the
// round trip is uniform; Decode accepts both forms.
func Encode(env Envelope) string {
	data, err := json.Marshal(env)
	if err != nil {
		// Envelope contains only marshalable field types; fall back to the
		// bare message rather than losing the flash.
		return env.Message
	}
	return string(data)
}

// Decode parses a raw flash value back into an Envelope. It never fails:
// if raw is not a JSON object, or the object has no "message" key, the whole
// raw string becomes the message and no metadata is set. Keys with null
// values are skipped.
func Decode(raw string) Envelope {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return Envelope{Message: raw}
	}
	rawMsg, ok := probe["message"]
	if !ok || string(rawMsg) == "null" {
		return Envelope{Message: raw}
	}
	var msg string
	if err := json.Unmarshal(rawMsg, &msg); err != nil {
		// "message" present but not a string; treat the value as opaque.
		return Envelope{Message: raw}
	}

	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		// Metadata keys with unexpected types degrade the whole value.
		return Envelope{Message: raw}
	}
	env.Message = msg
	return env
}
