package models

// Value is a single renderable context value. Bold values are emitted as
// their own emphasised run so signature fields stand out in the output.
type Value struct {
	Text string
	Bold bool
}

// Plain wraps s as an unemphasised context value.
func Plain(s string) Value {
	return Value{Text: s}
}

// Bold wraps s as an emphasised context value.
func Bold(s string) Value {
	return Value{Text: s, Bold: true}
}

// RenderContext maps token names to the values substituted for them.
// A missing key always resolves to the empty string, never an error, so a
// template renders even with partial data.
type RenderContext map[string]Value

// PlainContext builds a RenderContext from a flat string map.
func PlainContext(m map[string]string) RenderContext {
	ctx := make(RenderContext, len(m))
	for k, v := range m {
		ctx[k] = Plain(v)
	}
	return ctx
}

// Resolve returns the text for the token name, or "" when absent.
func (c RenderContext) Resolve(name string) (Value, bool) {
	v, ok := c[name]
	if !ok {
		return Value{}, false
	}
	return v, true
}
