package route

import "fmt"

// Arguments is the opaque payload attached to a navigation request. A zero
// Arguments carries nothing, which is distinct from carrying an empty value:
// use Args to wrap a payload, including nil or "".
//
// The typed accessors fail loudly on a mismatched payload kind instead of
// silently returning a zero value, so a page that expects a string argument
// finds out immediately when handed an int.
type Arguments struct {
	value   any
	present bool
}

// Args wraps a payload value for a navigation request.
func Args(v any) Arguments {
	return Arguments{value: v, present: true}
}

// None is the absent payload. Equivalent to the zero Arguments.
func None() Arguments {
	return Arguments{}
}

// Present reports whether a payload was attached at all.
func (a Arguments) Present() bool {
	return a.present
}

// Value returns the raw payload, nil if absent.
func (a Arguments) Value() any {
	return a.value
}

// String returns the payload as a string, or an *ArgumentTypeError if the
// payload is absent or of another kind.
func (a Arguments) String() (string, error) {
	if !a.present {
		return "", &ArgumentTypeError{Want: "string"}
	}
	s, ok := a.value.(string)
	if !ok {
		return "", &ArgumentTypeError{Want: "string", Got: a.value}
	}
	return s, nil
}

// Int returns the payload as an int, or an *ArgumentTypeError if the payload
// is absent or of another kind.
func (a Arguments) Int() (int, error) {
	if !a.present {
		return 0, &ArgumentTypeError{Want: "int"}
	}
	n, ok := a.value.(int)
	if !ok {
		return 0, &ArgumentTypeError{Want: "int", Got: a.value}
	}
	return n, nil
}

// ArgumentTypeError reports a typed accessor used against a payload of the
// wrong kind, or against absent arguments.
type ArgumentTypeError struct {
	Want string // the kind the accessor expected
	Got  any    // the payload actually carried, nil if absent
}

func (e *ArgumentTypeError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("route: no arguments present, wanted %s", e.Want)
	}
	return fmt.Sprintf("route: arguments are %T, wanted %s", e.Got, e.Want)
}
