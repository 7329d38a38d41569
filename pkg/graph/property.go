package graph

import (
	"fmt"
	"strconv"
)

// Kind discriminates the four scalar kinds a PropertyValue can hold.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// PropertyValue is an immutable scalar attribute value attached to nodes and
// edges. It holds exactly one of string, int64, float64, or bool. Accessing
// it as the wrong kind fails with ErrTypeMismatch; values are never coerced
// between kinds.
type PropertyValue struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// StringValue constructs a string-kinded PropertyValue.
func StringValue(v string) PropertyValue {
	return PropertyValue{kind: KindString, s: v}
}

// IntValue constructs an int-kinded PropertyValue.
func IntValue(v int64) PropertyValue {
	return PropertyValue{kind: KindInt, i: v}
}

// FloatValue constructs a float-kinded PropertyValue.
func FloatValue(v float64) PropertyValue {
	return PropertyValue{kind: KindFloat, f: v}
}

// BoolValue constructs a bool-kinded PropertyValue.
func BoolValue(v bool) PropertyValue {
	return PropertyValue{kind: KindBool, b: v}
}

// Kind reports which scalar kind the value holds.
func (v PropertyValue) Kind() Kind {
	return v.kind
}

// AsString returns the held string, or ErrTypeMismatch for any other kind.
func (v PropertyValue) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("%w: have %s, want string", ErrTypeMismatch, v.kind)
	}
	return v.s, nil
}

// AsInt returns the held int64, or ErrTypeMismatch for any other kind.
func (v PropertyValue) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: have %s, want int", ErrTypeMismatch, v.kind)
	}
	return v.i, nil
}

// AsFloat returns the held float64, or ErrTypeMismatch for any other kind.
func (v PropertyValue) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("%w: have %s, want float", ErrTypeMismatch, v.kind)
	}
	return v.f, nil
}

// AsBool returns the held bool, or ErrTypeMismatch for any other kind.
func (v PropertyValue) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("%w: have %s, want bool", ErrTypeMismatch, v.kind)
	}
	return v.b, nil
}

// Equal reports whether two values hold the same kind and the same scalar.
// Values of different kinds are never equal, even when their renderings match.
func (v PropertyValue) Equal(o PropertyValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	}
	return false
}

// String renders the value for diagnostics. It is total over all kinds.
func (v PropertyValue) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// Properties maps attribute keys to scalar values. Key order is not
// significant.
type Properties map[string]PropertyValue

// Clone returns an independent copy of the property map. A nil map clones to
// an empty, non-nil map so callers can always write into the result.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
