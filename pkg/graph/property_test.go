package graph

import (
	"errors"
	"testing"
)

func TestPropertyValueAccessors(t *testing.T) {
	sv := StringValue("GigabitEthernet1/0/2")
	if got, err := sv.AsString(); err != nil || got != "GigabitEthernet1/0/2" {
		t.Errorf("AsString() = %q, %v", got, err)
	}
	if _, err := sv.AsInt(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsInt() on string kind: err = %v, want ErrTypeMismatch", err)
	}

	iv := IntValue(65001)
	if got, err := iv.AsInt(); err != nil || got != 65001 {
		t.Errorf("AsInt() = %d, %v", got, err)
	}
	if _, err := iv.AsString(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsString() on int kind: err = %v, want ErrTypeMismatch", err)
	}

	fv := FloatValue(0.85)
	if got, err := fv.AsFloat(); err != nil || got != 0.85 {
		t.Errorf("AsFloat() = %v, %v", got, err)
	}
	if _, err := fv.AsBool(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsBool() on float kind: err = %v, want ErrTypeMismatch", err)
	}

	bv := BoolValue(true)
	if got, err := bv.AsBool(); err != nil || !got {
		t.Errorf("AsBool() = %v, %v", got, err)
	}
	if _, err := bv.AsFloat(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsFloat() on bool kind: err = %v, want ErrTypeMismatch", err)
	}
}

func TestPropertyValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a    PropertyValue
		b    PropertyValue
		want bool
	}{
		{
			name: "equal strings",
			a:    StringValue("DOWN"),
			b:    StringValue("DOWN"),
			want: true,
		},
		{
			name: "different strings",
			a:    StringValue("DOWN"),
			b:    StringValue("UP"),
			want: false,
		},
		{
			name: "string never equals int with same rendering",
			a:    StringValue("42"),
			b:    IntValue(42),
			want: false,
		},
		{
			name: "int never equals float with same magnitude",
			a:    IntValue(1),
			b:    FloatValue(1),
			want: false,
		},
		{
			name: "equal bools",
			a:    BoolValue(false),
			b:    BoolValue(false),
			want: true,
		},
		{
			name: "equal floats",
			a:    FloatValue(0.3),
			b:    FloatValue(0.3),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertyValueString(t *testing.T) {
	tests := []struct {
		name string
		v    PropertyValue
		want string
	}{
		{name: "string", v: StringValue("BGP_SESSION_RESET"), want: "BGP_SESSION_RESET"},
		{name: "int", v: IntValue(-7), want: "-7"},
		{name: "float", v: FloatValue(0.5), want: "0.5"},
		{name: "bool", v: BoolValue(true), want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPropertiesClone(t *testing.T) {
	orig := Properties{"state": StringValue("DOWN")}
	clone := orig.Clone()
	clone["state"] = StringValue("UP")

	if got, _ := orig["state"].AsString(); got != "DOWN" {
		t.Errorf("mutating clone changed original: state = %q", got)
	}

	var nilProps Properties
	cloned := nilProps.Clone()
	if cloned == nil {
		t.Error("Clone() of nil map should be writable, got nil")
	}
}
