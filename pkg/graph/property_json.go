package graph

import (
	"encoding/json"
	"fmt"
)

type propertyValueJSON struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the value as {"kind": ..., "value": ...}. The explicit
// kind tag keeps int and float values distinct across the wire, where JSON
// itself has only one number type.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	var raw any
	switch v.kind {
	case KindString:
		raw = v.s
	case KindInt:
		raw = v.i
	case KindFloat:
		raw = v.f
	case KindBool:
		raw = v.b
	}

	value, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(propertyValueJSON{Kind: v.kind.String(), Value: value})
}

// UnmarshalJSON decodes the tagged form produced by MarshalJSON.
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var tagged propertyValueJSON
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}

	switch tagged.Kind {
	case "string":
		var s string
		if err := json.Unmarshal(tagged.Value, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case "int":
		var i int64
		if err := json.Unmarshal(tagged.Value, &i); err != nil {
			return err
		}
		*v = IntValue(i)
	case "float":
		var f float64
		if err := json.Unmarshal(tagged.Value, &f); err != nil {
			return err
		}
		*v = FloatValue(f)
	case "bool":
		var b bool
		if err := json.Unmarshal(tagged.Value, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	default:
		return fmt.Errorf("unknown property value kind %q", tagged.Kind)
	}
	return nil
}
