package graph

import (
	"encoding/json"
	"testing"
)

func TestPropertyValueJSONKeepsKindDistinct(t *testing.T) {
	props := Properties{
		"weight": FloatValue(2),
		"count":  IntValue(2),
	}

	data, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Properties
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded["weight"].Kind() != KindFloat {
		t.Errorf("weight decoded as %s, want float", decoded["weight"].Kind())
	}
	if decoded["count"].Kind() != KindInt {
		t.Errorf("count decoded as %s, want int", decoded["count"].Kind())
	}
	if !decoded["weight"].Equal(FloatValue(2)) || !decoded["count"].Equal(IntValue(2)) {
		t.Errorf("decoded values changed: %v", decoded)
	}
}

func TestPropertyValueUnmarshalRejectsUnknownKind(t *testing.T) {
	var v PropertyValue
	if err := v.UnmarshalJSON([]byte(`{"kind":"blob","value":"x"}`)); err == nil {
		t.Error("UnmarshalJSON() accepted unknown kind")
	}
}
