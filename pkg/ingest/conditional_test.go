package ingest

import (
	"reflect"
	"testing"

	"netrca/pkg/common"
)

func TestConditionalExtractor(t *testing.T) {
	e := NewConditionalExtractor()

	tests := []struct {
		name string
		text string
		want []common.Conditional
	}{
		{
			name: "marked outcome after speaker clause",
			text: "If the HOLD_TIMER expires before KEEPALIVE is received, the speaker shall send a NOTIFICATION.",
			want: []common.Conditional{{
				Raw:       "If the HOLD_TIMER expires before KEEPALIVE is received, the speaker shall send a NOTIFICATION.",
				Trigger:   "if",
				Condition: "the HOLD_TIMER expires before KEEPALIVE is received",
				Outcome:   "send a NOTIFICATION.",
			}},
		},
		{
			name: "unmarked outcome uses the remainder",
			text: "Unless the session is in Established state, the KEEPALIVE messages are ignored.",
			want: []common.Conditional{{
				Raw:       "Unless the session is in Established state, the KEEPALIVE messages are ignored.",
				Trigger:   "unless",
				Condition: "the session is in Established state",
				Outcome:   "the KEEPALIVE messages are ignored.",
			}},
		},
		{
			name: "must marker",
			text: "When the hold timer fires, the router must drop the peering.",
			want: []common.Conditional{{
				Raw:       "When the hold timer fires, the router must drop the peering.",
				Trigger:   "when",
				Condition: "the hold timer fires",
				Outcome:   "drop the peering.",
			}},
		},
		{
			name: "one statement per sentence",
			text: "If the timer expires, the peering drops. Once the peering drops, traffic must reroute.",
			want: []common.Conditional{
				{
					Raw:       "If the timer expires, the peering drops.",
					Trigger:   "if",
					Condition: "the timer expires",
					Outcome:   "the peering drops.",
				},
				{
					Raw:       "Once the peering drops, traffic must reroute.",
					Trigger:   "once",
					Condition: "the peering drops",
					Outcome:   "reroute.",
				},
			},
		},
		{
			name: "plain prose yields nothing",
			text: "The peering stayed up all night.",
			want: nil,
		},
		{
			name: "trigger without a comma yields nothing",
			text: "The timers matter only if misconfigured.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
