package ingest

import (
	"math"
	"testing"
	"time"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestTemporalAnnotatorAnnotate(t *testing.T) {
	annotator := NewTemporalAnnotatorAt(fixedClock(2026))

	tests := []struct {
		name          string
		text          string
		wantDate      string
		wantStatus    string
		wantStability float64
		wantYearsOld  int
	}{
		{
			name:          "no signals",
			text:          "the neighbor negotiation completed",
			wantDate:      "",
			wantStatus:    StatusUnknown,
			wantStability: 0.5,
			wantYearsOld:  0,
		},
		{
			name:          "old internet standard keeps full stability",
			text:          "Published January 2006 as an Internet Standard.",
			wantDate:      "January 2006",
			wantStatus:    StatusInternetStandard,
			wantStability: 1.0,
			wantYearsOld:  20,
		},
		{
			name:          "recent proposed standard",
			text:          "Status: Proposed Standard, June 2024.",
			wantDate:      "June 2024",
			wantStatus:    StatusProposedStandard,
			wantStability: 0.8,
			wantYearsOld:  2,
		},
		{
			name:          "draft",
			text:          "This Internet-Draft expires soon.",
			wantDate:      "",
			wantStatus:    StatusDraft,
			wantStability: 0.3,
			wantYearsOld:  0,
		},
		{
			name:          "old unclassified document decays",
			text:          "Written in March 2004 by the operations team.",
			wantDate:      "March 2004",
			wantStatus:    StatusUnknown,
			wantStability: 0.35,
			wantYearsOld:  22,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := annotator.Annotate(tt.text)
			if got.Date != tt.wantDate {
				t.Errorf("Annotate().Date = %q, want %q", got.Date, tt.wantDate)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Annotate().Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if math.Abs(got.StabilityScore-tt.wantStability) > 1e-9 {
				t.Errorf("Annotate().StabilityScore = %f, want %f", got.StabilityScore, tt.wantStability)
			}
			if got.YearsOld != tt.wantYearsOld {
				t.Errorf("Annotate().YearsOld = %d, want %d", got.YearsOld, tt.wantYearsOld)
			}
		})
	}
}
