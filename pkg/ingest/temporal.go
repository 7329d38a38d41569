package ingest

import (
	"regexp"
	"strconv"
	"time"
)

// Document status values recognized by the TemporalAnnotator.
const (
	StatusInternetStandard = "Internet Standard"
	StatusProposedStandard = "Proposed Standard"
	StatusDraft            = "Draft"
	StatusUnknown          = "Informational / Unknown"
)

var (
	reMonthYear = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`)
	reYear      = regexp.MustCompile(`\d{4}`)

	reInternetStandard = regexp.MustCompile(`(?i)\bInternet Standard\b`)
	reProposedStandard = regexp.MustCompile(`(?i)\bProposed Standard\b`)
	reDraft            = regexp.MustCompile(`(?i)\b(Draft|Internet-Draft)\b`)
)

// TemporalSignal captures when knowledge was published and how stable it is.
// StabilityScore runs from 0 (unstable draft) to 1 (long-term standard);
// scores of old non-standard documents decay.
type TemporalSignal struct {
	Date           string
	Status         string
	StabilityScore float64
	YearsOld       int
}

// TemporalAnnotator extracts publication dates and document maturity status
// from technical text and derives a knowledge-stability score.
type TemporalAnnotator struct {
	now func() time.Time
}

// NewTemporalAnnotator creates a TemporalAnnotator using the wall clock for
// age calculation.
func NewTemporalAnnotator() *TemporalAnnotator {
	return &TemporalAnnotator{now: time.Now}
}

// NewTemporalAnnotatorAt creates a TemporalAnnotator with a fixed clock, for
// reproducible annotation in tests.
func NewTemporalAnnotatorAt(now func() time.Time) *TemporalAnnotator {
	return &TemporalAnnotator{now: now}
}

// Annotate extracts time-based signals from the text and scores their
// stability.
func (a *TemporalAnnotator) Annotate(text string) TemporalSignal {
	signal := TemporalSignal{Date: reMonthYear.FindString(text)}

	switch {
	case reInternetStandard.MatchString(text):
		signal.Status = StatusInternetStandard
		signal.StabilityScore = 1.0
	case reProposedStandard.MatchString(text):
		signal.Status = StatusProposedStandard
		signal.StabilityScore = 0.8
	case reDraft.MatchString(text):
		signal.Status = StatusDraft
		signal.StabilityScore = 0.3
	default:
		signal.Status = StatusUnknown
		signal.StabilityScore = 0.5
	}

	if signal.Date != "" {
		if yearStr := reYear.FindString(signal.Date); yearStr != "" {
			pubYear, err := strconv.Atoi(yearStr)
			if err == nil {
				signal.YearsOld = a.now().Year() - pubYear

				// Very old documents lose stability unless they made it to
				// Internet Standard.
				if signal.YearsOld > 15 && signal.Status != StatusInternetStandard {
					signal.StabilityScore *= 0.7
				}
			}
		}
	}

	return signal
}
