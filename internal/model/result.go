package model

import (
	"fmt"
	"time"
)

// ConfidenceFloor is the minimum confidence below which no tag suggestion is
// surfaced to callers. This is a hard business rule, not a tuning knob.
const ConfidenceFloor = 0.50

// ConfidenceFactors holds the independent sub-scores computed for one
// classification call. Signed values lean FIXED when positive and VARIABLE
// when negative. Recomputed per call, never persisted on their own.
type ConfidenceFactors struct {
	Keywords     float64
	Merchant     float64
	NGrams       float64
	Amount       float64
	Time         float64
	Combinations float64
	Stability    *float64 // nil when fewer than 3 valid history amounts
	Frequency    *float64 // nil when fewer than 3 dated history entries
	UserFeedback float64
}

// Result is the immutable outcome of one classification call. Construct it
// with NewResult so the confidence floor is always enforced.
type Result struct {
	SuggestedTag          string
	Confidence            float64
	ExpenseType           ExpenseType
	ExpenseTypeConfidence float64
	Explanation           string
	ContributingFactors   []string
	AlternativeTags       []string
	KeywordMatches        []string
	DataSources           []string
	Factors               ConfidenceFactors
	StabilityScore        *float64
	FrequencyScore        *float64

	// Bookkeeping, excluded from idempotence comparisons.
	CachedResult   bool
	ProcessingTime time.Duration
}

// NewResult validates and normalizes a classification outcome. A result under
// the confidence floor has its tag cleared and its explanation replaced, so
// callers never receive a low-confidence tag as if it were actionable.
func NewResult(r Result) Result {
	r.Confidence = clamp01(r.Confidence)
	r.ExpenseTypeConfidence = clamp01(r.ExpenseTypeConfidence)
	if !r.ExpenseType.Valid() {
		r.ExpenseType = ExpenseVariable
	}
	if r.Confidence < ConfidenceFloor {
		r.SuggestedTag = ""
		r.Explanation = fmt.Sprintf("insufficient confidence (%.2f < %.2f)", r.Confidence, ConfidenceFloor)
	}
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
