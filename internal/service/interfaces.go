// Package service defines the interfaces shared across application packages.
package service

import (
	"context"
	"time"

	"github.com/cassis-finance/cassis/internal/model"
)

// Researcher is the external web-research collaborator consulted for unknown
// merchants. Implementations are expected to be slow and unreliable; callers
// bound them with timeouts and degrade to local scoring on failure.
type Researcher interface {
	// Research looks up a merchant and returns an enrichment suggestion.
	Research(ctx context.Context, merchant string) (ResearchResult, error)
}

// ResearchResult is the enrichment returned by a Researcher.
type ResearchResult struct {
	Tag         string
	Category    string
	ExpenseType model.ExpenseType
	Confidence  float64
}

// FeedbackSource exposes the learning signals the scorer consumes.
type FeedbackSource interface {
	// Adjustment returns the signed confidence adjustment for merchant:tag,
	// or 0 when none is recorded.
	Adjustment(merchant, tag string) float64
	// FeedbackScore returns the user-feedback factor in [0,1] along with the
	// tag the feedback favors, or ("", 0) without corrections.
	FeedbackScore(merchant string) (tag string, score float64)
}

// CorrectionStore persists user corrections so the learning layer survives
// restarts. The in-memory store remains authoritative during a run;
// persistence is write-through.
type CorrectionStore interface {
	SaveCorrection(ctx context.Context, c Correction) error
	ListCorrections(ctx context.Context) ([]Correction, error)
	Close() error
}

// Correction records one user accept/override action.
type Correction struct {
	CreatedAt    time.Time
	Merchant     string
	SuggestedTag string
	ActualTag    string
	Accepted     bool
}

// ProgressFunc reports batch progress after each processed chunk.
type ProgressFunc func(processed, total int, percent float64)

// Statistics summarizes classifier activity for operational dashboards.
type Statistics struct {
	TotalProcessed     int64
	CacheHits          int64
	CacheHitRate       float64
	HighConfidence     int64
	HighConfidenceRate float64
	FastPathHits       int64
	ResearchCalls      int64
	ResearchFailures   int64
	PatternCount       int
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
