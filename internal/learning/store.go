// Package learning records user corrections and turns them into confidence
// adjustments and feedback scores that bias future classifications.
package learning

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cassis-finance/cassis/internal/service"
)

// Adjustment steps and bounds. History is never deleted; the store grows for
// the lifetime of the process.
const (
	acceptStep      = 0.10
	rejectStep      = -0.20
	correctionStep  = 0.15
	adjustmentCap   = 1.0
	adjustmentFloor = -0.5

	agreementBoost     = 1.2
	agreementMinTotal  = 3
	agreementThreshold = 0.7
)

// Store is the in-memory learning store. An optional CorrectionStore makes
// corrections durable; persistence failures are logged and never block the
// in-memory update.
type Store struct {
	adjustments map[string]float64
	tagCounts   map[string]map[string]int
	persist     service.CorrectionStore
	mu          sync.RWMutex
	now         func() time.Time
}

// NewStore creates an empty learning store.
func NewStore() *Store {
	return &Store{
		adjustments: make(map[string]float64),
		tagCounts:   make(map[string]map[string]int),
		now:         time.Now,
	}
}

// WithPersistence attaches a durable correction store. Corrections recorded
// afterwards are written through.
func (s *Store) WithPersistence(cs service.CorrectionStore) *Store {
	s.persist = cs
	return s
}

// RecordCorrection applies one user accept/override action.
//
// Acceptance strengthens merchant:suggested. Rejection weakens the wrong
// pairing and strengthens merchant:actual. The per-merchant tag counter
// feeds the scorer's user-feedback factor independently of the adjustments.
func (s *Store) RecordCorrection(ctx context.Context, merchant, suggestedTag, actualTag string, accepted bool) {
	key := merchantKey(merchant)
	if key == "" {
		return
	}

	s.mu.Lock()
	s.apply(key, suggestedTag, actualTag, accepted)
	s.mu.Unlock()

	if s.persist != nil {
		c := service.Correction{
			CreatedAt:    s.now(),
			Merchant:     key,
			SuggestedTag: suggestedTag,
			ActualTag:    actualTag,
			Accepted:     accepted,
		}
		if err := s.persist.SaveCorrection(ctx, c); err != nil {
			slog.Warn("Failed to persist correction", "merchant", key, "error", err)
		}
	}
}

// apply mutates the adjustment and count tables. Caller holds the lock.
func (s *Store) apply(key, suggestedTag, actualTag string, accepted bool) {
	if accepted {
		if suggestedTag != "" {
			s.bump(key, suggestedTag, acceptStep)
			s.count(key, suggestedTag)
		}
		return
	}

	if suggestedTag != "" {
		s.bump(key, suggestedTag, rejectStep)
	}
	if actualTag != "" {
		s.bump(key, actualTag, correctionStep)
		s.count(key, actualTag)
	}
}

func (s *Store) bump(merchant, tag string, step float64) {
	k := merchant + ":" + tag
	v := s.adjustments[k] + step
	if v > adjustmentCap {
		v = adjustmentCap
	}
	if v < adjustmentFloor {
		v = adjustmentFloor
	}
	s.adjustments[k] = v
}

func (s *Store) count(merchant, tag string) {
	if s.tagCounts[merchant] == nil {
		s.tagCounts[merchant] = make(map[string]int)
	}
	s.tagCounts[merchant][tag]++
}

// Adjustment returns the signed confidence adjustment for merchant:tag, or 0
// when none is recorded. It never fails; a missing entry is simply neutral.
func (s *Store) Adjustment(merchant, tag string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adjustments[merchantKey(merchant)+":"+tag]
}

// FeedbackScore returns the tag user corrections favor for this merchant and
// a score in [0,1]: the favored tag's share of all corrections, boosted 1.2x
// when at least 3 corrections agree at least 70% of the time.
func (s *Store) FeedbackScore(merchant string) (string, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := s.tagCounts[merchantKey(merchant)]
	if len(counts) == 0 {
		return "", 0
	}

	total := 0
	bestTag := ""
	bestCount := 0
	for tag, n := range counts {
		total += n
		if n > bestCount || (n == bestCount && tag < bestTag) {
			bestTag = tag
			bestCount = n
		}
	}

	score := float64(bestCount) / float64(total)
	if total >= agreementMinTotal && score >= agreementThreshold {
		score *= agreementBoost
	}
	if score > 1 {
		score = 1
	}
	return bestTag, score
}

// CorrectionCount returns how many corrections are recorded for a merchant.
func (s *Store) CorrectionCount(merchant string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, n := range s.tagCounts[merchantKey(merchant)] {
		total += n
	}
	return total
}

// Restore replays persisted corrections into memory without writing them
// back out. Used at startup.
func (s *Store) Restore(corrections []service.Correction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range corrections {
		key := merchantKey(c.Merchant)
		if key == "" {
			continue
		}
		s.apply(key, c.SuggestedTag, c.ActualTag, c.Accepted)
	}
}

func merchantKey(merchant string) string {
	return strings.ToLower(strings.TrimSpace(merchant))
}
