package classifier

import (
	"sync/atomic"

	"github.com/cassis-finance/cassis/internal/service"
)

// statsCounters tracks classifier activity with lock-free counters.
type statsCounters struct {
	totalProcessed   atomic.Int64
	cacheHits        atomic.Int64
	highConfidence   atomic.Int64
	fastPathHits     atomic.Int64
	researchCalls    atomic.Int64
	researchFailures atomic.Int64
}

func (s *statsCounters) recordHit(highConfidence bool) {
	s.totalProcessed.Add(1)
	s.cacheHits.Add(1)
	if highConfidence {
		s.highConfidence.Add(1)
	}
}

func (s *statsCounters) recordMiss(highConfidence, fastPath bool) {
	s.totalProcessed.Add(1)
	if highConfidence {
		s.highConfidence.Add(1)
	}
	if fastPath {
		s.fastPathHits.Add(1)
	}
}

func (s *statsCounters) recordResearch()        { s.researchCalls.Add(1) }
func (s *statsCounters) recordResearchFailure() { s.researchFailures.Add(1) }

// Statistics returns a snapshot of classifier activity.
func (c *Classifier) Statistics() service.Statistics {
	total := c.stats.totalProcessed.Load()
	hits := c.stats.cacheHits.Load()
	high := c.stats.highConfidence.Load()

	stats := service.Statistics{
		TotalProcessed:   total,
		CacheHits:        hits,
		HighConfidence:   high,
		FastPathHits:     c.stats.fastPathHits.Load(),
		ResearchCalls:    c.stats.researchCalls.Load(),
		ResearchFailures: c.stats.researchFailures.Load(),
		PatternCount:     c.db.Count(),
	}
	if total > 0 {
		stats.CacheHitRate = float64(hits) / float64(total)
		stats.HighConfidenceRate = float64(high) / float64(total)
	}
	return stats
}
