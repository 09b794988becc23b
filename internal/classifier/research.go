package classifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/service"
)

// researchGate wraps the external web-research collaborator with the only
// concurrency control the pipeline needs: a bounded semaphore, a minimum
// inter-call spacing, and a per-call timeout. On any failure the caller
// degrades to local scoring.
type researchGate struct {
	researcher  service.Researcher
	sem         chan struct{}
	minInterval time.Duration
	timeout     time.Duration
	last        time.Time
	mu          sync.Mutex
}

func newResearchGate(r service.Researcher, maxConcurrent int, minInterval, timeout time.Duration) *researchGate {
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}
	if minInterval <= 0 {
		minInterval = 500 * time.Millisecond
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &researchGate{
		researcher:  r,
		sem:         make(chan struct{}, maxConcurrent),
		minInterval: minInterval,
		timeout:     timeout,
	}
}

// research performs one gated lookup. It blocks for a semaphore slot and the
// rate-limit spacing, then applies the per-call timeout.
func (g *researchGate) research(ctx context.Context, merchant string) (service.ResearchResult, error) {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return service.ResearchResult{}, fmt.Errorf("research canceled: %w", ctx.Err())
	}
	defer func() { <-g.sem }()

	// Reserve the next slot in the spacing schedule before sleeping so
	// concurrent callers queue up rather than stampede.
	g.mu.Lock()
	now := time.Now()
	next := g.last.Add(g.minInterval)
	var wait time.Duration
	if next.After(now) {
		wait = next.Sub(now)
	}
	g.last = now.Add(wait)
	g.mu.Unlock()

	if wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return service.ResearchResult{}, fmt.Errorf("research canceled: %w", ctx.Err())
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.researcher.Research(callCtx, merchant)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return service.ResearchResult{}, fmt.Errorf("%w after %s", common.ErrResearchTimeout, g.timeout)
		}
		return service.ResearchResult{}, err
	}
	return res, nil
}
