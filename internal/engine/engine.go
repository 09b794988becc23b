// Package engine provides the batch driver over the classifier: chunked
// processing with progress reporting and optional parallel workers.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cassis-finance/cassis/internal/classifier"
	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/model"
	"github.com/cassis-finance/cassis/internal/service"
)

// Options configures batch classification behavior.
type Options struct {
	ChunkSize       int                  // transactions per chunk
	ParallelWorkers int                  // workers within a chunk
	InterChunkDelay time.Duration        // pause between chunks, honored only with research enabled
	ReviewThreshold float64              // confidence below which a result counts as needing review
	Progress        service.ProgressFunc // called after each chunk
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		ChunkSize:       20,
		ParallelWorkers: 4,
		InterChunkDelay: 200 * time.Millisecond,
		ReviewThreshold: 0.80,
	}
}

// Summary contains statistics about a batch run.
type Summary struct {
	TotalTransactions int
	HighConfidence    int
	NeedsReview       int
	Untagged          int
	Chunks            int
	ProcessingTime    time.Duration
}

// Engine drives the classifier over transaction batches.
type Engine struct {
	classifier *classifier.Classifier
}

// New creates a batch engine over the given classifier.
func New(c *classifier.Classifier) *Engine {
	return &Engine{classifier: c}
}

// ClassifyMany classifies all transactions in chunks, reporting progress after
// each chunk. Results are keyed by transaction ID; transactions without an ID
// get a positional key. The only error is context cancellation: individual
// classifications never fail.
func (e *Engine) ClassifyMany(ctx context.Context, transactions []model.Transaction, opts Options) (map[string]model.Result, *Summary, error) {
	startTime := time.Now()

	if len(transactions) == 0 {
		return nil, nil, common.ErrNoTransactions
	}

	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultOptions().ChunkSize
	}
	if opts.ParallelWorkers <= 0 {
		opts.ParallelWorkers = 1
	}
	if opts.ReviewThreshold <= 0 {
		opts.ReviewThreshold = DefaultOptions().ReviewThreshold
	}

	slog.Info("Starting batch classification",
		"total_transactions", len(transactions),
		"chunk_size", opts.ChunkSize,
		"workers", opts.ParallelWorkers)

	results := make(map[string]model.Result, len(transactions))
	summary := &Summary{TotalTransactions: len(transactions)}

	for offset := 0; offset < len(transactions); offset += opts.ChunkSize {
		if err := ctx.Err(); err != nil {
			return results, summary, fmt.Errorf("batch classification canceled: %w", err)
		}

		end := offset + opts.ChunkSize
		if end > len(transactions) {
			end = len(transactions)
		}
		chunk := transactions[offset:end]

		for key, res := range e.classifyChunk(ctx, chunk, offset, opts.ParallelWorkers) {
			results[key] = res
			switch {
			case res.SuggestedTag == "":
				summary.Untagged++
			case res.Confidence >= opts.ReviewThreshold:
				summary.HighConfidence++
			default:
				summary.NeedsReview++
			}
		}
		summary.Chunks++

		if opts.Progress != nil {
			opts.Progress(end, len(transactions), float64(end)/float64(len(transactions))*100)
		}

		// Research calls are externally rate limited; the inter-chunk pause
		// keeps long batches from monopolizing the gate.
		if e.classifier.ResearchEnabled() && opts.InterChunkDelay > 0 && end < len(transactions) {
			select {
			case <-time.After(opts.InterChunkDelay):
			case <-ctx.Done():
				return results, summary, fmt.Errorf("batch classification canceled: %w", ctx.Err())
			}
		}
	}

	summary.ProcessingTime = time.Since(startTime)

	slog.Info("Batch classification complete",
		"total", summary.TotalTransactions,
		"high_confidence", summary.HighConfidence,
		"needs_review", summary.NeedsReview,
		"untagged", summary.Untagged,
		"duration", summary.ProcessingTime)

	return results, summary, nil
}

// classifyChunk classifies one chunk with a bounded worker pool.
func (e *Engine) classifyChunk(ctx context.Context, chunk []model.Transaction, offset, workers int) map[string]model.Result {
	type indexed struct {
		key string
		res model.Result
	}

	workChan := make(chan int, len(chunk))
	for i := range chunk {
		workChan <- i
	}
	close(workChan)

	resultsChan := make(chan indexed, len(chunk))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range workChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				tx := chunk[i]
				resultsChan <- indexed{key: resultKey(tx, offset+i), res: e.classifier.Classify(ctx, tx)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	out := make(map[string]model.Result, len(chunk))
	for r := range resultsChan {
		out[r.key] = r.res
	}
	return out
}

func resultKey(tx model.Transaction, position int) string {
	if tx.ID != "" {
		return tx.ID
	}
	return fmt.Sprintf("tx-%d", position)
}
