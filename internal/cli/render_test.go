package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cassis-finance/cassis/internal/engine"
	"github.com/cassis-finance/cassis/internal/model"
	"github.com/cassis-finance/cassis/internal/service"
)

func TestRenderResult_Tagged(t *testing.T) {
	out := RenderResult(model.Result{
		SuggestedTag:          "streaming",
		Confidence:            0.96,
		ExpenseType:           model.ExpenseFixed,
		ExpenseTypeConfidence: 0.96,
		Explanation:           `pattern match "netflix" (strength 0.98)`,
		ContributingFactors:   []string{`pattern "netflix": 0.98`},
		CachedResult:          true,
	})

	assert.Contains(t, out, "streaming")
	assert.Contains(t, out, "96%")
	assert.Contains(t, out, "FIXED")
	assert.Contains(t, out, "(cached)")
}

func TestRenderResult_Untagged(t *testing.T) {
	out := RenderResult(model.Result{
		ExpenseType:           model.ExpenseVariable,
		ExpenseTypeConfidence: 0.50,
		Confidence:            0.30,
	})

	assert.Contains(t, out, "no tag suggested")
	assert.Contains(t, out, "VARIABLE")
}

func TestRenderStatistics(t *testing.T) {
	out := RenderStatistics(service.Statistics{
		TotalProcessed: 10,
		CacheHits:      4,
		CacheHitRate:   0.4,
		PatternCount:   143,
	})

	assert.Contains(t, out, "10")
	assert.Contains(t, out, "40%")
	assert.Contains(t, out, "143")
}

func TestRenderBatchSummary(t *testing.T) {
	out := RenderBatchSummary(&engine.Summary{
		TotalTransactions: 45,
		HighConfidence:    30,
		NeedsReview:       10,
		Untagged:          5,
		Chunks:            3,
		ProcessingTime:    120 * time.Millisecond,
	})

	assert.Contains(t, out, "45")
	assert.Contains(t, out, "30 high confidence")
	assert.Contains(t, out, "10 need review")
	assert.Contains(t, out, "5 untagged")
}

func TestRenderPatternTable(t *testing.T) {
	out := RenderPatternTable(map[string][]model.PatternEntry{
		"streaming": {{Pattern: "netflix", Tag: "streaming", ExpenseType: model.ExpenseFixed, Confidence: 0.98}},
	})

	assert.Contains(t, out, "netflix")
	assert.Contains(t, out, "0.98")
}
