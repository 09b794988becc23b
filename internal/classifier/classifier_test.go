package classifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/learning"
	"github.com/cassis-finance/cassis/internal/model"
	"github.com/cassis-finance/cassis/internal/patterndb"
	"github.com/cassis-finance/cassis/internal/scoring"
	"github.com/cassis-finance/cassis/internal/service"
)

func newTestClassifier() *Classifier {
	return New(patterndb.Default(), scoring.NewScorer(scoring.DefaultWeights()))
}

func TestClassify_NetflixPremium(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(context.Background(), model.Transaction{Label: "NETFLIX.COM PREMIUM", Amount: -15.99})

	assert.Equal(t, model.ExpenseFixed, res.ExpenseType)
	assert.Equal(t, "streaming", res.SuggestedTag)
	assert.GreaterOrEqual(t, res.Confidence, 0.90)
	assert.Contains(t, res.DataSources, "pattern_matching")
}

func TestClassify_CarrefourGroceries(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(context.Background(), model.Transaction{Label: "CARREFOUR SAINT-ETIENNE", Amount: -45.67})

	assert.Equal(t, model.ExpenseVariable, res.ExpenseType)
	assert.Equal(t, "courses", res.SuggestedTag)
	assert.GreaterOrEqual(t, res.Confidence, 0.85)
}

func TestClassify_EdfGdfInvoice(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(context.Background(), model.Transaction{Label: "EDF GDF FACTURE", Amount: -89.00})

	assert.Equal(t, model.ExpenseFixed, res.ExpenseType)
	assert.Equal(t, "electricite", res.SuggestedTag)
	assert.GreaterOrEqual(t, res.Confidence, 0.90)
}

func TestClassify_UnknownMerchant(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(context.Background(), model.Transaction{Label: "UNKNOWN_MERCHANT_XYZ_123", Amount: -25.00})

	assert.Empty(t, res.SuggestedTag)
	assert.Less(t, res.Confidence, 0.50)
	assert.Contains(t, res.Explanation, "insufficient confidence")
}

func TestClassify_EmptyLabel(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(context.Background(), model.Transaction{Label: "", Amount: 0})

	assert.Empty(t, res.SuggestedTag)
	assert.Equal(t, model.ExpenseVariable, res.ExpenseType)
	assert.Less(t, res.Confidence, 0.50)
}

func TestClassify_SubscriptionPricePointWithKeyword(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(context.Background(), model.Transaction{Label: "NETFLIX", Amount: -9.99})

	assert.Equal(t, model.ExpenseFixed, res.ExpenseType)
	assert.GreaterOrEqual(t, res.Confidence, 0.90)
}

func TestClassify_LargeAmountWithoutKeywords(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify(context.Background(), model.Transaction{Label: "XQZWV", Amount: -1500.00})

	// The large-amount nudge leans FIXED but a lone weak signal must not
	// look confident.
	assert.Equal(t, model.ExpenseFixed, res.ExpenseType)
	assert.Less(t, res.ExpenseTypeConfidence, 0.70)
	assert.Greater(t, res.ExpenseTypeConfidence, 0.50)
	assert.Empty(t, res.SuggestedTag)
}

func TestClassify_NetflixWithRegularHistory(t *testing.T) {
	c := newTestClassifier()

	history := []model.HistoryEntry{
		{Date: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99, Label: "NETFLIX.COM"},
		{Date: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99, Label: "NETFLIX.COM"},
		{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99, Label: "NETFLIX.COM"},
		{Date: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99, Label: "NETFLIX.COM"},
	}

	res := c.Classify(context.Background(), model.Transaction{Label: "NETFLIX.COM PREMIUM", Amount: -15.99, History: history})

	require.NotNil(t, res.StabilityScore)
	require.NotNil(t, res.FrequencyScore)
	assert.Greater(t, *res.StabilityScore, 0.8)
	assert.Greater(t, *res.FrequencyScore, 0.6)
	assert.Greater(t, res.Confidence, 0.85)
	assert.Equal(t, model.ExpenseFixed, res.ExpenseType)
}

func TestClassify_MalformedHistoryIsSkipped(t *testing.T) {
	c := newTestClassifier()

	history := []model.HistoryEntry{
		{Amount: -15.99}, // no date
		{Date: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)}, // no amount
	}

	res := c.Classify(context.Background(), model.Transaction{Label: "NETFLIX.COM", Amount: -15.99, History: history})

	// Too few valid records: both optional scores stay nil, nothing panics.
	assert.Nil(t, res.StabilityScore)
	assert.Nil(t, res.FrequencyScore)
	assert.Equal(t, model.ExpenseFixed, res.ExpenseType)
}

func TestClassify_Idempotence(t *testing.T) {
	c := NewWithConfig(patterndb.Default(), scoring.NewScorer(scoring.DefaultWeights()), Config{DisableCache: true})
	tx := model.Transaction{Label: "CARREFOUR MARKET", Amount: -33.10}

	a := c.Classify(context.Background(), tx)
	b := c.Classify(context.Background(), tx)

	a.ProcessingTime, b.ProcessingTime = 0, 0
	assert.Equal(t, a, b)
}

func TestClassify_CacheHit(t *testing.T) {
	c := newTestClassifier()
	tx := model.Transaction{Label: "SPOTIFY AB", Amount: -9.99}

	first := c.Classify(context.Background(), tx)
	second := c.Classify(context.Background(), tx)

	assert.False(t, first.CachedResult)
	assert.True(t, second.CachedResult)
	assert.Equal(t, first.SuggestedTag, second.SuggestedTag)
	assert.Equal(t, first.Confidence, second.Confidence)

	stats := c.Statistics()
	assert.Equal(t, int64(2), stats.TotalProcessed)
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.InDelta(t, 0.5, stats.CacheHitRate, 1e-9)
}

func TestClassify_HistoryBypassesCache(t *testing.T) {
	c := newTestClassifier()
	ctx := context.Background()

	history := []model.HistoryEntry{
		{Date: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99},
		{Date: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99},
		{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99},
		{Date: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), Amount: -15.99},
	}

	plain := c.Classify(ctx, model.Transaction{Label: "NETFLIX.COM PREMIUM", Amount: -15.99})
	assert.False(t, plain.CachedResult)

	// Same merchant and amount, now with history: the cached history-less
	// result must not shadow the stability and frequency factors.
	withHistory := c.Classify(ctx, model.Transaction{Label: "NETFLIX.COM PREMIUM", Amount: -15.99, History: history})
	assert.False(t, withHistory.CachedResult)
	require.NotNil(t, withHistory.StabilityScore)
	require.NotNil(t, withHistory.FrequencyScore)

	// History-less calls still hit the cache, untouched by the bypass.
	again := c.Classify(ctx, model.Transaction{Label: "NETFLIX.COM PREMIUM", Amount: -15.99})
	assert.True(t, again.CachedResult)
	assert.Nil(t, again.StabilityScore)
}

func TestClassify_ExactPatternDeterminism(t *testing.T) {
	c := newTestClassifier()

	// Single-token patterns so merchant extraction resolves to the pattern
	// itself; the suggested tag must not depend on the amount.
	patterns := map[string]string{
		"netflix":     "streaming",
		"spotify":     "streaming",
		"carrefour":   "courses",
		"lidl":        "courses",
		"casino":      "courses",
		"marche":      "courses",
		"mcdo":        "restaurant",
		"kfc":         "restaurant",
		"edf":         "electricite",
		"boulangerie": "courses",
	}

	for _, amount := range []float64{-1, -25, -120, -500} {
		for pattern, tag := range patterns {
			res := c.Classify(context.Background(), model.Transaction{Label: pattern, Amount: amount})
			assert.Equal(t, tag, res.SuggestedTag, "pattern %q amount %.2f", pattern, amount)
			assert.GreaterOrEqual(t, res.Confidence, 0.85, "pattern %q amount %.2f", pattern, amount)
		}
	}
}

func TestClassify_LearningShiftsSuggestion(t *testing.T) {
	store := learning.NewStore()
	c := New(patterndb.Default(), scoring.NewScorer(scoring.DefaultWeights())).WithLearning(store)
	ctx := context.Background()

	tx := model.Transaction{Label: "CHEZ GISELE", Amount: -18.40}

	before := c.Classify(ctx, tx)
	assert.Empty(t, before.SuggestedTag)

	adjBefore := store.Adjustment("chez", "restaurant")
	for i := 0; i < 3; i++ {
		store.RecordCorrection(ctx, "chez", "", "restaurant", false)
	}
	assert.Greater(t, store.Adjustment("chez", "restaurant"), adjBefore)

	// The cache would serve the stale result; learning updates are an
	// accepted staleness window, so use a fresh classifier view.
	c2 := NewWithConfig(patterndb.Default(), scoring.NewScorer(scoring.DefaultWeights()), Config{DisableCache: true}).WithLearning(store)
	after := c2.Classify(ctx, tx)
	assert.Equal(t, "restaurant", after.SuggestedTag)
	assert.GreaterOrEqual(t, after.Confidence, model.ConfidenceFloor)
	assert.Contains(t, after.DataSources, "user_feedback")
}

type stubResearcher struct {
	result service.ResearchResult
	err    error
	delay  time.Duration
	calls  int
}

func (s *stubResearcher) Research(ctx context.Context, _ string) (service.ResearchResult, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return service.ResearchResult{}, ctx.Err()
		}
	}
	return s.result, s.err
}

func TestClassify_ResearchEnrichesUnknownMerchant(t *testing.T) {
	stub := &stubResearcher{result: service.ResearchResult{Tag: "jardinage", ExpenseType: model.ExpenseVariable, Confidence: 0.88}}

	cfg := DefaultConfig()
	cfg.DisableCache = true
	cfg.ResearchMinInterval = time.Millisecond
	c := NewWithConfig(patterndb.Default(), scoring.NewScorer(scoring.DefaultWeights()), cfg).WithResearcher(stub)

	res := c.Classify(context.Background(), model.Transaction{Label: "JARDILAND QX", Amount: -54.30})

	assert.Equal(t, "jardinage", res.SuggestedTag)
	assert.InDelta(t, 0.88, res.Confidence, 1e-9)
	assert.Contains(t, res.DataSources, "web_research")
}

func TestClassify_ResearchTimeoutDegradesGracefully(t *testing.T) {
	stub := &stubResearcher{delay: time.Second, result: service.ResearchResult{Tag: "jardinage", Confidence: 0.9}}

	cfg := DefaultConfig()
	cfg.DisableCache = true
	cfg.ResearchTimeout = 20 * time.Millisecond
	cfg.ResearchMinInterval = time.Millisecond
	c := NewWithConfig(patterndb.Default(), scoring.NewScorer(scoring.DefaultWeights()), cfg).WithResearcher(stub)

	res := c.Classify(context.Background(), model.Transaction{Label: "ZZAQWSX", Amount: -12.00})

	// Timeout falls back to the local result: below the floor, no tag.
	assert.Empty(t, res.SuggestedTag)
	assert.Less(t, res.Confidence, 0.50)

	stats := c.Statistics()
	assert.Equal(t, int64(1), stats.ResearchCalls)
	assert.Equal(t, int64(1), stats.ResearchFailures)
}

func TestResearchGate_TimeoutError(t *testing.T) {
	stub := &stubResearcher{delay: time.Second}
	gate := newResearchGate(stub, 1, time.Millisecond, 10*time.Millisecond)

	_, err := gate.research(context.Background(), "somewhere")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrResearchTimeout)
	assert.True(t, common.IsRetryable(err))
}

func TestClassify_ConfidenceFloorHoldsEverywhere(t *testing.T) {
	c := newTestClassifier()

	labels := []string{"", "QQQ", "X Y Z", "PAIEMENT 12/01 #REF", "A1B2C3", "CHEZ GISELE"}
	for _, label := range labels {
		res := c.Classify(context.Background(), model.Transaction{Label: label, Amount: -17.35})
		if res.Confidence < model.ConfidenceFloor {
			assert.Empty(t, res.SuggestedTag, "label %q", label)
		}
	}
}

func TestClassify_ExistingTagConfirmsSuggestion(t *testing.T) {
	c := newTestClassifier()

	plain := c.Classify(context.Background(), model.Transaction{Label: "CASINO", Amount: -23.40})
	confirmed := c.Classify(context.Background(), model.Transaction{Label: "CASINO", Amount: -23.40, ExistingTags: []string{"courses"}})

	assert.Equal(t, plain.SuggestedTag, confirmed.SuggestedTag)
	assert.Greater(t, confirmed.Confidence, plain.Confidence)
	assert.Contains(t, confirmed.DataSources, "existing_tags")
}

func TestStatistics_PatternCount(t *testing.T) {
	c := newTestClassifier()
	stats := c.Statistics()
	assert.Equal(t, c.PatternCount(), stats.PatternCount)
	assert.Greater(t, stats.PatternCount, 100)
}
