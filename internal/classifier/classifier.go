// Package classifier orchestrates expense classification: text
// normalization, pattern lookup, multi-factor scoring, learning adjustments
// and optional web research, behind a single error-contained entry point.
package classifier

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cassis-finance/cassis/internal/cache"
	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/model"
	"github.com/cassis-finance/cassis/internal/normalize"
	"github.com/cassis-finance/cassis/internal/patterndb"
	"github.com/cassis-finance/cassis/internal/scoring"
	"github.com/cassis-finance/cassis/internal/service"
)

// Config holds tuning knobs for the classifier.
type Config struct {
	CacheTTL              time.Duration
	CacheSize             int
	DisableCache          bool
	FastPathStrength      float64 // pattern strength that short-circuits the scorer
	HighConfidence        float64 // threshold counted as high confidence in stats
	ResearchMaxConcurrent int
	ResearchMinInterval   time.Duration
	ResearchTimeout       time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheTTL:              15 * time.Minute,
		CacheSize:             1000,
		FastPathStrength:      0.85,
		HighConfidence:        0.80,
		ResearchMaxConcurrent: 3,
		ResearchMinInterval:   500 * time.Millisecond,
		ResearchTimeout:       5 * time.Second,
	}
}

// LearningSource is the learning-store surface the classifier reads.
type LearningSource interface {
	service.FeedbackSource
}

// Classifier is the classification orchestrator. It is safe for concurrent
// use; the pattern database and scorer are read-only, and the cache and
// learning store synchronize internally.
type Classifier struct {
	db       *patterndb.DB
	scorer   *scoring.Scorer
	cache    *cache.Cache[model.Result]
	learning LearningSource
	research *researchGate
	config   Config
	stats    statsCounters
}

// New creates a classifier with the default configuration.
func New(db *patterndb.DB, scorer *scoring.Scorer) *Classifier {
	return NewWithConfig(db, scorer, DefaultConfig())
}

// NewWithConfig creates a classifier with a custom configuration.
func NewWithConfig(db *patterndb.DB, scorer *scoring.Scorer, cfg Config) *Classifier {
	if cfg.FastPathStrength <= 0 {
		cfg.FastPathStrength = 0.85
	}
	if cfg.HighConfidence <= 0 {
		cfg.HighConfidence = 0.80
	}

	c := &Classifier{
		db:     db,
		scorer: scorer,
		config: cfg,
	}
	if !cfg.DisableCache {
		c.cache = cache.New[model.Result](cfg.CacheTTL, cfg.CacheSize)
	}
	return c
}

// WithLearning attaches a learning store whose adjustments and feedback
// scores bias future classifications.
func (c *Classifier) WithLearning(l LearningSource) *Classifier {
	c.learning = l
	return c
}

// WithResearcher attaches the external web-research collaborator, gated per
// the configured concurrency bound, spacing and timeout.
func (c *Classifier) WithResearcher(r service.Researcher) *Classifier {
	c.research = newResearchGate(r, c.config.ResearchMaxConcurrent, c.config.ResearchMinInterval, c.config.ResearchTimeout)
	return c
}

// Classify runs the full pipeline for one transaction. It never returns an
// error: malformed input degrades to a low-confidence result, and every
// internal failure is contained as "feature unavailable".
func (c *Classifier) Classify(ctx context.Context, tx model.Transaction) model.Result {
	start := time.Now()

	cleanLabel := normalize.CleanLabel(tx.Label)
	text := cleanLabel
	if desc := normalize.CleanLabel(tx.Description); desc != "" {
		text = strings.TrimSpace(text + " " + desc)
	}
	merchant := normalize.Merchant(cleanLabel, c.db.Has)

	// The cache key carries only merchant and amount, but history changes
	// the result (stability and frequency factors), so history-bearing calls
	// bypass the cache in both directions.
	cacheKey := model.CacheKey(merchant, tx.Amount)
	useCache := c.cache != nil && len(tx.History) == 0
	if useCache {
		if cached, ok := c.cache.Get(cacheKey); ok {
			c.stats.recordHit(cached.Confidence >= c.config.HighConfidence)
			cached = confirmExistingTag(tx, cached)
			cached.CachedResult = true
			cached.ProcessingTime = time.Since(start)
			return cached
		}
	}

	result := c.classify(ctx, tx, merchant, text)

	// Cached entries are shared across callers, so the caller-specific
	// existing-tag confirmation is applied outside the cache.
	if useCache {
		stored := result
		stored.CachedResult = false
		c.cache.Put(cacheKey, stored)
	}
	result = confirmExistingTag(tx, result)
	result.ProcessingTime = time.Since(start)

	c.stats.recordMiss(result.Confidence >= c.config.HighConfidence, contains(result.DataSources, "pattern_matching") && len(result.DataSources) == 1)
	return result
}

// confirmExistingTag boosts a suggestion the caller has already applied to
// the transaction.
func confirmExistingTag(tx model.Transaction, r model.Result) model.Result {
	if r.SuggestedTag == "" {
		return r
	}
	for _, tag := range tx.ExistingTags {
		if strings.EqualFold(tag, r.SuggestedTag) {
			r.Confidence = math.Min(0.99, r.Confidence+0.05)
			r.DataSources = append(append([]string{}, r.DataSources...), "existing_tags")
			return r
		}
	}
	return r
}

func (c *Classifier) classify(ctx context.Context, tx model.Transaction, merchant, text string) model.Result {
	entry, strength := c.db.Lookup(merchant, text)

	// Fast path: a strong pattern match answers without the full scorer.
	// Skipped when history is supplied so stability and frequency scores
	// are always populated for callers that provide history.
	if entry != nil && strength >= c.config.FastPathStrength && len(tx.History) == 0 {
		return c.fastPathResult(merchant, entry, strength)
	}

	factors, keywordMatches := c.scorer.Score(tx, merchant, text)
	combined := c.scorer.Combine(factors, tx.Amount)
	expenseType, typeConfidence := c.scorer.Decide(combined)

	tag, tagConfidence, sources, alternatives := c.pickTag(ctx, merchant, entry, strength, expenseType, combined)

	if c.learning != nil {
		factors.UserFeedback = c.feedbackFactor(merchant)
	}

	explanation := c.explain(merchant, entry, strength, expenseType, combined)

	return model.NewResult(model.Result{
		SuggestedTag:          tag,
		Confidence:            tagConfidence,
		ExpenseType:           expenseType,
		ExpenseTypeConfidence: typeConfidence,
		Explanation:           explanation,
		ContributingFactors:   contributingFactors(factors),
		AlternativeTags:       alternatives,
		KeywordMatches:        topN(keywordMatches, 5),
		DataSources:           sources,
		Factors:               factors,
		StabilityScore:        factors.Stability,
		FrequencyScore:        factors.Frequency,
	})
}

// fastPathResult builds the short-circuit result for a strong pattern match.
func (c *Classifier) fastPathResult(merchant string, entry *model.PatternEntry, strength float64) model.Result {
	confidence := strength * entry.Confidence
	if strength == 1.0 && confidence < 0.85 {
		// Exact equality with a known pattern is treated as decisive even
		// when the entry carries a modest prior.
		confidence = 0.85
	}
	confidence = c.applyAdjustment(merchant, entry.Tag, confidence)

	return model.NewResult(model.Result{
		SuggestedTag:          entry.Tag,
		Confidence:            confidence,
		ExpenseType:           entry.ExpenseType,
		ExpenseTypeConfidence: confidence,
		Explanation:           fmt.Sprintf("pattern match %q (strength %.2f)", entry.Pattern, strength),
		ContributingFactors:   []string{fmt.Sprintf("pattern %q: %.2f", entry.Pattern, strength)},
		KeywordMatches:        []string{entry.Pattern},
		DataSources:           []string{"pattern_matching"},
	})
}

// pickTag selects the suggested tag from pattern, feedback and research
// candidates, in that order of preference, returning the winner's confidence
// with the learning adjustment applied.
func (c *Classifier) pickTag(ctx context.Context, merchant string, entry *model.PatternEntry, strength float64, expenseType model.ExpenseType, combined float64) (string, float64, []string, []string) {
	sources := []string{"heuristic_scoring"}
	var alternatives []string

	tag := ""
	confidence := 0.30 + 0.1*math.Min(1.5, math.Abs(combined))

	if entry != nil && strength > 0 {
		tag = entry.Tag
		confidence = strength * entry.Confidence
		if entry.ExpenseType == expenseType {
			confidence = math.Min(0.99, confidence+0.05)
		}
		sources = append(sources, "pattern_matching")
	}

	if c.learning != nil {
		if fbTag, fbScore := c.learning.FeedbackScore(merchant); fbTag != "" && fbScore > 0 {
			fbConfidence := 0.45 + 0.25*fbScore
			if fbTag == tag {
				confidence = math.Max(confidence, fbConfidence)
			} else if fbConfidence > confidence {
				if tag != "" {
					alternatives = append(alternatives, tag)
				}
				tag = fbTag
				confidence = fbConfidence
				sources = append(sources, "user_feedback")
			} else {
				alternatives = append(alternatives, fbTag)
			}
		}
	}

	// Research is a last resort for merchants the local tables cannot tag
	// with actionable confidence.
	if c.research != nil && confidence < model.ConfidenceFloor {
		if res, err := c.researchMerchant(ctx, merchant); err == nil && res.Tag != "" && res.Confidence > confidence {
			if tag != "" {
				alternatives = append(alternatives, tag)
			}
			tag = res.Tag
			confidence = res.Confidence
			sources = append(sources, "web_research")
		}
	}

	confidence = c.applyAdjustment(merchant, tag, confidence)
	return tag, confidence, sources, alternatives
}

func (c *Classifier) researchMerchant(ctx context.Context, merchant string) (service.ResearchResult, error) {
	if merchant == "" {
		return service.ResearchResult{}, fmt.Errorf("%w: no merchant extracted", common.ErrResearchUnavailable)
	}

	c.stats.recordResearch()
	res, err := c.research.research(ctx, merchant)
	if err != nil {
		c.stats.recordResearchFailure()
		common.LogDebug("Web research unavailable", common.Fields{"merchant": merchant, "error": err})
		return service.ResearchResult{}, err
	}
	return res, nil
}

// applyAdjustment nudges a tag confidence by the learning store's signed
// adjustment, clipped to [0,1]. A failing or absent store is neutral.
func (c *Classifier) applyAdjustment(merchant, tag string, confidence float64) float64 {
	if c.learning == nil || tag == "" {
		return confidence
	}
	adjusted := confidence + c.learning.Adjustment(merchant, tag)
	return math.Max(0, math.Min(1, adjusted))
}

func (c *Classifier) feedbackFactor(merchant string) float64 {
	_, score := c.learning.FeedbackScore(merchant)
	return score
}

func (c *Classifier) explain(merchant string, entry *model.PatternEntry, strength float64, expenseType model.ExpenseType, combined float64) string {
	parts := make([]string, 0, 3)
	if merchant != "" {
		parts = append(parts, fmt.Sprintf("merchant %q", merchant))
	}
	if entry != nil && strength > 0 {
		parts = append(parts, fmt.Sprintf("pattern %q matched at %.2f", entry.Pattern, strength))
	}
	parts = append(parts, fmt.Sprintf("ensemble score %+.2f leans %s", combined, expenseType))
	return strings.Join(parts, "; ")
}

// contributingFactors renders the material sub-scores, strongest first,
// capped at five.
func contributingFactors(f model.ConfidenceFactors) []string {
	type factor struct {
		name  string
		value float64
	}

	candidates := []factor{
		{"keywords", f.Keywords},
		{"merchant", f.Merchant},
		{"ngrams", f.NGrams},
		{"amount", f.Amount},
		{"time", f.Time},
		{"payment_method", f.Combinations},
		{"user_feedback", f.UserFeedback},
	}
	if f.Stability != nil {
		candidates = append(candidates, factor{"stability", *f.Stability})
	}
	if f.Frequency != nil {
		candidates = append(candidates, factor{"frequency", *f.Frequency})
	}

	const materiality = 0.05
	material := make([]factor, 0, len(candidates))
	for _, cand := range candidates {
		if math.Abs(cand.value) >= materiality {
			material = append(material, cand)
		}
	}
	sort.Slice(material, func(i, j int) bool {
		if math.Abs(material[i].value) != math.Abs(material[j].value) {
			return math.Abs(material[i].value) > math.Abs(material[j].value)
		}
		return material[i].name < material[j].name
	})

	if len(material) > 5 {
		material = material[:5]
	}
	out := make([]string, len(material))
	for i, m := range material {
		out[i] = fmt.Sprintf("%s: %+.2f", m.name, m.value)
	}
	return out
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

// ResearchEnabled reports whether a web-research collaborator is attached.
func (c *Classifier) ResearchEnabled() bool {
	return c.research != nil
}

// PatternCount exposes the size of the pattern database for statistics.
func (c *Classifier) PatternCount() int {
	return c.db.Count()
}
