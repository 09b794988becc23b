// Package scoring implements the multi-factor confidence scorer that decides
// whether a transaction looks like a FIXED or a VARIABLE expense.
package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/cassis-finance/cassis/internal/model"
)

// Weights is the fixed-weight linear ensemble applied to the sub-scores.
// The raw weights deliberately sum to 1.57 so the combined signed score
// spans roughly [-1.5, 1.5]; the Decide thresholds are calibrated to that
// range.
type Weights struct {
	Keywords     float64
	Merchant     float64
	NGrams       float64
	Stability    float64
	Frequency    float64
	Amount       float64
	Time         float64
	Combinations float64
}

// DefaultWeights returns the canonical ensemble weights.
func DefaultWeights() Weights {
	return Weights{
		Keywords:     0.40,
		Merchant:     0.25,
		NGrams:       0.15,
		Stability:    0.20,
		Frequency:    0.12,
		Amount:       0.18,
		Time:         0.12,
		Combinations: 0.15,
	}
}

// Decision thresholds over the combined signed score.
const (
	fixedThreshold    = 0.3
	variableThreshold = -0.3
	largeNudge        = 0.1
)

// Scorer computes the independent sub-scores and combines them. It is
// immutable after construction and safe for concurrent use.
type Scorer struct {
	weights          Weights
	fixedKeywords    map[string]float64
	variableKeywords map[string]float64
	fixedMerchant    []*regexp.Regexp
	variableMerchant []*regexp.Regexp
	ngramHints       map[string]float64
}

// NewScorer builds a scorer with the default keyword, regex and n-gram
// tables.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{
		weights:          weights,
		fixedKeywords:    defaultFixedKeywords(),
		variableKeywords: defaultVariableKeywords(),
		fixedMerchant:    compileAll(defaultFixedMerchantPatterns()),
		variableMerchant: compileAll(defaultVariableMerchantPatterns()),
		ngramHints:       defaultNGramHints(),
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		// Table patterns are static; a compile failure is a programming
		// error surfaced in tests, not a runtime condition.
		if re, err := regexp.Compile(p); err == nil {
			out = append(out, re)
		}
	}
	return out
}

// Score computes all sub-scores for one transaction. text is the cleaned,
// lowercased label plus description; merchant is the extracted merchant.
// The returned keyword matches are sorted by descending weight.
func (s *Scorer) Score(tx model.Transaction, merchant, text string) (model.ConfidenceFactors, []string) {
	combined := strings.TrimSpace(merchant + " " + text)

	keywordScore, matches := s.keywordScore(combined)

	factors := model.ConfidenceFactors{
		Keywords:     keywordScore,
		Merchant:     s.merchantScore(combined),
		NGrams:       s.ngramScore(combined),
		Amount:       amountScore(tx.Amount),
		Time:         timeScore(tx.Date),
		Combinations: paymentScore(strings.ToLower(tx.PaymentMethod), tx.Amount, combined, s.fixedKeywords),
		Stability:    stabilityScore(tx.History),
		Frequency:    frequencyScore(tx.History),
	}

	return factors, matches
}

// keywordScore nets the fixed-leaning keyword weights against the
// variable-leaning ones: (fixed - variable) / max(1, fixed + variable).
func (s *Scorer) keywordScore(text string) (float64, []string) {
	type match struct {
		keyword string
		weight  float64
	}

	var fixedSum, variableSum float64
	var matches []match

	for kw, w := range s.fixedKeywords {
		if containsWord(text, kw) {
			fixedSum += w
			matches = append(matches, match{kw, w})
		}
	}
	for kw, w := range s.variableKeywords {
		if containsWord(text, kw) {
			variableSum += w
			matches = append(matches, match{kw, w})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].weight != matches[j].weight {
			return matches[i].weight > matches[j].weight
		}
		return matches[i].keyword < matches[j].keyword
	})
	var keywords []string
	for _, m := range matches {
		keywords = append(keywords, m.keyword)
	}

	denom := math.Max(1, fixedSum+variableSum)
	return (fixedSum - variableSum) / denom, keywords
}

// merchantScore contributes +-0.8 when a known merchant regex matches.
func (s *Scorer) merchantScore(text string) float64 {
	for _, re := range s.fixedMerchant {
		if re.MatchString(text) {
			return 0.8
		}
	}
	for _, re := range s.variableMerchant {
		if re.MatchString(text) {
			return -0.8
		}
	}
	return 0
}

// ngramScore averages the signed weights of curated bigram/trigram hits and
// halves the result to limit its influence.
func (s *Scorer) ngramScore(text string) float64 {
	sum := 0.0
	hits := 0
	for gram, weight := range s.ngramHints {
		if strings.Contains(text, gram) {
			sum += weight
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	return sum / float64(hits) / 2
}

// Combine folds the sub-scores into one signed score. Stability and
// frequency are rescaled from [0,1] to [-1,1] (stable and regular lean
// FIXED). Very large or very small amounts add a final +-0.1 nudge.
func (s *Scorer) Combine(f model.ConfidenceFactors, amount float64) float64 {
	w := s.weights

	score := w.Keywords*f.Keywords +
		w.Merchant*f.Merchant +
		w.NGrams*f.NGrams +
		w.Amount*f.Amount +
		w.Time*f.Time +
		w.Combinations*f.Combinations

	if f.Stability != nil {
		score += w.Stability * (2**f.Stability - 1)
	}
	if f.Frequency != nil {
		score += w.Frequency * (2**f.Frequency - 1)
	}

	abs := math.Abs(amount)
	switch {
	case abs > largeAmountFloor:
		score += largeNudge
	case abs > 0 && abs < smallAmountCeiling:
		score -= largeNudge
	}

	return score
}

// Decide maps a combined signed score to an expense type and a type
// confidence. Strong signals (|s| > 0.3) scale confidence up from 0.6; weak
// signals stay near the floor, with ties defaulting to VARIABLE.
func (s *Scorer) Decide(combined float64) (model.ExpenseType, float64) {
	switch {
	case combined > fixedThreshold:
		return model.ExpenseFixed, math.Min(0.99, 0.6+0.8*combined)
	case combined < variableThreshold:
		return model.ExpenseVariable, math.Min(0.99, 0.6+0.8*math.Abs(combined))
	case combined > 0:
		return model.ExpenseFixed, 0.50 + 0.5*combined
	default:
		return model.ExpenseVariable, 0.50 + 0.5*math.Abs(combined)
	}
}

// Weights returns the ensemble weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

func containsAny(text string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

// containsWord reports whether the keyword appears in the text. Multi-word
// keywords match as substrings; single words match on token boundaries so
// "bar" does not fire inside "barometre".
func containsWord(text, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(text, keyword)
	}
	idx := 0
	for {
		i := strings.Index(text[idx:], keyword)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(keyword)
		beforeOK := start == 0 || !isAlnum(text[start-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
