package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cassis-finance/cassis/internal/model"
)

func TestKeywordScore(t *testing.T) {
	s := NewScorer(DefaultWeights())

	tests := []struct {
		name    string
		text    string
		want    float64
		matches []string
	}{
		{
			name:    "all fixed keywords",
			text:    "abonnement netflix",
			want:    1.0,
			matches: []string{"abonnement", "netflix"},
		},
		{
			name:    "all variable keywords",
			text:    "retrait dab",
			want:    -1.0,
			matches: []string{"retrait", "dab"},
		},
		{
			name:    "mixed keywords net out",
			text:    "netflix carrefour",
			want:    (0.90 - 0.80) / (0.90 + 0.80),
			matches: []string{"netflix", "carrefour"},
		},
		{
			name: "no keywords",
			text: "zzqqww",
			want: 0,
		},
		{
			name: "keyword inside a longer token does not fire",
			text: "barometre",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matches := s.keywordScore(tt.text)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.matches, matches)
		})
	}
}

func TestMerchantScore(t *testing.T) {
	s := NewScorer(DefaultWeights())

	assert.Equal(t, 0.8, s.merchantScore("edf gdf facture"))
	assert.Equal(t, 0.8, s.merchantScore("assurance habitation macif"))
	assert.Equal(t, -0.8, s.merchantScore("restaurant gisele"))
	assert.Equal(t, -0.8, s.merchantScore("retrait dab paris"))
	assert.Equal(t, 0.0, s.merchantScore("zzqqww"))
}

func TestNgramScore(t *testing.T) {
	s := NewScorer(DefaultWeights())

	// One positive hint: averaged over 1 hit, then halved.
	assert.InDelta(t, 0.95/2, s.ngramScore("abonnement netflix premium"), 1e-9)
	assert.InDelta(t, -0.90/2, s.ngramScore("courses supermarche du coin"), 1e-9)
	assert.Equal(t, 0.0, s.ngramScore("zzqqww"))
}

func TestScore_PopulatesFactors(t *testing.T) {
	s := NewScorer(DefaultWeights())

	tx := model.Transaction{Label: "ABONNEMENT NETFLIX", Amount: -15.99}
	factors, matches := s.Score(tx, "netflix", "abonnement netflix")

	assert.InDelta(t, 1.0, factors.Keywords, 1e-9)
	assert.InDelta(t, 0.7, factors.Amount, 1e-9)
	assert.InDelta(t, 0.95/2, factors.NGrams, 1e-9)
	assert.Nil(t, factors.Stability)
	assert.Nil(t, factors.Frequency)
	assert.Equal(t, []string{"abonnement", "netflix"}, matches)
}

func TestCombine(t *testing.T) {
	s := NewScorer(DefaultWeights())
	one := 1.0
	zero := 0.0

	tests := []struct {
		name    string
		factors model.ConfidenceFactors
		amount  float64
		want    float64
	}{
		{
			name:    "keywords only",
			factors: model.ConfidenceFactors{Keywords: 1.0},
			amount:  -50,
			want:    0.40,
		},
		{
			name:    "history factors rescale from unit interval",
			factors: model.ConfidenceFactors{Stability: &one, Frequency: &one},
			amount:  -50,
			want:    0.20 + 0.12,
		},
		{
			name:    "unstable history pushes variable",
			factors: model.ConfidenceFactors{Stability: &zero},
			amount:  -50,
			want:    -0.20,
		},
		{
			name:    "missing history contributes nothing",
			factors: model.ConfidenceFactors{},
			amount:  -50,
			want:    0,
		},
		{
			name:    "large amount nudge",
			factors: model.ConfidenceFactors{},
			amount:  -1500,
			want:    largeNudge,
		},
		{
			name:    "tiny amount nudge",
			factors: model.ConfidenceFactors{},
			amount:  -3,
			want:    -largeNudge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Combine(tt.factors, tt.amount), 1e-9)
		})
	}
}

func TestDecide(t *testing.T) {
	s := NewScorer(DefaultWeights())

	tests := []struct {
		name     string
		combined float64
		wantType model.ExpenseType
		wantConf float64
	}{
		{"strong fixed", 0.4, model.ExpenseFixed, 0.92},
		{"capped fixed", 1.5, model.ExpenseFixed, 0.99},
		{"strong variable", -0.35, model.ExpenseVariable, 0.88},
		{"capped variable", -1.5, model.ExpenseVariable, 0.99},
		{"weak fixed", 0.2, model.ExpenseFixed, 0.60},
		{"weak variable", -0.2, model.ExpenseVariable, 0.60},
		{"threshold is exclusive", 0.3, model.ExpenseFixed, 0.65},
		{"tie defaults to variable", 0, model.ExpenseVariable, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotConf := s.Decide(tt.combined)
			assert.Equal(t, tt.wantType, gotType)
			assert.InDelta(t, tt.wantConf, gotConf, 1e-9)
		})
	}
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("retrait dab paris", "dab"))
	assert.True(t, containsWord("netflix.com premium", "netflix"))
	assert.True(t, containsWord("salle de sport forme", "salle de sport"))
	assert.False(t, containsWord("barometre", "bar"))
	assert.False(t, containsWord("abracadabra", "dab"))
}
