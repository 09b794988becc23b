package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/cassis-finance/cassis/internal/model"
)

// Amount-shape constants.
var subscriptionPricePoints = []float64{
	2.99, 4.99, 5.99, 6.99, 7.99, 8.99, 9.99, 10.99, 11.99, 12.99,
	13.49, 13.99, 14.99, 15.99, 17.99, 19.99, 24.99, 29.99, 39.99, 49.99,
}

const (
	pricePointTolerance = 0.02
	smallAmountCeiling  = 5.0
	largeAmountFloor    = 1000.0
	// Typical monthly insurance/utility band.
	recurringBandLow  = 15.0
	recurringBandHigh = 300.0
)

// amountScore rates the shape of the amount. Subscription-like price points
// and large commitments lean FIXED; tiny impulse amounts lean VARIABLE.
func amountScore(amount float64) float64 {
	abs := math.Abs(amount)
	if abs == 0 {
		return 0
	}

	if abs > largeAmountFloor {
		return 1.0
	}
	if abs < smallAmountCeiling {
		return -0.6
	}

	// Round multiples of 10 above 20 often correspond to standing orders.
	// Checked before the price points so 50.00 is not absorbed by the 49.99
	// tolerance.
	if abs > 20 && math.Mod(abs, 10) == 0 {
		return 0.3
	}

	for _, p := range subscriptionPricePoints {
		if math.Abs(abs-p) <= pricePointTolerance {
			return 0.7
		}
	}

	if abs >= recurringBandLow && abs <= recurringBandHigh {
		return 0.1
	}

	return 0
}

// timeScore rates when the transaction happened. Bill season and automated
// transfer hours lean FIXED; weekends and meal times lean VARIABLE.
func timeScore(date *time.Time) float64 {
	if date == nil {
		return 0
	}

	score := 0.0

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		score -= 0.15
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
	}

	switch day := date.Day(); {
	case day >= 1 && day <= 5:
		score += 0.20 // bill season
	case day >= 15 && day <= 18:
		score += 0.15 // salary-aligned debits
	}

	switch hour := date.Hour(); {
	case hour >= 0 && hour <= 6:
		score += 0.15 // automated transfers
	case hour >= 11 && hour <= 14:
		score -= 0.10 // lunch
	case hour >= 18 && hour <= 22:
		score -= 0.10 // evening leisure
	}

	return score
}

// paymentScore rates the payment method combined with the amount and label.
// Direct debits are a strong FIXED signal, ATM withdrawals a near-certain
// VARIABLE one.
func paymentScore(method string, amount float64, text string, fixedKeywords map[string]float64) float64 {
	abs := math.Abs(amount)

	switch {
	case containsAny(method, "prlv", "prelevement", "domiciliation", "tip"):
		score := 0.5
		for kw := range fixedKeywords {
			if kw != "prlv" && kw != "prelevement" && containsWord(text, kw) {
				score = 0.8
				break
			}
		}
		return score
	case containsAny(method, "retrait", "dab", "gab", "atm"):
		return -0.95
	case containsAny(method, "virement", "vir"):
		if abs > 300 {
			return 0.20
		}
		return 0
	case containsAny(method, "cb", "carte", "card"):
		if abs > 0 && abs < 10 {
			return -0.15
		}
		return 0
	}

	return 0
}

// stabilityThreshold is the coefficient-of-variation ceiling under which
// historical amounts count as stable.
const stabilityThreshold = 0.15

// stabilityScore computes the inverse coefficient of variation of historical
// amounts. Requires at least 3 valid entries; returns nil otherwise.
// Malformed entries are skipped, never fatal.
func stabilityScore(history []model.HistoryEntry) *float64 {
	amounts := make([]float64, 0, len(history))
	for _, h := range history {
		if h.Amount == 0 {
			continue
		}
		amounts = append(amounts, math.Abs(h.Amount))
	}
	if len(amounts) < 3 {
		return nil
	}

	mean := 0.0
	for _, a := range amounts {
		mean += a
	}
	mean /= float64(len(amounts))
	if mean == 0 {
		return nil
	}

	variance := 0.0
	for _, a := range amounts {
		variance += (a - mean) * (a - mean)
	}
	variance /= float64(len(amounts))
	cv := math.Sqrt(variance) / mean

	score := math.Max(0, 1-cv/stabilityThreshold)
	if score > 1 {
		score = 1
	}
	return &score
}

// Interval bands considered regular, in days.
var regularityBands = []struct {
	low, high float64
	score     float64
}{
	{25, 35, 1.0}, // monthly
	{6, 8, 0.9},   // weekly
	{85, 95, 0.8}, // quarterly
}

// frequencyScore rates the regularity of the intervals between dated history
// entries. Requires at least 3 dated entries; returns nil otherwise.
func frequencyScore(history []model.HistoryEntry) *float64 {
	dates := make([]time.Time, 0, len(history))
	for _, h := range history {
		if h.Date.IsZero() {
			continue
		}
		dates = append(dates, h.Date)
	}
	if len(dates) < 3 {
		return nil
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	intervals := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		days := dates[i].Sub(dates[i-1]).Hours() / 24
		if days <= 0 {
			continue
		}
		intervals = append(intervals, days)
	}
	if len(intervals) < 2 {
		return nil
	}

	mean := 0.0
	for _, iv := range intervals {
		mean += iv
	}
	mean /= float64(len(intervals))

	base := 0.2
	for _, band := range regularityBands {
		if mean >= band.low && mean <= band.high {
			base = band.score
			break
		}
	}

	variance := 0.0
	for _, iv := range intervals {
		variance += (iv - mean) * (iv - mean)
	}
	variance /= float64(len(intervals))
	cv := 0.0
	if mean > 0 {
		cv = math.Sqrt(variance) / mean
	}

	score := base * math.Max(0, 1-cv)
	if score > 1 {
		score = 1
	}
	return &score
}
