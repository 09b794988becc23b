package model

import (
	"crypto/sha256"
	"fmt"
	"math"
	"time"
)

// Transaction is the classification input. It is owned by the caller's
// persistence layer; the classifier only reads it and returns a suggestion.
type Transaction struct {
	Date          *time.Time
	ID            string
	Label         string // Raw transaction description
	Description   string // Optional free-text detail
	PaymentMethod string // e.g. "prlv", "cb", "virement"
	ExistingTags  []string
	History       []HistoryEntry // Past transactions for the same merchant/tag
	Amount        float64
}

// HistoryEntry is one past transaction used for stability and frequency
// analysis. Entries with a zero date or amount are skipped, never fatal.
type HistoryEntry struct {
	Date   time.Time
	Label  string
	Amount float64
}

// CacheKey produces a stable key for memoizing classification results.
// Amounts are bucketed to the nearest integer so that minor price jitter
// still lands in the same entry.
func CacheKey(merchant string, amount float64) string {
	bucket := int64(math.Round(math.Abs(amount)))
	data := fmt.Sprintf("%s:%d", merchant, bucket)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash[:12])
}
