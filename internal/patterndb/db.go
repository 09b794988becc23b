// Package patterndb provides the immutable merchant pattern database used for
// expense tagging. A database is built once at startup and is safe for
// unlimited concurrent readers.
package patterndb

import (
	"strings"

	"github.com/cassis-finance/cassis/internal/model"
	"github.com/cassis-finance/cassis/internal/normalize"
)

// Strength thresholds and boosts for the lookup stages.
const (
	containmentBoost = 1.3
	ngramStrengthCap = 0.98
	substringCap     = 0.95
	fuzzyFloor       = 0.5
	fuzzyThreshold   = 0.8
	fuzzyStrength    = 0.7
	// Short patterns share grams with unrelated merchants ("auchan" overlaps
	// "unknown_merchant_xyz_123" at 5/9); without literal containment the
	// overlap stays below the fuzzy floor so it can never tag on its own.
	uncontainedCap = 0.4
)

type compiledEntry struct {
	entry  model.PatternEntry
	ngrams map[string]struct{}
}

// DB is an immutable pattern database. Entries keep their insertion order so
// that exact ties resolve deterministically to the first-inserted pattern.
type DB struct {
	entries []compiledEntry
	exact   map[string]int // pattern -> index of first entry
}

// New builds a database from the given entries. Patterns are lowercased;
// entries with an empty pattern or tag are dropped.
func New(entries []model.PatternEntry) *DB {
	db := &DB{
		exact: make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		e.Pattern = strings.ToLower(strings.TrimSpace(e.Pattern))
		if e.Pattern == "" || e.Tag == "" {
			continue
		}
		if e.Confidence <= 0 || e.Confidence > 1 {
			e.Confidence = 0.5
		}
		if !e.ExpenseType.Valid() {
			e.ExpenseType = model.ExpenseVariable
		}
		db.entries = append(db.entries, compiledEntry{
			entry:  e,
			ngrams: normalize.NGrams(e.Pattern),
		})
		if _, ok := db.exact[e.Pattern]; !ok {
			db.exact[e.Pattern] = len(db.entries) - 1
		}
	}

	return db
}

// Default builds the database from the built-in pattern table.
func Default() *DB {
	return New(DefaultPatterns())
}

// Has reports whether the exact pattern exists in the database. The text
// normalizer uses it to prefer known multi-token merchant prefixes.
func (db *DB) Has(pattern string) bool {
	_, ok := db.exact[strings.ToLower(pattern)]
	return ok
}

// Count returns the number of entries.
func (db *DB) Count() int {
	return len(db.entries)
}

// Entries returns a copy of all pattern entries in insertion order.
func (db *DB) Entries() []model.PatternEntry {
	out := make([]model.PatternEntry, len(db.entries))
	for i, ce := range db.entries {
		out[i] = ce.entry
	}
	return out
}

// ByCategory groups the entries by business category.
func (db *DB) ByCategory() map[string][]model.PatternEntry {
	out := make(map[string][]model.PatternEntry)
	for _, ce := range db.entries {
		out[ce.entry.Category] = append(out[ce.entry.Category], ce.entry)
	}
	return out
}

// Lookup finds the best matching pattern for a cleaned merchant and the full
// cleaned label. Matching stages, strictly in priority order:
//
//  1. exact equality between pattern and merchant: strength 1.0
//  2. n-gram overlap: overlap count / pattern n-gram count, boosted 1.3x
//     (capped at 0.98) when the raw pattern is contained in merchant or label,
//     capped at 0.4 when it is not
//  3. substring containment: min(len(pattern)/len(merchant) * 1.2, 0.95)
//  4. fuzzy positional similarity, only when nothing above reached 0.5:
//     fixed strength 0.7 when similarity >= 0.8
//
// The highest-strength candidate wins; exact ties go to the first-inserted
// pattern. Returns (nil, 0) when nothing matches at all.
func (db *DB) Lookup(merchant, label string) (*model.PatternEntry, float64) {
	if merchant == "" && label == "" {
		return nil, 0
	}

	if idx, ok := db.exact[merchant]; ok {
		e := db.entries[idx].entry
		return &e, 1.0
	}

	merchantGrams := normalize.NGrams(merchant)
	labelGrams := normalize.NGrams(label)
	target := make(map[string]struct{}, len(merchantGrams)+len(labelGrams))
	for g := range merchantGrams {
		target[g] = struct{}{}
	}
	for g := range labelGrams {
		target[g] = struct{}{}
	}

	var best *model.PatternEntry
	bestStrength := 0.0

	for i := range db.entries {
		ce := &db.entries[i]
		strength := db.entryStrength(ce, merchant, label, target)
		if strength > bestStrength {
			e := ce.entry
			best = &e
			bestStrength = strength
		}
	}

	if bestStrength >= fuzzyFloor {
		return best, bestStrength
	}

	// Fuzzy fallback: first entry whose positional similarity clears the
	// threshold wins at a fixed strength.
	for i := range db.entries {
		if normalize.Similarity(db.entries[i].entry.Pattern, merchant) >= fuzzyThreshold {
			e := db.entries[i].entry
			return &e, fuzzyStrength
		}
	}

	if best == nil {
		return nil, 0
	}
	return best, bestStrength
}

// entryStrength computes the best non-fuzzy strength for one entry.
func (db *DB) entryStrength(ce *compiledEntry, merchant, label string, target map[string]struct{}) float64 {
	pattern := ce.entry.Pattern
	contained := (merchant != "" && strings.Contains(merchant, pattern)) ||
		(label != "" && strings.Contains(label, pattern))

	strength := 0.0
	if len(ce.ngrams) > 0 {
		overlap := normalize.NGramOverlap(ce.ngrams, target)
		if overlap > 0 {
			s := float64(overlap) / float64(len(ce.ngrams))
			if contained {
				s *= containmentBoost
				if s > ngramStrengthCap {
					s = ngramStrengthCap
				}
			} else if s > uncontainedCap {
				s = uncontainedCap
			}
			strength = s
		}
	}

	if contained && merchant != "" {
		s := float64(len(pattern)) / float64(len(merchant)) * 1.2
		if s > substringCap {
			s = substringCap
		}
		if s > strength {
			strength = s
		}
	}

	return strength
}
