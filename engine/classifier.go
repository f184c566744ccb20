package engine

import "strings"

// Keyword lists are checked in priority order: equity wins over debt wins
// over hybrid. AMFI category names are free text, so containment matching
// is deliberate (e.g. "Equity - ELSS", "Debt Scheme - Liquid Fund").
var (
	equityKeywords = []string{"equity", "elss", "index", "large cap", "mid cap", "small cap", "flexi cap", "sectoral", "thematic"}
	debtKeywords   = []string{"debt", "bond", "gilt", "liquid", "money market", "overnight", "ultra short", "corporate", "credit risk", "income"}
	hybridKeywords = []string{"hybrid", "balanced", "multi asset", "arbitrage", "dynamic asset"}
)

// ClassifyCategory maps a free-text product category to a canonical bucket.
// It is total: every input, including the empty string, yields a bucket.
func ClassifyCategory(category string) Bucket {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return BucketOthers
	}
	for _, kw := range equityKeywords {
		if strings.Contains(c, kw) {
			return BucketEquity
		}
	}
	for _, kw := range debtKeywords {
		if strings.Contains(c, kw) {
			return BucketDebt
		}
	}
	for _, kw := range hybridKeywords {
		if strings.Contains(c, kw) {
			return BucketHybrid
		}
	}
	return BucketOthers
}
