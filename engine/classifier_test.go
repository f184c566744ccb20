package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     Bucket
	}{
		{"equity scheme", "Equity - Large Cap", BucketEquity},
		{"elss", "ELSS Tax Saver", BucketEquity},
		{"index fund", "Index Fund", BucketEquity},
		{"debt scheme", "Debt Scheme - Liquid Fund", BucketDebt},
		{"gilt", "GILT", BucketDebt},
		{"money market", "Money Market Fund", BucketDebt},
		{"hybrid", "Hybrid - Balanced Advantage", BucketHybrid},
		{"arbitrage", "Arbitrage Fund", BucketHybrid},
		{"case insensitive", "eQuItY", BucketEquity},
		{"empty string", "", BucketOthers},
		{"whitespace only", "   ", BucketOthers},
		{"no match", "Commodities - Gold", BucketOthers},
		// equity keywords win over hybrid ones when both appear
		{"priority order", "Balanced Equity Fund", BucketEquity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCategory(tt.category))
		})
	}
}
