package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTxns() []Txn {
	return []Txn{
		{ProductID: "EQ1", SchemeName: "Bluechip Growth", Type: "PURCHASE", Amount: 60000, Units: 600, Category: "Equity - Large Cap"},
		{ProductID: "DB1", SchemeName: "Short Duration Debt", Type: "PURCHASE", Amount: 40000, Units: 400, Category: "Debt - Short Duration"},
		{ProductID: "DB1", SchemeName: "Short Duration Debt", Type: "REDEMPTION", Amount: 10000, Units: 100, Category: "Debt - Short Duration"},
	}
}

func TestBuildPortfolioReplaysHistory(t *testing.T) {
	p := BuildPortfolio(sampleTxns(), 0)

	assert.InDelta(t, 90000, p.TotalInvested, 0.01)
	assert.InDelta(t, 90000, p.TotalValue, 0.01)
	assert.InDelta(t, 0, p.GainLoss, 0.01)

	assert.InDelta(t, 66.6667, p.Allocation.Equity, 0.01)
	assert.InDelta(t, 33.3333, p.Allocation.Debt, 0.01)
	assert.Zero(t, p.Allocation.Hybrid)
	assert.Zero(t, p.Allocation.Others)

	require.Len(t, p.Holdings, 2)
	assert.Equal(t, "EQ1", p.Holdings[0].ProductID)
	assert.InDelta(t, 600, p.Holdings[0].Units, 0.001)
	assert.InDelta(t, 60000, p.Holdings[0].InvestedAmount, 0.01)
	assert.Equal(t, BucketEquity, p.Holdings[0].Bucket)

	assert.Equal(t, "DB1", p.Holdings[1].ProductID)
	assert.InDelta(t, 300, p.Holdings[1].Units, 0.001)
	assert.InDelta(t, 30000, p.Holdings[1].InvestedAmount, 0.01)
}

func TestBuildPortfolioPrefersStoredValue(t *testing.T) {
	p := BuildPortfolio(sampleTxns(), 100000)

	assert.InDelta(t, 100000, p.TotalValue, 0.01)
	assert.InDelta(t, 10000, p.GainLoss, 0.01)
}

func TestBuildPortfolioAllocationSumsTo100(t *testing.T) {
	p := BuildPortfolio(sampleTxns(), 0)

	sum := p.Allocation.Equity + p.Allocation.Debt + p.Allocation.Hybrid + p.Allocation.Others
	assert.InDelta(t, 100, sum, 0.01)
}

func TestBuildPortfolioEmptyHistory(t *testing.T) {
	p := BuildPortfolio(nil, 0)

	assert.Zero(t, p.TotalInvested)
	assert.Zero(t, p.TotalValue)
	assert.Zero(t, p.Allocation.Equity+p.Allocation.Debt+p.Allocation.Hybrid+p.Allocation.Others)
	assert.Empty(t, p.Holdings)
}

func TestBuildPortfolioFloorsOverRedemption(t *testing.T) {
	txns := []Txn{
		{ProductID: "DB1", Type: "PURCHASE", Amount: 5000, Units: 50, Category: "Liquid Fund"},
		{ProductID: "DB1", Type: "REDEMPTION", Amount: 9000, Units: 90, Category: "Liquid Fund"},
	}
	p := BuildPortfolio(txns, 0)

	// fully redeemed positions drop out and nothing goes negative
	assert.Empty(t, p.Holdings)
	assert.Zero(t, p.Allocation.Debt)
	assert.GreaterOrEqual(t, p.TotalInvested, 0.0)
}

func TestBuildPortfolioDropsZeroUnitHoldings(t *testing.T) {
	txns := []Txn{
		{ProductID: "EQ1", SchemeName: "Bluechip", Type: "PURCHASE", Amount: 10000, Units: 100, Category: "Equity"},
		{ProductID: "EQ1", SchemeName: "Bluechip", Type: "REDEMPTION", Amount: 10000, Units: 100, Category: "Equity"},
		{ProductID: "EQ2", SchemeName: "Midcap", Type: "PURCHASE", Amount: 5000, Units: 25, Category: "Equity - Mid Cap"},
	}
	p := BuildPortfolio(txns, 0)

	require.Len(t, p.Holdings, 1)
	assert.Equal(t, "EQ2", p.Holdings[0].ProductID)
}
