package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRedemptionStandard(t *testing.T) {
	calc, err := CalculateRedemption(RedemptionInput{
		SchemeName: "Liquid Advantage",
		NAV:        50,
		Units:      100,
		Type:       RedemptionStandard,
	})
	require.NoError(t, err)

	assert.InDelta(t, 5000, calc.GrossAmount, 0.001)
	assert.InDelta(t, 1, calc.ExitLoadPercent, 0.001)
	assert.InDelta(t, 50, calc.ExitLoadAmount, 0.001)
	assert.InDelta(t, 4950, calc.NetAmount, 0.001)
	assert.InDelta(t, 495, calc.TDS, 0.001)
	assert.InDelta(t, 4455, calc.FinalAmount, 0.001)

	// final = gross - exit load - tds holds exactly
	assert.InDelta(t, calc.GrossAmount-calc.ExitLoadAmount-calc.TDS, calc.FinalAmount, 1e-9)
}

func TestCalculateRedemptionDerivesUnitsFromAmount(t *testing.T) {
	calc, err := CalculateRedemption(RedemptionInput{
		NAV:    25,
		Amount: 5000,
		Type:   RedemptionInstant,
	})
	require.NoError(t, err)

	assert.InDelta(t, 200, calc.Units, 0.001)
	assert.InDelta(t, 5000, calc.GrossAmount, 0.001)
	// instant skips exit load but withholds tds
	assert.Zero(t, calc.ExitLoadAmount)
	assert.InDelta(t, 500, calc.TDS, 0.001)
	assert.InDelta(t, 4500, calc.FinalAmount, 0.001)
}

func TestCalculateRedemptionFullSkipsLoadAndTDS(t *testing.T) {
	calc, err := CalculateRedemption(RedemptionInput{
		NAV:   10,
		Units: 1000,
		Type:  RedemptionFull,
	})
	require.NoError(t, err)

	assert.Zero(t, calc.ExitLoadAmount)
	assert.Zero(t, calc.TDS)
	assert.InDelta(t, 10000, calc.FinalAmount, 0.001)
}

func TestCalculateRedemptionSettlementDates(t *testing.T) {
	instant, err := CalculateRedemption(RedemptionInput{NAV: 10, Units: 500, Type: RedemptionInstant})
	require.NoError(t, err)
	standard, err := CalculateRedemption(RedemptionInput{NAV: 10, Units: 500, Type: RedemptionStandard})
	require.NoError(t, err)

	instantAt, err := time.Parse(time.RFC3339, instant.SettlementDate)
	require.NoError(t, err)
	standardAt, err := time.Parse(time.RFC3339, standard.SettlementDate)
	require.NoError(t, err)

	now := time.Now()
	assert.WithinDuration(t, now.Add(time.Hour), instantAt, 2*time.Minute)
	assert.WithinDuration(t, now.Add(4*24*time.Hour), standardAt, 2*time.Minute)
}

func TestCalculateRedemptionFailures(t *testing.T) {
	_, err := CalculateRedemption(RedemptionInput{NAV: 0, Units: 10, Type: RedemptionStandard})
	assert.ErrorIs(t, err, ErrZeroNAV)

	_, err = CalculateRedemption(RedemptionInput{NAV: 10, Type: RedemptionStandard})
	assert.ErrorIs(t, err, ErrNoQuantity)
}

func TestCheckInstantEligibility(t *testing.T) {
	product := &ProductInfo{ID: "LQ1", SchemeName: "Overnight Fund"}

	tests := []struct {
		name     string
		product  *ProductInfo
		amount   float64
		eligible bool
	}{
		{"within window", product, 5000, true},
		{"upper bound inclusive", product, 50000, true},
		{"at lower bound", product, 1000, false},
		{"below lower bound", product, 500, false},
		{"above cap", product, 50001, false},
		{"no matching scheme", nil, 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckInstantEligibility(tt.product, tt.amount)
			assert.Equal(t, tt.eligible, result.Eligible)
			if !tt.eligible {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}
}
