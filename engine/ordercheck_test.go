package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() map[string]ProductInfo {
	return map[string]ProductInfo{
		"EQ1": {ID: "EQ1", SchemeName: "Bluechip Growth", Category: "Equity", NAV: 52.5, MinInvestment: 1000, MaxInvestment: 1000000},
		"DB1": {ID: "DB1", SchemeName: "Liquid Advantage", Category: "Liquid Fund", NAV: 1045.2, MinInvestment: 5000},
	}
}

func validOrder() OrderInput {
	return OrderInput{
		Items: []CartItem{
			Purchase{ProductID: "EQ1", Category: "Equity", Amount: 10000},
		},
		Products: catalog(),
		PAN:      "ABCDE1234F",
		Nominees: []Nominee{
			{Name: "Asha Rao", Relationship: "SPOUSE", DateOfBirth: time.Date(1985, 4, 2, 0, 0, 0, 0, time.UTC), Percentage: 100},
		},
	}
}

func TestValidateOrderAccepts(t *testing.T) {
	result := ValidateOrder(validOrder())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateOrderEmptyCart(t *testing.T) {
	in := validOrder()
	in.Items = nil

	result := ValidateOrder(in)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "cart")
}

func TestValidateOrderPurchaseBounds(t *testing.T) {
	in := validOrder()
	in.Items = []CartItem{Purchase{ProductID: "EQ1", Amount: 500}}
	result := ValidateOrder(in)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors["items.0.amount"], "minimum")

	in.Items = []CartItem{Purchase{ProductID: "EQ1", Amount: 2000000}}
	result = ValidateOrder(in)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors["items.0.amount"], "maximum")

	in.Items = []CartItem{Purchase{ProductID: "UNKNOWN", Amount: 2000}}
	result = ValidateOrder(in)
	assert.Contains(t, result.Errors, "items.0.product")
}

func TestValidateOrderPANFormat(t *testing.T) {
	tests := []struct {
		pan   string
		valid bool
	}{
		{"ABCDE1234F", true},
		{"abcde1234f", false},
		{"ABCDE12345", false},
		{"ABCD1234FF", false},
		{"", false},
	}

	for _, tt := range tests {
		in := validOrder()
		in.PAN = tt.pan
		result := ValidateOrder(in)
		if tt.valid {
			assert.NotContainsf(t, result.Errors, "pan", "pan %q", tt.pan)
		} else {
			assert.Containsf(t, result.Errors, "pan", "pan %q", tt.pan)
		}
	}
}

func TestValidateOrderEUINFormat(t *testing.T) {
	in := validOrder()
	in.EUIN = "E123456"
	assert.True(t, ValidateOrder(in).Valid)

	in.EUIN = "X123456"
	assert.Contains(t, ValidateOrder(in).Errors, "euin")

	in.EUIN = "E12345"
	assert.Contains(t, ValidateOrder(in).Errors, "euin")

	// EUIN is optional
	in.EUIN = ""
	assert.True(t, ValidateOrder(in).Valid)
}

func TestValidateOrderNomineePercentages(t *testing.T) {
	in := validOrder()
	in.Nominees = []Nominee{
		{Name: "Asha Rao", Relationship: "SPOUSE", Percentage: 60},
		{Name: "Rahul Rao", Relationship: "SON", DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), Percentage: 30},
	}

	result := ValidateOrder(in)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors["nominees"], "sum to exactly 100")

	in.Nominees[1].Percentage = 40
	assert.True(t, ValidateOrder(in).Valid)
}

func TestValidateOrderNomineeOptOut(t *testing.T) {
	in := validOrder()
	in.Nominees = nil

	result := ValidateOrder(in)
	assert.Contains(t, result.Errors, "nominees")

	in.NomineeOptOut = true
	assert.True(t, ValidateOrder(in).Valid)
}

func TestValidateOrderMinorNomineeNeedsGuardian(t *testing.T) {
	minorDOB := time.Now().AddDate(-10, 0, 0)
	in := validOrder()
	in.Nominees = []Nominee{
		{Name: "Kiran Rao", Relationship: "DAUGHTER", DateOfBirth: minorDOB, Percentage: 100},
	}

	result := ValidateOrder(in)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "nominees.0.guardianName")
	assert.Contains(t, result.Errors, "nominees.0.guardianPan")
	assert.Contains(t, result.Errors, "nominees.0.guardianRelationship")

	in.Nominees[0].GuardianName = "Asha Rao"
	in.Nominees[0].GuardianPAN = "ABCDE1234F"
	in.Nominees[0].GuardianRelationship = "MOTHER"
	assert.True(t, ValidateOrder(in).Valid)
}

func TestValidateOrderPartialRedemptionCrossCheck(t *testing.T) {
	in := validOrder()
	in.Items = []CartItem{
		Redemption{ProductID: "EQ1", Category: "Equity", Amount: 60000},
	}
	in.MarketValues = map[string]float64{"EQ1": 50000}

	result := ValidateOrder(in)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors["items.0.amount"], "exceeds available value")

	// full redemptions skip the cross check
	in.Items = []CartItem{
		Redemption{ProductID: "EQ1", Category: "Equity", Amount: 60000, Full: true},
	}
	assert.True(t, ValidateOrder(in).Valid)
}

func TestValidateOrderUnitsOnlyRedemption(t *testing.T) {
	in := validOrder()
	in.Items = []CartItem{
		Redemption{ProductID: "EQ1", Category: "Equity", Units: 50},
	}
	in.MarketValues = map[string]float64{"EQ1": 50000}

	result := ValidateOrder(in)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	// units priced off the catalog NAV still hit the market-value cross check
	in.Items = []CartItem{
		Redemption{ProductID: "EQ1", Category: "Equity", Units: 2000},
	}
	result = ValidateOrder(in)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors["items.0.amount"], "exceeds available value")
}

func TestValidateOrderSoftWarningDoesNotBlock(t *testing.T) {
	in := validOrder()
	in.Items = []CartItem{
		Redemption{ProductID: "DB1", Category: "Liquid Fund", Amount: 2000},
	}
	in.MarketValues = map[string]float64{"DB1": 40000}

	result := ValidateOrder(in)
	require.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "below the scheme minimum")
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 17, ageAt(dob, time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, ageAt(dob, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
}
