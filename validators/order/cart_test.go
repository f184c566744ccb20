package orderValidator

import (
	"testing"
	"wealthdesk/engine"
	"wealthdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIDsCollectsSwitchLegsOnce(t *testing.T) {
	items := []CartItemRequest{
		{TransactionType: "PURCHASE", ProductID: 7, Amount: 5000},
		{TransactionType: "SWITCH", SourceProductID: 7, TargetProductID: 9, Amount: 2000},
		{TransactionType: "REDEMPTION", ProductID: 9, Amount: 1000},
	}

	ids := ProductIDs(items)
	assert.ElementsMatch(t, []uint{7, 9}, ids)
}

func TestToEngineItemsResolvesCategories(t *testing.T) {
	products := map[uint]models.Product{
		7: {SchemeName: "Bluechip Equity Fund", Category: "Large Cap Equity"},
		9: {SchemeName: "Short Term Debt Fund", Category: "Corporate Bond"},
	}
	items := []CartItemRequest{
		{TransactionType: "PURCHASE", ProductID: 7, Amount: 5000},
		{TransactionType: "FULL_SWITCH", SourceProductID: 7, TargetProductID: 9},
		{TransactionType: "FULL_REDEMPTION", ProductID: 9},
	}

	out := ToEngineItems(items, products)
	require.Len(t, out, 3)

	purchase, ok := out[0].(engine.Purchase)
	require.True(t, ok)
	assert.Equal(t, "7", purchase.ProductID)
	assert.Equal(t, "Large Cap Equity", purchase.Category)
	assert.Equal(t, 5000.0, purchase.Amount)

	sw, ok := out[1].(engine.Switch)
	require.True(t, ok)
	assert.True(t, sw.Full)
	assert.Equal(t, "Large Cap Equity", sw.SourceCategory)
	assert.Equal(t, "Corporate Bond", sw.TargetCategory)

	red, ok := out[2].(engine.Redemption)
	require.True(t, ok)
	assert.True(t, red.Full)
	assert.Equal(t, "9", red.ProductID)
}

func TestCatalogKeysMatchCartKeys(t *testing.T) {
	products := map[uint]models.Product{
		7: {SchemeName: "Bluechip Equity Fund", Category: "Large Cap Equity", NAV: 52.5, MinInvestment: 500},
	}

	catalog := Catalog(products)
	info, ok := catalog["7"]
	require.True(t, ok)
	assert.Equal(t, "Bluechip Equity Fund", info.SchemeName)
	assert.Equal(t, 52.5, info.NAV)
	assert.Equal(t, 500.0, info.MinInvestment)
}
