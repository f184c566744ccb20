package orderController

import (
	"testing"
	"wealthdesk/models"
	orderValidator "wealthdesk/validators/order"

	"github.com/stretchr/testify/assert"
)

func TestOrderAMCFromSwitchLegs(t *testing.T) {
	products := map[uint]models.Product{
		7: {SchemeName: "Bluechip Equity Fund", AMC: "Axis"},
		9: {SchemeName: "Short Term Debt Fund", AMC: "Axis"},
	}

	// switch-only cart carries schemes on the target/source legs
	items := []orderValidator.CartItemRequest{
		{TransactionType: "SWITCH", SourceProductID: 7, TargetProductID: 9, Amount: 2000},
	}
	assert.Equal(t, "Axis", orderAMC(items, products))

	items = []orderValidator.CartItemRequest{
		{TransactionType: "PURCHASE", ProductID: 7, Amount: 5000},
	}
	assert.Equal(t, "Axis", orderAMC(items, products))

	assert.Equal(t, "", orderAMC(items, map[uint]models.Product{}))
}
