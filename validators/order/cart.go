package orderValidator

import (
	"strconv"
	"strings"
	"wealthdesk/engine"
	"wealthdesk/models"
)

// ProductIDs collects every product id a cart references, switch legs
// included, for a single catalog read.
func ProductIDs(items []CartItemRequest) []uint {
	seen := map[uint]bool{}
	var ids []uint
	add := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, item := range items {
		add(item.ProductID)
		add(item.SourceProductID)
		add(item.TargetProductID)
	}
	return ids
}

// ToEngineItems converts validated cart lines into the engine's typed cart
// variants, resolving categories from the product catalog.
func ToEngineItems(items []CartItemRequest, products map[uint]models.Product) []engine.CartItem {
	out := make([]engine.CartItem, 0, len(items))
	for _, item := range items {
		switch strings.ToUpper(item.TransactionType) {
		case "PURCHASE":
			out = append(out, engine.Purchase{
				ProductID: strconv.Itoa(int(item.ProductID)),
				Category:  products[item.ProductID].Category,
				Amount:    item.Amount,
			})
		case "REDEMPTION", "FULL_REDEMPTION":
			out = append(out, engine.Redemption{
				ProductID: strconv.Itoa(int(item.ProductID)),
				Category:  products[item.ProductID].Category,
				Amount:    item.Amount,
				Units:     item.Units,
				Full:      strings.EqualFold(item.TransactionType, "FULL_REDEMPTION"),
			})
		case "SWITCH", "FULL_SWITCH":
			out = append(out, engine.Switch{
				SourceProductID: strconv.Itoa(int(item.SourceProductID)),
				TargetProductID: strconv.Itoa(int(item.TargetProductID)),
				SourceCategory:  products[item.SourceProductID].Category,
				TargetCategory:  products[item.TargetProductID].Category,
				Amount:          item.Amount,
				Full:            strings.EqualFold(item.TransactionType, "FULL_SWITCH"),
			})
		}
	}
	return out
}

// Catalog converts product rows into the engine's catalog view, keyed the
// same way ToEngineItems keys product references.
func Catalog(products map[uint]models.Product) map[string]engine.ProductInfo {
	out := make(map[string]engine.ProductInfo, len(products))
	for id, p := range products {
		key := strconv.Itoa(int(id))
		out[key] = engine.ProductInfo{
			ID:            key,
			SchemeName:    p.SchemeName,
			Category:      p.Category,
			NAV:           p.NAV,
			MinInvestment: p.MinInvestment,
			MaxInvestment: p.MaxInvestment,
		}
	}
	return out
}
