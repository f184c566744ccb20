package engine

import (
	"fmt"
	"sort"
)

// TaxLossSuggestion flags a holding whose unrealized loss is worth harvesting.
type TaxLossSuggestion struct {
	ProductID             string  `json:"productId,omitempty"`
	SchemeName            string  `json:"schemeName,omitempty"`
	InvestedAmount        float64 `json:"investedAmount,omitempty"`
	EstimatedCurrentValue float64 `json:"estimatedCurrentValue,omitempty"`
	LossValue             float64 `json:"lossValue,omitempty"`
	Suggestion            string  `json:"suggestion"`
}

// pseudoReturn is a deterministic stand-in return in [-20%, +10%] derived
// from the product id. It is NOT real market data; replace with a historical
// NAV series once the RTA feed exposes one.
func pseudoReturn(productID string) float64 {
	var sum int
	for _, b := range []byte(productID) {
		sum += int(b)
	}
	return float64(sum%31-20) / 100
}

// SuggestTaxLossHarvest returns the top two holdings by estimated unrealized
// loss, or a single monitoring suggestion when nothing qualifies.
func SuggestTaxLossHarvest(holdings []Holding) []TaxLossSuggestion {
	var candidates []TaxLossSuggestion

	for _, h := range holdings {
		estimated := h.InvestedAmount * (1 + pseudoReturn(h.ProductID))
		loss := h.InvestedAmount - estimated
		if loss <= 0 {
			continue
		}
		candidates = append(candidates, TaxLossSuggestion{
			ProductID:             h.ProductID,
			SchemeName:            h.SchemeName,
			InvestedAmount:        h.InvestedAmount,
			EstimatedCurrentValue: estimated,
			LossValue:             loss,
			Suggestion: fmt.Sprintf("Consider redeeming %s to harvest an estimated loss of %.2f against taxable gains",
				h.SchemeName, loss),
		})
	}

	if len(candidates) == 0 {
		return []TaxLossSuggestion{{
			Suggestion: "No harvestable losses found. Keep monitoring positions for tax-loss opportunities.",
		}}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].LossValue > candidates[j].LossValue
	})
	if len(candidates) > 2 {
		candidates = candidates[:2]
	}
	return candidates
}
