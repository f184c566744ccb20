package engine

import (
	"strings"
	"time"
)

// Txn is one row of a client's transaction history as the engine consumes it.
type Txn struct {
	ProductID  string
	SchemeName string
	Type       string
	Amount     float64
	Units      float64
	NAV        float64
	Category   string
	Date       time.Time
}

// Holding is a per-scheme position reconstructed from transaction history.
// CurrentValue is modeled as invested amount until positions are NAV-marked
// from a historical series.
type Holding struct {
	ProductID      string  `json:"productId"`
	SchemeName     string  `json:"schemeName"`
	Bucket         Bucket  `json:"bucket"`
	Units          float64 `json:"units"`
	NAV            float64 `json:"nav"`
	InvestedAmount float64 `json:"investedAmount"`
	CurrentValue   float64 `json:"currentValue"`
	GainLossPct    float64 `json:"gainLossPercent"`
}

// Portfolio is the reconstructed state of a client's investments.
type Portfolio struct {
	TotalValue    float64    `json:"totalValue"`
	TotalInvested float64    `json:"totalInvested"`
	GainLoss      float64    `json:"gainLoss"`
	Allocation    Allocation `json:"allocation"`
	Holdings      []Holding  `json:"holdings"`
}

func isBuy(txnType string) bool {
	t := strings.ToUpper(txnType)
	return strings.Contains(t, "PURCHASE") || strings.Contains(t, "BUY") || strings.Contains(t, "SWITCH_IN")
}

func isSell(txnType string) bool {
	t := strings.ToUpper(txnType)
	return strings.Contains(t, "REDEMPTION") || strings.Contains(t, "SELL") ||
		strings.Contains(t, "REDEEM") || strings.Contains(t, "SWITCH_OUT")
}

// BuildPortfolio replays a transaction history (any order of rows) into
// current holdings and bucket allocation. storedValue, when positive, is
// the client's externally valued AUM and is preferred over the computed
// total for totalValue.
func BuildPortfolio(txns []Txn, storedValue float64) Portfolio {
	raw := map[Bucket]float64{}
	byProduct := map[string]*Holding{}
	var order []string

	var totalInvested, totalComputed float64

	for _, t := range txns {
		b := ClassifyCategory(t.Category)

		h, ok := byProduct[t.ProductID]
		if !ok {
			h = &Holding{ProductID: t.ProductID, SchemeName: t.SchemeName, Bucket: b}
			byProduct[t.ProductID] = h
			order = append(order, t.ProductID)
		}
		if h.SchemeName == "" {
			h.SchemeName = t.SchemeName
		}
		if t.NAV > 0 {
			h.NAV = t.NAV
		}

		switch {
		case isBuy(t.Type):
			totalInvested += t.Amount
			totalComputed += t.Amount
			raw[b] += t.Amount
			h.Units += t.Units
			h.InvestedAmount += t.Amount
		case isSell(t.Type):
			totalInvested -= t.Amount
			totalComputed -= t.Amount
			raw[b] -= t.Amount
			if raw[b] < 0 {
				raw[b] = 0
			}
			h.Units -= t.Units
			if h.Units < 0 {
				h.Units = 0
			}
			h.InvestedAmount -= t.Amount
			if h.InvestedAmount < 0 {
				h.InvestedAmount = 0
			}
		}
	}

	if totalInvested < 0 {
		totalInvested = 0
	}
	if totalComputed < 0 {
		totalComputed = 0
	}

	var alloc Allocation
	var rawSum float64
	for _, b := range Buckets {
		rawSum += raw[b]
	}
	if rawSum > 0 {
		for _, b := range Buckets {
			alloc.Set(b, raw[b]/rawSum*100)
		}
	}

	totalValue := totalComputed
	if storedValue > 0 {
		totalValue = storedValue
	}

	holdings := make([]Holding, 0, len(order))
	for _, id := range order {
		h := byProduct[id]
		if h.Units <= 0 {
			continue
		}
		h.CurrentValue = h.InvestedAmount
		if h.InvestedAmount > 0 {
			h.GainLossPct = (h.CurrentValue - h.InvestedAmount) / h.InvestedAmount * 100
		}
		holdings = append(holdings, *h)
	}

	return Portfolio{
		TotalValue:    totalValue,
		TotalInvested: totalInvested,
		GainLoss:      totalValue - totalInvested,
		Allocation:    alloc,
		Holdings:      holdings,
	}
}
