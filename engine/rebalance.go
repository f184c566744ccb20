package engine

import (
	"fmt"
	"math"
	"sort"
)

// Action is the kind of rebalancing trade suggested.
type Action string

const (
	ActionBuy    Action = "BUY"
	ActionSell   Action = "SELL"
	ActionSwitch Action = "SWITCH"
)

// RebalancingSuggestion is one concrete trade towards the target allocation.
type RebalancingSuggestion struct {
	Action         Action   `json:"action"`
	Bucket         Bucket   `json:"bucket"`
	TargetBucket   Bucket   `json:"targetBucket,omitempty"`
	FromScheme     string   `json:"fromScheme,omitempty"`
	Amount         float64  `json:"amount"`
	Rationale      string   `json:"rationale"`
	Priority       Priority `json:"priority"`
	ExpectedImpact string   `json:"expectedImpact"`
}

// rebalanceNoise: drifts under one percentage point are not worth a trade.
const rebalanceNoise = 1.0

func holdingInBucket(holdings []Holding, b Bucket) *Holding {
	for i := range holdings {
		if holdings[i].Bucket == b {
			return &holdings[i]
		}
	}
	return nil
}

func positiveGapBucket(gaps []AllocationGap, exclude Bucket) (Bucket, bool) {
	for _, g := range gaps {
		if g.Bucket != exclude && g.Gap > 0 {
			return g.Bucket, true
		}
	}
	return "", false
}

// SuggestRebalancing turns allocation gaps into buy/sell/switch suggestions.
// Underweight buckets get a buy sized to close the gap; overweight buckets
// get a switch into an underweight bucket when one exists, else a sell.
// Results are sorted by priority, ties keeping generation order.
func SuggestRebalancing(gaps []AllocationGap, holdings []Holding, totalValue float64) []RebalancingSuggestion {
	var suggestions []RebalancingSuggestion

	for _, g := range gaps {
		if math.Abs(g.Gap) < rebalanceNoise {
			continue
		}
		amount := totalValue * math.Abs(g.Gap) / 100

		if g.Gap > 0 {
			suggestions = append(suggestions, RebalancingSuggestion{
				Action:    ActionBuy,
				Bucket:    g.Bucket,
				Amount:    amount,
				Rationale: fmt.Sprintf("%s allocation is %.1f%% below target", g.Bucket, g.Gap),
				Priority:  g.Priority,
				ExpectedImpact: fmt.Sprintf("Moves %s from %.1f%% towards %.1f%%",
					g.Bucket, g.Current, g.Target),
			})
			continue
		}

		h := holdingInBucket(holdings, g.Bucket)
		if h == nil {
			continue
		}

		if target, ok := positiveGapBucket(gaps, g.Bucket); ok {
			suggestions = append(suggestions, RebalancingSuggestion{
				Action:       ActionSwitch,
				Bucket:       g.Bucket,
				TargetBucket: target,
				FromScheme:   h.SchemeName,
				Amount:       amount,
				Rationale: fmt.Sprintf("%s allocation is %.1f%% above target while %s is underweight",
					g.Bucket, -g.Gap, target),
				Priority: g.Priority,
				ExpectedImpact: fmt.Sprintf("Moves %s from %.1f%% towards %.1f%% without changing invested amount",
					g.Bucket, g.Current, g.Target),
			})
			continue
		}

		suggestions = append(suggestions, RebalancingSuggestion{
			Action:     ActionSell,
			Bucket:     g.Bucket,
			FromScheme: h.SchemeName,
			Amount:     amount,
			Rationale:  fmt.Sprintf("%s allocation is %.1f%% above target", g.Bucket, -g.Gap),
			Priority:   g.Priority,
			ExpectedImpact: fmt.Sprintf("Moves %s from %.1f%% towards %.1f%%",
				g.Bucket, g.Current, g.Target),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return priorityRank(suggestions[i].Priority) > priorityRank(suggestions[j].Priority)
	})
	return suggestions
}
