package engine

import (
	"fmt"
	"math"
	"strings"
)

// AllocationGap is the deviation of one bucket from its target.
type AllocationGap struct {
	Bucket         Bucket   `json:"bucket"`
	Current        float64  `json:"current"`
	Target         float64  `json:"target"`
	Gap            float64  `json:"gap"`
	Priority       Priority `json:"priority"`
	Recommendation string   `json:"recommendation"`
}

// Risk-profile model portfolios. Unknown tiers fall back to moderate.
var riskProfileTargets = map[string]Allocation{
	"conservative":         {Equity: 35, Debt: 40, Hybrid: 20, Others: 5},
	"moderate":             {Equity: 50, Debt: 30, Hybrid: 15, Others: 5},
	"moderatelyaggressive": {Equity: 65, Debt: 20, Hybrid: 10, Others: 5},
	"aggressive":           {Equity: 75, Debt: 15, Hybrid: 5, Others: 5},
}

// TargetForRiskProfile derives a target allocation from a risk-profile tier.
func TargetForRiskProfile(profile string) Allocation {
	key := strings.ToLower(profile)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if target, ok := riskProfileTargets[key]; ok {
		return target
	}
	return riskProfileTargets["moderate"]
}

func gapPriority(gap float64) Priority {
	abs := math.Abs(gap)
	switch {
	case abs > 10:
		return PriorityHigh
	case abs > 5:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func gapRecommendation(b Bucket, gap float64) string {
	switch {
	case gap > 0:
		return fmt.Sprintf("Increase %s allocation by %.1f%%", b, gap)
	case gap < 0:
		return fmt.Sprintf("Reduce %s allocation by %.1f%%", b, -gap)
	default:
		return fmt.Sprintf("Maintain current %s allocation", b)
	}
}

// AnalyzeGaps compares current allocation to a target, one gap per bucket in
// reporting order. gap = target - current, so positive means underweight.
func AnalyzeGaps(current, target Allocation) []AllocationGap {
	gaps := make([]AllocationGap, 0, len(Buckets))
	for _, b := range Buckets {
		gap := target.Of(b) - current.Of(b)
		gaps = append(gaps, AllocationGap{
			Bucket:         b,
			Current:        current.Of(b),
			Target:         target.Of(b),
			Gap:            gap,
			Priority:       gapPriority(gap),
			Recommendation: gapRecommendation(b, gap),
		})
	}
	return gaps
}
