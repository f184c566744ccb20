package engine

// BucketImpact is the before/after effect of an order basket on one bucket.
type BucketImpact struct {
	Bucket        Bucket  `json:"bucket"`
	Before        float64 `json:"before"`
	After         float64 `json:"after"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Direction     string  `json:"direction"`
}

// ImpactPreview summarises what a pending cart would do to the allocation.
type ImpactPreview struct {
	CurrentValue   float64        `json:"currentValue"`
	NetOrderAmount float64        `json:"netOrderAmount"`
	NewTotalValue  float64        `json:"newTotalValue"`
	Buckets        []BucketImpact `json:"buckets"`
}

func addFlooring(m map[Bucket]float64, b Bucket, delta float64) {
	m[b] += delta
	if m[b] < 0 {
		m[b] = 0
	}
}

// PreviewImpact computes before/after allocation for a proposed cart against
// the current allocation. Purchases add to their bucket and to the net order
// amount, redemptions subtract (floored at zero per bucket during
// accumulation), switches move value between buckets with zero net effect.
func PreviewImpact(alloc Allocation, totalValue float64, items []CartItem) ImpactPreview {
	orderAmt := map[Bucket]float64{}
	var net float64

	for _, item := range items {
		switch it := item.(type) {
		case Purchase:
			addFlooring(orderAmt, ClassifyCategory(it.Category), it.Amount)
			net += it.Amount
		case Redemption:
			addFlooring(orderAmt, ClassifyCategory(it.Category), -it.Amount)
			net -= it.Amount
		case Switch:
			addFlooring(orderAmt, ClassifyCategory(it.SourceCategory), -it.Amount)
			addFlooring(orderAmt, ClassifyCategory(it.TargetCategory), it.Amount)
		}
	}

	newTotal := totalValue + net

	impacts := make([]BucketImpact, 0, len(Buckets))
	for _, b := range Buckets {
		before := alloc.Of(b)
		after := before
		if newTotal > 0 {
			after = ((before*totalValue/100)+orderAmt[b])/newTotal*100
		}
		change := after - before
		changePct := 0.0
		if before != 0 {
			changePct = change / before * 100
		}
		direction := "unchanged"
		if change > 0 {
			direction = "increase"
		} else if change < 0 {
			direction = "decrease"
		}
		impacts = append(impacts, BucketImpact{
			Bucket:        b,
			Before:        before,
			After:         after,
			Change:        change,
			ChangePercent: changePct,
			Direction:     direction,
		})
	}

	return ImpactPreview{
		CurrentValue:   totalValue,
		NetOrderAmount: net,
		NewTotalValue:  newTotal,
		Buckets:        impacts,
	}
}
