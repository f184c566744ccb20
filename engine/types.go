// Package engine holds the portfolio allocation and order-economics
// computations. Every function here is a pure calculation over its inputs:
// no database reads, no clock-dependent state beyond settlement timestamps,
// so callers may run them concurrently across independent requests.
package engine

// Bucket is a canonical allocation bucket.
type Bucket string

const (
	BucketEquity Bucket = "equity"
	BucketDebt   Bucket = "debt"
	BucketHybrid Bucket = "hybrid"
	BucketOthers Bucket = "others"
)

// Buckets lists the canonical buckets in reporting order.
var Buckets = []Bucket{BucketEquity, BucketDebt, BucketHybrid, BucketOthers}

// Allocation holds the four bucket percentages. When total invested is
// non-zero the values sum to 100 within rounding; otherwise all are zero.
type Allocation struct {
	Equity float64 `json:"equity"`
	Debt   float64 `json:"debt"`
	Hybrid float64 `json:"hybrid"`
	Others float64 `json:"others"`
}

// Of returns the percentage for a bucket.
func (a Allocation) Of(b Bucket) float64 {
	switch b {
	case BucketEquity:
		return a.Equity
	case BucketDebt:
		return a.Debt
	case BucketHybrid:
		return a.Hybrid
	default:
		return a.Others
	}
}

// Set assigns the percentage for a bucket.
func (a *Allocation) Set(b Bucket, v float64) {
	switch b {
	case BucketEquity:
		a.Equity = v
	case BucketDebt:
		a.Debt = v
	case BucketHybrid:
		a.Hybrid = v
	default:
		a.Others = v
	}
}

// Priority grades how far an allocation has drifted.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// ProductInfo is the slice of the product catalog the engine consumes.
type ProductInfo struct {
	ID            string  `json:"id"`
	SchemeName    string  `json:"schemeName"`
	Category      string  `json:"category"`
	NAV           float64 `json:"nav"`
	MinInvestment float64 `json:"minInvestment"`
	MaxInvestment float64 `json:"maxInvestment"`
}

// TxnType discriminates cart item variants.
type TxnType string

const (
	TxnPurchase   TxnType = "PURCHASE"
	TxnRedemption TxnType = "REDEMPTION"
	TxnSwitch     TxnType = "SWITCH"
)

// CartItem is a proposed order line. Each variant carries only the fields
// its transaction type needs.
type CartItem interface {
	Kind() TxnType
	OrderAmount() float64
}

// Purchase buys into a scheme.
type Purchase struct {
	ProductID string
	Category  string
	Amount    float64
}

func (p Purchase) Kind() TxnType        { return TxnPurchase }
func (p Purchase) OrderAmount() float64 { return p.Amount }

// Redemption sells out of a scheme. Full marks a full redemption, which
// skips the partial-amount market-value cross check.
type Redemption struct {
	ProductID string
	Category  string
	Amount    float64
	Units     float64
	Full      bool
}

func (r Redemption) Kind() TxnType        { return TxnRedemption }
func (r Redemption) OrderAmount() float64 { return r.Amount }

// Switch moves value from one scheme into another.
type Switch struct {
	SourceProductID string
	TargetProductID string
	SourceCategory  string
	TargetCategory  string
	Amount          float64
	Full            bool
}

func (s Switch) Kind() TxnType        { return TxnSwitch }
func (s Switch) OrderAmount() float64 { return s.Amount }
