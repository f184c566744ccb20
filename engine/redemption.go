package engine

import (
	"errors"
	"fmt"
	"time"
)

// RedemptionType selects settlement and charge rules.
type RedemptionType string

const (
	RedemptionStandard RedemptionType = "STANDARD"
	RedemptionInstant  RedemptionType = "INSTANT"
	RedemptionFull     RedemptionType = "FULL"
)

// Exit load and withholding policy. Exit load applies to standard
// redemptions only; full redemptions skip it, mirroring current upstream
// policy (under review, do not change without confirming intent).
const (
	exitLoadPercent = 1.0
	tdsPercent      = 10.0

	instantSettlement  = time.Hour
	standardSettlement = 4 * 24 * time.Hour

	instantMinAmount = 1000.0
	instantMaxAmount = 50000.0
)

var (
	ErrZeroNAV    = errors.New("scheme NAV unavailable")
	ErrNoQuantity = errors.New("either units or amount is required")
)

// RedemptionInput describes one redemption request. Either Units or Amount
// must be set; the missing one is derived via NAV.
type RedemptionInput struct {
	SchemeName string
	NAV        float64
	Units      float64
	Amount     float64
	Type       RedemptionType
}

// RedemptionCalculation is the settlement economics of one redemption.
type RedemptionCalculation struct {
	SchemeName      string  `json:"schemeName"`
	Units           float64 `json:"units"`
	NAV             float64 `json:"nav"`
	GrossAmount     float64 `json:"grossAmount"`
	ExitLoadPercent float64 `json:"exitLoadPercent"`
	ExitLoadAmount  float64 `json:"exitLoadAmount"`
	NetAmount       float64 `json:"netAmount"`
	TDS             float64 `json:"tds"`
	FinalAmount     float64 `json:"finalAmount"`
	SettlementDate  string  `json:"settlementDate"`
}

// CalculateRedemption computes gross/net/final proceeds and settlement date.
func CalculateRedemption(in RedemptionInput) (RedemptionCalculation, error) {
	if in.NAV <= 0 {
		return RedemptionCalculation{}, ErrZeroNAV
	}
	if in.Units <= 0 && in.Amount <= 0 {
		return RedemptionCalculation{}, ErrNoQuantity
	}

	units := in.Units
	if units <= 0 {
		units = in.Amount / in.NAV
	}
	gross := units * in.NAV

	loadPct := 0.0
	if in.Type == RedemptionStandard {
		loadPct = exitLoadPercent
	}
	loadAmt := gross * loadPct / 100
	net := gross - loadAmt

	tds := 0.0
	if in.Type == RedemptionStandard || in.Type == RedemptionInstant {
		tds = net * tdsPercent / 100
	}

	settlement := standardSettlement
	if in.Type == RedemptionInstant {
		settlement = instantSettlement
	}

	return RedemptionCalculation{
		SchemeName:      in.SchemeName,
		Units:           units,
		NAV:             in.NAV,
		GrossAmount:     gross,
		ExitLoadPercent: loadPct,
		ExitLoadAmount:  loadAmt,
		NetAmount:       net,
		TDS:             tds,
		FinalAmount:     net - tds,
		SettlementDate:  time.Now().Add(settlement).Format(time.RFC3339),
	}, nil
}

// InstantEligibility is the outcome of an instant-redemption check.
type InstantEligibility struct {
	Eligible  bool    `json:"eligible"`
	Reason    string  `json:"reason,omitempty"`
	MinAmount float64 `json:"minAmount"`
	MaxAmount float64 `json:"maxAmount"`
}

// CheckInstantEligibility restricts instant redemption to a matched scheme
// and amounts above 1,000 up to 50,000.
func CheckInstantEligibility(product *ProductInfo, amount float64) InstantEligibility {
	result := InstantEligibility{MinAmount: instantMinAmount, MaxAmount: instantMaxAmount}

	if product == nil {
		result.Reason = "Scheme not found or not enabled for instant redemption"
		return result
	}
	if amount <= instantMinAmount {
		result.Reason = fmt.Sprintf("Instant redemption requires more than %.0f", instantMinAmount)
		return result
	}
	if amount > instantMaxAmount {
		result.Reason = fmt.Sprintf("Instant redemption is capped at %.0f", instantMaxAmount)
		return result
	}

	result.Eligible = true
	return result
}
