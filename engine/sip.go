package engine

import "errors"

// SIPFrequency is the contribution schedule of a systematic investment plan.
type SIPFrequency string

const (
	FrequencyDaily     SIPFrequency = "DAILY"
	FrequencyWeekly    SIPFrequency = "WEEKLY"
	FrequencyMonthly   SIPFrequency = "MONTHLY"
	FrequencyQuarterly SIPFrequency = "QUARTERLY"
)

var (
	ErrInvalidSIPAmount    = errors.New("sip amount must be positive")
	ErrInvalidSIPDuration  = errors.New("sip duration must be at least one month")
	ErrInvalidSIPFrequency = errors.New("unsupported sip frequency")
)

// InstallmentsPerMonth returns how many installments a frequency contributes
// per month. Quarterly contributes a third of one installment per month.
func InstallmentsPerMonth(f SIPFrequency) (float64, error) {
	switch f {
	case FrequencyDaily:
		return 30, nil
	case FrequencyWeekly:
		return 4, nil
	case FrequencyMonthly:
		return 1, nil
	case FrequencyQuarterly:
		return 1.0 / 3.0, nil
	default:
		return 0, ErrInvalidSIPFrequency
	}
}

// SIPInput describes a recurring-investment schedule to project.
type SIPInput struct {
	Amount               float64
	Frequency            SIPFrequency
	DurationMonths       int
	ExpectedAnnualReturn float64
}

// SIPMonth is one row of the projection series.
type SIPMonth struct {
	Month              int     `json:"month"`
	Invested           float64 `json:"invested"`
	CumulativeInvested float64 `json:"cumulativeInvested"`
	ProjectedValue     float64 `json:"projectedValue"`
	Returns            float64 `json:"returns"`
}

// SIPProjection is the compounded outcome of a SIP schedule.
type SIPProjection struct {
	TotalInvested    float64    `json:"totalInvested"`
	ExpectedValue    float64    `json:"expectedValue"`
	EstimatedReturns float64    `json:"estimatedReturns"`
	ReturnPercentage float64    `json:"returnPercentage"`
	Breakdown        []SIPMonth `json:"breakdown"`
}

// ProjectSIP compounds a recurring-investment schedule month by month.
// Sub-monthly frequencies are folded into a monthly contribution and
// compounded monthly; the coarser compounding is a deliberate simplification.
func ProjectSIP(in SIPInput) (SIPProjection, error) {
	if in.Amount <= 0 {
		return SIPProjection{}, ErrInvalidSIPAmount
	}
	if in.DurationMonths <= 0 {
		return SIPProjection{}, ErrInvalidSIPDuration
	}
	perMonth, err := InstallmentsPerMonth(in.Frequency)
	if err != nil {
		return SIPProjection{}, err
	}

	monthlyRate := in.ExpectedAnnualReturn / 100 / 12
	monthlyInvestment := in.Amount * perMonth

	var cumulativeInvested, cumulativeValue float64
	breakdown := make([]SIPMonth, 0, in.DurationMonths)

	for month := 1; month <= in.DurationMonths; month++ {
		cumulativeInvested += monthlyInvestment
		cumulativeValue = (cumulativeValue + monthlyInvestment) * (1 + monthlyRate)
		breakdown = append(breakdown, SIPMonth{
			Month:              month,
			Invested:           monthlyInvestment,
			CumulativeInvested: cumulativeInvested,
			ProjectedValue:     cumulativeValue,
			Returns:            cumulativeValue - cumulativeInvested,
		})
	}

	returns := cumulativeValue - cumulativeInvested
	returnPct := 0.0
	if cumulativeInvested > 0 {
		returnPct = returns / cumulativeInvested * 100
	}

	return SIPProjection{
		TotalInvested:    cumulativeInvested,
		ExpectedValue:    cumulativeValue,
		EstimatedReturns: returns,
		ReturnPercentage: returnPct,
		Breakdown:        breakdown,
	}, nil
}
