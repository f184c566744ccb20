package engine

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

var (
	panRe  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	euinRe = regexp.MustCompile(`^E[A-Za-z0-9]{6}$`)
)

// Nominee is a nominee declaration attached to an order.
type Nominee struct {
	Name                 string    `json:"name"`
	Relationship         string    `json:"relationship"`
	DateOfBirth          time.Time `json:"dateOfBirth"`
	PAN                  string    `json:"pan"`
	Percentage           float64   `json:"percentage"`
	GuardianName         string    `json:"guardianName"`
	GuardianPAN          string    `json:"guardianPan"`
	GuardianRelationship string    `json:"guardianRelationship"`
}

// OrderInput is everything the validator needs to vet an order before
// submission. MarketValues carries the caller-supplied current value per
// holding, keyed by product id, for the partial redemption/switch cross
// check; schemes absent from the map skip that check.
type OrderInput struct {
	Items         []CartItem
	Products      map[string]ProductInfo
	MarketValues  map[string]float64
	PAN           string
	EUIN          string
	Nominees      []Nominee
	NomineeOptOut bool
}

// OrderValidation is the outcome: blocking errors keyed by field, plus
// advisory warnings that do not prevent submission.
type OrderValidation struct {
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors"`
	Warnings []string          `json:"warnings"`
}

func ageAt(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		years--
	}
	return years
}

func validatePurchase(i int, item Purchase, products map[string]ProductInfo, errors map[string]string) {
	key := fmt.Sprintf("items.%d", i)
	p, ok := products[item.ProductID]
	if !ok {
		errors[key+".product"] = "Scheme not found!"
		return
	}
	if item.Amount <= 0 {
		errors[key+".amount"] = "Amount must be greater than 0!"
		return
	}
	if item.Amount < p.MinInvestment {
		errors[key+".amount"] = fmt.Sprintf("Amount is below the scheme minimum of %.0f!", p.MinInvestment)
	}
	if p.MaxInvestment > 0 && item.Amount > p.MaxInvestment {
		errors[key+".amount"] = fmt.Sprintf("Amount exceeds the scheme maximum of %.0f!", p.MaxInvestment)
	}
}

func validateOutflow(i int, productID string, amount, units float64, full bool, in OrderInput,
	errors map[string]string, warnings *[]string) {
	key := fmt.Sprintf("items.%d", i)
	if full {
		return
	}
	// Units-only lines are priced off the catalog NAV so the market-value
	// and minimum checks still apply.
	if amount <= 0 && units > 0 {
		if p, ok := in.Products[productID]; ok && p.NAV > 0 {
			amount = units * p.NAV
		} else {
			return
		}
	}
	if amount <= 0 {
		errors[key+".amount"] = "Amount must be greater than 0!"
		return
	}
	if mv, ok := in.MarketValues[productID]; ok && amount > mv {
		errors[key+".amount"] = fmt.Sprintf("Requested amount exceeds available value of %.2f!", mv)
	}
	if p, ok := in.Products[productID]; ok && p.MinInvestment > 0 && amount < p.MinInvestment {
		*warnings = append(*warnings,
			fmt.Sprintf("%s: amount %.2f is below the scheme minimum of %.0f", p.SchemeName, amount, p.MinInvestment))
	}
}

func validateNominees(in OrderInput, errors map[string]string) {
	if in.NomineeOptOut {
		return
	}
	if len(in.Nominees) == 0 {
		errors["nominees"] = "At least one nominee is required unless opted out!"
		return
	}

	var sum float64
	now := time.Now()
	for i, n := range in.Nominees {
		key := fmt.Sprintf("nominees.%d", i)
		sum += n.Percentage

		if n.Name == "" {
			errors[key+".name"] = "Nominee name is required!"
		}
		if n.Relationship == "" {
			errors[key+".relationship"] = "Nominee relationship is required!"
		}
		if n.Percentage <= 0 || n.Percentage > 100 {
			errors[key+".percentage"] = "Nominee percentage must be between 0 and 100!"
		}
		if n.PAN != "" && !panRe.MatchString(n.PAN) {
			errors[key+".pan"] = "Invalid nominee PAN format!"
		}

		if !n.DateOfBirth.IsZero() && ageAt(n.DateOfBirth, now) < 18 {
			if n.GuardianName == "" {
				errors[key+".guardianName"] = "Guardian name is required for a minor nominee!"
			}
			if n.GuardianRelationship == "" {
				errors[key+".guardianRelationship"] = "Guardian relationship is required for a minor nominee!"
			}
			if n.GuardianPAN == "" {
				errors[key+".guardianPan"] = "Guardian PAN is required for a minor nominee!"
			} else if !panRe.MatchString(n.GuardianPAN) {
				errors[key+".guardianPan"] = "Invalid guardian PAN format!"
			}
		}
	}

	if math.Abs(sum-100) > 1e-9 {
		errors["nominees"] = fmt.Sprintf("Nominee percentages must sum to exactly 100, got %.2f!", sum)
	}
}

// ValidateOrder runs all hard and soft checks on an order prior to
// submission. Hard failures land in Errors and block the order; Warnings
// are advisory deviations that do not.
func ValidateOrder(in OrderInput) OrderValidation {
	errors := make(map[string]string)
	var warnings []string

	if len(in.Items) == 0 {
		errors["cart"] = "Cart is empty!"
	}

	for i, item := range in.Items {
		switch it := item.(type) {
		case Purchase:
			validatePurchase(i, it, in.Products, errors)
		case Redemption:
			validateOutflow(i, it.ProductID, it.Amount, it.Units, it.Full, in, errors, &warnings)
		case Switch:
			validateOutflow(i, it.SourceProductID, it.Amount, 0, it.Full, in, errors, &warnings)
		}
	}

	if in.PAN == "" {
		errors["pan"] = "PAN is required!"
	} else if !panRe.MatchString(in.PAN) {
		errors["pan"] = "Invalid PAN format!"
	}

	if in.EUIN != "" && !euinRe.MatchString(in.EUIN) {
		errors["euin"] = "Invalid EUIN format!"
	}

	validateNominees(in, errors)

	return OrderValidation{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
