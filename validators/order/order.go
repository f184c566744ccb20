package orderValidator

import (
	"fmt"
	"strings"
	"time"
	"wealthdesk/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CartItemRequest is one cart line as submitted by the order-entry flow.
// FULL_REDEMPTION and FULL_SWITCH map onto the base type with Full set.
type CartItemRequest struct {
	TransactionType string  `json:"transactionType" validate:"required"`
	ProductID       uint    `json:"productId"`
	SourceProductID uint    `json:"sourceProductId"`
	TargetProductID uint    `json:"targetProductId"`
	Amount          float64 `json:"amount"`
	Units           float64 `json:"units"`
}

// NomineeRequest is a nominee declaration as submitted.
type NomineeRequest struct {
	Name                 string  `json:"name"`
	Relationship         string  `json:"relationship"`
	DateOfBirth          string  `json:"dateOfBirth"` // YYYY-MM-DD
	Pan                  string  `json:"pan"`
	Percentage           float64 `json:"percentage"`
	GuardianName         string  `json:"guardianName"`
	GuardianPan          string  `json:"guardianPan"`
	GuardianRelationship string  `json:"guardianRelationship"`
}

// PlaceOrderRequest is the full order submission payload. MarketValues
// carries the RM screen's current value per holding (keyed by product id)
// for the partial redemption cross check.
type PlaceOrderRequest struct {
	ClientID      uint               `json:"clientId" validate:"required"`
	EUIN          string             `json:"euin"`
	NomineeOptOut bool               `json:"nomineeOptOut"`
	Items         []CartItemRequest  `json:"items" validate:"required,min=1"`
	Nominees      []NomineeRequest   `json:"nominees"`
	MarketValues  map[string]float64 `json:"marketValues"`
}

// RedemptionRequest asks for redemption economics of one scheme.
type RedemptionRequest struct {
	ProductID      uint    `json:"productId" validate:"required"`
	Units          float64 `json:"units"`
	Amount         float64 `json:"amount"`
	RedemptionType string  `json:"redemptionType" validate:"required,oneof=STANDARD INSTANT FULL"`
}

// SIPProjectRequest asks for a growth projection of a SIP schedule.
type SIPProjectRequest struct {
	Amount               float64 `json:"amount" validate:"required,gt=0"`
	Frequency            string  `json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY QUARTERLY"`
	DurationMonths       int     `json:"durationMonths" validate:"required,gte=1,lte=600"`
	ExpectedAnnualReturn float64 `json:"expectedAnnualReturn" validate:"gte=0,lte=100"`
}

// RegisterSIPRequest registers a recurring mandate for a client.
type RegisterSIPRequest struct {
	ClientID       uint    `json:"clientId" validate:"required"`
	ProductID      uint    `json:"productId" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Frequency      string  `json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY QUARTERLY"`
	DurationMonths int     `json:"durationMonths" validate:"required,gte=1,lte=600"`
	StartDate      string  `json:"startDate"` // YYYY-MM-DD, defaults to today
}

func structErrors(err error, errors map[string]string) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request data!"
		return
	}
	for _, fe := range verrs {
		key := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		errors[key] = "Invalid value for " + key + "!"
	}
}

func checkCartItems(items []CartItemRequest, errors map[string]string) {
	for i, item := range items {
		key := fmt.Sprintf("items.%d", i)
		switch strings.ToUpper(item.TransactionType) {
		case "PURCHASE":
			if item.ProductID == 0 {
				errors[key+".productId"] = "Product is required!"
			}
			if item.Amount <= 0 {
				errors[key+".amount"] = "Amount must be greater than 0!"
			}
		case "REDEMPTION", "FULL_REDEMPTION":
			if item.ProductID == 0 {
				errors[key+".productId"] = "Product is required!"
			}
			if item.Amount <= 0 && item.Units <= 0 && strings.ToUpper(item.TransactionType) == "REDEMPTION" {
				errors[key+".amount"] = "Amount or units are required for a partial redemption!"
			}
		case "SWITCH", "FULL_SWITCH":
			if item.SourceProductID == 0 {
				errors[key+".sourceProductId"] = "Source scheme is required!"
			}
			if item.TargetProductID == 0 {
				errors[key+".targetProductId"] = "Target scheme is required!"
			}
			if item.Amount <= 0 && strings.ToUpper(item.TransactionType) == "SWITCH" {
				errors[key+".amount"] = "Amount is required for a partial switch!"
			}
		default:
			errors[key+".transactionType"] = "Unsupported transaction type!"
		}
	}
}

func checkNomineeDates(nominees []NomineeRequest, errors map[string]string) {
	for i, n := range nominees {
		if n.DateOfBirth == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", n.DateOfBirth); err != nil {
			errors[fmt.Sprintf("nominees.%d.dateOfBirth", i)] = "Date of birth must be YYYY-MM-DD!"
		}
	}
}

// PlaceOrder validates an order submission request
func PlaceOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PlaceOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			structErrors(err, errors)
		}
		checkCartItems(reqData.Items, errors)
		checkNomineeDates(reqData.Nominees, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}

// CalculateRedemption validates a redemption calculation request
func CalculateRedemption() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RedemptionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			structErrors(err, errors)
		}
		if reqData.Units <= 0 && reqData.Amount <= 0 {
			errors["amount"] = "Either units or amount is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRedemption", reqData)
		return c.Next()
	}
}

// ProjectSIP validates a SIP projection request
func ProjectSIP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SIPProjectRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			structErrors(err, errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSIPProject", reqData)
		return c.Next()
	}
}

// RegisterSIP validates a SIP registration request
func RegisterSIP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterSIPRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			structErrors(err, errors)
		}
		if reqData.StartDate != "" {
			if _, err := time.Parse("2006-01-02", reqData.StartDate); err != nil {
				errors["startDate"] = "Start date must be YYYY-MM-DD!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSIPRegister", reqData)
		return c.Next()
	}
}
