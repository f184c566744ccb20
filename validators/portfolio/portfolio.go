package portfolioValidator

import (
	"fmt"
	"wealthdesk/middleware"
	orderValidator "wealthdesk/validators/order"

	"github.com/gofiber/fiber/v2"
)

// ImpactPreviewRequest carries the proposed cart to preview against the
// client's current allocation.
type ImpactPreviewRequest struct {
	Items []orderValidator.CartItemRequest `json:"items"`
}

// ImpactPreview validates an allocation impact preview request
func ImpactPreview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ImpactPreviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(reqData.Items) == 0 {
			errors["items"] = "At least one cart item is required!"
		}
		for i, item := range reqData.Items {
			if item.TransactionType == "" {
				errors[fmt.Sprintf("items.%d.transactionType", i)] = "Transaction type is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedImpactPreview", reqData)
		return c.Next()
	}
}
