package orderRoutes

import (
	orderController "wealthdesk/controllers/order"
	"wealthdesk/middleware"
	orderValidator "wealthdesk/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App, ctrl *orderController.Controller) {
	orderGroup := app.Group("/orders")

	orderGroup.Post("/", orderValidator.PlaceOrder(), middleware.JWTMiddleware, ctrl.PlaceOrder)
	orderGroup.Get("/", middleware.JWTMiddleware, ctrl.ListOrders)
	orderGroup.Post("/redemption/calculate", orderValidator.CalculateRedemption(), middleware.JWTMiddleware, ctrl.CalculateRedemption)
	orderGroup.Get("/redemption/instant-eligibility", middleware.JWTMiddleware, ctrl.InstantEligibility)
	orderGroup.Post("/sip/project", orderValidator.ProjectSIP(), middleware.JWTMiddleware, ctrl.ProjectSIP)
	orderGroup.Post("/sip", orderValidator.RegisterSIP(), middleware.JWTMiddleware, ctrl.RegisterSIP)
}
