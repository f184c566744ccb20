package portfolioRoutes

import (
	portfolioController "wealthdesk/controllers/portfolio"
	"wealthdesk/middleware"
	portfolioValidator "wealthdesk/validators/portfolio"

	"github.com/gofiber/fiber/v2"
)

func SetupPortfolioRoutes(app *fiber.App) {
	portfolioGroup := app.Group("/clients/:clientId/portfolio")

	portfolioGroup.Get("/", middleware.JWTMiddleware, portfolioController.GetPortfolio)
	portfolioGroup.Post("/impact", portfolioValidator.ImpactPreview(), middleware.JWTMiddleware, portfolioController.PreviewImpact)
	portfolioGroup.Get("/gaps", middleware.JWTMiddleware, portfolioController.GetGaps)
	portfolioGroup.Get("/rebalance", middleware.JWTMiddleware, portfolioController.GetRebalancing)
	portfolioGroup.Get("/tax-harvest", middleware.JWTMiddleware, portfolioController.GetTaxHarvest)
}
