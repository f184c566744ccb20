package portfolioController

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"wealthdesk/database"
	"wealthdesk/engine"
	"wealthdesk/middleware"
	"wealthdesk/models"
	orderValidator "wealthdesk/validators/order"
	portfolioValidator "wealthdesk/validators/portfolio"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

func findClient(c *fiber.Ctx) (models.Client, bool, error) {
	id, err := c.ParamsInt("clientId")
	if err != nil || id <= 0 {
		return models.Client{}, false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid client id!", nil)
	}

	var client models.Client
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, false, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
		}
		return models.Client{}, false, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read client profile: "+err.Error(), nil)
	}
	return client, true, nil
}

// sinceForPeriod maps a period code to its start date. Unknown or empty
// periods mean the full history.
func sinceForPeriod(period string) time.Time {
	today := now.BeginningOfDay()
	switch strings.ToUpper(period) {
	case "1M":
		return today.AddDate(0, -1, 0)
	case "3M":
		return today.AddDate(0, -3, 0)
	case "6M":
		return today.AddDate(0, -6, 0)
	case "1Y":
		return today.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

func clientTxns(clientID uint, since time.Time) ([]engine.Txn, error) {
	query := database.Database.Db.
		Where("client_id = ? AND is_deleted = false", clientID)
	if !since.IsZero() {
		query = query.Where("transaction_date >= ?", since)
	}

	var rows []models.Transaction
	if err := query.Order("transaction_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	txns := make([]engine.Txn, 0, len(rows))
	for _, r := range rows {
		txns = append(txns, engine.Txn{
			ProductID:  strconv.Itoa(int(r.ProductID)),
			SchemeName: r.SchemeName,
			Type:       r.TransactionType,
			Amount:     r.Amount,
			Units:      r.Units,
			NAV:        r.NAV,
			Category:   r.Category,
			Date:       r.TransactionDate,
		})
	}
	return txns, nil
}

func buildPortfolio(client models.Client, since time.Time) (engine.Portfolio, error) {
	txns, err := clientTxns(client.ID, since)
	if err != nil {
		return engine.Portfolio{}, err
	}
	return engine.BuildPortfolio(txns, client.CurrentValue), nil
}

// GetPortfolio returns the client's reconstructed holdings and allocation
func GetPortfolio(c *fiber.Ctx) error {
	client, ok, resp := findClient(c)
	if !ok {
		return resp
	}

	portfolio, err := buildPortfolio(client, sinceForPeriod(c.Query("period")))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read transactions: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio fetched!", portfolio)
}

// PreviewImpact computes before/after allocation for a proposed cart
func PreviewImpact(c *fiber.Ctx) error {
	client, ok, resp := findClient(c)
	if !ok {
		return resp
	}

	reqData, ok := c.Locals("validatedImpactPreview").(*portfolioValidator.ImpactPreviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	portfolio, err := buildPortfolio(client, time.Time{})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read transactions: "+err.Error(), nil)
	}

	products, err := loadProducts(orderValidator.ProductIDs(reqData.Items))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read product catalog: "+err.Error(), nil)
	}

	items := orderValidator.ToEngineItems(reqData.Items, products)
	preview := engine.PreviewImpact(portfolio.Allocation, portfolio.TotalValue, items)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Impact preview computed!", preview)
}

// targetFromQuery reads an explicit target allocation off the query string.
// All four bucket values must be present for the target to count.
func targetFromQuery(c *fiber.Ctx) (engine.Allocation, bool) {
	equity := c.QueryFloat("equity", -1)
	debt := c.QueryFloat("debt", -1)
	hybrid := c.QueryFloat("hybrid", -1)
	others := c.QueryFloat("others", -1)
	if equity < 0 || debt < 0 || hybrid < 0 || others < 0 {
		return engine.Allocation{}, false
	}
	return engine.Allocation{Equity: equity, Debt: debt, Hybrid: hybrid, Others: others}, true
}

// GetGaps compares the client's allocation to an explicit or risk-derived target
func GetGaps(c *fiber.Ctx) error {
	client, ok, resp := findClient(c)
	if !ok {
		return resp
	}

	portfolio, err := buildPortfolio(client, time.Time{})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read transactions: "+err.Error(), nil)
	}

	target, explicit := targetFromQuery(c)
	if !explicit {
		target = engine.TargetForRiskProfile(client.RiskProfile)
	}
	gaps := engine.AnalyzeGaps(portfolio.Allocation, target)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Allocation gaps computed!", fiber.Map{
		"riskProfile": client.RiskProfile,
		"target":      target,
		"gaps":        gaps,
	})
}

// GetRebalancing turns allocation gaps into buy/sell/switch suggestions
func GetRebalancing(c *fiber.Ctx) error {
	client, ok, resp := findClient(c)
	if !ok {
		return resp
	}

	portfolio, err := buildPortfolio(client, time.Time{})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read transactions: "+err.Error(), nil)
	}

	target, explicit := targetFromQuery(c)
	if !explicit {
		target = engine.TargetForRiskProfile(client.RiskProfile)
	}
	gaps := engine.AnalyzeGaps(portfolio.Allocation, target)
	suggestions := engine.SuggestRebalancing(gaps, portfolio.Holdings, portfolio.TotalValue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rebalancing suggestions generated!", fiber.Map{
		"target":      target,
		"gaps":        gaps,
		"suggestions": suggestions,
	})
}

// GetTaxHarvest flags holdings with unrealized losses worth harvesting
func GetTaxHarvest(c *fiber.Ctx) error {
	client, ok, resp := findClient(c)
	if !ok {
		return resp
	}

	portfolio, err := buildPortfolio(client, time.Time{})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read transactions: "+err.Error(), nil)
	}

	suggestions := engine.SuggestTaxLossHarvest(portfolio.Holdings)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tax-loss suggestions generated!", fiber.Map{
		"suggestions": suggestions,
	})
}

func loadProducts(ids []uint) (map[uint]models.Product, error) {
	products := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	var rows []models.Product
	if err := database.Database.Db.Where("id IN ? AND is_deleted = false", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		products[p.ID] = p
	}
	return products, nil
}
