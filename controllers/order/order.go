package orderController

import (
	"errors"
	"log"
	"strings"
	"time"
	"wealthdesk/config"
	"wealthdesk/database"
	"wealthdesk/engine"
	"wealthdesk/middleware"
	"wealthdesk/models"
	"wealthdesk/notify"
	orderValidator "wealthdesk/validators/order"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Controller handles order-entry flows. The notifier is injected so tests
// and the engine never touch a mail transport.
type Controller struct {
	notifier notify.Notifier
}

func New(notifier notify.Notifier) *Controller {
	return &Controller{notifier: notifier}
}

func findClientByID(c *fiber.Ctx, id uint) (models.Client, bool, error) {
	var client models.Client
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Client{}, false, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Client not found!", nil)
		}
		return models.Client{}, false, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read client profile: "+err.Error(), nil)
	}
	return client, true, nil
}

// CalculateRedemption computes gross/net/final proceeds for one scheme
func (ctrl *Controller) CalculateRedemption(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRedemption").(*orderValidator.RedemptionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var product models.Product
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ProductID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scheme not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read product catalog: "+err.Error(), nil)
	}

	calc, err := engine.CalculateRedemption(engine.RedemptionInput{
		SchemeName: product.SchemeName,
		NAV:        product.NAV,
		Units:      reqData.Units,
		Amount:     reqData.Amount,
		Type:       engine.RedemptionType(reqData.RedemptionType),
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Redemption calculated!", calc)
}

// InstantEligibility checks whether an amount qualifies for instant redemption
func (ctrl *Controller) InstantEligibility(c *fiber.Ctx) error {
	productID := c.QueryInt("productId")
	amount := c.QueryFloat("amount")
	if productID <= 0 || amount <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "productId and amount are required!", nil)
	}

	var info *engine.ProductInfo
	var product models.Product
	err := database.Database.Db.Where("id = ? AND is_deleted = false", productID).First(&product).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read product catalog: "+err.Error(), nil)
	}
	if err == nil && product.InstantEnabled {
		info = &engine.ProductInfo{
			ID:         product.SchemeCode,
			SchemeName: product.SchemeName,
			NAV:        product.NAV,
		}
	}

	result := engine.CheckInstantEligibility(info, amount)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instant redemption eligibility checked!", result)
}

// ProjectSIP compounds a SIP schedule into a monthly projection
func (ctrl *Controller) ProjectSIP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSIPProject").(*orderValidator.SIPProjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	projection, err := engine.ProjectSIP(engine.SIPInput{
		Amount:               reqData.Amount,
		Frequency:            engine.SIPFrequency(reqData.Frequency),
		DurationMonths:       reqData.DurationMonths,
		ExpectedAnnualReturn: reqData.ExpectedAnnualReturn,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SIP projection computed!", projection)
}

// RegisterSIP creates a recurring-investment mandate for a client
func (ctrl *Controller) RegisterSIP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSIPRegister").(*orderValidator.RegisterSIPRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client, ok, resp := findClientByID(c, reqData.ClientID)
	if !ok {
		return resp
	}

	var product models.Product
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.ProductID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Scheme not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read product catalog: "+err.Error(), nil)
	}

	if product.MinInvestment > 0 && reqData.Amount < product.MinInvestment {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"amount": "SIP amount is below the scheme minimum!",
		})
	}

	start := time.Now()
	if reqData.StartDate != "" {
		start, _ = time.Parse("2006-01-02", reqData.StartDate)
	}

	sip := models.SIPRegistration{
		ClientID:       client.ID,
		ProductID:      product.ID,
		Amount:         reqData.Amount,
		Frequency:      strings.ToUpper(reqData.Frequency),
		DurationMonths: reqData.DurationMonths,
		NextDueDate:    start,
		EndDate:        start.AddDate(0, reqData.DurationMonths, 0),
		Status:         models.SIPActive,
	}
	if err := database.Database.Db.Create(&sip).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register SIP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "SIP registered!", fiber.Map{
		"sipId":       sip.ID,
		"nextDueDate": sip.NextDueDate,
		"endDate":     sip.EndDate,
	})
}

func toEngineNominees(nominees []orderValidator.NomineeRequest) []engine.Nominee {
	out := make([]engine.Nominee, 0, len(nominees))
	for _, n := range nominees {
		dob := time.Time{}
		if n.DateOfBirth != "" {
			dob, _ = time.Parse("2006-01-02", n.DateOfBirth)
		}
		out = append(out, engine.Nominee{
			Name:                 n.Name,
			Relationship:         strings.ToUpper(n.Relationship),
			DateOfBirth:          dob,
			PAN:                  strings.ToUpper(n.Pan),
			Percentage:           n.Percentage,
			GuardianName:         n.GuardianName,
			GuardianPAN:          strings.ToUpper(n.GuardianPan),
			GuardianRelationship: strings.ToUpper(n.GuardianRelationship),
		})
	}
	return out
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

// orderAMC picks the folio AMC from the first resolvable scheme in the cart.
// Switch lines carry the scheme on the target/source legs instead of
// ProductID.
func orderAMC(items []orderValidator.CartItemRequest, products map[uint]models.Product) string {
	for _, item := range items {
		for _, id := range []uint{item.ProductID, item.TargetProductID, item.SourceProductID} {
			if p, found := products[id]; found && p.AMC != "" {
				return p.AMC
			}
		}
	}
	return ""
}

// findOrCreateFolio reuses the client's folio with the AMC or allots one.
func findOrCreateFolio(tx *gorm.DB, clientID uint, amc string) (models.Folio, error) {
	var folio models.Folio
	err := tx.Where("client_id = ? AND amc = ? AND is_deleted = false", clientID, amc).First(&folio).Error
	if err == nil {
		return folio, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return folio, err
	}

	folio = models.Folio{
		ClientID: clientID,
		AMC:      amc,
		FolioNo:  "WD-" + strings.ToUpper(uuid.NewString()[:8]),
	}
	return folio, tx.Create(&folio).Error
}

// PlaceOrder validates a cart against catalog and nominee rules and persists it
func (ctrl *Controller) PlaceOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrder").(*orderValidator.PlaceOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client, ok, resp := findClientByID(c, reqData.ClientID)
	if !ok {
		return resp
	}

	products, err := loadProducts(orderValidator.ProductIDs(reqData.Items))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read product catalog: "+err.Error(), nil)
	}

	items := orderValidator.ToEngineItems(reqData.Items, products)
	result := engine.ValidateOrder(engine.OrderInput{
		Items:         items,
		Products:      orderValidator.Catalog(products),
		MarketValues:  reqData.MarketValues,
		PAN:           strings.ToUpper(client.PanNumber),
		EUIN:          reqData.EUIN,
		Nominees:      toEngineNominees(reqData.Nominees),
		NomineeOptOut: reqData.NomineeOptOut,
	})
	if !result.Valid {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Order validation failed!", fiber.Map{
			"errors":   result.Errors,
			"warnings": result.Warnings,
		})
	}

	var totalAmount float64
	for _, item := range items {
		totalAmount += item.OrderAmount()
	}

	db := database.Database.Db
	tx := db.Begin()

	folio, err := findOrCreateFolio(tx, client.ID, orderAMC(reqData.Items, products))
	if err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to allot folio!", nil)
	}

	order := models.Order{
		Reference:     uuid.NewString(),
		ClientID:      client.ID,
		FolioID:       folio.ID,
		EUIN:          reqData.EUIN,
		NomineeOptOut: reqData.NomineeOptOut,
		Status:        models.OrderSubmitted,
		TotalAmount:   totalAmount,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	for _, item := range reqData.Items {
		row := models.OrderItem{
			OrderID:         order.ID,
			ProductID:       item.ProductID,
			SourceProductID: item.SourceProductID,
			TransactionType: strings.ToUpper(item.TransactionType),
			Amount:          item.Amount,
			Units:           item.Units,
			FullRedemption:  strings.HasPrefix(strings.ToUpper(item.TransactionType), "FULL_"),
		}
		if strings.EqualFold(item.TransactionType, "SWITCH") || strings.EqualFold(item.TransactionType, "FULL_SWITCH") {
			row.ProductID = item.TargetProductID
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order items!", nil)
		}
	}

	for _, n := range reqData.Nominees {
		dob := time.Time{}
		if n.DateOfBirth != "" {
			dob, _ = time.Parse("2006-01-02", n.DateOfBirth)
		}
		row := models.Nominee{
			OrderID:              order.ID,
			Name:                 n.Name,
			Relationship:         strings.ToUpper(n.Relationship),
			DateOfBirth:          dob,
			PanNumber:            strings.ToUpper(n.Pan),
			Percentage:           n.Percentage,
			GuardianName:         n.GuardianName,
			GuardianPan:          strings.ToUpper(n.GuardianPan),
			GuardianRelationship: strings.ToUpper(n.GuardianRelationship),
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record nominees!", nil)
		}
	}

	tx.Commit()

	if err := ctrl.notifier.OrderConfirmation(client.Email, client.Name, order.Reference, totalAmount); err != nil {
		log.Printf("Order confirmation notification failed for %s: %v", order.Reference, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order placed!", fiber.Map{
		"orderId":   order.ID,
		"reference": order.Reference,
		"folioNo":   folio.FolioNo,
		"status":    order.Status,
		"warnings":  result.Warnings,
	})
}

// ListOrders returns a client's order history
func (ctrl *Controller) ListOrders(c *fiber.Ctx) error {
	clientID := c.QueryInt("clientId")
	if clientID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "clientId is required!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", config.AppConfig.OrderPageLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = config.AppConfig.OrderPageLimit
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.Order{}).Where("client_id = ? AND is_deleted = false", clientID)

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	orderIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	itemsByOrder := map[uint][]models.OrderItem{}
	if len(orderIDs) > 0 {
		var items []models.OrderItem
		if err := db.Where("order_id IN ? AND is_deleted = false", orderIDs).Find(&items).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch order items!", nil)
		}
		for _, item := range items {
			itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
		}
	}

	type OrderResponse struct {
		models.Order
		Items []models.OrderItem `json:"items"`
	}
	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderResponse{Order: o, Items: itemsByOrder[o.ID]})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched!", fiber.Map{
		"orders": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
