package navfeed

import (
	"log"
	"strconv"
	"time"
	"wealthdesk/database"
	"wealthdesk/engine"
	"wealthdesk/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[NAV-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RefreshProducts updates catalog NAVs from the feed.
func RefreshProducts(feed *Client) {
	quotes, err := feed.FetchLatest()
	if err != nil {
		logScheduler("NAV refresh failed: " + err.Error())
		return
	}

	db := database.Database.Db
	updated := 0
	for _, q := range quotes {
		if q.NAV <= 0 {
			continue
		}
		result := db.Model(&models.Product{}).
			Where("scheme_code = ? AND is_deleted = false", q.SchemeCode).
			Update("nav", q.NAV)
		if result.Error != nil {
			logScheduler("NAV update failed for " + q.SchemeCode + ": " + result.Error.Error())
			continue
		}
		updated += int(result.RowsAffected)
	}
	logScheduler("NAV refresh completed, " + strconv.Itoa(updated) + " schemes updated")
}

func nextDueDate(from time.Time, frequency string) time.Time {
	switch frequency {
	case string(engine.FrequencyDaily):
		return from.AddDate(0, 0, 1)
	case string(engine.FrequencyWeekly):
		return from.AddDate(0, 0, 7)
	case string(engine.FrequencyQuarterly):
		return from.AddDate(0, 3, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// ProcessDueSIPs converts due SIP mandates into purchase transactions and
// advances their next due date.
func ProcessDueSIPs() {
	db := database.Database.Db
	now := time.Now()

	var due []models.SIPRegistration
	if err := db.Where("status = ? AND next_due_date <= ? AND is_deleted = false",
		models.SIPActive, now).Find(&due).Error; err != nil {
		logScheduler("Error fetching due SIPs: " + err.Error())
		return
	}

	for _, sip := range due {
		var product models.Product
		if err := db.Where("id = ? AND is_deleted = false", sip.ProductID).First(&product).Error; err != nil {
			logScheduler("Skipping SIP: scheme not found for registration")
			continue
		}
		if product.NAV <= 0 {
			logScheduler("Skipping SIP for " + product.SchemeName + ": NAV unavailable")
			continue
		}

		txn := models.Transaction{
			ClientID:        sip.ClientID,
			ProductID:       sip.ProductID,
			SchemeName:      product.SchemeName,
			TransactionType: models.TxnSIPPurchase,
			Amount:          sip.Amount,
			Units:           sip.Amount / product.NAV,
			NAV:             product.NAV,
			Category:        product.Category,
			TransactionDate: now,
		}
		if err := db.Create(&txn).Error; err != nil {
			logScheduler("Failed to record SIP purchase: " + err.Error())
			continue
		}

		sip.NextDueDate = nextDueDate(sip.NextDueDate, sip.Frequency)
		if !sip.EndDate.IsZero() && sip.NextDueDate.After(sip.EndDate) {
			sip.Status = models.SIPCompleted
		}
		db.Save(&sip)
	}

	if len(due) > 0 {
		logScheduler("Processed " + strconv.Itoa(len(due)) + " due SIP mandates")
	}
}

// StartScheduler wires the NAV refresh and SIP jobs onto a cron runner.
func StartScheduler(feed *Client, navSpec, sipSpec string) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(navSpec, func() { RefreshProducts(feed) }); err != nil {
		log.Fatalf("Invalid NAV refresh spec %q: %v", navSpec, err)
	}
	if _, err := c.AddFunc(sipSpec, ProcessDueSIPs); err != nil {
		log.Fatalf("Invalid SIP run spec %q: %v", sipSpec, err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
