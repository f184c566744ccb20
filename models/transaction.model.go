package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction types
const (
	TxnPurchase    = "PURCHASE"
	TxnSIPPurchase = "SIP_PURCHASE"
	TxnRedemption  = "REDEMPTION"
	TxnSwitchIn    = "SWITCH_IN"
	TxnSwitchOut   = "SWITCH_OUT"
)

// Transaction is one executed flow in a client's history. Units carry the
// allotted/redeemed units at the execution NAV so holdings can be replayed.
type Transaction struct {
	gorm.Model
	ClientID        uint   `gorm:"index;not null"`
	ProductID       uint   `gorm:"index;not null"`
	SchemeName      string `gorm:"default:''"`
	TransactionType string `gorm:"not null"`
	Amount          float64
	Units           float64
	NAV             float64
	Category        string `gorm:"default:''"`
	TransactionDate time.Time
	IsDeleted       bool `gorm:"default:false"`
}
