package models

import (
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderPending   = "PENDING"
	OrderSubmitted = "SUBMITTED"
	OrderCompleted = "COMPLETED"
	OrderRejected  = "REJECTED"
)

// Order is a validated basket submitted for a client.
type Order struct {
	gorm.Model
	Reference     string `gorm:"unique;not null"` // uuid assigned at placement
	ClientID      uint   `gorm:"index;not null"`
	FolioID       uint
	EUIN          string `gorm:"default:''"`
	NomineeOptOut bool   `gorm:"default:false"`
	Status        string `gorm:"default:'PENDING'"`
	TotalAmount   float64
	IsDeleted     bool `gorm:"default:false"`
}

// OrderItem is one line of an order basket.
type OrderItem struct {
	gorm.Model
	OrderID         uint `gorm:"index;not null"`
	ProductID       uint `gorm:"not null"`
	SourceProductID uint // switch source, 0 otherwise
	TransactionType string
	Amount          float64
	Units           float64
	FullRedemption  bool `gorm:"default:false"`
	IsDeleted       bool `gorm:"default:false"`
}
