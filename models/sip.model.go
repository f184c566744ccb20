package models

import (
	"time"

	"gorm.io/gorm"
)

// SIP statuses
const (
	SIPActive    = "ACTIVE"
	SIPPaused    = "PAUSED"
	SIPCompleted = "COMPLETED"
)

// SIPRegistration is an active recurring-investment mandate. The scheduler
// creates a purchase transaction each time NextDueDate passes.
type SIPRegistration struct {
	gorm.Model
	ClientID       uint `gorm:"index;not null"`
	ProductID      uint `gorm:"not null"`
	Amount         float64
	Frequency      string `gorm:"not null"` // DAILY, WEEKLY, MONTHLY, QUARTERLY
	DurationMonths int
	NextDueDate    time.Time
	EndDate        time.Time
	Status         string `gorm:"default:'ACTIVE'"`
	IsDeleted      bool   `gorm:"default:false"`
}
