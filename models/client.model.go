package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is an investor managed by a relationship manager.
type Client struct {
	gorm.Model
	Name        string `gorm:"default:''"`
	Email       string `gorm:"unique;not null"`
	Mobile      string `gorm:"default:''"`
	PanNumber   string
	RiskProfile string `gorm:"default:'MODERATE'"` // CONSERVATIVE, MODERATE, MODERATELY_AGGRESSIVE, AGGRESSIVE
	// CurrentValue is the latest valuation pushed by the RTA feed; preferred
	// over the replay total when present.
	CurrentValue  float64 `gorm:"default:0"`
	ManagerID     uint    `gorm:"index"` // relationship manager owning this client
	LastValuation time.Time
	IsDeleted     bool `gorm:"default:false"`
}
