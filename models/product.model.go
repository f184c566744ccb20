package models

import (
	"gorm.io/gorm"
)

// Product is one scheme in the catalog.
type Product struct {
	gorm.Model
	SchemeCode     string `gorm:"unique;not null"`
	SchemeName     string `gorm:"not null"`
	AMC            string `gorm:"default:''"`
	Category       string `gorm:"not null"` // free text, bucketed by the engine
	NAV            float64
	MinInvestment  float64 `gorm:"default:0"`
	MaxInvestment  float64 `gorm:"default:0"` // 0 means no cap
	InstantEnabled bool    `gorm:"default:false"`
	IsDeleted      bool    `gorm:"default:false"`
}
