package models

import (
	"time"

	"gorm.io/gorm"
)

// Nominee is a nominee declaration persisted with an order. Guardian fields
// are populated only when the nominee is a minor.
type Nominee struct {
	gorm.Model
	OrderID              uint   `gorm:"index;not null"`
	Name                 string `gorm:"not null"`
	Relationship         string `gorm:"not null"`
	DateOfBirth          time.Time
	PanNumber            string `gorm:"default:''"`
	Percentage           float64
	GuardianName         string `gorm:"default:''"`
	GuardianPan          string `gorm:"default:''"`
	GuardianRelationship string `gorm:"default:''"`
	IsDeleted            bool   `gorm:"default:false"`
}
