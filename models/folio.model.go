package models

import (
	"gorm.io/gorm"
)

// Folio is a client's account number with one AMC, reused across orders.
type Folio struct {
	gorm.Model
	ClientID  uint   `gorm:"index;not null"`
	AMC       string `gorm:"default:''"`
	FolioNo   string `gorm:"unique;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
