package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the yearly budget of a Team, split into BudgetItems.
type Budget struct {
	DefaultModel
	Team        Team            `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	TeamID      uuid.UUID       `gorm:"uniqueIndex"`
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Year        int
}

func (b *Budget) BeforeSave(tx *gorm.DB) error {
	return lookup(tx).First(&Team{}, "id = ?", b.TeamID).Error
}
