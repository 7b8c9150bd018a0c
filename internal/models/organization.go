package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Organization is the root of the budget hierarchy. All other resources
// reference it directly or transitively.
type Organization struct {
	DefaultModel
	Name        string
	LeaderName  string
	TotalBudget decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (o *Organization) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.LeaderName = strings.TrimSpace(o.LeaderName)

	if o.Name == "" {
		return ErrNameMissing
	}

	return nil
}
