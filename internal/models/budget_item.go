package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetItem is the allocation of part of a Budget to a BudgetCategory.
//
// Spent is the only field that is edited after creation in normal use.
type BudgetItem struct {
	DefaultModel
	Budget           Budget         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BudgetID         uuid.UUID      `gorm:"index"`
	BudgetCategory   BudgetCategory `json:"-"`
	BudgetCategoryID uuid.UUID
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Allocated amount
	Spent            decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Actual amount spent
	Description      string
}

func (i *BudgetItem) BeforeSave(tx *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)

	err := lookup(tx).First(&Budget{}, "id = ?", i.BudgetID).Error
	if err != nil {
		return err
	}

	return lookup(tx).First(&BudgetCategory{}, "id = ?", i.BudgetCategoryID).Error
}

// Remaining is the allocated amount minus the amount spent. It is
// negative when the item is over budget.
func (i BudgetItem) Remaining() decimal.Decimal {
	return i.Amount.Sub(i.Spent)
}

// OverBudget reports whether more was spent than allocated.
func (i BudgetItem) OverBudget() bool {
	return i.Remaining().IsNegative()
}
