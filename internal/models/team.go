package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team is the leaf of the organizational tree. It owns at most one Budget,
// which is linked through BudgetID.
type Team struct {
	DefaultModel
	Manager   Manager   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ManagerID uuid.UUID `gorm:"index"`
	Name      string
	BudgetID  *uuid.UUID
}

func (t *Team) BeforeSave(tx *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)

	if t.Name == "" {
		return ErrNameMissing
	}

	err := lookup(tx).First(&Manager{}, "id = ?", t.ManagerID).Error
	if err != nil {
		return err
	}

	if t.BudgetID == nil {
		return nil
	}

	var budget Budget
	err = lookup(tx).First(&budget, "id = ?", *t.BudgetID).Error
	if err != nil {
		return err
	}

	if budget.TeamID != t.ID {
		return ErrBudgetTeamMismatch
	}

	return nil
}
