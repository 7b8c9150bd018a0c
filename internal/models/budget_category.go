package models

import (
	"fmt"

	"gorm.io/gorm"
)

// BudgetCategory is an entry of the fixed category reference list.
type BudgetCategory struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Position int
}

// DefaultBudgetCategories is the reference list in display order.
var DefaultBudgetCategories = []string{
	"Training and Courses",
	"Conferences",
	"Educational Materials",
	"Team Activities",
	"Travel",
}

// seedBudgetCategories makes sure that the reference list exists. Existing
// categories are left untouched.
func seedBudgetCategories(db *gorm.DB) error {
	for i, name := range DefaultBudgetCategories {
		err := db.
			Where(BudgetCategory{Name: name}).
			Attrs(BudgetCategory{Position: i + 1}).
			FirstOrCreate(&BudgetCategory{}).
			Error
		if err != nil {
			return fmt.Errorf("error creating budget category %s: %w", name, err)
		}
	}

	return nil
}
