package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// create inserts record. Hooks on the model verify that referenced records
// exist.
func create[T any](db *gorm.DB, record T) (T, error) {
	err := db.Create(&record).Error
	return record, err
}

func (s *Store) AddOrganization(organization models.Organization) (models.Organization, error) {
	return create(s.db, organization)
}

func (s *Store) AddDepartment(department models.Department) (models.Department, error) {
	return create(s.db, department)
}

func (s *Store) AddManager(manager models.Manager) (models.Manager, error) {
	return create(s.db, manager)
}

func (s *Store) AddTeam(team models.Team) (models.Team, error) {
	return create(s.db, team)
}

func (s *Store) AddBudget(budget models.Budget) (models.Budget, error) {
	return create(s.db, budget)
}

// UpdateTeamBudget links the team to the budget. The budget must belong to
// the team.
func (s *Store) UpdateTeamBudget(teamID, budgetID uuid.UUID) (models.Team, error) {
	var team models.Team

	err := s.transaction(func(tx *Store) error {
		var err error
		team, err = tx.Team(teamID)
		if err != nil {
			return err
		}

		budget, err := tx.Budget(budgetID)
		if err != nil {
			return err
		}

		if budget.TeamID != team.ID {
			return models.ErrBudgetTeamMismatch
		}

		team.BudgetID = &budget.ID
		return tx.db.Model(&team).Update("budget_id", budget.ID).Error
	})
	if err != nil {
		return models.Team{}, err
	}

	return team, nil
}

// AddBudgetItem creates the item or, if an item with the same ID exists,
// replaces all of its fields with the ones of item. Fields that are not set
// on item are reset to their zero value.
//
// The returned bool is true when the item was created.
func (s *Store) AddBudgetItem(item models.BudgetItem) (models.BudgetItem, bool, error) {
	created := false

	err := s.transaction(func(tx *Store) error {
		if item.ID != uuid.Nil {
			existing, err := tx.BudgetItem(item.ID)
			if err == nil {
				item.CreatedAt = existing.CreatedAt
				return tx.db.Save(&item).Error
			}

			if !errors.Is(err, models.ErrResourceNotFound) {
				return err
			}
		}

		created = true
		return tx.db.Create(&item).Error
	})
	if err != nil {
		return models.BudgetItem{}, false, err
	}

	return item, created, nil
}

// UpdateBudgetItemSpent sets the amount spent for an item and leaves all
// other fields untouched.
func (s *Store) UpdateBudgetItemSpent(id uuid.UUID, spent decimal.Decimal) (models.BudgetItem, error) {
	item, err := s.BudgetItem(id)
	if err != nil {
		return models.BudgetItem{}, err
	}

	err = s.db.Model(&item).Update("spent", spent).Error
	if err != nil {
		return models.BudgetItem{}, err
	}

	item.Spent = spent
	return item, nil
}

// DeleteBudgetItem permanently deletes the item.
func (s *Store) DeleteBudgetItem(id uuid.UUID) error {
	item, err := s.BudgetItem(id)
	if err != nil {
		return err
	}

	return s.db.Delete(&item).Error
}
