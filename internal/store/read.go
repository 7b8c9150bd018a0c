package store

import (
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Organizations returns all organizations ordered by name.
func (s *Store) Organizations() ([]models.Organization, error) {
	return list[models.Organization](s.db, "name ASC")
}

// Organization returns the organization with the given ID or
// models.ErrResourceNotFound.
func (s *Store) Organization(id uuid.UUID) (models.Organization, error) {
	return get[models.Organization](s.db, id)
}

// Departments returns all departments.
func (s *Store) Departments() ([]models.Department, error) {
	return list[models.Department](s.db, "name ASC")
}

// DepartmentsByOrganization returns the departments of an organization. The
// result is empty if the organization does not exist.
func (s *Store) DepartmentsByOrganization(organizationID uuid.UUID) ([]models.Department, error) {
	return list[models.Department](s.db, "name ASC", "organization_id = ?", organizationID)
}

// Department returns the department with the given ID or
// models.ErrResourceNotFound.
func (s *Store) Department(id uuid.UUID) (models.Department, error) {
	return get[models.Department](s.db, id)
}

// Managers returns all managers.
func (s *Store) Managers() ([]models.Manager, error) {
	return list[models.Manager](s.db, "name ASC")
}

// ManagersByDepartment returns the managers of a department. The result is
// empty if the department does not exist.
func (s *Store) ManagersByDepartment(departmentID uuid.UUID) ([]models.Manager, error) {
	return list[models.Manager](s.db, "name ASC", "department_id = ?", departmentID)
}

// Manager returns the manager with the given ID or
// models.ErrResourceNotFound.
func (s *Store) Manager(id uuid.UUID) (models.Manager, error) {
	return get[models.Manager](s.db, id)
}

// Teams returns all teams.
func (s *Store) Teams() ([]models.Team, error) {
	return list[models.Team](s.db, "name ASC")
}

// TeamsByManager returns the teams of a manager. The result is empty if the
// manager does not exist.
func (s *Store) TeamsByManager(managerID uuid.UUID) ([]models.Team, error) {
	return list[models.Team](s.db, "name ASC", "manager_id = ?", managerID)
}

// Team returns the team with the given ID or
// models.ErrResourceNotFound.
func (s *Store) Team(id uuid.UUID) (models.Team, error) {
	return get[models.Team](s.db, id)
}

// Budgets returns all budgets.
func (s *Store) Budgets() ([]models.Budget, error) {
	return list[models.Budget](s.db, "year DESC, created_at ASC")
}

// BudgetsByTeam returns the budget of a team as a list with zero or one
// element.
func (s *Store) BudgetsByTeam(teamID uuid.UUID) ([]models.Budget, error) {
	return list[models.Budget](s.db, "year DESC", "team_id = ?", teamID)
}

// Budget returns the budget with the given ID or
// models.ErrResourceNotFound.
func (s *Store) Budget(id uuid.UUID) (models.Budget, error) {
	return get[models.Budget](s.db, id)
}

// BudgetItems returns all budget items.
func (s *Store) BudgetItems() ([]models.BudgetItem, error) {
	return list[models.BudgetItem](s.db, "created_at ASC")
}

// BudgetItemsByBudget returns the items of a budget. The result is empty if
// the budget does not exist.
func (s *Store) BudgetItemsByBudget(budgetID uuid.UUID) ([]models.BudgetItem, error) {
	return list[models.BudgetItem](s.db, "created_at ASC", "budget_id = ?", budgetID)
}

// BudgetItem returns the budget item with the given ID or
// models.ErrResourceNotFound.
func (s *Store) BudgetItem(id uuid.UUID) (models.BudgetItem, error) {
	return get[models.BudgetItem](s.db, id)
}

// BudgetCategories returns the category reference list in display order.
func (s *Store) BudgetCategories() ([]models.BudgetCategory, error) {
	return list[models.BudgetCategory](s.db, "position ASC")
}

// BudgetCategory returns the budget category with the given ID or
// models.ErrResourceNotFound.
func (s *Store) BudgetCategory(id uuid.UUID) (models.BudgetCategory, error) {
	return get[models.BudgetCategory](s.db, id)
}

// OrganizationTotalSpent returns the sum spent over all budget items that
// are reachable from the organization. It is zero if the organization does
// not exist or has no budget items.
func (s *Store) OrganizationTotalSpent(organizationID uuid.UUID) (decimal.Decimal, error) {
	items, err := s.items(OrganizationScope(organizationID))
	if err != nil {
		return decimal.Zero, err
	}

	_, spent := sumItems(items)
	return spent, nil
}
