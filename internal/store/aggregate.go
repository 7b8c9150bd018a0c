package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidScope = errors.New("the scope type is not supported")

// CategoryTotal is the sum of all budget items of one category.
type CategoryTotal struct {
	Category  models.BudgetCategory
	Allocated decimal.Decimal
	Spent     decimal.Decimal
}

// Summary is the aggregation of one scope of the organizational tree.
type Summary struct {
	Scope       Scope
	Name        string
	TotalBudget decimal.Decimal // Nominal budget of the scope
	Budgeted    decimal.Decimal // Sum of the nominal budgets of the direct children
	Unallocated decimal.Decimal // TotalBudget - Budgeted, negative when overcommitted
	Allocated   decimal.Decimal // Sum of all budget item amounts
	Spent       decimal.Decimal // Sum of all budget item spendings
	Remaining   decimal.Decimal // TotalBudget - Spent
	Departments int
	Managers    int
	Teams       int
	Categories  []CategoryTotal
}

// TeamBudget is a team together with the total amount of its budget.
type TeamBudget struct {
	Team        models.Team
	TotalAmount decimal.Decimal
}

// ManagerAllocation is the part of a department budget that is assigned to
// the teams of one manager.
type ManagerAllocation struct {
	Manager     models.Manager
	Teams       []TeamBudget
	TotalAmount decimal.Decimal
	Percent     decimal.Decimal // Share of the department budget, one decimal place
}

// DistributionEntry is one slice of a distribution chart.
type DistributionEntry struct {
	Name  string
	Value decimal.Decimal
}

// DepartmentOverview is the drill-down of a department into its managers.
type DepartmentOverview struct {
	Department   models.Department
	TotalBudget  decimal.Decimal
	Allocated    decimal.Decimal
	Unallocated  decimal.Decimal
	Managers     []ManagerAllocation
	Distribution []DistributionEntry
}

// Dashboard is the cross-organization overview.
type Dashboard struct {
	TotalBudget    decimal.Decimal
	Organizations  int
	Departments    int
	Teams          int
	Categories     []CategoryTotal
	TotalAllocated decimal.Decimal
}

// UnallocatedEntry is the name of the distribution entry for the part of a
// department budget that is not assigned to any team.
const UnallocatedEntry = "Unallocated"

var hundred = decimal.NewFromInt(100)

// sumItems returns the sums of the allocated and the spent amounts.
func sumItems(items []models.BudgetItem) (allocated, spent decimal.Decimal) {
	for _, item := range items {
		allocated = allocated.Add(item.Amount)
		spent = spent.Add(item.Spent)
	}

	return allocated, spent
}

// items returns the budget items of all budgets that are linked to a team in
// the scope. Budgets that are not linked to their team are not included.
func (s *Store) items(sc Scope) ([]models.BudgetItem, error) {
	items := make([]models.BudgetItem, 0)

	err := sc.teams(s.db.
		Model(&models.BudgetItem{}).
		Select("budget_items.*").
		Joins("JOIN teams ON teams.budget_id = budget_items.budget_id")).
		Order("budget_items.created_at ASC").
		Find(&items).Error
	if err != nil {
		return []models.BudgetItem{}, err
	}

	return items, nil
}

// teamsIn returns all teams in the scope.
func (s *Store) teamsIn(sc Scope) ([]models.Team, error) {
	teams := make([]models.Team, 0)

	err := sc.teams(s.db.
		Model(&models.Team{}).
		Select("teams.*")).
		Order("teams.name ASC").
		Find(&teams).Error
	if err != nil {
		return []models.Team{}, err
	}

	return teams, nil
}

// teamBudgets returns the total amount of the linked budget for each team in
// the scope, keyed by team ID. Teams without a linked budget are missing.
func (s *Store) teamBudgets(sc Scope) (map[uuid.UUID]decimal.Decimal, error) {
	var budgets []models.Budget

	err := sc.teams(s.db.
		Model(&models.Budget{}).
		Select("budgets.*").
		Joins("JOIN teams ON teams.budget_id = budgets.id")).
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		totals[budget.TeamID] = budget.TotalAmount
	}

	return totals, nil
}

func sumTotals(totals map[uuid.UUID]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, total := range totals {
		sum = sum.Add(total)
	}

	return sum
}

// CategoryDistribution groups the items by category and sums their amounts.
// Categories are returned in display order, categories without any
// allocated amount are omitted.
func (s *Store) CategoryDistribution(items []models.BudgetItem) ([]CategoryTotal, error) {
	categories, err := s.BudgetCategories()
	if err != nil {
		return []CategoryTotal{}, err
	}

	totals := make(map[uuid.UUID]*CategoryTotal, len(categories))
	for _, item := range items {
		total, ok := totals[item.BudgetCategoryID]
		if !ok {
			total = &CategoryTotal{}
			totals[item.BudgetCategoryID] = total
		}

		total.Allocated = total.Allocated.Add(item.Amount)
		total.Spent = total.Spent.Add(item.Spent)
	}

	distribution := make([]CategoryTotal, 0, len(categories))
	for _, category := range categories {
		total, ok := totals[category.ID]
		if !ok || !total.Allocated.IsPositive() {
			continue
		}

		total.Category = category
		distribution = append(distribution, *total)
	}

	return distribution, nil
}

// Summary aggregates the budgets of a scope. It returns ErrResourceNotFound
// if the root of the scope does not exist.
func (s *Store) Summary(sc Scope) (Summary, error) {
	summary := Summary{Scope: sc}

	teamBudgets := map[uuid.UUID]decimal.Decimal{}
	if sc.Type != ScopeOrganization {
		var err error
		teamBudgets, err = s.teamBudgets(sc)
		if err != nil {
			return Summary{}, err
		}
	}

	items, err := s.items(sc)
	if err != nil {
		return Summary{}, err
	}
	summary.Allocated, summary.Spent = sumItems(items)

	switch sc.Type {
	case ScopeOrganization:
		organization, err := s.Organization(sc.ID)
		if err != nil {
			return Summary{}, err
		}

		departments, err := s.DepartmentsByOrganization(sc.ID)
		if err != nil {
			return Summary{}, err
		}

		var managers int64
		err = s.db.
			Model(&models.Manager{}).
			Joins("JOIN departments ON departments.id = managers.department_id").
			Where("departments.organization_id = ?", sc.ID).
			Count(&managers).Error
		if err != nil {
			return Summary{}, err
		}

		summary.Name = organization.Name
		summary.TotalBudget = organization.TotalBudget
		for _, department := range departments {
			summary.Budgeted = summary.Budgeted.Add(department.TotalBudget)
		}
		summary.Departments = len(departments)
		summary.Managers = int(managers)

	case ScopeDepartment:
		department, err := s.Department(sc.ID)
		if err != nil {
			return Summary{}, err
		}

		managers, err := s.ManagersByDepartment(sc.ID)
		if err != nil {
			return Summary{}, err
		}

		summary.Name = department.Name
		summary.TotalBudget = department.TotalBudget
		summary.Budgeted = sumTotals(teamBudgets)
		summary.Managers = len(managers)

	case ScopeManager:
		manager, err := s.Manager(sc.ID)
		if err != nil {
			return Summary{}, err
		}

		summary.Name = manager.Name
		summary.TotalBudget = sumTotals(teamBudgets)
		summary.Budgeted = summary.TotalBudget

	case ScopeTeam:
		team, err := s.Team(sc.ID)
		if err != nil {
			return Summary{}, err
		}

		summary.Name = team.Name
		summary.TotalBudget = sumTotals(teamBudgets)
		summary.Budgeted = summary.Allocated

	default:
		return Summary{}, fmt.Errorf("%w: %s", ErrInvalidScope, sc.Type)
	}

	if sc.Type != ScopeTeam {
		teams, err := s.teamsIn(sc)
		if err != nil {
			return Summary{}, err
		}
		summary.Teams = len(teams)
	}

	summary.Unallocated = summary.TotalBudget.Sub(summary.Budgeted)
	summary.Remaining = summary.TotalBudget.Sub(summary.Spent)

	summary.Categories, err = s.CategoryDistribution(items)
	if err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// DepartmentOverview splits the department budget by manager.
func (s *Store) DepartmentOverview(id uuid.UUID) (DepartmentOverview, error) {
	department, err := s.Department(id)
	if err != nil {
		return DepartmentOverview{}, err
	}

	managers, err := s.ManagersByDepartment(id)
	if err != nil {
		return DepartmentOverview{}, err
	}

	teamBudgets, err := s.teamBudgets(DepartmentScope(id))
	if err != nil {
		return DepartmentOverview{}, err
	}

	overview := DepartmentOverview{
		Department:   department,
		TotalBudget:  department.TotalBudget,
		Managers:     make([]ManagerAllocation, 0, len(managers)),
		Distribution: make([]DistributionEntry, 0, len(managers)+1),
	}

	for _, manager := range managers {
		teams, err := s.TeamsByManager(manager.ID)
		if err != nil {
			return DepartmentOverview{}, err
		}

		allocation := ManagerAllocation{
			Manager: manager,
			Teams:   make([]TeamBudget, 0, len(teams)),
			Percent: decimal.Zero,
		}

		for _, team := range teams {
			// Teams without a linked budget are listed with zero
			total := teamBudgets[team.ID]
			allocation.Teams = append(allocation.Teams, TeamBudget{Team: team, TotalAmount: total})
			allocation.TotalAmount = allocation.TotalAmount.Add(total)
		}

		if !department.TotalBudget.IsZero() {
			allocation.Percent = allocation.TotalAmount.Div(department.TotalBudget).Mul(hundred).Round(1)
		}

		overview.Allocated = overview.Allocated.Add(allocation.TotalAmount)
		overview.Managers = append(overview.Managers, allocation)
		overview.Distribution = append(overview.Distribution, DistributionEntry{
			Name:  manager.Name,
			Value: allocation.TotalAmount,
		})
	}

	overview.Unallocated = overview.TotalBudget.Sub(overview.Allocated)
	if overview.Unallocated.IsPositive() {
		overview.Distribution = append(overview.Distribution, DistributionEntry{
			Name:  UnallocatedEntry,
			Value: overview.Unallocated,
		})
	}

	return overview, nil
}

// Dashboard aggregates all organizations or, if organizationID is not nil,
// a single organization. An unknown organization results in an empty
// dashboard.
func (s *Store) Dashboard(organizationID *uuid.UUID) (Dashboard, error) {
	dashboard := Dashboard{Categories: []CategoryTotal{}}
	sc := Scope{Type: ScopeAll}

	if organizationID == nil {
		organizations, err := s.Organizations()
		if err != nil {
			return Dashboard{}, err
		}

		departments, err := s.Departments()
		if err != nil {
			return Dashboard{}, err
		}

		for _, organization := range organizations {
			dashboard.TotalBudget = dashboard.TotalBudget.Add(organization.TotalBudget)
		}
		dashboard.Organizations = len(organizations)
		dashboard.Departments = len(departments)
	} else {
		organization, err := s.Organization(*organizationID)
		if errors.Is(err, models.ErrResourceNotFound) {
			return dashboard, nil
		} else if err != nil {
			return Dashboard{}, err
		}

		departments, err := s.DepartmentsByOrganization(organization.ID)
		if err != nil {
			return Dashboard{}, err
		}

		sc = OrganizationScope(organization.ID)
		dashboard.TotalBudget = organization.TotalBudget
		dashboard.Organizations = 1
		dashboard.Departments = len(departments)
	}

	teams, err := s.teamsIn(sc)
	if err != nil {
		return Dashboard{}, err
	}
	dashboard.Teams = len(teams)

	items, err := s.items(sc)
	if err != nil {
		return Dashboard{}, err
	}

	dashboard.Categories, err = s.CategoryDistribution(items)
	if err != nil {
		return Dashboard{}, err
	}

	for _, category := range dashboard.Categories {
		dashboard.TotalAllocated = dashboard.TotalAllocated.Add(category.Allocated)
	}

	return dashboard, nil
}
