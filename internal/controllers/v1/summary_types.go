package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/store"
	"github.com/orgbudget/backend/internal/types"
	ez_uuid "github.com/orgbudget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type CategoryTotal struct {
	CategoryID uuid.UUID   `json:"categoryId" example:"9ad2bb4e-2a43-4dc0-a4b8-fd8b55fd7d8e"` // ID of the budget category
	Name       string      `json:"name" example:"Training and Courses"`                       // Name of the budget category
	Allocated  types.Money `json:"allocated"`                                                 // Sum of the allocated amounts
	Spent      types.Money `json:"spent"`                                                     // Sum of the amounts spent
}

func (co Controller) newCategoryTotals(totals []store.CategoryTotal) []CategoryTotal {
	data := make([]CategoryTotal, 0, len(totals))
	for _, total := range totals {
		data = append(data, CategoryTotal{
			CategoryID: total.Category.ID,
			Name:       total.Category.Name,
			Allocated:  co.Money.Money(total.Allocated),
			Spent:      co.Money.Money(total.Spent),
		})
	}

	return data
}

type SummaryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/departments/f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d/summary"` // The summary itself
	Resource string `json:"resource" example:"https://example.com/api/v1/departments/f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"`     // The resource the summary is for
}

type Summary struct {
	Scope       string          `json:"scope" example:"department"`                        // Level of the organizational tree
	ID          uuid.UUID       `json:"id" example:"f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"` // ID of the resource
	Name        string          `json:"name" example:"Engineering"`                        // Name of the resource
	TotalBudget types.Money     `json:"totalBudget"`                                       // Nominal budget
	Budgeted    types.Money     `json:"budgeted"`                                          // Sum of the nominal budgets of the direct children
	Unallocated types.Money     `json:"unallocated"`                                       // Part of the budget not assigned to children. Negative if overcommitted.
	Allocated   types.Money     `json:"allocated"`                                         // Sum of all budget item amounts
	Spent       types.Money     `json:"spent"`                                             // Sum of all budget item spendings
	Remaining   types.Money     `json:"remaining"`                                         // Total budget minus spent
	OverBudget  bool            `json:"overBudget" example:"false"`                        // More was spent than budgeted
	Departments int             `json:"departments" example:"5"`                           // Number of departments in scope
	Managers    int             `json:"managers" example:"8"`                              // Number of managers in scope
	Teams       int             `json:"teams" example:"13"`                                // Number of teams in scope
	Categories  []CategoryTotal `json:"categories"`                                        // Distribution over the budget categories
	Links       SummaryLinks    `json:"links"`
}

// resourcePaths maps the scope types to their API paths
var resourcePaths = map[store.ScopeType]string{
	store.ScopeOrganization: "organizations",
	store.ScopeDepartment:   "departments",
	store.ScopeManager:      "managers",
	store.ScopeTeam:         "teams",
}

func (co Controller) newSummary(c *gin.Context, summary store.Summary) Summary {
	resource := fmt.Sprintf("%s/v1/%s/%s", httputil.BaseURL(c), resourcePaths[summary.Scope.Type], summary.Scope.ID)

	return Summary{
		Scope:       string(summary.Scope.Type),
		ID:          summary.Scope.ID,
		Name:        summary.Name,
		TotalBudget: co.Money.Money(summary.TotalBudget),
		Budgeted:    co.Money.Money(summary.Budgeted),
		Unallocated: co.Money.Money(summary.Unallocated),
		Allocated:   co.Money.Money(summary.Allocated),
		Spent:       co.Money.Money(summary.Spent),
		Remaining:   co.Money.Money(summary.Remaining),
		OverBudget:  summary.Remaining.IsNegative(),
		Departments: summary.Departments,
		Managers:    summary.Managers,
		Teams:       summary.Teams,
		Categories:  co.newCategoryTotals(summary.Categories),
		Links: SummaryLinks{
			Self:     resource + "/summary",
			Resource: resource,
		},
	}
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"there is no department matching your query"` // The error, if any occurred
	Data  *Summary `json:"data"`                                                       // The summary
}

type TeamBudget struct {
	Team        Team        `json:"team"`        // The team
	TotalAmount types.Money `json:"totalAmount"` // Total amount of the linked budget, zero if there is none
}

type ManagerAllocation struct {
	Manager     Manager         `json:"manager"`              // The manager
	Teams       []TeamBudget    `json:"teams"`                // Teams of the manager with their budgets
	TotalAmount types.Money     `json:"totalAmount"`          // Sum of the team budgets
	Percent     decimal.Decimal `json:"percent" example:"65"` // Share of the department budget in percent, one decimal place
}

type DistributionEntry struct {
	Name  string      `json:"name" example:"Alex Kumar"` // Name of the manager or "Unallocated"
	Value types.Money `json:"value"`                     // Amount
}

type DepartmentOverview struct {
	Department   Department          `json:"department"`   // The department
	TotalBudget  types.Money         `json:"totalBudget"`  // Budget of the department
	Allocated    types.Money         `json:"allocated"`    // Sum of all team budgets
	Unallocated  types.Money         `json:"unallocated"`  // Part of the budget not assigned to any team
	Managers     []ManagerAllocation `json:"managers"`     // Budget split by manager
	Distribution []DistributionEntry `json:"distribution"` // Chart data
}

func (co Controller) newDepartmentOverview(c *gin.Context, overview store.DepartmentOverview) DepartmentOverview {
	managers := make([]ManagerAllocation, 0, len(overview.Managers))
	for _, allocation := range overview.Managers {
		teams := make([]TeamBudget, 0, len(allocation.Teams))
		for _, team := range allocation.Teams {
			teams = append(teams, TeamBudget{
				Team:        newTeam(c, team.Team),
				TotalAmount: co.Money.Money(team.TotalAmount),
			})
		}

		managers = append(managers, ManagerAllocation{
			Manager:     newManager(c, allocation.Manager),
			Teams:       teams,
			TotalAmount: co.Money.Money(allocation.TotalAmount),
			Percent:     allocation.Percent,
		})
	}

	distribution := make([]DistributionEntry, 0, len(overview.Distribution))
	for _, entry := range overview.Distribution {
		distribution = append(distribution, DistributionEntry{
			Name:  entry.Name,
			Value: co.Money.Money(entry.Value),
		})
	}

	return DepartmentOverview{
		Department:   newDepartment(c, overview.Department),
		TotalBudget:  co.Money.Money(overview.TotalBudget),
		Allocated:    co.Money.Money(overview.Allocated),
		Unallocated:  co.Money.Money(overview.Unallocated),
		Managers:     managers,
		Distribution: distribution,
	}
}

type DepartmentOverviewResponse struct {
	Error *string             `json:"error" example:"there is no department matching your query"` // The error, if any occurred
	Data  *DepartmentOverview `json:"data"`                                                       // The overview
}

type Dashboard struct {
	TotalBudget    types.Money     `json:"totalBudget"`               // Sum of the organization budgets
	Organizations  int             `json:"organizations" example:"1"` // Number of organizations
	Departments    int             `json:"departments" example:"5"`   // Number of departments
	Teams          int             `json:"teams" example:"13"`        // Number of teams
	Categories     []CategoryTotal `json:"categories"`                // Distribution over the budget categories
	TotalAllocated types.Money     `json:"totalAllocated"`            // Sum over all categories
}

func (co Controller) newDashboard(dashboard store.Dashboard) Dashboard {
	return Dashboard{
		TotalBudget:    co.Money.Money(dashboard.TotalBudget),
		Organizations:  dashboard.Organizations,
		Departments:    dashboard.Departments,
		Teams:          dashboard.Teams,
		Categories:     co.newCategoryTotals(dashboard.Categories),
		TotalAllocated: co.Money.Money(dashboard.TotalAllocated),
	}
}

type DashboardResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Dashboard `json:"data"`                                                          // The dashboard
}

type DashboardQueryFilter struct {
	OrganizationID ez_uuid.UUID `form:"organization"` // Restrict the dashboard to this organization
}
