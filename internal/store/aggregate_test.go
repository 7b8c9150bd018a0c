package store_test

import (
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/internal/store"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSummaryOrganization() {
	organization := suite.seed()

	summary, err := suite.store.Summary(store.OrganizationScope(organization.ID))
	suite.Require().Nil(err)

	suite.Assert().Equal("SampleTestOrg", summary.Name)
	suite.assertDecimal(5000000, summary.TotalBudget)
	suite.assertDecimal(5000000, summary.Budgeted)
	suite.assertDecimal(0, summary.Unallocated)
	suite.assertDecimal(5000000, summary.Allocated)
	suite.assertDecimal(0, summary.Spent)
	suite.assertDecimal(5000000, summary.Remaining)
	suite.Assert().Equal(5, summary.Departments)
	suite.Assert().Equal(8, summary.Managers)
	suite.Assert().Equal(13, summary.Teams)
	suite.Assert().Len(summary.Categories, 5)
}

func (suite *TestSuiteStandard) TestSummaryDepartment() {
	organization := suite.seed()
	engineering := suite.department(organization, "Engineering")

	summary, err := suite.store.Summary(store.DepartmentScope(engineering.ID))
	suite.Require().Nil(err)

	suite.Assert().Equal("Engineering", summary.Name)
	suite.assertDecimal(2000000, summary.TotalBudget)
	suite.assertDecimal(2000000, summary.Budgeted)
	suite.assertDecimal(0, summary.Unallocated)
	suite.Assert().Equal(0, summary.Departments)
	suite.Assert().Equal(2, summary.Managers)
	suite.Assert().Equal(4, summary.Teams)
}

func (suite *TestSuiteStandard) TestSummaryManager() {
	organization := suite.seed()
	design := suite.department(organization, "Design")
	sophie := suite.manager(design, "Sophie Lee")

	summary, err := suite.store.Summary(store.ManagerScope(sophie.ID))
	suite.Require().Nil(err)

	suite.Assert().Equal("Sophie Lee", summary.Name)
	suite.assertDecimal(550000, summary.TotalBudget)
	suite.assertDecimal(0, summary.Unallocated)
	suite.assertDecimal(550000, summary.Allocated)
	suite.Assert().Equal(2, summary.Teams)
}

func (suite *TestSuiteStandard) TestSummaryTeam() {
	organization := suite.seed()
	engineering := suite.department(organization, "Engineering")
	frontend := suite.team(suite.manager(engineering, "Alex Kumar"), "Frontend Development")

	categories := suite.categories()
	items, err := suite.store.BudgetItemsByBudget(*frontend.BudgetID)
	suite.Require().Nil(err)
	training := find(suite, items, func(i models.BudgetItem) string { return i.BudgetCategoryID.String() }, categories[0].ID.String())
	_, err = suite.store.UpdateBudgetItemSpent(training.ID, decimal.NewFromInt(200000))
	suite.Require().Nil(err)

	summary, err := suite.store.Summary(store.TeamScope(frontend.ID))
	suite.Require().Nil(err)

	suite.assertDecimal(600000, summary.TotalBudget)
	suite.assertDecimal(600000, summary.Budgeted)
	suite.assertDecimal(600000, summary.Allocated)
	suite.assertDecimal(200000, summary.Spent)
	suite.assertDecimal(400000, summary.Remaining)

	expected := []int64{180000, 120000, 90000, 120000, 90000}
	suite.Require().Len(summary.Categories, len(expected))
	for i, amount := range expected {
		suite.Assert().Equal(models.DefaultBudgetCategories[i], summary.Categories[i].Category.Name)
		suite.assertDecimal(amount, summary.Categories[i].Allocated)
	}
	suite.assertDecimal(200000, summary.Categories[0].Spent)
}

func (suite *TestSuiteStandard) TestSummaryOvercommitted() {
	categories := suite.categories()

	organization := suite.createTestOrganization("Org", 100)
	department := suite.createTestDepartment(organization, "Engineering", 150)
	manager := suite.createTestManager(department, "Alex Kumar")
	_, budget := suite.createTestTeam(manager, "Frontend", 200)
	_ = suite.createTestBudgetItem(budget, categories[0], 250, 0)

	tests := []struct {
		name        string
		scope       store.Scope
		unallocated int64
	}{
		{"Organization", store.OrganizationScope(organization.ID), -50},
		{"Department", store.DepartmentScope(department.ID), -50},
		{"Manager", store.ManagerScope(manager.ID), 0},
		{"Team", store.TeamScope(budget.TeamID), -50},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			summary, err := suite.store.Summary(tt.scope)
			suite.Require().Nil(err)
			suite.assertDecimal(tt.unallocated, summary.Unallocated)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryTeamWithoutBudget() {
	organization := suite.createTestOrganization("Org", 100)
	department := suite.createTestDepartment(organization, "Engineering", 100)
	manager := suite.createTestManager(department, "Alex Kumar")
	team, _ := suite.createTestTeam(manager, "Frontend", -1)

	summary, err := suite.store.Summary(store.TeamScope(team.ID))
	suite.Require().Nil(err)
	suite.assertDecimal(0, summary.TotalBudget)
	suite.assertDecimal(0, summary.Allocated)
	suite.Assert().Len(summary.Categories, 0)

	summary, err = suite.store.Summary(store.DepartmentScope(department.ID))
	suite.Require().Nil(err)
	suite.assertDecimal(100, summary.Unallocated)
	suite.Assert().Equal(1, summary.Teams)
}

func (suite *TestSuiteStandard) TestSummaryNotFound() {
	scopes := []store.Scope{
		store.OrganizationScope(uuid.New()),
		store.DepartmentScope(uuid.New()),
		store.ManagerScope(uuid.New()),
		store.TeamScope(uuid.New()),
	}

	for _, scope := range scopes {
		_, err := suite.store.Summary(scope)
		suite.Assert().ErrorIs(err, models.ErrResourceNotFound, scope.String())
	}

	_, err := suite.store.Summary(store.Scope{Type: "galaxy"})
	suite.Assert().ErrorIs(err, store.ErrInvalidScope)
}

func (suite *TestSuiteStandard) TestCategoryDistribution() {
	categories := suite.categories()

	items := []models.BudgetItem{
		{BudgetCategoryID: categories[4].ID, Amount: decimal.NewFromInt(10), Spent: decimal.NewFromInt(1)},
		{BudgetCategoryID: categories[1].ID, Amount: decimal.NewFromInt(20)},
		{BudgetCategoryID: categories[4].ID, Amount: decimal.NewFromInt(5), Spent: decimal.NewFromInt(2)},
		{BudgetCategoryID: categories[2].ID, Amount: decimal.Zero, Spent: decimal.NewFromInt(7)},
	}

	distribution, err := suite.store.CategoryDistribution(items)
	suite.Require().Nil(err)
	suite.Require().Len(distribution, 2)

	suite.Assert().Equal(categories[1].ID, distribution[0].Category.ID)
	suite.assertDecimal(20, distribution[0].Allocated)

	suite.Assert().Equal(categories[4].ID, distribution[1].Category.ID)
	suite.assertDecimal(15, distribution[1].Allocated)
	suite.assertDecimal(3, distribution[1].Spent)

	empty, err := suite.store.CategoryDistribution(nil)
	suite.Require().Nil(err)
	suite.Assert().NotNil(empty)
	suite.Assert().Len(empty, 0)
}

func (suite *TestSuiteStandard) TestDepartmentOverview() {
	organization := suite.seed()
	engineering := suite.department(organization, "Engineering")

	overview, err := suite.store.DepartmentOverview(engineering.ID)
	suite.Require().Nil(err)

	suite.assertDecimal(2000000, overview.TotalBudget)
	suite.assertDecimal(2000000, overview.Allocated)
	suite.assertDecimal(0, overview.Unallocated)
	suite.Require().Len(overview.Managers, 2)

	alex := overview.Managers[0]
	suite.Assert().Equal("Alex Kumar", alex.Manager.Name)
	suite.assertDecimal(1300000, alex.TotalAmount)
	suite.assertDecimal(65, alex.Percent)
	suite.Assert().Len(alex.Teams, 2)

	maria := overview.Managers[1]
	suite.Assert().Equal("Maria Garcia", maria.Manager.Name)
	suite.assertDecimal(700000, maria.TotalAmount)
	suite.assertDecimal(35, maria.Percent)

	// No unallocated entry when the budget is fully assigned
	suite.Require().Len(overview.Distribution, 2)
	for _, entry := range overview.Distribution {
		suite.Assert().NotEqual(store.UnallocatedEntry, entry.Name)
	}
}

func (suite *TestSuiteStandard) TestDepartmentOverviewUnallocated() {
	organization := suite.createTestOrganization("Org", 1000)
	department := suite.createTestDepartment(organization, "Engineering", 300)
	manager := suite.createTestManager(department, "Alex Kumar")
	_, _ = suite.createTestTeam(manager, "Frontend", 100)
	_, _ = suite.createTestTeam(manager, "Backend", -1)

	overview, err := suite.store.DepartmentOverview(department.ID)
	suite.Require().Nil(err)

	suite.Require().Len(overview.Managers, 1)
	suite.Require().Len(overview.Managers[0].Teams, 2)
	suite.Assert().True(overview.Managers[0].Percent.Equal(decimal.RequireFromString("33.3")), overview.Managers[0].Percent.String())

	suite.Require().Len(overview.Distribution, 2)
	suite.Assert().Equal(store.UnallocatedEntry, overview.Distribution[1].Name)
	suite.assertDecimal(200, overview.Distribution[1].Value)
}

func (suite *TestSuiteStandard) TestDepartmentOverviewZeroBudget() {
	organization := suite.createTestOrganization("Org", 1000)
	department := suite.createTestDepartment(organization, "Engineering", 0)
	manager := suite.createTestManager(department, "Alex Kumar")
	_, _ = suite.createTestTeam(manager, "Frontend", 100)

	overview, err := suite.store.DepartmentOverview(department.ID)
	suite.Require().Nil(err)
	suite.assertDecimal(0, overview.Managers[0].Percent)
	suite.assertDecimal(-100, overview.Unallocated)
	suite.Assert().Len(overview.Distribution, 1)

	_, err = suite.store.DepartmentOverview(uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDashboard() {
	organization := suite.seed()
	_ = suite.createTestOrganization("Empty", 250000)

	all, err := suite.store.Dashboard(nil)
	suite.Require().Nil(err)
	suite.assertDecimal(5250000, all.TotalBudget)
	suite.Assert().Equal(2, all.Organizations)
	suite.Assert().Equal(5, all.Departments)
	suite.Assert().Equal(13, all.Teams)
	suite.assertDecimal(5000000, all.TotalAllocated)

	expected := []int64{1500000, 1000000, 750000, 1000000, 750000}
	suite.Require().Len(all.Categories, len(expected))
	for i, amount := range expected {
		suite.assertDecimal(amount, all.Categories[i].Allocated)
	}

	single, err := suite.store.Dashboard(&organization.ID)
	suite.Require().Nil(err)
	suite.assertDecimal(5000000, single.TotalBudget)
	suite.Assert().Equal(1, single.Organizations)
	suite.Assert().Equal(5, single.Departments)
	suite.Assert().Equal(13, single.Teams)
}

func (suite *TestSuiteStandard) TestDashboardUnknownOrganization() {
	_ = suite.seed()

	id := uuid.New()
	dashboard, err := suite.store.Dashboard(&id)
	suite.Require().Nil(err)
	suite.assertDecimal(0, dashboard.TotalBudget)
	suite.Assert().Equal(0, dashboard.Organizations)
	suite.Assert().Equal(0, dashboard.Departments)
	suite.Assert().Equal(0, dashboard.Teams)
	suite.Assert().Len(dashboard.Categories, 0)
}
