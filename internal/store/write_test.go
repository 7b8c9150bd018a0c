package store_test

import (
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/internal/store"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAddMissingReference() {
	_, err := suite.store.AddDepartment(models.Department{Name: "Engineering", OrganizationID: uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.AddManager(models.Manager{Name: "Alex Kumar", DepartmentID: uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.AddTeam(models.Team{Name: "DevOps", ManagerID: uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.store.AddBudget(models.Budget{TeamID: uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateTeamBudget() {
	organization := suite.createTestOrganization("Org", 100)
	department := suite.createTestDepartment(organization, "Engineering", 100)
	manager := suite.createTestManager(department, "Alex Kumar")
	team, _ := suite.createTestTeam(manager, "Frontend", -1)
	other, otherBudget := suite.createTestTeam(manager, "Backend", 50)

	budget, err := suite.store.AddBudget(models.Budget{TeamID: team.ID, TotalAmount: decimal.NewFromInt(50)})
	suite.Require().Nil(err)

	tests := []struct {
		name     string
		teamID   uuid.UUID
		budgetID uuid.UUID
		err      error
	}{
		{"Foreign budget", team.ID, otherBudget.ID, models.ErrBudgetTeamMismatch},
		{"Unknown team", uuid.New(), budget.ID, models.ErrResourceNotFound},
		{"Unknown budget", team.ID, uuid.New(), models.ErrResourceNotFound},
		{"Own budget", team.ID, budget.ID, nil},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.store.UpdateTeamBudget(tt.teamID, tt.budgetID)
			if tt.err == nil {
				suite.Assert().Nil(err)
				return
			}
			suite.Assert().ErrorIs(err, tt.err)
		})
	}

	updated, err := suite.store.Team(team.ID)
	suite.Require().Nil(err)
	suite.Require().NotNil(updated.BudgetID)
	suite.Assert().Equal(budget.ID, *updated.BudgetID)

	// The other team is unchanged
	unchanged, err := suite.store.Team(other.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(otherBudget.ID, *unchanged.BudgetID)
}

func (suite *TestSuiteStandard) TestSecondBudgetForTeam() {
	organization := suite.createTestOrganization("Org", 100)
	department := suite.createTestDepartment(organization, "Engineering", 100)
	manager := suite.createTestManager(department, "Alex Kumar")
	team, _ := suite.createTestTeam(manager, "Frontend", 10)

	_, err := suite.store.AddBudget(models.Budget{TeamID: team.ID})
	suite.Assert().ErrorIs(err, models.ErrBudgetTeamNotUnique)
}

func (suite *TestSuiteStandard) TestAddBudgetItemUpsert() {
	categories := suite.categories()

	organization := suite.createTestOrganization("Org", 100)
	department := suite.createTestDepartment(organization, "Engineering", 100)
	manager := suite.createTestManager(department, "Alex Kumar")
	_, budget := suite.createTestTeam(manager, "Frontend", 100)

	item, created, err := suite.store.AddBudgetItem(models.BudgetItem{
		BudgetID:         budget.ID,
		BudgetCategoryID: categories[0].ID,
		Amount:           decimal.NewFromInt(60),
		Spent:            decimal.NewFromInt(10),
		Description:      "Courses",
	})
	suite.Require().Nil(err)
	suite.Assert().True(created)

	// Submitting the same ID replaces every field, omitted fields are reset
	replaced, created, err := suite.store.AddBudgetItem(models.BudgetItem{
		DefaultModel:     models.DefaultModel{ID: item.ID},
		BudgetID:         budget.ID,
		BudgetCategoryID: categories[1].ID,
		Amount:           decimal.NewFromInt(40),
	})
	suite.Require().Nil(err)
	suite.Assert().False(created)
	suite.Assert().Equal(item.ID, replaced.ID)

	items, err := suite.store.BudgetItemsByBudget(budget.ID)
	suite.Require().Nil(err)
	suite.Require().Len(items, 1)
	suite.Assert().Equal(categories[1].ID, items[0].BudgetCategoryID)
	suite.assertDecimal(40, items[0].Amount)
	suite.assertDecimal(0, items[0].Spent)
	suite.Assert().Equal("", items[0].Description)
	suite.Assert().True(item.CreatedAt.Equal(items[0].CreatedAt))

	// An unknown ID creates the item with that ID
	id := uuid.New()
	createdItem, created, err := suite.store.AddBudgetItem(models.BudgetItem{
		DefaultModel:     models.DefaultModel{ID: id},
		BudgetID:         budget.ID,
		BudgetCategoryID: categories[2].ID,
		Amount:           decimal.NewFromInt(5),
	})
	suite.Require().Nil(err)
	suite.Assert().True(created)
	suite.Assert().Equal(id, createdItem.ID)
}

func (suite *TestSuiteStandard) TestAddBudgetItemMissingReference() {
	categories := suite.categories()

	_, _, err := suite.store.AddBudgetItem(models.BudgetItem{
		BudgetID:         uuid.New(),
		BudgetCategoryID: categories[0].ID,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	organization := suite.createTestOrganization("Org", 100)
	department := suite.createTestDepartment(organization, "Engineering", 100)
	manager := suite.createTestManager(department, "Alex Kumar")
	_, budget := suite.createTestTeam(manager, "Frontend", 100)

	_, _, err = suite.store.AddBudgetItem(models.BudgetItem{
		BudgetID:         budget.ID,
		BudgetCategoryID: uuid.New(),
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no budget category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestUpdateBudgetItemSpent() {
	categories := suite.categories()

	organization := suite.createTestOrganization("Org", 100)
	department := suite.createTestDepartment(organization, "Engineering", 100)
	manager := suite.createTestManager(department, "Alex Kumar")
	_, budget := suite.createTestTeam(manager, "Frontend", 100)
	item := suite.createTestBudgetItem(budget, categories[3], 80, 0)

	updated, err := suite.store.UpdateBudgetItemSpent(item.ID, decimal.NewFromInt(95))
	suite.Require().Nil(err)
	suite.assertDecimal(95, updated.Spent)
	suite.Assert().True(updated.OverBudget())

	found, err := suite.store.BudgetItem(item.ID)
	suite.Require().Nil(err)
	suite.assertDecimal(95, found.Spent)
	suite.assertDecimal(80, found.Amount)
	suite.Assert().Equal(categories[3].ID, found.BudgetCategoryID)

	_, err = suite.store.UpdateBudgetItemSpent(uuid.New(), decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudgetItem() {
	organization := suite.seed()
	engineering := suite.department(organization, "Engineering")

	team := suite.team(suite.manager(engineering, "Alex Kumar"), "Frontend Development")
	items, err := suite.store.BudgetItemsByBudget(*team.BudgetID)
	suite.Require().Nil(err)
	suite.Require().Len(items, 5)

	deleted, err := suite.store.UpdateBudgetItemSpent(items[0].ID, decimal.RequireFromString("1234.56"))
	suite.Require().Nil(err)

	before, err := suite.store.Summary(store.DepartmentScope(engineering.ID))
	suite.Require().Nil(err)

	suite.Require().Nil(suite.store.DeleteBudgetItem(deleted.ID))

	_, err = suite.store.BudgetItem(deleted.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	items, err = suite.store.BudgetItemsByBudget(*team.BudgetID)
	suite.Require().Nil(err)
	suite.Assert().Len(items, 4)

	after, err := suite.store.Summary(store.DepartmentScope(engineering.ID))
	suite.Require().Nil(err)
	suite.Assert().True(after.Allocated.Equal(before.Allocated.Sub(deleted.Amount)), "allocated %s, before %s", after.Allocated, before.Allocated)
	suite.Assert().True(after.Spent.Equal(before.Spent.Sub(deleted.Spent)), "spent %s, before %s", after.Spent, before.Spent)
	suite.Assert().True(after.Spent.IsZero())

	err = suite.store.DeleteBudgetItem(deleted.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDatabaseClosed() {
	suite.Require().Nil(suite.store.Close())

	_, err := suite.store.Seed()
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, _, err = suite.store.AddBudgetItem(models.BudgetItem{})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
