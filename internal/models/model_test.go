package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIDGenerated() {
	organization := suite.createTestOrganization(models.Organization{})
	assert.NotEqual(suite.T(), uuid.Nil, organization.ID)
}

func (suite *TestSuiteStandard) TestIDKept() {
	id := uuid.New()
	organization := suite.createTestOrganization(models.Organization{DefaultModel: models.DefaultModel{ID: id}})
	assert.Equal(suite.T(), id, organization.ID)
}

func (suite *TestSuiteStandard) TestTimestampsUTC() {
	organization := suite.createTestOrganization(models.Organization{})

	var found models.Organization
	suite.Require().Nil(suite.db.First(&found, "id = ?", organization.ID).Error)
	assert.Equal(suite.T(), time.UTC, found.CreatedAt.Location())
	assert.Equal(suite.T(), time.UTC, found.UpdatedAt.Location())
}

func (suite *TestSuiteStandard) TestTrimWhitespace() {
	name := "  There is whitespace here  \t"
	leader := " Sarah Anderson   "

	organization := suite.createTestOrganization(models.Organization{Name: name, LeaderName: leader})
	assert.Equal(suite.T(), strings.TrimSpace(name), organization.Name)
	assert.Equal(suite.T(), strings.TrimSpace(leader), organization.LeaderName)

	department := suite.createTestDepartment(models.Department{
		OrganizationID:     organization.ID,
		Name:               name,
		DepartmentHeadName: leader,
	})
	assert.Equal(suite.T(), strings.TrimSpace(name), department.Name)
	assert.Equal(suite.T(), strings.TrimSpace(leader), department.DepartmentHeadName)
}

func (suite *TestSuiteStandard) TestNameMissing() {
	tests := []struct {
		name   string
		record interface{}
	}{
		{"Organization", &models.Organization{Name: "   "}},
		{"Department", &models.Department{}},
		{"Manager", &models.Manager{}},
		{"Team", &models.Team{Name: "\t"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := suite.db.Create(tt.record).Error
			assert.ErrorIs(t, err, models.ErrNameMissing)
		})
	}
}

func (suite *TestSuiteStandard) TestReferenceMissing() {
	tests := []struct {
		name   string
		record interface{}
		msg    string
	}{
		{"Department", &models.Department{Name: "Engineering", OrganizationID: uuid.New()}, "there is no organization matching your query"},
		{"Manager", &models.Manager{Name: "Alex Kumar", DepartmentID: uuid.New()}, "there is no department matching your query"},
		{"Team", &models.Team{Name: "DevOps", ManagerID: uuid.New()}, "there is no manager matching your query"},
		{"Budget", &models.Budget{TeamID: uuid.New()}, "there is no team matching your query"},
		{"BudgetItem", &models.BudgetItem{BudgetID: uuid.New()}, "there is no budget matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := suite.db.Create(tt.record).Error
			assert.ErrorIs(t, err, models.ErrResourceNotFound)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetTeamNotUnique() {
	_, team := suite.createTestTree()
	_ = suite.createTestBudget(models.Budget{TeamID: team.ID})

	err := suite.db.Create(&models.Budget{TeamID: team.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetTeamNotUnique)
}

func (suite *TestSuiteStandard) TestTeamBudgetMismatch() {
	department, team := suite.createTestTree()
	manager := suite.createTestManager(models.Manager{DepartmentID: department.ID})
	other := suite.createTestTeam(models.Team{ManagerID: manager.ID})
	budget := suite.createTestBudget(models.Budget{TeamID: other.ID})

	team.BudgetID = &budget.ID
	err := suite.db.Save(&team).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetTeamMismatch)

	other.BudgetID = &budget.ID
	err = suite.db.Save(&other).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetCategoriesSeeded() {
	var categories []models.BudgetCategory
	suite.Require().Nil(suite.db.Order("position ASC").Find(&categories).Error)
	suite.Require().Len(categories, len(models.DefaultBudgetCategories))

	for i, category := range categories {
		assert.Equal(suite.T(), models.DefaultBudgetCategories[i], category.Name)
		assert.Equal(suite.T(), i+1, category.Position)
	}
}

func (suite *TestSuiteStandard) TestBudgetCategoryNameNotUnique() {
	err := suite.db.Create(&models.BudgetCategory{Name: "Travel"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetItemRemaining() {
	tests := []struct {
		amount     decimal.Decimal
		spent      decimal.Decimal
		remaining  decimal.Decimal
		overBudget bool
	}{
		{decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(1000), false},
		{decimal.NewFromInt(1000), decimal.NewFromInt(1000), decimal.Zero, false},
		{decimal.NewFromInt(1000), decimal.NewFromInt(1250), decimal.NewFromInt(-250), true},
	}

	for _, tt := range tests {
		item := models.BudgetItem{Amount: tt.amount, Spent: tt.spent}
		assert.True(suite.T(), item.Remaining().Equal(tt.remaining), "Remaining is %s, expected %s", item.Remaining(), tt.remaining)
		assert.Equal(suite.T(), tt.overBudget, item.OverBudget())
	}
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := suite.db.Create(&models.Organization{Name: "Closed"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCascadeDelete() {
	_, team := suite.createTestTree()
	budget := suite.createTestBudget(models.Budget{TeamID: team.ID})

	var category models.BudgetCategory
	suite.Require().Nil(suite.db.First(&category).Error)

	item := models.BudgetItem{BudgetID: budget.ID, BudgetCategoryID: category.ID, Amount: decimal.NewFromInt(100)}
	suite.Require().Nil(suite.db.Create(&item).Error)

	suite.Require().Nil(suite.db.Delete(&team).Error)

	err := suite.db.First(&models.Budget{}, "id = ?", budget.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = suite.db.First(&models.BudgetItem{}, "id = ?", item.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudgetKeepsTeam() {
	_, team := suite.createTestTree()
	budget := suite.createTestBudget(models.Budget{TeamID: team.ID})

	suite.Require().Nil(suite.db.Delete(&budget).Error)

	err := suite.db.First(&models.Team{}, "id = ?", team.ID).Error
	assert.Nil(suite.T(), err)
}

// The budget references its team, the team only stores the ID of the
// linked budget.
func (suite *TestSuiteStandard) TestBudgetTeamForeignKey() {
	schema := func(table string) string {
		var sql string
		suite.Require().Nil(suite.db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&sql).Error)
		return sql
	}

	budgets := schema("budgets")
	assert.Contains(suite.T(), budgets, "FOREIGN KEY")
	assert.Contains(suite.T(), budgets, "teams")
	assert.Contains(suite.T(), budgets, "ON DELETE CASCADE")

	assert.NotContains(suite.T(), schema("teams"), "budgets")
}
