package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/orgbudget/backend/internal/controllers/v1"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	team := suite.createTestTeam(suite.T(), v1.TeamEditable{})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{TeamID: team.Data.ID, TotalAmount: decimal.NewFromInt(600000), Year: 2024})

	suite.Assert().Equal(team.Data.ID, budget.Data.TeamID)
	suite.assertDecimal(600000, budget.Data.TotalAmount)
	suite.Assert().Equal(2024, budget.Data.Year)
	suite.Assert().NotNil(budget.Data.BudgetItems)
	suite.Assert().Len(budget.Data.BudgetItems, 0)
	suite.Assert().Equal(team.Data.Links.Self, budget.Data.Links.Team)
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	team := suite.createTestTeam(suite.T(), v1.TeamEditable{})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{TeamID: team.Data.ID})

	tests := []struct {
		name   string
		budget v1.BudgetEditable
		status int
		err    string
	}{
		{"Second budget for team", v1.BudgetEditable{TeamID: team.Data.ID}, http.StatusBadRequest, models.ErrBudgetTeamNotUnique.Error()},
		{"Unknown team", v1.BudgetEditable{TeamID: uuid.New()}, http.StatusNotFound, "there is no team matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{tt.budget})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	team := suite.createTestTeam(suite.T(), v1.TeamEditable{})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{TeamID: team.Data.ID, Year: 2024})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Year: 2025})

	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"All", "", 2, http.StatusOK},
		{"By team", fmt.Sprintf("team=%s", team.Data.ID), 1, http.StatusOK},
		{"Unknown team", fmt.Sprintf("team=%s", uuid.New()), 0, http.StatusOK},
		{"Invalid team", "team=NotAUUID", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	// Newest year first
	budgets := getList[v1.Budget](suite, "http://example.com/v1/budgets")
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal(2025, budgets[0].Year)
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	item := suite.createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Amount: decimal.NewFromInt(300)})

	r := suite.request(suite.T(), http.MethodGet, item.Data.Links.Budget, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.BudgetItems, 1)
	suite.Assert().Equal(item.Data.ID, response.Data.BudgetItems[0].ID)

	tests := []struct {
		name   string
		method string
		id     string
		status int
	}{
		{"GET unknown budget", http.MethodGet, uuid.NewString(), http.StatusNotFound},
		{"GET invalid ID", http.MethodGet, "-56", http.StatusBadRequest},
		{"OPTIONS existing budget", http.MethodOptions, response.Data.ID.String(), http.StatusNoContent},
		{"OPTIONS unknown budget", http.MethodOptions, uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
