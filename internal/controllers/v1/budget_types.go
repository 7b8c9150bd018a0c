package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	ez_uuid "github.com/orgbudget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	TeamID      uuid.UUID       `json:"teamId" example:"0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d"`                                                       // ID of the team the budget belongs to
	TotalAmount decimal.Decimal `json:"totalAmount" example:"50000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Total amount of the budget
	Year        int             `json:"year" example:"2024"`                                                                                         // Fiscal year of the budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		TeamID:      editable.TeamID,
		TotalAmount: editable.TotalAmount,
		Year:        editable.Year,
	}
}

type BudgetLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/budgets/3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"`                    // The budget itself
	Team        string `json:"team" example:"https://example.com/api/v1/teams/0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d"`                      // The team the budget belongs to
	BudgetItems string `json:"budgetItems" example:"https://example.com/api/v1/budget-items?budget=3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"` // Items of the budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	BudgetItems []BudgetItem `json:"budgetItems"` // Items of the budget
	Links       BudgetLinks  `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget, items []models.BudgetItem) Budget {
	url := httputil.BaseURL(c)

	budgetItems := make([]BudgetItem, 0, len(items))
	for _, item := range items {
		budgetItems = append(budgetItems, newBudgetItem(c, item))
	}

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			TeamID:      model.TeamID,
			TotalAmount: model.TotalAmount,
			Year:        model.Year,
		},
		BudgetItems: budgetItems,
		Links: BudgetLinks{
			Self:        fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Team:        fmt.Sprintf("%s/v1/teams/%s", url, model.TeamID),
			BudgetItems: fmt.Sprintf("%s/v1/budget-items?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	return highestStatus(err, currentStatus)
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The budget
}

type BudgetQueryFilter struct {
	TeamID ez_uuid.UUID `form:"team"` // By team ID
}
