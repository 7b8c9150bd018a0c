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

type BudgetItemEditable struct {
	BudgetID         uuid.UUID       `json:"budgetId" example:"3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"`                                                // ID of the budget the item belongs to
	BudgetCategoryID uuid.UUID       `json:"budgetCategoryId" example:"9ad2bb4e-2a43-4dc0-a4b8-fd8b55fd7d8e"`                                        // ID of the budget category
	Amount           decimal.Decimal `json:"amount" example:"15000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Allocated amount
	Spent            decimal.Decimal `json:"spent" example:"4200.50" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`            // Amount spent
	Description      string          `json:"description" example:"Budget allocation for Training and Courses" default:""`                            // Description of the item
}

func (editable BudgetItemEditable) model() models.BudgetItem {
	return models.BudgetItem{
		BudgetID:         editable.BudgetID,
		BudgetCategoryID: editable.BudgetCategoryID,
		Amount:           editable.Amount,
		Spent:            editable.Spent,
		Description:      editable.Description,
	}
}

type BudgetItemLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/budget-items/5c9e0a4b-8d7f-4b2a-a6e1-7f3d2c1b0a9e"`                // The item itself
	Budget         string `json:"budget" example:"https://example.com/api/v1/budgets/3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"`                   // The budget the item belongs to
	BudgetCategory string `json:"budgetCategory" example:"https://example.com/api/v1/budget-categories/9ad2bb4e-2a43-4dc0-a4b8-fd8b55fd7d8e"` // The category of the item
}

type BudgetItem struct {
	models.DefaultModel
	BudgetItemEditable
	Remaining  decimal.Decimal `json:"remaining" example:"10799.5"` // Amount minus spent
	OverBudget bool            `json:"overBudget" example:"false"`  // More was spent than allocated
	Links      BudgetItemLinks `json:"links"`
}

func newBudgetItem(c *gin.Context, model models.BudgetItem) BudgetItem {
	url := httputil.BaseURL(c)

	return BudgetItem{
		DefaultModel: model.DefaultModel,
		BudgetItemEditable: BudgetItemEditable{
			BudgetID:         model.BudgetID,
			BudgetCategoryID: model.BudgetCategoryID,
			Amount:           model.Amount,
			Spent:            model.Spent,
			Description:      model.Description,
		},
		Remaining:  model.Remaining(),
		OverBudget: model.OverBudget(),
		Links: BudgetItemLinks{
			Self:           fmt.Sprintf("%s/v1/budget-items/%s", url, model.ID),
			Budget:         fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
			BudgetCategory: fmt.Sprintf("%s/v1/budget-categories/%s", url, model.BudgetCategoryID),
		},
	}
}

type BudgetItemListResponse struct {
	Data  []BudgetItem `json:"data"`                                                          // List of budget items
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetItemCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetItemResponse `json:"data"`                                                          // List of created budget items
}

func (b *BudgetItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetItemResponse{Error: &s})

	return highestStatus(err, currentStatus)
}

type BudgetItemResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetItem `json:"data"`                                                          // The budget item
}

type BudgetItemSpentEditable struct {
	Spent *decimal.Decimal `json:"spent" example:"4200.50" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount spent
}

type BudgetItemQueryFilter struct {
	BudgetID ez_uuid.UUID `form:"budget"` // By budget ID
}
