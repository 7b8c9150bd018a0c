package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
)

type BudgetCategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budget-categories/9ad2bb4e-2a43-4dc0-a4b8-fd8b55fd7d8e"` // The budget category itself
}

type BudgetCategory struct {
	models.DefaultModel
	Name     string              `json:"name" example:"Conferences"` // Name of the category
	Position int                 `json:"position" example:"2"`       // Display order
	Links    BudgetCategoryLinks `json:"links"`
}

func newBudgetCategory(c *gin.Context, model models.BudgetCategory) BudgetCategory {
	return BudgetCategory{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Position:     model.Position,
		Links: BudgetCategoryLinks{
			Self: fmt.Sprintf("%s/v1/budget-categories/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type BudgetCategoryListResponse struct {
	Data  []BudgetCategory `json:"data"`                                                          // List of budget categories
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCategoryResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetCategory `json:"data"`                                                          // The budget category
}

// Budget categories are a fixed reference list and can only be read.
func (co Controller) RegisterBudgetCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBudgetCategories)
		r.GET("", co.GetBudgetCategories)
	}
	{
		r.OPTIONS("/:id", co.OptionsBudgetCategoryDetail)
		r.GET("/:id", co.GetBudgetCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Categories
// @Success		204
// @Router			/v1/budget-categories [options]
func (co Controller) OptionsBudgetCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-categories/{id} [options]
func (co Controller) OptionsBudgetCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.BudgetCategory(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get budget categories
// @Description	Returns the budget categories in display order
// @Tags			Budget Categories
// @Produce		json
// @Success		200	{object}	BudgetCategoryListResponse
// @Failure		500	{object}	BudgetCategoryListResponse
// @Router			/v1/budget-categories [get]
func (co Controller) GetBudgetCategories(c *gin.Context) {
	categories, err := co.Store.BudgetCategories()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetCategory, 0, len(categories))
	for _, category := range categories {
		data = append(data, newBudgetCategory(c, category))
	}

	c.JSON(http.StatusOK, BudgetCategoryListResponse{Data: data})
}

// @Summary		Get budget category
// @Description	Returns a specific budget category
// @Tags			Budget Categories
// @Produce		json
// @Success		200	{object}	BudgetCategoryResponse
// @Failure		400	{object}	BudgetCategoryResponse
// @Failure		404	{object}	BudgetCategoryResponse
// @Failure		500	{object}	BudgetCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-categories/{id} [get]
func (co Controller) GetBudgetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	category, err := co.Store.BudgetCategory(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCategoryResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetCategory(c, category)
	c.JSON(http.StatusOK, BudgetCategoryResponse{Data: &apiResource})
}
