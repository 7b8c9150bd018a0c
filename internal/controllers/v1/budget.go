package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
)

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBudgets)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Budget(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create budgets
// @Description	Creates new budgets. The team must exist and must not have a budget yet.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget, err := co.Store.AddBudget(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBudget(c, budget, nil)
		r.Data = append(r.Data, BudgetResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns a list of budgets with their items
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			team	query		string	false	"Filter by team ID"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &e,
		})
		return
	}

	var budgets []models.Budget
	var err error
	if filter.TeamID.IsSet() {
		budgets, err = co.Store.BudgetsByTeam(filter.TeamID.UUID)
	} else {
		budgets, err = co.Store.Budgets()
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		items, err := co.Store.BudgetItemsByBudget(budget.ID)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BudgetListResponse{
				Error: &e,
			})
			return
		}

		data = append(data, newBudget(c, budget, items))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget with its items
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	budget, err := co.Store.Budget(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	items, err := co.Store.BudgetItemsByBudget(budget.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudget(c, budget, items)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}
