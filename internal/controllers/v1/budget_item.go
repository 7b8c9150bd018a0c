package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterBudgetItemRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBudgetItems)
		r.GET("", co.GetBudgetItems)
		r.POST("", co.CreateBudgetItems)
	}
	{
		r.OPTIONS("/:id", co.OptionsBudgetItemDetail)
		r.GET("/:id", co.GetBudgetItem)
		r.PUT("/:id", co.ReplaceBudgetItem)
		r.PATCH("/:id", co.UpdateBudgetItemSpent)
		r.DELETE("/:id", co.DeleteBudgetItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Items
// @Success		204
// @Router			/v1/budget-items [options]
func (co Controller) OptionsBudgetItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Description	PUT creates the item when it does not exist, so unknown IDs are allowed.
// @Tags			Budget Items
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [options]
func (co Controller) OptionsBudgetItemDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Create budget items
// @Description	Creates new budget items. Budget and budget category must exist.
// @Tags			Budget Items
// @Produce		json
// @Success		201				{object}	BudgetItemCreateResponse
// @Failure		400				{object}	BudgetItemCreateResponse
// @Failure		404				{object}	BudgetItemCreateResponse
// @Failure		500				{object}	BudgetItemCreateResponse
// @Param			budgetItems	body		[]BudgetItemEditable	true	"Budget items"
// @Router			/v1/budget-items [post]
func (co Controller) CreateBudgetItems(c *gin.Context) {
	var editables []BudgetItemEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := BudgetItemCreateResponse{}

	for _, editable := range editables {
		item, _, err := co.Store.AddBudgetItem(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBudgetItem(c, item)
		r.Data = append(r.Data, BudgetItemResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get budget items
// @Description	Returns a list of budget items
// @Tags			Budget Items
// @Produce		json
// @Success		200		{object}	BudgetItemListResponse
// @Failure		400		{object}	BudgetItemListResponse
// @Failure		404		{object}	BudgetItemListResponse
// @Failure		500		{object}	BudgetItemListResponse
// @Param			budget	query		string	false	"Filter by budget ID"
// @Router			/v1/budget-items [get]
func (co Controller) GetBudgetItems(c *gin.Context) {
	var filter BudgetItemQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetItemListResponse{
			Error: &e,
		})
		return
	}

	var items []models.BudgetItem
	var err error
	if filter.BudgetID.IsSet() {
		items, err = co.Store.BudgetItemsByBudget(filter.BudgetID.UUID)
	} else {
		items, err = co.Store.BudgetItems()
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetItem, 0, len(items))
	for _, item := range items {
		data = append(data, newBudgetItem(c, item))
	}

	c.JSON(http.StatusOK, BudgetItemListResponse{Data: data})
}

// @Summary		Get budget item
// @Description	Returns a specific budget item
// @Tags			Budget Items
// @Produce		json
// @Success		200	{object}	BudgetItemResponse
// @Failure		400	{object}	BudgetItemResponse
// @Failure		404	{object}	BudgetItemResponse
// @Failure		500	{object}	BudgetItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [get]
func (co Controller) GetBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	item, err := co.Store.BudgetItem(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &apiResource})
}

// @Summary		Create or replace budget item
// @Description	Creates the budget item with the ID from the path or replaces all fields of the existing one.
// @Description	Fields missing in the request body are reset to their default.
// @Tags			Budget Items
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetItemResponse
// @Success		201			{object}	BudgetItemResponse
// @Failure		400			{object}	BudgetItemResponse
// @Failure		404			{object}	BudgetItemResponse
// @Failure		500			{object}	BudgetItemResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetItem	body		BudgetItemEditable	true	"Budget item"
// @Router			/v1/budget-items/{id} [put]
func (co Controller) ReplaceBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	var editable BudgetItemEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	model := editable.model()
	model.ID = uri.ID.UUID

	item, created, err := co.Store.AddBudgetItem(model)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	apiResource := newBudgetItem(c, item)
	c.JSON(code, BudgetItemResponse{Data: &apiResource})
}

// @Summary		Update amount spent
// @Description	Sets the amount spent for a budget item. All other fields in the request body are ignored.
// @Tags			Budget Items
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetItemResponse
// @Failure		400			{object}	BudgetItemResponse
// @Failure		404			{object}	BudgetItemResponse
// @Failure		500			{object}	BudgetItemResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetItem	body		BudgetItemSpentEditable	true	"Amount spent"
// @Router			/v1/budget-items/{id} [patch]
func (co Controller) UpdateBudgetItemSpent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, BudgetItemSpentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	if !slices.Contains(updateFields, "Spent") {
		e := errSpentMissing.Error()
		c.JSON(http.StatusBadRequest, BudgetItemResponse{
			Error: &e,
		})
		return
	}

	var editable BudgetItemSpentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	// null passes the check above, but does not set an amount
	if editable.Spent == nil {
		e := errSpentMissing.Error()
		c.JSON(http.StatusBadRequest, BudgetItemResponse{
			Error: &e,
		})
		return
	}

	item, err := co.Store.UpdateBudgetItemSpent(uri.ID.UUID, *editable.Spent)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &apiResource})
}

// @Summary		Delete budget item
// @Description	Deletes a budget item permanently
// @Tags			Budget Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [delete]
func (co Controller) DeleteBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Store.DeleteBudgetItem(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
