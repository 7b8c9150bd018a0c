package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/internal/store"
)

func (co Controller) RegisterManagerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsManagers)
		r.GET("", co.GetManagers)
		r.POST("", co.CreateManagers)
	}
	{
		r.OPTIONS("/:id", co.OptionsManagerDetail)
		r.GET("/:id", co.GetManager)
		r.GET("/:id/summary", co.GetManagerSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Managers
// @Success		204
// @Router			/v1/managers [options]
func (co Controller) OptionsManagers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Managers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/managers/{id} [options]
func (co Controller) OptionsManagerDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Manager(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create managers
// @Description	Creates new managers. The department must exist.
// @Tags			Managers
// @Produce		json
// @Success		201			{object}	ManagerCreateResponse
// @Failure		400			{object}	ManagerCreateResponse
// @Failure		404			{object}	ManagerCreateResponse
// @Failure		500			{object}	ManagerCreateResponse
// @Param			managers	body		[]ManagerEditable	true	"Managers"
// @Router			/v1/managers [post]
func (co Controller) CreateManagers(c *gin.Context) {
	var editables []ManagerEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ManagerCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := ManagerCreateResponse{}

	for _, editable := range editables {
		manager, err := co.Store.AddManager(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newManager(c, manager)
		r.Data = append(r.Data, ManagerResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get managers
// @Description	Returns a list of managers
// @Tags			Managers
// @Produce		json
// @Success		200			{object}	ManagerListResponse
// @Failure		400			{object}	ManagerListResponse
// @Failure		500			{object}	ManagerListResponse
// @Param			department	query		string	false	"Filter by department ID"
// @Router			/v1/managers [get]
func (co Controller) GetManagers(c *gin.Context) {
	var filter ManagerQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ManagerListResponse{
			Error: &e,
		})
		return
	}

	var managers []models.Manager
	var err error
	if filter.DepartmentID.IsSet() {
		managers, err = co.Store.ManagersByDepartment(filter.DepartmentID.UUID)
	} else {
		managers, err = co.Store.Managers()
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ManagerListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Manager, 0, len(managers))
	for _, manager := range managers {
		data = append(data, newManager(c, manager))
	}

	c.JSON(http.StatusOK, ManagerListResponse{Data: data})
}

// @Summary		Get manager
// @Description	Returns a specific manager
// @Tags			Managers
// @Produce		json
// @Success		200	{object}	ManagerResponse
// @Failure		400	{object}	ManagerResponse
// @Failure		404	{object}	ManagerResponse
// @Failure		500	{object}	ManagerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/managers/{id} [get]
func (co Controller) GetManager(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ManagerResponse{
			Error: &e,
		})
		return
	}

	manager, err := co.Store.Manager(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ManagerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newManager(c, manager)
	c.JSON(http.StatusOK, ManagerResponse{Data: &apiResource})
}

// @Summary		Get manager summary
// @Description	Returns the budget aggregation over the teams of a manager
// @Tags			Managers
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		404	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/managers/{id}/summary [get]
func (co Controller) GetManagerSummary(c *gin.Context) {
	co.getSummary(c, store.ManagerScope)
}
