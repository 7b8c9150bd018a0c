package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/internal/store"
)

func (co Controller) RegisterDepartmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsDepartments)
		r.GET("", co.GetDepartments)
		r.POST("", co.CreateDepartments)
	}
	{
		r.OPTIONS("/:id", co.OptionsDepartmentDetail)
		r.GET("/:id", co.GetDepartment)
		r.GET("/:id/summary", co.GetDepartmentSummary)
		r.GET("/:id/overview", co.GetDepartmentOverview)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Departments
// @Success		204
// @Router			/v1/departments [options]
func (co Controller) OptionsDepartments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Departments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/departments/{id} [options]
func (co Controller) OptionsDepartmentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Department(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create departments
// @Description	Creates new departments. The organization must exist.
// @Tags			Departments
// @Produce		json
// @Success		201			{object}	DepartmentCreateResponse
// @Failure		400			{object}	DepartmentCreateResponse
// @Failure		404			{object}	DepartmentCreateResponse
// @Failure		500			{object}	DepartmentCreateResponse
// @Param			departments	body		[]DepartmentEditable	true	"Departments"
// @Router			/v1/departments [post]
func (co Controller) CreateDepartments(c *gin.Context) {
	var editables []DepartmentEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DepartmentCreateResponse{}

	for _, editable := range editables {
		department, err := co.Store.AddDepartment(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newDepartment(c, department)
		r.Data = append(r.Data, DepartmentResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get departments
// @Description	Returns a list of departments
// @Tags			Departments
// @Produce		json
// @Success		200				{object}	DepartmentListResponse
// @Failure		400				{object}	DepartmentListResponse
// @Failure		500				{object}	DepartmentListResponse
// @Param			organization	query		string	false	"Filter by organization ID"
// @Router			/v1/departments [get]
func (co Controller) GetDepartments(c *gin.Context) {
	var filter DepartmentQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DepartmentListResponse{
			Error: &e,
		})
		return
	}

	var departments []models.Department
	var err error
	if filter.OrganizationID.IsSet() {
		departments, err = co.Store.DepartmentsByOrganization(filter.OrganizationID.UUID)
	} else {
		departments, err = co.Store.Departments()
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Department, 0, len(departments))
	for _, department := range departments {
		data = append(data, newDepartment(c, department))
	}

	c.JSON(http.StatusOK, DepartmentListResponse{Data: data})
}

// @Summary		Get department
// @Description	Returns a specific department
// @Tags			Departments
// @Produce		json
// @Success		200	{object}	DepartmentResponse
// @Failure		400	{object}	DepartmentResponse
// @Failure		404	{object}	DepartmentResponse
// @Failure		500	{object}	DepartmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/departments/{id} [get]
func (co Controller) GetDepartment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	department, err := co.Store.Department(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDepartment(c, department)
	c.JSON(http.StatusOK, DepartmentResponse{Data: &apiResource})
}

// @Summary		Get department summary
// @Description	Returns the budget aggregation of a department
// @Tags			Departments
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		404	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/departments/{id}/summary [get]
func (co Controller) GetDepartmentSummary(c *gin.Context) {
	co.getSummary(c, store.DepartmentScope)
}

// @Summary		Get department overview
// @Description	Returns the department budget split by manager and team
// @Tags			Departments
// @Produce		json
// @Success		200	{object}	DepartmentOverviewResponse
// @Failure		400	{object}	DepartmentOverviewResponse
// @Failure		404	{object}	DepartmentOverviewResponse
// @Failure		500	{object}	DepartmentOverviewResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/departments/{id}/overview [get]
func (co Controller) GetDepartmentOverview(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentOverviewResponse{
			Error: &e,
		})
		return
	}

	overview, err := co.Store.DepartmentOverview(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DepartmentOverviewResponse{
			Error: &e,
		})
		return
	}

	apiResource := co.newDepartmentOverview(c, overview)
	c.JSON(http.StatusOK, DepartmentOverviewResponse{Data: &apiResource})
}
