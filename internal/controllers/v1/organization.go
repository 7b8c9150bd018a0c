package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/store"
)

func (co Controller) RegisterOrganizationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsOrganizations)
		r.GET("", co.GetOrganizations)
		r.POST("", co.CreateOrganizations)
	}
	{
		r.OPTIONS("/:id", co.OptionsOrganizationDetail)
		r.GET("/:id", co.GetOrganization)
		r.GET("/:id/summary", co.GetOrganizationSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Router			/v1/organizations [options]
func (co Controller) OptionsOrganizations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [options]
func (co Controller) OptionsOrganizationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Organization(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create organizations
// @Description	Creates new organizations
// @Tags			Organizations
// @Produce		json
// @Success		201				{object}	OrganizationCreateResponse
// @Failure		400				{object}	OrganizationCreateResponse
// @Failure		500				{object}	OrganizationCreateResponse
// @Param			organizations	body		[]OrganizationEditable	true	"Organizations"
// @Router			/v1/organizations [post]
func (co Controller) CreateOrganizations(c *gin.Context) {
	var editables []OrganizationEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := OrganizationCreateResponse{}

	for _, editable := range editables {
		organization, err := co.Store.AddOrganization(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newOrganization(c, organization)
		r.Data = append(r.Data, OrganizationResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get organizations
// @Description	Returns a list of all organizations, ordered by name
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationListResponse
// @Failure		500	{object}	OrganizationListResponse
// @Router			/v1/organizations [get]
func (co Controller) GetOrganizations(c *gin.Context) {
	organizations, err := co.Store.Organizations()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Organization, 0, len(organizations))
	for _, organization := range organizations {
		data = append(data, newOrganization(c, organization))
	}

	c.JSON(http.StatusOK, OrganizationListResponse{Data: data})
}

// @Summary		Get organization
// @Description	Returns a specific organization
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationResponse
// @Failure		400	{object}	OrganizationResponse
// @Failure		404	{object}	OrganizationResponse
// @Failure		500	{object}	OrganizationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [get]
func (co Controller) GetOrganization(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	organization, err := co.Store.Organization(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newOrganization(c, organization)
	c.JSON(http.StatusOK, OrganizationResponse{Data: &apiResource})
}

// @Summary		Get organization summary
// @Description	Returns the budget aggregation of an organization
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		404	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id}/summary [get]
func (co Controller) GetOrganizationSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	summary, err := co.Store.Summary(store.OrganizationScope(uri.ID.UUID))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	// The organization view shows the spending of all teams below it
	spent, err := co.Store.OrganizationTotalSpent(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}
	summary.Spent = spent
	summary.Remaining = summary.TotalBudget.Sub(spent)

	apiResource := co.newSummary(c, summary)
	c.JSON(http.StatusOK, SummaryResponse{Data: &apiResource})
}
