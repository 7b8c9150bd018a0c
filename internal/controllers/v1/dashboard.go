package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the budget overview over all organizations or a single one.
// @Description	An unknown organization results in an empty dashboard.
// @Tags			Dashboard
// @Produce		json
// @Success		200				{object}	DashboardResponse
// @Failure		400				{object}	DashboardResponse
// @Failure		500				{object}	DashboardResponse
// @Param			organization	query		string	false	"Restrict the dashboard to this organization"
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var filter DashboardQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &e,
		})
		return
	}

	dashboard, err := co.Store.Dashboard(filter.OrganizationID.Ptr())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	apiResource := co.newDashboard(dashboard)
	c.JSON(http.StatusOK, DashboardResponse{Data: &apiResource})
}
