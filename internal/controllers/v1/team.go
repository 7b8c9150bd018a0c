package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/internal/store"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterTeamRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsTeams)
		r.GET("", co.GetTeams)
		r.POST("", co.CreateTeams)
	}
	{
		r.OPTIONS("/:id", co.OptionsTeamDetail)
		r.GET("/:id", co.GetTeam)
		r.GET("/:id/summary", co.GetTeamSummary)
		r.OPTIONS("/:id/budget", co.OptionsTeamBudget)
		r.PUT("/:id/budget", co.UpdateTeamBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Router			/v1/teams [options]
func (co Controller) OptionsTeams(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [options]
func (co Controller) OptionsTeamDetail(c *gin.Context) {
	co.optionsTeam(c, httputil.OptionsGet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id}/budget [options]
func (co Controller) OptionsTeamBudget(c *gin.Context) {
	co.optionsTeam(c, httputil.OptionsPut)
}

func (co Controller) optionsTeam(c *gin.Context, options func(*gin.Context)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Team(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}

// @Summary		Create teams
// @Description	Creates new teams. The manager must exist. Budgets are linked with PUT /v1/teams/{id}/budget.
// @Tags			Teams
// @Produce		json
// @Success		201		{object}	TeamCreateResponse
// @Failure		400		{object}	TeamCreateResponse
// @Failure		404		{object}	TeamCreateResponse
// @Failure		500		{object}	TeamCreateResponse
// @Param			teams	body		[]TeamEditable	true	"Teams"
// @Router			/v1/teams [post]
func (co Controller) CreateTeams(c *gin.Context) {
	var editables []TeamEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := TeamCreateResponse{}

	for _, editable := range editables {
		team, err := co.Store.AddTeam(editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newTeam(c, team)
		r.Data = append(r.Data, TeamResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get teams
// @Description	Returns a list of teams
// @Tags			Teams
// @Produce		json
// @Success		200		{object}	TeamListResponse
// @Failure		400		{object}	TeamListResponse
// @Failure		500		{object}	TeamListResponse
// @Param			manager	query		string	false	"Filter by manager ID"
// @Param			match	query		string	false	"Filter by glob pattern on the name"
// @Router			/v1/teams [get]
func (co Controller) GetTeams(c *gin.Context) {
	var filter TeamQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TeamListResponse{
			Error: &e,
		})
		return
	}

	var teams []models.Team
	var err error
	if filter.ManagerID.IsSet() {
		teams, err = co.Store.TeamsByManager(filter.ManagerID.UUID)
	} else {
		teams, err = co.Store.Teams()
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamListResponse{
			Error: &e,
		})
		return
	}

	match := slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Match")

	data := make([]Team, 0, len(teams))
	for _, team := range teams {
		if match && !glob.Glob(filter.Match, team.Name) {
			continue
		}

		data = append(data, newTeam(c, team))
	}

	c.JSON(http.StatusOK, TeamListResponse{Data: data})
}

// @Summary		Get team
// @Description	Returns a specific team
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	TeamResponse
// @Failure		400	{object}	TeamResponse
// @Failure		404	{object}	TeamResponse
// @Failure		500	{object}	TeamResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [get]
func (co Controller) GetTeam(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &e,
		})
		return
	}

	team, err := co.Store.Team(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &e,
		})
		return
	}

	apiResource := newTeam(c, team)
	c.JSON(http.StatusOK, TeamResponse{Data: &apiResource})
}

// @Summary		Get team summary
// @Description	Returns the budget aggregation of the budget linked to a team
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		404	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id}/summary [get]
func (co Controller) GetTeamSummary(c *gin.Context) {
	co.getSummary(c, store.TeamScope)
}

// @Summary		Link team budget
// @Description	Sets the budget of the team. The budget must belong to the team.
// @Tags			Teams
// @Accept			json
// @Produce		json
// @Success		200		{object}	TeamResponse
// @Failure		400		{object}	TeamResponse
// @Failure		404		{object}	TeamResponse
// @Failure		500		{object}	TeamResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		TeamBudgetEditable	true	"Budget to link"
// @Router			/v1/teams/{id}/budget [put]
func (co Controller) UpdateTeamBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &e,
		})
		return
	}

	var editable TeamBudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &e,
		})
		return
	}

	if editable.BudgetID == nil {
		e := errBudgetIDMissing.Error()
		c.JSON(http.StatusBadRequest, TeamResponse{
			Error: &e,
		})
		return
	}

	team, err := co.Store.UpdateTeamBudget(uri.ID.UUID, *editable.BudgetID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &e,
		})
		return
	}

	apiResource := newTeam(c, team)
	c.JSON(http.StatusOK, TeamResponse{Data: &apiResource})
}
