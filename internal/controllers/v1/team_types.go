package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	ez_uuid "github.com/orgbudget/backend/internal/uuid"
)

type TeamEditable struct {
	ManagerID uuid.UUID `json:"managerId" example:"1e7d6c11-bd1d-4c35-8f4e-3a0c6b1f2e44"` // ID of the manager leading the team
	Name      string    `json:"name" example:"Frontend Team"`                             // Name of the team
}

func (editable TeamEditable) model() models.Team {
	return models.Team{
		ManagerID: editable.ManagerID,
		Name:      editable.Name,
	}
}

type TeamLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/teams/0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d"`            // The team itself
	Manager string `json:"manager" example:"https://example.com/api/v1/managers/1e7d6c11-bd1d-4c35-8f4e-3a0c6b1f2e44"`      // The manager of the team
	Budgets string `json:"budgets" example:"https://example.com/api/v1/budgets?team=0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d"`  // Budgets of the team
	Budget  string `json:"budget" example:"https://example.com/api/v1/teams/0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d/budget"`   // Link the budget of the team
	Summary string `json:"summary" example:"https://example.com/api/v1/teams/0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d/summary"` // Budget summary of the team
}

type Team struct {
	models.DefaultModel
	TeamEditable
	BudgetID *uuid.UUID `json:"budgetId" example:"3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"` // ID of the linked budget, null if there is none
	Links    TeamLinks  `json:"links"`
}

func newTeam(c *gin.Context, model models.Team) Team {
	url := httputil.BaseURL(c)

	return Team{
		DefaultModel: model.DefaultModel,
		TeamEditable: TeamEditable{
			ManagerID: model.ManagerID,
			Name:      model.Name,
		},
		BudgetID: model.BudgetID,
		Links: TeamLinks{
			Self:    fmt.Sprintf("%s/v1/teams/%s", url, model.ID),
			Manager: fmt.Sprintf("%s/v1/managers/%s", url, model.ManagerID),
			Budgets: fmt.Sprintf("%s/v1/budgets?team=%s", url, model.ID),
			Budget:  fmt.Sprintf("%s/v1/teams/%s/budget", url, model.ID),
			Summary: fmt.Sprintf("%s/v1/teams/%s/summary", url, model.ID),
		},
	}
}

type TeamListResponse struct {
	Data  []Team  `json:"data"`                                                          // List of teams
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TeamCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TeamResponse `json:"data"`                                                          // List of created teams
}

func (t *TeamCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TeamResponse{Error: &s})

	return highestStatus(err, currentStatus)
}

type TeamResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Team   `json:"data"`                                                          // The team
}

type TeamQueryFilter struct {
	ManagerID ez_uuid.UUID `form:"manager"` // By manager ID
	Match     string       `form:"match"`   // Glob pattern the name must match, e.g. "*Team"
}

type TeamBudgetEditable struct {
	BudgetID *uuid.UUID `json:"budgetId" example:"3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"` // ID of the budget to link. It must belong to the team.
}
