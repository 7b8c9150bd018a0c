package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	ez_uuid "github.com/orgbudget/backend/internal/uuid"
)

type ManagerEditable struct {
	DepartmentID uuid.UUID `json:"departmentId" example:"f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"` // ID of the department the manager belongs to
	Name         string    `json:"name" example:"Alex Kumar"`                                   // Name of the manager
}

func (editable ManagerEditable) model() models.Manager {
	return models.Manager{
		DepartmentID: editable.DepartmentID,
		Name:         editable.Name,
	}
}

type ManagerLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/managers/1e7d6c11-bd1d-4c35-8f4e-3a0c6b1f2e44"`            // The manager itself
	Department string `json:"department" example:"https://example.com/api/v1/departments/f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"`   // The department of the manager
	Teams      string `json:"teams" example:"https://example.com/api/v1/teams?manager=1e7d6c11-bd1d-4c35-8f4e-3a0c6b1f2e44"`      // Teams led by the manager
	Summary    string `json:"summary" example:"https://example.com/api/v1/managers/1e7d6c11-bd1d-4c35-8f4e-3a0c6b1f2e44/summary"` // Budget summary of the manager
}

type Manager struct {
	models.DefaultModel
	ManagerEditable
	Links ManagerLinks `json:"links"`
}

func newManager(c *gin.Context, model models.Manager) Manager {
	url := httputil.BaseURL(c)

	return Manager{
		DefaultModel: model.DefaultModel,
		ManagerEditable: ManagerEditable{
			DepartmentID: model.DepartmentID,
			Name:         model.Name,
		},
		Links: ManagerLinks{
			Self:       fmt.Sprintf("%s/v1/managers/%s", url, model.ID),
			Department: fmt.Sprintf("%s/v1/departments/%s", url, model.DepartmentID),
			Teams:      fmt.Sprintf("%s/v1/teams?manager=%s", url, model.ID),
			Summary:    fmt.Sprintf("%s/v1/managers/%s/summary", url, model.ID),
		},
	}
}

type ManagerListResponse struct {
	Data  []Manager `json:"data"`                                                          // List of managers
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ManagerCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ManagerResponse `json:"data"`                                                          // List of created managers
}

func (m *ManagerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, ManagerResponse{Error: &s})

	return highestStatus(err, currentStatus)
}

type ManagerResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Manager `json:"data"`                                                          // The manager
}

type ManagerQueryFilter struct {
	DepartmentID ez_uuid.UUID `form:"department"` // By department ID
}
