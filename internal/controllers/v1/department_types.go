package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	ez_uuid "github.com/orgbudget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type DepartmentEditable struct {
	OrganizationID     uuid.UUID       `json:"organizationId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                 // ID of the organization the department belongs to
	Name               string          `json:"name" example:"Engineering"`                                                                                    // Name of the department
	DepartmentHeadName string          `json:"departmentHeadName" example:"Michael Chen" default:""`                                                          // Name of the department head
	TotalBudget        decimal.Decimal `json:"totalBudget" example:"2000000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Total budget of the department
}

// model returns the database resource for the API representation of the editable fields
func (editable DepartmentEditable) model() models.Department {
	return models.Department{
		OrganizationID:     editable.OrganizationID,
		Name:               editable.Name,
		DepartmentHeadName: editable.DepartmentHeadName,
		TotalBudget:        editable.TotalBudget,
	}
}

type DepartmentLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/departments/f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"`              // The department itself
	Organization string `json:"organization" example:"https://example.com/api/v1/organizations/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // The organization of the department
	Managers     string `json:"managers" example:"https://example.com/api/v1/managers?department=f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"`  // Managers of the department
	Summary      string `json:"summary" example:"https://example.com/api/v1/departments/f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d/summary"`   // Budget summary of the department
	Overview     string `json:"overview" example:"https://example.com/api/v1/departments/f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d/overview"` // Budget split by manager
}

type Department struct {
	models.DefaultModel
	DepartmentEditable
	Links DepartmentLinks `json:"links"`
}

func newDepartment(c *gin.Context, model models.Department) Department {
	url := httputil.BaseURL(c)

	return Department{
		DefaultModel: model.DefaultModel,
		DepartmentEditable: DepartmentEditable{
			OrganizationID:     model.OrganizationID,
			Name:               model.Name,
			DepartmentHeadName: model.DepartmentHeadName,
			TotalBudget:        model.TotalBudget,
		},
		Links: DepartmentLinks{
			Self:         fmt.Sprintf("%s/v1/departments/%s", url, model.ID),
			Organization: fmt.Sprintf("%s/v1/organizations/%s", url, model.OrganizationID),
			Managers:     fmt.Sprintf("%s/v1/managers?department=%s", url, model.ID),
			Summary:      fmt.Sprintf("%s/v1/departments/%s/summary", url, model.ID),
			Overview:     fmt.Sprintf("%s/v1/departments/%s/overview", url, model.ID),
		},
	}
}

type DepartmentListResponse struct {
	Data  []Department `json:"data"`                                                          // List of departments
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DepartmentCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DepartmentResponse `json:"data"`                                                          // List of created departments
}

func (d *DepartmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DepartmentResponse{Error: &s})

	return highestStatus(err, currentStatus)
}

type DepartmentResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Department `json:"data"`                                                          // The department
}

type DepartmentQueryFilter struct {
	OrganizationID ez_uuid.UUID `form:"organization"` // By organization ID
}
