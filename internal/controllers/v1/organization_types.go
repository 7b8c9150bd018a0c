package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/orgbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

type OrganizationEditable struct {
	Name        string          `json:"name" example:"SampleTestOrg"`                                                                                  // Name of the organization
	LeaderName  string          `json:"leaderName" example:"Sarah Anderson" default:""`                                                                // Name of the organization leader
	TotalBudget decimal.Decimal `json:"totalBudget" example:"5000000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Total budget of the organization
}

// model returns the database resource for the API representation of the editable fields
func (editable OrganizationEditable) model() models.Organization {
	return models.Organization{
		Name:        editable.Name,
		LeaderName:  editable.LeaderName,
		TotalBudget: editable.TotalBudget,
	}
}

type OrganizationLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/organizations/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                   // The organization itself
	Departments string `json:"departments" example:"https://example.com/api/v1/departments?organization=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Departments of this organization
	Summary     string `json:"summary" example:"https://example.com/api/v1/organizations/550dc009-cea6-4c12-b2a5-03446eb7b7cf/summary"`        // Budget summary of this organization
	Dashboard   string `json:"dashboard" example:"https://example.com/api/v1/dashboard?organization=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`     // Dashboard for this organization
}

type Organization struct {
	models.DefaultModel
	OrganizationEditable
	Links OrganizationLinks `json:"links"`
}

func newOrganization(c *gin.Context, model models.Organization) Organization {
	url := httputil.BaseURL(c)

	return Organization{
		DefaultModel: model.DefaultModel,
		OrganizationEditable: OrganizationEditable{
			Name:        model.Name,
			LeaderName:  model.LeaderName,
			TotalBudget: model.TotalBudget,
		},
		Links: OrganizationLinks{
			Self:        fmt.Sprintf("%s/v1/organizations/%s", url, model.ID),
			Departments: fmt.Sprintf("%s/v1/departments?organization=%s", url, model.ID),
			Summary:     fmt.Sprintf("%s/v1/organizations/%s/summary", url, model.ID),
			Dashboard:   fmt.Sprintf("%s/v1/dashboard?organization=%s", url, model.ID),
		},
	}
}

type OrganizationListResponse struct {
	Data  []Organization `json:"data"`                                                          // List of organizations
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type OrganizationCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []OrganizationResponse `json:"data"`                                                          // List of created organizations
}

func (o *OrganizationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	o.Data = append(o.Data, OrganizationResponse{Error: &s})

	return highestStatus(err, currentStatus)
}

type OrganizationResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Organization `json:"data"`                                                          // The organization
}
