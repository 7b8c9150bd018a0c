package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/orgbudget/backend/internal/controllers/v1"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOrganizationsCreate() {
	o := suite.createTestOrganization(suite.T(), v1.OrganizationEditable{
		Name:        "  SampleTestOrg ",
		LeaderName:  "Sarah Anderson",
		TotalBudget: decimal.NewFromInt(5000000),
	})

	suite.Assert().Equal("SampleTestOrg", o.Data.Name, "Name must be trimmed")
	suite.Assert().Equal("Sarah Anderson", o.Data.LeaderName)
	suite.assertDecimal(5000000, o.Data.TotalBudget)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/organizations/%s", o.Data.ID), o.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/departments?organization=%s", o.Data.ID), o.Data.Links.Departments)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/dashboard?organization=%s", o.Data.ID), o.Data.Links.Dashboard)
}

// TestOrganizationsCreateBulk verifies that every element of a bulk request
// is processed and that the response status is the highest of all elements.
func (suite *TestSuiteStandard) TestOrganizationsCreateBulk() {
	body := []v1.OrganizationEditable{
		{Name: "Valid"},
		{Name: "   "},
		{Name: "Also valid"},
	}

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/organizations", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.OrganizationCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Valid", response.Data[0].Data.Name)
	suite.Assert().Equal(models.ErrNameMissing.Error(), *response.Data[1].Error)
	suite.Assert().Equal("Also valid", response.Data[2].Data.Name)

	suite.Assert().Len(getList[v1.Organization](suite, "http://example.com/v1/organizations"), 2)
}

func (suite *TestSuiteStandard) TestOrganizationsCreateInvalidBody() {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Not JSON", "not a json", http.StatusBadRequest},
		{"Object instead of array", `{"name": "Test"}`, http.StatusBadRequest},
		{"Wrong type", `[{"name": 23}]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/organizations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.OrganizationCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsGetOrderedByName() {
	for _, name := range []string{"Zeta", "Alpha", "Mu"} {
		_ = suite.createTestOrganization(suite.T(), v1.OrganizationEditable{Name: name})
	}

	organizations := getList[v1.Organization](suite, "http://example.com/v1/organizations")
	suite.Require().Len(organizations, 3)
	suite.Assert().Equal("Alpha", organizations[0].Name)
	suite.Assert().Equal("Mu", organizations[1].Name)
	suite.Assert().Equal("Zeta", organizations[2].Name)
}

func (suite *TestSuiteStandard) TestOrganizationsGetEmpty() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/organizations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// An empty list, not null
	suite.Assert().JSONEq(`{"data": [], "error": null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestOrganizationsGetSingle() {
	o := suite.createTestOrganization(suite.T(), v1.OrganizationEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing organization", o.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No organization with this ID", uuid.NewString(), http.StatusNotFound},
		{"Invalid ID (number)", "23", http.StatusBadRequest},
		{"Invalid ID (string)", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/organizations/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.OrganizationResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusNotFound {
				assert.Equal(t, "there is no organization matching your query", *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No organization with this ID", uuid.NewString(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Organization exists", suite.createTestOrganization(suite.T(), v1.OrganizationEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/organizations/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsSummary() {
	organization := suite.seed(suite.T())

	r := suite.request(suite.T(), http.MethodGet, organization.Links.Summary, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	summary := response.Data

	suite.Assert().Equal("organization", summary.Scope)
	suite.Assert().Equal("SampleTestOrg", summary.Name)
	suite.assertDecimal(5000000, summary.TotalBudget.Amount)
	suite.Assert().Contains(summary.TotalBudget.Formatted, "5,000,000.00")
	suite.assertDecimal(5000000, summary.Budgeted.Amount)
	suite.assertDecimal(0, summary.Unallocated.Amount)
	suite.assertDecimal(5000000, summary.Allocated.Amount)
	suite.assertDecimal(0, summary.Spent.Amount)
	suite.assertDecimal(5000000, summary.Remaining.Amount)
	suite.Assert().False(summary.OverBudget)
	suite.Assert().Equal(5, summary.Departments)
	suite.Assert().Equal(8, summary.Managers)
	suite.Assert().Equal(13, summary.Teams)
	suite.Require().Len(summary.Categories, 5)
	suite.Assert().Equal("Training and Courses", summary.Categories[0].Name)
	suite.assertDecimal(1500000, summary.Categories[0].Allocated.Amount)
	suite.Assert().Equal(organization.Links.Self, summary.Links.Resource)
	suite.Assert().Equal(organization.Links.Summary, summary.Links.Self)
}

// TestOrganizationsSummarySpent verifies that spending on any team is
// reflected in the organization summary.
func (suite *TestSuiteStandard) TestOrganizationsSummarySpent() {
	organization := suite.seed(suite.T())

	items := getList[v1.BudgetItem](suite, "http://example.com/v1/budget-items")
	suite.Require().NotEmpty(items)

	r := suite.request(suite.T(), http.MethodPatch, items[0].Links.Self, map[string]any{"spent": "1250.50"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodGet, organization.Links.Summary, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(decimal.RequireFromString("1250.50").Equal(response.Data.Spent.Amount))
	suite.Assert().True(decimal.RequireFromString("4998749.50").Equal(response.Data.Remaining.Amount))
	suite.Assert().Contains(response.Data.Remaining.Formatted, "4,998,749.50")
}

func (suite *TestSuiteStandard) TestOrganizationsSummaryNotFound() {
	r := suite.request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/organizations/%s/summary", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestOrganizationsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestOrganizationsDBClosed() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/organizations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.OrganizationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Error)

	_ = suite.createTestOrganization(suite.T(), v1.OrganizationEditable{}, http.StatusInternalServerError)
}
