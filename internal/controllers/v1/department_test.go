package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/orgbudget/backend/internal/controllers/v1"
	"github.com/orgbudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// findByName returns the element with the given name.
func findByName[T any](suite *TestSuiteStandard, elements []T, name func(T) string, want string) T {
	for _, e := range elements {
		if name(e) == want {
			return e
		}
	}

	suite.Require().FailNow("element not found", want)
	var zero T
	return zero
}

func (suite *TestSuiteStandard) seededDepartment(organization v1.Organization, name string) v1.Department {
	departments := getList[v1.Department](suite, organization.Links.Departments)
	return findByName(suite, departments, func(d v1.Department) string { return d.Name }, name)
}

func (suite *TestSuiteStandard) TestDepartmentsCreate() {
	o := suite.createTestOrganization(suite.T(), v1.OrganizationEditable{})
	d := suite.createTestDepartment(suite.T(), v1.DepartmentEditable{
		OrganizationID:     o.Data.ID,
		Name:               "Engineering",
		DepartmentHeadName: "Michael Chen",
		TotalBudget:        decimal.NewFromInt(2000000),
	})

	suite.Assert().Equal(o.Data.ID, d.Data.OrganizationID)
	suite.Assert().Equal("Michael Chen", d.Data.DepartmentHeadName)
	suite.Assert().Equal(o.Data.Links.Self, d.Data.Links.Organization)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/managers?department=%s", d.Data.ID), d.Data.Links.Managers)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/departments/%s/overview", d.Data.ID), d.Data.Links.Overview)
}

func (suite *TestSuiteStandard) TestDepartmentsCreateFails() {
	tests := []struct {
		name       string
		department v1.DepartmentEditable
		status     int
	}{
		{"Unknown organization", v1.DepartmentEditable{OrganizationID: uuid.New(), Name: "Engineering"}, http.StatusNotFound},
		{"Name missing", v1.DepartmentEditable{OrganizationID: suite.createTestOrganization(suite.T(), v1.OrganizationEditable{}).Data.ID, Name: " "}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/departments", []v1.DepartmentEditable{tt.department})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDepartmentsGetFilter() {
	o1 := suite.createTestOrganization(suite.T(), v1.OrganizationEditable{})
	o2 := suite.createTestOrganization(suite.T(), v1.OrganizationEditable{})

	_ = suite.createTestDepartment(suite.T(), v1.DepartmentEditable{OrganizationID: o1.Data.ID})
	_ = suite.createTestDepartment(suite.T(), v1.DepartmentEditable{OrganizationID: o1.Data.ID})
	_ = suite.createTestDepartment(suite.T(), v1.DepartmentEditable{OrganizationID: o2.Data.ID})

	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"All", "", 3, http.StatusOK},
		{"Organization 1", fmt.Sprintf("organization=%s", o1.Data.ID), 2, http.StatusOK},
		{"Organization 2", fmt.Sprintf("organization=%s", o2.Data.ID), 1, http.StatusOK},
		{"Unknown organization", fmt.Sprintf("organization=%s", uuid.New()), 0, http.StatusOK},
		{"Invalid UUID", "organization=notaUUID", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/departments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DepartmentListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestDepartmentsGetSingle() {
	d := suite.createTestDepartment(suite.T(), v1.DepartmentEditable{})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing department", d.Data.ID.String(), http.StatusOK},
		{"No department with this ID", uuid.NewString(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
		{"Summary of unknown department", uuid.NewString() + "/summary", http.StatusNotFound},
		{"Overview of unknown department", uuid.NewString() + "/overview", http.StatusNotFound},
		{"Overview with invalid ID", "notaUUID/overview", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/departments/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDepartmentsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No department with this ID", uuid.NewString(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Department exists", suite.createTestDepartment(suite.T(), v1.DepartmentEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/departments/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDepartmentsSummary() {
	organization := suite.seed(suite.T())
	engineering := suite.seededDepartment(organization, "Engineering")

	r := suite.request(suite.T(), http.MethodGet, engineering.Links.Summary, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("department", response.Data.Scope)
	suite.Assert().Equal(engineering.ID, response.Data.ID)
	suite.assertDecimal(2000000, response.Data.TotalBudget.Amount)
	suite.assertDecimal(2000000, response.Data.Budgeted.Amount)
	suite.assertDecimal(0, response.Data.Unallocated.Amount)
	suite.Assert().Equal(2, response.Data.Managers)
	suite.Assert().Equal(4, response.Data.Teams)
}

func (suite *TestSuiteStandard) TestDepartmentsOverview() {
	organization := suite.seed(suite.T())
	engineering := suite.seededDepartment(organization, "Engineering")

	r := suite.request(suite.T(), http.MethodGet, engineering.Links.Overview, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DepartmentOverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	overview := response.Data

	suite.Assert().Equal(engineering.ID, overview.Department.ID)
	suite.assertDecimal(2000000, overview.TotalBudget.Amount)
	suite.assertDecimal(2000000, overview.Allocated.Amount)
	suite.assertDecimal(0, overview.Unallocated.Amount)

	suite.Require().Len(overview.Managers, 2)
	suite.Assert().Equal("Alex Kumar", overview.Managers[0].Manager.Name)
	suite.assertDecimal(1300000, overview.Managers[0].TotalAmount.Amount)
	suite.Assert().True(decimal.NewFromInt(65).Equal(overview.Managers[0].Percent))
	suite.Assert().Len(overview.Managers[0].Teams, 2)
	suite.Assert().Equal("Maria Garcia", overview.Managers[1].Manager.Name)
	suite.Assert().True(decimal.NewFromInt(35).Equal(overview.Managers[1].Percent))

	// Fully allocated, there is no "Unallocated" entry
	suite.Require().Len(overview.Distribution, 2)
	suite.Assert().Equal("Alex Kumar", overview.Distribution[0].Name)
	suite.Assert().Equal("Maria Garcia", overview.Distribution[1].Name)
}

func (suite *TestSuiteStandard) TestDepartmentsOverviewUnallocated() {
	d := suite.createTestDepartment(suite.T(), v1.DepartmentEditable{TotalBudget: decimal.NewFromInt(300000)})
	m := suite.createTestManager(suite.T(), v1.ManagerEditable{DepartmentID: d.Data.ID, Name: "Alex Kumar"})
	team := suite.createTestTeam(suite.T(), v1.TeamEditable{ManagerID: m.Data.ID})
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{TeamID: team.Data.ID, TotalAmount: decimal.NewFromInt(100000), Year: 2024})
	_ = suite.linkTestBudget(suite.T(), *budget.Data)

	r := suite.request(suite.T(), http.MethodGet, d.Data.Links.Overview, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DepartmentOverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Managers, 1)
	suite.Assert().True(decimal.RequireFromString("33.3").Equal(response.Data.Managers[0].Percent))

	suite.Require().Len(response.Data.Distribution, 2)
	suite.Assert().Equal("Unallocated", response.Data.Distribution[1].Name)
	suite.assertDecimal(200000, response.Data.Distribution[1].Value.Amount)
}
