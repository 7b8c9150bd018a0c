package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/orgbudget/backend/internal/controllers/v1"
	"github.com/orgbudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) seededManager(department v1.Department, name string) v1.Manager {
	managers := getList[v1.Manager](suite, department.Links.Managers)
	return findByName(suite, managers, func(m v1.Manager) string { return m.Name }, name)
}

func (suite *TestSuiteStandard) TestManagersCreate() {
	d := suite.createTestDepartment(suite.T(), v1.DepartmentEditable{})
	m := suite.createTestManager(suite.T(), v1.ManagerEditable{DepartmentID: d.Data.ID, Name: "Alex Kumar"})

	suite.Assert().Equal("Alex Kumar", m.Data.Name)
	suite.Assert().Equal(d.Data.ID, m.Data.DepartmentID)
	suite.Assert().Equal(d.Data.Links.Self, m.Data.Links.Department)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/teams?manager=%s", m.Data.ID), m.Data.Links.Teams)
}

func (suite *TestSuiteStandard) TestManagersCreateFails() {
	tests := []struct {
		name    string
		manager v1.ManagerEditable
		status  int
	}{
		{"Unknown department", v1.ManagerEditable{DepartmentID: uuid.New(), Name: "Alex Kumar"}, http.StatusNotFound},
		{"Name missing", v1.ManagerEditable{DepartmentID: suite.createTestDepartment(suite.T(), v1.DepartmentEditable{}).Data.ID}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/managers", []v1.ManagerEditable{tt.manager})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ManagerCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, 1)
			assert.NotNil(t, response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestManagersGetFilter() {
	d1 := suite.createTestDepartment(suite.T(), v1.DepartmentEditable{})
	d2 := suite.createTestDepartment(suite.T(), v1.DepartmentEditable{})

	_ = suite.createTestManager(suite.T(), v1.ManagerEditable{DepartmentID: d1.Data.ID})
	_ = suite.createTestManager(suite.T(), v1.ManagerEditable{DepartmentID: d2.Data.ID})
	_ = suite.createTestManager(suite.T(), v1.ManagerEditable{DepartmentID: d2.Data.ID})

	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"All", "", 3, http.StatusOK},
		{"Department 1", fmt.Sprintf("department=%s", d1.Data.ID), 1, http.StatusOK},
		{"Department 2", fmt.Sprintf("department=%s", d2.Data.ID), 2, http.StatusOK},
		{"Unknown department", fmt.Sprintf("department=%s", uuid.New()), 0, http.StatusOK},
		{"Invalid UUID", "department=-1", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/managers?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ManagerListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestManagersGetSingle() {
	m := suite.createTestManager(suite.T(), v1.ManagerEditable{})

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"GET existing manager", http.MethodGet, m.Data.ID.String(), http.StatusOK},
		{"GET unknown manager", http.MethodGet, uuid.NewString(), http.StatusNotFound},
		{"GET invalid ID", http.MethodGet, "23", http.StatusBadRequest},
		{"OPTIONS existing manager", http.MethodOptions, m.Data.ID.String(), http.StatusNoContent},
		{"OPTIONS unknown manager", http.MethodOptions, uuid.NewString(), http.StatusNotFound},
		{"Summary of unknown manager", http.MethodGet, uuid.NewString() + "/summary", http.StatusNotFound},
		{"DELETE is not allowed", http.MethodDelete, m.Data.ID.String(), http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, tt.method, fmt.Sprintf("http://example.com/v1/managers/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestManagersSummary() {
	organization := suite.seed(suite.T())
	design := suite.seededDepartment(organization, "Design")
	sophie := suite.seededManager(design, "Sophie Lee")

	r := suite.request(suite.T(), http.MethodGet, sophie.Links.Summary, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("manager", response.Data.Scope)
	suite.Assert().Equal("Sophie Lee", response.Data.Name)
	suite.assertDecimal(550000, response.Data.TotalBudget.Amount)
	suite.assertDecimal(550000, response.Data.Allocated.Amount)
	suite.assertDecimal(0, response.Data.Unallocated.Amount)
	suite.Assert().Equal(2, response.Data.Teams)
	suite.Assert().Equal(sophie.Links.Self, response.Data.Links.Resource)
}
