package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/orgbudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsLists() {
	tests := []struct {
		path  string
		allow string
	}{
		{"organizations", "OPTIONS, GET, POST"},
		{"departments", "OPTIONS, GET, POST"},
		{"managers", "OPTIONS, GET, POST"},
		{"teams", "OPTIONS, GET, POST"},
		{"budgets", "OPTIONS, GET, POST"},
		{"budget-items", "OPTIONS, GET, POST"},
		{"budget-categories", "OPTIONS, GET"},
		{"dashboard", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
