package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/store"
)

// getSummary responds with the summary of the resource identified in the
// URI. scope selects the level of the organizational tree.
func (co Controller) getSummary(c *gin.Context, scope func(uuid.UUID) store.Scope) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	summary, err := co.Store.Summary(scope(uri.ID.UUID))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	apiResource := co.newSummary(c, summary)
	c.JSON(http.StatusOK, SummaryResponse{Data: &apiResource})
}
