// Package v1 implements the v1 HTTP API of the budget store.
package v1

import (
	"errors"
	"net/http"

	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/internal/store"
	"github.com/orgbudget/backend/internal/types"
	ez_uuid "github.com/orgbudget/backend/internal/uuid"
)

// Controller serves the API from the store it holds.
type Controller struct {
	Store *store.Store
	Money types.MoneyFormatter
}

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

var (
	errSpentMissing    = errors.New("the spent field must be set")
	errBudgetIDMissing = errors.New("the budgetId field must be set")
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// highestStatus returns the status for err if it is higher than the
// current one. Bulk requests respond with the highest status of all
// elements.
func highestStatus(err error, currentStatus int) int {
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}
