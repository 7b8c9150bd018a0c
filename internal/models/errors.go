package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrBudgetTeamNotUnique   = errors.New("the team already has a budget")
	ErrBudgetTeamMismatch    = errors.New("the budget belongs to a different team")
	ErrCategoryNameNotUnique = errors.New("the budget category name must be unique")
	ErrNameMissing           = errors.New("the name must not be empty")
)
