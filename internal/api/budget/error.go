package budget

import (
	"net/http"

	"parivar/pkg/response"
)

var (
	ErrBudgetNotFound = response.NewError(http.StatusNotFound, "no budget set for this family")
	ErrInvalidLimit   = response.NewError(http.StatusBadRequest, "budget limit must be greater than zero")
	ErrInvalidPeriod  = response.NewError(http.StatusBadRequest, "budget period must be daily, weekly or monthly")
)
