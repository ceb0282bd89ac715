package expense

import (
	"net/http"

	"parivar/pkg/response"
)

var (
	ErrExpenseNotFound = response.NewError(http.StatusNotFound, "expense not found")
	ErrNotExpenseOwner = response.NewError(http.StatusUnauthorized, "expense does not belong to user")
	ErrInvalidAmount   = response.NewError(http.StatusBadRequest, "invalid expense amount")
	ErrInvalidCategory = response.NewError(http.StatusBadRequest, "invalid category")
)
