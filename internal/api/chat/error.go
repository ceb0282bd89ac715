package chat

import (
	"net/http"

	"parivar/pkg/response"
)

var (
	ErrAmountNotFound = response.NewError(http.StatusBadRequest, "could not determine the amount")
)
