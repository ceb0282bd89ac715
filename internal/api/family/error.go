package family

import (
	"net/http"

	"parivar/pkg/response"
)

var (
	ErrFamilyNotFound    = response.NewError(http.StatusNotFound, "family not found")
	ErrAlreadyInFamily   = response.NewError(http.StatusBadRequest, "user already part of a family")
	ErrNotInFamily       = response.NewError(http.StatusBadRequest, "user is not part of a family")
	ErrInvalidInviteCode = response.NewError(http.StatusNotFound, "invalid invite code")
	ErrNotFamilyHead     = response.NewError(http.StatusForbidden, "only the family head can do this")
)
