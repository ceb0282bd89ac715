package notification

import (
	"net/http"

	"parivar/pkg/response"
)

var (
	ErrNotificationNotFound = response.NewError(http.StatusNotFound, "notification not found")
	ErrNotRecipient         = response.NewError(http.StatusForbidden, "notification does not belong to user")
)
