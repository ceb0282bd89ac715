package auth

import (
	"net/http"

	"parivar/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidOTP             = response.NewError(http.StatusBadRequest, "invalid otp")
	ErrorTokenExpired         = response.NewError(http.StatusBadRequest, "token expired or not found")
	ErrPasswordSame           = response.NewError(http.StatusBadRequest, "password same as before")
)
