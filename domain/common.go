package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID          = errors.New("failed to parse UUID")
	ErrUserNotAllowed     = errors.New("user not allowed")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnauthorizedAccess = errors.New("unauthorized access")
)
