package service

import "errors"

// Domain errors. The HTTP layer maps each to its status code and error_code
// enum; everything else coming out of a service is a persistence failure and
// collapses to 500 DATABASE_ERROR.
var (
	ErrUnknownUser        = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("user credentials are invalid")
	ErrUnauthorized       = errors.New("refresh token is invalid")
	ErrForbidden          = errors.New("unable to log user out")
	ErrNotFound           = errors.New("resource does not exist")
)
