package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adamaho/matchpoint/internal/service"
)

// Error codes of the API error envelope.
const (
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeUnknownUser        = "UNKNOWN_USER"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeValidationError    = "VALIDATION_ERROR"
)

type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Error     string `json:"error"`
}

func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorResponse{ErrorCode: code, Error: message})
}

// domainError maps a service error to its response. Messages are fixed per
// error kind; the raw cause was already logged server-side and is never
// echoed to the client.
func domainError(c echo.Context, err error) error {
	switch err {
	case service.ErrUnknownUser:
		return errorJSON(c, http.StatusNotFound, CodeUnknownUser, "user does not exist")
	case service.ErrInvalidCredentials:
		return errorJSON(c, http.StatusBadRequest, CodeInvalidCredentials, "user credentials are invalid")
	case service.ErrUnauthorized:
		return errorJSON(c, http.StatusUnauthorized, CodeUnauthorized, "The provided refresh token is invalid.")
	case service.ErrForbidden:
		return errorJSON(c, http.StatusForbidden, CodeForbidden, "Unable to log user out")
	case service.ErrNotFound:
		return errorJSON(c, http.StatusNotFound, CodeNotFound, "The requested match does not exist")
	default:
		return errorJSON(c, http.StatusInternalServerError, CodeDatabaseError, "a database error occurred")
	}
}
