package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adamaho/matchpoint/internal/events"
	"github.com/adamaho/matchpoint/internal/logging"
	"github.com/adamaho/matchpoint/internal/middleware"
	"github.com/adamaho/matchpoint/internal/service"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

type signupRequest struct {
	Username string `json:"username" validate:"required,alphanum,lowercase,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}

type refreshRequest struct {
	AccessToken  string `json:"access_token"  validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_signup")

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup rejected", "reason", "invalid body")
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("signup rejected", "reason", "validation", "error", err)
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request payload")
	}

	res, err := h.Svc.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return domainError(c, err)
	}

	if err := h.Producer.Publish(ctx, idKey(res.User.UserID), map[string]any{
		"type":     "user_signed_up",
		"user_id":  res.User.UserID,
		"username": res.User.Username,
	}); err != nil {
		l.Error("event publish failed", "error", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"access_token":  res.AccessToken,
		"refresh_token": res.RefreshToken,
		"user":          res.User,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login rejected", "reason", "invalid body")
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login rejected", "reason", "validation", "error", err)
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request payload")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return domainError(c, err)
	}

	if err := h.Producer.Publish(ctx, idKey(res.User.UserID), map[string]any{
		"type":     "user_logged_in",
		"user_id":  res.User.UserID,
		"username": res.User.Username,
	}); err != nil {
		l.Error("event publish failed", "error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token":  res.AccessToken,
		"refresh_token": res.RefreshToken,
		"user":          res.User,
	})
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_refresh")

	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("refresh rejected", "reason", "invalid body")
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("refresh rejected", "reason", "validation", "error", err)
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request payload")
	}

	newAccess, err := h.Svc.Refresh(ctx, req.AccessToken, req.RefreshToken)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"accessToken":  newAccess,
		"refreshToken": req.RefreshToken,
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_logout")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, CodeUnauthorized, "missing bearer token")
	}

	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("logout rejected", "reason", "invalid body")
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("logout rejected", "reason", "validation", "error", err)
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request payload")
	}

	if err := h.Svc.Logout(ctx, user.UserID, req.RefreshToken); err != nil {
		return domainError(c, err)
	}

	if err := h.Producer.Publish(ctx, idKey(user.UserID), map[string]any{
		"type":     "user_logged_out",
		"user_id":  user.UserID,
		"username": user.Username,
	}); err != nil {
		l.Error("event publish failed", "error", err)
	}

	return c.NoContent(http.StatusNoContent)
}
