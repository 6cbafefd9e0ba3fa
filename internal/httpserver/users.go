package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adamaho/matchpoint/internal/logging"
	"github.com/adamaho/matchpoint/internal/middleware"
	"github.com/adamaho/matchpoint/internal/service"
)

type UserHTTP struct {
	Svc *service.UserService
}

type updateMeRequest struct {
	Username         *string `json:"username"         validate:"omitempty,alphanum,lowercase,min=3,max=30"`
	AvatarBackground *string `json:"avatarBackground" validate:"omitempty,max=30"`
	AvatarEmoji      *string `json:"avatarEmoji"      validate:"omitempty,max=30"`
}

// UpdateMe mutates only the supplied fields of the authenticated user. The
// target id comes from the verified token, so a caller can never update
// anyone else.
func (h *UserHTTP) UpdateMe(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users_update_me")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, CodeUnauthorized, "missing bearer token")
	}

	var req updateMeRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update rejected", "reason", "invalid body")
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update rejected", "reason", "validation", "error", err)
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "invalid request payload")
	}

	updated, err := h.Svc.UpdateProfile(ctx, user.UserID, service.ProfileUpdate{
		Username:         req.Username,
		AvatarBackground: req.AvatarBackground,
		AvatarEmoji:      req.AvatarEmoji,
	})
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}
