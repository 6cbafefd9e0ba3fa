package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adamaho/matchpoint/internal/middleware"
	"github.com/adamaho/matchpoint/internal/service"
	"github.com/adamaho/matchpoint/internal/util"
)

type MatchHTTP struct {
	Svc    *service.MatchService
	Search *service.SearchService
}

func (h *MatchHTTP) MeMatches(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, CodeUnauthorized, "missing bearer token")
	}

	matches, err := h.Svc.MatchesForUser(ctx, user.UserID)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"matches": matches})
}

func (h *MatchHTTP) OneMatch(c echo.Context) error {
	ctx := c.Request().Context()

	// routes register /matches/:match_id, so the param arrives as "7.json"
	rawID := strings.TrimSuffix(c.Param("match_id"), ".json")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, CodeNotFound, "The requested match does not exist")
	}

	match, err := h.Svc.MatchByID(ctx, uint(id))
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"match": match})
}

func (h *MatchHTTP) SearchMatches(c echo.Context) error {
	ctx := c.Request().Context()

	q := c.QueryParam("q")
	if q == "" {
		return errorJSON(c, http.StatusBadRequest, CodeValidationError, "query parameter q is required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, matches, err := h.Search.SearchMatches(ctx, q, from, size)
	if err != nil {
		if err == service.ErrSearchDisabled {
			return errorJSON(c, http.StatusNotFound, CodeNotFound, "search is not available")
		}
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "matches": matches})
}
