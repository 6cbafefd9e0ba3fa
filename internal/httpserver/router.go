package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adamaho/matchpoint/internal/middleware"
)

type Deps struct {
	AuthHandler  *AuthHTTP
	MatchHandler *MatchHTTP
	UserHandler  *UserHTTP
	Auth         *middleware.BearerAuth
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/auth/signup.json", d.AuthHandler.Signup)
	e.POST("/auth/login.json", d.AuthHandler.Login)
	e.POST("/auth/refresh.json", d.AuthHandler.Refresh)

	private := e.Group("", d.Auth.RequireAuth)

	private.POST("/auth/logout", d.AuthHandler.Logout)
	private.GET("/me/matches.json", d.MatchHandler.MeMatches)
	private.GET("/matches/search.json", d.MatchHandler.SearchMatches)
	private.GET("/matches/:match_id", d.MatchHandler.OneMatch)
	private.PUT("/users/me", d.UserHandler.UpdateMe)
}
