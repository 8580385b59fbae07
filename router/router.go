package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	tripCtrl interface {
		Plan(echo.Context) error
		PlanStream(echo.Context) error
		History(echo.Context) error
		Get(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
	authMW echo.MiddlewareFunc,
) *echo.Echo {
	g := e.Group("/trip", authMW)

	g.POST("/plan", tripCtrl.Plan)
	g.POST("/plan-stream", tripCtrl.PlanStream)
	g.GET("/history", tripCtrl.History)
	g.GET("/health", healthCtrl.Health)
	// Static routes above take priority over the id match.
	g.GET("/:id", tripCtrl.Get)

	return e
}
