package controller

import "github.com/labstack/echo/v4"

type TripController interface {
	Plan(echo.Context) error
	PlanStream(echo.Context) error
	History(echo.Context) error
	Get(echo.Context) error
}
