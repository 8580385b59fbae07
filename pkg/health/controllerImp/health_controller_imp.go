package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db         *gorm.DB
	agentName  string
	toolsCount int
}

func NewHealthCtrl(db *gorm.DB, agentName string, toolsCount int) *HealthCtrl {
	return &HealthCtrl{db: db, agentName: agentName, toolsCount: toolsCount}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbStatus := "up"
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = "down"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "down"
	}

	status := http.StatusOK
	overall := "healthy"
	if dbStatus == "down" {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	return c.JSON(status, map[string]any{
		"status":      overall,
		"service":     "trip-planner",
		"agent_name":  h.agentName,
		"tools_count": h.toolsCount,
		"db":          dbStatus,
		"uptime":      time.Since(appStart).Round(time.Second).String(),
	})
}
