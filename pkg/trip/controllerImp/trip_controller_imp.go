package controllerImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"tripagent/entities"
	"tripagent/pkg/logstream"
	"tripagent/pkg/middleware"
	"tripagent/pkg/trip/repository"
	"tripagent/pkg/trip/service"
	"tripagent/pkg/trip/types"
)

type TripCtrl struct {
	svc     service.TripService
	repo    repository.TripRepository
	streams *logstream.Streamer
}

func NewTripCtrl(svc service.TripService, repo repository.TripRepository, streams *logstream.Streamer) *TripCtrl {
	return &TripCtrl{svc: svc, repo: repo, streams: streams}
}

func (h *TripCtrl) bindRequest(c echo.Context) (types.TripRequest, error) {
	var req types.TripRequest
	if err := c.Bind(&req); err != nil {
		return req, errors.New("bad json")
	}
	if err := req.Normalize(); err != nil {
		return req, err
	}
	return req, nil
}

// Plan generates an itinerary synchronously. Anonymous callers are allowed;
// logged-in callers get the result persisted in the background.
func (h *TripCtrl) Plan(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	uid := middleware.UserID(c)

	plan := h.svc.PlanTrip(c.Request().Context(), req, "")

	if uid != "" {
		// Fire-and-forget: persistence never blocks or fails the response.
		go h.save(uid, req, plan, "")
	}
	return c.JSON(http.StatusOK, types.TripPlanResponse{
		Success: true,
		Message: "旅行计划生成成功",
		Data:    &plan,
	})
}

// PlanStream generates an itinerary while streaming progress as SSE. The
// pipeline runs on its own goroutine and reports through the log-stream
// registry; the handler forwards until the producer closes the stream.
// Envelopes: {"type":"log"|"result"|"error", ...}.
func (h *TripCtrl) PlanStream(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	uid := middleware.UserID(c)

	streamID := uuid.NewString()
	ch := h.streams.Create(streamID)

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)

	go func() {
		defer h.streams.Close(streamID)

		emit := func(msg string) { h.streams.Emit(streamID, logstream.LogEvent(msg)) }
		emit(strings.Repeat("=", 60))
		emit("收到旅行规划请求:")
		emit("城市: " + req.City)
		emit(fmt.Sprintf("日期: %s - %s", req.StartDate, req.EndDate))
		emit(fmt.Sprintf("天数: %d", req.TravelDays))
		emit(strings.Repeat("=", 60))
		if uid != "" {
			emit("用户已登录: " + uid)
		}

		// Detached from the request context on purpose: once dispatched the
		// pipeline runs to completion even if the client goes away.
		plan := h.svc.PlanTrip(context.Background(), req, streamID)

		if uid != "" {
			h.save(uid, req, plan, streamID)
		}
		h.streams.Emit(streamID, logstream.ResultEvent(plan))
	}()

	for msg := range ch {
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", msg); err != nil {
			// Client gone; keep draining so the producer can finish.
			continue
		}
		resp.Flush()
	}
	return nil
}

func (h *TripCtrl) save(uid string, req types.TripRequest, plan types.TripPlan, streamID string) {
	id, err := h.repo.Save(uid, req, plan)
	if err != nil {
		log.Printf("[trip] save plan for user %s: %v", uid, err)
		if streamID != "" {
			h.streams.Emit(streamID, logstream.LogEvent("保存旅行规划到数据库失败: "+err.Error()))
		}
		return
	}
	log.Printf("[trip] plan saved: %s", id)
	if streamID != "" {
		h.streams.Emit(streamID, logstream.LogEvent("旅行规划已保存到数据库: "+id))
	}
}

// requireUser answers the 401s for protected routes, distinguishing a
// missing header from a token the verifier rejected.
func (h *TripCtrl) requireUser(c echo.Context) (string, error) {
	if uid := middleware.UserID(c); uid != "" {
		return uid, nil
	}
	msg := "需要登录才能访问"
	if middleware.BearerToken(c) != "" {
		msg = "无效的认证token"
	}
	return "", c.JSON(http.StatusUnauthorized, map[string]string{"error": msg})
}

func (h *TripCtrl) History(c echo.Context) error {
	uid, errResp := h.requireUser(c)
	if uid == "" {
		return errResp
	}
	recs, err := h.repo.ListByUser(uid, 50)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	// The list view carries requests only; full plans come from Get.
	items := lo.Map(recs, func(r entities.TripPlanRecord, _ int) types.TripHistoryItem {
		return types.TripHistoryItem{
			ID:          r.ID,
			RequestData: &r.RequestData,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}
	})
	return c.JSON(http.StatusOK, types.TripHistoryResponse{
		Success: true,
		Message: "获取历史记录成功",
		Data:    items,
	})
}

func (h *TripCtrl) Get(c echo.Context) error {
	uid, errResp := h.requireUser(c)
	if uid == "" {
		return errResp
	}
	rec, err := h.repo.FindByID(c.Param("id"), uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "旅行规划不存在或无权访问"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, types.TripPlanResponse{
		Success: true,
		Message: "获取旅行规划成功",
		Data:    &rec.ResponseData,
	})
}
