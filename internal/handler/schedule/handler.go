package schedule

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/handler"
	"github.com/jwalitptl/hospital-api/internal/model"
)

type Service interface {
	ListSchedules(ctx context.Context, doctorID *int64) ([]*model.ScheduleEntry, error)
	CreateSchedule(ctx context.Context, req *model.CreateScheduleRequest) (int64, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	schedules := r.Group("/schedules")
	{
		schedules.GET("", h.ListSchedules)
		schedules.POST("", h.CreateSchedule)
	}
}

func (h *Handler) ListSchedules(c *gin.Context) {
	doctorID, err := handler.QueryInt64(c, "doctor_id")
	if err != nil {
		c.Error(err)
		return
	}

	entries, err := h.service.ListSchedules(c.Request.Context(), doctorID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateSchedule acknowledges with a status rather than the new id.
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req model.CreateScheduleRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if _, err := h.service.CreateSchedule(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, model.StatusResponse{Status: "created"})
}
