package appointment

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/handler"
	"github.com/jwalitptl/hospital-api/internal/model"
)

type Service interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (int64, error)
	ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.AppointmentView, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.PUT("/:id", h.UpdateStatus)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	id, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, model.CreatedResponse{ID: id})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	doctorID, err := handler.QueryInt64(c, "doctor_id")
	if err != nil {
		c.Error(err)
		return
	}
	patientID, err := handler.QueryInt64(c, "patient_id")
	if err != nil {
		c.Error(err)
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), &model.AppointmentFilters{
		DoctorID:  doctorID,
		PatientID: patientID,
		Status:    model.AppointmentStatus(c.Query("status")),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := handler.ParseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}
