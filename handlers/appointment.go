// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"backmoney/cron"
	"backmoney/models"
	apptsvc "backmoney/services/appointment"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking and appointment lifecycle endpoints.
// Reminders holds the asynq-backed scheduler; it may be nil when the
// reminder queue is not configured.
type AppointmentHandler struct {
	Service   apptsvc.AppointmentService
	Reminders *cron.ReminderScheduler
}

func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), tenantID, req)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "Failed to book appointment", err.Error())
		return
	}

	// Reminder scheduling is best effort; a queue failure must not undo
	// the booking.
	if h.Reminders != nil {
		if err := h.Reminders.ScheduleForAppointment(appt); err != nil {
			utils.GetLogger().Warn("Failed to schedule appointment reminder",
				zap.Error(err), zap.String("appointmentID", appt.ID))
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked",
		"appointment": appt,
	})
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	appt, err := h.Service.Get(c.Request.Context(), tenantID, id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (h *AppointmentHandler) ListAppointmentsByDateHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "")
		return
	}

	appts, err := h.Service.ListByDate(c.Request.Context(), tenantID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) ListClientAppointmentsHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	clientID := c.Param("id")

	appts, err := h.Service.ListByClient(c.Request.Context(), tenantID, clientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid status in request body", err.Error())
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), tenantID, id, body.Status); err != nil {
		utils.JSONError(c, http.StatusConflict, "Failed to update appointment status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated"})
}

func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	if err := h.Service.Cancel(c.Request.Context(), tenantID, id); err != nil {
		utils.JSONError(c, http.StatusConflict, "Failed to cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
