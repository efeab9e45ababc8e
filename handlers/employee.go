// File: handlers/employee.go
package handlers

import (
	"net/http"

	"backmoney/models"
	empsvc "backmoney/services/employee"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler exposes employee CRUD plus the working-hours endpoints.
type EmployeeHandler struct {
	Service empsvc.EmployeeService
}

func (h *EmployeeHandler) CreateEmployeeHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var emp models.Employee
	if err := c.ShouldBindJSON(&emp); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.CreateEmployee(c.Request.Context(), tenantID, &emp)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create employee", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employee": created})
}

func (h *EmployeeHandler) GetEmployeeHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	emp, err := h.Service.GetEmployee(c.Request.Context(), tenantID, id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Employee not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": emp})
}

func (h *EmployeeHandler) ListEmployeesHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	employees, err := h.Service.ListEmployees(c.Request.Context(), tenantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list employees", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *EmployeeHandler) UpdateEmployeeHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	var upd models.EmployeeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	emp, err := h.Service.UpdateEmployee(c.Request.Context(), tenantID, id, upd)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update employee", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": emp})
}

func (h *EmployeeHandler) DeleteEmployeeHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	if err := h.Service.DeleteEmployee(c.Request.Context(), tenantID, id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete employee", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// SetupWorkingHoursHandler replaces an employee's schedule with the
// normalized time-slot form.
func (h *EmployeeHandler) SetupWorkingHoursHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	var req models.SetupWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	wh, err := h.Service.SetupWorkingHours(c.Request.Context(), tenantID, id, req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to set working hours", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Working hours updated",
		"workingHours": wh,
	})
}

// GetWorkingHoursHandler returns the employee's schedule in normalized form,
// converting a legacy day-keyed schedule on the fly when necessary.
func (h *EmployeeHandler) GetWorkingHoursHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	wh, err := h.Service.GetWorkingHours(c.Request.Context(), tenantID, id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to fetch working hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"workingHours": wh})
}

// ImportAvailabilityHandler parses free-text availability lines
// ("Segunda - 08:00, 09:00 e 10:00") into a normalized schedule.
func (h *EmployeeHandler) ImportAvailabilityHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	var body struct {
		Lines []string `json:"lines" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid availability lines", err.Error())
		return
	}

	wh, err := h.Service.ImportAvailability(c.Request.Context(), tenantID, id, body.Lines)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to import availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability imported",
		"workingHours": wh,
	})
}
