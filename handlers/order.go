// File: handlers/order.go
package handlers

import (
	"net/http"

	"backmoney/models"
	ordersvc "backmoney/services/order"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes product order endpoints.
type OrderHandler struct {
	Service ordersvc.OrderService
}

func (h *OrderHandler) PlaceOrderHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	order, err := h.Service.PlaceOrder(c.Request.Context(), tenantID, req)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "Failed to place order", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	order, err := h.Service.Get(c.Request.Context(), tenantID, id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Order not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	orders, err := h.Service.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) UpdateOrderStatusHandler(c *gin.Context) {
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
		utils.JSONError(c, http.StatusConflict, "Failed to update order status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
