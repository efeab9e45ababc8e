// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"backmoney/models"
	catalogsvc "backmoney/services/catalog"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes service and product catalog endpoints.
type CatalogHandler struct {
	Service catalogsvc.CatalogService
}

func (h *CatalogHandler) SaveServiceHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var svc models.ServiceOffering
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	saved, err := h.Service.SaveService(c.Request.Context(), tenantID, &svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to save service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": saved})
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	services, err := h.Service.ListServices(c.Request.Context(), tenantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) SaveProductHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	saved, err := h.Service.SaveProduct(c.Request.Context(), tenantID, &p)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to save product", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": saved})
}

func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	products, err := h.Service.ListProducts(c.Request.Context(), tenantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list products", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
