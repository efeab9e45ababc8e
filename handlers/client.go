// File: handlers/client.go
package handlers

import (
	"net/http"
	"time"

	"backmoney/database/repository"
	"backmoney/models"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler exposes customer record CRUD.
type ClientHandler struct {
	Repo repository.ClientRepository
}

func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if client.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Client name is required", "")
		return
	}

	client.ID = uuid.New().String()
	client.TenantID = tenantID
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := h.Repo.Create(c.Request.Context(), &client); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create client", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client})
}

func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	client, err := h.Repo.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Client not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	clients, err := h.Repo.ListByTenant(c.Request.Context(), tenantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	id := c.Param("id")

	if err := h.Repo.Delete(c.Request.Context(), tenantID, id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
