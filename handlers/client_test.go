// File: handlers/client_test.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backmoney/models"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients map[string]*models.Client
}

func (r *fakeClientRepo) Create(ctx context.Context, client *models.Client) error {
	if r.clients == nil {
		r.clients = map[string]*models.Client{}
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Upsert(ctx context.Context, client *models.Client) error {
	return r.Create(ctx, client)
}

func (r *fakeClientRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Client, error) {
	cl, ok := r.clients[id]
	if !ok || cl.TenantID != tenantID {
		return nil, fmt.Errorf("client %s not found", id)
	}
	return cl, nil
}

func (r *fakeClientRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Client, error) {
	var out []models.Client
	for _, cl := range r.clients {
		if cl.TenantID == tenantID {
			out = append(out, *cl)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, tenantID, id string) error {
	delete(r.clients, id)
	return nil
}

func clientTestRouter(repo *fakeClientRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("tenantID", "t1") })
	h := &ClientHandler{Repo: repo}
	r.POST("/clients", h.CreateClientHandler)
	r.GET("/clients/:id", h.GetClientHandler)
	return r
}

func TestGetClientNotFoundReturnsErrorResponse(t *testing.T) {
	r := clientTestRouter(&fakeClientRepo{clients: map[string]*models.Client{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clients/missing", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Client not found", resp.Message)
	assert.Contains(t, resp.Details, "missing")
}

func TestCreateClientRejectsMissingName(t *testing.T) {
	repo := &fakeClientRepo{clients: map[string]*models.Client{}}
	r := clientTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"email":"a@b.pt"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Client name is required", resp.Message)
	assert.Empty(t, repo.clients)
}

func TestCreateClientAssignsIDAndTenant(t *testing.T) {
	repo := &fakeClientRepo{clients: map[string]*models.Client{}}
	r := clientTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Joana Reis"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.clients, 1)
	for _, cl := range repo.clients {
		assert.NotEmpty(t, cl.ID)
		assert.Equal(t, "t1", cl.TenantID)
		assert.False(t, cl.CreatedAt.IsZero())
	}
}
