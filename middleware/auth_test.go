// File: middleware/auth_test.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backmoney/models"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (r *fakeUserRepo) Upsert(ctx context.Context, user *models.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, tenantID, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok || u.TenantID != tenantID {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, tenantID, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.TenantID == tenantID && u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", email)
}

func (r *fakeUserRepo) SetTokenHash(ctx context.Context, tenantID, id, tokenHash string) error {
	u, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	u.TokenHash = tokenHash
	return nil
}

func authTestRouter(repo *fakeUserRepo, ctxTenantID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if ctxTenantID != "" {
		r.Use(func(c *gin.Context) { c.Set("tenantID", ctxTenantID) })
	}
	r.Use(JWTAuthMiddleware(repo))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"tenantID": c.GetString("tenantID"),
			"role":     c.GetString("userRole"),
		})
	})
	return r
}

func issueToken(t *testing.T, repo *fakeUserRepo, userID, tenantID string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, tenantID, "u@example.com", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.SetTokenHash(context.Background(), tenantID, userID, utils.HashToken(token)))
	return token
}

func newAuthTestRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", TenantID: "t1", Email: "u@example.com", Role: "admin", IsActive: true},
	}}
}

func TestJWTAuthAcceptsValidSession(t *testing.T) {
	repo := newAuthTestRepo()
	token := issueToken(t, repo, "u1", "t1")
	router := authTestRouter(repo, "t1")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestJWTAuthRejectsRevokedSession(t *testing.T) {
	repo := newAuthTestRepo()
	token := issueToken(t, repo, "u1", "t1")
	require.NoError(t, repo.SetTokenHash(context.Background(), "t1", "u1", ""))
	router := authTestRouter(repo, "t1")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsTokenFromAnotherTenant(t *testing.T) {
	repo := newAuthTestRepo()
	token := issueToken(t, repo, "u1", "t1")
	router := authTestRouter(repo, "t2")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsMissingBearer(t *testing.T) {
	router := authTestRouter(newAuthTestRepo(), "t1")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthCacheValueRoundTrip(t *testing.T) {
	hash, role := splitAuthCacheValue(authCacheValue("abc123", "staff"))
	assert.Equal(t, "abc123", hash)
	assert.Equal(t, "staff", role)

	assert.Equal(t, utils.AuthCachePrefix+"t1:u1", authCacheKey("t1", "u1"))
}
