// File: middleware/tenant.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"backmoney/database/repository"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const tenantCacheTTL = 5 * time.Minute

// TenantMiddleware resolves the X-Tenant-ID header to a known tenant and
// stores its ID in the request context. The header accepts either the tenant
// ID or its slug. Resolutions are cached in Redis to avoid hitting Mongo on
// every request.
func TenantMiddleware(tenantRepo repository.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		header := strings.TrimSpace(c.GetHeader("X-Tenant-ID"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing X-Tenant-ID header"})
			return
		}

		cacheKey := "tenant:resolve:" + header
		if cache := utils.GetCacheClient(); cache != nil {
			if id, err := cache.Get(c.Request.Context(), cacheKey).Result(); err == nil && id != "" {
				c.Set("tenantID", id)
				c.Next()
				return
			} else if err != nil && err != redis.Nil {
				logger.Warn("Tenant cache lookup failed", zap.Error(err))
			}
		}

		tenant, err := tenantRepo.GetByID(c.Request.Context(), header)
		if err != nil {
			tenant, err = tenantRepo.GetBySlug(c.Request.Context(), header)
		}
		if err != nil || tenant == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown tenant"})
			return
		}
		if !tenant.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Tenant is disabled"})
			return
		}

		if cache := utils.GetCacheClient(); cache != nil {
			if err := cache.Set(c.Request.Context(), cacheKey, tenant.ID, tenantCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache tenant resolution", zap.Error(err))
			}
		}

		c.Set("tenantID", tenant.ID)
		c.Next()
	}
}
