// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"backmoney/database/repository"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const authCacheTTL = time.Hour

// authCacheKey builds the Redis key holding a user's current session entry.
func authCacheKey(tenantID, userID string) string {
	return utils.AuthCachePrefix + tenantID + ":" + userID
}

// authCacheValue encodes the token hash and role into one cache entry so a
// cache hit needs no Mongo round trip at all.
func authCacheValue(tokenHash, role string) string {
	return tokenHash + "|" + role
}

func splitAuthCacheValue(v string) (tokenHash, role string) {
	tokenHash, role, _ = strings.Cut(v, "|")
	return tokenHash, role
}

// JWTAuthMiddleware validates the bearer token, checks it against the stored
// token hash (so server-side revocation works) and puts the authenticated
// user and tenant IDs into the request context. Validated sessions are
// cached in the auth Redis DB; Mongo is only consulted on a cache miss.
//
// The token's tenant claim must match the tenant resolved by
// TenantMiddleware; a valid token from one tenant cannot be replayed
// against another.
func JWTAuthMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, tokenTenantID, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" || tokenTenantID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctxTenantID := c.GetString("tenantID")
		if ctxTenantID != "" && ctxTenantID != tokenTenantID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token does not belong to this tenant"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCacheKey(tokenTenantID, userID)

		// An unavailable cache is a miss, never a failure.
		authCache := utils.AuthCacheClient

		if authCache != nil {
			cached, err := authCache.Get(c.Request.Context(), cacheKey).Result()
			if err == nil {
				cachedHash, role := splitAuthCacheValue(cached)
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been revoked"})
					return
				}
				_ = authCache.Expire(c.Request.Context(), cacheKey, authCacheTTL).Err()
				grant(c, userID, role, tokenTenantID, ctxTenantID)
				return
			} else if err != redis.Nil {
				utils.GetLogger().Warn("Auth cache lookup failed, falling back to DB")
			}
		}

		user, err := userRepo.GetByID(c.Request.Context(), tokenTenantID, userID)
		if err != nil || user == nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if user.TokenHash == "" || user.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been revoked"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(c.Request.Context(), cacheKey,
				authCacheValue(user.TokenHash, user.Role), authCacheTTL).Err()
		}

		grant(c, user.ID, user.Role, tokenTenantID, ctxTenantID)
	}
}

func grant(c *gin.Context, userID, role, tokenTenantID, ctxTenantID string) {
	c.Set("userID", userID)
	c.Set("userRole", role)
	if ctxTenantID == "" {
		c.Set("tenantID", tokenTenantID)
	}
	c.Next()
}

// RequireAdmin gates an endpoint to admin accounts. Must run after
// JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}
		c.Next()
	}
}
