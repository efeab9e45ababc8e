// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backmoney/database/repository"
	"backmoney/models"
	"backmoney/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserService handles tenant account registration and authentication.
type UserService interface {
	Register(ctx context.Context, tenantID string, req models.RegisterUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, tenantID string, req models.AuthRequest) (*models.User, string, error)
	GetByID(ctx context.Context, tenantID, id string) (*models.User, error)
	RevokeToken(ctx context.Context, tenantID, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo repository.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, tenantID string, req models.RegisterUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := s.Repo.GetByEmail(ctx, tenantID, email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}
	user := &models.User{
		TenantID:     tenantID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials and issues a JWT; its hash is stored so
// the token can be revoked server-side.
func (s *DefaultUserService) Authenticate(ctx context.Context, tenantID string, req models.AuthRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.Repo.GetByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if !user.IsActive {
		return nil, "", fmt.Errorf("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, tenantID, user.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, tenantID, user.ID, utils.HashToken(token)); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}

	// A login replaces any previous session, so the cached entry for this
	// user must go. The auth middleware will re-prime it.
	invalidateSessionCache(ctx, tenantID, user.ID)

	return user, token, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, tenantID, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, tenantID, id)
}

func (s *DefaultUserService) RevokeToken(ctx context.Context, tenantID, id string) error {
	if err := s.Repo.SetTokenHash(ctx, tenantID, id, ""); err != nil {
		return err
	}
	invalidateSessionCache(ctx, tenantID, id)
	return nil
}

// invalidateSessionCache drops the cached session entry so revocation takes
// effect immediately rather than after the cache TTL.
func invalidateSessionCache(ctx context.Context, tenantID, id string) {
	if cache := utils.AuthCacheClient; cache != nil {
		if err := cache.Del(ctx, utils.AuthCachePrefix+tenantID+":"+id).Err(); err != nil {
			utils.GetLogger().Warn("Failed to invalidate session cache",
				zap.String("userID", id), zap.Error(err))
		}
	}
}
