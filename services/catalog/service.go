// File: services/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"strings"

	"backmoney/database/repository"
	"backmoney/models"
)

// CatalogService manages a tenant's bookable services and products.
type CatalogService interface {
	SaveService(ctx context.Context, tenantID string, svc *models.ServiceOffering) (*models.ServiceOffering, error)
	ListServices(ctx context.Context, tenantID string) ([]models.ServiceOffering, error)

	SaveProduct(ctx context.Context, tenantID string, p *models.Product) (*models.Product, error)
	ListProducts(ctx context.Context, tenantID string) ([]models.Product, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo repository.CatalogRepository
}

func (s *DefaultCatalogService) SaveService(ctx context.Context, tenantID string, svc *models.ServiceOffering) (*models.ServiceOffering, error) {
	svc.TenantID = tenantID
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.DurationMin <= 0 {
		return nil, fmt.Errorf("service duration must be positive; got %d", svc.DurationMin)
	}
	if err := s.Repo.UpsertService(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to save service: %w", err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, tenantID string) ([]models.ServiceOffering, error) {
	return s.Repo.ListServices(ctx, tenantID)
}

func (s *DefaultCatalogService) SaveProduct(ctx context.Context, tenantID string, p *models.Product) (*models.Product, error) {
	p.TenantID = tenantID
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	if p.Name == "" || p.SKU == "" {
		return nil, fmt.Errorf("product name and sku are required")
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}
	if err := s.Repo.UpsertProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return p, nil
}

func (s *DefaultCatalogService) ListProducts(ctx context.Context, tenantID string) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, tenantID)
}
