// File: services/order/service.go
package order

import (
	"context"
	"fmt"

	"backmoney/database/repository"
	"backmoney/models"
	"backmoney/utils"

	"go.uber.org/zap"
)

// OrderService places and manages client orders for catalog products.
type OrderService interface {
	PlaceOrder(ctx context.Context, tenantID string, req models.CreateOrderRequest) (*models.Order, error)
	Get(ctx context.Context, tenantID, id string) (*models.Order, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, tenantID, id, status string) error
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Repo    repository.OrderRepository
	Catalog repository.CatalogRepository
	Clients repository.ClientRepository
}

// PlaceOrder resolves each line item against the catalog, captures unit
// prices, decrements stock and persists the order. Stock already taken for
// earlier lines is restored when a later line fails.
func (s *DefaultOrderService) PlaceOrder(ctx context.Context, tenantID string, req models.CreateOrderRequest) (*models.Order, error) {
	logger := utils.GetLogger()

	if _, err := s.Clients.GetByID(ctx, tenantID, req.ClientID); err != nil {
		return nil, fmt.Errorf("client lookup failed: %w", err)
	}

	order := &models.Order{
		TenantID: tenantID,
		ClientID: req.ClientID,
		Status:   models.OrderPending,
	}

	var reserved []models.OrderItem
	release := func() {
		for _, item := range reserved {
			if err := s.Catalog.AdjustStock(ctx, tenantID, item.ProductID, item.Quantity); err != nil {
				logger.Error("Failed to restore stock after aborted order",
					zap.String("product", item.ProductID), zap.Error(err))
			}
		}
	}

	for i, line := range req.Items {
		p, err := s.Catalog.GetProductByID(ctx, tenantID, line.ProductID)
		if err != nil {
			release()
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if !p.IsActive {
			release()
			return nil, fmt.Errorf("item %d: product %s is not for sale", i+1, p.Name)
		}
		if err := s.Catalog.AdjustStock(ctx, tenantID, p.ID, -line.Quantity); err != nil {
			release()
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		item := models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
		}
		reserved = append(reserved, item)
		order.Items = append(order.Items, item)
		order.Total += p.Price * float64(line.Quantity)
	}

	if err := s.Repo.Create(ctx, order); err != nil {
		release()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *DefaultOrderService) Get(ctx context.Context, tenantID, id string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, tenantID, id)
}

func (s *DefaultOrderService) ListByTenant(ctx context.Context, tenantID string) ([]models.Order, error) {
	return s.Repo.ListByTenant(ctx, tenantID)
}

// UpdateStatus applies a status transition along the
// pending → paid → shipped → delivered flow; cancellation is allowed until
// the order ships and restores stock.
func (s *DefaultOrderService) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	order, err := s.Repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	allowed := map[string][]string{
		models.OrderPending: {models.OrderPaid, models.OrderCancelled},
		models.OrderPaid:    {models.OrderShipped, models.OrderCancelled},
		models.OrderShipped: {models.OrderDelivered},
	}
	legal := false
	for _, next := range allowed[order.Status] {
		if next == status {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("cannot move order from %s to %s", order.Status, status)
	}

	if status == models.OrderCancelled {
		for _, item := range order.Items {
			if err := s.Catalog.AdjustStock(ctx, tenantID, item.ProductID, item.Quantity); err != nil {
				utils.GetLogger().Error("Failed to restore stock on cancellation",
					zap.String("order", order.ID), zap.String("product", item.ProductID), zap.Error(err))
			}
		}
	}
	return s.Repo.UpdateStatus(ctx, tenantID, id, status)
}
