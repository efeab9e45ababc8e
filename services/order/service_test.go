// File: services/order/service_test.go
package order

import (
	"context"
	"fmt"
	"testing"

	"backmoney/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.TenantID != tenantID {
		return nil, fmt.Errorf("order %s not found", id)
	}
	return o, nil
}

func (r *fakeOrderRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.TenantID == tenantID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByClient(ctx context.Context, tenantID, clientID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.TenantID == tenantID && o.ClientID == clientID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	o, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	o.Status = status
	return nil
}

type fakeCatalogRepo struct {
	products map[string]*models.Product
}

func (r *fakeCatalogRepo) UpsertService(ctx context.Context, svc *models.ServiceOffering) error {
	return nil
}

func (r *fakeCatalogRepo) GetServiceByID(ctx context.Context, tenantID, id string) (*models.ServiceOffering, error) {
	return nil, fmt.Errorf("service %s not found", id)
}

func (r *fakeCatalogRepo) ListServices(ctx context.Context, tenantID string) ([]models.ServiceOffering, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) UpsertProduct(ctx context.Context, p *models.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeCatalogRepo) GetProductByID(ctx context.Context, tenantID, id string) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok || p.TenantID != tenantID {
		return nil, fmt.Errorf("product %s not found", id)
	}
	return p, nil
}

func (r *fakeCatalogRepo) ListProducts(ctx context.Context, tenantID string) ([]models.Product, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) AdjustStock(ctx context.Context, tenantID, productID string, delta int) error {
	p, err := r.GetProductByID(ctx, tenantID, productID)
	if err != nil {
		return err
	}
	if p.Stock+delta < 0 {
		return fmt.Errorf("insufficient stock for %s", p.Name)
	}
	p.Stock += delta
	return nil
}

type fakeClientRepo struct {
	ids map[string]bool
}

func (r *fakeClientRepo) Create(ctx context.Context, client *models.Client) error { return nil }
func (r *fakeClientRepo) Upsert(ctx context.Context, client *models.Client) error { return nil }

func (r *fakeClientRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Client, error) {
	if !r.ids[id] {
		return nil, fmt.Errorf("client %s not found", id)
	}
	return &models.Client{ID: id, TenantID: tenantID}, nil
}

func (r *fakeClientRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, tenantID, id string) error { return nil }

func newTestService() (*DefaultOrderService, *fakeCatalogRepo, *fakeOrderRepo) {
	catalog := &fakeCatalogRepo{products: map[string]*models.Product{
		"p1": {ID: "p1", TenantID: "t1", Name: "Pomada", Price: 35, Stock: 10, IsActive: true},
		"p2": {ID: "p2", TenantID: "t1", Name: "Shampoo", Price: 28, Stock: 2, IsActive: true},
		"p3": {ID: "p3", TenantID: "t1", Name: "Descontinuado", Price: 10, Stock: 5, IsActive: false},
	}}
	orders := &fakeOrderRepo{orders: map[string]*models.Order{}}
	clients := &fakeClientRepo{ids: map[string]bool{"c1": true}}
	return &DefaultOrderService{Repo: orders, Catalog: catalog, Clients: clients}, catalog, orders
}

func orderRequest(items ...struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}) models.CreateOrderRequest {
	return models.CreateOrderRequest{ClientID: "c1", Items: items}
}

func item(productID string, qty int) struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
} {
	return struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
	}{ProductID: productID, Quantity: qty}
}

func TestPlaceOrderCapturesPricesAndDecrementsStock(t *testing.T) {
	svc, catalog, _ := newTestService()

	order, err := svc.PlaceOrder(context.Background(), "t1", orderRequest(item("p1", 2), item("p2", 1)))
	require.NoError(t, err)

	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 2*35.0+28.0, order.Total)
	assert.Equal(t, 35.0, order.Items[0].UnitPrice)
	assert.Equal(t, 8, catalog.products["p1"].Stock)
	assert.Equal(t, 1, catalog.products["p2"].Stock)
}

func TestPlaceOrderRestoresStockWhenALaterLineFails(t *testing.T) {
	svc, catalog, _ := newTestService()

	// p2 has stock 2, so asking for 5 fails after p1 was already reserved.
	_, err := svc.PlaceOrder(context.Background(), "t1", orderRequest(item("p1", 3), item("p2", 5)))
	require.Error(t, err)

	assert.Equal(t, 10, catalog.products["p1"].Stock)
	assert.Equal(t, 2, catalog.products["p2"].Stock)
}

func TestPlaceOrderRejectsInactiveProduct(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.PlaceOrder(context.Background(), "t1", orderRequest(item("p3", 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not for sale")
}

func TestPlaceOrderRejectsUnknownClient(t *testing.T) {
	svc, _, _ := newTestService()

	req := orderRequest(item("p1", 1))
	req.ClientID = "ghost"
	_, err := svc.PlaceOrder(context.Background(), "t1", req)
	require.Error(t, err)
}

func TestUpdateStatusFollowsTransitionMap(t *testing.T) {
	svc, _, _ := newTestService()

	order, err := svc.PlaceOrder(context.Background(), "t1", orderRequest(item("p1", 1)))
	require.NoError(t, err)

	// Cannot skip straight to delivered.
	err = svc.UpdateStatus(context.Background(), "t1", order.ID, models.OrderDelivered)
	require.Error(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), "t1", order.ID, models.OrderPaid))
	require.NoError(t, svc.UpdateStatus(context.Background(), "t1", order.ID, models.OrderShipped))
	require.NoError(t, svc.UpdateStatus(context.Background(), "t1", order.ID, models.OrderDelivered))

	// Delivered is terminal.
	err = svc.UpdateStatus(context.Background(), "t1", order.ID, models.OrderCancelled)
	require.Error(t, err)
}

func TestCancellingPaidOrderRestoresStock(t *testing.T) {
	svc, catalog, _ := newTestService()

	order, err := svc.PlaceOrder(context.Background(), "t1", orderRequest(item("p1", 4)))
	require.NoError(t, err)
	require.Equal(t, 6, catalog.products["p1"].Stock)

	require.NoError(t, svc.UpdateStatus(context.Background(), "t1", order.ID, models.OrderPaid))
	require.NoError(t, svc.UpdateStatus(context.Background(), "t1", order.ID, models.OrderCancelled))

	assert.Equal(t, 10, catalog.products["p1"].Stock)
}
