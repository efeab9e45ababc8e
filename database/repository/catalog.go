// database/repository/catalog.go
package repository

import (
	"context"
	"fmt"
	"time"

	"backmoney/database"
	"backmoney/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository covers the tenant catalog: bookable service offerings
// and stocked products.
type CatalogRepository interface {
	UpsertService(ctx context.Context, svc *models.ServiceOffering) error
	GetServiceByID(ctx context.Context, tenantID, id string) (*models.ServiceOffering, error)
	ListServices(ctx context.Context, tenantID string) ([]models.ServiceOffering, error)

	UpsertProduct(ctx context.Context, p *models.Product) error
	GetProductByID(ctx context.Context, tenantID, id string) (*models.Product, error)
	ListProducts(ctx context.Context, tenantID string) ([]models.Product, error)
	AdjustStock(ctx context.Context, tenantID, productID string, delta int) error
}

type mongoCatalogRepo struct {
	services *mongo.Collection
	products *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		services: db.Collection("services"),
		products: db.Collection("products"),
	}
}

func (r *mongoCatalogRepo) UpsertService(ctx context.Context, svc *models.ServiceOffering) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	now := time.Now()
	filter := bson.M{"tenantId": svc.TenantID, "name": svc.Name}
	update := bson.M{
		"$set": bson.M{
			"description": svc.Description,
			"durationMin": svc.DurationMin,
			"price":       svc.Price,
			"isActive":    svc.IsActive,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"id":        svc.ID,
			"tenantId":  svc.TenantID,
			"name":      svc.Name,
			"createdAt": now,
		},
	}
	if _, err := r.services.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert service: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) GetServiceByID(ctx context.Context, tenantID, id string) (*models.ServiceOffering, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.ServiceOffering
	err := r.services.FindOne(ctx, bson.M{"id": id, "tenantId": tenantID}).Decode(&svc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &svc, nil
}

func (r *mongoCatalogRepo) ListServices(ctx context.Context, tenantID string) ([]models.ServiceOffering, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.ServiceOffering
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *mongoCatalogRepo) UpsertProduct(ctx context.Context, p *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	filter := bson.M{"tenantId": p.TenantID, "sku": p.SKU}
	update := bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"stock":       p.Stock,
			"category":    p.Category,
			"isActive":    p.IsActive,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"id":        p.ID,
			"tenantId":  p.TenantID,
			"sku":       p.SKU,
			"createdAt": now,
		},
	}
	if _, err := r.products.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) GetProductByID(ctx context.Context, tenantID, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Product
	err := r.products.FindOne(ctx, bson.M{"id": id, "tenantId": tenantID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &p, nil
}

func (r *mongoCatalogRepo) ListProducts(ctx context.Context, tenantID string) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.products.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("error decoding products: %w", err)
	}
	return products, nil
}

// AdjustStock applies a signed delta to a product's stock, refusing to go
// below zero.
func (r *mongoCatalogRepo) AdjustStock(ctx context.Context, tenantID, productID string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": productID, "tenantId": tenantID}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.products.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("insufficient stock or product not found")
	}
	return nil
}
