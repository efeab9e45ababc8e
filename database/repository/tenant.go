// database/repository/tenant.go
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

// TenantRepository defines methods to interact with tenants.
type TenantRepository interface {
	Upsert(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	List(ctx context.Context) ([]models.Tenant, error)
}

type mongoTenantRepo struct {
	coll *mongo.Collection
}

// NewMongoTenantRepo constructs a new MongoDB TenantRepository.
func NewMongoTenantRepo() TenantRepository {
	return &mongoTenantRepo{coll: database.DB().Collection("tenants")}
}

// Upsert creates or refreshes a tenant keyed by slug. Seeding relies on
// this being idempotent.
func (r *mongoTenantRepo) Upsert(ctx context.Context, tenant *models.Tenant) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	now := time.Now()
	filter := bson.M{"slug": tenant.Slug}
	update := bson.M{
		"$set": bson.M{
			"name":      tenant.Name,
			"segment":   tenant.Segment,
			"isActive":  tenant.IsActive,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":        tenant.ID,
			"slug":      tenant.Slug,
			"createdAt": now,
		},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert tenant: %w", err)
	}
	return nil
}

func (r *mongoTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoTenantRepo) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoTenantRepo) findOne(ctx context.Context, filter bson.M) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tenant models.Tenant
	if err := r.coll.FindOne(ctx, filter).Decode(&tenant); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("tenant not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &tenant, nil
}

func (r *mongoTenantRepo) List(ctx context.Context) ([]models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenants: %w", err)
	}
	defer cursor.Close(ctx)

	var tenants []models.Tenant
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, fmt.Errorf("error decoding tenants: %w", err)
	}
	return tenants, nil
}
