// database/repository/client.go
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

// ClientRepository defines methods to interact with tenant clients.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	Upsert(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, tenantID, id string) (*models.Client, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Client, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{coll: database.DB().Collection("clients")}
}

func (r *mongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

// Upsert creates or refreshes a client keyed by (tenantId, email). Used by
// the seeding tool so repeated runs do not duplicate demo data.
func (r *mongoClientRepo) Upsert(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now()
	filter := bson.M{"tenantId": client.TenantID, "email": client.Email}
	update := bson.M{
		"$set": bson.M{
			"name":      client.Name,
			"phone":     client.Phone,
			"notes":     client.Notes,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":        client.ID,
			"tenantId":  client.TenantID,
			"email":     client.Email,
			"createdAt": now,
		},
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert client: %w", err)
	}
	return nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id, "tenantId": tenantID}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &client, nil
}

func (r *mongoClientRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("error decoding clients: %w", err)
	}
	return clients, nil
}

func (r *mongoClientRepo) Delete(ctx context.Context, tenantID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "tenantId": tenantID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
