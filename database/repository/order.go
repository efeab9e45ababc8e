// database/repository/order.go
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
)

// OrderRepository defines methods to interact with client orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, tenantID, id string) (*models.Order, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Order, error)
	ListByClient(ctx context.Context, tenantID, clientID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, tenantID, id, status string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	return &mongoOrderRepo{coll: database.DB().Collection("orders")}
}

func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id, "tenantId": tenantID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &order, nil
}

func (r *mongoOrderRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Order, error) {
	return r.list(ctx, bson.M{"tenantId": tenantID})
}

func (r *mongoOrderRepo) ListByClient(ctx context.Context, tenantID, clientID string) ([]models.Order, error) {
	return r.list(ctx, bson.M{"tenantId": tenantID, "clientId": clientID})
}

func (r *mongoOrderRepo) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "tenantId": tenantID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
