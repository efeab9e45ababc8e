// database/repository/user.go
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

// UserRepository defines methods to interact with tenant user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, tenantID, id string) (*models.User, error)
	GetByEmail(ctx context.Context, tenantID, email string) (*models.User, error)
	SetTokenHash(ctx context.Context, tenantID, id, tokenHash string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{coll: database.DB().Collection("users")}
}

func (r *mongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Upsert creates or refreshes a user keyed by (tenantId, email); the
// password hash is only written on insert so reseeding never resets a
// changed password.
func (r *mongoUserRepo) Upsert(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	filter := bson.M{"tenantId": user.TenantID, "email": user.Email}
	update := bson.M{
		"$set": bson.M{
			"name":      user.Name,
			"role":      user.Role,
			"isActive":  user.IsActive,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":           user.ID,
			"tenantId":     user.TenantID,
			"email":        user.Email,
			"passwordHash": user.PasswordHash,
			"createdAt":    now,
		},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *mongoUserRepo) GetByID(ctx context.Context, tenantID, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id, "tenantId": tenantID})
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, tenantID, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "tenantId": tenantID})
}

func (r *mongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &user, nil
}

func (r *mongoUserRepo) SetTokenHash(ctx context.Context, tenantID, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "tenantId": tenantID}
	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
