// File: database/repository/employee/crud.go
package employeeRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backmoney/models"
)

func (r *mongoEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, emp); err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

func (r *mongoEmployeeRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "tenantId": tenantID}
	var emp models.Employee
	if err := r.coll.FindOne(ctx, filter).Decode(&emp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &emp, nil
}

func (r *mongoEmployeeRepo) GetByEmail(ctx context.Context, tenantID, email string) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email, "tenantId": tenantID}
	var emp models.Employee
	if err := r.coll.FindOne(ctx, filter).Decode(&emp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &emp, nil
}

func (r *mongoEmployeeRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("error decoding employees: %w", err)
	}
	return employees, nil
}

func (r *mongoEmployeeRepo) Update(ctx context.Context, tenantID, id string, upd models.EmployeeUpdate) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.ServiceIDs != nil {
		set["serviceIds"] = *upd.ServiceIDs
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}

	filter := bson.M{"id": id, "tenantId": tenantID}
	res := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var emp models.Employee
	if err := res.Decode(&emp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, fmt.Errorf("update error: %w", err)
	}
	return &emp, nil
}

func (r *mongoEmployeeRepo) Delete(ctx context.Context, tenantID, id string) error {
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
