// File: database/repository/admin/admin.go
package adminRepo

import (
	"context"
	"time"

	"staygrid/database"
	"staygrid/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository provides access to back-office admin accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo constructs a new MongoDB AdminRepository.
func NewMongoAdminRepo() AdminRepository {
	return &mongoAdminRepo{
		coll: database.DB().Collection("admins"),
	}
}

func (r *mongoAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email, "is_active": true}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *mongoAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, admin)
	return err
}
