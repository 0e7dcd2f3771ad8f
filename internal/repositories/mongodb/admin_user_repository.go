package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/repositories"
)

// Ensure adminUserRepository implements repositories.AdminUserRepository
var _ repositories.AdminUserRepository = (*adminUserRepository)(nil)

type adminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository creates a new repository for admin users
func NewAdminUserRepository(db *mongo.Database) repositories.AdminUserRepository {
	return &adminUserRepository{
		collection: db.Collection("admin_users"),
	}
}

// Create inserts a new admin user into the database
func (r *adminUserRepository) Create(ctx context.Context, adminUser *models.AdminUser) (*models.AdminUser, error) {
	adminUser.ID = primitive.NewObjectID()
	adminUser.CreatedAt = time.Now()
	adminUser.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, adminUser); err != nil {
		return nil, err
	}
	return adminUser, nil
}

// FindByEmail finds an admin user by their email address
func (r *adminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var adminUser models.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&adminUser)
	if err != nil {
		// mongo.ErrNoDocuments passes through so the service layer can
		// distinguish "not found" from other failures.
		return nil, err
	}
	return &adminUser, nil
}

// FindByID finds an admin user by their ID
func (r *adminUserRepository) FindByID(ctx context.Context, id string) (*models.AdminUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var adminUser models.AdminUser
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&adminUser); err != nil {
		return nil, err
	}
	return &adminUser, nil
}
