package repositories

import (
	"context"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
)

// AdminUserRepository defines the interface for staff account data operations.
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) (*models.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id string) (*models.AdminUser, error)
}
