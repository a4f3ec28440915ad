package userRepo

import (
	"context"

	"tutorlink/models"
)

// UserRepository defines data access for auth identities.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	SetUserType(ctx context.Context, uid, userType string) error
	SetTokenHash(ctx context.Context, uid, tokenHash string) error
}
