package user

import (
	"context"

	userRepo "tutorlink/database/repository/user"
	"tutorlink/models"
)

// UserService handles identity: registration, sign-in, and role selection.
type UserService interface {
	Register(ctx context.Context, name, email, password, userType string) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	FirebaseSignIn(ctx context.Context, idToken string) (*AuthResponse, error)
	SelectRole(ctx context.Context, uid, userType string) (*models.User, error)
	GetByID(ctx context.Context, uid string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's UID, token, and profile details.
type AuthResponse struct {
	UID      string `json:"uid"`
	Token    string `json:"token"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
	UserType string `json:"userType,omitempty"`
}
