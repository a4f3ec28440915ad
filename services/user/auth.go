package user

import (
	"context"
	"fmt"
	"time"

	"tutorlink/models"
	"tutorlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

func validRole(userType string) bool {
	switch userType {
	case models.RoleStudent, models.RoleParent, models.RoleTutor, models.RoleAdmin:
		return true
	}
	return false
}

// Register creates a new user with an email/password credential. The role
// may be chosen now or left empty for later role selection.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password, userType string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if userType != "" && !validRole(userType) {
		return nil, fmt.Errorf("unknown role %q", userType)
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		UID:          uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(ctx, usr)
}

// Authenticate verifies an email/password credential and issues a token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(ctx, usr)
}

// FirebaseSignIn verifies a Firebase ID token, upserts the user from its
// claims, and issues our own token. This is the original sign-in path: the
// identity provider supplies {uid, displayName, email, photoURL}.
func (s *DefaultUserService) FirebaseSignIn(ctx context.Context, idToken string) (*AuthResponse, error) {
	if utils.AuthClient == nil {
		return nil, fmt.Errorf("firebase sign-in is not configured")
	}

	decoded, err := utils.AuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid identity token: %w", err)
	}

	id := models.Identity{UID: decoded.UID}
	if v, ok := decoded.Claims["name"].(string); ok {
		id.DisplayName = v
	}
	if v, ok := decoded.Claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := decoded.Claims["picture"].(string); ok {
		id.PhotoURL = v
	}

	usr, err := s.Repo.GetByID(ctx, id.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		usr = &models.User{
			UID:      id.UID,
			Name:     id.DisplayName,
			Email:    id.Email,
			PhotoURL: id.PhotoURL,
		}
		if usr.Name == "" {
			usr.Name = "Unknown"
		}
		if err := s.Repo.Create(ctx, usr); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return s.issueToken(ctx, usr)
}

// SelectRole records the role a signed-in user picked on the choose page.
// A role can be selected once; afterwards it is fixed.
func (s *DefaultUserService) SelectRole(ctx context.Context, uid, userType string) (*models.User, error) {
	if !validRole(userType) {
		return nil, fmt.Errorf("unknown role %q", userType)
	}

	usr, err := s.Repo.GetByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", uid)
	}
	if usr.UserType != "" && usr.UserType != userType {
		return nil, fmt.Errorf("role already selected")
	}

	if err := s.Repo.SetUserType(ctx, uid, userType); err != nil {
		return nil, err
	}
	usr.UserType = userType
	return usr, nil
}

// GetByID returns a user by UID.
func (s *DefaultUserService) GetByID(ctx context.Context, uid string) (*models.User, error) {
	return s.Repo.GetByID(ctx, uid)
}

// GetAllUsers returns every user document (admin view).
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// issueToken signs a JWT for the user, stores its hash in the user record,
// and primes the auth cache so the middleware avoids a DB lookup.
func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.UID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, usr.UID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	if cache := utils.AuthCacheClient; cache != nil {
		if err := cache.Set(ctx, utils.AuthCachePrefix+usr.UID, tokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.Error(err))
		}
	}

	return &AuthResponse{
		UID:      usr.UID,
		Token:    token,
		Name:     usr.Name,
		Email:    usr.Email,
		PhotoURL: usr.PhotoURL,
		UserType: usr.UserType,
	}, nil
}
