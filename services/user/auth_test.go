package user

import (
	"context"
	"testing"

	"tutorlink/models"
	"tutorlink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.users[user.UID] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	f.users[user.UID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, uid string) (*models.User, error) {
	return f.users[uid], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetUserType(_ context.Context, uid, userType string) error {
	f.users[uid].UserType = userType
	return nil
}

func (f *fakeUserRepo) SetTokenHash(_ context.Context, uid, tokenHash string) error {
	f.users[uid].TokenHash = tokenHash
	return nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	resp, err := svc.Register(ctx, "Grace", "grace@example.com", "s3cret", models.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleStudent, resp.UserType)

	// The stored token hash matches the issued token.
	stored := repo.users[resp.UID]
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
	assert.NotEqual(t, "s3cret", stored.PasswordHash, "password is never stored in the clear")

	login, err := svc.Authenticate(ctx, "grace@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, resp.UID, login.UID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Grace", "grace@example.com", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "grace@example.com", "different", "")
	assert.EqualError(t, err, "an account with this email already exists")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(context.Background(), "Grace", "grace@example.com", "s3cret", "superuser")
	assert.Error(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Grace", "grace@example.com", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "grace@example.com", "wrong")
	assert.EqualError(t, err, "invalid email or password")

	// Unknown emails get the same message as wrong passwords.
	_, err = svc.Authenticate(ctx, "nobody@example.com", "whatever")
	assert.EqualError(t, err, "invalid email or password")
}

func TestSelectRoleOnce(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	resp, err := svc.Register(ctx, "Grace", "grace@example.com", "s3cret", "")
	require.NoError(t, err)

	usr, err := svc.SelectRole(ctx, resp.UID, models.RoleTutor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTutor, usr.UserType)

	// Re-selecting the same role is a no-op; switching is refused.
	_, err = svc.SelectRole(ctx, resp.UID, models.RoleTutor)
	assert.NoError(t, err)

	_, err = svc.SelectRole(ctx, resp.UID, models.RoleStudent)
	assert.EqualError(t, err, "role already selected")
}

func TestSelectRoleUnknownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.SelectRole(context.Background(), "missing", models.RoleTutor)
	assert.Error(t, err)
}
