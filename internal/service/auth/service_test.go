package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/auth"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	r.byEmail[u.Email] = u
	return u, nil
}

type fakeJWTService struct {
	token string
}

func (s *fakeJWTService) GenerateAccessToken(string, string, string, bool) (string, int64, error) {
	return s.token, 1700000000, nil
}

func (s *fakeJWTService) JWTAuth() *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte("test-secret"), nil)
}

func repoWithAdmin(t *testing.T, email, password string) *fakeUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeUserRepo{byEmail: map[string]user.User{
		email: {
			ID:           "user-1",
			Username:     "admin",
			Email:        email,
			PasswordHash: string(hash),
			IsAdmin:      true,
		},
	}}
}

func TestLogin_Success(t *testing.T) {
	repo := repoWithAdmin(t, "admin@example.com", "password123")
	svc := NewAuthService(repo, &fakeJWTService{token: "signed-token"})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, "admin@example.com", resp.Email)
	assert.NotZero(t, resp.ExpiresAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := repoWithAdmin(t, "admin@example.com", "password123")
	svc := NewAuthService(repo, &fakeJWTService{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail_SameErrorAsWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{}}
	svc := NewAuthService(repo, &fakeJWTService{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{byEmail: map[string]user.User{}}, &fakeJWTService{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
