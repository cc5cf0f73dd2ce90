package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventpass/internal/auth"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

const testSecret = "test-secret"

func TestServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("EmailExists", ctx, "new@example.com").Return(false, nil)
		repo.On("Create", ctx, "New User", "new@example.com", mock.AnythingOfType("string"), "member").
			Return(&User{ID: 1, Name: "New User", Email: "new@example.com", Role: "member"}, nil)

		user, accessToken, refreshToken, err := svc.Register(ctx, RegisterRequest{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("EmailExists", ctx, "taken@example.com").Return(true, nil)

		_, _, _, err := svc.Register(ctx, RegisterRequest{
			Name:     "User",
			Email:    "taken@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrEmailExists)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestServiceLogin(t *testing.T) {
	ctx := context.Background()
	passwordHash, _ := auth.HashPassword("correct-password")

	t.Run("Successful login", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("FindByEmail", ctx, "user@example.com").
			Return(&User{ID: 2, Email: "user@example.com", PasswordHash: passwordHash, Role: "member"}, nil)

		user, accessToken, _, err := svc.Login(ctx, LoginRequest{
			Email:    "user@example.com",
			Password: "correct-password",
		})

		require.NoError(t, err)
		assert.Equal(t, 2, user.ID)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("FindByEmail", ctx, "user@example.com").
			Return(&User{ID: 2, Email: "user@example.com", PasswordHash: passwordHash}, nil)

		_, _, _, err := svc.Login(ctx, LoginRequest{
			Email:    "user@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, errors.New("sql: no rows"))

		_, _, _, err := svc.Login(ctx, LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestServiceRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful refresh", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		_, refreshToken, err := auth.GenerateTokens(3, "user@example.com", "member", testSecret)
		require.NoError(t, err)

		repo.On("FindByID", ctx, 3).
			Return(&User{ID: 3, Email: "user@example.com", Role: "member"}, nil)

		newAccess, user, err := svc.RefreshToken(ctx, refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.Equal(t, 3, user.ID)
	})

	t.Run("Invalid token", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, testSecret)

		_, _, err := svc.RefreshToken(ctx, "not-a-token")
		assert.Error(t, err)
	})
}
