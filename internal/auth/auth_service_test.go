package auth_test

import (
	"context"
	"errors"
	"testing"

	"go-personnel/internal/auth"
	autherrors "go-personnel/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeAuthRepository struct {
	CreateFn        func(ctx context.Context, user *auth.User) error
	GetByEmailFn    func(ctx context.Context, email string) (*auth.User, error)
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	return f.CreateFn(ctx, user)
}
func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAuthRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.ExistsByEmailFn(ctx, email)
}

func TestAuthService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("success - defaults to the user role", func(t *testing.T) {
		var created *auth.User
		repo := &fakeAuthRepository{
			ExistsByEmailFn: func(ctx context.Context, email string) (bool, error) { return false, nil },
			CreateFn: func(ctx context.Context, user *auth.User) error {
				created = user
				return nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Username: "jane",
			Email:    "jane@example.com",
			Password: "s3cret!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, auth.RoleUser, resp.User.Role)
		assert.Equal(t, auth.RoleUser, created.Role)

		// Password must be stored hashed, never verbatim.
		assert.NotEqual(t, "s3cret!", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret!")))

		claims := parseClaims(t, resp.Token)
		assert.Equal(t, created.ID.String(), claims["user_id"])
		assert.Equal(t, auth.RoleUser, claims["role"])
	})

	t.Run("admin role is accepted", func(t *testing.T) {
		repo := &fakeAuthRepository{
			ExistsByEmailFn: func(ctx context.Context, email string) (bool, error) { return false, nil },
			CreateFn:        func(ctx context.Context, user *auth.User) error { return nil },
		}
		svc := auth.NewService(repo)

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Username: "root",
			Email:    "root@example.com",
			Password: "s3cret!",
			Role:     auth.RoleAdmin,
		})

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, resp.User.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Username: "jane",
			Email:    "jane@example.com",
			Password: "s3cret!",
			Role:     "superuser",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := &fakeAuthRepository{
			ExistsByEmailFn: func(ctx context.Context, email string) (bool, error) { return true, nil },
		}
		svc := auth.NewService(repo)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Username: "jane",
			Email:    "jane@example.com",
			Password: "s3cret!",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	stored := &auth.User{
		ID:       uuid.New(),
		Username: "jane",
		Email:    "jane@example.com",
		Password: string(hashed),
		Role:     auth.RoleUser,
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeAuthRepository{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, "jane@example.com", email)
				return stored, nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.Login(ctx, "jane@example.com", "s3cret!")

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, stored.ID.String(), resp.User.ID)
	})

	t.Run("wrong password yields the same error as unknown email", func(t *testing.T) {
		repo := &fakeAuthRepository{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				if email == stored.Email {
					return stored, nil
				}
				return nil, errors.New("record not found")
			},
		}
		svc := auth.NewService(repo)

		_, errBadPassword := svc.Login(ctx, stored.Email, "wrong")
		_, errUnknownEmail := svc.Login(ctx, "nobody@example.com", "s3cret!")

		assert.ErrorIs(t, errBadPassword, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeAuthRepository{
			GetByIDFn: func(ctx context.Context, got uuid.UUID) (*auth.User, error) {
				assert.Equal(t, id, got)
				return &auth.User{ID: id, Username: "jane", Email: "jane@example.com", Role: auth.RoleUser}, nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.GetMe(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "jane", resp.Username)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, err := svc.GetMe(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := &fakeAuthRepository{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
				return nil, errors.New("record not found")
			},
		}
		svc := auth.NewService(repo)

		_, err := svc.GetMe(ctx, uuid.New().String())

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	return claims
}
