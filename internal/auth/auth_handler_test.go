package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-personnel/internal/auth"
	autherrors "go-personnel/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
	LoginFn    func(ctx context.Context, email, password string) (auth.AuthResponse, error)
	GetMeFn    func(ctx context.Context, userID string) (*auth.UserResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.AuthResponse, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (*auth.UserResponse, error) {
	return f.GetMeFn(ctx, userID)
}

func postJSON(t *testing.T, handler gin.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler(c)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				assert.Equal(t, "jane", req.Username)
				return auth.AuthResponse{
					Token: "signed-token",
					User:  auth.UserResponse{Username: req.Username, Email: req.Email, Role: auth.RoleUser},
				}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := postJSON(t, h.Register, "/api/v1/auth/register",
			`{"username":"jane","email":"jane@example.com","password":"s3cret!"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("short password fails validation", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				t.Fatal("service must not be called on invalid payload")
				return auth.AuthResponse{}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := postJSON(t, h.Register, "/api/v1/auth/register",
			`{"username":"jane","email":"jane@example.com","password":"abc"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}
		h := auth.NewHandler(svc)

		w := postJSON(t, h.Register, "/api/v1/auth/register",
			`{"username":"jane","email":"jane@example.com","password":"s3cret!"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (auth.AuthResponse, error) {
				assert.Equal(t, "jane@example.com", email)
				return auth.AuthResponse{Token: "signed-token"}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := postJSON(t, h.Login, "/api/v1/auth/login",
			`{"email":"jane@example.com","password":"s3cret!"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("bad credentials are a uniform 401", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		h := auth.NewHandler(svc)

		w := postJSON(t, h.Login, "/api/v1/auth/login",
			`{"email":"jane@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_FAILED")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			GetMeFn: func(ctx context.Context, userID string) (*auth.UserResponse, error) {
				assert.Equal(t, "user-1", userID)
				return &auth.UserResponse{Username: "jane"}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		c.Set("user_id", "user-1")

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jane")
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
