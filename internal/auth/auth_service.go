package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-personnel/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("register email lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if exists {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return AuthResponse{Token: token, User: mapToUserResponse(user)}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Same failure for unknown email and bad password.
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	return AuthResponse{Token: token, User: mapToUserResponse(user)}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToUserResponse(user)
	return &resp, nil
}

func (s *service) generateToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserResponse(user *User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
