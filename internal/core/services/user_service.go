package services

import (
	"context"
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/core/ports/repositories"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
	"github.com/XpenseXpress/xpense_backend/internal/middleware"
)

// UserService implements the user CRUD operations over the repository.
type UserService struct {
	repo repositories.UserRepository
	now  func() time.Time
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo, now: time.Now}
}

// CreateUser inserts a new user and returns it with its generated identity.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := s.now().UTC()
	user := domain.User{
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveUser(ctx, &user); err != nil {
		logger.Error("failed to create user", "email", req.Email, "error", err)
		return nil, err
	}

	logger.Info("user created", "user_id", user.ID)
	return &user, nil
}

// ListUsers returns all users ordered by identity.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindUsers(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// GetUserByID fetches a single user.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindUserByID(ctx, id)
}

// UpdateUser overwrites the user's mutable fields and returns the fresh row.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user := domain.User{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	updated, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("user updated", "user_id", id)
	return updated, nil
}

// DeleteUser removes the user.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		logger.Error("failed to delete user", "user_id", id, "error", err)
		return err
	}

	logger.Info("user deleted", "user_id", id)
	return nil
}
