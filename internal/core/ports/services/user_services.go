package services

import (
	"context"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
)

// UserSvcFacade is the service surface consumed by the user handlers.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
