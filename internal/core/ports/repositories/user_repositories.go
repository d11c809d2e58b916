package repositories

import (
	"context"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
)

// UserRepository persists the generic user entity.
type UserRepository interface {
	// SaveUser inserts the user and fills the generated identity.
	// Returns apperrors.ErrDuplicate when the email is already taken.
	SaveUser(ctx context.Context, user *domain.User) error
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
	// UpdateUser overwrites name, email and age. Returns
	// apperrors.ErrNotFound when no row matches.
	UpdateUser(ctx context.Context, user domain.User) error
	// DeleteUser removes the user. Returns apperrors.ErrNotFound when no
	// row matches.
	DeleteUser(ctx context.Context, id int64) error
}
