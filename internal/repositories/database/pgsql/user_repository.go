package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/XpenseXpress/xpense_backend/internal/apperrors"
	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	portsrepo "github.com/XpenseXpress/xpense_backend/internal/core/ports/repositories"
	"github.com/XpenseXpress/xpense_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Age:       m.Age,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`
	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Age,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already in use: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		WHERE id = $1;`
	var m models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Age,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", id, err)
	}

	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var m models.User
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Age,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, age = $3, updated_at = $4
		WHERE id = $5;`
	cmdTag, err := r.db.Exec(ctx, query,
		user.Name,
		user.Email,
		user.Age,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already in use: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found: %w", user.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
