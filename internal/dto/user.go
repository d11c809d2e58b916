package dto

import (
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
)

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Age   *int   `json:"age" binding:"omitempty,gte=0,lte=120"`
}

// UpdateUserRequest is the body of PUT /api/users/:id. The full value set is
// written; there is no partial-update surface for users.
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Age   *int   `json:"age" binding:"omitempty,gte=0,lte=120"`
}

// UserResponse mirrors a persisted user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain user to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
