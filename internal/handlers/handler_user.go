package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/XpenseXpress/xpense_backend/internal/core/ports/services"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
)

// UserHandler exposes the user CRUD endpoints.
type UserHandler struct {
	service services.UserSvcFacade
}

// NewUserHandler creates a UserHandler over the given service facade.
func NewUserHandler(service services.UserSvcFacade) *UserHandler {
	return &UserHandler{service: service}
}

func registerUserRoutes(rg *gin.RouterGroup, h *UserHandler) {
	users := rg.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUserByID)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusCreated, dto.OK("User created successfully", dto.ToUserResponse(user)))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	count := int64(len(users))
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Count:   &count,
		Data:    dto.ToUserResponses(users),
	})
}

// GetUserByID handles GET /api/users/:id.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.ToUserResponse(user)))
}

// UpdateUser handles PUT /api/users/:id. The full value set is written.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("User updated successfully", dto.ToUserResponse(user)))
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("User deleted successfully", nil))
}
