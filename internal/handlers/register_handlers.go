package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/XpenseXpress/xpense_backend/internal/core/ports/services"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
)

// RegisterRoutes mounts the health endpoint, the /api resource routes and the
// JSON 404 fallback on the engine. Middleware is attached by the caller before
// this runs.
func RegisterRoutes(router *gin.Engine, sc *services.ServiceContainer, environment string) {
	RegisterValidatorTagNames()

	health := NewHealthHandler(environment)
	router.GET("/health", health.Check)

	api := router.Group("/api")
	registerExpenseRoutes(api, NewExpenseHandler(sc.Expense))
	registerUserRoutes(api, NewUserHandler(sc.User))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Response{
			Success: false,
			Message: "Resource not found",
			Path:    c.Request.URL.Path,
		})
	})
}
