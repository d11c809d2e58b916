package services

import (
	"github.com/XpenseXpress/xpense_backend/internal/core/ports/repositories"
	portservices "github.com/XpenseXpress/xpense_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service facade over the repository container.
func NewServiceContainer(repos repositories.RepositoryContainer) *portservices.ServiceContainer {
	return &portservices.ServiceContainer{
		Expense: NewExpenseService(repos.Expense),
		User:    NewUserService(repos.User),
	}
}
