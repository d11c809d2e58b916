package pgsql

import (
	"time"

	portsrepo "github.com/XpenseXpress/xpense_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer wires all pgx repositories against the shared pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool, acquireTimeout time.Duration) portsrepo.RepositoryContainer {
	return portsrepo.RepositoryContainer{
		Expense: NewExpenseReportRepository(dbPool, acquireTimeout),
		User:    NewUserRepository(dbPool),
	}
}
