package services

import (
	"context"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
	"github.com/XpenseXpress/xpense_backend/internal/utils/pagination"
)

// ExpenseSvcFacade is the service surface consumed by the expense handlers.
type ExpenseSvcFacade interface {
	// CreateExpenseReport persists a header and its lines atomically and
	// returns the caller-supplied header identity.
	CreateExpenseReport(ctx context.Context, req dto.CreateExpenseReportRequest) (int64, error)
	// ListExpenseReports returns one page of headers plus the total count.
	ListExpenseReports(ctx context.Context, params pagination.Params) ([]domain.ExpenseReportHeader, int64, error)
	// GetExpenseReportByID fetches a header together with all its lines.
	GetExpenseReportByID(ctx context.Context, reportHeaderID int64) (*domain.ExpenseReportHeader, []domain.ExpenseReportLine, error)
	// UpdateExpenseReport patches header columns and optionally replaces the
	// full line set.
	UpdateExpenseReport(ctx context.Context, reportHeaderID int64, req dto.UpdateExpenseReportRequest) error
	// DeleteExpenseReport removes a header and all its lines.
	DeleteExpenseReport(ctx context.Context, reportHeaderID int64) error
}
