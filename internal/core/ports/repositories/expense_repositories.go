package repositories

import (
	"context"
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
)

// ExpenseReportWriter owns the atomic header+lines write protocol. Every
// method runs inside a single database transaction; any failure before commit
// rolls the whole operation back.
type ExpenseReportWriter interface {
	// SaveExpenseReport inserts the header and its lines as one unit.
	SaveExpenseReport(ctx context.Context, header domain.ExpenseReportHeader, lines []domain.ExpenseReportLine) error
	// UpdateExpenseReport applies the header patch and, when lines is
	// non-empty, replaces the full line set. Returns apperrors.ErrNotFound
	// when the header does not exist.
	UpdateExpenseReport(ctx context.Context, reportHeaderID int64, patch domain.ExpenseReportHeaderPatch, lines []domain.ExpenseReportLine, now time.Time) error
	// DeleteExpenseReport removes the lines then the header. Returns
	// apperrors.ErrNotFound when the header does not exist.
	DeleteExpenseReport(ctx context.Context, reportHeaderID int64) error
}

// ExpenseReportReader serves the read-only query paths. Reads are plain pool
// queries, not wrapped in transactions.
type ExpenseReportReader interface {
	// FindExpenseReportByID fetches a header and all its lines.
	FindExpenseReportByID(ctx context.Context, reportHeaderID int64) (*domain.ExpenseReportHeader, []domain.ExpenseReportLine, error)
	// ListExpenseReports returns one page of headers (newest id first) plus
	// the total row count from an independent count query.
	ListExpenseReports(ctx context.Context, limit, offset int) ([]domain.ExpenseReportHeader, int64, error)
}

// ExpenseReportRepository is the full repository surface for expense reports.
type ExpenseReportRepository interface {
	ExpenseReportWriter
	ExpenseReportReader
}
