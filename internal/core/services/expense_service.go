package services

import (
	"context"
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/core/ports/repositories"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
	"github.com/XpenseXpress/xpense_backend/internal/middleware"
	"github.com/XpenseXpress/xpense_backend/internal/utils/pagination"
)

// ExpenseService orchestrates the expense-report write protocol: it maps the
// request DTOs to domain records, stamps the audit timestamps, and hands the
// whole unit to the repository for one atomic transaction.
type ExpenseService struct {
	repo repositories.ExpenseReportRepository
	now  func() time.Time
}

// NewExpenseService creates an ExpenseService backed by the given repository.
func NewExpenseService(repo repositories.ExpenseReportRepository) *ExpenseService {
	return &ExpenseService{repo: repo, now: time.Now}
}

// CreateExpenseReport persists the header and all its lines atomically and
// returns the caller-supplied header identity.
func (s *ExpenseService) CreateExpenseReport(ctx context.Context, req dto.CreateExpenseReportRequest) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := s.now().UTC()
	header := headerFromCreateRequest(req.Header, now)
	lines := linesFromRequests(req.Lines)

	if err := s.repo.SaveExpenseReport(ctx, header, lines); err != nil {
		logger.Error("failed to create expense report",
			"report_header_id", header.ReportHeaderID, "error", err)
		return 0, err
	}

	logger.Info("expense report created",
		"report_header_id", header.ReportHeaderID, "line_count", len(lines))
	return header.ReportHeaderID, nil
}

// ListExpenseReports returns one page of headers plus the total count.
func (s *ExpenseService) ListExpenseReports(ctx context.Context, params pagination.Params) ([]domain.ExpenseReportHeader, int64, error) {
	headers, total, err := s.repo.ListExpenseReports(ctx, params.Limit, params.Offset())
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to list expense reports", "error", err)
		return nil, 0, err
	}
	return headers, total, nil
}

// GetExpenseReportByID fetches a header together with all its lines.
func (s *ExpenseService) GetExpenseReportByID(ctx context.Context, reportHeaderID int64) (*domain.ExpenseReportHeader, []domain.ExpenseReportLine, error) {
	return s.repo.FindExpenseReportByID(ctx, reportHeaderID)
}

// UpdateExpenseReport patches the supplied header columns and, when the
// request carries lines, replaces the full line set in the same transaction.
func (s *ExpenseService) UpdateExpenseReport(ctx context.Context, reportHeaderID int64, req dto.UpdateExpenseReportRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	patch := patchFromUpdateRequest(req.Header)
	lines := linesFromRequests(req.Lines)

	if err := s.repo.UpdateExpenseReport(ctx, reportHeaderID, patch, lines, s.now().UTC()); err != nil {
		logger.Error("failed to update expense report",
			"report_header_id", reportHeaderID, "error", err)
		return err
	}

	logger.Info("expense report updated",
		"report_header_id", reportHeaderID, "lines_replaced", len(lines) > 0)
	return nil
}

// DeleteExpenseReport removes a header and all its lines atomically.
func (s *ExpenseService) DeleteExpenseReport(ctx context.Context, reportHeaderID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.repo.DeleteExpenseReport(ctx, reportHeaderID); err != nil {
		logger.Error("failed to delete expense report",
			"report_header_id", reportHeaderID, "error", err)
		return err
	}

	logger.Info("expense report deleted", "report_header_id", reportHeaderID)
	return nil
}

func headerFromCreateRequest(req dto.CreateExpenseHeaderRequest, now time.Time) domain.ExpenseReportHeader {
	return domain.ExpenseReportHeader{
		ReportHeaderID:          req.ReportHeaderID,
		EmployeeID:              req.EmployeeID,
		WeekEndDate:             req.WeekEndDate,
		CreationDate:            now,
		CreatedBy:               req.CreatedBy,
		LastUpdateDate:          now,
		LastUpdatedBy:           req.LastUpdatedBy,
		VoucherNumber:           req.VoucherNumber,
		Total:                   req.Total,
		VendorID:                req.VendorID,
		VendorSiteID:            req.VendorSiteID,
		ExpenseCheckAddressFlag: req.ExpenseCheckAddressFlag,
		Reference1:              req.Reference1,
		Reference2:              req.Reference2,
		InvoiceNum:              req.InvoiceNum,
		ExpenseReportID:         req.ExpenseReportID,
		SetOfBooksID:            req.SetOfBooksID,
		Source:                  req.Source,
		PurgeableFlag:           req.PurgeableFlag,
		Description:             req.Description,
		DefaultCurrencyCode:     req.DefaultCurrencyCode,
	}
}

// linesFromRequests maps request lines to domain lines in input order. The
// header identity, timestamps and fallback values are resolved at write time.
func linesFromRequests(reqs []dto.ExpenseLineRequest) []domain.ExpenseReportLine {
	if len(reqs) == 0 {
		return nil
	}
	lines := make([]domain.ExpenseReportLine, len(reqs))
	for i, r := range reqs {
		line := domain.ExpenseReportLine{
			CodeCombinationID:      r.CodeCombinationID,
			ItemDescription:        r.ItemDescription,
			SetOfBooksID:           r.SetOfBooksID,
			Amount:                 r.Amount,
			CurrencyCode:           r.CurrencyCode,
			LineTypeLookupCode:     r.LineTypeLookupCode,
			DistributionLineNumber: r.DistributionLineNumber,
		}
		if r.StartExpenseDate != nil {
			line.StartExpenseDate = *r.StartExpenseDate
		}
		if r.CreatedBy != nil {
			line.CreatedBy = *r.CreatedBy
		}
		if r.LastUpdatedBy != nil {
			line.LastUpdatedBy = *r.LastUpdatedBy
		}
		lines[i] = line
	}
	return lines
}

func patchFromUpdateRequest(req *dto.UpdateExpenseHeaderRequest) domain.ExpenseReportHeaderPatch {
	if req == nil {
		return domain.ExpenseReportHeaderPatch{}
	}
	return domain.ExpenseReportHeaderPatch{
		EmployeeID:              req.EmployeeID,
		WeekEndDate:             req.WeekEndDate,
		LastUpdatedBy:           req.LastUpdatedBy,
		VoucherNumber:           req.VoucherNumber,
		Total:                   req.Total,
		VendorID:                req.VendorID,
		VendorSiteID:            req.VendorSiteID,
		ExpenseCheckAddressFlag: req.ExpenseCheckAddressFlag,
		Reference1:              req.Reference1,
		Reference2:              req.Reference2,
		InvoiceNum:              req.InvoiceNum,
		ExpenseReportID:         req.ExpenseReportID,
		SetOfBooksID:            req.SetOfBooksID,
		Source:                  req.Source,
		PurgeableFlag:           req.PurgeableFlag,
		Description:             req.Description,
		DefaultCurrencyCode:     req.DefaultCurrencyCode,
	}
}
