package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/XpenseXpress/xpense_backend/internal/apperrors"
	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
	"github.com/XpenseXpress/xpense_backend/internal/utils/pagination"
)

// MockExpenseReportRepository is a testify mock of the expense repository port.
type MockExpenseReportRepository struct {
	mock.Mock
}

func (m *MockExpenseReportRepository) SaveExpenseReport(ctx context.Context, header domain.ExpenseReportHeader, lines []domain.ExpenseReportLine) error {
	args := m.Called(ctx, header, lines)
	return args.Error(0)
}

func (m *MockExpenseReportRepository) UpdateExpenseReport(ctx context.Context, reportHeaderID int64, patch domain.ExpenseReportHeaderPatch, lines []domain.ExpenseReportLine, now time.Time) error {
	args := m.Called(ctx, reportHeaderID, patch, lines, now)
	return args.Error(0)
}

func (m *MockExpenseReportRepository) DeleteExpenseReport(ctx context.Context, reportHeaderID int64) error {
	args := m.Called(ctx, reportHeaderID)
	return args.Error(0)
}

func (m *MockExpenseReportRepository) FindExpenseReportByID(ctx context.Context, reportHeaderID int64) (*domain.ExpenseReportHeader, []domain.ExpenseReportLine, error) {
	args := m.Called(ctx, reportHeaderID)
	var header *domain.ExpenseReportHeader
	if args.Get(0) != nil {
		header = args.Get(0).(*domain.ExpenseReportHeader)
	}
	var lines []domain.ExpenseReportLine
	if args.Get(1) != nil {
		lines = args.Get(1).([]domain.ExpenseReportLine)
	}
	return header, lines, args.Error(2)
}

func (m *MockExpenseReportRepository) ListExpenseReports(ctx context.Context, limit, offset int) ([]domain.ExpenseReportHeader, int64, error) {
	args := m.Called(ctx, limit, offset)
	var headers []domain.ExpenseReportHeader
	if args.Get(0) != nil {
		headers = args.Get(0).([]domain.ExpenseReportHeader)
	}
	return headers, args.Get(1).(int64), args.Error(2)
}

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseReportRepository
	service  *ExpenseService
	fixedNow time.Time
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockExpenseReportRepository)
	s.service = NewExpenseService(s.mockRepo)
	s.fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.fixedNow }
}

func (s *ExpenseServiceTestSuite) TestCreateExpenseReportStampsTimestampsAndPassesLines() {
	req := dto.CreateExpenseReportRequest{
		Header: dto.CreateExpenseHeaderRequest{
			ReportHeaderID:      5001,
			WeekEndDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			CreatedBy:           42,
			LastUpdatedBy:       42,
			VoucherNumber:       77,
			Total:               decimal.NewFromInt(1200),
			DefaultCurrencyCode: "BDT",
		},
		Lines: []dto.ExpenseLineRequest{
			{ItemDescription: "Hotel", SetOfBooksID: 1, Amount: decimal.NewFromInt(800)},
			{ItemDescription: "Taxi", SetOfBooksID: 1, Amount: decimal.NewFromInt(400)},
		},
	}

	s.mockRepo.On("SaveExpenseReport", mock.Anything,
		mock.MatchedBy(func(h domain.ExpenseReportHeader) bool {
			return h.ReportHeaderID == 5001 &&
				h.CreationDate.Equal(s.fixedNow) &&
				h.LastUpdateDate.Equal(s.fixedNow)
		}),
		mock.MatchedBy(func(lines []domain.ExpenseReportLine) bool {
			return len(lines) == 2 &&
				lines[0].ItemDescription == "Hotel" &&
				lines[1].ItemDescription == "Taxi"
		}),
	).Return(nil).Once()

	id, err := s.service.CreateExpenseReport(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(int64(5001), id)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestCreateExpenseReportHeaderOnly() {
	req := dto.CreateExpenseReportRequest{
		Header: dto.CreateExpenseHeaderRequest{
			ReportHeaderID:      5002,
			WeekEndDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			CreatedBy:           42,
			LastUpdatedBy:       42,
			VoucherNumber:       78,
			Total:               decimal.Zero,
			DefaultCurrencyCode: "USD",
		},
	}

	s.mockRepo.On("SaveExpenseReport", mock.Anything, mock.Anything,
		mock.MatchedBy(func(lines []domain.ExpenseReportLine) bool { return lines == nil }),
	).Return(nil).Once()

	id, err := s.service.CreateExpenseReport(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(int64(5002), id)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestCreateExpenseReportPropagatesRepositoryError() {
	s.mockRepo.On("SaveExpenseReport", mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrPoolTimeout).Once()

	_, err := s.service.CreateExpenseReport(context.Background(), dto.CreateExpenseReportRequest{
		Header: dto.CreateExpenseHeaderRequest{ReportHeaderID: 1},
	})

	s.Require().ErrorIs(err, apperrors.ErrPoolTimeout)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestUpdateExpenseReportBuildsPatchFromRequest() {
	total := decimal.NewFromInt(999)
	desc := "corrected"
	req := dto.UpdateExpenseReportRequest{
		Header: &dto.UpdateExpenseHeaderRequest{Total: &total, Description: &desc},
	}

	s.mockRepo.On("UpdateExpenseReport", mock.Anything, int64(5001),
		mock.MatchedBy(func(p domain.ExpenseReportHeaderPatch) bool {
			return p.Total != nil && p.Total.Equal(total) &&
				p.Description != nil && *p.Description == desc &&
				p.WeekEndDate == nil
		}),
		mock.MatchedBy(func(lines []domain.ExpenseReportLine) bool { return lines == nil }),
		s.fixedNow,
	).Return(nil).Once()

	err := s.service.UpdateExpenseReport(context.Background(), 5001, req)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestUpdateExpenseReportWithNilHeaderSendsEmptyPatch() {
	req := dto.UpdateExpenseReportRequest{
		Lines: []dto.ExpenseLineRequest{
			{ItemDescription: "Meals", SetOfBooksID: 1, Amount: decimal.NewFromInt(50)},
		},
	}

	s.mockRepo.On("UpdateExpenseReport", mock.Anything, int64(5001),
		mock.MatchedBy(func(p domain.ExpenseReportHeaderPatch) bool { return p.IsZero() }),
		mock.MatchedBy(func(lines []domain.ExpenseReportLine) bool { return len(lines) == 1 }),
		s.fixedNow,
	).Return(nil).Once()

	err := s.service.UpdateExpenseReport(context.Background(), 5001, req)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestUpdateExpenseReportNotFound() {
	s.mockRepo.On("UpdateExpenseReport", mock.Anything, int64(404), mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrNotFound).Once()

	err := s.service.UpdateExpenseReport(context.Background(), 404, dto.UpdateExpenseReportRequest{})

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestListExpenseReportsUsesPaginationOffset() {
	params := pagination.Params{Page: 3, Limit: 10}
	headers := []domain.ExpenseReportHeader{{ReportHeaderID: 21}}

	s.mockRepo.On("ListExpenseReports", mock.Anything, 10, 20).
		Return(headers, int64(25), nil).Once()

	got, total, err := s.service.ListExpenseReports(context.Background(), params)

	s.Require().NoError(err)
	s.Equal(int64(25), total)
	s.Len(got, 1)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestGetExpenseReportByID() {
	header := &domain.ExpenseReportHeader{ReportHeaderID: 5001}
	lines := []domain.ExpenseReportLine{{ReportHeaderID: 5001, ItemDescription: "Hotel"}}

	s.mockRepo.On("FindExpenseReportByID", mock.Anything, int64(5001)).
		Return(header, lines, nil).Once()

	gotHeader, gotLines, err := s.service.GetExpenseReportByID(context.Background(), 5001)

	s.Require().NoError(err)
	s.Equal(header, gotHeader)
	s.Len(gotLines, 1)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ExpenseServiceTestSuite) TestDeleteExpenseReportNotFound() {
	s.mockRepo.On("DeleteExpenseReport", mock.Anything, int64(404)).
		Return(apperrors.NewNotFoundError("Expense report not found")).Once()

	err := s.service.DeleteExpenseReport(context.Background(), 404)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertExpectations(s.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
