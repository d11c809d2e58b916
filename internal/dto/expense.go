package dto

import (
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseHeaderRequest carries the header fields for a create call.
// The identity is caller-supplied; defaults for the optional fields are
// resolved at write time, not here.
type CreateExpenseHeaderRequest struct {
	ReportHeaderID          int64           `json:"report_header_id" binding:"required"`
	EmployeeID              *int64          `json:"employee_id"`
	WeekEndDate             time.Time       `json:"week_end_date" binding:"required"`
	CreatedBy               int64           `json:"created_by" binding:"required"`
	LastUpdatedBy           int64           `json:"last_updated_by" binding:"required"`
	VoucherNumber           int64           `json:"voucher_number" binding:"required"`
	Total                   decimal.Decimal `json:"total" binding:"required"`
	VendorID                *int64          `json:"vendor_id"`
	VendorSiteID            *int64          `json:"vendor_site_id"`
	ExpenseCheckAddressFlag *string         `json:"expense_check_address_flag" binding:"omitempty,max=1"`
	Reference1              *string         `json:"reference_1" binding:"omitempty,max=240"`
	Reference2              *string         `json:"reference_2" binding:"omitempty,max=240"`
	InvoiceNum              string          `json:"invoice_num" binding:"omitempty,max=50"`
	ExpenseReportID         *int64          `json:"expense_report_id"`
	SetOfBooksID            *int64          `json:"set_of_books_id"`
	Source                  string          `json:"source" binding:"omitempty,max=80"`
	PurgeableFlag           string          `json:"purgeable_flag" binding:"omitempty,max=1"`
	Description             *string         `json:"description" binding:"omitempty,max=240"`
	DefaultCurrencyCode     string          `json:"default_currency_code" binding:"required,len=3"`
}

// ExpenseLineRequest carries one line for a create call or a full line-set
// replacement on update.
type ExpenseLineRequest struct {
	CodeCombinationID      *int64          `json:"code_combination_id"`
	ItemDescription        string          `json:"item_description" binding:"required,max=240"`
	SetOfBooksID           int64           `json:"set_of_books_id" binding:"required"`
	Amount                 decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode           string          `json:"currency_code" binding:"omitempty,len=3"`
	LineTypeLookupCode     string          `json:"line_type_lookup_code" binding:"omitempty,max=25"`
	DistributionLineNumber *int64          `json:"distribution_line_number"`
	StartExpenseDate       *time.Time      `json:"start_expense_date"`
	CreatedBy              *int64          `json:"created_by"`
	LastUpdatedBy          *int64          `json:"last_updated_by"`
}

// CreateExpenseReportRequest is the body of POST /api/expenses.
type CreateExpenseReportRequest struct {
	Header CreateExpenseHeaderRequest `json:"header" binding:"required"`
	Lines  []ExpenseLineRequest       `json:"lines" binding:"omitempty,dive"`
}

// UpdateExpenseHeaderRequest carries optional header column updates. Pointers
// distinguish omitted fields from zero values; the identity is not updatable.
type UpdateExpenseHeaderRequest struct {
	EmployeeID              *int64           `json:"employee_id"`
	WeekEndDate             *time.Time       `json:"week_end_date"`
	LastUpdatedBy           *int64           `json:"last_updated_by"`
	VoucherNumber           *int64           `json:"voucher_number"`
	Total                   *decimal.Decimal `json:"total"`
	VendorID                *int64           `json:"vendor_id"`
	VendorSiteID            *int64           `json:"vendor_site_id"`
	ExpenseCheckAddressFlag *string          `json:"expense_check_address_flag" binding:"omitempty,max=1"`
	Reference1              *string          `json:"reference_1" binding:"omitempty,max=240"`
	Reference2              *string          `json:"reference_2" binding:"omitempty,max=240"`
	InvoiceNum              *string          `json:"invoice_num" binding:"omitempty,max=50"`
	ExpenseReportID         *int64           `json:"expense_report_id"`
	SetOfBooksID            *int64           `json:"set_of_books_id"`
	Source                  *string          `json:"source" binding:"omitempty,max=80"`
	PurgeableFlag           *string          `json:"purgeable_flag" binding:"omitempty,max=1"`
	Description             *string          `json:"description" binding:"omitempty,max=240"`
	DefaultCurrencyCode     *string          `json:"default_currency_code" binding:"omitempty,len=3"`
}

// UpdateExpenseReportRequest is the body of PUT /api/expenses/:id. An absent
// or empty lines array leaves the existing lines untouched; a non-empty array
// replaces the full set.
type UpdateExpenseReportRequest struct {
	Header *UpdateExpenseHeaderRequest `json:"header" binding:"omitempty"`
	Lines  []ExpenseLineRequest        `json:"lines" binding:"omitempty,dive"`
}

// ExpenseHeaderResponse mirrors a persisted header.
type ExpenseHeaderResponse struct {
	ReportHeaderID          int64           `json:"report_header_id"`
	EmployeeID              *int64          `json:"employee_id,omitempty"`
	WeekEndDate             time.Time       `json:"week_end_date"`
	CreationDate            time.Time       `json:"creation_date"`
	CreatedBy               int64           `json:"created_by"`
	LastUpdateDate          time.Time       `json:"last_update_date"`
	LastUpdatedBy           int64           `json:"last_updated_by"`
	VoucherNumber           int64           `json:"voucher_number"`
	Total                   decimal.Decimal `json:"total"`
	VendorID                *int64          `json:"vendor_id,omitempty"`
	VendorSiteID            *int64          `json:"vendor_site_id,omitempty"`
	ExpenseCheckAddressFlag *string         `json:"expense_check_address_flag,omitempty"`
	Reference1              *string         `json:"reference_1,omitempty"`
	Reference2              *string         `json:"reference_2,omitempty"`
	InvoiceNum              string          `json:"invoice_num"`
	ExpenseReportID         *int64          `json:"expense_report_id,omitempty"`
	SetOfBooksID            *int64          `json:"set_of_books_id,omitempty"`
	Source                  string          `json:"source"`
	PurgeableFlag           string          `json:"purgeable_flag"`
	Description             *string         `json:"description,omitempty"`
	DefaultCurrencyCode     string          `json:"default_currency_code"`
}

// ExpenseLineResponse mirrors a persisted line.
type ExpenseLineResponse struct {
	ReportHeaderID         int64           `json:"report_header_id"`
	CodeCombinationID      *int64          `json:"code_combination_id,omitempty"`
	ItemDescription        string          `json:"item_description"`
	SetOfBooksID           int64           `json:"set_of_books_id"`
	Amount                 decimal.Decimal `json:"amount"`
	CurrencyCode           string          `json:"currency_code"`
	LineTypeLookupCode     string          `json:"line_type_lookup_code"`
	DistributionLineNumber *int64          `json:"distribution_line_number,omitempty"`
	StartExpenseDate       time.Time       `json:"start_expense_date"`
	CreationDate           time.Time       `json:"creation_date"`
	CreatedBy              int64           `json:"created_by"`
	LastUpdateDate         time.Time       `json:"last_update_date"`
	LastUpdatedBy          int64           `json:"last_updated_by"`
}

// ExpenseReportDetailResponse combines a header with its full line set.
type ExpenseReportDetailResponse struct {
	Header ExpenseHeaderResponse `json:"header"`
	Lines  []ExpenseLineResponse `json:"lines"`
}

// CreatedExpenseReportData is the data payload returned after a write.
type CreatedExpenseReportData struct {
	ReportHeaderID int64 `json:"report_header_id"`
}

// ToExpenseHeaderResponse converts a domain header to its response DTO.
func ToExpenseHeaderResponse(h *domain.ExpenseReportHeader) ExpenseHeaderResponse {
	return ExpenseHeaderResponse{
		ReportHeaderID:          h.ReportHeaderID,
		EmployeeID:              h.EmployeeID,
		WeekEndDate:             h.WeekEndDate,
		CreationDate:            h.CreationDate,
		CreatedBy:               h.CreatedBy,
		LastUpdateDate:          h.LastUpdateDate,
		LastUpdatedBy:           h.LastUpdatedBy,
		VoucherNumber:           h.VoucherNumber,
		Total:                   h.Total,
		VendorID:                h.VendorID,
		VendorSiteID:            h.VendorSiteID,
		ExpenseCheckAddressFlag: h.ExpenseCheckAddressFlag,
		Reference1:              h.Reference1,
		Reference2:              h.Reference2,
		InvoiceNum:              h.InvoiceNum,
		ExpenseReportID:         h.ExpenseReportID,
		SetOfBooksID:            h.SetOfBooksID,
		Source:                  h.Source,
		PurgeableFlag:           h.PurgeableFlag,
		Description:             h.Description,
		DefaultCurrencyCode:     h.DefaultCurrencyCode,
	}
}

// ToExpenseHeaderResponses converts a slice of domain headers.
func ToExpenseHeaderResponses(headers []domain.ExpenseReportHeader) []ExpenseHeaderResponse {
	responses := make([]ExpenseHeaderResponse, len(headers))
	for i := range headers {
		responses[i] = ToExpenseHeaderResponse(&headers[i])
	}
	return responses
}

// ToExpenseLineResponse converts a domain line to its response DTO.
func ToExpenseLineResponse(l *domain.ExpenseReportLine) ExpenseLineResponse {
	return ExpenseLineResponse{
		ReportHeaderID:         l.ReportHeaderID,
		CodeCombinationID:      l.CodeCombinationID,
		ItemDescription:        l.ItemDescription,
		SetOfBooksID:           l.SetOfBooksID,
		Amount:                 l.Amount,
		CurrencyCode:           l.CurrencyCode,
		LineTypeLookupCode:     l.LineTypeLookupCode,
		DistributionLineNumber: l.DistributionLineNumber,
		StartExpenseDate:       l.StartExpenseDate,
		CreationDate:           l.CreationDate,
		CreatedBy:              l.CreatedBy,
		LastUpdateDate:         l.LastUpdateDate,
		LastUpdatedBy:          l.LastUpdatedBy,
	}
}

// ToExpenseLineResponses converts a slice of domain lines.
func ToExpenseLineResponses(lines []domain.ExpenseReportLine) []ExpenseLineResponse {
	responses := make([]ExpenseLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToExpenseLineResponse(&lines[i])
	}
	return responses
}
