package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseReportHeader mirrors the expense_report_headers table.
type ExpenseReportHeader struct {
	ReportHeaderID          int64           `db:"report_header_id"`
	EmployeeID              *int64          `db:"employee_id"`
	WeekEndDate             time.Time       `db:"week_end_date"`
	CreationDate            time.Time       `db:"creation_date"`
	CreatedBy               int64           `db:"created_by"`
	LastUpdateDate          time.Time       `db:"last_update_date"`
	LastUpdatedBy           int64           `db:"last_updated_by"`
	VoucherNumber           int64           `db:"voucher_number"`
	Total                   decimal.Decimal `db:"total"`
	VendorID                *int64          `db:"vendor_id"`
	VendorSiteID            *int64          `db:"vendor_site_id"`
	ExpenseCheckAddressFlag *string         `db:"expense_check_address_flag"`
	Reference1              *string         `db:"reference_1"`
	Reference2              *string         `db:"reference_2"`
	InvoiceNum              string          `db:"invoice_num"`
	ExpenseReportID         *int64          `db:"expense_report_id"`
	SetOfBooksID            *int64          `db:"set_of_books_id"`
	Source                  string          `db:"source"`
	PurgeableFlag           string          `db:"purgeable_flag"`
	Description             *string         `db:"description"`
	DefaultCurrencyCode     string          `db:"default_currency_code"`
}

// ExpenseReportLine mirrors the expense_report_lines table. Lines carry no
// identity of their own; they belong to exactly one header.
type ExpenseReportLine struct {
	ReportHeaderID         int64           `db:"report_header_id"`
	CodeCombinationID      *int64          `db:"code_combination_id"`
	ItemDescription        string          `db:"item_description"`
	SetOfBooksID           int64           `db:"set_of_books_id"`
	Amount                 decimal.Decimal `db:"amount"`
	CurrencyCode           string          `db:"currency_code"`
	LineTypeLookupCode     string          `db:"line_type_lookup_code"`
	DistributionLineNumber *int64          `db:"distribution_line_number"`
	StartExpenseDate       time.Time       `db:"start_expense_date"`
	CreationDate           time.Time       `db:"creation_date"`
	CreatedBy              int64           `db:"created_by"`
	LastUpdateDate         time.Time       `db:"last_update_date"`
	LastUpdatedBy          int64           `db:"last_updated_by"`
}
