package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseReportHeader is the top-level record of an expense report.
// The identity is caller-supplied, not generated.
type ExpenseReportHeader struct {
	ReportHeaderID          int64
	EmployeeID              *int64
	WeekEndDate             time.Time
	CreationDate            time.Time
	CreatedBy               int64
	LastUpdateDate          time.Time
	LastUpdatedBy           int64
	VoucherNumber           int64
	Total                   decimal.Decimal
	VendorID                *int64
	VendorSiteID            *int64
	ExpenseCheckAddressFlag *string
	Reference1              *string
	Reference2              *string
	InvoiceNum              string
	ExpenseReportID         *int64
	SetOfBooksID            *int64
	Source                  string
	PurgeableFlag           string
	Description             *string
	DefaultCurrencyCode     string
}

// ExpenseReportLine is a child detail record of a header, one per expense item.
// Lines have no identity of their own; the persisted set for a header is
// always exactly the set supplied by the most recent successful write.
type ExpenseReportLine struct {
	ReportHeaderID         int64
	CodeCombinationID      *int64
	ItemDescription        string
	SetOfBooksID           int64
	Amount                 decimal.Decimal
	CurrencyCode           string
	LineTypeLookupCode     string
	DistributionLineNumber *int64
	StartExpenseDate       time.Time
	CreationDate           time.Time
	CreatedBy              int64
	LastUpdateDate         time.Time
	LastUpdatedBy          int64
}

// ExpenseReportHeaderPatch holds optional header column updates. A nil field
// is omitted from the update entirely; the identity is never updatable.
type ExpenseReportHeaderPatch struct {
	EmployeeID              *int64
	WeekEndDate             *time.Time
	LastUpdatedBy           *int64
	VoucherNumber           *int64
	Total                   *decimal.Decimal
	VendorID                *int64
	VendorSiteID            *int64
	ExpenseCheckAddressFlag *string
	Reference1              *string
	Reference2              *string
	InvoiceNum              *string
	ExpenseReportID         *int64
	SetOfBooksID            *int64
	Source                  *string
	PurgeableFlag           *string
	Description             *string
	DefaultCurrencyCode     *string
}

// IsZero reports whether the patch carries no column updates at all.
func (p ExpenseReportHeaderPatch) IsZero() bool {
	return p.EmployeeID == nil &&
		p.WeekEndDate == nil &&
		p.LastUpdatedBy == nil &&
		p.VoucherNumber == nil &&
		p.Total == nil &&
		p.VendorID == nil &&
		p.VendorSiteID == nil &&
		p.ExpenseCheckAddressFlag == nil &&
		p.Reference1 == nil &&
		p.Reference2 == nil &&
		p.InvoiceNum == nil &&
		p.ExpenseReportID == nil &&
		p.SetOfBooksID == nil &&
		p.Source == nil &&
		p.PurgeableFlag == nil &&
		p.Description == nil &&
		p.DefaultCurrencyCode == nil
}

// ApplyTo overlays the present patch fields onto the given header. Used when
// replacing lines so their fallback chains see the post-update header values.
func (p ExpenseReportHeaderPatch) ApplyTo(h *ExpenseReportHeader) {
	if p.EmployeeID != nil {
		h.EmployeeID = p.EmployeeID
	}
	if p.WeekEndDate != nil {
		h.WeekEndDate = *p.WeekEndDate
	}
	if p.LastUpdatedBy != nil {
		h.LastUpdatedBy = *p.LastUpdatedBy
	}
	if p.VoucherNumber != nil {
		h.VoucherNumber = *p.VoucherNumber
	}
	if p.Total != nil {
		h.Total = *p.Total
	}
	if p.VendorID != nil {
		h.VendorID = p.VendorID
	}
	if p.VendorSiteID != nil {
		h.VendorSiteID = p.VendorSiteID
	}
	if p.ExpenseCheckAddressFlag != nil {
		h.ExpenseCheckAddressFlag = p.ExpenseCheckAddressFlag
	}
	if p.Reference1 != nil {
		h.Reference1 = p.Reference1
	}
	if p.Reference2 != nil {
		h.Reference2 = p.Reference2
	}
	if p.InvoiceNum != nil {
		h.InvoiceNum = *p.InvoiceNum
	}
	if p.ExpenseReportID != nil {
		h.ExpenseReportID = p.ExpenseReportID
	}
	if p.SetOfBooksID != nil {
		h.SetOfBooksID = p.SetOfBooksID
	}
	if p.Source != nil {
		h.Source = *p.Source
	}
	if p.PurgeableFlag != nil {
		h.PurgeableFlag = *p.PurgeableFlag
	}
	if p.Description != nil {
		h.Description = p.Description
	}
	if p.DefaultCurrencyCode != nil {
		h.DefaultCurrencyCode = *p.DefaultCurrencyCode
	}
}
