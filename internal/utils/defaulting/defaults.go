// Package defaulting resolves the optional expense-report fields that carry
// write-time defaults. Each field has an ordered fallback chain; resolution is
// pure so the chains can be tested without a database.
package defaulting

import (
	"strconv"
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
)

const (
	// FallbackCurrencyCode ends every currency chain.
	FallbackCurrencyCode = "BDT"
	// DefaultSource marks rows written by this application.
	DefaultSource = "XpenseXpress"
	// DefaultPurgeableFlag is the purge marker for new headers.
	DefaultPurgeableFlag = "N"
	// DefaultLineType is the lookup code applied to untyped lines.
	DefaultLineType = "ITEM"
)

// firstNonEmpty returns the first non-empty value of the chain.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstNonZero returns the first non-zero value of the chain.
func firstNonZero(values ...int64) int64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// ResolveHeader returns a copy of the header with every defaultable field
// resolved through its fallback chain:
//
//	invoice_num:           header -> "{report_header_id}/"
//	source:                header -> "XpenseXpress"
//	purgeable_flag:        header -> "N"
//	default_currency_code: header -> "BDT"
func ResolveHeader(h domain.ExpenseReportHeader) domain.ExpenseReportHeader {
	h.InvoiceNum = firstNonEmpty(h.InvoiceNum, strconv.FormatInt(h.ReportHeaderID, 10)+"/")
	h.Source = firstNonEmpty(h.Source, DefaultSource)
	h.PurgeableFlag = firstNonEmpty(h.PurgeableFlag, DefaultPurgeableFlag)
	h.DefaultCurrencyCode = firstNonEmpty(h.DefaultCurrencyCode, FallbackCurrencyCode)
	return h
}

// ResolveLine returns a copy of the line with every defaultable field resolved
// against the owning header:
//
//	currency_code:         line -> header default_currency_code -> "BDT"
//	line_type_lookup_code: line -> "ITEM"
//	start_expense_date:    line -> now
//	created_by:            line -> header created_by
//	last_updated_by:       line -> header last_updated_by
//
// The line is also stamped with the header identity and the write timestamps.
func ResolveLine(line domain.ExpenseReportLine, header domain.ExpenseReportHeader, now time.Time) domain.ExpenseReportLine {
	line.ReportHeaderID = header.ReportHeaderID
	line.CurrencyCode = firstNonEmpty(line.CurrencyCode, header.DefaultCurrencyCode, FallbackCurrencyCode)
	line.LineTypeLookupCode = firstNonEmpty(line.LineTypeLookupCode, DefaultLineType)
	if line.StartExpenseDate.IsZero() {
		line.StartExpenseDate = now
	}
	line.CreatedBy = firstNonZero(line.CreatedBy, header.CreatedBy)
	line.LastUpdatedBy = firstNonZero(line.LastUpdatedBy, header.LastUpdatedBy)
	line.CreationDate = now
	line.LastUpdateDate = now
	return line
}
