package defaulting_test

import (
	"testing"
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/utils/defaulting"
	"github.com/stretchr/testify/assert"
)

func TestResolveHeader_AppliesDefaults(t *testing.T) {
	h := defaulting.ResolveHeader(domain.ExpenseReportHeader{ReportHeaderID: 4711})

	assert.Equal(t, "4711/", h.InvoiceNum)
	assert.Equal(t, "XpenseXpress", h.Source)
	assert.Equal(t, "N", h.PurgeableFlag)
	assert.Equal(t, "BDT", h.DefaultCurrencyCode)
}

func TestResolveHeader_KeepsSuppliedValues(t *testing.T) {
	in := domain.ExpenseReportHeader{
		ReportHeaderID:      4711,
		InvoiceNum:          "INV-9",
		Source:              "Manual",
		PurgeableFlag:       "Y",
		DefaultCurrencyCode: "EUR",
	}

	h := defaulting.ResolveHeader(in)

	assert.Equal(t, "INV-9", h.InvoiceNum)
	assert.Equal(t, "Manual", h.Source)
	assert.Equal(t, "Y", h.PurgeableFlag)
	assert.Equal(t, "EUR", h.DefaultCurrencyCode)
}

func TestResolveLine_CurrencyChain(t *testing.T) {
	now := time.Now()
	header := domain.ExpenseReportHeader{ReportHeaderID: 1, DefaultCurrencyCode: "EUR"}

	tests := []struct {
		name     string
		line     string
		header   string
		expected string
	}{
		{"line value wins", "USD", "EUR", "USD"},
		{"header default when line empty", "", "EUR", "EUR"},
		{"hardcoded fallback when both empty", "", "", "BDT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header.DefaultCurrencyCode = tt.header
			got := defaulting.ResolveLine(domain.ExpenseReportLine{CurrencyCode: tt.line}, header, now)
			assert.Equal(t, tt.expected, got.CurrencyCode)
		})
	}
}

func TestResolveLine_AppliesDefaults(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	header := domain.ExpenseReportHeader{
		ReportHeaderID:      42,
		CreatedBy:           1001,
		LastUpdatedBy:       1002,
		DefaultCurrencyCode: "BDT",
	}

	line := defaulting.ResolveLine(domain.ExpenseReportLine{ItemDescription: "Taxi"}, header, now)

	assert.Equal(t, int64(42), line.ReportHeaderID)
	assert.Equal(t, "ITEM", line.LineTypeLookupCode)
	assert.Equal(t, now, line.StartExpenseDate)
	assert.Equal(t, int64(1001), line.CreatedBy)
	assert.Equal(t, int64(1002), line.LastUpdatedBy)
	assert.Equal(t, now, line.CreationDate)
	assert.Equal(t, now, line.LastUpdateDate)
}

func TestResolveLine_KeepsSuppliedValues(t *testing.T) {
	now := time.Now()
	expenseDate := now.AddDate(0, 0, -3)
	header := domain.ExpenseReportHeader{ReportHeaderID: 42, CreatedBy: 1001, LastUpdatedBy: 1001}

	line := defaulting.ResolveLine(domain.ExpenseReportLine{
		ItemDescription:    "Hotel",
		LineTypeLookupCode: "ACCOMMODATION",
		StartExpenseDate:   expenseDate,
		CreatedBy:          2002,
		LastUpdatedBy:      2003,
	}, header, now)

	assert.Equal(t, "ACCOMMODATION", line.LineTypeLookupCode)
	assert.Equal(t, expenseDate, line.StartExpenseDate)
	assert.Equal(t, int64(2002), line.CreatedBy)
	assert.Equal(t, int64(2003), line.LastUpdatedBy)
}
