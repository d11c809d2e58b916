package pgsql

import (
	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/models"
)

func toModelExpenseHeader(d domain.ExpenseReportHeader) models.ExpenseReportHeader {
	return models.ExpenseReportHeader{
		ReportHeaderID:          d.ReportHeaderID,
		EmployeeID:              d.EmployeeID,
		WeekEndDate:             d.WeekEndDate,
		CreationDate:            d.CreationDate,
		CreatedBy:               d.CreatedBy,
		LastUpdateDate:          d.LastUpdateDate,
		LastUpdatedBy:           d.LastUpdatedBy,
		VoucherNumber:           d.VoucherNumber,
		Total:                   d.Total,
		VendorID:                d.VendorID,
		VendorSiteID:            d.VendorSiteID,
		ExpenseCheckAddressFlag: d.ExpenseCheckAddressFlag,
		Reference1:              d.Reference1,
		Reference2:              d.Reference2,
		InvoiceNum:              d.InvoiceNum,
		ExpenseReportID:         d.ExpenseReportID,
		SetOfBooksID:            d.SetOfBooksID,
		Source:                  d.Source,
		PurgeableFlag:           d.PurgeableFlag,
		Description:             d.Description,
		DefaultCurrencyCode:     d.DefaultCurrencyCode,
	}
}

func toDomainExpenseHeader(m models.ExpenseReportHeader) domain.ExpenseReportHeader {
	return domain.ExpenseReportHeader{
		ReportHeaderID:          m.ReportHeaderID,
		EmployeeID:              m.EmployeeID,
		WeekEndDate:             m.WeekEndDate,
		CreationDate:            m.CreationDate,
		CreatedBy:               m.CreatedBy,
		LastUpdateDate:          m.LastUpdateDate,
		LastUpdatedBy:           m.LastUpdatedBy,
		VoucherNumber:           m.VoucherNumber,
		Total:                   m.Total,
		VendorID:                m.VendorID,
		VendorSiteID:            m.VendorSiteID,
		ExpenseCheckAddressFlag: m.ExpenseCheckAddressFlag,
		Reference1:              m.Reference1,
		Reference2:              m.Reference2,
		InvoiceNum:              m.InvoiceNum,
		ExpenseReportID:         m.ExpenseReportID,
		SetOfBooksID:            m.SetOfBooksID,
		Source:                  m.Source,
		PurgeableFlag:           m.PurgeableFlag,
		Description:             m.Description,
		DefaultCurrencyCode:     m.DefaultCurrencyCode,
	}
}

func toModelExpenseLine(d domain.ExpenseReportLine) models.ExpenseReportLine {
	return models.ExpenseReportLine{
		ReportHeaderID:         d.ReportHeaderID,
		CodeCombinationID:      d.CodeCombinationID,
		ItemDescription:        d.ItemDescription,
		SetOfBooksID:           d.SetOfBooksID,
		Amount:                 d.Amount,
		CurrencyCode:           d.CurrencyCode,
		LineTypeLookupCode:     d.LineTypeLookupCode,
		DistributionLineNumber: d.DistributionLineNumber,
		StartExpenseDate:       d.StartExpenseDate,
		CreationDate:           d.CreationDate,
		CreatedBy:              d.CreatedBy,
		LastUpdateDate:         d.LastUpdateDate,
		LastUpdatedBy:          d.LastUpdatedBy,
	}
}

func toDomainExpenseLine(m models.ExpenseReportLine) domain.ExpenseReportLine {
	return domain.ExpenseReportLine{
		ReportHeaderID:         m.ReportHeaderID,
		CodeCombinationID:      m.CodeCombinationID,
		ItemDescription:        m.ItemDescription,
		SetOfBooksID:           m.SetOfBooksID,
		Amount:                 m.Amount,
		CurrencyCode:           m.CurrencyCode,
		LineTypeLookupCode:     m.LineTypeLookupCode,
		DistributionLineNumber: m.DistributionLineNumber,
		StartExpenseDate:       m.StartExpenseDate,
		CreationDate:           m.CreationDate,
		CreatedBy:              m.CreatedBy,
		LastUpdateDate:         m.LastUpdateDate,
		LastUpdatedBy:          m.LastUpdatedBy,
	}
}
