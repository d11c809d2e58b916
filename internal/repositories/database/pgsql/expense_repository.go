package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/XpenseXpress/xpense_backend/internal/apperrors"
	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	portsrepo "github.com/XpenseXpress/xpense_backend/internal/core/ports/repositories"
	"github.com/XpenseXpress/xpense_backend/internal/models"
	"github.com/XpenseXpress/xpense_backend/internal/utils/defaulting"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseReportRepository struct {
	BaseRepository
}

// NewExpenseReportRepository creates the repository owning the atomic
// header+lines write protocol for expense reports.
func NewExpenseReportRepository(pool *pgxpool.Pool, acquireTimeout time.Duration) portsrepo.ExpenseReportRepository {
	return &PgxExpenseReportRepository{
		BaseRepository: BaseRepository{Pool: pool, AcquireTimeout: acquireTimeout},
	}
}

var _ portsrepo.ExpenseReportRepository = (*PgxExpenseReportRepository)(nil)

const expenseHeaderColumns = `
	report_header_id, employee_id, week_end_date, creation_date, created_by,
	last_update_date, last_updated_by, voucher_number, total, vendor_id,
	vendor_site_id, expense_check_address_flag, reference_1, reference_2,
	invoice_num, expense_report_id, set_of_books_id, source, purgeable_flag,
	description, default_currency_code`

const expenseLineColumns = `
	report_header_id, code_combination_id, item_description, set_of_books_id,
	amount, currency_code, line_type_lookup_code, distribution_line_number,
	start_expense_date, creation_date, created_by, last_update_date, last_updated_by`

const insertLineQuery = `
	INSERT INTO expense_report_lines (` + expenseLineColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

// SaveExpenseReport inserts the header and every line within one database
// transaction. Defaults are substituted here, at write time: the header
// fields via their fallback chains, each line against the resolved header.
// Any single line failure rolls back the header and all prior lines.
func (r *PgxExpenseReportRepository) SaveExpenseReport(ctx context.Context, header domain.ExpenseReportHeader, lines []domain.ExpenseReportLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed.

	header = defaulting.ResolveHeader(header)
	now := header.CreationDate

	m := toModelExpenseHeader(header)
	headerQuery := `
		INSERT INTO expense_report_headers (` + expenseHeaderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);`
	_, err = tx.Exec(ctx, headerQuery,
		m.ReportHeaderID,
		m.EmployeeID,
		m.WeekEndDate,
		m.CreationDate,
		m.CreatedBy,
		m.LastUpdateDate,
		m.LastUpdatedBy,
		m.VoucherNumber,
		m.Total,
		m.VendorID,
		m.VendorSiteID,
		m.ExpenseCheckAddressFlag,
		m.Reference1,
		m.Reference2,
		m.InvoiceNum,
		m.ExpenseReportID,
		m.SetOfBooksID,
		m.Source,
		m.PurgeableFlag,
		m.Description,
		m.DefaultCurrencyCode,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert expense report header %d", header.ReportHeaderID), err)
	}

	if err := r.insertLines(ctx, tx, header, lines, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertLines queues every line insert in input order inside tx. The batch is
// scoped to the caller's transaction, so an error in any statement leaves the
// whole write to be rolled back.
func (r *PgxExpenseReportRepository) insertLines(ctx context.Context, tx pgx.Tx, header domain.ExpenseReportHeader, lines []domain.ExpenseReportLine, now time.Time) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		l := toModelExpenseLine(defaulting.ResolveLine(line, header, now))
		batch.Queue(insertLineQuery,
			l.ReportHeaderID,
			l.CodeCombinationID,
			l.ItemDescription,
			l.SetOfBooksID,
			l.Amount,
			l.CurrencyCode,
			l.LineTypeLookupCode,
			l.DistributionLineNumber,
			l.StartExpenseDate,
			l.CreationDate,
			l.CreatedBy,
			l.LastUpdateDate,
			l.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert lines for expense report %d", header.ReportHeaderID), err)
	}
	return nil
}

// UpdateExpenseReport patches header columns and, when lines is non-empty,
// replaces the full line set, all in one transaction. The
// existence check, the patch, and the replacement all see the same locked
// header row.
func (r *PgxExpenseReportRepository) UpdateExpenseReport(ctx context.Context, reportHeaderID int64, patch domain.ExpenseReportHeaderPatch, lines []domain.ExpenseReportLine, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	existing, err := r.lockHeader(ctx, tx, reportHeaderID)
	if err != nil {
		return err
	}

	if err := r.patchHeader(ctx, tx, reportHeaderID, patch, now); err != nil {
		return err
	}

	if len(lines) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM expense_report_lines WHERE report_header_id = $1;`, reportHeaderID); err != nil {
			return apperrors.NewAppError(500, fmt.Sprintf("failed to delete lines for expense report %d", reportHeaderID), err)
		}

		// Replacement lines fall back to the post-update header values.
		effective := *existing
		patch.ApplyTo(&effective)
		if err := r.insertLines(ctx, tx, effective, lines, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// lockHeader fetches a header FOR UPDATE inside tx, mapping absence to
// apperrors.ErrNotFound before any mutation happens.
func (r *PgxExpenseReportRepository) lockHeader(ctx context.Context, tx pgx.Tx, reportHeaderID int64) (*domain.ExpenseReportHeader, error) {
	query := `SELECT ` + expenseHeaderColumns + `
		FROM expense_report_headers
		WHERE report_header_id = $1
		FOR UPDATE;`
	m, err := scanExpenseHeader(tx.QueryRow(ctx, query, reportHeaderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to lock expense report header %d", reportHeaderID), err)
	}
	header := toDomainExpenseHeader(m)
	return &header, nil
}

// patchHeader emits an assignment for exactly the patch fields present. The
// column set is enumerated here rather than derived from request keys;
// last_update_date is always stamped, last_updated_by only when supplied.
func (r *PgxExpenseReportRepository) patchHeader(ctx context.Context, tx pgx.Tx, reportHeaderID int64, patch domain.ExpenseReportHeaderPatch, now time.Time) error {
	assignments := []string{"last_update_date = $2"}
	args := []any{reportHeaderID, now}
	assign := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.EmployeeID != nil {
		assign("employee_id", *patch.EmployeeID)
	}
	if patch.WeekEndDate != nil {
		assign("week_end_date", *patch.WeekEndDate)
	}
	if patch.LastUpdatedBy != nil {
		assign("last_updated_by", *patch.LastUpdatedBy)
	}
	if patch.VoucherNumber != nil {
		assign("voucher_number", *patch.VoucherNumber)
	}
	if patch.Total != nil {
		assign("total", *patch.Total)
	}
	if patch.VendorID != nil {
		assign("vendor_id", *patch.VendorID)
	}
	if patch.VendorSiteID != nil {
		assign("vendor_site_id", *patch.VendorSiteID)
	}
	if patch.ExpenseCheckAddressFlag != nil {
		assign("expense_check_address_flag", *patch.ExpenseCheckAddressFlag)
	}
	if patch.Reference1 != nil {
		assign("reference_1", *patch.Reference1)
	}
	if patch.Reference2 != nil {
		assign("reference_2", *patch.Reference2)
	}
	if patch.InvoiceNum != nil {
		assign("invoice_num", *patch.InvoiceNum)
	}
	if patch.ExpenseReportID != nil {
		assign("expense_report_id", *patch.ExpenseReportID)
	}
	if patch.SetOfBooksID != nil {
		assign("set_of_books_id", *patch.SetOfBooksID)
	}
	if patch.Source != nil {
		assign("source", *patch.Source)
	}
	if patch.PurgeableFlag != nil {
		assign("purgeable_flag", *patch.PurgeableFlag)
	}
	if patch.Description != nil {
		assign("description", *patch.Description)
	}
	if patch.DefaultCurrencyCode != nil {
		assign("default_currency_code", *patch.DefaultCurrencyCode)
	}

	query := "UPDATE expense_report_headers SET "
	for i, a := range assignments {
		if i > 0 {
			query += ", "
		}
		query += a
	}
	query += " WHERE report_header_id = $1;"

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update expense report header %d", reportHeaderID), err)
	}
	return nil
}

// DeleteExpenseReport removes the lines and then the header inside one
// transaction, so a line-delete success with a header-delete failure never
// leaves orphaned state. Lines go first for the foreign-key ordering.
func (r *PgxExpenseReportRepository) DeleteExpenseReport(ctx context.Context, reportHeaderID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM expense_report_lines WHERE report_header_id = $1;`, reportHeaderID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete lines for expense report %d", reportHeaderID), err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM expense_report_headers WHERE report_header_id = $1;`, reportHeaderID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete expense report header %d", reportHeaderID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindExpenseReportByID fetches the header and then all its lines. Two plain
// reads, not wrapped in a transaction.
func (r *PgxExpenseReportRepository) FindExpenseReportByID(ctx context.Context, reportHeaderID int64) (*domain.ExpenseReportHeader, []domain.ExpenseReportLine, error) {
	query := `SELECT ` + expenseHeaderColumns + `
		FROM expense_report_headers
		WHERE report_header_id = $1;`
	m, err := scanExpenseHeader(r.Pool.QueryRow(ctx, query, reportHeaderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find expense report header %d", reportHeaderID), err)
	}
	header := toDomainExpenseHeader(m)

	lines, err := r.findLinesByHeaderID(ctx, reportHeaderID)
	if err != nil {
		return nil, nil, err
	}
	return &header, lines, nil
}

func (r *PgxExpenseReportRepository) findLinesByHeaderID(ctx context.Context, reportHeaderID int64) ([]domain.ExpenseReportLine, error) {
	query := `SELECT ` + expenseLineColumns + `
		FROM expense_report_lines
		WHERE report_header_id = $1
		ORDER BY distribution_line_number NULLS LAST, item_description;`
	rows, err := r.Pool.Query(ctx, query, reportHeaderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query lines for expense report %d", reportHeaderID), err)
	}
	defer rows.Close()

	lines := []domain.ExpenseReportLine{}
	for rows.Next() {
		var l models.ExpenseReportLine
		if err := rows.Scan(
			&l.ReportHeaderID,
			&l.CodeCombinationID,
			&l.ItemDescription,
			&l.SetOfBooksID,
			&l.Amount,
			&l.CurrencyCode,
			&l.LineTypeLookupCode,
			&l.DistributionLineNumber,
			&l.StartExpenseDate,
			&l.CreationDate,
			&l.CreatedBy,
			&l.LastUpdateDate,
			&l.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to scan line row for expense report %d", reportHeaderID), err)
		}
		lines = append(lines, toDomainExpenseLine(l))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("error iterating line rows for expense report %d", reportHeaderID), err)
	}
	return lines, nil
}

// ListExpenseReports runs the total-count query and the page-window query as
// two independent reads. Read consistency between the two is not guaranteed
// under concurrent writes; an accepted tradeoff for this path.
func (r *PgxExpenseReportRepository) ListExpenseReports(ctx context.Context, limit, offset int) ([]domain.ExpenseReportHeader, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM expense_report_headers;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count expense report headers", err)
	}

	query := `SELECT ` + expenseHeaderColumns + `
		FROM expense_report_headers
		ORDER BY report_header_id DESC
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query expense report headers", err)
	}
	defer rows.Close()

	headers := []domain.ExpenseReportHeader{}
	for rows.Next() {
		m, err := scanExpenseHeader(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan expense report header row", err)
		}
		headers = append(headers, toDomainExpenseHeader(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating expense report header rows", err)
	}

	return headers, total, nil
}

// scanExpenseHeader scans one full header row in expenseHeaderColumns order.
func scanExpenseHeader(row pgx.Row) (models.ExpenseReportHeader, error) {
	var m models.ExpenseReportHeader
	err := row.Scan(
		&m.ReportHeaderID,
		&m.EmployeeID,
		&m.WeekEndDate,
		&m.CreationDate,
		&m.CreatedBy,
		&m.LastUpdateDate,
		&m.LastUpdatedBy,
		&m.VoucherNumber,
		&m.Total,
		&m.VendorID,
		&m.VendorSiteID,
		&m.ExpenseCheckAddressFlag,
		&m.Reference1,
		&m.Reference2,
		&m.InvoiceNum,
		&m.ExpenseReportID,
		&m.SetOfBooksID,
		&m.Source,
		&m.PurgeableFlag,
		&m.Description,
		&m.DefaultCurrencyCode,
	)
	return m, err
}
