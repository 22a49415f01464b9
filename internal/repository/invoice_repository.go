package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/approval/internal/entity"
)

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{
		db: pool,
	}
}

const selectInvoice = `
SELECT id, invoice_num, amount, invoice_date, due_date, pdf_url, status,
       organization_id, account_id, payment_method_id, created_by, created_at, updated_at
FROM invoices`

func (r *InvoiceRepository) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	const q = `
	INSERT INTO invoices (
		id,
		invoice_num,
		amount,
		invoice_date,
		due_date,
		pdf_url,
		status,
		organization_id,
		account_id,
		payment_method_id,
		created_by,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		inv.ID,
		inv.InvoiceNum,
		inv.Amount,
		inv.InvoiceDate,
		inv.DueDate,
		zeronull.Text(inv.PDFURL),
		inv.Status,
		inv.OrganizationID,
		inv.AccountID,
		inv.PaymentMethodID,
		inv.CreatedBy,
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	if err != nil {
		return entity.Invoice{}, mapErr(err)
	}

	return inv, nil
}

func (r *InvoiceRepository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	q := selectInvoice + " WHERE id = $1"

	return scanInvoice(r.db.QueryRow(ctx, q, id))
}

func (r *InvoiceRepository) UpdateInvoiceStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.InvoiceStatus,
	updatedAt time.Time,
) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	const q = `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *InvoiceRepository) Invoices(
	ctx context.Context,
	orgID uuid.UUID,
	f entity.InvoiceFilter,
) ([]entity.Invoice, int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	stmt := sq.Select(
		"id",
		"invoice_num",
		"amount",
		"invoice_date",
		"due_date",
		"pdf_url",
		"status",
		"organization_id",
		"account_id",
		"payment_method_id",
		"created_by",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("invoices").Where(sq.Eq{"organization_id": orgID}).PlaceholderFormat(sq.Dollar)

	stmt = applyInvoiceFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s, id asc", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, mapErr(err)
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var inv entity.Invoice

		var count int

		err = rows.Scan(
			&inv.ID,
			&inv.InvoiceNum,
			&inv.Amount,
			&inv.InvoiceDate,
			&inv.DueDate,
			(*zeronull.Text)(&inv.PDFURL),
			&inv.Status,
			&inv.OrganizationID,
			&inv.AccountID,
			&inv.PaymentMethodID,
			&inv.CreatedBy,
			&inv.CreatedAt,
			&inv.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, mapErr(err)
		}

		totalCount = count

		invoices = append(invoices, inv)
	}

	return invoices, totalCount, nil
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.CreatedAt != nil {
		stmt = stmt.Where(sq.GtOrEq{"created_at": *f.CreatedAt})
	}

	return stmt
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.InvoiceNum,
		&inv.Amount,
		&inv.InvoiceDate,
		&inv.DueDate,
		(*zeronull.Text)(&inv.PDFURL),
		&inv.Status,
		&inv.OrganizationID,
		&inv.AccountID,
		&inv.PaymentMethodID,
		&inv.CreatedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return entity.Invoice{}, mapErr(err)
	}

	return inv, nil
}
