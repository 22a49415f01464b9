package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/approval/internal/entity"
)

type ApprovalRepository struct {
	db *pgxpool.Pool
}

func NewApprovalRepository(pool *pgxpool.Pool) *ApprovalRepository {
	return &ApprovalRepository{
		db: pool,
	}
}

const selectRequest = `
SELECT id, invoice_id, amount, note, requested_by, approver_id, status, decided_at, created_at, updated_at
FROM approval_requests`

// CreateApprovalRequest inserts the request with the amount read from the
// invoice row in the same transaction. FOR SHARE blocks a concurrent amount
// update between the read and the insert, so the stored snapshot always
// equals the invoice amount at creation time.
func (r *ApprovalRepository) CreateApprovalRequest(
	ctx context.Context,
	req entity.ApprovalRequest,
) (entity.ApprovalRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entity.ApprovalRequest{}, mapErr(err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	err = tx.QueryRow(ctx,
		`SELECT amount FROM invoices WHERE id = $1 FOR SHARE`, req.InvoiceID,
	).Scan(&req.Amount)
	if err != nil {
		return entity.ApprovalRequest{}, mapErr(err)
	}

	const q = `
	INSERT INTO approval_requests (
		id,
		invoice_id,
		amount,
		note,
		requested_by,
		approver_id,
		status,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.Exec(
		ctx,
		q,
		req.ID,
		req.InvoiceID,
		req.Amount,
		zeronull.Text(req.Note),
		req.RequestedBy,
		req.ApproverID,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return entity.ApprovalRequest{}, mapErr(err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.ApprovalRequest{}, mapErr(err)
	}

	return req, nil
}

func (r *ApprovalRepository) ApprovalRequest(ctx context.Context, id uuid.UUID) (entity.ApprovalRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	q := selectRequest + " WHERE id = $1"

	return scanRequest(r.db.QueryRow(ctx, q, id))
}

func (r *ApprovalRepository) ApprovalRequestForInvoice(
	ctx context.Context,
	id, invoiceID uuid.UUID,
) (entity.ApprovalRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	q := selectRequest + " WHERE id = $1 AND invoice_id = $2"

	return scanRequest(r.db.QueryRow(ctx, q, id, invoiceID))
}

func (r *ApprovalRepository) ApprovalRequestsByInvoice(
	ctx context.Context,
	invoiceID uuid.UUID,
) (reqs []entity.ApprovalRequest, err error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	q := selectRequest + " WHERE invoice_id = $1 ORDER BY created_at DESC, id"

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}

		reqs = append(reqs, req)
	}

	return reqs, nil
}

// DecideApprovalRequest writes the decision with a conditional single-row
// update keyed by (id, invoice_id, status = PENDING). Under concurrent
// decisions exactly one writer matches the row; the rest fall through to
// the follow-up read, which tells a decided request (ErrConflict) apart
// from an id pair that matches nothing (ErrNotFound).
func (r *ApprovalRepository) DecideApprovalRequest(
	ctx context.Context,
	id, invoiceID uuid.UUID,
	status entity.ApprovalStatus,
	decidedAt time.Time,
) (entity.ApprovalRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	const q = `
	UPDATE approval_requests
	SET status = $1, decided_at = $2, updated_at = $2
	WHERE id = $3 AND invoice_id = $4 AND status = $5
	RETURNING id, invoice_id, amount, note, requested_by, approver_id, status, decided_at, created_at, updated_at
	`

	req, err := scanRequest(r.db.QueryRow(ctx, q, status, decidedAt, id, invoiceID, entity.ApprovalStatusPending))
	if err == nil {
		return req, nil
	}

	existing, lookupErr := r.ApprovalRequestForInvoice(ctx, id, invoiceID)
	if lookupErr != nil {
		return entity.ApprovalRequest{}, lookupErr
	}

	if existing.Status.Terminal() {
		return entity.ApprovalRequest{}, fmt.Errorf("%w: request %s is already %s",
			entity.ErrConflict, id, existing.Status)
	}

	return entity.ApprovalRequest{}, err
}

func (r *ApprovalRepository) ExpireApprovalRequests(ctx context.Context, createdBefore time.Time) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	const q = `
	UPDATE approval_requests
	SET status = $1, updated_at = now()
	WHERE status = $2 AND created_at < $3
	`

	result, err := r.db.Exec(ctx, q, entity.ApprovalStatusExpired, entity.ApprovalStatusPending, createdBefore)
	if err != nil {
		return 0, mapErr(err)
	}

	return result.RowsAffected(), nil
}

func scanRequest(row pgx.Row) (req entity.ApprovalRequest, err error) {
	err = row.Scan(
		&req.ID,
		&req.InvoiceID,
		&req.Amount,
		(*zeronull.Text)(&req.Note),
		&req.RequestedBy,
		&req.ApproverID,
		&req.Status,
		&req.DecidedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return entity.ApprovalRequest{}, mapErr(err)
	}

	return req, nil
}
