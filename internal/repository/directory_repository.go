package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/approval/internal/entity"
)

// DirectoryRepository reads the organization directory: roles, their access
// control entries and their members. All reads, no writes; role and
// membership management belongs to the identity service.
type DirectoryRepository struct {
	db *pgxpool.Pool
}

func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{
		db: pool,
	}
}

func (r *DirectoryRepository) UserRole(
	ctx context.Context,
	userID uuid.UUID,
) (entity.UserRole, entity.AccessControl, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	const q = `
	SELECT ur.id, ur.organization_id, ur.name, ur.report_level,
	       ac.max_approval_amount, ac.can_read_invoices, ac.can_write_invoices
	FROM role_members rm
	JOIN user_roles ur ON ur.id = rm.role_id
	JOIN access_controls ac ON ac.role_id = ur.id
	WHERE rm.user_id = $1
	`

	var (
		role entity.UserRole
		ac   entity.AccessControl
	)

	err := r.db.QueryRow(ctx, q, userID).Scan(
		&role.ID,
		&role.OrganizationID,
		&role.Name,
		&role.ReportLevel,
		&ac.MaxApprovalAmount,
		&ac.CanReadInvoices,
		&ac.CanWriteInvoices,
	)
	if err != nil {
		return entity.UserRole{}, entity.AccessControl{}, mapErr(err)
	}

	ac.RoleID = role.ID

	return role, ac, nil
}

// ApproverCandidates returns the organization's roles strictly senior to
// the given report level (larger = more senior), each with its access
// control entry and member user IDs. Ordering is deterministic: ceiling
// ascending, then role id, then user id within a role.
func (r *DirectoryRepository) ApproverCandidates(
	ctx context.Context,
	orgID uuid.UUID,
	reportLevel int,
) ([]entity.ApproverCandidate, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	const q = `
	SELECT ur.id, ur.organization_id, ur.name, ur.report_level,
	       ac.max_approval_amount, ac.can_read_invoices, ac.can_write_invoices,
	       rm.user_id
	FROM user_roles ur
	JOIN access_controls ac ON ac.role_id = ur.id
	LEFT JOIN role_members rm ON rm.role_id = ur.id
	WHERE ur.organization_id = $1 AND ur.report_level > $2
	ORDER BY ac.max_approval_amount, ur.id, rm.user_id
	`

	rows, err := r.db.Query(ctx, q, orgID, reportLevel)
	if err != nil {
		return nil, mapErr(err)
	}

	defer rows.Close()

	var candidates []entity.ApproverCandidate

	for rows.Next() {
		var (
			role   entity.UserRole
			ac     entity.AccessControl
			member *uuid.UUID
		)

		err = rows.Scan(
			&role.ID,
			&role.OrganizationID,
			&role.Name,
			&role.ReportLevel,
			&ac.MaxApprovalAmount,
			&ac.CanReadInvoices,
			&ac.CanWriteInvoices,
			&member,
		)
		if err != nil {
			return nil, mapErr(err)
		}

		ac.RoleID = role.ID

		if len(candidates) == 0 || candidates[len(candidates)-1].Role.ID != role.ID {
			candidates = append(candidates, entity.ApproverCandidate{Role: role, Access: ac})
		}

		if member != nil {
			last := &candidates[len(candidates)-1]
			last.Members = append(last.Members, *member)
		}
	}

	return candidates, nil
}
