package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/approval/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, orgID uuid.UUID, filter entity.InvoiceFilter) ([]entity.Invoice, int, error)
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus, updatedAt time.Time) error
}

type ApprovalRepository interface {
	// CreateApprovalRequest inserts the request and snapshots the invoice
	// amount into it within one transaction.
	CreateApprovalRequest(ctx context.Context, req entity.ApprovalRequest) (entity.ApprovalRequest, error)
	ApprovalRequest(ctx context.Context, id uuid.UUID) (entity.ApprovalRequest, error)
	ApprovalRequestForInvoice(ctx context.Context, id, invoiceID uuid.UUID) (entity.ApprovalRequest, error)
	ApprovalRequestsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.ApprovalRequest, error)
	// DecideApprovalRequest performs a conditional single-row update
	// (WHERE status = PENDING). It returns entity.ErrConflict when the row
	// exists but is already terminal, entity.ErrNotFound when the
	// (id, invoiceID) pair does not match any row.
	DecideApprovalRequest(ctx context.Context, id, invoiceID uuid.UUID, status entity.ApprovalStatus, decidedAt time.Time) (entity.ApprovalRequest, error)
	ExpireApprovalRequests(ctx context.Context, createdBefore time.Time) (int64, error)
}

type DirectoryRepository interface {
	UserRole(ctx context.Context, userID uuid.UUID) (entity.UserRole, entity.AccessControl, error)
	// ApproverCandidates returns the organization's roles with a report
	// level strictly above the given one, each with its access control
	// entry and member user IDs, ordered by ceiling then role id.
	ApproverCandidates(ctx context.Context, orgID uuid.UUID, reportLevel int) ([]entity.ApproverCandidate, error)
}

type Producer interface {
	SendInvoiceCreated(ctx context.Context, invoiceID, orgID uuid.UUID, amount decimal.Decimal)
	SendApprovalRequested(ctx context.Context, requestID, invoiceID, approverID uuid.UUID)
	SendApprovalDecided(ctx context.Context, requestID, invoiceID uuid.UUID, status entity.ApprovalStatus)
}

type Service struct {
	invoices   InvoiceRepository
	approvals  ApprovalRepository
	directory  DirectoryRepository
	producer   Producer
	requestTTL time.Duration
}

func New(
	invoices InvoiceRepository,
	approvals ApprovalRepository,
	directory DirectoryRepository,
	producer Producer,
	requestTTL time.Duration,
) *Service {
	return &Service{
		invoices:   invoices,
		approvals:  approvals,
		directory:  directory,
		producer:   producer,
		requestTTL: requestTTL,
	}
}

func (s *Service) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	user, _, err := s.authorize(ctx, permWrite)
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.OrganizationID != user.OrganizationID {
		return entity.Invoice{}, fmt.Errorf("%w: invoice organization %s does not match caller organization %s",
			entity.ErrForbidden, inv.OrganizationID, user.OrganizationID)
	}

	if !inv.Amount.IsPositive() {
		return entity.Invoice{}, fmt.Errorf("%w: amount %s is not positive", entity.ErrInvalidArgument, inv.Amount)
	}

	err = inv.Status.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	now := time.Now()

	inv.ID = uuid.Must(uuid.NewV4())
	inv.CreatedBy = user.ID
	inv.CreatedAt = now
	inv.UpdatedAt = now

	inv, err = s.invoices.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	s.producer.SendInvoiceCreated(ctx, inv.ID, inv.OrganizationID, inv.Amount)

	slog.InfoContext(ctx, "invoice created",
		"invoice_id", inv.ID, "organization_id", inv.OrganizationID, "amount", inv.Amount)

	return inv, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	user, _, err := s.authorize(ctx, permRead)
	if err != nil {
		return entity.Invoice{}, err
	}

	return s.invoiceInOrg(ctx, id, user.OrganizationID)
}

func (s *Service) Invoices(ctx context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	user, _, err := s.authorize(ctx, permRead)
	if err != nil {
		return nil, 0, err
	}

	invs, count, err := s.invoices.Invoices(ctx, user.OrganizationID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("get invoices: %w", err)
	}

	return invs, count, nil
}

func (s *Service) VoidInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	user, _, err := s.authorize(ctx, permWrite)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err := s.invoiceInOrg(ctx, id, user.OrganizationID)
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.Status == entity.InvoiceStatusVoided {
		return entity.Invoice{}, fmt.Errorf("%w: invoice %s is already voided", entity.ErrConflict, id)
	}

	now := time.Now()

	err = s.invoices.UpdateInvoiceStatus(ctx, id, entity.InvoiceStatusVoided, now)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("void invoice %s: %w", id, err)
	}

	inv.Status = entity.InvoiceStatusVoided
	inv.UpdatedAt = now

	return inv, nil
}

// RequestApproval creates a new approval cycle for the invoice. When
// approverID is nil the approver is resolved from the organization
// directory; a caller-supplied approver overrides resolution.
func (s *Service) RequestApproval(
	ctx context.Context,
	invoiceID uuid.UUID,
	note string,
	approverID *uuid.UUID,
) (entity.ApprovalRequest, error) {
	user, role, err := s.authorize(ctx, permWrite)
	if err != nil {
		return entity.ApprovalRequest{}, err
	}

	inv, err := s.invoiceInOrg(ctx, invoiceID, user.OrganizationID)
	if err != nil {
		return entity.ApprovalRequest{}, err
	}

	var approver uuid.UUID

	if approverID != nil {
		approver = *approverID
	} else {
		candidates, err := s.directory.ApproverCandidates(ctx, user.OrganizationID, role.ReportLevel)
		if err != nil {
			return entity.ApprovalRequest{}, fmt.Errorf("get approver candidates: %w", err)
		}

		approver, err = ResolveApprover(inv.Amount, role, candidates)
		if err != nil {
			return entity.ApprovalRequest{}, fmt.Errorf("resolve approver for invoice %s: %w", invoiceID, err)
		}
	}

	now := time.Now()

	req := entity.ApprovalRequest{
		ID:          uuid.Must(uuid.NewV4()),
		InvoiceID:   invoiceID,
		Note:        note,
		RequestedBy: user.ID,
		ApproverID:  approver,
		Status:      entity.ApprovalStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Amount is snapshotted from the invoice row inside the repository
	// transaction, not copied from the read above, so a concurrent invoice
	// update cannot slip between read and insert.
	req, err = s.approvals.CreateApprovalRequest(ctx, req)
	if err != nil {
		return entity.ApprovalRequest{}, fmt.Errorf("create approval request: %w", err)
	}

	s.producer.SendApprovalRequested(ctx, req.ID, invoiceID, approver)

	slog.InfoContext(ctx, "approval requested",
		"request_id", req.ID, "invoice_id", invoiceID, "approver_id", approver, "amount", req.Amount)

	return req, nil
}

// DecideApproval records a decision on a pending request. The request is
// looked up by the (requestID, invoiceID) pair so a request id cannot be
// replayed against a different invoice. Exactly one concurrent decision
// wins; the rest get entity.ErrConflict.
func (s *Service) DecideApproval(
	ctx context.Context,
	requestID, invoiceID uuid.UUID,
	decision entity.ApprovalStatus,
) (entity.ApprovalRequest, error) {
	user, _, err := s.authorize(ctx, permWrite)
	if err != nil {
		return entity.ApprovalRequest{}, err
	}

	err = decision.ValidateDecision()
	if err != nil {
		return entity.ApprovalRequest{}, err
	}

	if _, err := s.invoiceInOrg(ctx, invoiceID, user.OrganizationID); err != nil {
		return entity.ApprovalRequest{}, err
	}

	req, err := s.approvals.DecideApprovalRequest(ctx, requestID, invoiceID, decision, time.Now())
	if err != nil {
		return entity.ApprovalRequest{}, fmt.Errorf("decide approval request %s: %w", requestID, err)
	}

	s.producer.SendApprovalDecided(ctx, req.ID, invoiceID, decision)

	slog.InfoContext(ctx, "approval decided",
		"request_id", req.ID, "invoice_id", invoiceID, "status", decision, "decided_by", user.ID)

	return req, nil
}

func (s *Service) ApprovalRequest(ctx context.Context, id uuid.UUID) (entity.ApprovalRequest, error) {
	user, _, err := s.authorize(ctx, permRead)
	if err != nil {
		return entity.ApprovalRequest{}, err
	}

	req, err := s.approvals.ApprovalRequest(ctx, id)
	if err != nil {
		return entity.ApprovalRequest{}, fmt.Errorf("get approval request %s: %w", id, err)
	}

	if _, err := s.invoiceInOrg(ctx, req.InvoiceID, user.OrganizationID); err != nil {
		return entity.ApprovalRequest{}, err
	}

	return req, nil
}

func (s *Service) ApprovalRequestsForInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.ApprovalRequest, error) {
	user, _, err := s.authorize(ctx, permRead)
	if err != nil {
		return nil, err
	}

	if _, err := s.invoiceInOrg(ctx, invoiceID, user.OrganizationID); err != nil {
		return nil, err
	}

	reqs, err := s.approvals.ApprovalRequestsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("get approval requests for invoice %s: %w", invoiceID, err)
	}

	return reqs, nil
}

// ExpireStaleRequests moves pending requests older than the configured TTL
// to EXPIRED. Runs from the job scheduler.
func (s *Service) ExpireStaleRequests(ctx context.Context) error {
	n, err := s.approvals.ExpireApprovalRequests(ctx, time.Now().Add(-s.requestTTL))
	if err != nil {
		return fmt.Errorf("expire stale approval requests: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired stale approval requests", "count", n)
	}

	return nil
}

type permission int

const (
	permRead permission = iota
	permWrite
)

// authorize pulls the caller from the context and checks the invoice
// permission on their role's access control entry before any other data
// access happens.
func (s *Service) authorize(ctx context.Context, p permission) (entity.User, entity.UserRole, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.User{}, entity.UserRole{}, err
	}

	role, ac, err := s.directory.UserRole(ctx, user.ID)
	if err != nil {
		return entity.User{}, entity.UserRole{}, fmt.Errorf("get role for user %s: %w", user.ID, err)
	}

	allowed := ac.CanReadInvoices
	if p == permWrite {
		allowed = ac.CanWriteInvoices
	}

	if !allowed {
		return entity.User{}, entity.UserRole{}, fmt.Errorf("%w: role %q lacks invoice permission",
			entity.ErrForbidden, role.Name)
	}

	return user, role, nil
}

// invoiceInOrg loads an invoice and hides cross-organization rows behind
// ErrNotFound, so ids cannot be probed across tenants.
func (s *Service) invoiceInOrg(ctx context.Context, id, orgID uuid.UUID) (entity.Invoice, error) {
	inv, err := s.invoices.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	if inv.OrganizationID != orgID {
		return entity.Invoice{}, fmt.Errorf("%w: invoice %s", entity.ErrNotFound, id)
	}

	return inv, nil
}
