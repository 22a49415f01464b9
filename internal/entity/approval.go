package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalStatusPending           ApprovalStatus = "PENDING"
	ApprovalStatusApproved          ApprovalStatus = "APPROVED"
	ApprovalStatusPartiallyApproved ApprovalStatus = "PARTIALLY_APPROVED"
	ApprovalStatusRejected          ApprovalStatus = "REJECTED"
	ApprovalStatusExpired           ApprovalStatus = "EXPIRED"
)

func (s ApprovalStatus) String() string {
	return string(s)
}

// Terminal reports whether the request can no longer be decided.
func (s ApprovalStatus) Terminal() bool {
	return s != ApprovalStatusPending
}

// ValidateDecision restricts a status to the three values a caller may write.
// PENDING and EXPIRED are never accepted as decisions.
func (s ApprovalStatus) ValidateDecision() error {
	switch s {
	case ApprovalStatusApproved, ApprovalStatusPartiallyApproved, ApprovalStatusRejected:
		return nil
	default:
		return fmt.Errorf("%w: %q is not a valid decision", ErrInvalidArgument, string(s))
	}
}

// ApprovalRequest tracks one approval cycle for an invoice. Amount is a
// snapshot of the invoice amount at creation time and never changes after,
// even if the invoice itself is mutated later. A decided request is
// immutable; re-requesting approval creates a new row.
type ApprovalRequest struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Amount      decimal.Decimal
	Note        string
	RequestedBy uuid.UUID
	ApproverID  uuid.UUID
	Status      ApprovalStatus
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
