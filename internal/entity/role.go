package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// UserRole is an organization-scoped role. ReportLevel encodes seniority:
// a larger report level is more senior. Approver resolution depends on this
// direction, so it is asserted in resolver tests.
type UserRole struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	ReportLevel    int
}

// AccessControl is the permission entry attached to a role.
// MaxApprovalAmount is the authorization ceiling: the largest payment the
// role is permitted to approve.
type AccessControl struct {
	RoleID            uuid.UUID
	MaxApprovalAmount decimal.Decimal
	CanReadInvoices   bool
	CanWriteInvoices  bool
}

// ApproverCandidate is one role considered during approver resolution,
// with its access control entry and member user IDs in directory order
// (user id ascending).
type ApproverCandidate struct {
	Role    UserRole
	Access  AccessControl
	Members []uuid.UUID
}
