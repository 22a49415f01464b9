package service

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/approval/internal/entity"
)

// ResolveApprover picks the default approver for an invoice when the caller
// did not name one: the least-privileged user that is still allowed to
// approve the amount. Candidates are the requester's organization roles with
// their access control entries and members; only roles strictly senior to
// the requester (larger report level) with invoice write permission and an
// authorization ceiling covering the amount qualify. Among qualifying roles
// the lowest ceiling wins, ties broken by role id, and the first member in
// directory order is chosen, so the result is stable for a fixed directory
// snapshot. Roles without members are skipped.
//
// Pure function: no I/O, no mutation, safe for concurrent use.
func ResolveApprover(
	amount decimal.Decimal,
	requester entity.UserRole,
	candidates []entity.ApproverCandidate,
) (uuid.UUID, error) {
	qualified := make([]entity.ApproverCandidate, 0, len(candidates))

	for _, c := range candidates {
		if c.Role.ReportLevel <= requester.ReportLevel {
			continue
		}

		if !c.Access.CanWriteInvoices {
			continue
		}

		if c.Access.MaxApprovalAmount.LessThan(amount) {
			continue
		}

		qualified = append(qualified, c)
	}

	sort.Slice(qualified, func(i, j int) bool {
		cmp := qualified[i].Access.MaxApprovalAmount.Cmp(qualified[j].Access.MaxApprovalAmount)
		if cmp != 0 {
			return cmp < 0
		}

		return bytes.Compare(qualified[i].Role.ID.Bytes(), qualified[j].Role.ID.Bytes()) < 0
	})

	for _, c := range qualified {
		if len(c.Members) > 0 {
			return c.Members[0], nil
		}
	}

	return uuid.Nil, fmt.Errorf("%w: no role senior to level %d can approve %s",
		entity.ErrNoEligibleApprover, requester.ReportLevel, amount)
}
