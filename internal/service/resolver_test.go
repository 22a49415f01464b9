package service_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/approval/internal/entity"
	"github.com/samandr77/approval/internal/service"
)

func candidate(level int, ceiling string, canWrite bool, members ...uuid.UUID) entity.ApproverCandidate {
	roleID := uuid.Must(uuid.NewV4())

	return entity.ApproverCandidate{
		Role: entity.UserRole{
			ID:          roleID,
			ReportLevel: level,
		},
		Access: entity.AccessControl{
			RoleID:            roleID,
			MaxApprovalAmount: decimal.RequireFromString(ceiling),
			CanReadInvoices:   true,
			CanWriteInvoices:  canWrite,
		},
		Members: members,
	}
}

func TestResolveApprover_PicksLeastPrivilegedSufficientRole(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ID: uuid.Must(uuid.NewV4()), ReportLevel: 1}

	manager := uuid.Must(uuid.NewV4())
	director := uuid.Must(uuid.NewV4())

	candidates := []entity.ApproverCandidate{
		candidate(3, "100000.00", true, director),
		candidate(2, "5000.00", true, manager),
	}

	// Both roles cover the amount, the cheaper ceiling wins.
	got, err := service.ResolveApprover(decimal.RequireFromString("3000.00"), requester, candidates)
	require.NoError(t, err)
	require.Equal(t, manager, got)

	// Only the director's ceiling covers this amount.
	got, err = service.ResolveApprover(decimal.RequireFromString("50000.00"), requester, candidates)
	require.NoError(t, err)
	require.Equal(t, director, got)
}

// The cheapest sufficient ceiling wins even when a role with a higher
// ceiling sits lower in the seniority order. Seniority only gates who may
// approve at all; among the qualified, privilege is minimized.
func TestResolveApprover_LowestCeilingWinsRegardlessOfSeniority(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 5}

	bob := uuid.Must(uuid.NewV4())
	carol := uuid.Must(uuid.NewV4())

	candidates := []entity.ApproverCandidate{
		candidate(10, "2000.00", true, bob),
		candidate(20, "1500.00", true, carol),
	}

	got, err := service.ResolveApprover(decimal.RequireFromString("1000.00"), requester, candidates)
	require.NoError(t, err)
	require.Equal(t, carol, got)
}

func TestResolveApprover_CeilingBoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 1}
	manager := uuid.Must(uuid.NewV4())

	candidates := []entity.ApproverCandidate{
		candidate(2, "5000.00", true, manager),
	}

	got, err := service.ResolveApprover(decimal.RequireFromString("5000.00"), requester, candidates)
	require.NoError(t, err)
	require.Equal(t, manager, got)

	_, err = service.ResolveApprover(decimal.RequireFromString("5000.01"), requester, candidates)
	require.ErrorIs(t, err, entity.ErrNoEligibleApprover)
}

func TestResolveApprover_SkipsNonSeniorRoles(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 2}

	peer := uuid.Must(uuid.NewV4())
	junior := uuid.Must(uuid.NewV4())
	senior := uuid.Must(uuid.NewV4())

	candidates := []entity.ApproverCandidate{
		candidate(2, "100000.00", true, peer),   // same level, excluded
		candidate(1, "100000.00", true, junior), // junior, excluded
		candidate(3, "100000.00", true, senior),
	}

	got, err := service.ResolveApprover(decimal.RequireFromString("10.00"), requester, candidates)
	require.NoError(t, err)
	require.Equal(t, senior, got)
}

func TestResolveApprover_SkipsRolesWithoutWritePermission(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 1}

	auditor := uuid.Must(uuid.NewV4())
	manager := uuid.Must(uuid.NewV4())

	candidates := []entity.ApproverCandidate{
		candidate(2, "1000.00", false, auditor), // cheaper, but read-only
		candidate(3, "5000.00", true, manager),
	}

	got, err := service.ResolveApprover(decimal.RequireFromString("500.00"), requester, candidates)
	require.NoError(t, err)
	require.Equal(t, manager, got)
}

func TestResolveApprover_SkipsEmptyRoles(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 1}
	director := uuid.Must(uuid.NewV4())

	candidates := []entity.ApproverCandidate{
		candidate(2, "5000.00", true), // cheapest qualifying role has nobody in it
		candidate(3, "100000.00", true, director),
	}

	got, err := service.ResolveApprover(decimal.RequireFromString("500.00"), requester, candidates)
	require.NoError(t, err)
	require.Equal(t, director, got)
}

func TestResolveApprover_NoEligibleApprover(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 1}

	_, err := service.ResolveApprover(decimal.RequireFromString("100.00"), requester, nil)
	require.ErrorIs(t, err, entity.ErrNoEligibleApprover)

	candidates := []entity.ApproverCandidate{
		candidate(2, "50.00", true, uuid.Must(uuid.NewV4())),
	}

	_, err = service.ResolveApprover(decimal.RequireFromString("100.00"), requester, candidates)
	require.ErrorIs(t, err, entity.ErrNoEligibleApprover)
}

func TestResolveApprover_TieBrokenByRoleID(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 1}

	a := candidate(2, "5000.00", true, uuid.Must(uuid.NewV4()))
	b := candidate(2, "5000.00", true, uuid.Must(uuid.NewV4()))

	want := a.Members[0]
	if b.Role.ID.String() < a.Role.ID.String() {
		want = b.Members[0]
	}

	// Same ceiling either way around: the smaller role id wins.
	got, err := service.ResolveApprover(decimal.RequireFromString("100.00"), requester, []entity.ApproverCandidate{a, b})
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = service.ResolveApprover(decimal.RequireFromString("100.00"), requester, []entity.ApproverCandidate{b, a})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestResolveApprover_Deterministic(t *testing.T) {
	t.Parallel()

	requester := entity.UserRole{ReportLevel: 1}

	candidates := []entity.ApproverCandidate{
		candidate(4, "90000.00", true, uuid.Must(uuid.NewV4())),
		candidate(2, "10000.00", true, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())),
		candidate(3, "10000.00", true, uuid.Must(uuid.NewV4())),
	}

	first, err := service.ResolveApprover(decimal.RequireFromString("9000.00"), requester, candidates)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		got, err := service.ResolveApprover(decimal.RequireFromString("9000.00"), requester, candidates)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}
