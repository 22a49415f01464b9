package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/approval/internal/entity"
)

func TestApprovalStatus_Terminal(t *testing.T) {
	t.Parallel()

	require.False(t, entity.ApprovalStatusPending.Terminal())

	for _, s := range []entity.ApprovalStatus{
		entity.ApprovalStatusApproved,
		entity.ApprovalStatusPartiallyApproved,
		entity.ApprovalStatusRejected,
		entity.ApprovalStatusExpired,
	} {
		require.True(t, s.Terminal(), s)
	}
}

func TestApprovalStatus_ValidateDecision(t *testing.T) {
	t.Parallel()

	for _, s := range []entity.ApprovalStatus{
		entity.ApprovalStatusApproved,
		entity.ApprovalStatusPartiallyApproved,
		entity.ApprovalStatusRejected,
	} {
		require.NoError(t, s.ValidateDecision(), s)
	}

	for _, s := range []entity.ApprovalStatus{
		entity.ApprovalStatusPending,
		entity.ApprovalStatusExpired,
		"approved",
		"",
	} {
		require.ErrorIs(t, s.ValidateDecision(), entity.ErrInvalidArgument, s)
	}
}

func TestInvoiceStatus_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, entity.InvoiceStatusUnpaid.Validate())
	require.NoError(t, entity.InvoiceStatusVoided.Validate())
	require.ErrorIs(t, entity.InvoiceStatus("PAID_MAYBE").Validate(), entity.ErrInvalidArgument)
	require.ErrorIs(t, entity.InvoiceStatus("").Validate(), entity.ErrInvalidArgument)
}
