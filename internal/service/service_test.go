package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/approval/internal/entity"
	"github.com/samandr77/approval/internal/mocks"
	"github.com/samandr77/approval/internal/service"
)

const requestTTL = 7 * 24 * time.Hour

type tester struct {
	invoices  *mocks.MockInvoiceRepository
	approvals *mocks.MockApprovalRepository
	directory *mocks.MockDirectoryRepository
	producer  *mocks.MockProducer
	s         *service.Service

	ctx  context.Context
	user entity.User
	role entity.UserRole
}

func newTester(t *testing.T) tester {
	t.Helper()

	ctrl := gomock.NewController(t)

	tr := tester{
		invoices:  mocks.NewMockInvoiceRepository(ctrl),
		approvals: mocks.NewMockApprovalRepository(ctrl),
		directory: mocks.NewMockDirectoryRepository(ctrl),
		producer:  mocks.NewMockProducer(ctrl),
	}

	tr.s = service.New(tr.invoices, tr.approvals, tr.directory, tr.producer, requestTTL)

	tr.user = entity.User{
		ID:             uuid.Must(uuid.NewV4()),
		OrganizationID: uuid.Must(uuid.NewV4()),
		RoleID:         uuid.Must(uuid.NewV4()),
	}
	tr.role = entity.UserRole{
		ID:             tr.user.RoleID,
		OrganizationID: tr.user.OrganizationID,
		Name:           "clerk",
		ReportLevel:    1,
	}
	tr.ctx = entity.CtxWithUser(context.Background(), tr.user)

	return tr
}

func (tr tester) expectRole(canRead, canWrite bool) {
	tr.directory.EXPECT().UserRole(tr.ctx, tr.user.ID).Return(tr.role, entity.AccessControl{
		RoleID:           tr.role.ID,
		CanReadInvoices:  canRead,
		CanWriteInvoices: canWrite,
	}, nil)
}

func (tr tester) invoice(amount string) entity.Invoice {
	return entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		InvoiceNum:     "INV-1",
		Amount:         decimal.RequireFromString(amount),
		Status:         entity.InvoiceStatusUnpaid,
		OrganizationID: tr.user.OrganizationID,
	}
}

func TestService_CreateInvoice(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	tr.invoices.EXPECT().CreateInvoice(tr.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
			require.NotEqual(t, uuid.Nil, inv.ID)
			require.Equal(t, tr.user.ID, inv.CreatedBy)
			return inv, nil
		})
	tr.producer.EXPECT().SendInvoiceCreated(tr.ctx, gomock.Any(), tr.user.OrganizationID, gomock.Any())

	inv, err := tr.s.CreateInvoice(tr.ctx, tr.invoice("1500.00"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, inv.ID)
}

func TestService_CreateInvoice_Forbidden(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, false)

	_, err := tr.s.CreateInvoice(tr.ctx, tr.invoice("1500.00"))
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CreateInvoice_WrongOrganization(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	inv := tr.invoice("1500.00")
	inv.OrganizationID = uuid.Must(uuid.NewV4())

	_, err := tr.s.CreateInvoice(tr.ctx, inv)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CreateInvoice_NonPositiveAmount(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	for _, amount := range []string{"0", "-10.00"} {
		tr.expectRole(true, true)

		inv := tr.invoice("1.00")
		inv.Amount = decimal.RequireFromString(amount)

		_, err := tr.s.CreateInvoice(tr.ctx, inv)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	}
}

func TestService_CreateInvoice_Unauthenticated(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	_, err := tr.s.CreateInvoice(context.Background(), tr.invoice("1500.00"))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_Invoice_CrossOrganizationHidden(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, false)

	inv := tr.invoice("100.00")
	inv.OrganizationID = uuid.Must(uuid.NewV4())

	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)

	// Another organization's invoice looks exactly like a missing one.
	_, err := tr.s.Invoice(tr.ctx, inv.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_VoidInvoice_AlreadyVoided(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	inv := tr.invoice("100.00")
	inv.Status = entity.InvoiceStatusVoided

	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)

	_, err := tr.s.VoidInvoice(tr.ctx, inv.ID)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_RequestApproval_ResolvesApprover(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	inv := tr.invoice("3000.00")
	approver := uuid.Must(uuid.NewV4())
	snapshot := decimal.RequireFromString("3000.00")

	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)
	tr.directory.EXPECT().ApproverCandidates(tr.ctx, tr.user.OrganizationID, tr.role.ReportLevel).
		Return([]entity.ApproverCandidate{
			{
				Role: entity.UserRole{ID: uuid.Must(uuid.NewV4()), ReportLevel: 2},
				Access: entity.AccessControl{
					MaxApprovalAmount: decimal.RequireFromString("5000.00"),
					CanWriteInvoices:  true,
				},
				Members: []uuid.UUID{approver},
			},
		}, nil)
	tr.approvals.EXPECT().CreateApprovalRequest(tr.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req entity.ApprovalRequest) (entity.ApprovalRequest, error) {
			require.Equal(t, inv.ID, req.InvoiceID)
			require.Equal(t, approver, req.ApproverID)
			require.Equal(t, entity.ApprovalStatusPending, req.Status)

			req.Amount = snapshot

			return req, nil
		})
	tr.producer.EXPECT().SendApprovalRequested(tr.ctx, gomock.Any(), inv.ID, approver)

	req, err := tr.s.RequestApproval(tr.ctx, inv.ID, "please approve", nil)
	require.NoError(t, err)
	require.Equal(t, approver, req.ApproverID)
	require.True(t, req.Amount.Equal(snapshot))
}

func TestService_RequestApproval_ExplicitApprover(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	inv := tr.invoice("3000.00")
	approver := uuid.Must(uuid.NewV4())

	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)
	// No ApproverCandidates call: the caller named the approver.
	tr.approvals.EXPECT().CreateApprovalRequest(tr.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req entity.ApprovalRequest) (entity.ApprovalRequest, error) {
			return req, nil
		})
	tr.producer.EXPECT().SendApprovalRequested(tr.ctx, gomock.Any(), inv.ID, approver)

	req, err := tr.s.RequestApproval(tr.ctx, inv.ID, "", &approver)
	require.NoError(t, err)
	require.Equal(t, approver, req.ApproverID)
}

func TestService_RequestApproval_NoEligibleApprover(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	inv := tr.invoice("3000.00")

	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)
	tr.directory.EXPECT().ApproverCandidates(tr.ctx, tr.user.OrganizationID, tr.role.ReportLevel).
		Return(nil, nil)

	_, err := tr.s.RequestApproval(tr.ctx, inv.ID, "", nil)
	require.ErrorIs(t, err, entity.ErrNoEligibleApprover)
}

func TestService_DecideApproval(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	inv := tr.invoice("3000.00")
	requestID := uuid.Must(uuid.NewV4())

	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)
	tr.approvals.EXPECT().DecideApprovalRequest(tr.ctx, requestID, inv.ID, entity.ApprovalStatusApproved, gomock.Any()).
		Return(entity.ApprovalRequest{
			ID:        requestID,
			InvoiceID: inv.ID,
			Status:    entity.ApprovalStatusApproved,
		}, nil)
	tr.producer.EXPECT().SendApprovalDecided(tr.ctx, requestID, inv.ID, entity.ApprovalStatusApproved)

	req, err := tr.s.DecideApproval(tr.ctx, requestID, inv.ID, entity.ApprovalStatusApproved)
	require.NoError(t, err)
	require.Equal(t, entity.ApprovalStatusApproved, req.Status)
}

func TestService_DecideApproval_InvalidDecision(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	for _, decision := range []entity.ApprovalStatus{entity.ApprovalStatusPending, entity.ApprovalStatusExpired, "YES"} {
		tr.expectRole(true, true)

		_, err := tr.s.DecideApproval(tr.ctx, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), decision)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	}
}

func TestService_DecideApproval_Conflict(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, true)

	inv := tr.invoice("3000.00")
	requestID := uuid.Must(uuid.NewV4())

	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)
	tr.approvals.EXPECT().DecideApprovalRequest(tr.ctx, requestID, inv.ID, entity.ApprovalStatusRejected, gomock.Any()).
		Return(entity.ApprovalRequest{}, entity.ErrConflict)

	_, err := tr.s.DecideApproval(tr.ctx, requestID, inv.ID, entity.ApprovalStatusRejected)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_ApprovalRequest_CrossOrganizationHidden(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectRole(true, false)

	inv := tr.invoice("100.00")
	inv.OrganizationID = uuid.Must(uuid.NewV4())

	req := entity.ApprovalRequest{
		ID:        uuid.Must(uuid.NewV4()),
		InvoiceID: inv.ID,
		Status:    entity.ApprovalStatusPending,
	}

	tr.approvals.EXPECT().ApprovalRequest(tr.ctx, req.ID).Return(req, nil)
	tr.invoices.EXPECT().Invoice(tr.ctx, inv.ID).Return(inv, nil)

	_, err := tr.s.ApprovalRequest(tr.ctx, req.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_ExpireStaleRequests(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	tr.approvals.EXPECT().ExpireApprovalRequests(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createdBefore time.Time) (int64, error) {
			require.WithinDuration(t, time.Now().Add(-requestTTL), createdBefore, time.Minute)
			return 3, nil
		})

	err := tr.s.ExpireStaleRequests(context.Background())
	require.NoError(t, err)
}
