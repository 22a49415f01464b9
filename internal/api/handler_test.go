package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/approval/internal/api"
	"github.com/samandr77/approval/internal/entity"
	"github.com/samandr77/approval/internal/mocks"
)

const testToken = "dev-token"

type tester struct {
	server  *httptest.Server
	service *mocks.MockService
	auth    *mocks.MockAuthService
	user    entity.User
}

func newTester(t *testing.T) tester {
	t.Helper()

	ctrl := gomock.NewController(t)

	tr := tester{
		service: mocks.NewMockService(ctrl),
		auth:    mocks.NewMockAuthService(ctrl),
		user: entity.User{
			ID:             uuid.Must(uuid.NewV4()),
			OrganizationID: uuid.Must(uuid.NewV4()),
			RoleID:         uuid.Must(uuid.NewV4()),
		},
	}

	handler := api.NewHandler(tr.service)
	mw := api.NewMiddleware(tr.auth, true, "secret")

	tr.server = httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(tr.server.Close)

	return tr
}

// expectAuth makes the next authenticated request pass bearer auth.
func (tr tester) expectAuth() {
	tr.auth.EXPECT().User(gomock.Any(), testToken).Return(tr.user, nil)
}

func (tr tester) do(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, tr.server.URL+path, &buf)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	resp := tr.do(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_MissingBearerToken(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	resp := tr.do(t, http.MethodGet, "/api/approvals/invoices", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_InvalidToken(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.auth.EXPECT().User(gomock.Any(), testToken).
		Return(entity.User{}, fmt.Errorf("%w: bad token", entity.ErrForbidden))

	resp := tr.do(t, http.MethodGet, "/api/approvals/invoices", nil, testToken)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	inv := entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		InvoiceNum:     "INV-42",
		Amount:         decimal.RequireFromString("1500.00"),
		Status:         entity.InvoiceStatusUnpaid,
		OrganizationID: tr.user.OrganizationID,
		CreatedBy:      tr.user.ID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	tr.service.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(inv, nil)

	resp := tr.do(t, http.MethodPost, "/api/approvals/invoices", api.CreateInvoiceRequest{
		InvoiceNum:     "INV-42",
		Amount:         decimal.RequireFromString("1500.00"),
		Status:         "UNPAID",
		OrganizationID: tr.user.OrganizationID,
	}, testToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.InvoiceEntity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, inv.ID.String(), got.ID)
	require.Equal(t, "1500", got.Amount)
}

func TestHandler_CreateInvoice_InvalidJSON(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	req, err := http.NewRequest(http.MethodPost, tr.server.URL+"/api/approvals/invoices", bytes.NewBufferString("{"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Invoice_NotFound(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	id := uuid.Must(uuid.NewV4())
	tr.service.EXPECT().Invoice(gomock.Any(), id).
		Return(entity.Invoice{}, fmt.Errorf("%w: invoice %s", entity.ErrNotFound, id))

	resp := tr.do(t, http.MethodGet, "/api/approvals/invoices/"+id.String(), nil, testToken)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Invoice_BadID(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	resp := tr.do(t, http.MethodGet, "/api/approvals/invoices/not-a-uuid", nil, testToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Invoices_FilterDefaults(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	tr.service.EXPECT().Invoices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
			require.Equal(t, uint64(10), filter.Limit)
			require.Equal(t, uint64(1), filter.Page)
			require.Equal(t, entity.SortByCreatedAt, filter.SortBy)
			require.Equal(t, entity.DESC, filter.OrderBy)
			require.Nil(t, filter.Status)
			return nil, 0, nil
		})

	resp := tr.do(t, http.MethodGet, "/api/approvals/invoices", nil, testToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Invoices_FilterParsing(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	tr.service.EXPECT().Invoices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
			require.Equal(t, uint64(25), filter.Limit)
			require.Equal(t, uint64(3), filter.Page)
			require.Equal(t, entity.SortByAmount, filter.SortBy)
			require.Equal(t, entity.ASC, filter.OrderBy)
			require.NotNil(t, filter.Status)
			require.Equal(t, "UNPAID", *filter.Status)
			return nil, 0, nil
		})

	resp := tr.do(t, http.MethodGet,
		"/api/approvals/invoices?limit=25&page=3&sortBy=amount&orderBy=asc&status=UNPAID", nil, testToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Invoices_PageZeroClampedToFirst(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	tr.service.EXPECT().Invoices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error) {
			require.Equal(t, uint64(1), filter.Page)
			return nil, 0, nil
		})

	resp := tr.do(t, http.MethodGet, "/api/approvals/invoices?page=0", nil, testToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_VoidInvoice_Conflict(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	id := uuid.Must(uuid.NewV4())
	tr.service.EXPECT().VoidInvoice(gomock.Any(), id).
		Return(entity.Invoice{}, fmt.Errorf("%w: invoice %s is already voided", entity.ErrConflict, id))

	resp := tr.do(t, http.MethodPost, "/api/approvals/invoices/"+id.String()+"/void", nil, testToken)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_RequestApproval(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	invoiceID := uuid.Must(uuid.NewV4())
	approver := uuid.Must(uuid.NewV4())

	tr.service.EXPECT().RequestApproval(gomock.Any(), invoiceID, "urgent", nil).
		Return(entity.ApprovalRequest{
			ID:          uuid.Must(uuid.NewV4()),
			InvoiceID:   invoiceID,
			Amount:      decimal.RequireFromString("3000.00"),
			Note:        "urgent",
			RequestedBy: tr.user.ID,
			ApproverID:  approver,
			Status:      entity.ApprovalStatusPending,
		}, nil)

	resp := tr.do(t, http.MethodPost, "/api/approvals/requests", api.RequestApprovalRequest{
		InvoiceID: invoiceID,
		Note:      "urgent",
	}, testToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.ApprovalRequestEntity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, approver, uuid.FromStringOrNil(got.ApproverID))
	require.Equal(t, "PENDING", got.Status)
}

func TestHandler_RequestApproval_NoEligibleApprover(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	invoiceID := uuid.Must(uuid.NewV4())

	tr.service.EXPECT().RequestApproval(gomock.Any(), invoiceID, "", nil).
		Return(entity.ApprovalRequest{}, fmt.Errorf("resolve: %w", entity.ErrNoEligibleApprover))

	resp := tr.do(t, http.MethodPost, "/api/approvals/requests", api.RequestApprovalRequest{
		InvoiceID: invoiceID,
	}, testToken)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_RequestApproval_MissingInvoiceID(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	resp := tr.do(t, http.MethodPost, "/api/approvals/requests", api.RequestApprovalRequest{}, testToken)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_DecideApproval(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	requestID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())

	tr.service.EXPECT().DecideApproval(gomock.Any(), requestID, invoiceID, entity.ApprovalStatusApproved).
		Return(entity.ApprovalRequest{
			ID:        requestID,
			InvoiceID: invoiceID,
			Status:    entity.ApprovalStatusApproved,
		}, nil)

	resp := tr.do(t, http.MethodPost, "/api/approvals/requests/"+requestID.String()+"/decision",
		api.DecideApprovalRequest{InvoiceID: invoiceID, Status: "APPROVED"}, testToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_DecideApproval_Conflict(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	requestID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())

	tr.service.EXPECT().DecideApproval(gomock.Any(), requestID, invoiceID, entity.ApprovalStatusRejected).
		Return(entity.ApprovalRequest{}, fmt.Errorf("%w: already decided", entity.ErrConflict))

	resp := tr.do(t, http.MethodPost, "/api/approvals/requests/"+requestID.String()+"/decision",
		api.DecideApprovalRequest{InvoiceID: invoiceID, Status: "REJECTED"}, testToken)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_ApprovalRequest_Forbidden(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	id := uuid.Must(uuid.NewV4())
	tr.service.EXPECT().ApprovalRequest(gomock.Any(), id).
		Return(entity.ApprovalRequest{}, fmt.Errorf("%w: role lacks permission", entity.ErrForbidden))

	resp := tr.do(t, http.MethodGet, "/api/approvals/requests/"+id.String(), nil, testToken)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_InvoiceRequests_Unavailable(t *testing.T) {
	t.Parallel()

	tr := newTester(t)
	tr.expectAuth()

	id := uuid.Must(uuid.NewV4())
	tr.service.EXPECT().ApprovalRequestsForInvoice(gomock.Any(), id).
		Return(nil, fmt.Errorf("%w: storage timeout", entity.ErrUnavailable))

	resp := tr.do(t, http.MethodGet, "/api/approvals/invoices/"+id.String()+"/requests", nil, testToken)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandler_ExpireRequests_APIKey(t *testing.T) {
	t.Parallel()

	tr := newTester(t)

	// No key at all.
	resp := tr.do(t, http.MethodPost, "/api/internal/requests/expire", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong key.
	req, err := http.NewRequest(http.MethodPost, tr.server.URL+"/api/internal/requests/expire", nil)
	require.NoError(t, err)
	req.Header.Set("X-Api-Key", "wrong")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Right key.
	tr.service.EXPECT().ExpireStaleRequests(gomock.Any()).Return(nil)

	req, err = http.NewRequest(http.MethodPost, tr.server.URL+"/api/internal/requests/expire", nil)
	require.NoError(t, err)
	req.Header.Set("X-Api-Key", "secret")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
