package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/approval/internal/entity"
)

// @title Invoice Approval API
// @version 1.0
// @description Invoice approval requests with organization-directory approver routing
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, filter entity.InvoiceFilter) ([]entity.Invoice, int, error)
	VoidInvoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	RequestApproval(ctx context.Context, invoiceID uuid.UUID, note string, approverID *uuid.UUID) (entity.ApprovalRequest, error)
	DecideApproval(ctx context.Context, requestID, invoiceID uuid.UUID, decision entity.ApprovalStatus) (entity.ApprovalRequest, error)
	ApprovalRequest(ctx context.Context, id uuid.UUID) (entity.ApprovalRequest, error)
	ApprovalRequestsForInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.ApprovalRequest, error)
	ExpireStaleRequests(ctx context.Context) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// sendDomainErr maps domain sentinels to HTTP codes. ErrUnavailable maps to
// 503 so callers know the request is safe to retry; everything else will
// not succeed without changed input.
func sendDomainErr(ctx context.Context, w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "not found")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "forbidden")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "unauthenticated")
	case errors.Is(err, entity.ErrConflict):
		SendJSONErr(ctx, w, http.StatusConflict, err, "conflict")
	case errors.Is(err, entity.ErrNoEligibleApprover):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "no eligible approver")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "invalid argument")
	case errors.Is(err, entity.ErrUnavailable):
		SendJSONErr(ctx, w, http.StatusServiceUnavailable, err, "temporarily unavailable, retry later")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, fallbackMsg)
	}
}

type CreateInvoiceRequest struct {
	InvoiceNum      string          `json:"invoiceNum"`
	Amount          decimal.Decimal `json:"amount"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	DueDate         time.Time       `json:"dueDate"`
	PDFURL          string          `json:"pdfUrl"`
	Status          string          `json:"status"`
	OrganizationID  uuid.UUID       `json:"organizationId"`
	AccountID       uuid.UUID       `json:"accountId"`
	PaymentMethodID uuid.UUID       `json:"paymentMethodId"`
}

type InvoiceEntity struct {
	ID              string    `json:"id"`
	InvoiceNum      string    `json:"invoiceNum"`
	Amount          string    `json:"amount"`
	InvoiceDate     time.Time `json:"invoiceDate"`
	DueDate         time.Time `json:"dueDate"`
	PDFURL          string    `json:"pdfUrl,omitempty"`
	Status          string    `json:"status"`
	OrganizationID  string    `json:"organizationId"`
	AccountID       string    `json:"accountId"`
	PaymentMethodID string    `json:"paymentMethodId"`
	CreatedBy       string    `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateInvoice creates an invoice
// @Summary Create invoice
// @Description Creates an invoice in the caller's organization
// @Tags invoices
// @Accept json
// @Produce json
// @Param CreateInvoiceRequest body CreateInvoiceRequest true "Invoice creation request"
// @Success 201 {object} InvoiceEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 403 {object} ErrorResponse "Caller role lacks invoice write permission"
// @Failure 422 {object} ErrorResponse "Invalid amount or status"
// @Failure 500 {object} ErrorResponse "Failed to create invoice"
// @Router /approvals/invoices [post]
// @Security BearerAuth
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	inv, err := h.s.CreateInvoice(ctx, entity.Invoice{
		InvoiceNum:      req.InvoiceNum,
		Amount:          req.Amount,
		InvoiceDate:     req.InvoiceDate,
		DueDate:         req.DueDate,
		PDFURL:          req.PDFURL,
		Status:          entity.InvoiceStatus(req.Status),
		OrganizationID:  req.OrganizationID,
		AccountID:       req.AccountID,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, invoiceToAPI(inv))
}

// Invoice returns a single invoice
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID (UUID)"
// @Success 200 {object} InvoiceEntity
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /approvals/invoices/{invoice_id} [get]
// @Security BearerAuth
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "invoice_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'invoice_id' must be a UUID")
		return
	}

	inv, err := h.s.Invoice(ctx, id)
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to get invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(inv))
}

type InvoicesResponse struct {
	Invoices   []InvoiceEntity `json:"invoices"`
	TotalCount int             `json:"totalCount"`
}

// Invoices lists the caller's organization invoices
// @Summary List invoices
// @Description Lists invoices with filtering, sorting and pagination
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by invoice status"
// @Param createdAt query string false "Filter by creation date (YYYY-MM-DD, inclusive lower bound)"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (invoice_num, amount, due_date, created_at)"
// @Param orderBy query string false "asc or desc"
// @Success 200 {object} InvoicesResponse
// @Failure 500 {object} ErrorResponse "Failed to list invoices"
// @Router /approvals/invoices [get]
// @Security BearerAuth
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := parseInvoiceFilter(r.URL.Query())

	invoices, totalCount, err := h.s.Invoices(ctx, filter)
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to list invoices")
		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoicesResponse{
		Invoices:   invoicesToAPI(invoices),
		TotalCount: totalCount,
	})
}

// VoidInvoice voids an invoice
// @Summary Void invoice
// @Description Marks an invoice VOIDED. Invoices are never deleted.
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID (UUID)"
// @Success 200 {object} InvoiceEntity
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice is already voided"
// @Router /approvals/invoices/{invoice_id}/void [post]
// @Security BearerAuth
func (h *Handler) VoidInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "invoice_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'invoice_id' must be a UUID")
		return
	}

	inv, err := h.s.VoidInvoice(ctx, id)
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to void invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceToAPI(inv))
}

type RequestApprovalRequest struct {
	InvoiceID       uuid.UUID  `json:"invoiceId"`
	Note            string     `json:"note"`
	ApprovingUserID *uuid.UUID `json:"approvingUserId,omitempty"`
}

type ApprovalRequestEntity struct {
	ID          string     `json:"id"`
	InvoiceID   string     `json:"invoiceId"`
	Amount      string     `json:"amount"`
	Note        string     `json:"note,omitempty"`
	RequestedBy string     `json:"requestedBy"`
	ApproverID  string     `json:"approverId"`
	Status      string     `json:"status"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// RequestApproval opens an approval cycle for an invoice
// @Summary Request invoice approval
// @Description Creates an approval request. Without approvingUserId the approver is resolved from the organization directory: the least-privileged role senior to the requester whose authorization ceiling covers the invoice amount.
// @Tags approvals
// @Accept json
// @Produce json
// @Param RequestApprovalRequest body RequestApprovalRequest true "Approval request"
// @Success 201 {object} ApprovalRequestEntity
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 422 {object} ErrorResponse "No eligible approver"
// @Router /approvals/requests [post]
// @Security BearerAuth
func (h *Handler) RequestApproval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RequestApprovalRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	if req.InvoiceID == uuid.Nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "invoiceId is required")
		return
	}

	ar, err := h.s.RequestApproval(ctx, req.InvoiceID, req.Note, req.ApprovingUserID)
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to request approval")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, requestToAPI(ar))
}

type DecideApprovalRequest struct {
	InvoiceID uuid.UUID `json:"invoiceId"`
	Status    string    `json:"status"`
}

// DecideApproval records an approval decision
// @Summary Decide approval request
// @Description Writes APPROVED, PARTIALLY_APPROVED or REJECTED on a pending request. The request is looked up by the (request, invoice) id pair. A decided request is immutable; racing or repeated decisions get 409.
// @Tags approvals
// @Accept json
// @Produce json
// @Param request_id path string true "Approval request ID (UUID)"
// @Param DecideApprovalRequest body DecideApprovalRequest true "Decision"
// @Success 200 {object} ApprovalRequestEntity
// @Failure 404 {object} ErrorResponse "Request/invoice pair not found"
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Failure 422 {object} ErrorResponse "Invalid decision status"
// @Router /approvals/requests/{request_id}/decision [post]
// @Security BearerAuth
func (h *Handler) DecideApproval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID, err := uuid.FromString(chi.URLParam(r, "request_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'request_id' must be a UUID")
		return
	}

	var req DecideApprovalRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	ar, err := h.s.DecideApproval(ctx, requestID, req.InvoiceID, entity.ApprovalStatus(req.Status))
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to decide approval request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, requestToAPI(ar))
}

// ApprovalRequest returns a single approval request
// @Summary Get approval request
// @Tags approvals
// @Produce json
// @Param request_id path string true "Approval request ID (UUID)"
// @Success 200 {object} ApprovalRequestEntity
// @Failure 404 {object} ErrorResponse "Request not found"
// @Router /approvals/requests/{request_id} [get]
// @Security BearerAuth
func (h *Handler) ApprovalRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "request_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'request_id' must be a UUID")
		return
	}

	ar, err := h.s.ApprovalRequest(ctx, id)
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to get approval request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, requestToAPI(ar))
}

type InvoiceRequestsResponse struct {
	Requests []ApprovalRequestEntity `json:"requests"`
}

// InvoiceRequests returns the approval history of an invoice
// @Summary List approval requests for invoice
// @Tags approvals
// @Produce json
// @Param invoice_id path string true "Invoice ID (UUID)"
// @Success 200 {object} InvoiceRequestsResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /approvals/invoices/{invoice_id}/requests [get]
// @Security BearerAuth
func (h *Handler) InvoiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "invoice_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'invoice_id' must be a UUID")
		return
	}

	reqs, err := h.s.ApprovalRequestsForInvoice(ctx, id)
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to list approval requests")
		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoiceRequestsResponse{Requests: requestsToAPI(reqs)})
}

type ExpireRequestsResponse struct{}

// ExpireRequests triggers the stale-request sweep out of schedule
// @Summary Expire stale approval requests
// @Tags internal
// @Produce json
// @Success 200 {object} ExpireRequestsResponse
// @Failure 500 {object} ErrorResponse "Sweep failed"
// @Router /internal/requests/expire [post]
// @Security ApiKeyAuth
func (h *Handler) ExpireRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.ExpireStaleRequests(ctx)
	if err != nil {
		sendDomainErr(ctx, w, err, "failed to expire stale requests")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ExpireRequestsResponse{})
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "service is not healthy")
		return
	}
}

func parseInvoiceFilter(url url.Values) entity.InvoiceFilter {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	status := url.Get("status")
	createdAt := url.Get("createdAt")
	qLimit := url.Get("limit")
	qPage := url.Get("page")
	sortBy := entity.InvoiceSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	limit, err := strconv.ParseUint(qLimit, 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	// page is 1-based; 0 would underflow the repository's offset math.
	page, err := strconv.ParseUint(qPage, 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	if !sortBy.IsValid() {
		sortBy = entity.SortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.InvoiceFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if status != "" {
		filter.Status = &status
	}

	if createdAt != "" {
		filter.CreatedAt = &createdAt
	}

	return filter
}

func invoiceToAPI(inv entity.Invoice) InvoiceEntity {
	return InvoiceEntity{
		ID:              inv.ID.String(),
		InvoiceNum:      inv.InvoiceNum,
		Amount:          inv.Amount.String(),
		InvoiceDate:     inv.InvoiceDate,
		DueDate:         inv.DueDate,
		PDFURL:          inv.PDFURL,
		Status:          inv.Status.String(),
		OrganizationID:  inv.OrganizationID.String(),
		AccountID:       inv.AccountID.String(),
		PaymentMethodID: inv.PaymentMethodID.String(),
		CreatedBy:       inv.CreatedBy.String(),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func invoicesToAPI(invoices []entity.Invoice) []InvoiceEntity {
	res := make([]InvoiceEntity, 0, len(invoices))
	for _, inv := range invoices {
		res = append(res, invoiceToAPI(inv))
	}

	return res
}

func requestToAPI(req entity.ApprovalRequest) ApprovalRequestEntity {
	return ApprovalRequestEntity{
		ID:          req.ID.String(),
		InvoiceID:   req.InvoiceID.String(),
		Amount:      req.Amount.String(),
		Note:        req.Note,
		RequestedBy: req.RequestedBy.String(),
		ApproverID:  req.ApproverID.String(),
		Status:      req.Status.String(),
		DecidedAt:   req.DecidedAt,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}

func requestsToAPI(reqs []entity.ApprovalRequest) []ApprovalRequestEntity {
	res := make([]ApprovalRequestEntity, 0, len(reqs))
	for _, req := range reqs {
		res = append(res, requestToAPI(req))
	}

	return res
}
