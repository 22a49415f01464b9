package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid           InvoiceStatus = "UNPAID"
	InvoiceStatusProcessing       InvoiceStatus = "PROCESSING"
	InvoiceStatusDisputed         InvoiceStatus = "DISPUTED"
	InvoiceStatusFinancingPending InvoiceStatus = "FINANCING_PENDING"
	InvoiceStatusOnPaymentPlan    InvoiceStatus = "ON_PAYMENT_PLAN"
	InvoiceStatusPartiallyPaid    InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusFullyPaid        InvoiceStatus = "FULLY_PAID"
	InvoiceStatusVoided           InvoiceStatus = "VOIDED"
)

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusProcessing, InvoiceStatusDisputed,
		InvoiceStatusFinancingPending, InvoiceStatusOnPaymentPlan,
		InvoiceStatusPartiallyPaid, InvoiceStatusFullyPaid, InvoiceStatusVoided:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice status %q", ErrInvalidArgument, string(s))
	}
}

func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoices are never deleted. Voiding is the terminal retirement path.
type Invoice struct {
	ID              uuid.UUID
	InvoiceNum      string
	Amount          decimal.Decimal
	InvoiceDate     time.Time
	DueDate         time.Time
	PDFURL          string
	Status          InvoiceStatus
	OrganizationID  uuid.UUID
	AccountID       uuid.UUID
	PaymentMethodID uuid.UUID
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type InvoiceFilter struct {
	Status    *string
	CreatedAt *string
	Page      uint64
	Limit     uint64
	SortBy    InvoiceSortCol
	OrderBy   OrderByCol
}

type InvoiceSortCol string

func (c InvoiceSortCol) String() string {
	return string(c)
}

const (
	SortByInvoiceNum InvoiceSortCol = "invoice_num"
	SortByAmount     InvoiceSortCol = "amount"
	SortByDueDate    InvoiceSortCol = "due_date"
	SortByCreatedAt  InvoiceSortCol = "created_at"
)

func (c InvoiceSortCol) IsValid() bool {
	switch c {
	case SortByInvoiceNum, SortByAmount, SortByDueDate, SortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
