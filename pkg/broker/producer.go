package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/samandr77/approval/internal/entity"
)

// Producer publishes approval lifecycle events. Delivery is best effort:
// the writer is async and failures are logged, never surfaced to the
// decision path.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type InvoiceCreatedEvent struct {
	Type           string `json:"type"`
	InvoiceID      string `json:"invoiceId"`
	OrganizationID string `json:"organizationId"`
	Amount         string `json:"amount"`
}

func (p *Producer) SendInvoiceCreated(ctx context.Context, invoiceID, orgID uuid.UUID, amount decimal.Decimal) {
	p.send(ctx, invoiceID.String(), InvoiceCreatedEvent{
		Type:           "invoice.created",
		InvoiceID:      invoiceID.String(),
		OrganizationID: orgID.String(),
		Amount:         amount.String(),
	})
}

type ApprovalRequestedEvent struct {
	Type       string `json:"type"`
	RequestID  string `json:"requestId"`
	InvoiceID  string `json:"invoiceId"`
	ApproverID string `json:"approverId"`
}

func (p *Producer) SendApprovalRequested(ctx context.Context, requestID, invoiceID, approverID uuid.UUID) {
	p.send(ctx, invoiceID.String(), ApprovalRequestedEvent{
		Type:       "approval.requested",
		RequestID:  requestID.String(),
		InvoiceID:  invoiceID.String(),
		ApproverID: approverID.String(),
	})
}

type ApprovalDecidedEvent struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	InvoiceID string `json:"invoiceId"`
	Status    string `json:"status"`
}

func (p *Producer) SendApprovalDecided(ctx context.Context, requestID, invoiceID uuid.UUID, status entity.ApprovalStatus) {
	p.send(ctx, invoiceID.String(), ApprovalDecidedEvent{
		Type:      "approval.decided",
		RequestID: requestID.String(),
		InvoiceID: invoiceID.String(),
		Status:    status.String(),
	})
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
