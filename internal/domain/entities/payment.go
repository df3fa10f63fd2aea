package entities

import (
	"time"
)

// PaymentStatus is the human-readable status a gateway reports for a payment.
//
// The set mirrors the action protocol: a payment starts as "new" and moves to
// one of the terminal statuses once the gateway executed the matching action.

type PaymentStatus string

const (
	PaymentStatusNew        PaymentStatus = "new"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusPayedout   PaymentStatus = "payedout"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusCanceled   PaymentStatus = "canceled"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusUnknown    PaymentStatus = "unknown"
)

// Payment is one payment attempt persisted by the flow service.
//
// Details is gateway-opaque: setup closures and gateway drivers write into it,
// the orchestrator itself never does. The associated gateway is carried by the
// token, not by the payment.
//
// Storage model (DynamoDB):
//   - PK: id

type Payment struct {
	ID        string         `json:"id"`
	Status    PaymentStatus  `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Detail returns the string form of a details entry, or "" when absent.
func (p *Payment) Detail(key string) string {
	if p == nil || p.Details == nil {
		return ""
	}
	v, ok := p.Details[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// SetDetail writes one details entry, allocating the map on first use.
func (p *Payment) SetDetail(key string, value any) {
	if p.Details == nil {
		p.Details = map[string]any{}
	}
	p.Details[key] = value
}
