package response

import (
	"time"

	"payflow/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID string         `json:"payment_id"`
	Status    string         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func FromPayment(p *entities.Payment) PaymentResponse {
	if p == nil {
		return PaymentResponse{}
	}
	return PaymentResponse{
		PaymentID: p.ID,
		Status:    string(p.Status),
		Details:   p.Details,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// DoneResponse is what the default done resolution renders: the gateway's
// human status next to the payment it belongs to.
type DoneResponse struct {
	Status  string          `json:"status"`
	Payment PaymentResponse `json:"payment"`
}

func FromDone(status entities.PaymentStatus, p *entities.Payment) DoneResponse {
	return DoneResponse{
		Status:  string(status),
		Payment: FromPayment(p),
	}
}
