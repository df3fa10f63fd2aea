package response

import (
	"testing"
	"time"

	"payflow/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	if got := FromPayment(nil); got.PaymentID != "" {
		t.Fatalf("expected zero response for nil payment, got %+v", got)
	}

	now := time.Now().UTC()
	p := &entities.Payment{
		ID:        "pay-1",
		Status:    entities.PaymentStatusCaptured,
		Details:   map[string]any{"transaction_amount": 10.0},
		CreatedAt: now,
		UpdatedAt: now,
	}
	got := FromPayment(p)
	if got.PaymentID != "pay-1" || got.Status != "captured" {
		t.Fatalf("unexpected response %+v", got)
	}
	if got.Details["transaction_amount"] != 10.0 {
		t.Fatalf("details lost: %+v", got.Details)
	}
}

func TestFromDone(t *testing.T) {
	got := FromDone(entities.PaymentStatusUnknown, &entities.Payment{ID: "pay-1"})
	if got.Status != "unknown" || got.Payment.PaymentID != "pay-1" {
		t.Fatalf("unexpected response %+v", got)
	}
}
