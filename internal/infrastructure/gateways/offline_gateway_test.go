package gateways

import (
	"context"
	"testing"

	"payflow/internal/domain/entities"
)

func TestOfflineGateway_Settle(t *testing.T) {
	g := NewOfflineGateway()

	t.Run("capture without interaction settles immediately", func(t *testing.T) {
		p := &entities.Payment{ID: "pay-1", Details: map[string]any{"transaction_amount": 10.0}}
		reply, err := g.Execute(context.Background(), &entities.ActionRequest{Kind: entities.ActionCapture, Payment: p})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != nil {
			t.Fatalf("expected no interrupt, got %+v", reply)
		}
		if p.Status != entities.PaymentStatusCaptured || p.Detail("status") != "captured" {
			t.Fatalf("expected captured, got status=%q details=%+v", p.Status, p.Details)
		}
	})

	t.Run("interactive payment interrupts once then settles", func(t *testing.T) {
		p := &entities.Payment{ID: "pay-1", Details: map[string]any{
			"interactive":  true,
			"checkout_url": "https://gateway/pay",
		}}

		reply, err := g.Execute(context.Background(), &entities.ActionRequest{Kind: entities.ActionCapture, Payment: p})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply == nil || reply.Kind != entities.ReplyRedirect || reply.URL != "https://gateway/pay" {
			t.Fatalf("expected redirect interrupt, got %+v", reply)
		}
		if p.Status == entities.PaymentStatusCaptured {
			t.Fatalf("payment must not settle while suspended")
		}

		reply, err = g.Execute(context.Background(), &entities.ActionRequest{Kind: entities.ActionCapture, Payment: p})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != nil {
			t.Fatalf("expected the resumed call to settle, got %+v", reply)
		}
		if p.Status != entities.PaymentStatusCaptured {
			t.Fatalf("expected captured after resume, got %q", p.Status)
		}
	})

	t.Run("interactive payment without checkout url renders", func(t *testing.T) {
		p := &entities.Payment{ID: "pay-1", Details: map[string]any{"interactive": "true"}}
		reply, err := g.Execute(context.Background(), &entities.ActionRequest{Kind: entities.ActionAuthorize, Payment: p})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply == nil || reply.Kind != entities.ReplyRender || reply.Body == "" {
			t.Fatalf("expected render interrupt, got %+v", reply)
		}
	})

	t.Run("each settle kind maps to its status", func(t *testing.T) {
		cases := map[entities.ActionKind]entities.PaymentStatus{
			entities.ActionAuthorize: entities.PaymentStatusAuthorized,
			entities.ActionPayout:    entities.PaymentStatusPayedout,
			entities.ActionRefund:    entities.PaymentStatusRefunded,
			entities.ActionCancel:    entities.PaymentStatusCanceled,
		}
		for kind, want := range cases {
			p := &entities.Payment{ID: "pay-1"}
			if _, err := g.Execute(context.Background(), &entities.ActionRequest{Kind: kind, Payment: p}); err != nil {
				t.Fatalf("kind %q: unexpected error: %v", kind, err)
			}
			if p.Status != want {
				t.Fatalf("kind %q: expected %q, got %q", kind, want, p.Status)
			}
		}
	})

	t.Run("missing payment", func(t *testing.T) {
		if _, err := g.Execute(context.Background(), &entities.ActionRequest{Kind: entities.ActionCapture}); err == nil {
			t.Fatalf("expected an error for a settle without a payment")
		}
	})
}

func TestOfflineGateway_Convert(t *testing.T) {
	g := NewOfflineGateway()

	t.Run("copies details and resolves a status", func(t *testing.T) {
		p := &entities.Payment{ID: "pay-1", Details: map[string]any{"transaction_amount": 10.0}}
		req := &entities.ActionRequest{Kind: entities.ActionConvert, Payment: p, ConvertTo: "array"}
		if _, err := g.Execute(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Result["transaction_amount"] != 10.0 {
			t.Fatalf("expected details in the result, got %+v", req.Result)
		}
		if req.Result["status"] != "new" {
			t.Fatalf("expected resolved status, got %+v", req.Result)
		}
	})

	t.Run("rejects unknown conversion targets", func(t *testing.T) {
		req := &entities.ActionRequest{Kind: entities.ActionConvert, ConvertTo: "xml"}
		if _, err := g.Execute(context.Background(), req); err == nil {
			t.Fatalf("expected an error for an xml conversion")
		}
	})
}

func TestOfflineGateway_Status(t *testing.T) {
	g := NewOfflineGateway()

	t.Run("status detail wins over the stored status", func(t *testing.T) {
		p := &entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending, Details: map[string]any{"status": "captured"}}
		req := &entities.ActionRequest{Kind: entities.ActionStatus, Payment: p}
		if _, err := g.Execute(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != entities.PaymentStatusCaptured {
			t.Fatalf("expected captured, got %q", req.Status)
		}
	})

	t.Run("falls back to the stored status then new", func(t *testing.T) {
		req := &entities.ActionRequest{Kind: entities.ActionStatus, Payment: &entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending}}
		if _, err := g.Execute(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %q", req.Status)
		}

		req = &entities.ActionRequest{Kind: entities.ActionStatus, Payment: &entities.Payment{ID: "pay-1"}}
		if _, err := g.Execute(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != entities.PaymentStatusNew {
			t.Fatalf("expected new, got %q", req.Status)
		}
	})
}

func TestOfflineGateway_NotifyAndSync(t *testing.T) {
	g := NewOfflineGateway()
	for _, kind := range []entities.ActionKind{entities.ActionNotify, entities.ActionSync} {
		reply, err := g.Execute(context.Background(), &entities.ActionRequest{Kind: kind, Payment: &entities.Payment{ID: "pay-1"}})
		if err != nil || reply != nil {
			t.Fatalf("kind %q: expected a silent no-op, got reply=%+v err=%v", kind, reply, err)
		}
	}
}
