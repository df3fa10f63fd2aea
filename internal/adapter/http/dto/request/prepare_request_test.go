package request

import (
	"errors"
	"testing"
)

func TestPrepareRequest_ResolveDetails(t *testing.T) {
	r := PrepareRequest{
		Amount:      150.5,
		Currency:    "brl",
		Description: "order 42",
		Details:     map[string]any{"payment_method_id": "pix", "transaction_amount": 1.0},
	}

	details := r.ResolveDetails()
	if details["transaction_amount"] != 150.5 {
		t.Fatalf("structured amount must win, got %v", details["transaction_amount"])
	}
	if details["currency"] != "BRL" {
		t.Fatalf("expected upper-cased currency, got %v", details["currency"])
	}
	if details["description"] != "order 42" {
		t.Fatalf("unexpected description %v", details["description"])
	}
	if details["payment_method_id"] != "pix" {
		t.Fatalf("free-form details lost: %v", details)
	}
}

func TestPrepareRequest_ResolveAfterPath(t *testing.T) {
	if got := (PrepareRequest{}).ResolveAfterPath(); got != "payment/done" {
		t.Fatalf("expected default after path, got %q", got)
	}
	if got := (PrepareRequest{AfterPath: " /orders/42 "}).ResolveAfterPath(); got != "/orders/42" {
		t.Fatalf("expected trimmed after path, got %q", got)
	}
}

func TestPrepareRequest_ResolveAfterParams(t *testing.T) {
	if got := (PrepareRequest{}).ResolveAfterParams(); got != nil {
		t.Fatalf("expected nil params, got %v", got)
	}
	params := PrepareRequest{AfterParams: map[string]string{"order_id": "42"}}.ResolveAfterParams()
	if params.Get("order_id") != "42" {
		t.Fatalf("unexpected params %v", params)
	}
}

func TestPrepareRequest_Validate(t *testing.T) {
	if err := (PrepareRequest{Amount: -1}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := (PrepareRequest{Amount: 0}).Validate(); err != nil {
		t.Fatalf("zero amount with details is acceptable, got %v", err)
	}
	if err := (PrepareRequest{Amount: 10}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
