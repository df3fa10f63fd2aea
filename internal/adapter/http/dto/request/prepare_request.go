package request

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

// PrepareRequest is the payload starting a payment flow (capture, authorize,
// refund, cancel, payout) against a gateway. Everything it resolves ends up
// in the pending payment's details before a token is minted.
type PrepareRequest struct {
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Details     map[string]any    `json:"details"`
	AfterPath   string            `json:"after_path"`
	AfterParams map[string]string `json:"after_params"`
}

// ResolveDetails merges the structured fields and the free-form details map
// into the gateway-opaque details of the payment.
func (r PrepareRequest) ResolveDetails() map[string]any {
	details := map[string]any{}
	for k, v := range r.Details {
		details[k] = v
	}
	if r.Amount > 0 {
		details["transaction_amount"] = r.Amount
	}
	if c := strings.TrimSpace(r.Currency); c != "" {
		details["currency"] = strings.ToUpper(c)
	}
	if d := strings.TrimSpace(r.Description); d != "" {
		details["description"] = d
	}
	return details
}

func (r PrepareRequest) ResolveAfterPath() string {
	if v := strings.TrimSpace(r.AfterPath); v != "" {
		return v
	}
	return "payment/done"
}

func (r PrepareRequest) ResolveAfterParams() url.Values {
	if len(r.AfterParams) == 0 {
		return nil
	}
	params := url.Values{}
	for k, v := range r.AfterParams {
		params.Set(k, v)
	}
	return params
}

// Validate rejects payloads that carry neither an amount nor any details: a
// flow with nothing to hand the gateway cannot go anywhere.
func (r PrepareRequest) Validate() error {
	if r.Amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}
