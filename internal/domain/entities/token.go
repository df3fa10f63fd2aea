package entities

import "time"

// TokenField is the fixed query/body field name carrying a token id on resume
// calls, and the fixed session slot name used by the token stash.
const TokenField = "payum_token"

// Token is a single-use credential binding one (gateway, payment, action)
// triple across HTTP round trips.
//
// A token is immutable after creation. For state-changing actions it must not
// resolve twice: the orchestrator invalidates it after a successful resume.
// Invalidation is idempotent.
//
// Storage model (DynamoDB):
//   - PK: id

type Token struct {
	ID          string         `json:"id"`
	GatewayName string         `json:"gateway_name"`
	PaymentID   string         `json:"payment_id"`
	Action      ActionKind     `json:"action"`
	TargetURL   string         `json:"target_url"`
	AfterURL    string         `json:"after_url,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
