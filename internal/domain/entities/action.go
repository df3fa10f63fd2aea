package entities

// ActionKind enumerates the payment operations a gateway can execute.
//
// The set is closed: the orchestrator and the drivers match on it explicitly
// instead of building method names at runtime.

type ActionKind string

const (
	ActionCapture   ActionKind = "capture"
	ActionAuthorize ActionKind = "authorize"
	ActionRefund    ActionKind = "refund"
	ActionCancel    ActionKind = "cancel"
	ActionPayout    ActionKind = "payout"
	ActionNotify    ActionKind = "notify"
	ActionSync      ActionKind = "sync"

	// ActionConvert asks the driver for the provider's canonical external
	// representation of a payment (the "convert to array" request).
	ActionConvert ActionKind = "convert"

	// ActionStatus asks the driver for the human status of a payment.
	ActionStatus ActionKind = "status"
)

// BeginKinds are the action kinds a begin operation may mint a token for.
var BeginKinds = []ActionKind{ActionCapture, ActionAuthorize, ActionRefund, ActionCancel, ActionPayout}

// IsBeginKind reports whether k may start a token-backed flow.
func (k ActionKind) IsBeginKind() bool {
	for _, b := range BeginKinds {
		if k == b {
			return true
		}
	}
	return false
}

// ActionRequest is the tagged value handed to a gateway driver.
//
// Kind and the targets are immutable once constructed; Result and Status are
// output slots the driver fills for Convert and Status requests.

type ActionRequest struct {
	Kind    ActionKind
	Token   *Token
	Payment *Payment

	// ConvertTo names the representation requested by ActionConvert.
	ConvertTo string

	// Result is filled by the driver on ActionConvert.
	Result map[string]any

	// Status is filled by the driver on ActionStatus.
	Status PaymentStatus
}
