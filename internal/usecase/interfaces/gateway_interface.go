package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

// IGateway is the abstract capability of one payment gateway driver.
//
// Execute runs one action. A non-nil *Reply means "suspend: the transport
// layer must answer now and the flow resumes on the next inbound call with
// the same token". A Reply is not an error; err reports genuine failures.
type IGateway interface {
	Execute(ctx context.Context, req *entities.ActionRequest) (*entities.Reply, error)
}

// IGatewayRegistry resolves a registered gateway driver by name.
//
// The mapping is built once at setup time; Get fails for unknown names.
type IGatewayRegistry interface {
	Get(name string) (IGateway, error)
}
