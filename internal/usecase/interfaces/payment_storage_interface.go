package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

// IPaymentStorage abstracts durable persistence of Payment records.
//
// Create returns a fresh pending payment already assigned an id; Update
// persists whatever the caller-supplied setup closures or the gateway drivers
// wrote into it. The orchestrator only ever holds a transient reference.

type IPaymentStorage interface {
	Create(ctx context.Context) (*entities.Payment, error)
	Update(ctx context.Context, p *entities.Payment) error
	GetByID(ctx context.Context, id string) (*entities.Payment, error)
}
