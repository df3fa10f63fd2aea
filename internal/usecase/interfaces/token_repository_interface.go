package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

// ITokenRepository abstracts persistence of flow tokens.
//
// GetByID returns (nil, nil) for an unknown id; Delete of an unknown id is a
// no-op, so invalidation stays idempotent.

type ITokenRepository interface {
	Create(ctx context.Context, t *entities.Token) error
	GetByID(ctx context.Context, id string) (*entities.Token, error)
	Delete(ctx context.Context, id string) error
}
