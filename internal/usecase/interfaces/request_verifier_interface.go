package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

// IRequestVerifier resolves an inbound token id to the matching Token and
// supports one-shot invalidation.
//
// Verify fails for missing, malformed, unknown or already consumed ids.
// Invalidate is idempotent: invalidating an already invalidated token is a
// successful no-op.

type IRequestVerifier interface {
	Verify(ctx context.Context, tokenID string) (*entities.Token, error)
	Invalidate(ctx context.Context, t *entities.Token) error
}
