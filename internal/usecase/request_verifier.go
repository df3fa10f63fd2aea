package usecase

import (
	"context"
	"log"
	"strings"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

// RequestVerifier resolves inbound token ids against the token repository.

type RequestVerifier struct {
	tokens interfaces.ITokenRepository
}

var _ interfaces.IRequestVerifier = (*RequestVerifier)(nil)

func NewRequestVerifier(tokens interfaces.ITokenRepository) *RequestVerifier {
	return &RequestVerifier{tokens: tokens}
}

func (v *RequestVerifier) Verify(ctx context.Context, tokenID string) (*entities.Token, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return nil, ErrTokenInvalid
	}

	t, err := v.tokens.GetByID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		log.Printf("[flow][verifier] unknown token token_id=%s", tokenID)
		return nil, ErrTokenInvalid
	}
	return t, nil
}

// Invalidate consumes a token. Deleting an already deleted token succeeds, so
// repeated invalidation is a no-op.
func (v *RequestVerifier) Invalidate(ctx context.Context, t *entities.Token) error {
	if t == nil || strings.TrimSpace(t.ID) == "" {
		return nil
	}
	return v.tokens.Delete(ctx, t.ID)
}
