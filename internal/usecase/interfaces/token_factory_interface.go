package interfaces

import (
	"context"
	"net/url"

	"payflow/internal/domain/entities"
)

// ITokenFactory mints single-use tokens binding a gateway, a payment and an
// action kind to a target URL (where the user completes the action) and an
// after URL (where the user returns once finished).

type ITokenFactory interface {
	CreateToken(ctx context.Context, gatewayName string, payment *entities.Payment, kind entities.ActionKind, afterPath string, afterParameters url.Values) (*entities.Token, error)
}
