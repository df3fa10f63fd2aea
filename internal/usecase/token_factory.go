package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// TokenFactory mints flow tokens. The target URL points at this service's
// resume endpoint for the token's action kind; the after URL is where the
// user lands once the flow finished.

type TokenFactory struct {
	tokens  interfaces.ITokenRepository
	baseURL string
	prefix  string
}

var _ interfaces.ITokenFactory = (*TokenFactory)(nil)

func NewTokenFactory(tokens interfaces.ITokenRepository, baseURL, routePrefix string) *TokenFactory {
	return &TokenFactory{
		tokens:  tokens,
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  "/" + strings.Trim(routePrefix, "/"),
	}
}

func (f *TokenFactory) CreateToken(ctx context.Context, gatewayName string, payment *entities.Payment, kind entities.ActionKind, afterPath string, afterParameters url.Values) (*entities.Token, error) {
	gatewayName = strings.TrimSpace(gatewayName)
	if gatewayName == "" {
		return nil, ErrInvalidGatewayName
	}
	if !isTokenKind(kind) {
		return nil, ErrInvalidActionKind
	}

	t := &entities.Token{
		ID:          uuid.NewString(),
		GatewayName: gatewayName,
		Action:      kind,
		TargetURL:   "",
		AfterURL:    f.afterURL(afterPath, afterParameters),
		CreatedAt:   time.Now().UTC(),
	}
	if payment != nil {
		t.PaymentID = payment.ID
	}
	t.TargetURL = f.baseURL + f.prefix + "/" + string(kind) + "/" + t.ID

	if err := f.tokens.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// afterURL resolves the after destination: absolute URLs pass through,
// relative paths are anchored at the service base URL, an empty path yields
// an empty after URL (tolerated by cancel and refund flows).
func (f *TokenFactory) afterURL(afterPath string, afterParameters url.Values) string {
	afterPath = strings.TrimSpace(afterPath)
	if afterPath == "" {
		return ""
	}

	after := afterPath
	if !strings.Contains(afterPath, "://") {
		after = f.baseURL + "/" + strings.TrimLeft(afterPath, "/")
	}
	if len(afterParameters) > 0 {
		sep := "?"
		if strings.Contains(after, "?") {
			sep = "&"
		}
		after += sep + afterParameters.Encode()
	}
	return after
}

func isTokenKind(kind entities.ActionKind) bool {
	if kind.IsBeginKind() {
		return true
	}
	return kind == entities.ActionNotify || kind == entities.ActionSync
}
