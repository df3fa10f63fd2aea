package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

var (
	ErrTokenInvalid       = errors.New("token missing, unknown or already consumed")
	ErrGatewayNotFound    = errors.New("gateway not registered")
	ErrInvalidGatewayName = errors.New("invalid gateway name")
	ErrInvalidActionKind  = errors.New("invalid action kind")
	ErrNilCallback        = errors.New("callback must not be nil")
	ErrUnexpectedReply    = errors.New("gateway replied on a non-interactive flow")
)

// SetupFunc populates a freshly created payment before it is persisted and a
// token is minted for it. It runs between Create and Update of a begin
// operation; no gateway action has executed yet.
type SetupFunc func(ctx context.Context, payment *entities.Payment, gatewayName string, storage interfaces.IPaymentStorage) error

// ResumeFunc is the action-specific half of Receive. A non-nil *Reply means
// the gateway interrupted: the orchestrator stashes the token and converts
// the reply instead of using the returned response.
type ResumeFunc func(ctx context.Context, gateway interfaces.IGateway, token *entities.Token, verifier interfaces.IRequestVerifier) (entities.TransportResponse, *entities.Reply, error)

// DoneFunc resolves the final outcome of a flow once the gateway reported the
// payment's human status.
type DoneFunc func(ctx context.Context, status entities.PaymentStatus, payment *entities.Payment, gateway interfaces.IGateway, token *entities.Token, verifier interfaces.IRequestVerifier) (entities.TransportResponse, error)

// IPaymentFlowUseCase is the orchestration core: it sequences storage, token
// minting, token verification, gateway execution and interrupt conversion
// across the begin and resume halves of every payment action.

type IPaymentFlowUseCase interface {
	Prepare(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values, kind entities.ActionKind) (entities.TransportResponse, error)
	Capture(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error)
	Authorize(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error)
	Refund(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error)
	Cancel(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error)
	Payout(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error)

	Receive(ctx context.Context, sessionID, tokenID string, resume ResumeFunc) (entities.TransportResponse, error)
	ReceiveCapture(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)
	ReceiveAuthorize(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)
	ReceivePayout(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)
	ReceiveSync(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)
	ReceiveCancel(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)
	ReceiveRefund(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)
	ReceiveNotify(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)
	ReceiveNotifyUnsafe(ctx context.Context, gatewayName string) (entities.TransportResponse, error)
	ReceiveDone(ctx context.Context, sessionID, tokenID string, done DoneFunc) (entities.TransportResponse, error)

	Sync(ctx context.Context, gatewayName string, setup SetupFunc) (*entities.Payment, error)
}

type PaymentFlowUseCase struct {
	gateways     interfaces.IGatewayRegistry
	storage      interfaces.IPaymentStorage
	tokenFactory interfaces.ITokenFactory
	verifier     interfaces.IRequestVerifier
	stash        interfaces.ISessionStash
	converter    *ReplyConverter
}

var _ IPaymentFlowUseCase = (*PaymentFlowUseCase)(nil)

func NewPaymentFlowUseCase(
	gateways interfaces.IGatewayRegistry,
	storage interfaces.IPaymentStorage,
	tokenFactory interfaces.ITokenFactory,
	verifier interfaces.IRequestVerifier,
	stash interfaces.ISessionStash,
	converter *ReplyConverter,
) *PaymentFlowUseCase {
	if converter == nil {
		converter = NewReplyConverter()
	}
	return &PaymentFlowUseCase{
		gateways:     gateways,
		storage:      storage,
		tokenFactory: tokenFactory,
		verifier:     verifier,
		stash:        stash,
		converter:    converter,
	}
}

// Prepare is the begin half of every user-facing flow: create and persist a
// pending payment, run the caller's setup, mint a token of the given kind and
// answer with a redirect to the token's target URL. No gateway action runs.
func (u *PaymentFlowUseCase) Prepare(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values, kind entities.ActionKind) (entities.TransportResponse, error) {
	gatewayName = strings.TrimSpace(gatewayName)
	if gatewayName == "" {
		return entities.TransportResponse{}, ErrInvalidGatewayName
	}
	if setup == nil {
		return entities.TransportResponse{}, ErrNilCallback
	}
	if !kind.IsBeginKind() {
		return entities.TransportResponse{}, ErrInvalidActionKind
	}
	if _, err := u.gateways.Get(gatewayName); err != nil {
		return entities.TransportResponse{}, err
	}

	payment, err := u.storage.Create(ctx)
	if err != nil {
		log.Printf("[flow][usecase] begin create failed gateway=%s kind=%s err=%v", gatewayName, kind, err)
		return entities.TransportResponse{}, err
	}
	if err := setup(ctx, payment, gatewayName, u.storage); err != nil {
		return entities.TransportResponse{}, err
	}
	if err := u.storage.Update(ctx, payment); err != nil {
		log.Printf("[flow][usecase] begin update failed gateway=%s payment_id=%s err=%v", gatewayName, payment.ID, err)
		return entities.TransportResponse{}, err
	}

	token, err := u.tokenFactory.CreateToken(ctx, gatewayName, payment, kind, afterPath, afterParameters)
	if err != nil {
		log.Printf("[flow][usecase] begin token mint failed gateway=%s payment_id=%s err=%v", gatewayName, payment.ID, err)
		return entities.TransportResponse{}, err
	}
	log.Printf("[flow][usecase] begin success gateway=%s kind=%s payment_id=%s token_id=%s", gatewayName, kind, payment.ID, token.ID)

	return entities.RedirectResponse(token.TargetURL), nil
}

func (u *PaymentFlowUseCase) Capture(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error) {
	return u.Prepare(ctx, gatewayName, setup, afterPath, afterParameters, entities.ActionCapture)
}

func (u *PaymentFlowUseCase) Authorize(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error) {
	return u.Prepare(ctx, gatewayName, setup, afterPath, afterParameters, entities.ActionAuthorize)
}

func (u *PaymentFlowUseCase) Refund(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error) {
	return u.Prepare(ctx, gatewayName, setup, afterPath, afterParameters, entities.ActionRefund)
}

func (u *PaymentFlowUseCase) Cancel(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error) {
	return u.Prepare(ctx, gatewayName, setup, afterPath, afterParameters, entities.ActionCancel)
}

func (u *PaymentFlowUseCase) Payout(ctx context.Context, gatewayName string, setup SetupFunc, afterPath string, afterParameters url.Values) (entities.TransportResponse, error) {
	return u.Prepare(ctx, gatewayName, setup, afterPath, afterParameters, entities.ActionPayout)
}

// Sync reconciles a payment out of band: Convert first, so the payment's
// details reflect the gateway's canonical external representation before the
// synchronization action observes them. Token-less, never redirects.
func (u *PaymentFlowUseCase) Sync(ctx context.Context, gatewayName string, setup SetupFunc) (*entities.Payment, error) {
	gatewayName = strings.TrimSpace(gatewayName)
	if gatewayName == "" {
		return nil, ErrInvalidGatewayName
	}
	if setup == nil {
		return nil, ErrNilCallback
	}
	gateway, err := u.gateways.Get(gatewayName)
	if err != nil {
		return nil, err
	}

	payment, err := u.storage.Create(ctx)
	if err != nil {
		return nil, err
	}
	if err := setup(ctx, payment, gatewayName, u.storage); err != nil {
		return nil, err
	}

	convert := &entities.ActionRequest{Kind: entities.ActionConvert, Payment: payment, ConvertTo: "array"}
	reply, err := gateway.Execute(ctx, convert)
	if err != nil {
		return nil, err
	}
	if reply != nil {
		return nil, ErrUnexpectedReply
	}
	if convert.Result != nil {
		payment.Details = convert.Result
	}

	sync := &entities.ActionRequest{Kind: entities.ActionSync, Payment: payment}
	reply, err = gateway.Execute(ctx, sync)
	if err != nil {
		return nil, err
	}
	if reply != nil {
		return nil, ErrUnexpectedReply
	}

	if err := u.storage.Update(ctx, payment); err != nil {
		return nil, err
	}
	log.Printf("[flow][usecase] sync success gateway=%s payment_id=%s", gatewayName, payment.ID)
	return payment, nil
}
