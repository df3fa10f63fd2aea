package usecase

import (
	"context"
	"log"
	"strings"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

// Receive is the resume half of every flow. In order: resolve the effective
// token id (falling back to the session stash, which is read-and-cleared),
// verify it, resolve the gateway named by the token, then run the
// action-specific resume logic. An interrupt from the resume logic re-stashes
// the token id and is converted into a transport response; it never leaks to
// the caller as an error.
func (u *PaymentFlowUseCase) Receive(ctx context.Context, sessionID, tokenID string, resume ResumeFunc) (entities.TransportResponse, error) {
	if resume == nil {
		return entities.TransportResponse{}, ErrNilCallback
	}

	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		stashed, err := u.stash.Fetch(ctx, sessionID)
		if err != nil {
			return entities.TransportResponse{}, err
		}
		tokenID = strings.TrimSpace(stashed)
	}
	if tokenID == "" {
		return entities.TransportResponse{}, ErrTokenInvalid
	}

	token, err := u.verifier.Verify(ctx, tokenID)
	if err != nil {
		return entities.TransportResponse{}, err
	}
	gateway, err := u.gateways.Get(token.GatewayName)
	if err != nil {
		return entities.TransportResponse{}, err
	}

	resp, reply, err := resume(ctx, gateway, token, u.verifier)
	if err != nil {
		return entities.TransportResponse{}, err
	}
	if reply != nil {
		// The flow is suspended, not finished: keep the token reachable for
		// the next inbound call that omits it.
		if err := u.stash.Put(ctx, sessionID, tokenID); err != nil {
			return entities.TransportResponse{}, err
		}
		log.Printf("[flow][usecase] receive interrupted gateway=%s token_id=%s reply=%s", token.GatewayName, token.ID, reply.Kind)
		return u.converter.Convert(reply), nil
	}
	return resp, nil
}

func (u *PaymentFlowUseCase) ReceiveCapture(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error) {
	return u.receiveTerminal(ctx, sessionID, tokenID, entities.ActionCapture, false)
}

func (u *PaymentFlowUseCase) ReceiveAuthorize(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error) {
	return u.receiveTerminal(ctx, sessionID, tokenID, entities.ActionAuthorize, false)
}

func (u *PaymentFlowUseCase) ReceivePayout(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error) {
	return u.receiveTerminal(ctx, sessionID, tokenID, entities.ActionPayout, false)
}

func (u *PaymentFlowUseCase) ReceiveSync(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error) {
	return u.receiveTerminal(ctx, sessionID, tokenID, entities.ActionSync, false)
}

// ReceiveCancel tolerates an absent after URL: cancellations may be triggered
// from contexts with no natural return page.
func (u *PaymentFlowUseCase) ReceiveCancel(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error) {
	return u.receiveTerminal(ctx, sessionID, tokenID, entities.ActionCancel, true)
}

func (u *PaymentFlowUseCase) ReceiveRefund(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error) {
	return u.receiveTerminal(ctx, sessionID, tokenID, entities.ActionRefund, true)
}

// receiveTerminal executes one state-changing action and enforces single use:
// the token is invalidated after a successful execution, never before.
func (u *PaymentFlowUseCase) receiveTerminal(ctx context.Context, sessionID, tokenID string, kind entities.ActionKind, allowEmptyAfter bool) (entities.TransportResponse, error) {
	return u.Receive(ctx, sessionID, tokenID, func(ctx context.Context, gateway interfaces.IGateway, token *entities.Token, verifier interfaces.IRequestVerifier) (entities.TransportResponse, *entities.Reply, error) {
		_, reply, err := u.executeOnPayment(ctx, gateway, token, kind)
		if err != nil || reply != nil {
			return entities.TransportResponse{}, reply, err
		}

		if err := verifier.Invalidate(ctx, token); err != nil {
			return entities.TransportResponse{}, nil, err
		}
		log.Printf("[flow][usecase] receive success kind=%s gateway=%s token_id=%s payment_id=%s", kind, token.GatewayName, token.ID, token.PaymentID)

		if token.AfterURL == "" && allowEmptyAfter {
			return entities.NoContentResponse(), nil, nil
		}
		return entities.RedirectResponse(token.AfterURL), nil, nil
	})
}

// ReceiveNotify executes Notify without ever invalidating the token:
// provider notifications are at-least-once and may legitimately repeat.
func (u *PaymentFlowUseCase) ReceiveNotify(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error) {
	return u.Receive(ctx, sessionID, tokenID, func(ctx context.Context, gateway interfaces.IGateway, token *entities.Token, verifier interfaces.IRequestVerifier) (entities.TransportResponse, *entities.Reply, error) {
		_, reply, err := u.executeOnPayment(ctx, gateway, token, entities.ActionNotify)
		if err != nil || reply != nil {
			return entities.TransportResponse{}, reply, err
		}
		return entities.NoContentResponse(), nil, nil
	})
}

// ReceiveNotifyUnsafe handles server-to-server callbacks that carry no token.
// This is a deliberate, named lower-trust boundary: only the gateway name in
// the URL is trusted and no verification happens. Interrupts are still
// converted.
func (u *PaymentFlowUseCase) ReceiveNotifyUnsafe(ctx context.Context, gatewayName string) (entities.TransportResponse, error) {
	gatewayName = strings.TrimSpace(gatewayName)
	if gatewayName == "" {
		return entities.TransportResponse{}, ErrInvalidGatewayName
	}
	gateway, err := u.gateways.Get(gatewayName)
	if err != nil {
		return entities.TransportResponse{}, err
	}

	reply, err := gateway.Execute(ctx, &entities.ActionRequest{Kind: entities.ActionNotify})
	if err != nil {
		return entities.TransportResponse{}, err
	}
	if reply != nil {
		return u.converter.Convert(reply), nil
	}
	return entities.NoContentResponse(), nil
}

// ReceiveDone asks the gateway for the payment's human status and delegates
// the final resolution to the caller-supplied closure.
func (u *PaymentFlowUseCase) ReceiveDone(ctx context.Context, sessionID, tokenID string, done DoneFunc) (entities.TransportResponse, error) {
	if done == nil {
		return entities.TransportResponse{}, ErrNilCallback
	}
	return u.Receive(ctx, sessionID, tokenID, func(ctx context.Context, gateway interfaces.IGateway, token *entities.Token, verifier interfaces.IRequestVerifier) (entities.TransportResponse, *entities.Reply, error) {
		payment, err := u.loadPayment(ctx, token)
		if err != nil {
			return entities.TransportResponse{}, nil, err
		}

		req := &entities.ActionRequest{Kind: entities.ActionStatus, Token: token, Payment: payment}
		reply, err := gateway.Execute(ctx, req)
		if err != nil {
			return entities.TransportResponse{}, nil, err
		}
		if reply != nil {
			return entities.TransportResponse{}, reply, nil
		}

		status := req.Status
		if status == "" {
			status = entities.PaymentStatusUnknown
		}
		resp, err := done(ctx, status, payment, gateway, token, verifier)
		return resp, nil, err
	})
}

// executeOnPayment loads the token's payment, executes one action against it
// and persists whatever the driver wrote. The payment is persisted before an
// interrupt is surfaced so provider references survive the suspension.
func (u *PaymentFlowUseCase) executeOnPayment(ctx context.Context, gateway interfaces.IGateway, token *entities.Token, kind entities.ActionKind) (*entities.Payment, *entities.Reply, error) {
	payment, err := u.loadPayment(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	req := &entities.ActionRequest{Kind: kind, Token: token, Payment: payment}
	reply, err := gateway.Execute(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if err := u.storage.Update(ctx, payment); err != nil {
		return nil, nil, err
	}
	return payment, reply, nil
}

func (u *PaymentFlowUseCase) loadPayment(ctx context.Context, token *entities.Token) (*entities.Payment, error) {
	payment, err := u.storage.GetByID(ctx, token.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		// A token pointing at a vanished payment is as good as no token.
		return nil, ErrTokenInvalid
	}
	return payment, nil
}
