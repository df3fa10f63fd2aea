package gateways

import (
	"context"
	"fmt"
	"log"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

// detail keys understood by the offline driver.
const (
	offlineDetailInteractive = "interactive"
	offlineDetailCheckoutURL = "checkout_url"
	offlineDetailInteracted  = "interaction_completed"
	offlineDetailStatus      = "status"
)

// OfflineGateway simulates a provider without any external calls. It is the
// default driver and the one integration tests run against.
//
// When a payment carries interactive=true in its details, the first
// state-changing action interrupts with a redirect to checkout_url and marks
// the interaction as completed, so the resumed call finishes normally. This
// mirrors the suspend/resume shape of real redirect-based providers.

type OfflineGateway struct{}

var _ interfaces.IGateway = (*OfflineGateway)(nil)

func NewOfflineGateway() *OfflineGateway {
	return &OfflineGateway{}
}

func (g *OfflineGateway) Execute(ctx context.Context, req *entities.ActionRequest) (*entities.Reply, error) {
	if req == nil {
		return nil, fmt.Errorf("offline gateway: nil action request")
	}

	switch req.Kind {
	case entities.ActionCapture:
		return g.settle(req, entities.PaymentStatusCaptured)
	case entities.ActionAuthorize:
		return g.settle(req, entities.PaymentStatusAuthorized)
	case entities.ActionPayout:
		return g.settle(req, entities.PaymentStatusPayedout)
	case entities.ActionRefund:
		return g.settle(req, entities.PaymentStatusRefunded)
	case entities.ActionCancel:
		return g.settle(req, entities.PaymentStatusCanceled)
	case entities.ActionNotify, entities.ActionSync:
		// Nothing to reconcile against; the stored details are authoritative.
		return nil, nil
	case entities.ActionConvert:
		return nil, g.convert(req)
	case entities.ActionStatus:
		req.Status = g.status(req.Payment)
		return nil, nil
	default:
		return nil, fmt.Errorf("offline gateway: unsupported action %q", req.Kind)
	}
}

func (g *OfflineGateway) settle(req *entities.ActionRequest, status entities.PaymentStatus) (*entities.Reply, error) {
	p := req.Payment
	if p == nil {
		return nil, fmt.Errorf("offline gateway: action %q needs a payment", req.Kind)
	}

	if wantsInteraction(p) {
		p.SetDetail(offlineDetailInteracted, true)
		url := p.Detail(offlineDetailCheckoutURL)
		if url == "" {
			return entities.NewRenderReply(0, "", "<html><body>offline checkout</body></html>"), nil
		}
		log.Printf("[flow][gateway][offline] interrupting kind=%s payment_id=%s", req.Kind, p.ID)
		return entities.NewRedirectReply(url), nil
	}

	p.Status = status
	p.SetDetail(offlineDetailStatus, string(status))
	return nil, nil
}

func (g *OfflineGateway) convert(req *entities.ActionRequest) error {
	if req.ConvertTo != "" && req.ConvertTo != "array" {
		return fmt.Errorf("offline gateway: unsupported conversion target %q", req.ConvertTo)
	}

	result := map[string]any{}
	if req.Payment != nil {
		for k, v := range req.Payment.Details {
			result[k] = v
		}
		if _, ok := result[offlineDetailStatus]; !ok {
			result[offlineDetailStatus] = string(g.status(req.Payment))
		}
	}
	req.Result = result
	return nil
}

func (g *OfflineGateway) status(p *entities.Payment) entities.PaymentStatus {
	if p == nil {
		return entities.PaymentStatusUnknown
	}
	if s := p.Detail(offlineDetailStatus); s != "" {
		return entities.PaymentStatus(s)
	}
	if p.Status != "" {
		return p.Status
	}
	return entities.PaymentStatusNew
}

func wantsInteraction(p *entities.Payment) bool {
	if p == nil || p.Details == nil {
		return false
	}
	if done, ok := p.Details[offlineDetailInteracted].(bool); ok && done {
		return false
	}
	v, ok := p.Details[offlineDetailInteractive]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	default:
		return false
	}
}
