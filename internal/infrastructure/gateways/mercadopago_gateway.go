package gateways

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// detail keys the Mercado Pago driver reads/writes on a payment.
const (
	mpDetailPaymentID = "mp_payment_id"
	mpDetailStatus    = "status"
	mpDetailResponse  = "mp_response"
)

// MercadoPagoGateway drives payments through the Mercado Pago SDK.
//
// Capture/Authorize create the provider payment from the payment's details;
// when the provider answers pending with an external checkout URL the driver
// interrupts with a redirect there. Notify/Sync refetch the provider payment
// and fold the fresh state back into the details.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isMercadoPagoMockEnabled() {
		log.Printf("[flow][gateway][mp] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[flow][gateway][mp] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[flow][gateway][mp] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[flow][gateway][mp] client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Execute(ctx context.Context, req *entities.ActionRequest) (*entities.Reply, error) {
	if req == nil {
		return nil, fmt.Errorf("mercado pago gateway: nil action request")
	}

	switch req.Kind {
	case entities.ActionCapture, entities.ActionAuthorize:
		return g.create(ctx, req)
	case entities.ActionNotify, entities.ActionSync:
		return nil, g.refresh(ctx, req.Payment)
	case entities.ActionCancel:
		return nil, g.cancel(ctx, req.Payment)
	case entities.ActionConvert:
		return nil, g.convert(req)
	case entities.ActionStatus:
		req.Status = g.status(req.Payment)
		return nil, nil
	case entities.ActionRefund, entities.ActionPayout:
		return nil, fmt.Errorf("mercado pago gateway: action %q not supported", req.Kind)
	default:
		return nil, fmt.Errorf("mercado pago gateway: unsupported action %q", req.Kind)
	}
}

func (g *MercadoPagoGateway) create(ctx context.Context, req *entities.ActionRequest) (*entities.Reply, error) {
	p := req.Payment
	if p == nil {
		return nil, fmt.Errorf("mercado pago gateway: action %q needs a payment", req.Kind)
	}
	if p.Detail(mpDetailPaymentID) != "" {
		// Resumed after the user came back from the provider: reconcile only.
		if err := g.refresh(ctx, p); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		p.SetDetail(mpDetailPaymentID, id)
		p.SetDetail(mpDetailStatus, "approved")
		p.Status = entities.PaymentStatusCaptured
		log.Printf("[flow][gateway][mp] mock create success provider_payment_id=%s", id)
		return nil, nil
	}
	if g.client == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	payload, err := json.Marshal(p.Details)
	if err != nil {
		return nil, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(payload, &mpReq); err != nil {
		log.Printf("[flow][gateway][mp] payload unmarshal failed payment_id=%s err=%v", p.ID, err)
		return nil, err
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[flow][gateway][mp] sdk create failed payment_id=%s err=%v", p.ID, err)
		return nil, err
	}

	respMap, err := responseMap(resp)
	if err != nil {
		return nil, err
	}
	p.SetDetail(mpDetailPaymentID, strconv.Itoa(resp.ID))
	p.SetDetail(mpDetailStatus, resp.Status)
	p.SetDetail(mpDetailResponse, respMap)
	p.Status = mapProviderStatus(resp.Status)
	log.Printf("[flow][gateway][mp] create success payment_id=%s provider_payment_id=%d provider_status=%s", p.ID, resp.ID, resp.Status)

	if p.Status == entities.PaymentStatusPending {
		if url := externalCheckoutURL(respMap); url != "" {
			return entities.NewRedirectReply(url), nil
		}
	}
	return nil, nil
}

func (g *MercadoPagoGateway) refresh(ctx context.Context, p *entities.Payment) error {
	if p == nil {
		return nil
	}
	providerID := p.Detail(mpDetailPaymentID)
	if providerID == "" {
		return nil
	}
	if g.mockMode {
		return nil
	}
	if g.client == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerID)
	if err != nil {
		return fmt.Errorf("mercado pago gateway: malformed provider payment id %q", providerID)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[flow][gateway][mp] sdk get failed payment_id=%s provider_payment_id=%d err=%v", p.ID, id, err)
		return err
	}

	respMap, err := responseMap(resp)
	if err != nil {
		return err
	}
	p.SetDetail(mpDetailStatus, resp.Status)
	p.SetDetail(mpDetailResponse, respMap)
	p.Status = mapProviderStatus(resp.Status)
	return nil
}

func (g *MercadoPagoGateway) cancel(ctx context.Context, p *entities.Payment) error {
	if p == nil {
		return nil
	}
	providerID := p.Detail(mpDetailPaymentID)
	if providerID == "" || g.mockMode {
		p.Status = entities.PaymentStatusCanceled
		p.SetDetail(mpDetailStatus, "cancelled")
		return nil
	}
	if g.client == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerID)
	if err != nil {
		return fmt.Errorf("mercado pago gateway: malformed provider payment id %q", providerID)
	}
	resp, err := g.client.Cancel(ctx, id)
	if err != nil {
		log.Printf("[flow][gateway][mp] sdk cancel failed payment_id=%s provider_payment_id=%d err=%v", p.ID, id, err)
		return err
	}
	p.SetDetail(mpDetailStatus, resp.Status)
	p.Status = mapProviderStatus(resp.Status)
	return nil
}

func (g *MercadoPagoGateway) convert(req *entities.ActionRequest) error {
	if req.ConvertTo != "" && req.ConvertTo != "array" {
		return fmt.Errorf("mercado pago gateway: unsupported conversion target %q", req.ConvertTo)
	}

	result := map[string]any{}
	if req.Payment != nil {
		for k, v := range req.Payment.Details {
			result[k] = v
		}
	}
	req.Result = result
	return nil
}

func (g *MercadoPagoGateway) status(p *entities.Payment) entities.PaymentStatus {
	if p == nil {
		return entities.PaymentStatusUnknown
	}
	if s := p.Detail(mpDetailStatus); s != "" {
		return mapProviderStatus(s)
	}
	if p.Status != "" {
		return p.Status
	}
	return entities.PaymentStatusNew
}

func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusCaptured
	case "authorized":
		return entities.PaymentStatusAuthorized
	case "refunded":
		return entities.PaymentStatusRefunded
	case "cancelled":
		return entities.PaymentStatusCanceled
	case "rejected":
		return entities.PaymentStatusFailed
	case "pending", "in_process", "in_mediation":
		return entities.PaymentStatusPending
	case "":
		return entities.PaymentStatusNew
	default:
		return entities.PaymentStatusUnknown
	}
}

func responseMap(resp any) (map[string]any, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// externalCheckoutURL digs the provider's redirect destination out of the raw
// response: ticket_url covers boleto/pix style checkouts.
func externalCheckoutURL(respMap map[string]any) string {
	poi, ok := respMap["point_of_interaction"].(map[string]any)
	if !ok {
		return ""
	}
	td, ok := poi["transaction_data"].(map[string]any)
	if !ok {
		return ""
	}
	if url, ok := td["ticket_url"].(string); ok {
		return url
	}
	return ""
}

func isMercadoPagoMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
