package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "payflow/internal/adapter/http/dto/request"
	response "payflow/internal/adapter/http/dto/response"
	"payflow/internal/domain/entities"
	"payflow/internal/usecase"
	"payflow/internal/usecase/interfaces"
	"payflow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie carries the session id binding a browser to its pending-token
// stash slot.
const SessionCookie = "payflow_session"

const sessionCookieMaxAge = 3600

var (
	errInvalidPreparePayload = pkg.NewDomainErrorSimple("INVALID_PREPARE_INPUT", "Invalid prepare payload", http.StatusBadRequest)
)

// PaymentFlowHandler exposes the begin and resume halves of every payment
// flow over HTTP.

type PaymentFlowHandler struct {
	usecase usecase.IPaymentFlowUseCase
}

func NewPaymentFlowHandler(uc usecase.IPaymentFlowUseCase) *PaymentFlowHandler {
	return &PaymentFlowHandler{usecase: uc}
}

// --- begin half -------------------------------------------------------------

// PrepareCapture starts a capture flow and answers with a redirect to the
// minted token's target URL.
func (h *PaymentFlowHandler) PrepareCapture(c *gin.Context) {
	h.begin(c, entities.ActionCapture)
}

func (h *PaymentFlowHandler) PrepareAuthorize(c *gin.Context) {
	h.begin(c, entities.ActionAuthorize)
}

func (h *PaymentFlowHandler) PrepareRefund(c *gin.Context) {
	h.begin(c, entities.ActionRefund)
}

func (h *PaymentFlowHandler) PrepareCancel(c *gin.Context) {
	h.begin(c, entities.ActionCancel)
}

func (h *PaymentFlowHandler) PreparePayout(c *gin.Context) {
	h.begin(c, entities.ActionPayout)
}

func (h *PaymentFlowHandler) begin(c *gin.Context, kind entities.ActionKind) {
	gatewayName := c.Param("gateway_name")

	var payload request.PrepareRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreparePayload.HTTPStatus, errInvalidPreparePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidPreparePayload.HTTPStatus, errInvalidPreparePayload.ToHTTPError())
		return
	}

	details := payload.ResolveDetails()
	setup := func(ctx context.Context, p *entities.Payment, gatewayName string, storage interfaces.IPaymentStorage) error {
		for k, v := range details {
			p.SetDetail(k, v)
		}
		return nil
	}

	resp, err := h.usecase.Prepare(c.Request.Context(), gatewayName, setup, payload.ResolveAfterPath(), payload.ResolveAfterParams(), kind)
	if err != nil {
		log.Printf("[flow][handler] begin failed gateway=%s kind=%s err=%v", gatewayName, kind, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeTransportResponse(c, resp)
}

// PrepareSync reconciles a payment out of band and returns it; no token, no
// redirect.
func (h *PaymentFlowHandler) PrepareSync(c *gin.Context) {
	gatewayName := c.Param("gateway_name")

	var payload request.PrepareRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreparePayload.HTTPStatus, errInvalidPreparePayload.ToHTTPError())
		return
	}

	details := payload.ResolveDetails()
	setup := func(ctx context.Context, p *entities.Payment, gatewayName string, storage interfaces.IPaymentStorage) error {
		for k, v := range details {
			p.SetDetail(k, v)
		}
		return nil
	}

	payment, err := h.usecase.Sync(c.Request.Context(), gatewayName, setup)
	if err != nil {
		log.Printf("[flow][handler] sync failed gateway=%s err=%v", gatewayName, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// --- resume half ------------------------------------------------------------

func (h *PaymentFlowHandler) ReceiveCapture(c *gin.Context) {
	h.receive(c, h.usecase.ReceiveCapture)
}

func (h *PaymentFlowHandler) ReceiveAuthorize(c *gin.Context) {
	h.receive(c, h.usecase.ReceiveAuthorize)
}

func (h *PaymentFlowHandler) ReceivePayout(c *gin.Context) {
	h.receive(c, h.usecase.ReceivePayout)
}

func (h *PaymentFlowHandler) ReceiveSync(c *gin.Context) {
	h.receive(c, h.usecase.ReceiveSync)
}

func (h *PaymentFlowHandler) ReceiveCancel(c *gin.Context) {
	h.receive(c, h.usecase.ReceiveCancel)
}

func (h *PaymentFlowHandler) ReceiveRefund(c *gin.Context) {
	h.receive(c, h.usecase.ReceiveRefund)
}

func (h *PaymentFlowHandler) ReceiveNotify(c *gin.Context) {
	h.receive(c, h.usecase.ReceiveNotify)
}

// ReceiveNotifyUnsafe handles token-less server-to-server callbacks; only the
// gateway name in the URL is trusted.
func (h *PaymentFlowHandler) ReceiveNotifyUnsafe(c *gin.Context) {
	gatewayName := c.Param("gateway_name")

	resp, err := h.usecase.ReceiveNotifyUnsafe(c.Request.Context(), gatewayName)
	if err != nil {
		log.Printf("[flow][handler] notify-unsafe failed gateway=%s err=%v", gatewayName, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeTransportResponse(c, resp)
}

// ReceiveDone resolves the final outcome of a flow and renders the human
// status next to its payment.
func (h *PaymentFlowHandler) ReceiveDone(c *gin.Context) {
	sessionID := h.sessionID(c)
	tokenID := resolveTokenID(c)

	resp, err := h.usecase.ReceiveDone(c.Request.Context(), sessionID, tokenID, doneAsJSON)
	if err != nil {
		log.Printf("[flow][handler] done failed token_id=%s err=%v", tokenID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeTransportResponse(c, resp)
}

func (h *PaymentFlowHandler) receive(c *gin.Context, op func(ctx context.Context, sessionID, tokenID string) (entities.TransportResponse, error)) {
	sessionID := h.sessionID(c)
	tokenID := resolveTokenID(c)

	resp, err := op(c.Request.Context(), sessionID, tokenID)
	if err != nil {
		log.Printf("[flow][handler] receive failed token_id=%s err=%v", tokenID, err)
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeTransportResponse(c, resp)
}

// sessionID reads the session cookie, minting one when the browser shows up
// without it so the stash has a slot to bind to.
func (h *PaymentFlowHandler) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(SessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(SessionCookie, sid, sessionCookieMaxAge, "/", "", false, true)
	return sid
}

// resolveTokenID prefers the path segment, then the fixed query/form field.
func resolveTokenID(c *gin.Context) string {
	if t := c.Param("token"); t != "" {
		return t
	}
	if t := c.Query(entities.TokenField); t != "" {
		return t
	}
	return c.PostForm(entities.TokenField)
}

func doneAsJSON(ctx context.Context, status entities.PaymentStatus, payment *entities.Payment, gateway interfaces.IGateway, token *entities.Token, verifier interfaces.IRequestVerifier) (entities.TransportResponse, error) {
	body, err := jsonBody(response.FromDone(status, payment))
	if err != nil {
		return entities.TransportResponse{}, err
	}
	return entities.TransportResponse{
		StatusCode:  http.StatusOK,
		ContentType: "application/json; charset=utf-8",
		Body:        body,
	}, nil
}

func writeTransportResponse(c *gin.Context, resp entities.TransportResponse) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	switch {
	case resp.IsRedirect():
		code := resp.StatusCode
		if code == 0 {
			code = http.StatusFound
		}
		c.Redirect(code, resp.RedirectURL)
	case resp.Body != "":
		contentType := resp.ContentType
		if contentType == "" {
			contentType = "text/html; charset=utf-8"
		}
		c.Data(resp.StatusCode, contentType, []byte(resp.Body))
	default:
		code := resp.StatusCode
		if code == 0 {
			code = http.StatusNoContent
		}
		c.Status(code)
	}
}

func mapFlowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTokenInvalid):
		return pkg.NewDomainErrorSimple("TOKEN_INVALID", "Token missing, unknown or already consumed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGatewayName), errors.Is(err, usecase.ErrInvalidActionKind), errors.Is(err, request.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotFound):
		return pkg.NewDomainError("GATEWAY_NOT_FOUND", "Gateway not registered", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func jsonBody(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
