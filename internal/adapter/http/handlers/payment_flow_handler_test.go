package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payflow/internal/adapter/http/handlers/mocks"
	"payflow/internal/domain/entities"
	"payflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentFlowHandler_PrepareCapture(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:gateway_name/capture", h.PrepareCapture)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/offline/capture", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:gateway_name/capture", h.PrepareCapture)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/offline/capture", bytes.NewBufferString(`{"amount":-10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown gateway maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:gateway_name/capture", h.PrepareCapture)

		uc.EXPECT().
			Prepare(gomock.Any(), "stripe", gomock.Any(), "payment/done", gomock.Any(), entities.ActionCapture).
			Return(entities.TransportResponse{}, usecase.ErrGatewayNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/stripe/capture", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success redirects to the token target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:gateway_name/capture", h.PrepareCapture)

		uc.EXPECT().
			Prepare(gomock.Any(), "offline", gomock.Any(), "payment/done", gomock.Any(), entities.ActionCapture).
			Return(entities.RedirectResponse("http://localhost:8080/payment/capture/tok-1"), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/offline/capture", bytes.NewBufferString(`{"amount":10,"currency":"brl"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "http://localhost:8080/payment/capture/tok-1" {
			t.Fatalf("unexpected location %q", loc)
		}
	})
}

func TestPaymentFlowHandler_PrepareSync(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
	h := NewPaymentFlowHandler(uc)

	r := gin.New()
	r.POST("/v1/payments/:gateway_name/sync", h.PrepareSync)

	payment := &entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCaptured}
	uc.EXPECT().Sync(gomock.Any(), "mercadopago", gomock.Any()).Return(payment, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/mercadopago/sync", bytes.NewBufferString(`{"details":{"mp_payment_id":"123"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if body["payment_id"] != "pay-1" || body["status"] != "captured" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestPaymentFlowHandler_ReceiveCapture(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("token from the path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.GET("/payment/capture/:token", h.ReceiveCapture)

		uc.EXPECT().
			ReceiveCapture(gomock.Any(), gomock.Any(), "tok-1").
			Return(entities.RedirectResponse("http://localhost:8080/payment/done"), nil)

		req := httptest.NewRequest(http.MethodGet, "/payment/capture/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
	})

	t.Run("token from the query field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.GET("/payment/capture", h.ReceiveCapture)

		uc.EXPECT().
			ReceiveCapture(gomock.Any(), gomock.Any(), "tok-2").
			Return(entities.NoContentResponse(), nil)

		req := httptest.NewRequest(http.MethodGet, "/payment/capture?payum_token=tok-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("missing session cookie mints one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.GET("/payment/capture/:token", h.ReceiveCapture)

		uc.EXPECT().
			ReceiveCapture(gomock.Any(), gomock.Any(), "tok-1").
			Return(entities.NoContentResponse(), nil)

		req := httptest.NewRequest(http.MethodGet, "/payment/capture/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		found := false
		for _, c := range w.Result().Cookies() {
			if c.Name == SessionCookie && c.Value != "" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a %s cookie to be set", SessionCookie)
		}
	})

	t.Run("existing session cookie is reused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.GET("/payment/capture", h.ReceiveCapture)

		uc.EXPECT().
			ReceiveCapture(gomock.Any(), "sess-42", "").
			Return(entities.NoContentResponse(), nil)

		req := httptest.NewRequest(http.MethodGet, "/payment/capture", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-42"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("invalid token maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
		h := NewPaymentFlowHandler(uc)

		r := gin.New()
		r.GET("/payment/capture/:token", h.ReceiveCapture)

		uc.EXPECT().
			ReceiveCapture(gomock.Any(), gomock.Any(), "tok-ghost").
			Return(entities.TransportResponse{}, usecase.ErrTokenInvalid)

		req := httptest.NewRequest(http.MethodGet, "/payment/capture/tok-ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "TOKEN_INVALID") {
			t.Fatalf("expected TOKEN_INVALID in body, got %s", w.Body.String())
		}
	})
}

func TestPaymentFlowHandler_ReceiveNotifyUnsafe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
	h := NewPaymentFlowHandler(uc)

	r := gin.New()
	r.POST("/payment/notify-unsafe/:gateway_name", h.ReceiveNotifyUnsafe)

	uc.EXPECT().ReceiveNotifyUnsafe(gomock.Any(), "mercadopago").Return(entities.NoContentResponse(), nil)

	req := httptest.NewRequest(http.MethodPost, "/payment/notify-unsafe/mercadopago", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestPaymentFlowHandler_ReceiveDone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentFlowUseCase(ctrl)
	h := NewPaymentFlowHandler(uc)

	r := gin.New()
	r.GET("/payment/done/:token", h.ReceiveDone)

	uc.EXPECT().
		ReceiveDone(gomock.Any(), gomock.Any(), "tok-1", gomock.Any()).
		Return(entities.TransportResponse{
			StatusCode:  http.StatusOK,
			ContentType: "application/json; charset=utf-8",
			Body:        `{"status":"captured","payment":{"payment_id":"pay-1","status":"captured"}}`,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/payment/done/tok-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"captured"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
