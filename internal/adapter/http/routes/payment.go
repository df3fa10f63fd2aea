package routes

import (
	"payflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

// addPrepareRoutes wires the begin half: JSON endpoints that create a pending
// payment and answer with a redirect to the token's target URL.
func addPrepareRoutes(rg *gin.RouterGroup, flowHandler *handlers.PaymentFlowHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:gateway_name/capture", flowHandler.PrepareCapture)
		payments.POST("/:gateway_name/authorize", flowHandler.PrepareAuthorize)
		payments.POST("/:gateway_name/refund", flowHandler.PrepareRefund)
		payments.POST("/:gateway_name/cancel", flowHandler.PrepareCancel)
		payments.POST("/:gateway_name/payout", flowHandler.PreparePayout)
		payments.POST("/:gateway_name/sync", flowHandler.PrepareSync)
	}
}

// addResumeRoutes wires the resume half: the endpoints token target URLs and
// provider callbacks land on. The token segment is optional everywhere except
// notify; omitting it falls back to the session stash.
func addResumeRoutes(rg *gin.RouterGroup, flowHandler *handlers.PaymentFlowHandler) {
	getAndPost(rg, "/capture", flowHandler.ReceiveCapture)
	getAndPost(rg, "/capture/:token", flowHandler.ReceiveCapture)
	getAndPost(rg, "/authorize", flowHandler.ReceiveAuthorize)
	getAndPost(rg, "/authorize/:token", flowHandler.ReceiveAuthorize)
	getAndPost(rg, "/payout", flowHandler.ReceivePayout)
	getAndPost(rg, "/payout/:token", flowHandler.ReceivePayout)
	getAndPost(rg, "/cancel", flowHandler.ReceiveCancel)
	getAndPost(rg, "/cancel/:token", flowHandler.ReceiveCancel)
	getAndPost(rg, "/refund", flowHandler.ReceiveRefund)
	getAndPost(rg, "/refund/:token", flowHandler.ReceiveRefund)
	getAndPost(rg, "/sync", flowHandler.ReceiveSync)
	getAndPost(rg, "/sync/:token", flowHandler.ReceiveSync)
	getAndPost(rg, "/notify/:token", flowHandler.ReceiveNotify)
	getAndPost(rg, "/notify-unsafe/:gateway_name", flowHandler.ReceiveNotifyUnsafe)
	getAndPost(rg, "/done", flowHandler.ReceiveDone)
	getAndPost(rg, "/done/:token", flowHandler.ReceiveDone)
}

func getAndPost(rg *gin.RouterGroup, path string, handler gin.HandlerFunc) {
	rg.GET(path, handler)
	rg.POST(path, handler)
}
