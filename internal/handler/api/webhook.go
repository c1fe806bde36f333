package api

import (
	"net/http"

	"swim-academy-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// gatewayNotifyRequest mirrors the gateway's callback payload. The gateway
// posts either form-encoded or JSON depending on merchant settings.
type gatewayNotifyRequest struct {
	TID           string `form:"tid" json:"tid" binding:"required"`
	OrderRef      string `form:"orderRef" json:"orderRef" binding:"required"`
	ResultCode    string `form:"resultCode" json:"resultCode" binding:"required"`
	ResultMessage string `form:"resultMessage" json:"resultMessage"`
	Amount        int64  `form:"amount" json:"amount"`
	PayMethod     string `form:"payMethod" json:"payMethod"`
}

type WebhookHandler struct {
	reconciliation commands.ReconciliationCommands
}

func NewWebhookHandler(reconciliation commands.ReconciliationCommands) *WebhookHandler {
	return &WebhookHandler{
		reconciliation: reconciliation,
	}
}

// @Summary Payment gateway notification
// @Description Reconcile a payment result pushed by the gateway; always answers 200 with a plain-text ack the gateway understands
// @Tags payments
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce plain
// @Success 200 {string} string "OK or FAIL"
// @Router /payments/notify [post]
func (h *WebhookHandler) Notify(c *gin.Context) {
	var req gatewayNotifyRequest
	if err := c.ShouldBind(&req); err != nil {
		// The gateway retries on any non-"OK" body; a malformed payload
		// will never become well-formed, so still answer 200.
		c.String(http.StatusOK, string(commands.AckFail))
		return
	}

	ack := h.reconciliation.HandleNotification(c.Request.Context(), commands.GatewayNotification{
		TID:           req.TID,
		OrderRef:      req.OrderRef,
		ResultCode:    req.ResultCode,
		ResultMessage: req.ResultMessage,
		Amount:        req.Amount,
		PayMethod:     req.PayMethod,
	})

	c.String(http.StatusOK, string(ack))
}
