// Package gateway holds the outbound side of the payment gateway
// integration. Inbound notifications arrive over the webhook handler; the
// refund call here is the only call we originate.
package gateway

import (
	"context"
	"log/slog"
)

// ManualRefundExecutor records the refund intent and reports success; the
// money movement itself is settled through the gateway's merchant console.
// Swapping in a direct API client only requires another RefundExecutor.
type ManualRefundExecutor struct{}

func NewManualRefundExecutor() *ManualRefundExecutor {
	return &ManualRefundExecutor{}
}

func (e *ManualRefundExecutor) ExecuteRefund(ctx context.Context, tid string, amount int64) error {
	slog.Info("refund queued for manual settlement", "tid", tid, "amount", amount)
	return nil
}
