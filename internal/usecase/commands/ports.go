package commands

import (
	"context"

	"github.com/google/uuid"
)

// CapacityNotifier publishes lesson seat-count changes to external
// observers (a UI live-update channel). Publishing is best-effort:
// implementations log failures and never return them, so a notification
// problem cannot fail an admission transaction.
type CapacityNotifier interface {
	LessonCapacityChanged(ctx context.Context, lessonID uuid.UUID, remaining int, closed bool)
}

// RefundExecutor performs the outbound refund against the payment
// gateway. An error parks the cancellation in the pending-admin state
// instead of failing the approval outright.
type RefundExecutor interface {
	ExecuteRefund(ctx context.Context, tid string, amount int64) error
}
