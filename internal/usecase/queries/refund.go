package queries

import (
	"context"
	"time"

	"swim-academy-api/internal/domain/refund"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/pkg/config"

	"github.com/google/uuid"
)

// RefundFacts are the persisted inputs a refund preview needs.
type RefundFacts struct {
	EnrollmentID      uuid.UUID
	LessonStart       time.Time
	LessonPrice       int64
	PaidAmount        int64
	LessonAmount      int64
	LockerAmount      int64
	DaysUsedForRefund *int
}

type RefundPreviewView struct {
	EnrollmentID      uuid.UUID `json:"enrollment_id"`
	PaidLessonAmount  int64     `json:"paid_lesson_amount"`
	LockerAmount      int64     `json:"locker_amount"`
	SystemDaysUsed    int       `json:"system_days_used"`
	EffectiveDaysUsed int       `json:"effective_days_used"`
	DailyRate         int64     `json:"daily_rate"`
	UsageDeduction    int64     `json:"usage_deduction"`
	Refundable        int64     `json:"refundable"`
}

// RefundQueries previews refunds without writing anything; admins call it
// repeatedly while deciding a cancellation request.
type RefundQueries interface {
	Preview(ctx context.Context, enrollmentID uuid.UUID, manualDaysOverride *int) (*RefundPreviewView, error)
}

type RefundFactsRepo interface {
	FindRefundFacts(ctx context.Context, enrollmentID uuid.UUID) (*RefundFacts, error)
}

type refundQueriesImpl struct {
	repo    RefundFactsRepo
	clock   clock.Clock
	policy  config.PolicyConfig
	gateway config.GatewayConfig
}

func NewRefundQueries(repo RefundFactsRepo, clk clock.Clock, policy config.PolicyConfig, gateway config.GatewayConfig) RefundQueries {
	return &refundQueriesImpl{
		repo:    repo,
		clock:   clk,
		policy:  policy,
		gateway: gateway,
	}
}

func (q *refundQueriesImpl) Preview(ctx context.Context, enrollmentID uuid.UUID, manualDaysOverride *int) (*RefundPreviewView, error) {
	facts, err := q.repo.FindRefundFacts(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	override := manualDaysOverride
	if override == nil {
		override = facts.DaysUsedForRefund
	}

	b := refund.Calculate(refund.Input{
		LessonStart:      facts.LessonStart,
		LessonPrice:      facts.LessonPrice,
		PaidAmount:       facts.PaidAmount,
		LessonAmount:     facts.LessonAmount,
		LockerAmount:     facts.LockerAmount,
		AssumedLockerFee: q.gateway.LockerFee,
	}, override, q.policy.DailyRate, q.clock.Now())

	return &RefundPreviewView{
		EnrollmentID:      enrollmentID,
		PaidLessonAmount:  b.PaidLessonAmount,
		LockerAmount:      b.LockerAmount,
		SystemDaysUsed:    b.SystemDaysUsed,
		EffectiveDaysUsed: b.EffectiveDaysUsed,
		DailyRate:         b.DailyRate,
		UsageDeduction:    b.UsageDeduction,
		Refundable:        b.Refundable,
	}, nil
}
