//go:build unit || e2e

package builder

import (
	"time"

	"swim-academy-api/internal/domain/enrollment"

	"github.com/google/uuid"
)

type EnrollmentBuilder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	LessonID          uuid.UUID
	Status            enrollment.Status
	PayStatus         enrollment.PayStatus
	CancelStatus      enrollment.CancelStatus
	ExpiresAt         time.Time
	UsesLocker        bool
	LockerAllocated   bool
	LockerPgToken     string
	Renewal           bool
	DaysUsedForRefund *int
	RefundAmount      *int64
}

func NewEnrollmentBuilder() *EnrollmentBuilder {
	return &EnrollmentBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		LessonID:     uuid.New(),
		Status:       enrollment.StatusApplied,
		PayStatus:    enrollment.PayUnpaid,
		CancelStatus: enrollment.CancelNone,
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}
}

func (b *EnrollmentBuilder) With(mutate func(*EnrollmentBuilder)) *EnrollmentBuilder {
	mutate(b)
	return b
}

func (b *EnrollmentBuilder) Paid() *EnrollmentBuilder {
	b.PayStatus = enrollment.PayPaid
	return b
}

func (b *EnrollmentBuilder) WithLocker(pgToken string) *EnrollmentBuilder {
	b.UsesLocker = true
	b.LockerAllocated = true
	b.LockerPgToken = pgToken
	return b
}

func (b *EnrollmentBuilder) AsRenewal() *EnrollmentBuilder {
	b.Renewal = true
	return b
}

func (b *EnrollmentBuilder) BuildDomain() *enrollment.Enrollment {
	now := time.Now()
	return enrollment.Reconstruct(
		b.ID, b.UserID, b.LessonID,
		b.Status, b.PayStatus, b.CancelStatus,
		b.ExpiresAt,
		b.UsesLocker, b.LockerAllocated, b.LockerPgToken,
		b.Renewal,
		b.DaysUsedForRefund, b.RefundAmount,
		now, now,
	)
}
