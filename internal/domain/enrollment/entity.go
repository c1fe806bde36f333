package enrollment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotUnpaid          = errors.New("enrollment is not unpaid")
	ErrAlreadyTerminal    = errors.New("enrollment is in a terminal state")
	ErrInvalidCancelState = errors.New("invalid cancel-status transition")
	ErrLockerTokenMissing = errors.New("locker allocation requires a transaction token")
	ErrHoldNotExpired     = errors.New("hold has not expired yet")
)

type Enrollment struct {
	id                uuid.UUID
	userID            uuid.UUID
	lessonID          uuid.UUID
	status            Status
	payStatus         PayStatus
	cancelStatus      CancelStatus
	expiresAt         time.Time
	usesLocker        bool
	lockerAllocated   bool
	lockerPgToken     string
	renewal           bool
	daysUsedForRefund *int
	refundAmount      *int64
	createdAt         time.Time
	updatedAt         time.Time
}

// NewHold creates a fresh UNPAID enrollment reserving one capacity slot
// until expiresAt.
func NewHold(userID, lessonID uuid.UUID, wantsLocker, renewal bool, expiresAt time.Time) *Enrollment {
	return &Enrollment{
		id:           uuid.New(),
		userID:       userID,
		lessonID:     lessonID,
		status:       StatusApplied,
		payStatus:    PayUnpaid,
		cancelStatus: CancelNone,
		expiresAt:    expiresAt,
		usesLocker:   wantsLocker,
		renewal:      renewal,
	}
}

func Reconstruct(
	id, userID, lessonID uuid.UUID,
	status Status,
	payStatus PayStatus,
	cancelStatus CancelStatus,
	expiresAt time.Time,
	usesLocker, lockerAllocated bool,
	lockerPgToken string,
	renewal bool,
	daysUsedForRefund *int,
	refundAmount *int64,
	createdAt, updatedAt time.Time,
) *Enrollment {
	return &Enrollment{
		id:                id,
		userID:            userID,
		lessonID:          lessonID,
		status:            status,
		payStatus:         payStatus,
		cancelStatus:      cancelStatus,
		expiresAt:         expiresAt,
		usesLocker:        usesLocker,
		lockerAllocated:   lockerAllocated,
		lockerPgToken:     lockerPgToken,
		renewal:           renewal,
		daysUsedForRefund: daysUsedForRefund,
		refundAmount:      refundAmount,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (e *Enrollment) ID() uuid.UUID              { return e.id }
func (e *Enrollment) UserID() uuid.UUID          { return e.userID }
func (e *Enrollment) LessonID() uuid.UUID        { return e.lessonID }
func (e *Enrollment) Status() Status             { return e.status }
func (e *Enrollment) PayStatus() PayStatus       { return e.payStatus }
func (e *Enrollment) CancelStatus() CancelStatus { return e.cancelStatus }
func (e *Enrollment) ExpiresAt() time.Time       { return e.expiresAt }
func (e *Enrollment) UsesLocker() bool           { return e.usesLocker }
func (e *Enrollment) LockerAllocated() bool      { return e.lockerAllocated }
func (e *Enrollment) LockerPgToken() string      { return e.lockerPgToken }
func (e *Enrollment) IsRenewal() bool            { return e.renewal }
func (e *Enrollment) DaysUsedForRefund() *int    { return e.daysUsedForRefund }
func (e *Enrollment) RefundAmount() *int64       { return e.refundAmount }
func (e *Enrollment) CreatedAt() time.Time       { return e.createdAt }
func (e *Enrollment) UpdatedAt() time.Time       { return e.updatedAt }

// LiveHold reports whether the enrollment still consumes a capacity slot
// without having been paid.
func (e *Enrollment) LiveHold(now time.Time) bool {
	return e.status == StatusApplied && e.payStatus == PayUnpaid && now.Before(e.expiresAt)
}

// Occupying reports whether the enrollment consumes a capacity slot at now.
func (e *Enrollment) Occupying(now time.Time) bool {
	if e.status != StatusApplied {
		return false
	}
	return e.payStatus == PayPaid || e.LiveHold(now)
}

// MarkPaid transitions UNPAID to PAID. PAID is one-way: marking an already
// paid enrollment is a no-op so that redelivered notifications converge.
func (e *Enrollment) MarkPaid() error {
	switch e.payStatus {
	case PayPaid:
		return nil
	case PayUnpaid:
		e.payStatus = PayPaid
		return nil
	default:
		return ErrNotUnpaid
	}
}

// Expire transitions a stale unpaid hold to EXPIRED.
func (e *Enrollment) Expire(now time.Time) error {
	if e.status != StatusApplied || e.payStatus != PayUnpaid {
		return ErrNotUnpaid
	}
	if now.Before(e.expiresAt) {
		return ErrHoldNotExpired
	}
	e.status = StatusExpired
	e.payStatus = PayExpired
	return nil
}

// AllocateLocker records a locker allocation bound to the payment
// transaction token. An allocation without a token is invalid.
func (e *Enrollment) AllocateLocker(pgToken string) error {
	if pgToken == "" {
		return ErrLockerTokenMissing
	}
	e.lockerAllocated = true
	e.lockerPgToken = pgToken
	return nil
}

func (e *Enrollment) ClearLocker() {
	e.lockerAllocated = false
	e.lockerPgToken = ""
}

// CancelUnpaid releases an unpaid hold immediately, freeing its capacity
// slot without entering the refund request flow.
func (e *Enrollment) CancelUnpaid() error {
	if e.status != StatusApplied || e.payStatus != PayUnpaid {
		return ErrNotUnpaid
	}
	e.status = StatusCanceled
	return nil
}

// RequestCancel moves NONE to REQ for a paid enrollment.
func (e *Enrollment) RequestCancel() error {
	if e.cancelStatus != CancelNone {
		return ErrInvalidCancelState
	}
	if e.payStatus != PayPaid && e.payStatus != PayPartiallyRefunded {
		return ErrNotUnpaid
	}
	e.status = StatusCanceledReq
	e.cancelStatus = CancelReq
	e.payStatus = PayRefundRequested
	return nil
}

// ApproveCancel finalizes an approved refund. full indicates the whole
// lesson amount was refunded.
func (e *Enrollment) ApproveCancel(refundAmount int64, full bool) error {
	if !e.cancelStatus.CanDecide() {
		return ErrInvalidCancelState
	}
	e.cancelStatus = CancelApproved
	e.status = StatusCanceled
	if full {
		e.payStatus = PayRefunded
	} else {
		e.payStatus = PayPartiallyRefunded
	}
	e.refundAmount = &refundAmount
	return nil
}

// DenyCancel rejects a pending request with no financial side effects.
// The pay status returns to whatever the refund history says it was
// before the request.
func (e *Enrollment) DenyCancel() error {
	if !e.cancelStatus.CanDecide() {
		return ErrInvalidCancelState
	}
	e.cancelStatus = CancelDenied
	e.status = StatusApplied
	if e.refundAmount != nil && *e.refundAmount > 0 {
		e.payStatus = PayPartiallyRefunded
	} else {
		e.payStatus = PayPaid
	}
	return nil
}

// MarkRefundPending parks the request when automated refund execution could
// not complete and manual follow-up is required.
func (e *Enrollment) MarkRefundPending() error {
	if e.cancelStatus != CancelReq {
		return ErrInvalidCancelState
	}
	e.cancelStatus = CancelPending
	e.payStatus = PayRefundPendingAdminCheck
	return nil
}

// CancelByAdmin is the direct admin path, bypassing the request flow.
func (e *Enrollment) CancelByAdmin() error {
	if e.status == StatusCanceled || e.status == StatusCanceledByAdmin {
		return ErrAlreadyTerminal
	}
	e.status = StatusCanceledByAdmin
	e.cancelStatus = CancelApproved
	return nil
}

// OverrideDaysUsed stores an admin-entered day count used by the refund
// calculation instead of the system-computed one.
func (e *Enrollment) OverrideDaysUsed(days int) {
	e.daysUsedForRefund = &days
}
