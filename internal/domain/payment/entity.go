package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRefundExceedsPaid = errors.New("refund exceeds paid amount")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

type Payment struct {
	id             uuid.UUID
	enrollmentID   uuid.UUID
	tid            string
	paidAmount     int64
	lessonAmount   int64
	lockerAmount   int64
	refundedAmount int64
	status         Status
	resultCode     string
	resultMessage  string
	payMethod      string
	paidAt         time.Time
}

// NewPaid records a successfully confirmed payment.
func NewPaid(enrollmentID uuid.UUID, tid string, paidAmount, lessonAmount, lockerAmount int64, resultCode, resultMessage, payMethod string, paidAt time.Time) (*Payment, error) {
	if paidAmount < 0 || lessonAmount < 0 || lockerAmount < 0 {
		return nil, ErrNegativeAmount
	}
	return &Payment{
		id:            uuid.New(),
		enrollmentID:  enrollmentID,
		tid:           tid,
		paidAmount:    paidAmount,
		lessonAmount:  lessonAmount,
		lockerAmount:  lockerAmount,
		status:        StatusPaid,
		resultCode:    resultCode,
		resultMessage: resultMessage,
		payMethod:     payMethod,
		paidAt:        paidAt,
	}, nil
}

// NewFailed records a gateway failure notification for the audit trail.
func NewFailed(enrollmentID uuid.UUID, tid, resultCode, resultMessage, payMethod string, at time.Time) *Payment {
	return &Payment{
		id:            uuid.New(),
		enrollmentID:  enrollmentID,
		tid:           tid,
		status:        StatusFailed,
		resultCode:    resultCode,
		resultMessage: resultMessage,
		payMethod:     payMethod,
		paidAt:        at,
	}
}

func Reconstruct(
	id, enrollmentID uuid.UUID,
	tid string,
	paidAmount, lessonAmount, lockerAmount, refundedAmount int64,
	status Status,
	resultCode, resultMessage, payMethod string,
	paidAt time.Time,
) *Payment {
	return &Payment{
		id:             id,
		enrollmentID:   enrollmentID,
		tid:            tid,
		paidAmount:     paidAmount,
		lessonAmount:   lessonAmount,
		lockerAmount:   lockerAmount,
		refundedAmount: refundedAmount,
		status:         status,
		resultCode:     resultCode,
		resultMessage:  resultMessage,
		payMethod:      payMethod,
		paidAt:         paidAt,
	}
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) EnrollmentID() uuid.UUID { return p.enrollmentID }
func (p *Payment) TID() string             { return p.tid }
func (p *Payment) PaidAmount() int64       { return p.paidAmount }
func (p *Payment) LessonAmount() int64     { return p.lessonAmount }
func (p *Payment) LockerAmount() int64     { return p.lockerAmount }
func (p *Payment) RefundedAmount() int64   { return p.refundedAmount }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) ResultCode() string      { return p.resultCode }
func (p *Payment) ResultMessage() string   { return p.resultMessage }
func (p *Payment) PayMethod() string       { return p.payMethod }
func (p *Payment) PaidAt() time.Time       { return p.paidAt }

// AddRefund increases the refunded amount, flipping the status to
// PARTIAL_REFUNDED or CANCELED when the refund reaches the paid amount.
func (p *Payment) AddRefund(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if p.refundedAmount+amount > p.paidAmount {
		return ErrRefundExceedsPaid
	}
	p.refundedAmount += amount
	if p.refundedAmount == p.paidAmount {
		p.status = StatusCanceled
	} else {
		p.status = StatusPartialRefunded
	}
	return nil
}

// FullyRefunded reports whether nothing remains to refund.
func (p *Payment) FullyRefunded() bool {
	return p.refundedAmount >= p.paidAmount
}
