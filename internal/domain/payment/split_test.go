//go:build unit

package payment_test

import (
	"testing"
	"time"

	"swim-academy-api/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSplitAmount(t *testing.T) {
	const (
		lessonPrice = int64(35000)
		lockerFee   = int64(30000)
		tolerance   = int64(1000)
	)

	testCases := []struct {
		name       string
		total      int64
		wantLesson int64
		wantLocker int64
		reconciled bool
	}{
		{
			name:       "lesson only",
			total:      35000,
			wantLesson: 35000,
			wantLocker: 0,
			reconciled: true,
		},
		{
			name:       "lesson plus exact locker fee",
			total:      65000,
			wantLesson: 35000,
			wantLocker: 30000,
			reconciled: true,
		},
		{
			name:       "locker fee at lower tolerance edge",
			total:      64000,
			wantLesson: 35000,
			wantLocker: 29000,
			reconciled: true,
		},
		{
			name:       "locker fee at upper tolerance edge",
			total:      66000,
			wantLesson: 35000,
			wantLocker: 31000,
			reconciled: true,
		},
		{
			name:       "remainder outside band attributes everything to lesson",
			total:      50000,
			wantLesson: 50000,
			wantLocker: 0,
			reconciled: false,
		},
		{
			name:       "underpayment attributes everything to lesson",
			total:      30000,
			wantLesson: 30000,
			wantLocker: 0,
			reconciled: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			split := payment.SplitAmount(tc.total, lessonPrice, lockerFee, tolerance)
			assert.Equal(t, tc.wantLesson, split.LessonAmount)
			assert.Equal(t, tc.wantLocker, split.LockerAmount)
			assert.Equal(t, tc.reconciled, split.Reconciled)
		})
	}
}

func TestAddRefund(t *testing.T) {
	t.Run("partial then full refund", func(t *testing.T) {
		p := payment.Reconstruct(
			uuid.New(), uuid.New(), "T100", 65000, 35000, 30000, 0,
			payment.StatusPaid, "0000", "success", "CARD", time.Now(),
		)

		assert.NoError(t, p.AddRefund(20000))
		assert.Equal(t, payment.StatusPartialRefunded, p.Status())
		assert.False(t, p.FullyRefunded())

		assert.NoError(t, p.AddRefund(45000))
		assert.Equal(t, payment.StatusCanceled, p.Status())
		assert.True(t, p.FullyRefunded())
	})

	t.Run("refund may never exceed paid amount", func(t *testing.T) {
		p := payment.Reconstruct(
			uuid.New(), uuid.New(), "T101", 35000, 35000, 0, 0,
			payment.StatusPaid, "0000", "success", "CARD", time.Now(),
		)
		assert.ErrorIs(t, p.AddRefund(35001), payment.ErrRefundExceedsPaid)
		assert.Equal(t, int64(0), p.RefundedAmount())
	})
}
