package repository

import (
	"context"
	"time"

	"swim-academy-api/internal/domain/payment"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db infra.DBTX
}

func NewPaymentRepository(db infra.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `
	id, enrollment_id, tid, paid_amount, lesson_amount, locker_amount,
	refunded_amount, status, result_code, result_message, pay_method, paid_at`

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	const query = `
INSERT INTO payments (
	id, enrollment_id, tid, paid_amount, lesson_amount, locker_amount,
	refunded_amount, status, result_code, result_message, pay_method, paid_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		p.ID(), p.EnrollmentID(), p.TID(),
		p.PaidAmount(), p.LessonAmount(), p.LockerAmount(), p.RefundedAmount(),
		p.Status().String(), p.ResultCode(), p.ResultMessage(), p.PayMethod(), p.PaidAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByTID(ctx context.Context, tid string) (*payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tid = $1`
	return scanPayment(r.db.QueryRow(ctx, query, tid))
}

// FindByEnrollmentID returns the live payment of the enrollment; failed
// attempts are skipped.
func (r *PaymentRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (*payment.Payment, error) {
	query := `
SELECT ` + paymentColumns + `
FROM payments
WHERE enrollment_id = $1 AND status <> 'FAILED'
ORDER BY paid_at DESC
LIMIT 1`
	return scanPayment(r.db.QueryRow(ctx, query, enrollmentID))
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	const query = `
UPDATE payments SET
	refunded_amount = $2,
	status = $3
WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, p.ID(), p.RefundedAmount(), p.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanPayment(row pgx.Row) (*payment.Payment, error) {
	var (
		id, enrollmentID                            uuid.UUID
		tid, status, resultCode, resultMsg, method  string
		paidAmount, lessonAmount, lockerAmount      int64
		refundedAmount                              int64
		paidAt                                      time.Time
	)
	err := row.Scan(
		&id, &enrollmentID, &tid, &paidAmount, &lessonAmount, &lockerAmount,
		&refundedAmount, &status, &resultCode, &resultMsg, &method, &paidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan payment", err)
	}

	return payment.Reconstruct(
		id, enrollmentID, tid,
		paidAmount, lessonAmount, lockerAmount, refundedAmount,
		payment.Status(status), resultCode, resultMsg, method, paidAt,
	), nil
}
