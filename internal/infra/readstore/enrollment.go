package readstore

import (
	"context"
	"time"

	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/pgconv"
	"swim-academy-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EnrollmentReadStore struct {
	db infra.DBTX
}

func NewEnrollmentReadStore(db infra.DBTX) *EnrollmentReadStore {
	return &EnrollmentReadStore{db: db}
}

func (r *EnrollmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EnrollmentView, error) {
	const query = `
SELECT
	e.id, e.user_id, u.email, e.lesson_id, l.title,
	e.status, e.pay_status, e.cancel_status, e.expires_at,
	e.uses_locker, e.locker_allocated, e.renewal, e.refund_amount,
	e.created_at, e.updated_at, p.paid_at
FROM enrollments e
JOIN users u ON u.id = e.user_id
JOIN lessons l ON l.id = e.lesson_id
LEFT JOIN payments p ON p.enrollment_id = e.id AND p.status <> 'FAILED'
WHERE e.id = $1`

	var (
		v            queries.EnrollmentView
		refundAmount pgtype.Int8
		paidAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.UserID, &v.UserEmail, &v.LessonID, &v.LessonTitle,
		&v.Status, &v.PayStatus, &v.CancelStatus, &v.ExpiresAt,
		&v.UsesLocker, &v.LockerAllocated, &v.Renewal, &refundAmount,
		&v.CreatedAt, &v.UpdatedAt, &paidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment view", err)
	}

	v.RefundAmount = pgconv.Int64PtrFromPgtype(refundAmount)
	v.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	return &v, nil
}

func (r *EnrollmentReadStore) FindFiltered(ctx context.Context, filter queries.EnrollmentFilter, limit int32) ([]*queries.EnrollmentListItem, error) {
	const query = `
SELECT e.id, u.email, l.title, e.status, e.pay_status, e.cancel_status, e.created_at
FROM enrollments e
JOIN users u ON u.id = e.user_id
JOIN lessons l ON l.id = e.lesson_id
WHERE ($1::uuid IS NULL OR e.lesson_id = $1)
  AND ($2::uuid IS NULL OR e.user_id = $2)
  AND ($3::text IS NULL OR e.pay_status = $3)
ORDER BY e.created_at DESC
LIMIT $4`

	var lessonID, userID pgtype.UUID
	if filter.LessonID != uuid.Nil {
		lessonID = pgconv.UUIDToPgtype(filter.LessonID)
	}
	if filter.UserID != uuid.Nil {
		userID = pgconv.UUIDToPgtype(filter.UserID)
	}
	var payStatus pgtype.Text
	if filter.PayStatus != "" {
		payStatus = pgconv.StringToPgtype(filter.PayStatus)
	}

	rows, err := r.db.Query(ctx, query, lessonID, userID, payStatus, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollments", err)
	}
	defer rows.Close()

	var out []*queries.EnrollmentListItem
	for rows.Next() {
		var item queries.EnrollmentListItem
		if err := rows.Scan(&item.ID, &item.UserEmail, &item.LessonTitle,
			&item.Status, &item.PayStatus, &item.CancelStatus, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan enrollment list item", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate enrollments", err)
	}
	return out, nil
}

func (r *EnrollmentReadStore) FindPendingCancellations(ctx context.Context) ([]*queries.CancellationRequestItem, error) {
	const query = `
SELECT e.id, u.email, l.title, e.pay_status, e.cancel_status, e.days_used_for_refund, e.updated_at
FROM enrollments e
JOIN users u ON u.id = e.user_id
JOIN lessons l ON l.id = e.lesson_id
WHERE e.cancel_status IN ('REQ', 'PENDING')
ORDER BY e.updated_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancellation requests", err)
	}
	defer rows.Close()

	var out []*queries.CancellationRequestItem
	for rows.Next() {
		var (
			item     queries.CancellationRequestItem
			daysUsed pgtype.Int4
		)
		if err := rows.Scan(&item.EnrollmentID, &item.UserEmail, &item.LessonTitle,
			&item.PayStatus, &item.CancelStatus, &daysUsed, &item.RequestedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancellation request", err)
		}
		if v := pgconv.Int32PtrFromPgtype(daysUsed); v != nil {
			d := int(*v)
			item.DaysUsedForRefund = &d
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cancellation requests", err)
	}
	return out, nil
}

func (r *EnrollmentReadStore) FindLessonAvailability(ctx context.Context, lessonID uuid.UUID, now time.Time) (*queries.LessonAvailabilityView, error) {
	const query = `
SELECT
	l.id, l.title, l.capacity, l.status,
	(
		SELECT COUNT(*)
		FROM enrollments e
		WHERE e.lesson_id = l.id
		  AND e.status = 'APPLIED'
		  AND (e.pay_status = 'PAID' OR (e.pay_status = 'UNPAID' AND e.expires_at > $2))
	) AS occupied
FROM lessons l
WHERE l.id = $1`

	var v queries.LessonAvailabilityView
	err := r.db.QueryRow(ctx, query, lessonID, now).
		Scan(&v.LessonID, &v.Title, &v.Capacity, &v.Status, &v.Occupied)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read lesson availability", err)
	}

	v.Remaining = v.Capacity - v.Occupied
	if v.Remaining < 0 {
		v.Remaining = 0
	}
	return &v, nil
}

// FindRefundFacts collects the persisted inputs of a refund preview in one
// read.
func (r *EnrollmentReadStore) FindRefundFacts(ctx context.Context, enrollmentID uuid.UUID) (*queries.RefundFacts, error) {
	const query = `
SELECT
	e.id, l.start_date, l.price,
	COALESCE(p.paid_amount, 0), COALESCE(p.lesson_amount, 0), COALESCE(p.locker_amount, 0),
	e.days_used_for_refund
FROM enrollments e
JOIN lessons l ON l.id = e.lesson_id
LEFT JOIN payments p ON p.enrollment_id = e.id AND p.status <> 'FAILED'
WHERE e.id = $1`

	var (
		facts    queries.RefundFacts
		daysUsed pgtype.Int4
	)
	err := r.db.QueryRow(ctx, query, enrollmentID).Scan(
		&facts.EnrollmentID, &facts.LessonStart, &facts.LessonPrice,
		&facts.PaidAmount, &facts.LessonAmount, &facts.LockerAmount, &daysUsed)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read refund facts", err)
	}

	if v := pgconv.Int32PtrFromPgtype(daysUsed); v != nil {
		d := int(*v)
		facts.DaysUsedForRefund = &d
	}
	return &facts, nil
}
