package repository

import (
	"context"
	"time"

	"swim-academy-api/internal/domain/enrollment"
	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type EnrollmentRepository struct {
	db infra.DBTX
}

func NewEnrollmentRepository(db infra.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const enrollmentColumns = `
	id, user_id, lesson_id, status, pay_status, cancel_status, expires_at,
	uses_locker, locker_allocated, locker_pg_token, renewal,
	days_used_for_refund, refund_amount, created_at, updated_at`

func (r *EnrollmentRepository) Create(ctx context.Context, e *enrollment.Enrollment) error {
	const query = `
INSERT INTO enrollments (
	id, user_id, lesson_id, status, pay_status, cancel_status, expires_at,
	uses_locker, locker_allocated, locker_pg_token, renewal
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		e.ID(), e.UserID(), e.LessonID(),
		e.Status().String(), e.PayStatus().String(), e.CancelStatus().String(),
		e.ExpiresAt(), e.UsesLocker(), e.LockerAllocated(), e.LockerPgToken(), e.IsRenewal())
	if err != nil {
		return infra.WrapRepoErr("failed to create enrollment", err)
	}
	return nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *EnrollmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *EnrollmentRepository) Update(ctx context.Context, e *enrollment.Enrollment) error {
	const query = `
UPDATE enrollments SET
	status = $2,
	pay_status = $3,
	cancel_status = $4,
	locker_allocated = $5,
	locker_pg_token = $6,
	days_used_for_refund = $7,
	refund_amount = $8,
	updated_at = now()
WHERE id = $1`

	var daysUsed pgtype.Int4
	if v := e.DaysUsedForRefund(); v != nil {
		daysUsed = pgtype.Int4{Int32: int32(*v), Valid: true}
	}
	var refundAmount pgtype.Int8
	if v := e.RefundAmount(); v != nil {
		refundAmount = pgtype.Int8{Int64: *v, Valid: true}
	}

	tag, err := r.db.Exec(ctx, query,
		e.ID(), e.Status().String(), e.PayStatus().String(), e.CancelStatus().String(),
		e.LockerAllocated(), e.LockerPgToken(), daysUsed, refundAmount)
	if err != nil {
		return infra.WrapRepoErr("failed to update enrollment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("enrollment not found", nil, infra.KindNotFound)
	}
	return nil
}

// occupyingPredicate matches enrollments that consume a capacity slot:
// paid, or unpaid with a live hold.
const occupyingPredicate = `
	status = 'APPLIED'
	AND (pay_status = 'PAID' OR (pay_status = 'UNPAID' AND expires_at > $2))`

func (r *EnrollmentRepository) CountOccupying(ctx context.Context, lessonID uuid.UUID, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE lesson_id = $1 AND ` + occupyingPredicate

	var count int
	if err := r.db.QueryRow(ctx, query, lessonID, now).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count occupying enrollments", err)
	}
	return count, nil
}

func (r *EnrollmentRepository) HasActiveForLesson(ctx context.Context, userID, lessonID uuid.UUID, now time.Time) (bool, error) {
	query := `
SELECT EXISTS (
	SELECT 1 FROM enrollments
	WHERE lesson_id = $1 AND ` + occupyingPredicate + ` AND user_id = $3
)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, lessonID, now, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active enrollment", err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) HasActiveInMonth(ctx context.Context, userID uuid.UUID, monthStart, monthEnd, now time.Time) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM enrollments e
	JOIN lessons l ON l.id = e.lesson_id
	WHERE e.user_id = $1
	  AND l.start_date >= $2 AND l.start_date < $3
	  AND e.status = 'APPLIED'
	  AND (e.pay_status = 'PAID' OR (e.pay_status = 'UNPAID' AND e.expires_at > $4))
)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, monthStart, monthEnd, now).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check monthly enrollment", err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) FindPaidWithLockerInMonth(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (*enrollment.Enrollment, error) {
	query := `
SELECT ` + prefixedEnrollmentColumns("e") + `
FROM enrollments e
JOIN lessons l ON l.id = e.lesson_id
WHERE e.user_id = $1
  AND l.start_date >= $2 AND l.start_date < $3
  AND e.pay_status = 'PAID'
  AND e.locker_allocated
ORDER BY e.created_at DESC
LIMIT 1`

	return r.scanOne(r.db.QueryRow(ctx, query, userID, monthStart, monthEnd))
}

func (r *EnrollmentRepository) ExpireStaleHolds(ctx context.Context, now time.Time) (int64, error) {
	const query = `
UPDATE enrollments
SET status = 'EXPIRED', pay_status = 'EXPIRED', updated_at = now()
WHERE status = 'APPLIED' AND pay_status = 'UNPAID' AND expires_at <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale holds", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EnrollmentRepository) FindAllocatedForLessons(ctx context.Context, lessonIDs []uuid.UUID) ([]*enrollment.Enrollment, error) {
	query := `
SELECT ` + enrollmentColumns + `
FROM enrollments
WHERE lesson_id = ANY($1) AND locker_allocated
FOR UPDATE`

	rows, err := r.db.Query(ctx, query, lessonIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locker holders", err)
	}
	defer rows.Close()

	var out []*enrollment.Enrollment
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate locker holders", err)
	}
	return out, nil
}

func (r *EnrollmentRepository) CountPaidAllocatedByCategory(ctx context.Context, now time.Time) (map[locker.Category]int, error) {
	const query = `
SELECT u.gender, COUNT(*)
FROM enrollments e
JOIN users u ON u.id = e.user_id
JOIN lessons l ON l.id = e.lesson_id
WHERE e.status = 'APPLIED'
  AND e.pay_status = 'PAID'
  AND e.locker_allocated
  AND l.end_date > $1
GROUP BY u.gender`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count allocated lockers", err)
	}
	defer rows.Close()

	truth := make(map[locker.Category]int)
	for rows.Next() {
		var (
			gender string
			count  int
		)
		if err := rows.Scan(&gender, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan locker count", err)
		}
		truth[locker.Category(gender)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate locker counts", err)
	}
	return truth, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *EnrollmentRepository) scanOne(row pgx.Row) (*enrollment.Enrollment, error) {
	e, err := r.scanRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *EnrollmentRepository) scanRow(row rowScanner) (*enrollment.Enrollment, error) {
	var (
		id, userID, lessonID             uuid.UUID
		status, payStatus, cancelStatus  string
		expiresAt, createdAt, updatedAt  time.Time
		usesLocker, lockerAllocated      bool
		lockerPgToken                    string
		renewal                          bool
		daysUsed                         pgtype.Int4
		refundAmount                     pgtype.Int8
	)
	err := row.Scan(
		&id, &userID, &lessonID, &status, &payStatus, &cancelStatus, &expiresAt,
		&usesLocker, &lockerAllocated, &lockerPgToken, &renewal,
		&daysUsed, &refundAmount, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan enrollment", err)
	}

	var daysUsedPtr *int
	if v := pgconv.Int32PtrFromPgtype(daysUsed); v != nil {
		d := int(*v)
		daysUsedPtr = &d
	}

	return enrollment.Reconstruct(
		id, userID, lessonID,
		enrollment.Status(status),
		enrollment.PayStatus(payStatus),
		enrollment.CancelStatus(cancelStatus),
		expiresAt,
		usesLocker, lockerAllocated,
		lockerPgToken,
		renewal,
		daysUsedPtr,
		pgconv.Int64PtrFromPgtype(refundAmount),
		createdAt, updatedAt,
	), nil
}

func prefixedEnrollmentColumns(alias string) string {
	return alias + `.id, ` + alias + `.user_id, ` + alias + `.lesson_id, ` +
		alias + `.status, ` + alias + `.pay_status, ` + alias + `.cancel_status, ` +
		alias + `.expires_at, ` + alias + `.uses_locker, ` + alias + `.locker_allocated, ` +
		alias + `.locker_pg_token, ` + alias + `.renewal, ` + alias + `.days_used_for_refund, ` +
		alias + `.refund_amount, ` + alias + `.created_at, ` + alias + `.updated_at`
}
