package shared

import (
	"context"
	"time"

	"swim-academy-api/internal/domain/enrollment"
	"swim-academy-api/internal/domain/lesson"
	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/domain/payment"
	"swim-academy-api/internal/domain/user"
	"swim-academy-api/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction for ordinary write operations.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction with bounded retry on
	// conflict-class failures. The admission critical section runs here.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
}

type Tx interface {
	Lessons() LessonRepository
	Enrollments() EnrollmentRepository
	Payments() PaymentRepository
	Lockers() LockerRepository
	Users() UserRepository
	DB() infra.DBTX
}

type LessonRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error)
	// FindByIDForUpdate acquires the lesson row lock guarding the capacity
	// check-and-insert critical section.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status lesson.Status) error
	// EndedLessonIDs lists lessons whose end date has passed as of now.
	EndedLessonIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, e *enrollment.Enrollment) error
	FindByID(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*enrollment.Enrollment, error)
	Update(ctx context.Context, e *enrollment.Enrollment) error

	// CountOccupying counts PAID plus live UNPAID enrollments for a lesson.
	CountOccupying(ctx context.Context, lessonID uuid.UUID, now time.Time) (int, error)
	// HasActiveForLesson reports an existing APPLIED enrollment (paid, or
	// unpaid with a live hold) for the (user, lesson) pair.
	HasActiveForLesson(ctx context.Context, userID, lessonID uuid.UUID, now time.Time) (bool, error)
	// HasActiveInMonth reports any APPLIED enrollment by the user for a
	// lesson starting inside [monthStart, monthEnd).
	HasActiveInMonth(ctx context.Context, userID uuid.UUID, monthStart, monthEnd, now time.Time) (bool, error)

	// FindPaidWithLockerInMonth returns the user's most recent paid,
	// locker-allocated enrollment for a lesson starting inside the month.
	FindPaidWithLockerInMonth(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (*enrollment.Enrollment, error)

	// ExpireStaleHolds flips APPLIED/UNPAID enrollments past their expiry
	// to EXPIRED, returning how many rows changed.
	ExpireStaleHolds(ctx context.Context, now time.Time) (int64, error)
	// FindAllocatedForLessons lists locker-holding enrollments of the given
	// lessons, for the release sweep.
	FindAllocatedForLessons(ctx context.Context, lessonIDs []uuid.UUID) ([]*enrollment.Enrollment, error)
	// CountPaidAllocatedByCategory is the resync ground truth: paid,
	// locker-allocated enrollments of non-completed lessons grouped by the
	// owner's category.
	CountPaidAllocatedByCategory(ctx context.Context, now time.Time) (map[locker.Category]int, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByTID(ctx context.Context, tid string) (*payment.Payment, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (*payment.Payment, error)
	Update(ctx context.Context, p *payment.Payment) error
}

type LockerRepository interface {
	Get(ctx context.Context, category locker.Category) (*locker.Inventory, error)
	// GetForUpdate locks the category row; categories lock independently.
	GetForUpdate(ctx context.Context, category locker.Category) (*locker.Inventory, error)
	SaveUsed(ctx context.Context, inv *locker.Inventory) error
	// ResetAllUsage zeroes every category's used counter (monthly job).
	ResetAllUsage(ctx context.Context) (int64, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}
