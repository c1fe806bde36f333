package commands

import (
	"context"
	"log/slog"
	"time"

	"swim-academy-api/internal/domain/enrollment"
	"swim-academy-api/internal/domain/lesson"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/pkg/config"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// AdmissionCommands owns enrollment creation against lesson capacity and
// the OPEN→CLOSED capacity transition. The capacity check-and-insert runs
// under a serializable transaction with the lesson row write-locked; the
// unit of work retries conflict-class failures with bounded backoff while
// business-rule violations surface immediately.
type AdmissionCommands interface {
	CreateEnrollment(ctx context.Context, userID, lessonID uuid.UUID, clientIP string) (*shared.EnrollmentSnapshot, error)
	// CreateRenewal is the structural variant with the renewal window check
	// and a recorded (never resolved here) locker request.
	CreateRenewal(ctx context.Context, userID, lessonID uuid.UUID, wantsLocker bool, clientIP string) (*shared.EnrollmentSnapshot, error)
}

type admissionCommands struct {
	uow      shared.UnitOfWork
	notifier CapacityNotifier
	clock    clock.Clock
	policy   config.PolicyConfig
}

func NewAdmissionCommands(
	uow shared.UnitOfWork,
	notifier CapacityNotifier,
	clk clock.Clock,
	policy config.PolicyConfig,
) AdmissionCommands {
	return &admissionCommands{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
	}
}

func (a *admissionCommands) CreateEnrollment(ctx context.Context, userID, lessonID uuid.UUID, clientIP string) (*shared.EnrollmentSnapshot, error) {
	return a.admit(ctx, userID, lessonID, admitParams{clientIP: clientIP})
}

func (a *admissionCommands) CreateRenewal(ctx context.Context, userID, lessonID uuid.UUID, wantsLocker bool, clientIP string) (*shared.EnrollmentSnapshot, error) {
	return a.admit(ctx, userID, lessonID, admitParams{
		clientIP:    clientIP,
		renewal:     true,
		wantsLocker: wantsLocker,
	})
}

type admitParams struct {
	clientIP    string
	renewal     bool
	wantsLocker bool
}

func (a *admissionCommands) admit(ctx context.Context, userID, lessonID uuid.UUID, p admitParams) (*shared.EnrollmentSnapshot, error) {
	now := a.clock.Now()

	var (
		snap      shared.EnrollmentSnapshot
		remaining int
		closed    bool
	)

	err := a.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		les, err := tx.Lessons().FindByIDForUpdate(ctx, lessonID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrLessonNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !les.IsOpen() {
			return errs.ErrLessonNotOpen
		}

		if err := a.checkWindow(now, les, p.renewal); err != nil {
			return err
		}

		if err := a.checkDuplicates(ctx, tx, userID, les, now); err != nil {
			return err
		}

		occupied, err := tx.Enrollments().CountOccupying(ctx, lessonID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if les.Full(occupied) {
			return errs.ErrCapacityExhausted
		}

		hold := enrollment.NewHold(userID, lessonID, p.wantsLocker, p.renewal, now.Add(a.policy.HoldTTL))
		if err := tx.Enrollments().Create(ctx, hold); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateEnrollment
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		occupied++
		remaining = les.Capacity() - occupied
		if les.Full(occupied) {
			if err := tx.Lessons().UpdateStatus(ctx, lessonID, lesson.StatusClosed); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			closed = true
		}

		snap = toEnrollmentSnapshot(hold)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrTransientConflict)
		}
		return nil, err
	}

	slog.Info("enrollment hold created",
		"enrollment_id", snap.ID,
		"lesson_id", lessonID,
		"user_id", userID,
		"renewal", p.renewal,
		"remaining", remaining,
		"client_ip", p.clientIP)

	// Post-commit, best-effort; the notifier swallows its own failures.
	a.notifier.LessonCapacityChanged(ctx, lessonID, remaining, closed)

	return &snap, nil
}

func (a *admissionCommands) checkWindow(now time.Time, les *lesson.Lesson, renewal bool) error {
	if renewal {
		if !lesson.RenewalWindowOpen(now, les.StartDate()) {
			return errs.ErrWindowClosed
		}
		return nil
	}
	if !lesson.EnrollWindowOpen(now, les.StartDate()) {
		return errs.ErrWindowClosed
	}
	return nil
}

func (a *admissionCommands) checkDuplicates(ctx context.Context, tx shared.Tx, userID uuid.UUID, les *lesson.Lesson, now time.Time) error {
	dup, err := tx.Enrollments().HasActiveForLesson(ctx, userID, les.ID(), now)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if dup {
		return errs.ErrDuplicateEnrollment
	}

	monthStart, monthEnd := monthBounds(les.StartDate())
	busy, err := tx.Enrollments().HasActiveInMonth(ctx, userID, monthStart, monthEnd, now)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if busy {
		return errs.ErrMonthlyLimit
	}
	return nil
}

func toEnrollmentSnapshot(e *enrollment.Enrollment) shared.EnrollmentSnapshot {
	return shared.EnrollmentSnapshot{
		ID:              e.ID(),
		UserID:          e.UserID(),
		LessonID:        e.LessonID(),
		Status:          e.Status().String(),
		PayStatus:       e.PayStatus().String(),
		CancelStatus:    e.CancelStatus().String(),
		ExpiresAt:       e.ExpiresAt(),
		UsesLocker:      e.UsesLocker(),
		LockerAllocated: e.LockerAllocated(),
		Renewal:         e.IsRenewal(),
	}
}

// monthBounds returns [first day of the month, first day of the next
// month) for the one-lesson-per-month rule.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
