package commands

import (
	"context"
	"log/slog"

	"swim-academy-api/internal/domain/enrollment"
	"swim-academy-api/internal/domain/refund"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/pkg/config"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CancelDecision is the result of an approved cancellation.
type CancelDecision struct {
	Enrollment shared.EnrollmentSnapshot
	Breakdown  refund.Breakdown
}

// CancellationCommands covers the member cancel request and the admin
// decisions over it, plus the direct admin cancel path.
type CancellationCommands interface {
	// RequestCancel cancels an unpaid hold outright; for a paid enrollment
	// it opens a refund request for admin review.
	RequestCancel(ctx context.Context, userID, enrollmentID uuid.UUID) (*shared.EnrollmentSnapshot, error)
	// ApproveCancel computes the refund, executes it and finalizes the
	// cancellation. A refund-execution failure parks the request in the
	// pending-admin state instead of failing.
	ApproveCancel(ctx context.Context, enrollmentID uuid.UUID, manualDaysOverride *int) (*CancelDecision, error)
	DenyCancel(ctx context.Context, enrollmentID uuid.UUID) error
	// CancelByAdmin bypasses the request flow entirely, releasing any
	// locker and leaving money movements to manual follow-up.
	CancelByAdmin(ctx context.Context, enrollmentID uuid.UUID) error
	// OverrideDaysUsed stores an admin-entered day count picked up by a
	// later approval.
	OverrideDaysUsed(ctx context.Context, enrollmentID uuid.UUID, days int) error
}

type cancellationCommands struct {
	uow      shared.UnitOfWork
	lockers  usecase.LockerInventoryManager
	executor RefundExecutor
	clock    clock.Clock
	policy   config.PolicyConfig
	gateway  config.GatewayConfig
}

func NewCancellationCommands(
	uow shared.UnitOfWork,
	lockers usecase.LockerInventoryManager,
	executor RefundExecutor,
	clk clock.Clock,
	policy config.PolicyConfig,
	gateway config.GatewayConfig,
) CancellationCommands {
	return &cancellationCommands{
		uow:      uow,
		lockers:  lockers,
		executor: executor,
		clock:    clk,
		policy:   policy,
		gateway:  gateway,
	}
}

func (c *cancellationCommands) RequestCancel(ctx context.Context, userID, enrollmentID uuid.UUID) (*shared.EnrollmentSnapshot, error) {
	var snap shared.EnrollmentSnapshot

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		enr, err := c.lockEnrollment(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}
		// Members may only touch their own enrollments; not revealing
		// whether the id exists for someone else.
		if enr.UserID() != userID {
			return errs.ErrEnrollmentNotFound
		}

		switch enr.PayStatus() {
		case enrollment.PayUnpaid:
			if err := enr.CancelUnpaid(); err != nil {
				return errs.Mark(err, errs.ErrInvalidCancelState)
			}
		default:
			if err := enr.RequestCancel(); err != nil {
				return errs.Mark(err, errs.ErrInvalidCancelState)
			}
		}

		if err := tx.Enrollments().Update(ctx, enr); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		snap = toEnrollmentSnapshot(enr)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("cancellation requested",
		"enrollment_id", enrollmentID, "user_id", userID, "status", snap.Status)
	return &snap, nil
}

func (c *cancellationCommands) ApproveCancel(ctx context.Context, enrollmentID uuid.UUID, manualDaysOverride *int) (*CancelDecision, error) {
	now := c.clock.Now()
	var decision CancelDecision

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		enr, err := c.lockEnrollment(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}
		if !enr.CancelStatus().CanDecide() {
			return errs.ErrInvalidCancelState
		}

		les, err := tx.Lessons().FindByID(ctx, enr.LessonID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		pay, err := tx.Payments().FindByEnrollmentID(ctx, enrollmentID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		override := manualDaysOverride
		if override == nil {
			override = enr.DaysUsedForRefund()
		}

		breakdown := refund.Calculate(refund.Input{
			LessonStart:      les.StartDate(),
			LessonPrice:      les.Price(),
			PaidAmount:       pay.PaidAmount(),
			LessonAmount:     pay.LessonAmount(),
			LockerAmount:     pay.LockerAmount(),
			AssumedLockerFee: c.gateway.LockerFee,
		}, override, c.policy.DailyRate, now)

		if breakdown.Refundable > 0 {
			if err := c.executor.ExecuteRefund(ctx, pay.TID(), breakdown.Refundable); err != nil {
				slog.Error("refund execution failed, parking request for manual follow-up",
					"enrollment_id", enrollmentID, "tid", pay.TID(),
					"amount", breakdown.Refundable, "error", err)
				if err := enr.MarkRefundPending(); err != nil {
					return errs.Mark(err, errs.ErrInvalidCancelState)
				}
				if err := tx.Enrollments().Update(ctx, enr); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
				decision = CancelDecision{Enrollment: toEnrollmentSnapshot(enr), Breakdown: breakdown}
				return nil
			}
		}

		if err := pay.AddRefund(breakdown.Refundable); err != nil {
			return errs.Wrap(err, "refund exceeds recorded payment")
		}

		if enr.LockerAllocated() {
			category, err := userCategory(ctx, tx, enr.UserID())
			if err != nil {
				return err
			}
			if err := c.lockers.Decrement(ctx, tx, category); err != nil {
				return err
			}
			enr.ClearLocker()
		}

		full := breakdown.Refundable == breakdown.PaidLessonAmount
		if err := enr.ApproveCancel(breakdown.Refundable, full); err != nil {
			return errs.Mark(err, errs.ErrInvalidCancelState)
		}

		if err := tx.Payments().Update(ctx, pay); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Enrollments().Update(ctx, enr); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		decision = CancelDecision{Enrollment: toEnrollmentSnapshot(enr), Breakdown: breakdown}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("cancellation decided",
		"enrollment_id", enrollmentID,
		"cancel_status", decision.Enrollment.CancelStatus,
		"refundable", decision.Breakdown.Refundable,
		"days_used", decision.Breakdown.EffectiveDaysUsed)
	return &decision, nil
}

func (c *cancellationCommands) DenyCancel(ctx context.Context, enrollmentID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		enr, err := c.lockEnrollment(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}
		if err := enr.DenyCancel(); err != nil {
			return errs.Mark(err, errs.ErrInvalidCancelState)
		}
		return wrapUpdate(tx.Enrollments().Update(ctx, enr))
	})
	if err != nil {
		return err
	}
	slog.Info("cancellation denied", "enrollment_id", enrollmentID)
	return nil
}

func (c *cancellationCommands) CancelByAdmin(ctx context.Context, enrollmentID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		enr, err := c.lockEnrollment(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}

		if enr.LockerAllocated() {
			category, err := userCategory(ctx, tx, enr.UserID())
			if err != nil {
				return err
			}
			if err := c.lockers.Decrement(ctx, tx, category); err != nil {
				return err
			}
			enr.ClearLocker()
		}

		if err := enr.CancelByAdmin(); err != nil {
			return errs.Mark(err, errs.ErrAlreadyCanceled)
		}
		return wrapUpdate(tx.Enrollments().Update(ctx, enr))
	})
	if err != nil {
		return err
	}
	slog.Info("enrollment canceled by admin", "enrollment_id", enrollmentID)
	return nil
}

func (c *cancellationCommands) OverrideDaysUsed(ctx context.Context, enrollmentID uuid.UUID, days int) error {
	if days < 0 {
		return errs.Mark(errs.Newf("negative days used: %d", days), errs.ErrInvalidCancelState)
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		enr, err := c.lockEnrollment(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}
		enr.OverrideDaysUsed(days)
		return wrapUpdate(tx.Enrollments().Update(ctx, enr))
	})
}

func (c *cancellationCommands) lockEnrollment(ctx context.Context, tx shared.Tx, id uuid.UUID) (*enrollment.Enrollment, error) {
	enr, err := tx.Enrollments().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEnrollmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return enr, nil
}

func wrapUpdate(err error) error {
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
