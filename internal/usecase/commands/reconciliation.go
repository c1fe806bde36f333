package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"swim-academy-api/internal/domain/enrollment"
	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/domain/payment"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/pkg/config"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// AckCode is the plain-text token the gateway expects in the webhook
// response body. The vocabulary is the gateway's, not ours.
type AckCode string

const (
	AckOK   AckCode = "OK"
	AckFail AckCode = "FAIL"
)

// resultCodeSuccess is the gateway's approval code; anything else is a
// declined or aborted payment.
const resultCodeSuccess = "0000"

const orderRefPrefix = "ENR-"

// GatewayNotification is the payment gateway's webhook payload.
type GatewayNotification struct {
	TID           string
	OrderRef      string
	ResultCode    string
	ResultMessage string
	Amount        int64
	PayMethod     string
}

// OrderRef encodes an enrollment id into the order reference handed to the
// gateway at checkout.
func OrderRef(enrollmentID uuid.UUID) string {
	return orderRefPrefix + enrollmentID.String()
}

// ParseOrderRef is the inverse of OrderRef; it fails closed on anything it
// does not recognize.
func ParseOrderRef(ref string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(ref, orderRefPrefix)
	if !ok {
		return uuid.Nil, errs.Mark(errs.Newf("unexpected order reference format: %q", ref), errs.ErrMalformedOrderRef)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrMalformedOrderRef)
	}
	return id, nil
}

// ReconciliationCommands applies gateway payment notifications to
// enrollment, payment and locker state. It is the single writer of the
// UNPAID→PAID transition and must stay idempotent under redelivery.
type ReconciliationCommands interface {
	// HandleNotification never returns an error: every code path ends in
	// an explicit ack so the gateway does not retry-storm us over internal
	// faults. Failures are logged.
	HandleNotification(ctx context.Context, n GatewayNotification) AckCode
}

type reconciliationCommands struct {
	uow     shared.UnitOfWork
	lockers usecase.LockerInventoryManager
	clock   clock.Clock
	gateway config.GatewayConfig
}

func NewReconciliationCommands(
	uow shared.UnitOfWork,
	lockers usecase.LockerInventoryManager,
	clk clock.Clock,
	gateway config.GatewayConfig,
) ReconciliationCommands {
	return &reconciliationCommands{
		uow:     uow,
		lockers: lockers,
		clock:   clk,
		gateway: gateway,
	}
}

func (r *reconciliationCommands) HandleNotification(ctx context.Context, n GatewayNotification) AckCode {
	enrollmentID, err := ParseOrderRef(n.OrderRef)
	if err != nil {
		slog.Error("rejecting notification with malformed order reference",
			"order_ref", n.OrderRef, "tid", n.TID, "error", err)
		return AckFail
	}

	var duplicate bool
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dup, err := r.checkTID(ctx, tx, n, enrollmentID)
		if err != nil {
			return err
		}
		if dup {
			duplicate = true
			return nil
		}

		enr, err := tx.Enrollments().FindByIDForUpdate(ctx, enrollmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrEnrollmentNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if n.ResultCode != resultCodeSuccess {
			return r.recordFailure(ctx, tx, enrollmentID, n)
		}
		return r.applySuccess(ctx, tx, enr, n)
	})
	if err != nil {
		slog.Error("payment notification processing failed",
			"tid", n.TID, "enrollment_id", enrollmentID, "result_code", n.ResultCode, "error", err)
		return AckFail
	}

	if duplicate {
		slog.Info("duplicate payment notification acknowledged", "tid", n.TID, "enrollment_id", enrollmentID)
	}
	return AckOK
}

// checkTID enforces tid idempotence: an existing payment for the same
// enrollment whose recorded outcome matches the incoming result is a
// redelivery; any other existing payment with this tid is an integrity
// failure we refuse to auto-resolve.
func (r *reconciliationCommands) checkTID(ctx context.Context, tx shared.Tx, n GatewayNotification, enrollmentID uuid.UUID) (duplicate bool, err error) {
	existing, err := tx.Payments().FindByTID(ctx, n.TID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if existing.EnrollmentID() == enrollmentID {
		success := n.ResultCode == resultCodeSuccess
		if (success && existing.Status() == payment.StatusPaid) ||
			(!success && existing.Status() == payment.StatusFailed) {
			return true, nil
		}
	}
	return false, errs.Mark(
		errs.Newf("tid already recorded against enrollment %s with status %s",
			existing.EnrollmentID(), existing.Status()),
		errs.ErrTidConflict,
	)
}

func (r *reconciliationCommands) applySuccess(ctx context.Context, tx shared.Tx, enr *enrollment.Enrollment, n GatewayNotification) error {
	// checkTID already passed, so this tid is new: a second success for an
	// enrollment that is paid would record a second live payment. Refuse
	// and leave the reconciliation to an operator.
	if enr.PayStatus() == enrollment.PayPaid {
		return errs.Mark(
			errs.Newf("enrollment %s is already paid, refusing new transaction %s", enr.ID(), n.TID),
			errs.ErrPaymentConflict,
		)
	}

	if err := enr.MarkPaid(); err != nil {
		return errs.Mark(err, errs.ErrNotUnpaid)
	}

	les, err := tx.Lessons().FindByID(ctx, enr.LessonID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	split := payment.SplitAmount(n.Amount, les.Price(), r.gateway.LockerFee, r.gateway.LockerFeeTolerance)
	if !split.Reconciled {
		slog.Warn("paid amount does not reconcile against lesson price and locker fee, attributing all to lesson",
			"tid", n.TID, "enrollment_id", enr.ID(), "amount", n.Amount, "lesson_price", les.Price())
	}

	// A first-time enrollment signals its locker request through the paid
	// locker fee; renewals carry an explicit flag from creation.
	wantsLocker := enr.UsesLocker() || split.LockerAmount > 0
	if err := r.resolveLocker(ctx, tx, enr, wantsLocker, les.StartDate(), n.TID); err != nil {
		return err
	}

	pay, err := payment.NewPaid(enr.ID(), n.TID, n.Amount, split.LessonAmount, split.LockerAmount,
		n.ResultCode, n.ResultMessage, n.PayMethod, r.clock.Now())
	if err != nil {
		return errs.Wrap(err, "failed to build payment record")
	}
	if err := tx.Payments().Create(ctx, pay); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Enrollments().Update(ctx, enr); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("payment reconciled",
		"tid", n.TID, "enrollment_id", enr.ID(), "amount", n.Amount,
		"locker_allocated", enr.LockerAllocated())
	return nil
}

// resolveLocker settles the enrollment's locker fields after a confirmed
// payment. A renewal transfers the previous month's allocation without
// touching the category counters; otherwise the inventory manager is
// consulted, and a shortfall degrades to an unallocated locker rather than
// failing the payment.
func (r *reconciliationCommands) resolveLocker(ctx context.Context, tx shared.Tx, enr *enrollment.Enrollment, wantsLocker bool, lessonStart time.Time, tid string) error {
	if !wantsLocker {
		if enr.LockerAllocated() {
			category, err := userCategory(ctx, tx, enr.UserID())
			if err != nil {
				return err
			}
			if err := r.lockers.Decrement(ctx, tx, category); err != nil {
				return err
			}
			enr.ClearLocker()
		}
		return nil
	}

	if enr.LockerAllocated() {
		return nil
	}

	if enr.IsRenewal() {
		transferred, err := r.transferLocker(ctx, tx, enr, lessonStart, tid)
		if err != nil {
			return err
		}
		if transferred {
			return nil
		}
	}

	category, err := userCategory(ctx, tx, enr.UserID())
	if err != nil {
		return err
	}
	if err := r.lockers.Increment(ctx, tx, category); err != nil {
		if errs.Is(err, errs.ErrLockerExhausted) {
			slog.Warn("locker unavailable, completing payment without allocation",
				"enrollment_id", enr.ID(), "category", category)
			return nil
		}
		return err
	}
	if err := enr.AllocateLocker(tid); err != nil {
		return errs.Wrap(err, "failed to record locker allocation")
	}
	return nil
}

// transferLocker moves the previous month's paid allocation onto the
// renewing enrollment. A transfer conserves usage, so the inventory
// counters are deliberately untouched.
func (r *reconciliationCommands) transferLocker(ctx context.Context, tx shared.Tx, enr *enrollment.Enrollment, lessonStart time.Time, tid string) (bool, error) {
	monthStart, _ := monthBounds(lessonStart)
	prevStart := monthStart.AddDate(0, -1, 0)

	prev, err := tx.Enrollments().FindPaidWithLockerInMonth(ctx, enr.UserID(), prevStart, monthStart)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if prev.ID() == enr.ID() {
		return false, nil
	}

	prev.ClearLocker()
	if err := enr.AllocateLocker(tid); err != nil {
		return false, errs.Wrap(err, "failed to record transferred locker allocation")
	}
	if err := tx.Enrollments().Update(ctx, prev); err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("locker transferred across renewal",
		"from_enrollment_id", prev.ID(), "to_enrollment_id", enr.ID())
	return true, nil
}

// userCategory resolves the locker category from the enrollment owner's
// gender.
func userCategory(ctx context.Context, tx shared.Tx, userID uuid.UUID) (locker.Category, error) {
	u, err := tx.Users().FindByID(ctx, userID)
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return locker.Category(u.Gender()), nil
}

func (r *reconciliationCommands) recordFailure(ctx context.Context, tx shared.Tx, enrollmentID uuid.UUID, n GatewayNotification) error {
	pay := payment.NewFailed(enrollmentID, n.TID, n.ResultCode, n.ResultMessage, n.PayMethod, r.clock.Now())
	if err := tx.Payments().Create(ctx, pay); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	slog.Warn("gateway reported payment failure",
		"tid", n.TID, "enrollment_id", enrollmentID,
		"result_code", n.ResultCode, "result_message", n.ResultMessage)
	return nil
}
