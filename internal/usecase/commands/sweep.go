package commands

import (
	"context"
	"log/slog"

	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/shared"
)

// SweepCommands are the scheduled maintenance jobs. All of them are
// idempotent: running a sweep twice in a row changes nothing the second
// time.
type SweepCommands interface {
	// ExpireStaleHolds flips unpaid holds past their expiry to EXPIRED,
	// freeing their capacity slots.
	ExpireStaleHolds(ctx context.Context) (int64, error)
	// ReleaseLockersForEndedLessons returns lockers held by enrollments of
	// lessons whose end date has passed.
	ReleaseLockersForEndedLessons(ctx context.Context) (int, error)
	// ResetLockerUsage zeroes every category counter; locker capacity is a
	// per-period resource.
	ResetLockerUsage(ctx context.Context) (int64, error)
	// ResyncLockerUsage rewrites each category counter from the ground
	// truth of paid, locker-allocated enrollments. Drift correction only;
	// it reports how many categories moved.
	ResyncLockerUsage(ctx context.Context) (int, error)
}

type sweepCommands struct {
	uow     shared.UnitOfWork
	lockers usecase.LockerInventoryManager
	clock   clock.Clock
}

func NewSweepCommands(uow shared.UnitOfWork, lockers usecase.LockerInventoryManager, clk clock.Clock) SweepCommands {
	return &sweepCommands{uow: uow, lockers: lockers, clock: clk}
}

func (s *sweepCommands) ExpireStaleHolds(ctx context.Context) (int64, error) {
	now := s.clock.Now()

	var expired int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Enrollments().ExpireStaleHolds(ctx, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		slog.Info("expired stale unpaid holds", "count", expired)
	}
	return expired, nil
}

func (s *sweepCommands) ReleaseLockersForEndedLessons(ctx context.Context) (int, error) {
	now := s.clock.Now()

	var released int
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lessonIDs, err := tx.Lessons().EndedLessonIDs(ctx, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(lessonIDs) == 0 {
			return nil
		}

		holders, err := tx.Enrollments().FindAllocatedForLessons(ctx, lessonIDs)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, enr := range holders {
			category, err := userCategory(ctx, tx, enr.UserID())
			if err != nil {
				return err
			}
			if err := s.lockers.Decrement(ctx, tx, category); err != nil {
				return err
			}
			enr.ClearLocker()
			if err := tx.Enrollments().Update(ctx, enr); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			released++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if released > 0 {
		slog.Info("released lockers for ended lessons", "count", released)
	}
	return released, nil
}

func (s *sweepCommands) ResetLockerUsage(ctx context.Context) (int64, error) {
	var reset int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Lockers().ResetAllUsage(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		reset = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("reset locker usage counters", "categories", reset)
	return reset, nil
}

func (s *sweepCommands) ResyncLockerUsage(ctx context.Context) (int, error) {
	now := s.clock.Now()

	var corrected int
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		truth, err := tx.Enrollments().CountPaidAllocatedByCategory(ctx, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, category := range []locker.Category{locker.CategoryMale, locker.CategoryFemale} {
			want := truth[category]

			inv, err := tx.Lockers().GetForUpdate(ctx, category)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					slog.Warn("locker inventory missing for category, skipping resync", "category", category)
					continue
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if inv.Used == want {
				continue
			}

			slog.Warn("locker usage drift detected",
				"category", category, "recorded", inv.Used, "actual", want)
			if err := inv.SetUsed(want); err != nil {
				return errs.Wrap(err, "ground-truth usage violates inventory bounds")
			}
			if err := tx.Lockers().SaveUsed(ctx, inv); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			corrected++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return corrected, nil
}
