package usecase

import (
	"context"
	"log/slog"

	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase/shared"
)

// LockerInventoryManager is the counted-resource primitive shared by
// payment reconciliation, admin direct-cancel and the sweepers. It knows
// nothing about enrollments.
type LockerInventoryManager interface {
	// Increment consumes one locker of the category inside the caller's
	// transaction; errs.ErrLockerExhausted when none is available.
	Increment(ctx context.Context, tx shared.Tx, category locker.Category) error
	// Decrement releases one locker; a release at zero usage is logged and
	// otherwise ignored.
	Decrement(ctx context.Context, tx shared.Tx, category locker.Category) error
	// Availability never fails on a missing category row: it reports zero
	// capacity and warns.
	Availability(ctx context.Context, category locker.Category) (shared.LockerAvailability, error)
}

type lockerInventoryManager struct {
	// lockers is a pool-bound repository used by the read-only query path.
	lockers shared.LockerRepository
}

func NewLockerInventoryManager(lockers shared.LockerRepository) LockerInventoryManager {
	return &lockerInventoryManager{lockers: lockers}
}

func (m *lockerInventoryManager) Increment(ctx context.Context, tx shared.Tx, category locker.Category) error {
	inv, err := tx.Lockers().GetForUpdate(ctx, category)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("locker inventory missing for category, treating as exhausted", "category", category)
			return errs.ErrLockerExhausted
		}
		return errs.Wrap(err, "failed to lock locker inventory")
	}

	if err := inv.Increment(); err != nil {
		return errs.Mark(err, errs.ErrLockerExhausted)
	}

	return tx.Lockers().SaveUsed(ctx, inv)
}

func (m *lockerInventoryManager) Decrement(ctx context.Context, tx shared.Tx, category locker.Category) error {
	inv, err := tx.Lockers().GetForUpdate(ctx, category)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("locker inventory missing for category, nothing to release", "category", category)
			return nil
		}
		return errs.Wrap(err, "failed to lock locker inventory")
	}

	if !inv.Decrement() {
		slog.Warn("locker release at zero usage ignored", "category", category)
		return nil
	}

	return tx.Lockers().SaveUsed(ctx, inv)
}

func (m *lockerInventoryManager) Availability(ctx context.Context, category locker.Category) (shared.LockerAvailability, error) {
	out := shared.LockerAvailability{Category: category.String()}

	inv, err := m.lockers.Get(ctx, category)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("locker inventory missing for category, reporting zero capacity", "category", category)
			return out, nil
		}
		return out, errs.Wrap(err, "failed to read locker availability")
	}

	out.Available = inv.Available()
	out.Total = inv.Total
	return out, nil
}
