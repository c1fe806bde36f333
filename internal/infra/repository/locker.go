package repository

import (
	"context"

	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

type LockerRepository struct {
	db infra.DBTX
}

func NewLockerRepository(db infra.DBTX) *LockerRepository {
	return &LockerRepository{db: db}
}

const lockerQuery = `
SELECT category, total_quantity, used_quantity
FROM locker_inventory
WHERE category = $1`

func (r *LockerRepository) Get(ctx context.Context, category locker.Category) (*locker.Inventory, error) {
	return scanInventory(r.db.QueryRow(ctx, lockerQuery, category.String()))
}

// GetForUpdate locks only this category's row; allocations for different
// categories proceed in parallel.
func (r *LockerRepository) GetForUpdate(ctx context.Context, category locker.Category) (*locker.Inventory, error) {
	return scanInventory(r.db.QueryRow(ctx, lockerQuery+` FOR UPDATE`, category.String()))
}

func (r *LockerRepository) SaveUsed(ctx context.Context, inv *locker.Inventory) error {
	const query = `
UPDATE locker_inventory
SET used_quantity = $2, updated_at = now()
WHERE category = $1`

	tag, err := r.db.Exec(ctx, query, inv.Category.String(), inv.Used)
	if err != nil {
		return infra.WrapRepoErr("failed to save locker usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("locker inventory not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LockerRepository) ResetAllUsage(ctx context.Context) (int64, error) {
	const query = `UPDATE locker_inventory SET used_quantity = 0, updated_at = now()`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reset locker usage", err)
	}
	return tag.RowsAffected(), nil
}

func scanInventory(row pgx.Row) (*locker.Inventory, error) {
	var (
		category    string
		total, used int
	)
	if err := row.Scan(&category, &total, &used); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("locker inventory not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan locker inventory", err)
	}
	return &locker.Inventory{
		Category: locker.Category(category),
		Total:    total,
		Used:     used,
	}, nil
}
