//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"; cost 12 is slow, so every fixture user
// shares the one precomputed hash.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role, gender string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, display_name, role, gender, is_active) VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, email, role, gender)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestLesson(t *testing.T, db DBLike, title string, capacity int, price int64, start, end time.Time) uuid.UUID {
	t.Helper()

	lessonID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO lessons (id, title, capacity, price, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6, 'OPEN')",
		lessonID, title, capacity, price, start, end)
	require.NoError(t, err)

	return lessonID
}

// CurrentMonthLesson spans the whole current month, so same-month
// enrollment is open regardless of the day the test runs on.
func CurrentMonthLesson(t *testing.T, db DBLike, title string, capacity int, price int64) uuid.UUID {
	t.Helper()

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return CreateTestLesson(t, db, title, capacity, price, start, start.AddDate(0, 1, -1))
}

// ResetDB truncates mutable tables and restores the seeded locker
// inventory. Called between subtests so state never leaks across them.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	if _, err := pool.Exec(ctx, "TRUNCATE payments, enrollments, lessons, users CASCADE"); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, "UPDATE locker_inventory SET used_quantity = 0")
	return err
}
