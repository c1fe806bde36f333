package repository

import (
	"context"
	"time"

	"swim-academy-api/internal/domain/lesson"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LessonRepository struct {
	db infra.DBTX
}

func NewLessonRepository(db infra.DBTX) *LessonRepository {
	return &LessonRepository{db: db}
}

const findLessonByIDQuery = `
SELECT id, title, capacity, price, start_date, end_date, status
FROM lessons
WHERE id = $1`

func (r *LessonRepository) FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	return r.scanLesson(ctx, findLessonByIDQuery, id)
}

// FindByIDForUpdate takes the row lock that serializes the capacity
// check-and-insert for this lesson.
func (r *LessonRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	return r.scanLesson(ctx, findLessonByIDQuery+` FOR UPDATE`, id)
}

func (r *LessonRepository) scanLesson(ctx context.Context, query string, id uuid.UUID) (*lesson.Lesson, error) {
	var (
		lid       uuid.UUID
		title     string
		capacity  int
		price     int64
		startDate time.Time
		endDate   time.Time
		status    string
	)
	err := r.db.QueryRow(ctx, query, id).
		Scan(&lid, &title, &capacity, &price, &startDate, &endDate, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lesson", err)
	}

	return lesson.ReconstructLesson(lid, title, capacity, price, startDate, endDate, lesson.Status(status)), nil
}

func (r *LessonRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status lesson.Status) error {
	const query = `UPDATE lessons SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update lesson status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LessonRepository) EndedLessonIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	const query = `SELECT id FROM lessons WHERE end_date <= $1`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ended lessons", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ended lessons", err)
	}
	return ids, nil
}
