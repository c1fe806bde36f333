package repository

import (
	"context"
	"time"

	"swim-academy-api/internal/domain/user"
	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db infra.DBTX
}

func NewUserRepository(db infra.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, email, password_hash, display_name, role, gender, phone, is_active, created_at`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                              uuid.UUID
		email, hash, name, role, gender string
		phone                           string
		isActive                        bool
		createdAt                       time.Time
	)
	err := row.Scan(&id, &email, &hash, &name, &role, &gender, &phone, &isActive, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}

	return user.ReconstructUser(
		id, emailVO, hash, name,
		user.Role(role), user.Gender(gender), phone, isActive, createdAt,
	), nil
}
