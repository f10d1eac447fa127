package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"google-auth/internal/domain"
)

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Upsert(ctx context.Context, user domain.User) error
	GetBySubject(ctx context.Context, subjectID string) (domain.User, error)
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Upsert inserta o actualiza el usuario en una sola sentencia atómica,
// de modo que dos logins concurrentes del mismo sujeto no dupliquen filas.
func (r *PgUserRepository) Upsert(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (subject_id, email, name, picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (subject_id) DO UPDATE
		SET email = EXCLUDED.email,
		    name = EXCLUDED.name,
		    picture = EXCLUDED.picture,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		user.SubjectID,
		user.Email,
		user.Name,
		user.Picture,
		user.UpdatedAt,
	)
	return err
}

func (r *PgUserRepository) GetBySubject(ctx context.Context, subjectID string) (domain.User, error) {
	const query = `
		SELECT subject_id, email, name, picture, created_at, updated_at
		FROM users
		WHERE subject_id = $1
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, query, subjectID).Scan(
		&u.SubjectID,
		&u.Email,
		&u.Name,
		&u.Picture,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}
	return u, err
}
