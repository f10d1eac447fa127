package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"google-auth/internal/domain"
)

// SessionRepository define el contrato de persistencia para sesiones.
type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	GetByIDAndUser(ctx context.Context, sessionID, subjectID string) (domain.Session, error)
}

// PgSessionRepository implementa SessionRepository usando pgxpool.
type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) Create(ctx context.Context, session domain.Session) error {
	const query = `
		INSERT INTO sessions (session_id, user_subject_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserSubjectID,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

// GetByIDAndUser busca la sesion que coincide con ambos identificadores.
// Devuelve pgx.ErrNoRows cuando no hay fila que coincida.
func (r *PgSessionRepository) GetByIDAndUser(ctx context.Context, sessionID, subjectID string) (domain.Session, error) {
	const query = `
		SELECT session_id, user_subject_id, expires_at, created_at
		FROM sessions
		WHERE session_id = $1 AND user_subject_id = $2
	`
	var session domain.Session
	err := r.pool.QueryRow(ctx, query, sessionID, subjectID).Scan(
		&session.ID,
		&session.UserSubjectID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Session{}, err
	}
	return session, err
}
