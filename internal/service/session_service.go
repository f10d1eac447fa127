package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"google-auth/internal/domain"
	"google-auth/internal/repository"
)

// SessionService emite y valida sesiones server-side.
type SessionService struct {
	logger   *zap.Logger
	sessions repository.SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrStorageFailure  = errors.New("storage failure")
)

const defaultSessionTTL = 7 * 24 * time.Hour

// sessionIDBytes da 256 bits de entropía por identificador.
const sessionIDBytes = 32

func NewSessionService(logger *zap.Logger, sessions repository.SessionRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		logger:   logger,
		sessions: sessions,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Issue crea y persiste una sesion nueva para el sujeto dado. Si la escritura
// falla no se devuelve ningun identificador: una sesion no persistida no
// existe para el caller.
func (s *SessionService) Issue(ctx context.Context, subjectID string) (domain.Session, error) {
	if s.sessions == nil {
		return domain.Session{}, errors.New("session service not configured")
	}

	id, err := newSessionID()
	if err != nil {
		return domain.Session{}, fmt.Errorf("generate session id: %w", err)
	}

	now := s.now()
	session := domain.Session{
		ID:            id,
		UserSubjectID: subjectID,
		ExpiresAt:     now.Add(s.ttl),
		CreatedAt:     now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("session create failed", zap.Error(err))
		return domain.Session{}, fmt.Errorf("%w: session create", ErrStorageFailure)
	}

	return session, nil
}

// Validate devuelve nil solo si existe una sesion con ese identificador,
// perteneciente al sujeto dado y cuya expiración está estrictamente en el
// futuro. Cualquier fallo de lectura cierra en invalido; validar no extiende
// la expiración.
func (s *SessionService) Validate(ctx context.Context, sessionID, subjectID string) error {
	if s.sessions == nil {
		return errors.New("session service not configured")
	}
	if sessionID == "" || subjectID == "" {
		return ErrSessionNotFound
	}

	session, err := s.sessions.GetByIDAndUser(ctx, sessionID, subjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		s.logger.Error("session lookup failed", zap.Error(err))
		return fmt.Errorf("%w: session lookup", ErrStorageFailure)
	}

	if session.Expired(s.now()) {
		return ErrSessionExpired
	}
	return nil
}

func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
