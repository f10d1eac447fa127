package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"google-auth/internal/domain"
	"google-auth/internal/identity"
	"google-auth/internal/repository"
)

// AuthService coordina el flujo de autenticacion: verificar el token contra
// el proveedor, upsert del usuario y emision de la sesion.
type AuthService struct {
	logger   *zap.Logger
	verifier identity.Verifier
	users    repository.UserRepository
	sessions *SessionService
}

func NewAuthService(logger *zap.Logger, verifier identity.Verifier, users repository.UserRepository, sessions *SessionService) *AuthService {
	return &AuthService{
		logger:   logger,
		verifier: verifier,
		users:    users,
		sessions: sessions,
	}
}

// Authenticate verifica el token y, solo si el proveedor lo acepta, persiste
// el usuario y emite una sesion. Si el token es rechazado el almacen nunca se
// toca. Los errores de storage se devuelven como ErrStorageFailure; el detalle
// crudo solo se loggea.
func (s *AuthService) Authenticate(ctx context.Context, idToken string) (domain.User, domain.Session, error) {
	if s.verifier == nil || s.users == nil || s.sessions == nil {
		return domain.User{}, domain.Session{}, errors.New("auth service not configured")
	}

	claims, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		SubjectID: claims.Sub,
		Email:     claims.Email,
		Name:      claims.Name,
		Picture:   claims.Picture,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		s.logger.Error("user upsert failed", zap.Error(err), zap.String("subject_id", user.SubjectID))
		return domain.User{}, domain.Session{}, fmt.Errorf("%w: user upsert", ErrStorageFailure)
	}

	session, err := s.sessions.Issue(ctx, user.SubjectID)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	return user, session, nil
}
