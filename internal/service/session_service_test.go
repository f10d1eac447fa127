package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"google-auth/internal/domain"
)

type mockSessionRepo struct {
	sessions  map[string]domain.Session
	createErr error
	getErr    error
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]domain.Session)}
}

func (m *mockSessionRepo) Create(_ context.Context, session domain.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) GetByIDAndUser(_ context.Context, sessionID, subjectID string) (domain.Session, error) {
	if m.getErr != nil {
		return domain.Session{}, m.getErr
	}
	session, ok := m.sessions[sessionID]
	if !ok || session.UserSubjectID != subjectID {
		return domain.Session{}, pgx.ErrNoRows
	}
	return session, nil
}

func TestSessionServiceIssue_PersistsWithTTL(t *testing.T) {
	repo := newMockSessionRepo()
	svc := NewSessionService(zap.NewNop(), repo, 7*24*time.Hour)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	session, err := svc.Issue(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserSubjectID != "sub-1" {
		t.Errorf("subject = %q, want sub-1", session.UserSubjectID)
	}
	want := fixed.Add(7 * 24 * time.Hour)
	if !session.ExpiresAt.Equal(want) {
		t.Errorf("expires_at = %v, want %v", session.ExpiresAt, want)
	}
	if _, ok := repo.sessions[session.ID]; !ok {
		t.Error("session was not persisted")
	}
}

func TestSessionServiceIssue_RandomIDs(t *testing.T) {
	repo := newMockSessionRepo()
	svc := NewSessionService(zap.NewNop(), repo, time.Hour)

	first, err := svc.Issue(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Issue(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("two sessions share the same id")
	}

	raw, err := base64.RawURLEncoding.DecodeString(first.ID)
	if err != nil {
		t.Fatalf("session id is not base64url: %v", err)
	}
	if len(raw) < 16 {
		t.Errorf("session id has %d random bytes, want at least 16", len(raw))
	}

	if err := svc.Validate(context.Background(), first.ID, "sub-1"); err != nil {
		t.Errorf("first session invalid: %v", err)
	}
	if err := svc.Validate(context.Background(), second.ID, "sub-1"); err != nil {
		t.Errorf("second session invalid: %v", err)
	}
}

func TestSessionServiceIssue_CreateFailureReturnsNoSession(t *testing.T) {
	repo := newMockSessionRepo()
	repo.createErr = errors.New("disk full")
	svc := NewSessionService(zap.NewNop(), repo, time.Hour)

	session, err := svc.Issue(context.Background(), "sub-1")
	if !errors.Is(err, ErrStorageFailure) {
		t.Fatalf("error = %v, want ErrStorageFailure", err)
	}
	if session.ID != "" {
		t.Errorf("session id = %q, want empty on failed persist", session.ID)
	}
}

func TestSessionServiceValidate_WrongOwner(t *testing.T) {
	repo := newMockSessionRepo()
	svc := NewSessionService(zap.NewNop(), repo, time.Hour)

	session, err := svc.Issue(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Validate(context.Background(), session.ID, "sub-2"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionServiceValidate_Expired(t *testing.T) {
	repo := newMockSessionRepo()
	svc := NewSessionService(zap.NewNop(), repo, time.Hour)
	current := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }

	session, err := svc.Issue(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Justo en el instante de expiracion la sesion ya no es valida.
	current = current.Add(time.Hour)
	if err := svc.Validate(context.Background(), session.ID, "sub-1"); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("error = %v, want ErrSessionExpired", err)
	}

	// La fila sigue existiendo; validar no la borra ni extiende.
	if _, ok := repo.sessions[session.ID]; !ok {
		t.Error("expired session row was removed")
	}
}

func TestSessionServiceValidate_StorageErrorFailsClosed(t *testing.T) {
	repo := newMockSessionRepo()
	repo.getErr = errors.New("connection reset")
	svc := NewSessionService(zap.NewNop(), repo, time.Hour)

	if err := svc.Validate(context.Background(), "some-id", "sub-1"); !errors.Is(err, ErrStorageFailure) {
		t.Fatalf("error = %v, want ErrStorageFailure", err)
	}
}

func TestSessionServiceValidate_EmptyIdentifiers(t *testing.T) {
	svc := NewSessionService(zap.NewNop(), newMockSessionRepo(), time.Hour)

	if err := svc.Validate(context.Background(), "", "sub-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.Validate(context.Background(), "id", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}
}
