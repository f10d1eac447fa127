package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestGoogleVerifierVerify_Success(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("id_token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"a@x.com","name":"A","picture":"url","sub":"sub-1"}`))
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, zap.NewNop())
	claims, err := v.Verify(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotToken != "tok-123" {
		t.Errorf("id_token = %q, want %q", gotToken, "tok-123")
	}
	if claims.Sub != "sub-1" || claims.Email != "a@x.com" || claims.Name != "A" || claims.Picture != "url" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestGoogleVerifierVerify_RejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, zap.NewNop())
	_, err := v.Verify(context.Background(), "bad")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}

func TestGoogleVerifierVerify_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, zap.NewNop())
	_, err := v.Verify(context.Background(), "tok")
	if !errors.Is(err, ErrMalformedClaims) {
		t.Fatalf("error = %v, want ErrMalformedClaims", err)
	}
}

func TestGoogleVerifierVerify_MissingSub(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"a@x.com"}`))
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, zap.NewNop())
	_, err := v.Verify(context.Background(), "tok")
	if !errors.Is(err, ErrMalformedClaims) {
		t.Fatalf("error = %v, want ErrMalformedClaims", err)
	}
}

func TestGoogleVerifierVerify_ProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := NewGoogleVerifier(srv.URL, zap.NewNop())
	_, err := v.Verify(context.Background(), "tok")
	if !errors.Is(err, ErrProviderUnreachable) {
		t.Fatalf("error = %v, want ErrProviderUnreachable", err)
	}
}
