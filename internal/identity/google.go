package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier implementa Verifier contra el endpoint tokeninfo de Google.
// Hace exactamente una llamada saliente por invocación y no reintenta.
type GoogleVerifier struct {
	tokenInfoURL string
	client       *http.Client
	logger       *zap.Logger
}

// NewGoogleVerifier construye un verificador apuntando a tokenInfoURL.
// Con URL vacía usa el endpoint público de Google; los tests la sobreescriben.
func NewGoogleVerifier(tokenInfoURL string, logger *zap.Logger) *GoogleVerifier {
	if tokenInfoURL == "" {
		tokenInfoURL = defaultTokenInfoURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoogleVerifier{
		tokenInfoURL: strings.TrimRight(tokenInfoURL, "/"),
		client:       &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

// Verify introspecta el token y devuelve los claims validados.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (Claims, error) {
	params := url.Values{"id_token": {idToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.tokenInfoURL+"?"+params.Encode(), nil)
	if err != nil {
		return Claims{}, fmt.Errorf("create tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Warn("tokeninfo request failed", zap.Error(err))
		return Claims{}, fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		v.logger.Warn("tokeninfo read failed", zap.Error(err))
		return Claims{}, fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		v.logger.Info("tokeninfo rejected token", zap.Int("status", resp.StatusCode))
		return Claims{}, fmt.Errorf("%w: status=%d", ErrInvalidToken, resp.StatusCode)
	}

	var claims Claims
	if err := json.Unmarshal(body, &claims); err != nil {
		v.logger.Warn("tokeninfo parse failed", zap.Error(err))
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedClaims, err)
	}
	if claims.Sub == "" {
		v.logger.Warn("tokeninfo response without sub")
		return Claims{}, fmt.Errorf("%w: missing sub", ErrMalformedClaims)
	}

	return claims, nil
}
