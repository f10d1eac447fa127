package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"google-auth/internal/domain"
	"google-auth/internal/identity"
	"google-auth/internal/metrics"
	"google-auth/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de autenticacion.
type AuthHandler struct {
	logger    *zap.Logger
	authServ  *service.AuthService
	sessServ  *service.SessionService
	collector *metrics.Collector
}

func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService, sessServ *service.SessionService, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		authServ:  authServ,
		sessServ:  sessServ,
		collector: collector,
	}
}

// GoogleAuth maneja POST /auth/google. Cualquier fallo downstream responde
// 200 con success=false y un mensaje generico; el detalle queda en los logs.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req struct {
		IDToken string `json:"id_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid auth request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, session, err := h.authServ.Authenticate(c.Request.Context(), req.IDToken)
	if err != nil {
		h.recordAuthFailure(err)
		c.JSON(http.StatusOK, domain.AuthResult{
			Success: false,
			Message: failureMessage(err),
		})
		return
	}

	if h.collector != nil {
		h.collector.RecordAuthResult("success")
	}
	c.JSON(http.StatusOK, domain.AuthResult{
		Success:   true,
		Message:   fmt.Sprintf("Welcome %s!", user.Name),
		SessionID: session.ID,
	})
}

// VerifySession maneja POST /auth/verify. Sesion inexistente y sesion
// expirada responden igual para no permitir enumerar identificadores.
func (h *AuthHandler) VerifySession(c *gin.Context) {
	var req struct {
		SessionID     string `json:"session_id" binding:"required"`
		UserSubjectID string `json:"user_subject_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid verify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.sessServ.Validate(c.Request.Context(), req.SessionID, req.UserSubjectID)
	if err != nil && !errors.Is(err, service.ErrSessionNotFound) && !errors.Is(err, service.ErrSessionExpired) {
		h.logger.Error("session validate failed", zap.Error(err))
	}

	valid := err == nil
	if h.collector != nil {
		h.collector.RecordVerifyResult(valid)
	}
	c.JSON(http.StatusOK, gin.H{"success": valid})
}

func (h *AuthHandler) recordAuthFailure(err error) {
	if h.collector == nil {
		return
	}
	switch {
	case errors.Is(err, identity.ErrInvalidToken):
		h.collector.RecordAuthResult("invalid_token")
	case errors.Is(err, identity.ErrProviderUnreachable), errors.Is(err, identity.ErrMalformedClaims):
		h.collector.RecordAuthResult("provider_error")
	case errors.Is(err, service.ErrStorageFailure):
		h.collector.RecordAuthResult("storage_error")
	default:
		h.collector.RecordAuthResult("error")
	}
}

// failureMessage traduce errores internos a los mensajes genericos que ve el
// cliente; el error crudo nunca sale en la respuesta.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidToken):
		return "Invalid Token"
	case errors.Is(err, service.ErrStorageFailure):
		return "Failed to save user"
	default:
		return "Authentication error"
	}
}
