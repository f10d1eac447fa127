package domain

import "time"

// Session es una sesion server-side emitida tras una autenticacion exitosa.
// ID es un identificador aleatorio opaco; la sesion expira en ExpiresAt y no
// se renueva al validarla.
type Session struct {
	ID            string    `json:"session_id"`
	UserSubjectID string    `json:"user_subject_id"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// Expired indica si la sesion ya no es valida en el instante dado.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
