package domain

// AuthResult es el resultado transitorio de una autenticacion; no se persiste.
// SessionID queda vacio cuando Success es false.
type AuthResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
