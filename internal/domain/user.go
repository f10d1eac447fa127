package domain

import "time"

// User es la identidad persistida tras verificar un token del proveedor.
// SubjectID es el identificador estable (`sub`) que entrega el proveedor.
type User struct {
	SubjectID string    `json:"subject_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
