package identity

import (
	"context"
	"errors"
)

// Claims son los atributos de identidad que devuelve el proveedor al
// introspectar un token.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Sub     string `json:"sub"`
}

// Verifier define el contrato de verificación de tokens contra el proveedor.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (Claims, error)
}

var (
	// ErrProviderUnreachable indica un fallo de red llegando al proveedor.
	ErrProviderUnreachable = errors.New("identity provider unreachable")
	// ErrInvalidToken indica que el proveedor rechazó el token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMalformedClaims indica una respuesta del proveedor que no se pudo
	// interpretar como claims.
	ErrMalformedClaims = errors.New("malformed claims")
)
