package identity

import "context"

// MockVerifier permite tests sin llamar al proveedor real.
type MockVerifier struct {
	Claims Claims
	Err    error
	Calls  int
}

func (m *MockVerifier) Verify(ctx context.Context, idToken string) (Claims, error) {
	m.Calls++
	return m.Claims, m.Err
}
