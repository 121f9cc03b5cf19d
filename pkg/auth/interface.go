package auth

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks humanness-tasks/pkg/auth TokenManager

// TokenManager defines the interface for session token operations.
type TokenManager interface {
	// GenerateToken creates a new token bound to a flow session.
	GenerateToken(sessionID string) (string, error)
	// ValidateToken parses and validates a token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
