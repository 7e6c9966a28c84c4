package model

import "github.com/google/uuid"

// TokenManager issues and validates session tokens.
type TokenManager interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ParseToken(tokenString string) (uuid.UUID, error)
}
