package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SupabaseClaims represents the JWT claims issued by Supabase Auth.
// The subject is the stable user id threaded through the API layer.
type SupabaseClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// UserID parses the subject claim as a UUID.
func (c *SupabaseClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
