package auth

import (
	"context"
	"fmt"

	apperrors "promptvault-backend/internal/errors"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier validates a bearer token and returns the Supabase claims.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*SupabaseClaims, error)
}

// JWKSVerifier validates tokens against Supabase's JWKS endpoint. Keys are
// cached and refreshed by keyfunc based on HTTP cache headers.
type JWKSVerifier struct {
	jwks keyfunc.Keyfunc
}

// NewJWKSVerifier creates a verifier backed by the given JWKS URL.
func NewJWKSVerifier(jwksURL string) (*JWKSVerifier, error) {
	if jwksURL == "" {
		return nil, apperrors.ErrAuthKeysNotSet
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("create JWKS client: %w", err)
	}

	return &JWKSVerifier{jwks: jwks}, nil
}

// VerifyToken validates the token signature and Supabase claims.
func (v *JWKSVerifier) VerifyToken(tokenString string) (*SupabaseClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SupabaseClaims{}, v.jwks.Keyfunc)
	if err != nil || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}

	// Asymmetric algorithms only; rejects tokens signed with the shared secret
	switch token.Method.Alg() {
	case "RS256", "ES256":
	default:
		return nil, apperrors.NewAuthenticationError("unexpected signing algorithm")
	}

	return validateClaims(token)
}

// SecretVerifier validates tokens with the project's shared JWT secret.
// Supabase projects created before asymmetric keys sign with HS256.
type SecretVerifier struct {
	secret []byte
}

// NewSecretVerifier creates a verifier for HS256 tokens.
func NewSecretVerifier(secret string) (*SecretVerifier, error) {
	if secret == "" {
		return nil, apperrors.ErrAuthKeysNotSet
	}
	return &SecretVerifier{secret: []byte(secret)}, nil
}

// VerifyToken validates the token signature and Supabase claims.
func (v *SecretVerifier) VerifyToken(tokenString string) (*SupabaseClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SupabaseClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}

	return validateClaims(token)
}

func validateClaims(token *jwt.Token) (*SupabaseClaims, error) {
	claims, ok := token.Claims.(*SupabaseClaims)
	if !ok {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, apperrors.NewAuthenticationError("token missing subject")
	}
	// Reject anonymous tokens
	if claims.Role != "authenticated" {
		return nil, apperrors.NewAuthenticationError("token role is not authenticated")
	}
	return claims, nil
}
