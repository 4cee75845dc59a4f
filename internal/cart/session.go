package cart

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/amendezc/audiophile-backend/pkg/config"
)

var sessionSigningMethod = jwt.SigningMethodHS256

// Sessions mints and verifies the signed cart session tokens carried by the
// client between requests. The token subject is the opaque session id keying
// the cart payload in the store.
type Sessions struct {
	cfg config.CartConfig
}

// NewSessions validates the signing configuration.
func NewSessions(cfg config.CartConfig) (*Sessions, error) {
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return nil, fmt.Errorf("cart session secret required")
	}
	if strings.TrimSpace(cfg.SessionIssuer) == "" {
		return nil, fmt.Errorf("cart session issuer required")
	}
	return &Sessions{cfg: cfg}, nil
}

// Mint creates a new session id and its signed token.
func (s *Sessions) Mint(now time.Time) (string, string, error) {
	sessionID := uuid.NewString()

	claims := jwt.RegisteredClaims{
		Subject:  sessionID,
		Issuer:   s.cfg.SessionIssuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.cfg.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.cfg.TTL))
	}

	token, err := jwt.NewWithClaims(sessionSigningMethod, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", "", fmt.Errorf("signing cart session: %w", err)
	}
	return sessionID, token, nil
}

// Verify checks signature, issuer and expiry and returns the session id.
func (s *Sessions) Verify(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("empty cart session token")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != sessionSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", t.Header["alg"])
			}
			return []byte(s.cfg.SessionSecret), nil
		},
		jwt.WithValidMethods([]string{sessionSigningMethod.Alg()}),
		jwt.WithIssuer(s.cfg.SessionIssuer),
	)
	if err != nil {
		return "", fmt.Errorf("verifying cart session: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("cart session token missing subject")
	}
	return claims.Subject, nil
}
