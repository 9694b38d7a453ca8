package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActionTokenManager signs and validates the approval-action tokens embedded
// in operator notifications. A token binds a pending application's roll
// number and email so a button press routed back later cannot be redirected
// at a different record.
type ActionTokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewActionTokenManager creates a new action token manager.
// secret must be at least 32 characters for HS256 security.
func NewActionTokenManager(secret, issuer string, ttl time.Duration) *ActionTokenManager {
	return &ActionTokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// actionClaims extends standard JWT claims with the application's email.
// The roll number travels as the subject.
type actionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Generate creates a signed HS256 token for one pending application.
func (m *ActionTokenManager) Generate(roll, email string) (string, error) {
	now := time.Now()
	claims := actionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   roll,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign action token: %w", err)
	}

	return signed, nil
}

// Validate parses and validates an action token.
// Returns the roll number and email it was issued for.
func (m *ActionTokenManager) Validate(tokenString string) (roll, email string, err error) {
	if tokenString == "" {
		return "", "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &actionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return "", "", fmt.Errorf("parse action token: %w", err)
	}

	claims, ok := token.Claims.(*actionClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid action token claims")
	}
	if claims.Subject == "" {
		return "", "", fmt.Errorf("action token has no subject")
	}

	return claims.Subject, claims.Email, nil
}
